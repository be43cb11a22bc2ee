package onboarding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

// StepEvent records the first time a merchant completed a tracked step.
// The unique index makes the celebration/analytics side effect one-shot.
type StepEvent struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;uniqueIndex:idx_step_events_user_step,priority:1"`
	Step        string `gorm:"not null;uniqueIndex:idx_step_events_user_step,priority:2"`
	StepNumber  int
	Flavor      string
	CompletedAt time.Time
}

// Publisher pushes analytics events to the broker. Implementations must
// tolerate being unconfigured (publish becomes a no-op).
type Publisher interface {
	Publish(ctx context.Context, key, value []byte) error
}

// Tracker persists first-time step completions and emits the analytics event
// for each. Emission is fire-and-forget: it never blocks or fails the
// predicate evaluation that triggered it.
type Tracker struct {
	DB     *gorm.DB
	Events Publisher
}

func NewTracker(db *gorm.DB, events Publisher) *Tracker {
	return &Tracker{DB: db, Events: events}
}

// RecordCompletions stores any newly completed steps from the given states.
func (t *Tracker) RecordCompletions(ctx context.Context, userID uint, flavor string, states []StepState) {
	for _, st := range states {
		if !st.Done {
			continue
		}

		var existing StepEvent
		err := t.DB.WithContext(ctx).
			Where("user_id = ? AND step = ?", userID, st.Name).
			First(&existing).Error
		if err == nil {
			continue // already celebrated
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("step event lookup failed for user %d step %s: %v", userID, st.Name, err)
			continue
		}

		event := StepEvent{
			UserID:      userID,
			Step:        st.Name,
			StepNumber:  st.Number,
			Flavor:      flavor,
			CompletedAt: time.Now(),
		}
		if err := t.DB.WithContext(ctx).Create(&event).Error; err != nil {
			// Unique index races are fine: someone else recorded it first.
			continue
		}

		t.publish(event)
	}
}

func (t *Tracker) publish(event StepEvent) {
	if t.Events == nil {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("analytics publish panic recovered: %v", r)
			}
		}()

		payload, err := json.Marshal(map[string]interface{}{
			"user_id":      event.UserID,
			"step":         event.Step,
			"step_number":  event.StepNumber,
			"flavor":       event.Flavor,
			"completed_at": event.CompletedAt.Format(time.RFC3339),
		})
		if err != nil {
			log.Printf("analytics payload marshal failed: %v", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		key := []byte(fmt.Sprintf("%d", event.UserID))
		if err := t.Events.Publish(ctx, key, payload); err != nil {
			log.Printf("analytics publish failed for step %s: %v", event.Step, err)
		}
	}()
}
