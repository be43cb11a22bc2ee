package access

import (
	"context"
	"errors"
	"log"
	"time"

	"link2pay-backend/internal/domain/accounts"
)

const (
	defaultAttempts = 3
	defaultDelay    = 2 * time.Second
)

// Loader fetches the account record and evaluates it. Transient store errors
// are retried with a fixed delay; when retries are exhausted the snapshot
// fails closed (no subscription, trial expired) so access is denied rather
// than silently granted.
type Loader struct {
	Store    accounts.Store
	Attempts int
	Delay    time.Duration
	Now      func() time.Time
}

func NewLoader(store accounts.Store) *Loader {
	return &Loader{Store: store}
}

func (l *Loader) Load(ctx context.Context, userID uint) Snapshot {
	attempts := l.Attempts
	if attempts <= 0 {
		attempts = defaultAttempts
	}
	delay := l.Delay
	if delay <= 0 {
		delay = defaultDelay
	}
	now := l.Now
	if now == nil {
		now = time.Now
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		acct, err := l.Store.Get(ctx, userID)
		if err == nil {
			return Evaluate(now(), acct)
		}
		if errors.Is(err, accounts.ErrNotFound) {
			// Missing record is a lifecycle state, not a fetch failure.
			return Evaluate(now(), nil)
		}

		lastErr = err
		if i < attempts-1 {
			select {
			case <-ctx.Done():
				log.Printf("account fetch cancelled for user %d: %v", userID, ctx.Err())
				return FailClosed()
			case <-time.After(delay):
			}
		}
	}

	log.Printf("account fetch failed after %d attempts for user %d: %v", attempts, userID, lastErr)
	return FailClosed()
}

// FailClosed is the snapshot used when the account record cannot be fetched.
// Indistinguishable from an expired trial on purpose: access is denied and
// the client is pointed at the payment flow.
func FailClosed() Snapshot {
	return Snapshot{
		Status: Status{
			TrialExpired:       true,
			SubscriptionStatus: accounts.StatusExpired,
		},
		Stage:     StageTrialExpired,
		Directive: DirectiveNeedsSubscriptionPay,
		Degraded:  true,
	}
}
