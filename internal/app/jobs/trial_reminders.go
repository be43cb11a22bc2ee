package jobs

import (
	"log"
	"time"

	"link2pay-backend/database"
	"link2pay-backend/internal/domain/accounts"
	"link2pay-backend/internal/domain/users"
	"link2pay-backend/internal/infra/email"
)

const reminderInterval = time.Hour

// RunTrialReminders checks every hour for trials ending within 24 hours and
// emails each merchant once. Meant to run in its own goroutine.
func RunTrialReminders() {
	ticker := time.NewTicker(reminderInterval)
	defer ticker.Stop()
	for range ticker.C {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("trial reminder tick panic: %v", r)
				}
			}()
			sendDueReminders(time.Now())
		}()
	}
}

func sendDueReminders(now time.Time) {
	cutoff := now.Add(24 * time.Hour)

	var due []accounts.Account
	err := database.DB.
		Where("trial_ends_at IS NOT NULL").
		Where("trial_ends_at > ? AND trial_ends_at <= ?", now, cutoff).
		Where("has_active_subscription = ?", false).
		Where("trial_reminder_sent = ?", false).
		Find(&due).Error
	if err != nil {
		log.Printf("trial reminder query failed: %v", err)
		return
	}

	for _, acct := range due {
		var user users.User
		if err := database.DB.Where("id = ?", acct.UserID).First(&user).Error; err != nil {
			log.Printf("trial reminder: user %d not found: %v", acct.UserID, err)
			continue
		}

		name := acct.BusinessName
		if name == "" {
			name = user.Name
		}
		if err := email.SendTrialReminder(user.Email, name, *acct.TrialEndsAt); err != nil {
			log.Printf("trial reminder email failed for user %d: %v", acct.UserID, err)
			continue
		}

		if err := database.DB.Model(&accounts.Account{}).
			Where("user_id = ?", acct.UserID).
			Update("trial_reminder_sent", true).Error; err != nil {
			log.Printf("trial reminder flag update failed for user %d: %v", acct.UserID, err)
		}
	}
}
