package access

import (
	"math"
	"time"

	"link2pay-backend/internal/domain/accounts"
)

// ComputeStatus derives the subscription status from the account record and
// the current time. Deterministic: same (record, now) always yields the same
// output. A nil record means no trial and no subscription.
func ComputeStatus(now time.Time, acct *accounts.Account) Status {
	st := Status{SubscriptionStatus: accounts.StatusTrial}
	if acct == nil {
		return st
	}

	st.HasActiveSubscription = acct.HasActiveSubscription
	if acct.SubscriptionStatus != "" {
		st.SubscriptionStatus = acct.SubscriptionStatus
	}

	if acct.TrialEndsAt != nil {
		// Strict comparison at the boundary: ends-at == now counts as expired.
		if acct.TrialEndsAt.After(now) {
			st.IsTrialActive = true
			st.TrialDaysLeft = daysLeft(now, *acct.TrialEndsAt)
		} else {
			st.TrialExpired = true
		}
	}

	return st
}

// StageOf collapses the record's nullable timestamps and flags into a single
// lifecycle stage.
func StageOf(now time.Time, acct *accounts.Account) Stage {
	switch {
	case acct == nil:
		return StageNeverBilled
	case acct.HasActiveSubscription:
		return StageSubscribed
	case acct.CancelledAt != nil:
		return StageCancelled
	case acct.TrialEndsAt == nil:
		return StageNeverBilled
	case acct.TrialEndsAt.After(now):
		return StageTrialActive
	default:
		return StageTrialExpired
	}
}

func daysLeft(now, endsAt time.Time) int {
	remaining := endsAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}
