package access

import (
	"time"

	"link2pay-backend/internal/domain/accounts"
)

// Evaluate produces one snapshot of the account state: derived status,
// lifecycle stage, and exactly one directive. The decision table is ordered,
// first match wins:
//
//   - no record                                -> needs billing setup
//   - subscribed, onboarding pending           -> show onboarding
//   - subscribed, first sign-in unacknowledged -> none (flip flag)
//   - subscribed                               -> none
//   - never started a trial                    -> needs billing setup
//   - trial active, onboarding pending         -> show onboarding
//   - trial active, first sign-in unack'd      -> none (flip flag)
//   - trial active                             -> none
//   - trial expired                            -> needs subscription payment
//
// An active subscription always wins over trial state, so a subscriber is
// never sent to billing setup or the payment wall.
func Evaluate(now time.Time, acct *accounts.Account) Snapshot {
	snap := Snapshot{
		Status:  ComputeStatus(now, acct),
		Stage:   StageOf(now, acct),
		Account: acct,
	}

	if acct == nil {
		snap.Directive = DirectiveNeedsBillingSetup
		return snap
	}

	switch {
	case acct.HasActiveSubscription && !acct.OnboardingCompleted:
		snap.Directive = DirectiveShowOnboarding

	case acct.HasActiveSubscription && !acct.FirstSignInCompleted:
		snap.FlipFirstSignIn = true

	case acct.HasActiveSubscription:
		// fully set up

	case acct.TrialEndsAt == nil:
		snap.Directive = DirectiveNeedsBillingSetup

	case snap.Status.IsTrialActive && !acct.OnboardingCompleted:
		snap.Directive = DirectiveShowOnboarding

	case snap.Status.IsTrialActive && !acct.FirstSignInCompleted:
		snap.FlipFirstSignIn = true

	case snap.Status.IsTrialActive:
		// fully set up, on trial

	default:
		snap.Directive = DirectiveNeedsSubscriptionPay
	}

	return snap
}
