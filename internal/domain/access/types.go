package access

import "link2pay-backend/internal/domain/accounts"

// Directive is the single output signal telling the client which full-screen
// flow (if any) to present. Empty means the account is fully set up.
type Directive string

const (
	DirectiveNone                 Directive = ""
	DirectiveShowOnboarding       Directive = "show_onboarding"
	DirectiveNeedsBillingSetup    Directive = "needs_billing_setup"
	DirectiveNeedsSubscriptionPay Directive = "needs_subscription_payment"
)

// Stage is the account lifecycle, derived once from the record instead of
// re-inferred from nullable timestamps at every consumer.
type Stage string

const (
	StageNeverBilled  Stage = "never_billed"
	StageTrialActive  Stage = "trial_active"
	StageTrialExpired Stage = "trial_expired"
	StageSubscribed   Stage = "subscribed"
	StageCancelled    Stage = "cancelled"
)

// Status is the derived subscription status, a pure function of
// (account record, now).
type Status struct {
	HasActiveSubscription bool   `json:"has_active_subscription"`
	IsTrialActive         bool   `json:"is_trial_active"`
	TrialDaysLeft         int    `json:"trial_days_left"`
	TrialExpired          bool   `json:"trial_expired"`
	SubscriptionStatus    string `json:"subscription_status"`
}

// Snapshot is one evaluation of the account state. Every consumer (the /me
// response, the access-guard middleware, onboarding) branches on the same
// snapshot rather than re-deriving its own.
type Snapshot struct {
	Status    Status
	Stage     Stage
	Directive Directive

	// FlipFirstSignIn is set when the record is in the transient
	// "onboarding done but first sign-in not yet acknowledged" state. The
	// caller persists the flip; re-applying it is a no-op.
	FlipFirstSignIn bool

	// Degraded is set when the record could not be fetched and the snapshot
	// is the fail-closed default.
	Degraded bool

	Account *accounts.Account
}

// Allowed reports whether feature access is granted under this snapshot.
func (s Snapshot) Allowed() bool {
	return s.Status.HasActiveSubscription || s.Status.IsTrialActive
}
