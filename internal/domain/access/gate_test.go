package access

import (
	"testing"
	"time"

	"link2pay-backend/internal/domain/accounts"
)

func subscribedAccount() *accounts.Account {
	return &accounts.Account{
		UserID:                1,
		HasActiveSubscription: true,
		SubscriptionStatus:    accounts.StatusActive,
		OnboardingCompleted:   true,
		FirstSignInCompleted:  true,
	}
}

func TestEvaluateDecisionTable(t *testing.T) {
	activeTrial := baseTime.Add(5 * 24 * time.Hour)
	expiredTrial := baseTime.Add(-time.Hour)

	tests := []struct {
		name          string
		acct          *accounts.Account
		wantDirective Directive
		wantFlip      bool
		wantAllowed   bool
	}{
		{
			name:          "no record means billing setup",
			acct:          nil,
			wantDirective: DirectiveNeedsBillingSetup,
		},
		{
			name: "subscribed with onboarding pending",
			acct: func() *accounts.Account {
				a := subscribedAccount()
				a.OnboardingCompleted = false
				return a
			}(),
			wantDirective: DirectiveShowOnboarding,
			wantAllowed:   true,
		},
		{
			name: "subscribed first sign-in unacknowledged",
			acct: func() *accounts.Account {
				a := subscribedAccount()
				a.FirstSignInCompleted = false
				return a
			}(),
			wantDirective: DirectiveNone,
			wantFlip:      true,
			wantAllowed:   true,
		},
		{
			name:          "subscribed and fully set up",
			acct:          subscribedAccount(),
			wantDirective: DirectiveNone,
			wantAllowed:   true,
		},
		{
			name:          "record exists but trial never started",
			acct:          &accounts.Account{UserID: 1},
			wantDirective: DirectiveNeedsBillingSetup,
		},
		{
			name: "trial active onboarding pending",
			acct: func() *accounts.Account {
				a := trialAccount(activeTrial)
				return a
			}(),
			wantDirective: DirectiveShowOnboarding,
			wantAllowed:   true,
		},
		{
			name: "trial active first sign-in unacknowledged",
			acct: func() *accounts.Account {
				a := trialAccount(activeTrial)
				a.OnboardingCompleted = true
				return a
			}(),
			wantDirective: DirectiveNone,
			wantFlip:      true,
			wantAllowed:   true,
		},
		{
			name: "trial active fully set up",
			acct: func() *accounts.Account {
				a := trialAccount(activeTrial)
				a.OnboardingCompleted = true
				a.FirstSignInCompleted = true
				return a
			}(),
			wantDirective: DirectiveNone,
			wantAllowed:   true,
		},
		{
			name:          "trial expired",
			acct:          trialAccount(expiredTrial),
			wantDirective: DirectiveNeedsSubscriptionPay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Evaluate(baseTime, tt.acct)
			if snap.Directive != tt.wantDirective {
				t.Errorf("Directive = %q, want %q", snap.Directive, tt.wantDirective)
			}
			if snap.FlipFirstSignIn != tt.wantFlip {
				t.Errorf("FlipFirstSignIn = %v, want %v", snap.FlipFirstSignIn, tt.wantFlip)
			}
			if snap.Allowed() != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", snap.Allowed(), tt.wantAllowed)
			}
		})
	}
}

func TestEvaluateSubscriptionOverridesExpiredTrial(t *testing.T) {
	acct := trialAccount(baseTime.Add(-48 * time.Hour))
	acct.HasActiveSubscription = true
	acct.SubscriptionStatus = accounts.StatusActive
	acct.OnboardingCompleted = true
	acct.FirstSignInCompleted = true

	snap := Evaluate(baseTime, acct)
	if snap.Directive != DirectiveNone {
		t.Errorf("subscriber got directive %q, want none", snap.Directive)
	}
	if !snap.Allowed() {
		t.Error("subscriber with expired trial must keep access")
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	acct := trialAccount(baseTime.Add(3 * 24 * time.Hour))
	acct.OnboardingCompleted = true

	first := Evaluate(baseTime, acct)
	second := Evaluate(baseTime, acct)

	if first.Directive != second.Directive ||
		first.Stage != second.Stage ||
		first.FlipFirstSignIn != second.FlipFirstSignIn ||
		first.Status != second.Status {
		t.Errorf("repeated evaluation diverged: %+v vs %+v", first, second)
	}
}

func TestEvaluateExactlyOneDirective(t *testing.T) {
	// Every row of the table emits at most one directive; FlipFirstSignIn
	// never coincides with one.
	cases := []*accounts.Account{
		nil,
		{UserID: 1},
		trialAccount(baseTime.Add(24 * time.Hour)),
		trialAccount(baseTime.Add(-24 * time.Hour)),
		subscribedAccount(),
	}

	for _, acct := range cases {
		snap := Evaluate(baseTime, acct)
		if snap.FlipFirstSignIn && snap.Directive != DirectiveNone {
			t.Errorf("flip and directive %q emitted together for %+v", snap.Directive, acct)
		}
	}
}

func TestEvaluateStageMatchesStatus(t *testing.T) {
	snap := Evaluate(baseTime, trialAccount(baseTime.Add(5*24*time.Hour)))

	if snap.Stage != StageTrialActive {
		t.Errorf("Stage = %q, want %q", snap.Stage, StageTrialActive)
	}
	if snap.Status.TrialDaysLeft != 5 {
		t.Errorf("TrialDaysLeft = %d, want 5", snap.Status.TrialDaysLeft)
	}
}
