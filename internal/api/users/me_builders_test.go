package users

import (
	"testing"
	"time"

	"link2pay-backend/internal/domain/access"
	"link2pay-backend/internal/domain/accounts"
)

func TestBuildTrialDTO(t *testing.T) {
	t.Run("nil account", func(t *testing.T) {
		if got := BuildTrialDTO(access.Status{}, nil); got != nil {
			t.Errorf("got %+v, want nil", got)
		}
	})

	t.Run("no trial on record", func(t *testing.T) {
		if got := BuildTrialDTO(access.Status{}, &accounts.Account{}); got != nil {
			t.Errorf("got %+v, want nil", got)
		}
	})

	t.Run("active trial", func(t *testing.T) {
		started := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		ends := started.AddDate(0, 0, accounts.TrialDays)
		acct := &accounts.Account{TrialStartedAt: &started, TrialEndsAt: &ends, TrialUsed: true}

		got := BuildTrialDTO(access.Status{IsTrialActive: true, TrialDaysLeft: 4}, acct)
		if got == nil {
			t.Fatal("got nil")
		}
		if got.DaysLeft != 4 {
			t.Errorf("DaysLeft = %d, want 4 (must come from the snapshot, not recomputed)", got.DaysLeft)
		}
		if !got.Used || got.EndsAt == nil || !got.EndsAt.Equal(ends) {
			t.Errorf("unexpected DTO %+v", got)
		}
	})
}

func TestBuildSubscriptionDTO(t *testing.T) {
	if got := BuildSubscriptionDTO(nil); got != nil {
		t.Errorf("nil account: got %+v, want nil", got)
	}
	if got := BuildSubscriptionDTO(&accounts.Account{}); got != nil {
		t.Errorf("never subscribed: got %+v, want nil", got)
	}

	code := "SUB_abc"
	acct := &accounts.Account{
		HasActiveSubscription:    true,
		SubscriptionStatus:       accounts.StatusActive,
		PaystackSubscriptionCode: &code,
		BillingFailures:          1,
	}
	got := BuildSubscriptionDTO(acct)
	if got == nil {
		t.Fatal("got nil")
	}
	if got.Status != accounts.StatusActive || got.BillingFailures != 1 {
		t.Errorf("unexpected DTO %+v", got)
	}

	// A cancelled subscription still surfaces so the client can show it.
	cancelled := time.Now()
	acct.HasActiveSubscription = false
	acct.SubscriptionStatus = accounts.StatusCancelled
	acct.CancelledAt = &cancelled
	got = BuildSubscriptionDTO(acct)
	if got == nil || got.CancelledAt == nil {
		t.Errorf("cancelled subscription should still build a DTO, got %+v", got)
	}
}

func TestBuildAccessDTOMirrorsSnapshot(t *testing.T) {
	snap := access.Snapshot{
		Status: access.Status{IsTrialActive: true, TrialDaysLeft: 2},
		Stage:  access.StageTrialActive,
	}

	got := BuildAccessDTO(snap)
	if got.Stage != string(access.StageTrialActive) {
		t.Errorf("Stage = %q", got.Stage)
	}
	if !got.Allowed {
		t.Error("Allowed = false for an active trial")
	}
	if got.Degraded {
		t.Error("Degraded = true for a clean snapshot")
	}
}

func TestBuildOnboardingDTO(t *testing.T) {
	handle := "thandis-hair-studio-32"
	acct := &accounts.Account{
		BusinessName:        "Thandi's Hair Studio",
		StoreHandle:         &handle,
		OnboardingChoice:    accounts.ChoiceBookings,
		OnboardingCompleted: true,
	}
	snap := access.Snapshot{Directive: access.DirectiveNone, Account: acct}

	got := BuildOnboardingDTO(snap)
	if got.Choice != accounts.ChoiceBookings || !got.Completed {
		t.Errorf("unexpected DTO %+v", got)
	}
	if got.Store == nil || got.Store.Handle != handle {
		t.Fatalf("store info missing from %+v", got)
	}
	if got.Store.StorefrontURL != "https://link2pay.co.za/store/"+handle {
		t.Errorf("StorefrontURL = %q", got.Store.StorefrontURL)
	}

	empty := BuildOnboardingDTO(access.Snapshot{Directive: access.DirectiveNeedsBillingSetup})
	if empty.Directive != string(access.DirectiveNeedsBillingSetup) || empty.Store != nil {
		t.Errorf("unexpected DTO for missing account: %+v", empty)
	}
}
