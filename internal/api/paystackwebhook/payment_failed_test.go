package paystackwebhooks

import (
	"testing"

	"link2pay-backend/internal/domain/accounts"
)

func TestBillingFailureUpdates(t *testing.T) {
	tests := []struct {
		name          string
		current       int
		wantFailures  int
		wantSuspended bool
	}{
		{"first failure", 0, 1, false},
		{"second failure", 1, 2, false},
		{"third failure suspends", 2, 3, true},
		{"beyond threshold stays suspended", 3, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updates, suspended := billingFailureUpdates(tt.current)

			if got := updates["billing_failures"]; got != tt.wantFailures {
				t.Errorf("billing_failures = %v, want %d", got, tt.wantFailures)
			}
			if suspended != tt.wantSuspended {
				t.Errorf("suspended = %v, want %v", suspended, tt.wantSuspended)
			}

			if tt.wantSuspended {
				if got := updates["has_active_subscription"]; got != false {
					t.Errorf("has_active_subscription = %v, want false", got)
				}
				if got := updates["subscription_status"]; got != accounts.StatusExpired {
					t.Errorf("subscription_status = %v, want %q", got, accounts.StatusExpired)
				}
			} else {
				if _, ok := updates["has_active_subscription"]; ok {
					t.Error("subscription flag must not change below the threshold")
				}
			}
		})
	}
}
