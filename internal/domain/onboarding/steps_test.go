package onboarding

import (
	"context"
	"errors"
	"testing"
)

type fakeSource struct {
	product      bool
	invoice      bool
	availability bool
	profile      ProfileFields

	productErr error
	profileErr error
}

func (f *fakeSource) HasProduct(ctx context.Context, userID uint) (bool, error) {
	return f.product, f.productErr
}

func (f *fakeSource) HasInvoice(ctx context.Context, userID uint) (bool, error) {
	return f.invoice, nil
}

func (f *fakeSource) HasAvailability(ctx context.Context, userID uint) (bool, error) {
	return f.availability, nil
}

func (f *fakeSource) Profile(ctx context.Context, userID uint) (ProfileFields, error) {
	return f.profile, f.profileErr
}

func stateByName(t *testing.T, states []StepState, name string) StepState {
	t.Helper()
	for _, s := range states {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("step %q not in states %+v", name, states)
	return StepState{}
}

func TestStepsForSequences(t *testing.T) {
	tests := []struct {
		choice string
		want   []string
	}{
		{"physical_products", []string{StepCustomizeStore, StepAddProduct, StepSetupPayments, StepSendInvoice}},
		{"bookings", []string{StepCustomizeStore, StepSetupBookings, StepSetupPayments, StepSendInvoice}},
		{"", []string{StepCustomizeStore, StepAddProduct, StepSetupPayments, StepSendInvoice}},
		{"unknown", []string{StepCustomizeStore, StepAddProduct, StepSetupPayments, StepSendInvoice}},
	}

	for _, tt := range tests {
		t.Run("choice "+tt.choice, func(t *testing.T) {
			steps := StepsFor(tt.choice)
			if len(steps) != len(tt.want) {
				t.Fatalf("got %d steps, want %d", len(steps), len(tt.want))
			}
			for i, s := range steps {
				if s.Name != tt.want[i] {
					t.Errorf("step[%d] = %q, want %q", i, s.Name, tt.want[i])
				}
				if s.Number != i+1 {
					t.Errorf("step %q number = %d, want %d", s.Name, s.Number, i+1)
				}
			}
		})
	}
}

func TestEvaluateAllAddProductExistence(t *testing.T) {
	// add_product is done exactly when at least one product row exists.
	for _, hasProduct := range []bool{false, true} {
		src := &fakeSource{product: hasProduct}
		states := EvaluateAll(context.Background(), src, 1, "physical_products")
		got := stateByName(t, states, StepAddProduct)
		if got.Done != hasProduct {
			t.Errorf("hasProduct=%v: add_product done = %v", hasProduct, got.Done)
		}
	}
}

func TestEvaluateAllProfilePredicates(t *testing.T) {
	src := &fakeSource{
		profile: ProfileFields{
			BusinessName:     "Thandi's Braids",
			StoreHandle:      "thandis-braids",
			WhatsAppNumber:   "+27821234567",
			HasPaymentMethod: false,
		},
	}

	states := EvaluateAll(context.Background(), src, 1, "physical_products")

	if got := stateByName(t, states, StepCustomizeStore); !got.Done {
		t.Error("customize_store should be done with a full profile")
	}
	if got := stateByName(t, states, StepSetupPayments); got.Done {
		t.Error("setup_payments should be pending with no payment method")
	}
}

func TestEvaluateAllCustomizeStoreNeedsEveryField(t *testing.T) {
	src := &fakeSource{
		profile: ProfileFields{
			BusinessName: "Thandi's Braids",
			StoreHandle:  "thandis-braids",
			// WhatsAppNumber missing
		},
	}

	states := EvaluateAll(context.Background(), src, 1, "physical_products")
	if got := stateByName(t, states, StepCustomizeStore); got.Done {
		t.Error("customize_store must stay pending while any profile field is empty")
	}
}

func TestEvaluateAllBookingsFlavor(t *testing.T) {
	src := &fakeSource{availability: true, invoice: true}

	states := EvaluateAll(context.Background(), src, 1, "bookings")

	if got := stateByName(t, states, StepSetupBookings); !got.Done {
		t.Error("setup_bookings should be done with availability configured")
	}
	if got := stateByName(t, states, StepSendInvoice); !got.Done {
		t.Error("send_invoice should be done with an invoice present")
	}
	for _, s := range states {
		if s.Name == StepAddProduct {
			t.Error("bookings flavor must not include add_product")
		}
	}
}

func TestEvaluateAllPredicateErrorMeansIncomplete(t *testing.T) {
	src := &fakeSource{product: true, productErr: errors.New("db timeout"), invoice: true}

	states := EvaluateAll(context.Background(), src, 1, "physical_products")

	if got := stateByName(t, states, StepAddProduct); got.Done {
		t.Error("a failed predicate must report its step incomplete")
	}
	if got := stateByName(t, states, StepSendInvoice); !got.Done {
		t.Error("other steps must be unaffected by one predicate failing")
	}
}

func TestEvaluateAllPreservesOrder(t *testing.T) {
	src := &fakeSource{product: true, invoice: true, profile: ProfileFields{
		BusinessName: "x", StoreHandle: "x", WhatsAppNumber: "x", HasPaymentMethod: true,
	}}

	states := EvaluateAll(context.Background(), src, 1, "physical_products")

	for i, s := range states {
		if s.Number != i+1 {
			t.Errorf("states[%d].Number = %d, concurrent evaluation must keep step order", i, s.Number)
		}
		if !s.Done {
			t.Errorf("step %q should be done with all data present", s.Name)
		}
	}
}
