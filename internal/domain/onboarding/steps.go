package onboarding

import (
	"context"
	"log"
	"sync"
)

// Step names. Each step is complete when its predicate against the
// merchant's data holds; there is no ordering dependency between steps,
// only the suggested UI sequence given by Number.
const (
	StepCustomizeStore = "customize_store"
	StepAddProduct     = "add_product"
	StepSetupBookings  = "setup_bookings"
	StepSetupPayments  = "setup_payments"
	StepSendInvoice    = "send_invoice"
)

// ProfileFields are the account attributes the customize_store and
// setup_payments predicates look at.
type ProfileFields struct {
	BusinessName     string
	StoreHandle      string
	WhatsAppNumber   string
	HasPaymentMethod bool
}

// DataSource answers the existence/attribute checks the step predicates are
// built from. Read-only.
type DataSource interface {
	HasProduct(ctx context.Context, userID uint) (bool, error)
	HasInvoice(ctx context.Context, userID uint) (bool, error)
	HasAvailability(ctx context.Context, userID uint) (bool, error)
	Profile(ctx context.Context, userID uint) (ProfileFields, error)
}

type Step struct {
	Name   string
	Number int
	Check  func(ctx context.Context, ds DataSource, userID uint) (bool, error)
}

type StepState struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
	Done   bool   `json:"done"`
}

func checkCustomizeStore(ctx context.Context, ds DataSource, userID uint) (bool, error) {
	p, err := ds.Profile(ctx, userID)
	if err != nil {
		return false, err
	}
	return p.BusinessName != "" && p.StoreHandle != "" && p.WhatsAppNumber != "", nil
}

func checkSetupPayments(ctx context.Context, ds DataSource, userID uint) (bool, error) {
	p, err := ds.Profile(ctx, userID)
	if err != nil {
		return false, err
	}
	return p.HasPaymentMethod, nil
}

// StepsFor returns the guided-setup sequence for an onboarding flavor.
// Unknown flavors fall back to the physical-products sequence.
func StepsFor(choice string) []Step {
	if choice == "bookings" {
		return []Step{
			{Name: StepCustomizeStore, Number: 1, Check: checkCustomizeStore},
			{Name: StepSetupBookings, Number: 2, Check: func(ctx context.Context, ds DataSource, userID uint) (bool, error) {
				return ds.HasAvailability(ctx, userID)
			}},
			{Name: StepSetupPayments, Number: 3, Check: checkSetupPayments},
			{Name: StepSendInvoice, Number: 4, Check: func(ctx context.Context, ds DataSource, userID uint) (bool, error) {
				return ds.HasInvoice(ctx, userID)
			}},
		}
	}

	return []Step{
		{Name: StepCustomizeStore, Number: 1, Check: checkCustomizeStore},
		{Name: StepAddProduct, Number: 2, Check: func(ctx context.Context, ds DataSource, userID uint) (bool, error) {
			return ds.HasProduct(ctx, userID)
		}},
		{Name: StepSetupPayments, Number: 3, Check: checkSetupPayments},
		{Name: StepSendInvoice, Number: 4, Check: func(ctx context.Context, ds DataSource, userID uint) (bool, error) {
			return ds.HasInvoice(ctx, userID)
		}},
	}
}

// EvaluateAll runs every step predicate for the flavor concurrently. A failed
// predicate marks its step incomplete and never fails the whole evaluation.
func EvaluateAll(ctx context.Context, ds DataSource, userID uint, choice string) []StepState {
	steps := StepsFor(choice)
	states := make([]StepState, len(steps))

	var wg sync.WaitGroup
	for i, step := range steps {
		wg.Add(1)
		go func(i int, step Step) {
			defer wg.Done()
			done, err := step.Check(ctx, ds, userID)
			if err != nil {
				log.Printf("step %s check failed for user %d: %v", step.Name, userID, err)
				done = false
			}
			states[i] = StepState{Name: step.Name, Number: step.Number, Done: done}
		}(i, step)
	}
	wg.Wait()

	return states
}
