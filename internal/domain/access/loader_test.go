package access

import (
	"context"
	"errors"
	"testing"
	"time"

	"link2pay-backend/internal/domain/accounts"
)

type fakeStore struct {
	acct     *accounts.Account
	errs     []error
	getCalls int
}

func (f *fakeStore) Get(ctx context.Context, userID uint) (*accounts.Account, error) {
	idx := f.getCalls
	f.getCalls++
	if idx < len(f.errs) && f.errs[idx] != nil {
		return nil, f.errs[idx]
	}
	if f.acct == nil {
		return nil, accounts.ErrNotFound
	}
	return f.acct, nil
}

func (f *fakeStore) Update(ctx context.Context, userID uint, fields map[string]interface{}) error {
	return nil
}

func (f *fakeStore) Insert(ctx context.Context, acct *accounts.Account) error {
	return nil
}

func newTestLoader(store accounts.Store) *Loader {
	return &Loader{
		Store:    store,
		Attempts: 3,
		Delay:    time.Millisecond,
		Now:      func() time.Time { return baseTime },
	}
}

func TestLoadMissingRecordIsBillingSetup(t *testing.T) {
	l := newTestLoader(&fakeStore{})

	snap := l.Load(context.Background(), 42)

	if snap.Directive != DirectiveNeedsBillingSetup {
		t.Errorf("Directive = %q, want %q", snap.Directive, DirectiveNeedsBillingSetup)
	}
	if snap.Degraded {
		t.Error("missing record must not be reported as degraded")
	}
	if snap.Stage != StageNeverBilled {
		t.Errorf("Stage = %q, want %q", snap.Stage, StageNeverBilled)
	}
}

func TestLoadRetriesTransientErrors(t *testing.T) {
	endsAt := baseTime.Add(5 * 24 * time.Hour)
	store := &fakeStore{
		acct: trialAccount(endsAt),
		errs: []error{errors.New("conn reset"), errors.New("conn reset")},
	}
	l := newTestLoader(store)

	snap := l.Load(context.Background(), 42)

	if store.getCalls != 3 {
		t.Errorf("getCalls = %d, want 3", store.getCalls)
	}
	if snap.Degraded {
		t.Error("successful retry must not be degraded")
	}
	if snap.Stage != StageTrialActive {
		t.Errorf("Stage = %q, want %q", snap.Stage, StageTrialActive)
	}
}

func TestLoadFailsClosedAfterExhaustingRetries(t *testing.T) {
	boom := errors.New("db down")
	store := &fakeStore{errs: []error{boom, boom, boom}}
	l := newTestLoader(store)

	snap := l.Load(context.Background(), 42)

	if store.getCalls != 3 {
		t.Errorf("getCalls = %d, want 3", store.getCalls)
	}
	if !snap.Degraded {
		t.Error("exhausted retries must mark the snapshot degraded")
	}
	if snap.Allowed() {
		t.Error("fail-closed snapshot must deny access")
	}
	if snap.Directive != DirectiveNeedsSubscriptionPay {
		t.Errorf("Directive = %q, want %q", snap.Directive, DirectiveNeedsSubscriptionPay)
	}
}

func TestLoadNotFoundShortCircuitsRetries(t *testing.T) {
	store := &fakeStore{}
	l := newTestLoader(store)

	l.Load(context.Background(), 42)

	if store.getCalls != 1 {
		t.Errorf("getCalls = %d, want 1 (not-found is not retried)", store.getCalls)
	}
}

func TestLoadCancelledContextFailsClosed(t *testing.T) {
	boom := errors.New("db down")
	store := &fakeStore{errs: []error{boom, boom, boom}}
	l := &Loader{
		Store:    store,
		Attempts: 3,
		Delay:    time.Minute,
		Now:      func() time.Time { return baseTime },
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap := l.Load(ctx, 42)

	if !snap.Degraded {
		t.Error("cancelled fetch must fail closed")
	}
	if store.getCalls != 1 {
		t.Errorf("getCalls = %d, want 1 (cancel interrupts the retry wait)", store.getCalls)
	}
}
