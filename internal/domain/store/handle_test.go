package store

import (
	"testing"

	"link2pay-backend/internal/domain/accounts"

	"gorm.io/gorm"
)

func TestMakeHandle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Thandi's Hair Studio", "thandis-hair-studio"},
		{"Braai & Tings", "braai-and-tings"},
		{"Café Zol", "cafe-zol"},
		{"", "store"},
		{"!!!", "store"},
	}

	for _, tt := range tests {
		if got := MakeHandle(tt.in); got != tt.want {
			t.Errorf("MakeHandle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEnsureStoreHandleKeepsExisting(t *testing.T) {
	existing := "thandis-hair-studio-32"
	acct := &accounts.Account{BusinessName: "Renamed Studio", StoreHandle: &existing}
	acct.ID = 32

	// An existing handle short-circuits before any write.
	got, err := EnsureStoreHandle(&gorm.DB{}, acct)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != existing {
		t.Errorf("handle = %q, want %q", got, existing)
	}
}

func TestEnsureStoreHandleRequiresAccountID(t *testing.T) {
	acct := &accounts.Account{BusinessName: "Thandi's Hair Studio"}

	if _, err := EnsureStoreHandle(&gorm.DB{}, acct); err == nil {
		t.Error("expected error for account without ID")
	}
}

func TestEnsureStoreHandleRejectsNilArgs(t *testing.T) {
	if _, err := EnsureStoreHandle(&gorm.DB{}, nil); err == nil {
		t.Error("expected error for nil account")
	}
	acct := &accounts.Account{BusinessName: "Thandi's Hair Studio"}
	acct.ID = 32
	if _, err := EnsureStoreHandle(nil, acct); err == nil {
		t.Error("expected error for nil db")
	}
}

func TestBuildStorefrontURL(t *testing.T) {
	got := BuildStorefrontURL("thandis-hair-studio-32")
	want := "https://link2pay.co.za/store/thandis-hair-studio-32"
	if got != want {
		t.Errorf("BuildStorefrontURL = %q, want %q", got, want)
	}
}
