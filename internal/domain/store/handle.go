package store

import (
	"fmt"
	"strings"

	"link2pay-backend/config"
	"link2pay-backend/internal/domain/accounts"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

/*
	Store handle helpers
	--------------------
	- Responsible ONLY for:
	  • generating storefront handles
	  • persisting them
	  • building public storefront URLs
	- No access logic, no billing logic here
*/

// MakeHandle generates a URL-safe base handle from the business name.
// Example: "Thandi's Hair Studio" -> "thandis-hair-studio"
func MakeHandle(businessName string) string {
	base := slug.Make(businessName)
	if base == "" {
		base = "store"
	}
	return base
}

// EnsureStoreHandle ensures acct.StoreHandle exists and is persisted.
// Must be called AFTER the account has an ID (after Create).
func EnsureStoreHandle(db *gorm.DB, acct *accounts.Account) (string, error) {
	if acct == nil {
		return "", fmt.Errorf("account is nil")
	}
	if db == nil {
		return "", fmt.Errorf("db is nil")
	}

	if acct.StoreHandle != nil && strings.TrimSpace(*acct.StoreHandle) != "" {
		return strings.TrimSpace(*acct.StoreHandle), nil
	}

	if acct.ID == 0 {
		return "", fmt.Errorf("account ID missing (call EnsureStoreHandle after Create)")
	}

	handle := fmt.Sprintf("%s-%d", MakeHandle(acct.BusinessName), acct.ID)
	acct.StoreHandle = &handle

	if err := db.
		Model(&accounts.Account{}).
		Where("id = ?", acct.ID).
		Update("store_handle", handle).Error; err != nil {
		return "", err
	}

	return handle, nil
}

// BuildStorefrontURL builds the public storefront URL from a handle.
// Example: "thandis-hair-studio-32" -> "https://link2pay.co.za/store/thandis-hair-studio-32"
func BuildStorefrontURL(handle string) string {
	base := strings.TrimRight(config.STOREFRONT_BASE_URL, "/")
	if base == "" {
		base = "https://link2pay.co.za"
	}
	return base + "/store/" + handle
}
