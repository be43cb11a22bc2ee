package accounts

import (
	"time"

	"link2pay-backend/internal/domain/plans"
)

// Subscription status tags stored on the account record.
const (
	StatusTrial     = "trial"
	StatusActive    = "active"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"
)

// Onboarding flavors. The choice steers which guided-setup sequence is shown.
const (
	ChoicePhysicalProducts = "physical_products"
	ChoiceBookings         = "bookings"
)

// BillingFailureThreshold is the number of failed charges after which the
// subscription is suspended.
const BillingFailureThreshold = 3

// TrialDays is the length of the free trial window.
const TrialDays = 7

// Account is the merchant account record, one row per user. It is created
// when the user first completes billing setup or starts a trial, and is never
// deleted afterwards.
type Account struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;uniqueIndex:idx_accounts_user_id"`

	BusinessName   string
	StoreHandle    *string `gorm:"uniqueIndex:idx_accounts_store_handle"`
	WhatsAppNumber string  `gorm:"column:whatsapp_number"`
	LogoURL        string

	// Trial window. Set once when the trial begins, never mutated after.
	TrialStartedAt    *time.Time
	TrialEndsAt       *time.Time
	TrialUsed         bool
	TrialReminderSent bool

	HasActiveSubscription bool
	SubscriptionStatus    string `gorm:"type:varchar(20);not null;default:'trial'"`
	BillingFailures       int
	CancelledAt           *time.Time

	OnboardingCompleted  bool
	FirstSignInCompleted bool
	OnboardingChoice     string `gorm:"type:varchar(30)"`

	// Payment methods shown on the storefront / invoices.
	PayfastMerchantID string `gorm:"column:payfast_merchant_id"`
	SnapscanLink      string
	CapitecPaylink    string
	EFTDetails        string `gorm:"column:eft_details"`

	PaystackCustomerCode     *string `gorm:"uniqueIndex:idx_accounts_paystack_customer"`
	PaystackSubscriptionCode *string

	PlanID *uint
	Plan   *plans.Plan

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPaymentMethod reports whether at least one payout method is configured.
func (a *Account) HasPaymentMethod() bool {
	return a.PayfastMerchantID != "" || a.SnapscanLink != "" ||
		a.CapitecPaylink != "" || a.EFTDetails != ""
}
