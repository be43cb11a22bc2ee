package users

import "time"

type MeResponse struct {
	User       UserDTO       `json:"user"`
	Billing    BillingDTO    `json:"billing"`
	Access     AccessDTO     `json:"access"`
	Onboarding OnboardingDTO `json:"onboarding"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

/* ---------- BILLING ---------- */

type BillingDTO struct {
	Plan         *PlanDTO         `json:"plan"`
	Subscription *SubscriptionDTO `json:"subscription"`
	Trial        *TrialDTO        `json:"trial"`
}

type PlanDTO struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	Interval         string  `json:"interval"`
	PriceZAR         float64 `json:"price_zar"`
	PaystackPlanCode string  `json:"paystack_plan_code"`
}

type SubscriptionDTO struct {
	Status           string     `json:"status"`
	SubscriptionCode *string    `json:"subscription_code"`
	CancelledAt      *time.Time `json:"cancelled_at"`
	BillingFailures  int        `json:"billing_failures"`
}

type TrialDTO struct {
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	DaysLeft int        `json:"days_left"`
	Used     bool       `json:"used"`
}

/* ---------- ACCESS ---------- */

type AccessDTO struct {
	Stage                 string `json:"stage"` // never_billed|trial_active|trial_expired|subscribed|cancelled
	HasActiveSubscription bool   `json:"has_active_subscription"`
	IsTrialActive         bool   `json:"is_trial_active"`
	TrialExpired          bool   `json:"trial_expired"`
	Allowed               bool   `json:"allowed"`
	Degraded              bool   `json:"degraded"`
}

/* ---------- ONBOARDING ---------- */

type OnboardingDTO struct {
	Directive string        `json:"directive"` // "", show_onboarding, needs_billing_setup, needs_subscription_payment
	Choice    string        `json:"choice"`
	Completed bool          `json:"completed"`
	Store     *StoreInfoDTO `json:"store"`
}

type StoreInfoDTO struct {
	Handle        string `json:"handle"`
	StorefrontURL string `json:"storefront_url"`
	BusinessName  string `json:"business_name"`
	LogoURL       string `json:"logo_url"`
}
