package users

import (
	"link2pay-backend/internal/domain/access"
	"link2pay-backend/internal/domain/accounts"
	"link2pay-backend/internal/domain/plans"
	"link2pay-backend/internal/domain/store"
)

func BuildPlanDTO(p *plans.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:               p.ID,
		Name:             p.Name,
		Interval:         p.Interval,
		PriceZAR:         p.PriceZAR,
		PaystackPlanCode: p.PaystackPlanCode,
	}
}

func BuildSubscriptionDTO(acct *accounts.Account) *SubscriptionDTO {
	if acct == nil || (!acct.HasActiveSubscription && acct.PaystackSubscriptionCode == nil) {
		return nil
	}
	return &SubscriptionDTO{
		Status:           acct.SubscriptionStatus,
		SubscriptionCode: acct.PaystackSubscriptionCode,
		CancelledAt:      acct.CancelledAt,
		BillingFailures:  acct.BillingFailures,
	}
}

func BuildTrialDTO(status access.Status, acct *accounts.Account) *TrialDTO {
	if acct == nil || acct.TrialEndsAt == nil {
		return nil
	}
	return &TrialDTO{
		StartsAt: acct.TrialStartedAt,
		EndsAt:   acct.TrialEndsAt,
		DaysLeft: status.TrialDaysLeft,
		Used:     acct.TrialUsed,
	}
}

func BuildAccessDTO(snap access.Snapshot) AccessDTO {
	return AccessDTO{
		Stage:                 string(snap.Stage),
		HasActiveSubscription: snap.Status.HasActiveSubscription,
		IsTrialActive:         snap.Status.IsTrialActive,
		TrialExpired:          snap.Status.TrialExpired,
		Allowed:               snap.Allowed(),
		Degraded:              snap.Degraded,
	}
}

func BuildOnboardingDTO(snap access.Snapshot) OnboardingDTO {
	dto := OnboardingDTO{Directive: string(snap.Directive)}

	acct := snap.Account
	if acct == nil {
		return dto
	}

	dto.Choice = acct.OnboardingChoice
	dto.Completed = acct.OnboardingCompleted

	if acct.StoreHandle != nil && *acct.StoreHandle != "" {
		dto.Store = &StoreInfoDTO{
			Handle:        *acct.StoreHandle,
			StorefrontURL: store.BuildStorefrontURL(*acct.StoreHandle),
			BusinessName:  acct.BusinessName,
			LogoURL:       acct.LogoURL,
		}
	}

	return dto
}
