package billing

import (
	"time"

	"link2pay-backend/internal/domain/plans"
	"link2pay-backend/internal/domain/users"
)

type Payment struct {
	ID                       uint `gorm:"primaryKey"`
	UserID                   uint
	User                     users.User
	PlanID                   *uint
	Plan                     *plans.Plan
	PaystackReference        string `gorm:"uniqueIndex"`
	PaystackSubscriptionCode *string
	AmountZAR                float64 `gorm:"column:amount_zar"`
	Status                   string
	Channel                  string // card, eft, ...
	PaidAt                   *time.Time
	CreatedAt                time.Time
}
