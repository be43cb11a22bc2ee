package plans

type Plan struct {
	ID               uint `gorm:"primaryKey"`
	Name             string
	PriceZAR         float64 `gorm:"column:price_zar"`
	PaystackPlanCode string  `gorm:"column:paystack_plan_code;not null;uniqueIndex:idx_plans_paystack_plan_code"`
	Interval         string  // month/year
}
