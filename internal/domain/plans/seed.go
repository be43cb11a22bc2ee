package plans

import "gorm.io/gorm"

var defaults = []Plan{
	{Name: "Link2Pay Monthly", PriceZAR: 152, PaystackPlanCode: "PLN_link2pay_monthly", Interval: "month"},
	{Name: "Link2Pay Annual", PriceZAR: 1520, PaystackPlanCode: "PLN_link2pay_annual", Interval: "year"},
}

// SeedDefaults inserts the built-in plans if they are not present yet.
// Existing rows keep their values (plan codes are managed in Paystack).
func SeedDefaults(db *gorm.DB) error {
	for _, p := range defaults {
		var existing Plan
		err := db.Where("paystack_plan_code = ?", p.PaystackPlanCode).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&p).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
