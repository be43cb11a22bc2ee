package database

import (
	"fmt"
	"log"
	"os"

	"link2pay-backend/internal/domain/accounts"
	"link2pay-backend/internal/domain/billing"
	"link2pay-backend/internal/domain/bookings"
	"link2pay-backend/internal/domain/catalog"
	"link2pay-backend/internal/domain/invoices"
	"link2pay-backend/internal/domain/media"
	"link2pay-backend/internal/domain/onboarding"
	"link2pay-backend/internal/domain/plans"
	"link2pay-backend/internal/domain/store"
	"link2pay-backend/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// ✅ REQUIRED for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	// ✅ Auto-migrate all domain models
	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&users.VerificationToken{},
		&accounts.Account{},
		&plans.Plan{},
		&billing.Payment{},

		// media
		&media.Image{},

		// storefront
		&store.StoreSection{},
		&catalog.Product{},

		// invoicing + bookings
		&invoices.Invoice{},
		&invoices.InvoiceItem{},
		&bookings.AvailabilitySetting{},
		&bookings.Booking{},

		// onboarding analytics
		&onboarding.StepEvent{},
	); err != nil {
		log.Fatal("❌ AutoMigrate failed:", err)
	}

	if err := plans.SeedDefaults(DB); err != nil {
		log.Fatal("❌ Plan seeding failed:", err)
	}

	fmt.Println("✅ Database ready")
}
