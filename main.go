package main

import (
	"log"
	"os"
	"time"

	"link2pay-backend/config"
	"link2pay-backend/database"
	bookingsapi "link2pay-backend/internal/api/bookings"
	invoicesapi "link2pay-backend/internal/api/invoices"
	onboardingapi "link2pay-backend/internal/api/onboarding"
	storeapi "link2pay-backend/internal/api/store"
	routes "link2pay-backend/internal/app/http"
	"link2pay-backend/internal/app/jobs"
	"link2pay-backend/internal/domain/onboarding"
	"link2pay-backend/internal/infra/events"
	"link2pay-backend/internal/infra/uploads"
	"link2pay-backend/internal/infra/whatsapp"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	producer := events.NewProducer(
		config.KAFKA_BROKER,
		config.KAFKA_ANALYTICS_TOPIC,
		config.KAFKA_USERNAME,
		config.KAFKA_PASSWORD,
	)
	onboardingapi.Tracker = onboarding.NewTracker(database.DB, producer)

	uploader, err := uploads.New()
	if err != nil {
		log.Printf("Cloudinary disabled: %v", err)
	}
	storeapi.Uploader = uploader

	wa := whatsapp.NewClient()
	invoicesapi.WhatsApp = wa
	bookingsapi.WhatsApp = wa

	go jobs.RunTrialReminders()

	r := gin.Default()

	// ✅ Add CORS middleware BEFORE registering routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
