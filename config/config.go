package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string

	PAYSTACK_SECRET_KEY string

	SENDGRID_API_KEY string
	MAIL_FROM        string

	WHATSAPP_API_URL string
	WHATSAPP_API_KEY string

	KAFKA_BROKER          string
	KAFKA_ANALYTICS_TOPIC string
	KAFKA_USERNAME        string
	KAFKA_PASSWORD        string

	CLOUDINARY_URL string

	STOREFRONT_BASE_URL string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")

	PAYSTACK_SECRET_KEY = mustEnv("PAYSTACK_SECRET_KEY")

	SENDGRID_API_KEY = getEnv("SENDGRID_API_KEY", "")
	MAIL_FROM = getEnv("MAIL_FROM", "hello@link2pay.co.za")

	WHATSAPP_API_URL = getEnv("WHATSAPP_API_URL", "")
	WHATSAPP_API_KEY = getEnv("WHATSAPP_API_KEY", "")

	KAFKA_BROKER = getEnv("KAFKA_BROKER", "")
	KAFKA_ANALYTICS_TOPIC = getEnv("KAFKA_ANALYTICS_TOPIC", "onboarding-events")
	KAFKA_USERNAME = getEnv("KAFKA_USERNAME", "")
	KAFKA_PASSWORD = getEnv("KAFKA_PASSWORD", "")

	CLOUDINARY_URL = getEnv("CLOUDINARY_URL", "")

	STOREFRONT_BASE_URL = getEnv("STOREFRONT_BASE_URL", "https://link2pay.co.za")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
