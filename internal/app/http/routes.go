package routes

import (
	"context"
	"time"

	"link2pay-backend/database"
	adminapi "link2pay-backend/internal/api/admin"
	authapi "link2pay-backend/internal/api/auth"
	"link2pay-backend/internal/api/billing"
	bookingsapi "link2pay-backend/internal/api/bookings"
	invoicesapi "link2pay-backend/internal/api/invoices"
	onboardingapi "link2pay-backend/internal/api/onboarding"
	paystackwebhooks "link2pay-backend/internal/api/paystackwebhook"
	"link2pay-backend/internal/api/plans"
	storeapi "link2pay-backend/internal/api/store"
	"link2pay-backend/internal/api/users"
	"link2pay-backend/internal/app/http/middleware"
	"link2pay-backend/internal/domain/access"
	"link2pay-backend/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// ✅ Apply input sanitization to public routes only

	r.POST("/webhook/paystack", paystackwebhooks.PaystackWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public storefront read, no auth and no subscription gating. Lives on
	// its own prefix so it cannot collide with the gated /store routes.
	r.GET("/storefront/:handle", storeapi.GetStorefront)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", plans.ListPlans)
	public.GET("/verify", authapi.VerifyEmail)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/onboarding/steps", onboardingapi.GetSteps)
	auth.POST("/onboarding/choice", onboardingapi.SetChoice)
	auth.POST("/onboarding/complete", onboardingapi.Complete)
	auth.POST("/onboarding/skip", onboardingapi.Skip)

	auth.POST("/billing/start-trial", billing.StartTrial)
	auth.POST("/billing/subscribe", billing.Subscribe)
	auth.POST("/billing/cancel", billing.Cancel)
	auth.GET("/payments", billing.GetPaymentHistory)

	// Dashboard surfaces behind the access gate: a user gets in on an
	// active trial or an active subscription, and is bounced with the
	// current directive otherwise.
	gated := auth.Group("/")
	gated.Use(middleware.RequireActiveAccess(loadAccessSnapshot))

	gated.PUT("/store/profile", storeapi.UpdateProfile)
	gated.POST("/store/logo", storeapi.UploadLogo)
	gated.GET("/store/sections", storeapi.ListSections)
	gated.POST("/store/sections", storeapi.UpsertSection)
	gated.DELETE("/store/sections/:id", storeapi.DeleteSection)

	gated.GET("/products", storeapi.ListProducts)
	gated.POST("/products", storeapi.CreateProduct)
	gated.PUT("/products/:id", storeapi.UpdateProduct)
	gated.DELETE("/products/:id", storeapi.DeleteProduct)

	gated.GET("/invoices", invoicesapi.ListInvoices)
	gated.GET("/invoices/:id", invoicesapi.GetInvoice)
	gated.POST("/invoices", invoicesapi.CreateInvoice)
	gated.POST("/invoices/:id/send", invoicesapi.SendInvoice)
	gated.POST("/invoices/:id/paid", invoicesapi.MarkPaid)

	gated.GET("/bookings/availability", bookingsapi.GetAvailability)
	gated.PUT("/bookings/availability", bookingsapi.SetAvailability)
	gated.GET("/bookings", bookingsapi.ListBookings)
	gated.POST("/bookings", bookingsapi.CreateBooking)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/user/:id", adminapi.GetUserDetails)
	admin.GET("/payments", adminapi.ListAllPayments)
}

func loadAccessSnapshot(ctx context.Context, userID uint) access.Snapshot {
	loader := access.NewLoader(accounts.NewStore(database.DB))
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return loader.Load(ctx, userID)
}
