package bookings

import (
	"net/http"
	"strings"
	"time"

	"link2pay-backend/database"
	"link2pay-backend/internal/domain/bookings"
	"link2pay-backend/internal/infra/whatsapp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WhatsApp is wired at startup.
var WhatsApp *whatsapp.Client

func GetAvailability(c *gin.Context) {
	userID := c.GetUint("user_id")

	var settings []bookings.AvailabilitySetting
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("weekday ASC").
		Find(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load availability"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// SetAvailability replaces the merchant's weekly slot windows. At least one
// row existing is what completes the setup_bookings onboarding step.
func SetAvailability(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input struct {
		Slots []struct {
			Weekday  int    `json:"weekday"`
			OpensAt  string `json:"opens_at" binding:"required"`
			ClosesAt string `json:"closes_at" binding:"required"`
			SlotMins int    `json:"slot_mins"`
		} `json:"slots" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, s := range input.Slots {
		if s.Weekday < 0 || s.Weekday > 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weekday must be 0-6"})
			return
		}
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&bookings.AvailabilitySetting{}).Error; err != nil {
			return err
		}
		for _, s := range input.Slots {
			mins := s.SlotMins
			if mins <= 0 {
				mins = 30
			}
			setting := bookings.AvailabilitySetting{
				UserID:   userID,
				Weekday:  s.Weekday,
				OpensAt:  s.OpensAt,
				ClosesAt: s.ClosesAt,
				SlotMins: mins,
			}
			if err := tx.Create(&setting).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save availability"})
		return
	}

	GetAvailability(c)
}

func ListBookings(c *gin.Context) {
	userID := c.GetUint("user_id")

	var all []bookings.Booking
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("starts_at ASC").
		Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
		return
	}

	c.JSON(http.StatusOK, all)
}

// CreateBooking records a booking and sends the WhatsApp confirmation
// fire-and-forget.
func CreateBooking(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input struct {
		ClientName  string    `json:"client_name" binding:"required"`
		ClientPhone string    `json:"client_phone"`
		StartsAt    time.Time `json:"starts_at" binding:"required"`
		DurationMin int       `json:"duration_min"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	duration := input.DurationMin
	if duration <= 0 {
		duration = 30
	}

	booking := bookings.Booking{
		UserID:      userID,
		Reference:   newBookingReference(),
		ClientName:  input.ClientName,
		ClientPhone: input.ClientPhone,
		StartsAt:    input.StartsAt,
		DurationMin: duration,
		Status:      "confirmed",
	}
	if err := database.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	if booking.ClientPhone != "" {
		WhatsApp.Dispatch(whatsapp.Message{
			Phone:       booking.ClientPhone,
			ClientName:  booking.ClientName,
			Amount:      "",
			InvoiceID:   booking.Reference,
			MessageType: "booking_confirmation",
		})
	}

	c.JSON(http.StatusCreated, booking)
}

func newBookingReference() string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "BK-" + short
}
