package invoices

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"link2pay-backend/database"
	"link2pay-backend/internal/domain/invoices"
	"link2pay-backend/internal/infra/whatsapp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WhatsApp is wired at startup.
var WhatsApp *whatsapp.Client

func ListInvoices(c *gin.Context) {
	userID := c.GetUint("user_id")

	var all []invoices.Invoice
	if err := database.DB.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoices"})
		return
	}

	c.JSON(http.StatusOK, all)
}

func GetInvoice(c *gin.Context) {
	userID := c.GetUint("user_id")

	var invoice invoices.Invoice
	if err := database.DB.
		Preload("Items").
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&invoice).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	c.JSON(http.StatusOK, invoice)
}

func CreateInvoice(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input struct {
		ClientName  string `json:"client_name" binding:"required"`
		ClientPhone string `json:"client_phone"`
		Items       []struct {
			Description string  `json:"description" binding:"required"`
			Quantity    int     `json:"quantity"`
			UnitZAR     float64 `json:"unit_zar"`
		} `json:"items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var total float64
	items := make([]invoices.InvoiceItem, 0, len(input.Items))
	for _, it := range input.Items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += float64(qty) * it.UnitZAR
		items = append(items, invoices.InvoiceItem{
			Description: it.Description,
			Quantity:    qty,
			UnitZAR:     it.UnitZAR,
		})
	}

	invoice := invoices.Invoice{
		UserID:      userID,
		Number:      newInvoiceNumber(),
		ClientName:  input.ClientName,
		ClientPhone: input.ClientPhone,
		AmountZAR:   total,
		Status:      invoices.StatusDraft,
		Items:       items,
	}
	if err := database.DB.Create(&invoice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// SendInvoice marks the invoice sent and dispatches the WhatsApp
// notification. The dispatch is fire-and-forget: a gateway failure never
// rolls the invoice back.
func SendInvoice(c *gin.Context) {
	userID := c.GetUint("user_id")

	var invoice invoices.Invoice
	if err := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&invoice).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":  invoices.StatusSent,
		"sent_at": now,
	}
	if err := database.DB.Model(&invoice).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send invoice"})
		return
	}

	if invoice.ClientPhone != "" {
		WhatsApp.Dispatch(whatsapp.Message{
			Phone:       invoice.ClientPhone,
			ClientName:  invoice.ClientName,
			Amount:      fmt.Sprintf("R%.2f", invoice.AmountZAR),
			InvoiceID:   invoice.Number,
			MessageType: "invoice",
		})
	}

	invoice.Status = invoices.StatusSent
	invoice.SentAt = &now
	c.JSON(http.StatusOK, invoice)
}

func MarkPaid(c *gin.Context) {
	userID := c.GetUint("user_id")

	var invoice invoices.Invoice
	if err := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&invoice).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	now := time.Now()
	if err := database.DB.Model(&invoice).Updates(map[string]interface{}{
		"status":  invoices.StatusPaid,
		"paid_at": now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice"})
		return
	}

	if invoice.ClientPhone != "" {
		WhatsApp.Dispatch(whatsapp.Message{
			Phone:       invoice.ClientPhone,
			ClientName:  invoice.ClientName,
			Amount:      fmt.Sprintf("R%.2f", invoice.AmountZAR),
			InvoiceID:   invoice.Number,
			MessageType: "payment_received",
		})
	}

	c.JSON(http.StatusOK, gin.H{"status": invoices.StatusPaid, "paid_at": now})
}

func newInvoiceNumber() string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "INV-" + short
}
