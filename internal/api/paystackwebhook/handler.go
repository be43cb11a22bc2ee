package paystackwebhooks

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"link2pay-backend/config"
	"link2pay-backend/internal/infra/paystack"

	"github.com/gin-gonic/gin"
)

type event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// PaystackWebhook receives billing events. The subscription flags on the
// account record are only ever flipped here and in the cancel handler; all
// other components just consume the resulting state.
func PaystackWebhook(c *gin.Context) {
	secret := config.PAYSTACK_SECRET_KEY
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "PAYSTACK_SECRET_KEY not configured"})
		return
	}

	payload, err := readWebhookBody(c, 65536)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	signature := c.GetHeader("x-paystack-signature")
	if !paystack.VerifySignature(secret, payload, signature) {
		fmt.Println("Paystack signature verification failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	var ev event
	if err := json.Unmarshal(payload, &ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse event"})
		return
	}

	switch ev.Event {
	case "charge.success":
		var data chargeSuccessData
		if err := json.Unmarshal(ev.Data, &data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse charge"})
			return
		}
		if err := handleChargeSuccess(c, &data); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "received"})
		return

	case "invoice.payment_failed":
		var data paymentFailedData
		if err := json.Unmarshal(ev.Data, &data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse invoice"})
			return
		}
		if err := handlePaymentFailed(c, &data); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "received"})
		return

	case "subscription.disable":
		var data subscriptionDisabledData
		if err := json.Unmarshal(ev.Data, &data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse subscription"})
			return
		}
		if err := handleSubscriptionDisabled(c, &data); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "received"})
		return

	default:
		// Acknowledge unknown events to avoid retries
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
}

func readWebhookBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
