package paystackwebhooks

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"link2pay-backend/config"

	"github.com/gin-gonic/gin"
)

func webhookRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook/paystack", PaystackWebhook)
	return r
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestPaystackWebhookRejectsBadSignature(t *testing.T) {
	config.PAYSTACK_SECRET_KEY = "sk_test_secret"
	defer func() { config.PAYSTACK_SECRET_KEY = "" }()

	body := []byte(`{"event":"charge.success","data":{}}`)

	tests := []struct {
		name      string
		signature string
	}{
		{"missing signature", ""},
		{"wrong key", sign("sk_test_other", body)},
		{"garbage", "not-a-signature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/webhook/paystack", bytes.NewReader(body))
			if tt.signature != "" {
				req.Header.Set("x-paystack-signature", tt.signature)
			}

			w := httptest.NewRecorder()
			webhookRouter().ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestPaystackWebhookAcknowledgesUnknownEvents(t *testing.T) {
	config.PAYSTACK_SECRET_KEY = "sk_test_secret"
	defer func() { config.PAYSTACK_SECRET_KEY = "" }()

	// Unknown events must be acked with 200 so Paystack stops retrying.
	body := []byte(`{"event":"transfer.success","data":{}}`)
	req := httptest.NewRequest(http.MethodPost, "/webhook/paystack", bytes.NewReader(body))
	req.Header.Set("x-paystack-signature", sign("sk_test_secret", body))

	w := httptest.NewRecorder()
	webhookRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestPaystackWebhookRequiresConfiguredSecret(t *testing.T) {
	config.PAYSTACK_SECRET_KEY = ""

	req := httptest.NewRequest(http.MethodPost, "/webhook/paystack", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	webhookRouter().ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
