package whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"link2pay-backend/config"
)

// Message is the structured payload forwarded to the WhatsApp Business API
// gateway. MessageType picks the template on the gateway side
// (invoice | booking_confirmation | payment_received).
type Message struct {
	Phone       string `json:"phone"`
	ClientName  string `json:"clientName"`
	Amount      string `json:"amount"`
	InvoiceID   string `json:"invoiceId"`
	MessageType string `json:"messageType"`
}

type Client struct {
	APIURL     string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		APIURL:     config.WHATSAPP_API_URL,
		APIKey:     config.WHATSAPP_API_KEY,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send forwards the message to the gateway. Skips silently when the gateway
// is not configured so invoice/booking flows work without it.
func (c *Client) Send(msg Message) error {
	if c == nil || c.APIURL == "" {
		fmt.Println("WhatsApp skipped: WHATSAPP_API_URL not set")
		return nil
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.APIURL, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("whatsapp gateway error: status %d", resp.StatusCode)
	}
	return nil
}

// Dispatch sends in the background. Failures are logged, never surfaced:
// the action the notification was attached to is already committed.
func (c *Client) Dispatch(msg Message) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("WhatsApp dispatch panic recovered: %v\n", r)
			}
		}()
		if err := c.Send(msg); err != nil {
			fmt.Printf("WhatsApp dispatch failed (%s to %s): %v\n", msg.MessageType, msg.Phone, err)
		}
	}()
}
