package paystack

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.paystack.co"

// Client is a minimal Paystack REST client covering the calls the billing
// flow needs: customers, subscription checkout, and subscription disabling.
type Client struct {
	SecretKey  string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(secretKey string) *Client {
	return &Client{
		SecretKey:  secretKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	var envelope apiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("paystack: decode %s %s: %w", method, path, err)
	}
	if resp.StatusCode >= 400 || !envelope.Status {
		return fmt.Errorf("paystack: %s %s: %s (http %d)", method, path, envelope.Message, resp.StatusCode)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("paystack: decode data %s %s: %w", method, path, err)
		}
	}
	return nil
}

// CreateCustomer registers the merchant with Paystack and returns the
// customer code.
func (c *Client) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	var data struct {
		CustomerCode string `json:"customer_code"`
	}
	err := c.do(ctx, http.MethodPost, "/customer", map[string]string{
		"email":      email,
		"first_name": name,
	}, &data)
	if err != nil {
		return "", err
	}
	return data.CustomerCode, nil
}

// InitializeSubscription starts a checkout transaction bound to a plan and
// returns the hosted authorization URL the client is redirected to.
func (c *Client) InitializeSubscription(ctx context.Context, email, planCode, reference string) (string, error) {
	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	}
	err := c.do(ctx, http.MethodPost, "/transaction/initialize", map[string]string{
		"email":     email,
		"plan":      planCode,
		"reference": reference,
	}, &data)
	if err != nil {
		return "", err
	}
	return data.AuthorizationURL, nil
}

// DisableSubscription cancels an active subscription.
func (c *Client) DisableSubscription(ctx context.Context, code, emailToken string) error {
	return c.do(ctx, http.MethodPost, "/subscription/disable", map[string]string{
		"code":  code,
		"token": emailToken,
	}, nil)
}

// VerifySignature checks the x-paystack-signature header: HMAC-SHA512 of the
// raw body keyed with the secret key.
func VerifySignature(secretKey string, body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
