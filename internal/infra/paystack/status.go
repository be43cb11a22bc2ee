package paystack

import "strings"

// Paystack-ish normalization used ONLY for subscription status values
// arriving on webhooks.
func NormalizeStatus(s string) string {
	switch strings.TrimSpace(s) {
	case "":
		return "none"
	case "active", "non-renewing":
		return "active"
	case "attention":
		return "past_due"
	case "cancelled", "completed":
		return "cancelled"
	default:
		return strings.TrimSpace(s)
	}
}
