package email

import (
	"fmt"
	"time"

	"link2pay-backend/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

func send(toEmail, subject, body string) error {
	if config.SENDGRID_API_KEY == "" {
		// Silent skip so local setups without SendGrid still work.
		fmt.Printf("Email skipped (no SENDGRID_API_KEY): %s -> %s\n", subject, toEmail)
		return nil
	}

	from := mail.NewEmail("Link2Pay", config.MAIL_FROM)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(config.SENDGRID_API_KEY)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d", resp.StatusCode)
	}
	return nil
}

func SendVerificationEmail(to string, token string) error {
	link := fmt.Sprintf("%s/verify?token=%s", config.STOREFRONT_BASE_URL, token)
	body := fmt.Sprintf("Welcome to Link2Pay!\n\nClick the following link to verify your account:\n\n%s", link)
	return send(to, "Verify your Link2Pay account", body)
}

func SendTrialReminder(to, businessName string, endsAt time.Time) error {
	body := fmt.Sprintf(`Hi %s,

Your Link2Pay free trial ends on %s.

Add your card now to keep your storefront, invoices and bookings running
without interruption.

%s/billing`, businessName, endsAt.Format("Monday 2 January 2006"), config.STOREFRONT_BASE_URL)

	return send(to, "Your Link2Pay trial ends soon", body)
}
