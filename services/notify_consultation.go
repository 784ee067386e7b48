package services

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/francislub/busines-consultant-sub001/models"
)

// Notifier delivers consultation status notifications over email and SMS.
// Both channels are best-effort: the consultation row is already committed by
// the time a notification goes out, and a delivery failure never rolls the
// update back or fails the request.
type Notifier struct {
	email *EmailSender
	sms   *SMSSender
}

func NewNotifier(email *EmailSender, sms *SMSSender) *Notifier {
	return &Notifier{email: email, sms: sms}
}

// statusLine is the human wording for each consultation state used in both
// the email body and the SMS.
func statusLine(c *models.Consultation) string {
	when := c.Date.Format("Monday, January 2 2006 at 3:04 PM")
	switch c.Status {
	case models.ConsultationStatusConfirmed:
		return fmt.Sprintf("Your consultation %q has been confirmed for %s.", c.Subject, when)
	case models.ConsultationStatusCancelled:
		return fmt.Sprintf("Your consultation %q scheduled for %s has been cancelled.", c.Subject, when)
	case models.ConsultationStatusCompleted:
		return fmt.Sprintf("Your consultation %q has been completed. Thank you for working with us.", c.Subject)
	default:
		return fmt.Sprintf("Your consultation request %q has been received and is awaiting confirmation.", c.Subject)
	}
}

// ConsultationEmailBody renders the HTML email body for a status change.
func ConsultationEmailBody(c *models.Consultation) string {
	name := "there"
	if c.Client != nil && c.Client.Name != "" {
		name = c.Client.Name
	}

	var b strings.Builder
	b.WriteString("<div style=\"font-family: sans-serif; max-width: 600px;\">")
	b.WriteString(fmt.Sprintf("<h2>Consultation %s</h2>", titleCase(c.Status)))
	b.WriteString(fmt.Sprintf("<p>Hi %s,</p>", name))
	b.WriteString(fmt.Sprintf("<p>%s</p>", statusLine(c)))
	b.WriteString("<p>If you have any questions, simply reply to this email.</p>")
	b.WriteString("</div>")
	return b.String()
}

func titleCase(status string) string {
	if status == "" {
		return status
	}
	lower := strings.ToLower(status)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// ConsultationStatusChanged sends the email and SMS legs for a status change.
// Individual channel failures are logged and collected; the combined error is
// informational only.
func (n *Notifier) ConsultationStatusChanged(c *models.Consultation) error {
	if c.Client == nil {
		return fmt.Errorf("consultation %s has no client loaded, skipping notifications", c.ID)
	}

	var failures []string

	subject := fmt.Sprintf("Consultation %s", strings.ToLower(c.Status))
	if err := n.email.Send(subject, ConsultationEmailBody(c), []string{c.Client.Email}); err != nil {
		log.Error().Err(err).Str("consultationID", c.ID.String()).Msg("failed to send consultation email")
		failures = append(failures, fmt.Sprintf("email: %v", err))
	}

	if c.Client.Phone != nil && *c.Client.Phone != "" {
		if err := n.sms.Send(*c.Client.Phone, statusLine(c)); err != nil {
			log.Error().Err(err).Str("consultationID", c.ID.String()).Msg("failed to send consultation SMS")
			failures = append(failures, fmt.Sprintf("sms: %v", err))
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("some notification channels failed: %s", strings.Join(failures, "; "))
	}
	return nil
}
