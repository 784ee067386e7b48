package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/francislub/busines-consultant-sub001/models"
)

func testConsultation(status string) *models.Consultation {
	return &models.Consultation{
		ID:      uuid.New(),
		Subject: "Quarterly strategy review",
		Date:    time.Date(2026, time.April, 7, 14, 30, 0, 0, time.UTC),
		Status:  status,
		Client: &models.User{
			Name:  "Jordan Okafor",
			Email: "jordan@example.com",
		},
	}
}

func TestStatusLineWording(t *testing.T) {
	confirmed := statusLine(testConsultation(models.ConsultationStatusConfirmed))
	assert.Contains(t, confirmed, "has been confirmed")
	assert.Contains(t, confirmed, "Quarterly strategy review")
	assert.Contains(t, confirmed, "Tuesday, April 7 2026")

	cancelled := statusLine(testConsultation(models.ConsultationStatusCancelled))
	assert.Contains(t, cancelled, "has been cancelled")

	completed := statusLine(testConsultation(models.ConsultationStatusCompleted))
	assert.Contains(t, completed, "has been completed")

	requested := statusLine(testConsultation(models.ConsultationStatusRequested))
	assert.Contains(t, requested, "awaiting confirmation")
}

func TestConsultationEmailBody(t *testing.T) {
	c := testConsultation(models.ConsultationStatusConfirmed)
	body := ConsultationEmailBody(c)

	assert.Contains(t, body, "Hi Jordan Okafor,")
	assert.Contains(t, body, "Consultation Confirmed")
	assert.Contains(t, body, "has been confirmed")
}

func TestConsultationEmailBodyWithoutClientName(t *testing.T) {
	c := testConsultation(models.ConsultationStatusConfirmed)
	c.Client.Name = ""

	assert.Contains(t, ConsultationEmailBody(c), "Hi there,")
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Confirmed", titleCase("CONFIRMED"))
	assert.Equal(t, "Requested", titleCase("requested"))
	assert.Equal(t, "", titleCase(""))
}

func TestNotifierRequiresLoadedClient(t *testing.T) {
	n := NewNotifier(NewEmailSender(nil), NewSMSSender(nil))

	c := testConsultation(models.ConsultationStatusConfirmed)
	c.Client = nil

	assert.Error(t, n.ConsultationStatusChanged(c))
}

// Without credentials both channels fail; the error is informational and must
// name the failed channels rather than panic or drop them silently.
func TestNotifierCollectsChannelFailures(t *testing.T) {
	n := NewNotifier(NewEmailSender(nil), NewSMSSender(nil))

	c := testConsultation(models.ConsultationStatusConfirmed)
	phone := "+15550100"
	c.Client.Phone = &phone

	err := n.ConsultationStatusChanged(c)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email:")
	assert.Contains(t, err.Error(), "sms:")
}
