package services

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/francislub/busines-consultant-sub001/config"
)

// SMSSender sends SMS through Twilio.
//
// Requires configuration:
//   - TWILIO_ACCOUNT_SID / TWILIO_AUTH_TOKEN
//   - TWILIO_FROM_NUMBER: the sending phone number in E.164 format
type SMSSender struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewSMSSender(cfg map[string]string) *SMSSender {
	accountSID := config.GetString(cfg, "TWILIO_ACCOUNT_SID", "")
	authToken := config.GetString(cfg, "TWILIO_AUTH_TOKEN", "")

	var client *twilio.RestClient
	if accountSID != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
	}

	return &SMSSender{
		client:     client,
		fromNumber: config.GetString(cfg, "TWILIO_FROM_NUMBER", ""),
	}
}

// Send delivers an SMS to the given number. The error is informational:
// callers treat delivery as best-effort and only log failures.
func (s *SMSSender) Send(to, body string) error {
	if s.client == nil {
		return fmt.Errorf("twilio credentials are not configured")
	}
	if to == "" {
		return fmt.Errorf("recipient phone number is required")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.fromNumber)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send failed: %w", err)
	}

	if resp.Sid != nil {
		log.Info().Str("messageSID", *resp.Sid).Str("to", to).Msg("SMS sent")
	}
	return nil
}
