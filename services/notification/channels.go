package notification

import (
	"context"
	"fmt"

	"arenaslot/config"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/gomail.v2"
)

// SMTPEmailSender delivers email through the configured SMTP account.
type SMTPEmailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPEmailSender builds the email channel from config.
func NewSMTPEmailSender() *SMTPEmailSender {
	cfg := config.AppConfig
	return &SMTPEmailSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPUser,
	}
}

func (s *SMTPEmailSender) SendEmail(ctx context.Context, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// TwilioSMSSender delivers plain SMS through Twilio.
type TwilioSMSSender struct {
	client *twilio.RestClient
	from   string
}

// TwilioWhatsAppSender delivers WhatsApp messages through Twilio. Twilio
// addresses WhatsApp endpoints with a "whatsapp:" prefix on both numbers.
type TwilioWhatsAppSender struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSenders builds the SMS and WhatsApp channels sharing one Twilio
// client.
func NewTwilioSenders() (*TwilioSMSSender, *TwilioWhatsAppSender) {
	cfg := config.AppConfig
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})
	sms := &TwilioSMSSender{client: client, from: cfg.TwilioPhoneNumber}
	wa := &TwilioWhatsAppSender{client: client, from: cfg.TwilioWhatsAppNumber}
	return sms, wa
}

func (s *TwilioSMSSender) SendMessage(ctx context.Context, to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS to %s: %w", to, err)
	}
	return nil
}

func (s *TwilioWhatsAppSender) SendMessage(ctx context.Context, to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:" + to)
	params.SetFrom("whatsapp:" + s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send WhatsApp message to %s: %w", to, err)
	}
	return nil
}
