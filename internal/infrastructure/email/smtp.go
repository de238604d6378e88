package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"helioscale/internal/shared/services/markdown"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string
}

// SMTPEmailService sends notification emails. Bodies are authored as
// markdown and rendered to sanitized HTML, with the raw markdown used
// as the plain-text alternative.
type SMTPEmailService struct {
	config   SMTPConfig
	dialer   *gomail.Dialer
	renderer markdown.Service
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config:   config,
		dialer:   dialer,
		renderer: markdown.NewService(),
	}
}

func (s *SMTPEmailService) SendTicketAssignedEmail(to, assigneeName, subject string, ticketID uint) error {
	body := fmt.Sprintf(`## Ticket assigned to you

Hi %s,

Ticket **#%d — %s** has been assigned to you.

View it at %s/tickets/%d.
`, assigneeName, ticketID, subject, s.config.BaseURL, ticketID)

	return s.sendMarkdown(to, fmt.Sprintf("Ticket #%d assigned to you", ticketID), body)
}

func (s *SMTPEmailService) SendTicketStatusEmail(to, subject string, ticketID uint, oldStatus, newStatus string) error {
	body := fmt.Sprintf(`## Ticket status updated

Your ticket **#%d — %s** moved from _%s_ to _%s_.

View it at %s/tickets/%d.
`, ticketID, subject, oldStatus, newStatus, s.config.BaseURL, ticketID)

	return s.sendMarkdown(to, fmt.Sprintf("Ticket #%d is now %s", ticketID, newStatus), body)
}

func (s *SMTPEmailService) SendWelcomeEmail(to, name string) error {
	body := fmt.Sprintf(`## Welcome, %s

Thanks for registering. An administrator will verify your account
shortly; you will be able to log in once verification is complete.
`, name)

	return s.sendMarkdown(to, "Welcome to Helioscale", body)
}

func (s *SMTPEmailService) SendAccountVerifiedEmail(to, name string) error {
	body := fmt.Sprintf(`## Account verified

Hi %s, your account has been verified. You can now log in at
%s/login.
`, name, s.config.BaseURL)

	return s.sendMarkdown(to, "Your account has been verified", body)
}

func (s *SMTPEmailService) sendMarkdown(to, subject, mdBody string) error {
	htmlBody, err := s.renderer.ToHTMLSanitized(mdBody)
	if err != nil {
		return fmt.Errorf("failed to render email body: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", mdBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
