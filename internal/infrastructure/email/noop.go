package email

import "helioscale/internal/shared/logger"

// NoopEmailService is used when email is disabled in config. It logs
// what would have been sent at debug level.
type NoopEmailService struct {
	logger logger.Interface
}

func NewNoopEmailService(log logger.Interface) *NoopEmailService {
	return &NoopEmailService{logger: log}
}

func (s *NoopEmailService) SendTicketAssignedEmail(to, assigneeName, subject string, ticketID uint) error {
	s.logger.Debugw("email disabled, skipping ticket assigned email", "to", to, "ticket_id", ticketID)
	return nil
}

func (s *NoopEmailService) SendTicketStatusEmail(to, subject string, ticketID uint, oldStatus, newStatus string) error {
	s.logger.Debugw("email disabled, skipping ticket status email", "to", to, "ticket_id", ticketID)
	return nil
}

func (s *NoopEmailService) SendWelcomeEmail(to, name string) error {
	s.logger.Debugw("email disabled, skipping welcome email", "to", to)
	return nil
}

func (s *NoopEmailService) SendAccountVerifiedEmail(to, name string) error {
	s.logger.Debugw("email disabled, skipping account verified email", "to", to)
	return nil
}
