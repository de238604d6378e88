package usecases

// TicketMailer sends ticket lifecycle notifications. Failures never
// fail the operation that triggered them.
type TicketMailer interface {
	SendTicketAssignedEmail(to, assigneeName, subject string, ticketID uint) error
	SendTicketStatusEmail(to, subject string, ticketID uint, oldStatus, newStatus string) error
}

// ContentSanitizer strips markup from user-submitted text before it is
// stored.
type ContentSanitizer interface {
	StripTags(content string) string
}
