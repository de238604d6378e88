package valueobjects

import "fmt"

// TicketKind distinguishes complaints from sales enquiries. Both share
// the same lifecycle and assignment rules.
type TicketKind string

const (
	KindComplaint TicketKind = "complaint"
	KindEnquiry   TicketKind = "enquiry"
)

func (k TicketKind) String() string {
	return string(k)
}

func (k TicketKind) IsValid() bool {
	return k == KindComplaint || k == KindEnquiry
}

func NewTicketKind(s string) (TicketKind, error) {
	k := TicketKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid ticket kind: %s", s)
	}
	return k, nil
}
