package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusPending    TicketStatus = "pending"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusResolved:   true,
}

// ticketStatusTransitions is the explicit transition policy. Transitions
// are allowed in any direction between the three states; a resolved
// ticket may be reopened by moving it back to pending or in_progress.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusPending: {
		StatusInProgress,
		StatusResolved,
	},
	StatusInProgress: {
		StatusPending,
		StatusResolved,
	},
	StatusResolved: {
		StatusPending,
		StatusInProgress,
	},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowed, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsPending() bool {
	return ts == StatusPending
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
