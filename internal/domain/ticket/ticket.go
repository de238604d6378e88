package ticket

import (
	"fmt"
	"time"

	vo "helioscale/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id          uint
	kind        vo.TicketKind
	subject     string
	description string
	status      vo.TicketStatus
	ownerID     uint
	assigneeID  *uint
	resolvedAt  *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(
	kind vo.TicketKind,
	subject string,
	description string,
	ownerID uint,
) (*Ticket, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid ticket kind")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := time.Now()
	return &Ticket{
		kind:        kind,
		subject:     subject,
		description: description,
		status:      vo.StatusPending,
		ownerID:     ownerID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	kind vo.TicketKind,
	subject string,
	description string,
	status vo.TicketStatus,
	ownerID uint,
	assigneeID *uint,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid ticket kind")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Ticket{
		id:          id,
		kind:        kind,
		subject:     subject,
		description: description,
		status:      status,
		ownerID:     ownerID,
		assigneeID:  assigneeID,
		resolvedAt:  resolvedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint               { return t.id }
func (t *Ticket) Kind() vo.TicketKind    { return t.kind }
func (t *Ticket) Subject() string        { return t.subject }
func (t *Ticket) Description() string    { return t.description }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) OwnerID() uint          { return t.ownerID }
func (t *Ticket) AssigneeID() *uint      { return t.assigneeID }
func (t *Ticket) ResolvedAt() *time.Time { return t.resolvedAt }
func (t *Ticket) CreatedAt() time.Time   { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time   { return t.updatedAt }

// GetOwnerID implements authorization.OwnedResource.
func (t *Ticket) GetOwnerID() uint { return t.ownerID }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AssignTo assigns the ticket to an employee. Assigning a pending
// ticket moves it to in_progress.
func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = &assigneeID
	t.updatedAt = time.Now()

	if t.status.IsPending() {
		t.status = vo.StatusInProgress
	}

	return nil
}

// ChangeStatus moves the ticket to a new status. Setting the current
// status again is a no-op so repeated updates stay idempotent.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) (changed bool, err error) {
	if !newStatus.IsValid() {
		return false, fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return false, nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return false, fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()

	if newStatus.IsResolved() {
		now := time.Now()
		t.resolvedAt = &now
	} else {
		t.resolvedAt = nil
	}

	return true, nil
}

// IsAssignedTo reports whether the given employee is the current assignee.
func (t *Ticket) IsAssignedTo(accountID uint) bool {
	return t.assigneeID != nil && *t.assigneeID == accountID
}

// CanBeViewedBy implements the resource-level access rule: owners,
// the current assignee, and admins.
func (t *Ticket) CanBeViewedBy(accountID uint, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	if t.ownerID == accountID {
		return true
	}
	return t.IsAssignedTo(accountID)
}
