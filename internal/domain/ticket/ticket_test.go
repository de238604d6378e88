package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helioscale/internal/domain/ticket/valueobjects"
)

func newTestTicket(t *testing.T, status vo.TicketStatus, assigneeID *uint) *Ticket {
	t.Helper()
	tk, err := ReconstructTicket(
		1,
		vo.KindComplaint,
		"Inverter fault after installation",
		"The inverter shows error E03 every morning.",
		status,
		10,
		assigneeID,
		nil,
		time.Now().Add(-time.Hour),
		time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)
	return tk
}

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name        string
		kind        vo.TicketKind
		subject     string
		description string
		ownerID     uint
		wantErr     bool
	}{
		{
			name:        "valid complaint",
			kind:        vo.KindComplaint,
			subject:     "Panel output dropped",
			description: "Generation halved since last week.",
			ownerID:     10,
		},
		{
			name:        "valid enquiry",
			kind:        vo.KindEnquiry,
			subject:     "Quote for 5kW rooftop system",
			description: "Looking for a quote for a residential install.",
			ownerID:     11,
		},
		{
			name:        "missing subject",
			kind:        vo.KindComplaint,
			subject:     "",
			description: "some description",
			ownerID:     10,
			wantErr:     true,
		},
		{
			name:        "missing owner",
			kind:        vo.KindEnquiry,
			subject:     "subject",
			description: "description",
			ownerID:     0,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.kind, tt.subject, tt.description, tt.ownerID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusPending, tk.Status())
			assert.Nil(t, tk.AssigneeID())
			assert.Nil(t, tk.ResolvedAt())
		})
	}
}

func TestTicket_AssignTo(t *testing.T) {
	t.Run("assigning a pending ticket moves it to in_progress", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusPending, nil)

		require.NoError(t, tk.AssignTo(5))

		assert.True(t, tk.IsAssignedTo(5))
		assert.Equal(t, vo.StatusInProgress, tk.Status())
	})

	t.Run("reassigning a resolved ticket keeps its status", func(t *testing.T) {
		assignee := uint(5)
		tk := newTestTicket(t, vo.StatusResolved, &assignee)

		require.NoError(t, tk.AssignTo(6))

		assert.True(t, tk.IsAssignedTo(6))
		assert.Equal(t, vo.StatusResolved, tk.Status())
	})

	t.Run("rejects zero assignee", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusPending, nil)
		assert.Error(t, tk.AssignTo(0))
	})
}

func TestTicket_ChangeStatus(t *testing.T) {
	t.Run("resolving sets resolved timestamp", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusInProgress, nil)

		changed, err := tk.ChangeStatus(vo.StatusResolved)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, vo.StatusResolved, tk.Status())
		require.NotNil(t, tk.ResolvedAt())
	})

	t.Run("reopening clears resolved timestamp", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusInProgress, nil)
		_, err := tk.ChangeStatus(vo.StatusResolved)
		require.NoError(t, err)

		changed, err := tk.ChangeStatus(vo.StatusInProgress)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Nil(t, tk.ResolvedAt())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusInProgress, nil)

		changed, err := tk.ChangeStatus(vo.StatusInProgress)

		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		tk := newTestTicket(t, vo.StatusPending, nil)

		_, err := tk.ChangeStatus(vo.TicketStatus("archived"))

		assert.Error(t, err)
	})
}

func TestTicket_CanBeViewedBy(t *testing.T) {
	assignee := uint(5)
	tk := newTestTicket(t, vo.StatusInProgress, &assignee)

	tests := []struct {
		name      string
		accountID uint
		isAdmin   bool
		want      bool
	}{
		{"owner", 10, false, true},
		{"assignee", 5, false, true},
		{"admin", 99, true, true},
		{"other customer", 11, false, false},
		{"other employee", 6, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tk.CanBeViewedBy(tt.accountID, tt.isAdmin))
		})
	}
}

func TestTicketStatus_Transitions(t *testing.T) {
	// Every direction between the three states is allowed, including
	// reopening a resolved ticket.
	statuses := []vo.TicketStatus{vo.StatusPending, vo.StatusInProgress, vo.StatusResolved}
	for _, from := range statuses {
		for _, to := range statuses {
			if from == to {
				continue
			}
			assert.True(t, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}
