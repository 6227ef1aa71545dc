package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "saigonbistro/internal/domain/ticket/valueobjects"
)

func newTestTicket(t *testing.T, ownerID *uint, status vo.TicketStatus) *Ticket {
	t.Helper()

	created := time.Now().UTC().Add(-time.Hour)
	tk, err := ReconstructTicket(
		1,
		"T-20260101-0001",
		10,
		"Linh Tran",
		"linh@example.com",
		"",
		nil,
		"billing",
		"Wrong charge",
		"I was charged twice for order 42.",
		ownerID,
		status,
		created,
		created,
	)
	require.NoError(t, err)
	return tk
}

func TestNewTicket_Validation(t *testing.T) {
	tests := []struct {
		name        string
		customerID  uint
		category    string
		subject     string
		description string
		wantErr     string
	}{
		{"valid", 10, "billing", "Wrong charge", "charged twice", ""},
		{"missing customer", 0, "billing", "Wrong charge", "charged twice", "customer ID is required"},
		{"empty category", 10, "", "Wrong charge", "charged twice", "category is required"},
		{"whitespace category", 10, "   ", "Wrong charge", "charged twice", "category is required"},
		{"empty subject", 10, "billing", "", "charged twice", "subject is required"},
		{"empty description", 10, "billing", "Wrong charge", "  ", "description is required"},
		{"subject too long", 10, "billing", strings.Repeat("x", 201), "charged twice", "subject exceeds"},
		{"description too long", 10, "billing", "Wrong charge", strings.Repeat("x", 5001), "description exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.customerID, "Linh Tran", "linh@example.com", "", tt.category, tt.subject, tt.description, nil)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, vo.StatusNew, tk.Status())
				assert.Nil(t, tk.OwnerID())
				assert.Empty(t, tk.Number())
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNewTicket_TrimsContent(t *testing.T) {
	tk, err := NewTicket(10, "Linh Tran", "linh@example.com", "", " billing ", "  Wrong charge ", " details ", nil)
	require.NoError(t, err)
	assert.Equal(t, "billing", tk.Category())
	assert.Equal(t, "Wrong charge", tk.Subject())
	assert.Equal(t, "details", tk.Description())
}

func TestTicket_SetNumber_Once(t *testing.T) {
	tk, err := NewTicket(10, "Linh Tran", "linh@example.com", "", "billing", "Wrong charge", "details", nil)
	require.NoError(t, err)

	require.NoError(t, tk.SetNumber("T-20260101-0001"))
	err = tk.SetNumber("T-20260101-0002")
	require.Error(t, err)
	assert.Equal(t, "T-20260101-0001", tk.Number())
}

func TestTicket_ChangeStatus(t *testing.T) {
	tk := newTestTicket(t, nil, vo.StatusNew)

	require.NoError(t, tk.ChangeStatus(vo.StatusWaitingCustomer))
	assert.Equal(t, vo.StatusWaitingCustomer, tk.Status())

	// any recognized status is reachable from any other
	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))
	require.NoError(t, tk.ChangeStatus(vo.StatusPendingReview))

	err := tk.ChangeStatus(vo.TicketStatus("Closed"))
	require.Error(t, err)
	assert.Equal(t, vo.StatusPendingReview, tk.Status())
}

func TestTicket_ReopenFromCustomerReply(t *testing.T) {
	owner := uint(7)
	tk := newTestTicket(t, &owner, vo.StatusResolved)

	changed := tk.ReopenFromCustomerReply()
	assert.True(t, changed)
	assert.Equal(t, vo.StatusReopened, tk.Status())
	assert.Nil(t, tk.OwnerID())

	// repeating the reply does not re-trigger the transition
	changed = tk.ReopenFromCustomerReply()
	assert.False(t, changed)
	assert.Equal(t, vo.StatusReopened, tk.Status())
}

func TestTicket_ReopenFromCustomerReply_NonResolved(t *testing.T) {
	owner := uint(7)
	for _, status := range []vo.TicketStatus{vo.StatusNew, vo.StatusPendingReview, vo.StatusWaitingCustomer, vo.StatusInProgress, vo.StatusReopened} {
		tk := newTestTicket(t, &owner, status)
		assert.False(t, tk.ReopenFromCustomerReply(), "status %s", status)
		assert.Equal(t, status, tk.Status())
		require.NotNil(t, tk.OwnerID())
		assert.Equal(t, owner, *tk.OwnerID())
	}
}

func TestTicket_AssignTo(t *testing.T) {
	tk := newTestTicket(t, nil, vo.StatusNew)

	require.NoError(t, tk.AssignTo(7, vo.StatusInProgress))
	require.NotNil(t, tk.OwnerID())
	assert.Equal(t, uint(7), *tk.OwnerID())
	assert.Equal(t, vo.StatusInProgress, tk.Status())

	err := tk.AssignTo(0, vo.StatusInProgress)
	require.Error(t, err)

	err = tk.AssignTo(8, vo.TicketStatus("bogus"))
	require.Error(t, err)
}
