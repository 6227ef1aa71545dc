package usecases

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saigonbistro/internal/domain/ticket"
	vo "saigonbistro/internal/domain/ticket/valueobjects"
	"saigonbistro/internal/domain/user"
	"saigonbistro/internal/shared/authorization"
	"saigonbistro/internal/shared/biztime"
	"saigonbistro/internal/shared/errors"
)

// fakeTicketRepo is an in-memory TicketRepository with the same conditional
// write semantics as the database implementation, used to drive the full
// lifecycle through the real use cases.
type fakeTicketRepo struct {
	mu   sync.Mutex
	seq  uint
	rows map[uint]*ticketRow
}

type ticketRow struct {
	number        string
	customerID    uint
	customerName  string
	customerEmail string
	customerPhone string
	orderID       *uint
	category      string
	subject       string
	description   string
	ownerID       *uint
	status        vo.TicketStatus
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{rows: make(map[uint]*ticketRow)}
}

func (r *fakeTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.rows[r.seq] = &ticketRow{
		number:        t.Number(),
		customerID:    t.CustomerID(),
		customerName:  t.CustomerName(),
		customerEmail: t.CustomerEmail(),
		customerPhone: t.CustomerPhone(),
		orderID:       t.OrderID(),
		category:      t.Category(),
		subject:       t.Subject(),
		description:   t.Description(),
		ownerID:       t.OwnerID(),
		status:        t.Status(),
	}
	return t.SetID(r.seq)
}

func (r *fakeTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[t.ID()]
	if !ok {
		return errors.NewNotFoundError("ticket not found")
	}
	row.ownerID = t.OwnerID()
	row.status = t.Status()
	return nil
}

func (r *fakeTicketRepo) reconstruct(id uint, row *ticketRow) (*ticket.Ticket, error) {
	now := biztime.NowUTC()
	var owner *uint
	if row.ownerID != nil {
		v := *row.ownerID
		owner = &v
	}
	return ticket.ReconstructTicket(
		id, row.number, row.customerID,
		row.customerName, row.customerEmail, row.customerPhone,
		row.orderID, row.category, row.subject, row.description,
		owner, row.status, now, now,
	)
}

func (r *fakeTicketRepo) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[ticketID]
	if !ok {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return r.reconstruct(ticketID, row)
}

func (r *fakeTicketRepo) GetByIDForCustomer(ctx context.Context, ticketID, customerID uint) (*ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[ticketID]
	if !ok || row.customerID != customerID {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return r.reconstruct(ticketID, row)
}

func (r *fakeTicketRepo) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*ticket.Ticket
	for id, row := range r.rows {
		t, err := r.reconstruct(id, row)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTicketRepo) ListByCustomer(ctx context.Context, customerID uint) ([]*ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*ticket.Ticket
	for id, row := range r.rows {
		if row.customerID != customerID {
			continue
		}
		t, err := r.reconstruct(id, row)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTicketRepo) Claim(ctx context.Context, ticketID, ownerID uint, status vo.TicketStatus, mode ticket.ClaimMode) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[ticketID]
	if !ok {
		return false, errors.NewNotFoundError("ticket not found")
	}

	switch mode {
	case ticket.ClaimIfUnowned:
		if row.ownerID != nil {
			return false, nil
		}
	case ticket.ClaimIfReopened:
		if !row.status.IsReopened() {
			return false, nil
		}
	}

	owner := ownerID
	row.ownerID = &owner
	row.status = status
	return true, nil
}

func (r *fakeTicketRepo) SetOwner(ctx context.Context, ticketID uint, ownerID *uint, status *vo.TicketStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[ticketID]
	if !ok {
		return errors.NewNotFoundError("ticket not found")
	}
	row.ownerID = ownerID
	if status != nil {
		row.status = *status
	}
	return nil
}

func (r *fakeTicketRepo) ReopenIfResolved(ctx context.Context, ticketID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[ticketID]
	if !ok {
		return false, errors.NewNotFoundError("ticket not found")
	}
	if !row.status.IsResolved() {
		return false, nil
	}
	row.status = vo.StatusReopened
	row.ownerID = nil
	return true, nil
}

type fakeCommentRepo struct {
	mu   sync.Mutex
	seq  uint
	rows map[uint][]*ticket.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{rows: make(map[uint][]*ticket.Comment)}
}

func (r *fakeCommentRepo) Save(ctx context.Context, c *ticket.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	if err := c.SetID(r.seq); err != nil {
		return err
	}
	r.rows[c.TicketID()] = append(r.rows[c.TicketID()], c)
	return nil
}

func (r *fakeCommentRepo) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*ticket.Comment, len(r.rows[ticketID]))
	copy(out, r.rows[ticketID])
	return out, nil
}

type fakeFeedbackRepo struct {
	mu   sync.Mutex
	seq  uint
	rows map[uint]*ticket.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{rows: make(map[uint]*ticket.Feedback)}
}

func (r *fakeFeedbackRepo) Save(ctx context.Context, fb *ticket.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rows[fb.TicketID()]; exists {
		return errors.NewConflictError("feedback already exists for ticket")
	}
	r.seq++
	if err := fb.SetID(r.seq); err != nil {
		return err
	}
	r.rows[fb.TicketID()] = fb
	return nil
}

func (r *fakeFeedbackRepo) GetByTicketID(ctx context.Context, ticketID uint) (*ticket.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fb, ok := r.rows[ticketID]
	if !ok {
		return nil, errors.NewNotFoundError("feedback not found")
	}
	return fb, nil
}

// TestTicketLifecycle drives a ticket from creation through claim, dispute,
// resolution, customer-triggered reopen, re-claim by a second staff member,
// final resolution and feedback, through the real use cases.
func TestTicketLifecycle(t *testing.T) {
	ctx := context.Background()

	ticketRepo := newFakeTicketRepo()
	commentRepo := newFakeCommentRepo()
	feedbackRepo := newFakeFeedbackRepo()
	sanitizer := &mockSanitizer{}
	log := &mockLogger{}

	customer := buildUser(t, 10, authorization.RoleCustomer)
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			if userID == 10 {
				return customer, nil
			}
			return buildUser(t, userID, authorization.RoleStaff), nil
		},
	}

	createUC := NewCreateTicketUseCase(ticketRepo, &mockOrderRepository{}, userRepo, &mockNumberGenerator{}, sanitizer, log)
	claimUC := NewClaimTicketUseCase(ticketRepo, log)
	commentUC := NewAddCommentUseCase(ticketRepo, commentRepo, newTestTxManager(t), sanitizer, log)
	statusUC := NewChangeStatusUseCase(ticketRepo, log)
	getUC := NewGetTicketUseCase(ticketRepo, commentRepo, feedbackRepo, log)
	feedbackUC := NewSubmitFeedbackUseCase(ticketRepo, feedbackRepo, sanitizer, log)

	created, err := createUC.Execute(ctx, CreateTicketCommand{
		CustomerID:  10,
		Category:    "billing",
		Subject:     "Charged twice",
		Description: "My card shows two charges for one order.",
	})
	require.NoError(t, err)
	require.Equal(t, "New", created.Status)
	ticketID := created.TicketID

	// staff 2 claims; staff 3 is locked out while the ticket is owned
	claimed, err := claimUC.Execute(ctx, ClaimTicketCommand{TicketID: ticketID, ActorID: 2, ActorRole: authorization.RoleStaff})
	require.NoError(t, err)
	assert.Equal(t, "In Progress", claimed.Status)

	_, err = claimUC.Execute(ctx, ClaimTicketCommand{TicketID: ticketID, ActorID: 3, ActorRole: authorization.RoleStaff})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))

	// owner replies; the customer's reply window opens from that comment
	_, err = commentUC.Execute(ctx, AddCommentCommand{
		TicketID: ticketID, ActorID: 2, ActorRole: authorization.RoleStaff,
		ActorEmail: "staff@saigonbistro.example", Message: "Refund is on its way.",
	})
	require.NoError(t, err)

	detail, err := getUC.Execute(ctx, GetTicketQuery{TicketID: ticketID, ActorID: 10, ActorRole: authorization.RoleCustomer})
	require.NoError(t, err)
	assert.True(t, detail.ReplyOpen)
	require.NotNil(t, detail.ReplyDeadline)

	// feedback before resolution is rejected
	_, err = feedbackUC.Execute(ctx, SubmitFeedbackCommand{TicketID: ticketID, CustomerID: 10, Stars: 5})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = statusUC.Execute(ctx, ChangeStatusCommand{TicketID: ticketID, ActorID: 2, ActorRole: authorization.RoleStaff, Status: "Resolved"})
	require.NoError(t, err)

	// the customer replies to the resolved ticket: auto-reopen, owner cleared
	replied, err := commentUC.Execute(ctx, AddCommentCommand{
		TicketID: ticketID, ActorID: 10, ActorRole: authorization.RoleCustomer,
		ActorEmail: "linh@example.com", Message: "The second charge is still there.",
	})
	require.NoError(t, err)
	assert.True(t, replied.Reopened)
	assert.Equal(t, "Reopened", replied.TicketStatus)

	current, err := ticketRepo.GetByID(ctx, ticketID)
	require.NoError(t, err)
	assert.Nil(t, current.OwnerID())

	// the reopened ticket is contestable: staff 3 takes it this time
	reclaimed, err := claimUC.Execute(ctx, ClaimTicketCommand{TicketID: ticketID, ActorID: 3, ActorRole: authorization.RoleStaff})
	require.NoError(t, err)
	assert.Equal(t, uint(3), reclaimed.OwnerID)

	// the former owner lost their standing with the reopen
	_, err = statusUC.Execute(ctx, ChangeStatusCommand{TicketID: ticketID, ActorID: 2, ActorRole: authorization.RoleStaff, Status: "Resolved"})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))

	_, err = statusUC.Execute(ctx, ChangeStatusCommand{TicketID: ticketID, ActorID: 3, ActorRole: authorization.RoleStaff, Status: "Resolved"})
	require.NoError(t, err)

	// feedback is a one-shot
	fb, err := feedbackUC.Execute(ctx, SubmitFeedbackCommand{TicketID: ticketID, CustomerID: 10, Stars: 4, Comment: "Sorted out eventually."})
	require.NoError(t, err)
	assert.Equal(t, 4, fb.Stars)

	_, err = feedbackUC.Execute(ctx, SubmitFeedbackCommand{TicketID: ticketID, CustomerID: 10, Stars: 1})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))

	detail, err = getUC.Execute(ctx, GetTicketQuery{TicketID: ticketID, ActorID: 10, ActorRole: authorization.RoleCustomer})
	require.NoError(t, err)
	require.NotNil(t, detail.Feedback)
	assert.Equal(t, 4, detail.Feedback.Stars)
}

// TestTicketLifecycle_ConcurrentClaims races two staff members for the same
// unowned ticket; exactly one claim may win.
func TestTicketLifecycle_ConcurrentClaims(t *testing.T) {
	ctx := context.Background()

	ticketRepo := newFakeTicketRepo()
	log := &mockLogger{}

	customer := buildUser(t, 10, authorization.RoleCustomer)
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return customer, nil
		},
	}

	createUC := NewCreateTicketUseCase(ticketRepo, &mockOrderRepository{}, userRepo, &mockNumberGenerator{}, &mockSanitizer{}, log)
	claimUC := NewClaimTicketUseCase(ticketRepo, log)

	created, err := createUC.Execute(ctx, CreateTicketCommand{
		CustomerID:  10,
		Category:    "delivery",
		Subject:     "Cold food",
		Description: "Order arrived cold.",
	})
	require.NoError(t, err)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, actorID := range []uint{2, 3} {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			_, err := claimUC.Execute(ctx, ClaimTicketCommand{
				TicketID:  created.TicketID,
				ActorID:   id,
				ActorRole: authorization.RoleStaff,
			})
			results <- err
		}(actorID)
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		losses++
		assert.True(t, errors.IsConflictError(err) || errors.IsForbiddenError(err))
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, losses)
}
