package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"saigonbistro/internal/domain/ticket"
	vo "saigonbistro/internal/domain/ticket/valueobjects"
	"saigonbistro/internal/domain/user"
	"saigonbistro/internal/shared/authorization"
	"saigonbistro/internal/shared/db"
)

func uintPtr(v uint) *uint {
	return &v
}

// newTestTxManager backs the transaction manager with an in-memory database.
// The repositories under test are fakes, so the transaction itself is empty;
// it only has to begin and commit.
func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return db.NewTransactionManager(gormDB)
}

func strPtr(v string) *string {
	return &v
}

func buildTicket(t *testing.T, ownerID *uint, status vo.TicketStatus) *ticket.Ticket {
	t.Helper()

	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	tk, err := ticket.ReconstructTicket(
		1,
		"T-20260110-0001",
		10,
		"Linh Tran",
		"linh@example.com",
		"+84 90 123 4567",
		nil,
		"billing",
		"Wrong charge on my order",
		"I was charged twice for order #55.",
		ownerID,
		status,
		now,
		now,
	)
	require.NoError(t, err)
	return tk
}

func buildUser(t *testing.T, id uint, role authorization.UserRole) *user.User {
	t.Helper()

	u, err := user.ReconstructUser(
		id,
		"person@example.com",
		"Test Person",
		"+84 90 000 0000",
		role,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return u
}

func buildSupportComment(t *testing.T, ticketID uint, createdAt time.Time) *ticket.Comment {
	t.Helper()

	c, err := ticket.ReconstructComment(
		1,
		ticketID,
		uintPtr(2),
		authorization.RoleStaff,
		"staff@saigonbistro.example",
		"We are looking into this.",
		createdAt,
	)
	require.NoError(t, err)
	return c
}
