package ticket

import (
	"errors"

	"saigonbistro/internal/shared/authorization"
)

// Ownership decision errors. Use cases map these to forbidden responses.
var (
	// ErrTicketOwnedByOther is returned when a staff member tries to claim a
	// ticket actively owned by a different staff member. Only reopened
	// tickets are back in the shared queue and contestable.
	ErrTicketOwnedByOther = errors.New("ticket is already assigned to another staff member")

	// ErrMustClaimFirst is returned when a staff member tries to act on a
	// ticket they do not own.
	ErrMustClaimFirst = errors.New("ticket must be claimed before acting on it")

	// ErrNotSupportRole is returned when the actor is not staff or admin.
	ErrNotSupportRole = errors.New("staff or admin role required")
)

// ClaimMode tells the repository which conditional write realizes a claim,
// so a losing concurrent claim affects zero rows instead of silently
// overwriting an established owner.
type ClaimMode int

const (
	// ClaimUnconditional applies the claim regardless of current ownership.
	// Used by admins and by an owner re-claiming their own ticket.
	ClaimUnconditional ClaimMode = iota

	// ClaimIfUnowned succeeds only while owner_id is still null.
	ClaimIfUnowned

	// ClaimIfReopened succeeds only while the ticket status is Reopened.
	ClaimIfReopened
)

// DecideClaim evaluates the assignment rules for a claim attempt, in order:
// admins may always claim; an owner may re-claim their own ticket; unowned
// tickets go to the first writer; tickets owned by a different staff member
// are contestable only while Reopened.
func DecideClaim(actorID uint, role authorization.UserRole, t *Ticket) (ClaimMode, error) {
	if !role.IsStaffOrAdmin() {
		return 0, ErrNotSupportRole
	}

	if role.IsAdmin() {
		return ClaimUnconditional, nil
	}

	owner := t.OwnerID()
	switch {
	case owner == nil:
		return ClaimIfUnowned, nil
	case *owner == actorID:
		return ClaimUnconditional, nil
	case t.Status().IsReopened():
		return ClaimIfReopened, nil
	default:
		return 0, ErrTicketOwnedByOther
	}
}

// CanActOn evaluates whether the actor may perform a status update or reply
// on the ticket. Admins always may; staff only on tickets they own.
func CanActOn(actorID uint, role authorization.UserRole, t *Ticket) error {
	if !role.IsStaffOrAdmin() {
		return ErrNotSupportRole
	}

	if role.IsAdmin() {
		return nil
	}

	owner := t.OwnerID()
	if owner != nil && *owner == actorID {
		return nil
	}

	return ErrMustClaimFirst
}

// ValidateReassignTarget checks that a reassignment target may own tickets.
// Tickets are never assigned to customers.
func ValidateReassignTarget(targetRole authorization.UserRole) error {
	if !targetRole.IsStaffOrAdmin() {
		return errors.New("owner must be a staff or admin user")
	}
	return nil
}
