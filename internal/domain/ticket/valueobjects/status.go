package valueobjects

import "fmt"

// TicketStatus is one of the six recognized lifecycle statuses. Status values
// are stored and transported verbatim, matching what customers and staff see.
type TicketStatus string

const (
	StatusNew             TicketStatus = "New"
	StatusPendingReview   TicketStatus = "Pending Review"
	StatusWaitingCustomer TicketStatus = "Waiting Customer Response"
	StatusInProgress      TicketStatus = "In Progress"
	StatusResolved        TicketStatus = "Resolved"
	StatusReopened        TicketStatus = "Reopened"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusNew:             true,
	StatusPendingReview:   true,
	StatusWaitingCustomer: true,
	StatusInProgress:      true,
	StatusResolved:        true,
	StatusReopened:        true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsNew() bool {
	return ts == StatusNew
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsReopened() bool {
	return ts == StatusReopened
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

// AllTicketStatuses returns the recognized status values in display order.
func AllTicketStatuses() []TicketStatus {
	return []TicketStatus{
		StatusNew,
		StatusPendingReview,
		StatusWaitingCustomer,
		StatusInProgress,
		StatusResolved,
		StatusReopened,
	}
}
