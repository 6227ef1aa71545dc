package ticket

import "time"

// ReplyWindowDuration is how long a customer may keep replying after the
// most recent support comment. Evaluated lazily on each request; there is
// no scheduled expiry job.
const ReplyWindowDuration = 5 * 24 * time.Hour

// ReplyWindow describes whether a customer may currently reply to their
// ticket. When no support comment exists yet, no deadline has started and
// the window is always open.
type ReplyWindow struct {
	LastSupportReplyAt *time.Time
	Deadline           *time.Time
}

// ComputeReplyWindow derives the reply window from a ticket's comments.
// Only staff/admin comments start or move the deadline; a customer's own
// comments never extend an expiring window.
func ComputeReplyWindow(comments []*Comment) ReplyWindow {
	var last *time.Time
	for _, c := range comments {
		if c == nil || !c.IsFromSupport() {
			continue
		}
		createdAt := c.CreatedAt()
		if last == nil || createdAt.After(*last) {
			last = &createdAt
		}
	}

	if last == nil {
		return ReplyWindow{}
	}

	deadline := last.Add(ReplyWindowDuration)
	return ReplyWindow{
		LastSupportReplyAt: last,
		Deadline:           &deadline,
	}
}

// OpenAt reports whether the customer may reply at the given instant.
func (w ReplyWindow) OpenAt(now time.Time) bool {
	if w.Deadline == nil {
		return true
	}
	return !now.After(*w.Deadline)
}
