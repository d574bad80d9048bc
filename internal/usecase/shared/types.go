package shared

import "time"

type ConflictKind string

const (
	ConflictBooking ConflictKind = "booking"
	ConflictBlock   ConflictKind = "block"
)

// Conflict describes one overlapping occupant found during a
// reservation attempt. Label carries the booking reference for
// booking conflicts and the block reason for block conflicts.
type Conflict struct {
	Kind       ConflictKind
	Label      string
	EventName  string
	EventType  string
	ClientName string
	Details    string
	Start      time.Time
	End        time.Time
}
