package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether a booking in this status occupies the
// conflict set. Rejected and cancelled bookings never block new
// reservations.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusApproved
}

// ActiveStatuses is the set used by conflict queries.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusApproved}
}
