package fleet

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusAvailable Status = "Available"
	StatusBooked    Status = "Booked"
	StatusInService Status = "In Service"
	StatusBreakdown Status = "Breakdown"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusInService, StatusBreakdown:
		return true
	default:
		return false
	}
}

// OverridableStatuses are the values an operator may set manually.
// Booked is always derived, never authored.
func OverridableStatuses() []Status {
	return []Status{StatusAvailable, StatusInService, StatusBreakdown}
}

// Car is a unit of fleet inventory. Status is a derived cache; the
// status deriver is its single writer.
type Car struct {
	ID               uuid.UUID
	CarNumber        int
	Name             string
	Registration     string
	CurrentRegion    string
	CurrentLocation  string
	Status           Status
	PreferredRegions []string
	// IsStatic marks a car that is never relocated between events.
	IsStatic  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
