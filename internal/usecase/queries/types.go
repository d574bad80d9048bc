package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	Reference       string     `json:"reference"`
	EventName       string     `json:"event_name"`
	EventType       *string    `json:"event_type,omitempty"`
	ClientName      string     `json:"client_name"`
	ClientEmail     string     `json:"client_email"`
	Region          string     `json:"region"`
	City            string     `json:"city"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	Notes           *string    `json:"notes,omitempty"`
	Status          string     `json:"status"`
	ApprovedBy      *string    `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	Car             CarView    `json:"car"`
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	Reference  string    `json:"reference"`
	EventName  string    `json:"event_name"`
	ClientName string    `json:"client_name"`
	Region     string    `json:"region"`
	City       string    `json:"city"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Status     string    `json:"status"`
	CarNumber  int       `json:"car_number"`
	CarName    string    `json:"car_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type CarView struct {
	ID               uuid.UUID `json:"id"`
	CarNumber        int       `json:"car_number"`
	Name             string    `json:"name"`
	Registration     string    `json:"registration"`
	CurrentRegion    string    `json:"current_region,omitempty"`
	CurrentLocation  string    `json:"current_location,omitempty"`
	Status           string    `json:"status"`
	PreferredRegions []string  `json:"preferred_regions,omitempty"`
	IsStatic         bool      `json:"is_static"`
}

type BlockView struct {
	ID        uuid.UUID `json:"id"`
	CarID     uuid.UUID `json:"car_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Reason    string    `json:"reason"`
	Details   *string   `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ConflictView struct {
	Kind      string    `json:"kind"`
	Label     string    `json:"label"`
	EventName string    `json:"event_name,omitempty"`
	Details   string    `json:"details,omitempty"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type AvailabilityResult struct {
	CarID       uuid.UUID      `json:"car_id"`
	IsAvailable bool           `json:"is_available"`
	Conflicts   []ConflictView `json:"conflicts"`
}

// DayBooking and DayBlock carry the occupant shown for one calendar
// cell. Bookings take precedence over blocks when both cover a day.
type DayBooking struct {
	Reference  string `json:"reference"`
	EventName  string `json:"event_name"`
	EventType  string `json:"event_type,omitempty"`
	ClientName string `json:"client_name"`
}

type DayBlock struct {
	Reason  string `json:"reason"`
	Details string `json:"details,omitempty"`
}

type AvailabilityDay struct {
	Date        time.Time   `json:"date"`
	IsAvailable bool        `json:"is_available"`
	Booking     *DayBooking `json:"booking,omitempty"`
	Block       *DayBlock   `json:"block,omitempty"`
}

type CalendarBar struct {
	Kind       string    `json:"kind"`
	Label      string    `json:"label"`
	StartIndex int       `json:"start_index"`
	Length     int       `json:"length"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

type CalendarRow struct {
	Car  CarView           `json:"car"`
	Days []AvailabilityDay `json:"days"`
	Bars []CalendarBar     `json:"bars"`
}

type BookingFilter struct {
	Status    *string
	CarID     *uuid.UUID
	Region    *string
	DateFrom  *time.Time
	DateTo    *time.Time
	Reference *string
}

type BookingStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
	Cancelled int64 `json:"cancelled"`
	Upcoming  int64 `json:"upcoming"`
}
