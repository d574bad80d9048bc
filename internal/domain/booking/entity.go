package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyApproved    = errors.New("booking is already approved")
	ErrInvalidTransition  = errors.New("invalid booking status transition")
	ErrMissingEventName   = errors.New("event name is required")
	ErrMissingClientName  = errors.New("client name is required")
	ErrMissingClientEmail = errors.New("client email is required")
)

const defaultRejectionReason = "No reason provided"

// Booking reserves exactly one car for a closed date interval.
type Booking struct {
	id              uuid.UUID
	reference       string
	carID           uuid.UUID
	eventName       string
	eventType       string
	clientName      string
	clientEmail     string
	region          string
	city            string
	dates           DateRange
	notes           string
	status          Status
	approvedBy      *string
	approvedAt      *time.Time
	rejectionReason *string
	createdAt       time.Time
	updatedAt       time.Time
}

type NewBookingSpec struct {
	CarID       uuid.UUID
	EventName   string
	EventType   string
	ClientName  string
	ClientEmail string
	Region      string
	City        string
	Dates       DateRange
	Notes       string
}

// NewBooking builds a pending booking, or an immediately approved one
// when created by a privileged actor.
func NewBooking(reference string, spec NewBookingSpec, privileged bool, now time.Time) (*Booking, error) {
	if strings.TrimSpace(spec.EventName) == "" {
		return nil, ErrMissingEventName
	}
	if strings.TrimSpace(spec.ClientName) == "" {
		return nil, ErrMissingClientName
	}
	if strings.TrimSpace(spec.ClientEmail) == "" {
		return nil, ErrMissingClientEmail
	}

	status := StatusPending
	if privileged {
		status = StatusApproved
	}

	return &Booking{
		id:          uuid.New(),
		reference:   reference,
		carID:       spec.CarID,
		eventName:   strings.TrimSpace(spec.EventName),
		eventType:   strings.TrimSpace(spec.EventType),
		clientName:  strings.TrimSpace(spec.ClientName),
		clientEmail: strings.TrimSpace(spec.ClientEmail),
		region:      spec.Region,
		city:        spec.City,
		dates:       spec.Dates,
		notes:       spec.Notes,
		status:      status,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	reference string,
	carID uuid.UUID,
	eventName, eventType, clientName, clientEmail, region, city string,
	dates DateRange,
	notes string,
	status Status,
	approvedBy *string,
	approvedAt *time.Time,
	rejectionReason *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		reference:       reference,
		carID:           carID,
		eventName:       eventName,
		eventType:       eventType,
		clientName:      clientName,
		clientEmail:     clientEmail,
		region:          region,
		city:            city,
		dates:           dates,
		notes:           notes,
		status:          status,
		approvedBy:      approvedBy,
		approvedAt:      approvedAt,
		rejectionReason: rejectionReason,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Approve moves a pending booking to approved. All transitions are
// one-way; approving twice is a domain error.
func (b *Booking) Approve(approver string, now time.Time) error {
	switch b.status {
	case StatusApproved:
		return ErrAlreadyApproved
	case StatusPending:
		b.status = StatusApproved
		b.approvedBy = &approver
		t := now
		b.approvedAt = &t
		b.updatedAt = now
		return nil
	default:
		return ErrInvalidTransition
	}
}

// Reject moves a pending booking to rejected. The reason is never left
// empty; a placeholder is recorded when the caller supplies none.
func (b *Booking) Reject(approver, reason string, now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	if strings.TrimSpace(reason) == "" {
		reason = defaultRejectionReason
	}
	b.status = StatusRejected
	b.approvedBy = &approver
	t := now
	b.approvedAt = &t
	b.rejectionReason = &reason
	b.updatedAt = now
	return nil
}

// Cancel soft-deletes the booking. Cancelling an already-cancelled
// booking is a no-op success; cancelling a rejected one is invalid.
func (b *Booking) Cancel(now time.Time) (changed bool, err error) {
	switch b.status {
	case StatusCancelled:
		return false, nil
	case StatusPending, StatusApproved:
		b.status = StatusCancelled
		b.updatedAt = now
		return true, nil
	default:
		return false, ErrInvalidTransition
	}
}

// Reschedule moves the booking to a new car and/or interval. The caller
// is responsible for re-running the availability check first.
func (b *Booking) Reschedule(carID uuid.UUID, dates DateRange, now time.Time) {
	b.carID = carID
	b.dates = dates
	b.updatedAt = now
}

// Relocate replaces the event region and city together. Callers
// validate the pair against the region table first.
func (b *Booking) Relocate(region, city string, now time.Time) {
	b.region = region
	b.city = city
	b.updatedAt = now
}

func (b *Booking) UpdateDetails(eventName, eventType, clientName, clientEmail *string, notes *string, now time.Time) {
	if eventName != nil {
		b.eventName = strings.TrimSpace(*eventName)
	}
	if eventType != nil {
		b.eventType = strings.TrimSpace(*eventType)
	}
	if clientName != nil {
		b.clientName = strings.TrimSpace(*clientName)
	}
	if clientEmail != nil {
		b.clientEmail = strings.TrimSpace(*clientEmail)
	}
	if notes != nil {
		b.notes = *notes
	}
	b.updatedAt = now
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) Reference() string        { return b.reference }
func (b *Booking) CarID() uuid.UUID         { return b.carID }
func (b *Booking) EventName() string        { return b.eventName }
func (b *Booking) EventType() string        { return b.eventType }
func (b *Booking) ClientName() string       { return b.clientName }
func (b *Booking) ClientEmail() string      { return b.clientEmail }
func (b *Booking) Region() string           { return b.region }
func (b *Booking) City() string             { return b.city }
func (b *Booking) Dates() DateRange         { return b.dates }
func (b *Booking) Notes() string            { return b.notes }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) ApprovedBy() *string      { return b.approvedBy }
func (b *Booking) ApprovedAt() *time.Time   { return b.approvedAt }
func (b *Booking) RejectionReason() *string { return b.rejectionReason }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
