package request

import (
	"strings"
	"time"

	"fleetbook/internal/domain/booking"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// ParseDate parses the wire format for calendar dates (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}

type CreateBookingRequest struct {
	CarID       uuid.UUID `json:"car_id" binding:"required"`
	EventName   string    `json:"event_name" binding:"required"`
	EventType   *string   `json:"event_type,omitempty"`
	ClientName  string    `json:"client_name" binding:"required"`
	ClientEmail string    `json:"client_email" binding:"required,email"`
	Region      string    `json:"region" binding:"required"`
	City        string    `json:"city" binding:"required"`
	StartDate   string    `json:"start_date" binding:"required"`
	EndDate     string    `json:"end_date" binding:"required"`
	Notes       *string   `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToDateRange() (booking.DateRange, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return booking.DateRange{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return booking.DateRange{}, err
	}
	return booking.NewDateRange(start, end)
}

func (r CreateBookingRequest) GetEventType() string {
	if r.EventType == nil {
		return ""
	}
	return strings.TrimSpace(*r.EventType)
}

type UpdateBookingRequest struct {
	CarID       *uuid.UUID `json:"car_id,omitempty"`
	EventName   *string    `json:"event_name,omitempty"`
	EventType   *string    `json:"event_type,omitempty"`
	ClientName  *string    `json:"client_name,omitempty"`
	ClientEmail *string    `json:"client_email,omitempty" binding:"omitempty,email"`
	Region      *string    `json:"region,omitempty"`
	City        *string    `json:"city,omitempty"`
	StartDate   *string    `json:"start_date,omitempty"`
	EndDate     *string    `json:"end_date,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

type RejectBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type ListBookingsQuery struct {
	Status    *string `form:"status"`
	CarID     *string `form:"car_id"`
	Region    *string `form:"region"`
	DateFrom  *string `form:"from"`
	DateTo    *string `form:"to"`
	Reference *string `form:"reference"`
	Limit     int     `form:"limit"`
}
