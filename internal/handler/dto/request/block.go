package request

import (
	"fleetbook/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBlockRequest struct {
	CarID     uuid.UUID `json:"car_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
	Reason    string    `json:"reason" binding:"required"`
	Details   *string   `json:"details,omitempty"`
}

func (r CreateBlockRequest) ToDateRange() (booking.DateRange, error) {
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

func (r CreateBlockRequest) GetDetails() string {
	if r.Details == nil {
		return ""
	}
	return *r.Details
}
