package response

import (
	"time"

	"fleetbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID              uuid.UUID   `json:"id"`
	Reference       string      `json:"reference"`
	EventName       string      `json:"eventName"`
	EventType       *string     `json:"eventType,omitempty"`
	ClientName      string      `json:"clientName"`
	ClientEmail     string      `json:"clientEmail"`
	Region          string      `json:"region"`
	City            string      `json:"city"`
	StartDate       string      `json:"startDate"`
	EndDate         string      `json:"endDate"`
	Notes           *string     `json:"notes,omitempty"`
	Status          string      `json:"status"`
	ApprovedBy      *string     `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time  `json:"approvedAt,omitempty"`
	RejectionReason *string     `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	Car             CarResponse `json:"car"`
}

type BookingListResponse struct {
	ID         uuid.UUID `json:"id"`
	Reference  string    `json:"reference"`
	EventName  string    `json:"eventName"`
	ClientName string    `json:"clientName"`
	Region     string    `json:"region"`
	City       string    `json:"city"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Status     string    `json:"status"`
	CarNumber  int       `json:"carNumber"`
	CarName    string    `json:"carName"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	resp.StartDate = rm.StartDate.Format(dateLayout)
	resp.EndDate = rm.EndDate.Format(dateLayout)
	return &resp
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, rm)
	resp.StartDate = rm.StartDate.Format(dateLayout)
	resp.EndDate = rm.EndDate.Format(dateLayout)
	return &resp
}

func FromBookingListItems(rms []*queries.BookingListItem) []*BookingListResponse {
	out := make([]*BookingListResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromBookingListItem(rm))
	}
	return out
}
