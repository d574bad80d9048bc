package response

import (
	"time"

	"fleetbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BlockResponse struct {
	ID        uuid.UUID `json:"id"`
	CarID     uuid.UUID `json:"carId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Reason    string    `json:"reason"`
	Details   *string   `json:"details,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBlockView(rm *queries.BlockView) *BlockResponse {
	var resp BlockResponse
	_ = copier.Copy(&resp, rm)
	resp.StartDate = rm.StartDate.Format(dateLayout)
	resp.EndDate = rm.EndDate.Format(dateLayout)
	return &resp
}

func FromBlockViews(rms []*queries.BlockView) []*BlockResponse {
	out := make([]*BlockResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromBlockView(rm))
	}
	return out
}
