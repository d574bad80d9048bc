package response

import (
	"github.com/jinzhu/copier"

	"fleetbook/internal/usecase/queries"
)

type StatsResponse struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
	Cancelled int64 `json:"cancelled"`
	Upcoming  int64 `json:"upcoming"`
}

func FromBookingStats(stats *queries.BookingStats) StatsResponse {
	var resp StatsResponse
	_ = copier.Copy(&resp, stats)
	return resp
}
