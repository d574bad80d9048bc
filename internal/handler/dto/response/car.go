package response

import (
	"fleetbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CarResponse struct {
	ID               uuid.UUID `json:"id"`
	CarNumber        int       `json:"carNumber"`
	Name             string    `json:"name"`
	Registration     string    `json:"registration"`
	CurrentRegion    string    `json:"currentRegion,omitempty"`
	CurrentLocation  string    `json:"currentLocation,omitempty"`
	Status           string    `json:"status"`
	PreferredRegions []string  `json:"preferredRegions,omitempty"`
	IsStatic         bool      `json:"isStatic"`
}

func FromCarView(rm *queries.CarView) *CarResponse {
	var resp CarResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromCarViews(rms []*queries.CarView) []*CarResponse {
	out := make([]*CarResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromCarView(rm))
	}
	return out
}
