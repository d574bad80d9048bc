package request

type UpdateCarLocationRequest struct {
	CurrentRegion   *string `json:"current_region,omitempty"`
	CurrentLocation *string `json:"current_location,omitempty"`
}

type OverrideCarStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
