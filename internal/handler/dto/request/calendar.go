package request

type CalendarQuery struct {
	Start  string  `form:"start" binding:"required"`
	End    string  `form:"end" binding:"required"`
	Region *string `form:"region"`
}

type AvailabilityQuery struct {
	Start          string  `form:"start" binding:"required"`
	End            string  `form:"end" binding:"required"`
	ExcludeBooking *string `form:"exclude_booking"`
	Daily          bool    `form:"daily"`
}
