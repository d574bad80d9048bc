package response

import (
	"fleetbook/internal/usecase/queries"
)

type DayResponse struct {
	Date        string              `json:"date"`
	IsAvailable bool                `json:"isAvailable"`
	Booking     *queries.DayBooking `json:"booking,omitempty"`
	Block       *queries.DayBlock   `json:"block,omitempty"`
}

type BarResponse struct {
	Kind       string `json:"kind"`
	Label      string `json:"label"`
	StartIndex int    `json:"startIndex"`
	Length     int    `json:"length"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

type CalendarRowResponse struct {
	Car  CarResponse   `json:"car"`
	Days []DayResponse `json:"days"`
	Bars []BarResponse `json:"bars"`
}

type ConflictResponse struct {
	Kind      string `json:"kind"`
	Label     string `json:"label"`
	EventName string `json:"eventName,omitempty"`
	Details   string `json:"details,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type AvailabilityResponse struct {
	CarID       string             `json:"carId"`
	IsAvailable bool               `json:"isAvailable"`
	Conflicts   []ConflictResponse `json:"conflicts"`
	Days        []DayResponse      `json:"days,omitempty"`
}

func FromCalendarRows(rows []*queries.CalendarRow) []*CalendarRowResponse {
	out := make([]*CalendarRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, &CalendarRowResponse{
			Car:  *FromCarView(&row.Car),
			Days: fromDays(row.Days),
			Bars: fromBars(row.Bars),
		})
	}
	return out
}

func FromAvailabilityResult(rm *queries.AvailabilityResult, days []queries.AvailabilityDay) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		CarID:       rm.CarID.String(),
		IsAvailable: rm.IsAvailable,
		Conflicts:   FromConflictViews(rm.Conflicts),
	}
	if days != nil {
		resp.Days = fromDays(days)
	}
	return resp
}

func FromConflictViews(views []queries.ConflictView) []ConflictResponse {
	out := make([]ConflictResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ConflictResponse{
			Kind:      v.Kind,
			Label:     v.Label,
			EventName: v.EventName,
			Details:   v.Details,
			StartDate: v.StartDate.Format(dateLayout),
			EndDate:   v.EndDate.Format(dateLayout),
		})
	}
	return out
}

func fromDays(days []queries.AvailabilityDay) []DayResponse {
	out := make([]DayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, DayResponse{
			Date:        d.Date.Format(dateLayout),
			IsAvailable: d.IsAvailable,
			Booking:     d.Booking,
			Block:       d.Block,
		})
	}
	return out
}

func fromBars(bars []queries.CalendarBar) []BarResponse {
	out := make([]BarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, BarResponse{
			Kind:       b.Kind,
			Label:      b.Label,
			StartIndex: b.StartIndex,
			Length:     b.Length,
			StartDate:  b.StartDate.Format(dateLayout),
			EndDate:    b.EndDate.Format(dateLayout),
		})
	}
	return out
}
