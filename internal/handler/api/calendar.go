package api

import (
	"net/http"

	"fleetbook/internal/domain/booking"
	reqdto "fleetbook/internal/handler/dto/request"
	resdto "fleetbook/internal/handler/dto/response"
	"fleetbook/internal/infra"
	"fleetbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxCalendarDays = 120

type CalendarHandler struct {
	calendarQueries     queries.CalendarQueries
	availabilityQueries queries.AvailabilityQueries
	bookingQueries      queries.BookingQueries
}

func NewCalendarHandler(
	calendarQueries queries.CalendarQueries,
	availabilityQueries queries.AvailabilityQueries,
	bookingQueries queries.BookingQueries,
) *CalendarHandler {
	return &CalendarHandler{
		calendarQueries:     calendarQueries,
		availabilityQueries: availabilityQueries,
		bookingQueries:      bookingQueries,
	}
}

// @Summary Fleet calendar
// @Description One row per car with per-day cells and run-length bars
// @Tags calendar
// @Produce json
// @Param start query string true "Window start (YYYY-MM-DD)"
// @Param end query string true "Window end (YYYY-MM-DD)"
// @Param region query string false "Restrict to a region"
// @Success 200 {array} resdto.CalendarRowResponse
// @Failure 400 {object} map[string]string
// @Router /calendar [get]
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	var q reqdto.CalendarQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "start and end are required",
		})
		return
	}

	dates, ok := parseWindow(c, q.Start, q.End)
	if !ok {
		return
	}

	rows, err := h.calendarQueries.Build(c.Request.Context(), dates, q.Region)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCalendarRows(rows))
}

// @Summary Check car availability
// @Description Reports every overlapping booking and block for the window
// @Tags calendar
// @Produce json
// @Param id path string true "Car ID"
// @Param start query string true "Window start (YYYY-MM-DD)"
// @Param end query string true "Window end (YYYY-MM-DD)"
// @Param exclude_booking query string false "Booking reference to ignore"
// @Param daily query bool false "Include per-day breakdown"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cars/{id}/availability [get]
func (h *CalendarHandler) CheckAvailability(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID",
		})
		return
	}

	var q reqdto.AvailabilityQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "start and end are required",
		})
		return
	}

	dates, ok := parseWindow(c, q.Start, q.End)
	if !ok {
		return
	}

	exclude, ok := h.resolveExcluded(c, q.ExcludeBooking)
	if !ok {
		return
	}

	result, err := h.availabilityQueries.Check(c.Request.Context(), carID, dates, exclude)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var days []queries.AvailabilityDay
	if q.Daily {
		days, err = h.availabilityQueries.DailyBreakdown(c.Request.Context(), carID, dates)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityResult(result, days))
}

// resolveExcluded maps a booking reference onto its id so the caller
// can re-check dates for an existing booking without tripping over
// itself.
func (h *CalendarHandler) resolveExcluded(c *gin.Context, reference *string) (*uuid.UUID, bool) {
	if reference == nil || *reference == "" {
		return nil, true
	}

	view, err := h.bookingQueries.GetByReference(c.Request.Context(), *reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Excluded booking not found",
			})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return nil, false
	}
	return &view.ID, true
}

func parseWindow(c *gin.Context, start, end string) (booking.DateRange, bool) {
	from, err := reqdto.ParseDate(start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start date",
		})
		return booking.DateRange{}, false
	}
	to, err := reqdto.ParseDate(end)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid end date",
		})
		return booking.DateRange{}, false
	}

	dates, err := booking.NewDateRange(from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "End date must not precede start date",
		})
		return booking.DateRange{}, false
	}
	if dates.LengthDays() > maxCalendarDays {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Window too large",
		})
		return booking.DateRange{}, false
	}
	return dates, true
}
