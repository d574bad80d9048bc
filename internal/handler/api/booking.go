package api

import (
	"errors"
	"net/http"

	"fleetbook/internal/domain/booking"
	reqdto "fleetbook/internal/handler/dto/request"
	resdto "fleetbook/internal/handler/dto/response"
	"fleetbook/internal/handler/middleware"
	"fleetbook/internal/infra"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/usecase/commands"
	"fleetbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands  commands.BookingCommands
	approvalCommands commands.ApprovalCommands
	bookingQueries   queries.BookingQueries
	auth             *middleware.AuthMiddleware
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	approvalCommands commands.ApprovalCommands,
	bookingQueries queries.BookingQueries,
	auth *middleware.AuthMiddleware,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands:  bookingCommands,
		approvalCommands: approvalCommands,
		bookingQueries:   bookingQueries,
		auth:             auth,
	}
}

// @Summary Create booking
// @Description Reserve a car for a closed date interval
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	privileged := h.auth.IsAdmin(c)

	view, err := h.bookingCommands.Create(c.Request.Context(), req, privileged)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{reference} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	view, err := h.bookingQueries.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param car_id query string false "Filter by car"
// @Param region query string false "Filter by region"
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var q reqdto.ListBookingsQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	filter, err := listFilter(q)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	items, err := h.bookingQueries.List(c.Request.Context(), filter, q.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Update booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param reference path string true "Booking reference"
// @Param request body reqdto.UpdateBookingRequest true "Fields to change"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Router /bookings/{reference} [patch]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var req reqdto.UpdateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.Update(c.Request.Context(), c.Param("reference"), req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Soft-deletes the booking; cancelling twice is a no-op
// @Tags bookings
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /bookings/{reference} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if err := h.bookingCommands.Cancel(c.Request.Context(), c.Param("reference")); err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Approve booking
// @Tags approvals
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{reference}/approve [post]
func (h *BookingHandler) ApproveBooking(c *gin.Context) {
	view, err := h.approvalCommands.Approve(c.Request.Context(), c.Param("reference"), approverName(c))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Reject booking
// @Tags approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Booking reference"
// @Param request body reqdto.RejectBookingRequest false "Rejection reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{reference}/reject [post]
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	var req reqdto.RejectBookingRequest
	_ = c.ShouldBindJSON(&req)

	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	}

	view, err := h.approvalCommands.Reject(c.Request.Context(), c.Param("reference"), approverName(c), reason)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var conflictErr *commands.ConflictError
	switch {
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":     "Requested dates are not available",
			"conflicts": resdto.FromConflictViews(queries.ToConflictViews(conflictErr.Conflicts)),
		})
	case errs.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errs.Is(err, commands.ErrCarNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Car not found",
		})
	case errs.Is(err, commands.ErrInvalidDates):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking dates",
		})
	case errs.Is(err, commands.ErrInvalidRegion):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid region or city",
		})
	case errs.Is(err, booking.ErrAlreadyApproved):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking is already approved",
		})
	case errs.Is(err, booking.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking status does not allow this change",
		})
	case errs.Is(err, commands.ErrBookingNotEditable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking can no longer be edited",
		})
	case errs.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func listFilter(q reqdto.ListBookingsQuery) (queries.BookingFilter, error) {
	var filter queries.BookingFilter
	filter.Status = q.Status
	filter.Region = q.Region
	filter.Reference = q.Reference

	if q.CarID != nil {
		id, err := uuid.Parse(*q.CarID)
		if err != nil {
			return filter, errors.New("invalid car_id")
		}
		filter.CarID = &id
	}
	if q.DateFrom != nil {
		from, err := reqdto.ParseDate(*q.DateFrom)
		if err != nil {
			return filter, errors.New("invalid from date")
		}
		filter.DateFrom = &from
	}
	if q.DateTo != nil {
		to, err := reqdto.ParseDate(*q.DateTo)
		if err != nil {
			return filter, errors.New("invalid to date")
		}
		filter.DateTo = &to
	}
	return filter, nil
}

func approverName(c *gin.Context) string {
	if role, ok := middleware.GetRole(c); ok {
		return role
	}
	return "admin"
}
