package api

import (
	"net/http"

	reqdto "fleetbook/internal/handler/dto/request"
	resdto "fleetbook/internal/handler/dto/response"
	"fleetbook/internal/infra"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/usecase/commands"
	"fleetbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CarHandler struct {
	carCommands commands.CarCommands
	carQueries  queries.CarQueries
}

func NewCarHandler(carCommands commands.CarCommands, carQueries queries.CarQueries) *CarHandler {
	return &CarHandler{carCommands: carCommands, carQueries: carQueries}
}

// @Summary List cars
// @Tags cars
// @Produce json
// @Param region query string false "Restrict to a region"
// @Success 200 {array} resdto.CarResponse
// @Router /cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	var region *string
	if r := c.Query("region"); r != "" {
		region = &r
	}

	cars, err := h.carQueries.List(c.Request.Context(), region)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarViews(cars))
}

// @Summary Get car
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 404 {object} map[string]string
// @Router /cars/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID",
		})
		return
	}

	view, err := h.carQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarView(view))
}

// @Summary Update car location
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param request body reqdto.UpdateCarLocationRequest true "Location fields"
// @Success 200 {object} resdto.CarResponse
// @Failure 404 {object} map[string]string
// @Router /cars/{id}/location [patch]
func (h *CarHandler) UpdateLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID",
		})
		return
	}

	var req reqdto.UpdateCarLocationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.carCommands.UpdateLocation(c.Request.Context(), id, req)
	if err != nil {
		h.respondCarError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarView(view))
}

// @Summary Override car status
// @Description Pin a maintenance status, or set Available to re-derive
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param request body reqdto.OverrideCarStatusRequest true "New status"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cars/{id}/status [put]
func (h *CarHandler) OverrideStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID",
		})
		return
	}

	var req reqdto.OverrideCarStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.carCommands.OverrideStatus(c.Request.Context(), id, req)
	if err != nil {
		h.respondCarError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarView(view))
}

func (h *CarHandler) respondCarError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrCarNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Car not found",
		})
	case errs.Is(err, commands.ErrInvalidStatusOverride):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Status cannot be set manually",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
