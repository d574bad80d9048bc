package api

import (
	"net/http"

	reqdto "fleetbook/internal/handler/dto/request"
	resdto "fleetbook/internal/handler/dto/response"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/usecase/commands"
	"fleetbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BlockHandler struct {
	blockCommands commands.BlockCommands
	blockQueries  queries.BlockQueries
}

func NewBlockHandler(blockCommands commands.BlockCommands, blockQueries queries.BlockQueries) *BlockHandler {
	return &BlockHandler{blockCommands: blockCommands, blockQueries: blockQueries}
}

// @Summary List active date blocks
// @Tags blocks
// @Produce json
// @Security BearerAuth
// @Param car_id query string false "Filter by car"
// @Success 200 {array} resdto.BlockResponse
// @Router /blocks [get]
func (h *BlockHandler) ListBlocks(c *gin.Context) {
	var carID *uuid.UUID
	if raw := c.Query("car_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid car_id",
			})
			return
		}
		carID = &id
	}

	blocks, err := h.blockQueries.List(c.Request.Context(), carID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBlockViews(blocks))
}

// @Summary Create date block
// @Description Register a Service, Breakdown or Manual hold on a car
// @Tags blocks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBlockRequest true "Block request"
// @Success 201 {object} resdto.BlockResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blocks [post]
func (h *BlockHandler) CreateBlock(c *gin.Context) {
	var req reqdto.CreateBlockRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.blockCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
		case errs.Is(err, commands.ErrInvalidDates):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid block dates",
			})
		case errs.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid block reason",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBlockView(view))
}

// @Summary Delete date block
// @Tags blocks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Block ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /blocks/{id} [delete]
func (h *BlockHandler) DeleteBlock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid block ID",
		})
		return
	}

	if err := h.blockCommands.Delete(c.Request.Context(), id); err != nil {
		if errs.Is(err, commands.ErrBlockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Block not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
