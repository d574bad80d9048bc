package api

import (
	"net/http"

	reqdto "fleetbook/internal/handler/dto/request"
	resdto "fleetbook/internal/handler/dto/response"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/usecase/commands"
	"fleetbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	authCommands   commands.AuthCommands
	bookingQueries queries.BookingQueries
}

func NewAdminHandler(authCommands commands.AuthCommands, bookingQueries queries.BookingQueries) *AdminHandler {
	return &AdminHandler{authCommands: authCommands, bookingQueries: bookingQueries}
}

// @Summary Admin login
// @Description Exchange the operator password for a bearer token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, err := h.authCommands.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid credentials",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{Token: token})
}

// @Summary Booking statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StatsResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.bookingQueries.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingStats(stats))
}
