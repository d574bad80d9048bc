package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fleetbook/internal/handler/api"
	"fleetbook/internal/handler/middleware"
	"fleetbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	calendarHandler *api.CalendarHandler,
	carHandler *api.CarHandler,
	blockHandler *api.BlockHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, calendarHandler, carHandler, blockHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	calendarHandler *api.CalendarHandler,
	carHandler *api.CarHandler,
	blockHandler *api.BlockHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	admin := []gin.HandlerFunc{authMiddleware.RequireAdmin()}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "/:reference", Handler: bookingHandler.GetBooking},
				{Method: http.MethodDelete, Path: "/:reference", Handler: bookingHandler.CancelBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings, Mw: admin},
				{Method: http.MethodPatch, Path: "/:reference", Handler: bookingHandler.UpdateBooking, Mw: admin},
				{Method: http.MethodPost, Path: "/:reference/approve", Handler: bookingHandler.ApproveBooking, Mw: admin},
				{Method: http.MethodPost, Path: "/:reference/reject", Handler: bookingHandler.RejectBooking, Mw: admin},
			})
		}

		cars := apiGroup.Group("/cars")
		{
			addRoutes(cars, []route{
				{Method: http.MethodGet, Path: "", Handler: carHandler.ListCars},
				{Method: http.MethodGet, Path: "/:id", Handler: carHandler.GetCar},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: calendarHandler.CheckAvailability},
				{Method: http.MethodPatch, Path: "/:id/location", Handler: carHandler.UpdateLocation, Mw: admin},
				{Method: http.MethodPut, Path: "/:id/status", Handler: carHandler.OverrideStatus, Mw: admin},
			})
		}

		blocks := apiGroup.Group("/blocks")
		blocks.Use(authMiddleware.RequireAdmin())
		{
			addRoutes(blocks, []route{
				{Method: http.MethodPost, Path: "", Handler: blockHandler.CreateBlock},
				{Method: http.MethodGet, Path: "", Handler: blockHandler.ListBlocks},
				{Method: http.MethodDelete, Path: "/:id", Handler: blockHandler.DeleteBlock},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/calendar", Handler: calendarHandler.GetCalendar},
		})

		adminGroup := apiGroup.Group("/admin")
		{
			addRoutes(adminGroup, []route{
				{Method: http.MethodPost, Path: "/login", Handler: adminHandler.Login},
				{Method: http.MethodGet, Path: "/stats", Handler: adminHandler.Stats, Mw: admin},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
