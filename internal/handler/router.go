package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vehicle-rental/internal/handler/api"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Vehicles *api.VehicleHandler
	Rentals  *api.RentalHandler
	Reports  *api.ReportHandler
}

func NewHandlers(vehicles *api.VehicleHandler, rentals *api.RentalHandler, reports *api.ReportHandler) Handlers {
	return Handlers{Vehicles: vehicles, Rentals: rentals, Reports: reports}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup.Group("/vehicles"), []route{
			{Method: http.MethodGet, Path: "/available", Handler: h.Vehicles.Search},
		})

		addRoutes(apiGroup.Group("/rentals"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Rentals.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Rentals.ListMine},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Rentals.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Rentals.Cancel},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			addRoutes(admin.Group("/vehicles"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Vehicles.List},
				{Method: http.MethodPost, Path: "", Handler: h.Vehicles.Register},
				{Method: http.MethodPatch, Path: "/:plate", Handler: h.Vehicles.Update},
				{Method: http.MethodDelete, Path: "/:plate", Handler: h.Vehicles.Delete},
			})

			addRoutes(admin.Group("/rentals"), []route{
				{Method: http.MethodPost, Path: "/:id/review", Handler: h.Rentals.Review},
				{Method: http.MethodPost, Path: "/:id/issue", Handler: h.Rentals.Issue},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Rentals.Complete},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Rentals.Cancel},
			})

			addRoutes(admin.Group("/reports"), []route{
				{Method: http.MethodGet, Path: "/no-shows", Handler: h.Reports.NoShows},
				{Method: http.MethodGet, Path: "/over-threshold", Handler: h.Reports.OverThreshold},
				{Method: http.MethodGet, Path: "/cancellations", Handler: h.Reports.Cancellations},
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
