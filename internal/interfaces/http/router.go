package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"modcms/internal/infrastructure/config"
	"modcms/internal/infrastructure/ratelimit"
	"modcms/internal/interfaces/http/middleware"
	"modcms/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.Timeout(r.cfg.Server.GetRequestTimeout()))
	r.engine.Use(middleware.Actor(r.log))

	r.engine.GET("/health", r.hdlrs.healthHandler.Check)

	api := r.engine.Group("/api")

	r.setupAdminRoutes(api.Group("/admin"))
	r.setupContentRoutes(api)
}

func (r *Router) setupAdminRoutes(admin *gin.RouterGroup) {
	categories := admin.Group("/categories")
	{
		categories.POST("", r.hdlrs.categoryHandler.CreateCategory)
		categories.GET("", r.hdlrs.categoryHandler.ListCategories)
		categories.GET("/:id", r.hdlrs.categoryHandler.GetCategory)
		categories.DELETE("/:id", r.hdlrs.categoryHandler.DeleteCategory)
		categories.POST("/:id/columns", r.hdlrs.categoryHandler.AddColumn)
		categories.GET("/:id/columns", r.hdlrs.categoryHandler.ListColumns)
		categories.DELETE("/:id/columns/:columnId", r.hdlrs.categoryHandler.RemoveColumn)
	}

	admin.POST("/catalog/import", r.hdlrs.categoryHandler.ImportCatalog)

	modules := admin.Group("/modules")
	{
		modules.POST("", r.hdlrs.moduleHandler.CreateModule)
		modules.GET("", r.hdlrs.moduleHandler.ListModules)
		modules.GET("/:id", r.hdlrs.moduleHandler.GetModule)
		modules.PATCH("/:id", r.hdlrs.moduleHandler.UpdateModule)
		modules.DELETE("/:id", r.hdlrs.moduleHandler.DeleteModule)
	}
}

func (r *Router) setupContentRoutes(api *gin.RouterGroup) {
	recordRoutes := api.Group("/modules/:code/records")
	if r.writeLimiter != nil {
		recordRoutes.Use(middleware.WriteRateLimit(r.writeLimiter, ratelimit.Limits{
			PerMinute: r.cfg.RateLimit.WritesPerMinute,
			PerHour:   r.cfg.RateLimit.WritesPerHour,
		}, r.log))
	}
	{
		recordRoutes.GET("", r.hdlrs.recordHandler.ListRecords)
		recordRoutes.POST("", r.hdlrs.recordHandler.CreateRecord)
		recordRoutes.GET("/:id", r.hdlrs.recordHandler.GetRecord)
		recordRoutes.PUT("/:id", r.hdlrs.recordHandler.UpdateRecord)
		recordRoutes.PATCH("/:id", r.hdlrs.recordHandler.UpdateRecord)
		recordRoutes.DELETE("/:id", r.hdlrs.recordHandler.DeleteRecord)
	}

	api.GET("/widgets/:moduleId", r.hdlrs.widgetHandler.GetWidget)
	api.GET("/translations/:code", r.hdlrs.translationHandler.ResolveCode)
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Shutdown releases router-owned resources
func (r *Router) Shutdown() {
	r.log.Infow("shutting down router")
	r.Close()
}
