// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"geotjs/internal/domain/tjs10"
	"geotjs/internal/domain/validation"
	"geotjs/internal/infrastructure/http/v1/handlers"
	"geotjs/internal/infrastructure/http/v1/middleware"
	"geotjs/internal/metadata"
	"geotjs/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// Registry stores class definitions; defaults to the factory's registry
	Registry *metadata.Registry

	// Factory creates model objects; defaults to tjs10.DefaultFactory
	Factory *tjs10.Factory

	// Validator checks documents; defaults to validation.Default
	Validator *validation.Validator

	// MaxDocumentBytes limits request documents, zero means unlimited
	MaxDocumentBytes int64

	// IndentOutput is the default for normalized documents
	IndentOutput bool

	// Version is reported by /health/info
	Version string
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	cfg = cfg.withDefaults()

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger.WithComponent("http")))
	router.Use(middleware.ErrorHandler(handlers.ErrorMappings()...))
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(cfg.Version, cfg.Registry)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/info", healthHandler.Info)
	}

	base := handlers.NewBaseHandler(cfg.MaxDocumentBytes)

	v1 := router.Group("/api/v1")
	{
		RegisterDocumentRoutes(v1.Group("/documents"),
			handlers.NewDocumentHandler(base, cfg.Validator, cfg.IndentOutput))
		RegisterMetaRoutes(v1.Group("/meta"),
			handlers.NewMetadataHandler(base, cfg.Registry, cfg.Factory))
		RegisterEnumRoutes(v1.Group("/enums"),
			handlers.NewEnumHandler(base, cfg.Factory))

		factoryHandler := handlers.NewFactoryHandler(base, cfg.Factory)
		v1.POST("/factory/:name", factoryHandler.Create)
	}

	return router
}

func (cfg RouterConfig) withDefaults() RouterConfig {
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}
	if cfg.Factory == nil {
		cfg.Factory = tjs10.DefaultFactory()
	}
	if cfg.Registry == nil {
		cfg.Registry = cfg.Factory.Registry()
	}
	if cfg.Validator == nil {
		cfg.Validator = validation.Default()
	}
	return cfg
}
