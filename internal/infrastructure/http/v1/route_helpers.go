package v1

import (
	"github.com/gin-gonic/gin"
)

// DocumentRouteHandler handles whole TJS documents.
type DocumentRouteHandler interface {
	Validate(c *gin.Context)
	Normalize(c *gin.Context)
}

// MetaRouteHandler exposes class definitions.
type MetaRouteHandler interface {
	ListClasses(c *gin.Context)
	GetClass(c *gin.Context)
}

// EnumRouteHandler exposes datatypes.
type EnumRouteHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Convert(c *gin.Context)
}

// RegisterDocumentRoutes registers the document processing routes.
func RegisterDocumentRoutes(group *gin.RouterGroup, handler DocumentRouteHandler) {
	group.POST("/validate", handler.Validate)
	group.POST("/normalize", handler.Normalize)
}

// RegisterMetaRoutes registers the class registry routes.
//
// Usage:
//
//	RegisterMetaRoutes(v1.Group("/meta"), handlers.NewMetadataHandler(base, registry, factory))
func RegisterMetaRoutes(group *gin.RouterGroup, handler MetaRouteHandler) {
	group.GET("", handler.ListClasses)
	group.GET("/:name", handler.GetClass)
}

// RegisterEnumRoutes registers the datatype routes.
func RegisterEnumRoutes(group *gin.RouterGroup, handler EnumRouteHandler) {
	group.GET("", handler.List)
	group.GET("/:name", handler.Get)
	group.POST("/:name/convert", handler.Convert)
}
