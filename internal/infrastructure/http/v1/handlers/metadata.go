package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"geotjs/internal/core/apperror"
	"geotjs/internal/domain/tjs10"
	"geotjs/internal/infrastructure/http/v1/dto"
	"geotjs/internal/metadata"
)

// MetadataHandler exposes the class registry.
type MetadataHandler struct {
	*BaseHandler
	registry *metadata.Registry
	factory  *tjs10.Factory
}

func NewMetadataHandler(base *BaseHandler, registry *metadata.Registry, factory *tjs10.Factory) *MetadataHandler {
	return &MetadataHandler{
		BaseHandler: base,
		registry:    registry,
		factory:     factory,
	}
}

// ListClasses returns a page of class summaries ordered by classifier ID.
// GET /api/v1/meta
func (h *MetadataHandler) ListClasses(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.Error(c, apperror.NewInvalidInput("invalid pagination").WithDetail("error", err.Error()))
		return
	}
	page.Defaults()

	defs := h.registry.List()
	items := make([]dto.ClassSummary, 0, len(defs))
	for _, def := range defs {
		items = append(items, dto.NewClassSummary(def, h.element(def.Name)))
	}
	h.OK(c, dto.Page(items, page))
}

// GetClass returns the full definition of a class, looked up by name or classifier ID.
// GET /api/v1/meta/:name
func (h *MetadataHandler) GetClass(c *gin.Context) {
	name := c.Param("name")

	def, ok := h.registry.Get(name)
	if !ok {
		if id, err := strconv.Atoi(name); err == nil {
			def, ok = h.registry.ByID(id)
		}
	}
	if !ok {
		h.Error(c, apperror.NewNotFound("class", name))
		return
	}
	h.OK(c, def)
}

func (h *MetadataHandler) element(class string) string {
	obj, err := h.factory.CreateByName(class)
	if err != nil {
		return ""
	}
	name, _ := tjs10.ElementFor(obj)
	return name
}
