package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"geotjs/internal/domain/tjs10"
	"geotjs/internal/infrastructure/xmlcodec"
)

// FactoryHandler creates empty instances of model classes.
type FactoryHandler struct {
	*BaseHandler
	factory *tjs10.Factory
}

func NewFactoryHandler(base *BaseHandler, factory *tjs10.Factory) *FactoryHandler {
	return &FactoryHandler{BaseHandler: base, factory: factory}
}

// Create returns the XML skeleton of a new instance of the named class.
// Root classes come back as complete documents, others as a fragment
// named after the class.
// POST /api/v1/factory/:name
func (h *FactoryHandler) Create(c *gin.Context) {
	name := c.Param("name")
	obj, err := h.factory.CreateByName(name)
	if err != nil {
		h.Error(c, err)
		return
	}
	opts := xmlcodec.Options{Indent: h.ParseBoolQuery(c, "indent", true)}

	var buf bytes.Buffer
	if err := xmlcodec.EncodeInstance(c.Request.Context(), &buf, name, obj, opts); err != nil {
		h.Error(c, err)
		return
	}
	h.rawXML(c, http.StatusCreated, buf.Bytes(), opts.Compression)
}
