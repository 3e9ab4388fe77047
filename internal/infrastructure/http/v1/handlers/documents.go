package handlers

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"

	"geotjs/internal/core/apperror"
	"geotjs/internal/core/model"
	"geotjs/internal/domain/validation"
	"geotjs/internal/infrastructure/http/v1/dto"
	"geotjs/internal/infrastructure/xmlcodec"
	"geotjs/pkg/logger"
)

// DocumentHandler decodes, checks and re-encodes TJS documents.
type DocumentHandler struct {
	*BaseHandler
	validator *validation.Validator
	indent    bool
}

// NewDocumentHandler creates a document handler; indent is the default for
// normalized output when the request does not say.
func NewDocumentHandler(base *BaseHandler, v *validation.Validator, indent bool) *DocumentHandler {
	return &DocumentHandler{BaseHandler: base, validator: v, indent: indent}
}

// Validate checks a document against the schema rules.
// A valid document answers 200, an invalid one 422; both carry the report.
// POST /api/v1/documents/validate
func (h *DocumentHandler) Validate(c *gin.Context) {
	doc, ok := h.ReadDocument(c)
	if !ok {
		return
	}

	element, value := doc.Element()
	report := h.validator.Validate(c.Request.Context(), doc)
	logger.Debug(c.Request.Context(), "document validated",
		"element", element,
		"valid", report.Valid,
		"issues", len(report.Issues),
	)

	status := http.StatusOK
	if !report.Valid {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, dto.ValidationResponse{
		Element:    element,
		Classifier: classifierName(value),
		Valid:      report.Valid,
		Issues:     report.Issues,
	})
}

// classifierName names the class of a root value; simple slots have none.
func classifierName(value any) string {
	if _, ok := value.(model.Object); !ok {
		return ""
	}
	return reflect.TypeOf(value).Elem().Name()
}

// Normalize re-encodes a document with canonical namespace declarations.
// Query: indent=true|false, compress=gzip|zstd, validate=true to reject invalid input.
// POST /api/v1/documents/normalize
func (h *DocumentHandler) Normalize(c *gin.Context) {
	compression, err := xmlcodec.ParseCompression(c.Query("compress"))
	if err != nil {
		h.Error(c, apperror.NewInvalidInput(err.Error()))
		return
	}

	doc, ok := h.ReadDocument(c)
	if !ok {
		return
	}

	if h.ParseBoolQuery(c, "validate", false) {
		if err := h.validator.Validate(c.Request.Context(), doc).Err(); err != nil {
			h.Error(c, err)
			return
		}
	}

	h.XML(c, http.StatusOK, doc, xmlcodec.Options{
		Indent:      h.ParseBoolQuery(c, "indent", h.indent),
		Compression: compression,
	})
}
