package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"geotjs/internal/core/apperror"
	"geotjs/internal/domain/tjs10"
	"geotjs/internal/infrastructure/xmlcodec"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct {
	maxBytes int64
}

// NewBaseHandler creates a base handler limiting request documents to
// maxBytes (zero means unlimited).
func NewBaseHandler(maxBytes int64) *BaseHandler {
	return &BaseHandler{maxBytes: maxBytes}
}

// BindJSON binds and validates JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewInvalidInput("invalid request body").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// Error registers err on the gin context and aborts the request.
// The JSON response is produced by middleware.ErrorHandler.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ParseBoolQuery parses a boolean query parameter, falling back to def.
func (h *BaseHandler) ParseBoolQuery(c *gin.Context, key string, def bool) bool {
	val := c.Query(key)
	if val == "" {
		return def
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return def
	}
	return parsed
}

// ReadDocument decodes the request body as a TJS document.
func (h *BaseHandler) ReadDocument(c *gin.Context) (*tjs10.DocumentRoot, bool) {
	body := c.Request.Body
	if h.maxBytes > 0 {
		body = http.MaxBytesReader(c.Writer, body, h.maxBytes)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.Error(c, apperror.NewTooLarge(tooLarge.Limit))
			return nil, false
		}
		h.Error(c, apperror.NewInvalidInput("cannot read request body").WithCause(err))
		return nil, false
	}

	doc, err := xmlcodec.DecodeWithOptions(c.Request.Context(), bytes.NewReader(raw), xmlcodec.DecodeOptions{MaxBytes: h.maxBytes})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			h.Error(c, apperror.NewTimeout(err))
			return nil, false
		}
		h.Error(c, apperror.NewInvalidDocument(err))
		return nil, false
	}
	return doc, true
}

// XML writes an encoded document with the matching content headers.
func (h *BaseHandler) XML(c *gin.Context, status int, doc *tjs10.DocumentRoot, opts xmlcodec.Options) {
	data, err := xmlcodec.EncodeBytes(c.Request.Context(), doc, opts)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.rawXML(c, status, data, opts.Compression)
}

func (h *BaseHandler) rawXML(c *gin.Context, status int, data []byte, compression xmlcodec.Compression) {
	if compression != "" && compression != xmlcodec.CompressionNone {
		c.Header("Content-Encoding", string(compression))
	}
	c.Data(status, tjs10.MediaType+"; charset=utf-8", data)
}

// OK sends 200 response with data.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
