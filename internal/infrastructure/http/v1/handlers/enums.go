package handlers

import (
	"github.com/gin-gonic/gin"

	"geotjs/internal/core/apperror"
	"geotjs/internal/domain/tjs10"
	"geotjs/internal/infrastructure/http/v1/dto"
)

// EnumHandler exposes the enumerated datatypes and literal conversion.
type EnumHandler struct {
	*BaseHandler
	factory *tjs10.Factory
}

func NewEnumHandler(base *BaseHandler, factory *tjs10.Factory) *EnumHandler {
	return &EnumHandler{BaseHandler: base, factory: factory}
}

// List returns every datatype with its literals.
// GET /api/v1/enums
func (h *EnumHandler) List(c *gin.Context) {
	ids := tjs10.DataTypes()
	out := make([]dto.DataTypeResponse, 0, len(ids))
	for _, id := range ids {
		resp, err := h.describe(id)
		if err != nil {
			h.Error(c, err)
			return
		}
		out = append(out, resp)
	}
	h.OK(c, out)
}

// Get returns one datatype.
// GET /api/v1/enums/:name
func (h *EnumHandler) Get(c *gin.Context) {
	id, ok := h.lookup(c)
	if !ok {
		return
	}
	resp, err := h.describe(id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

// Convert parses a literal and writes it back in canonical form.
// POST /api/v1/enums/:name/convert
func (h *EnumHandler) Convert(c *gin.Context) {
	id, ok := h.lookup(c)
	if !ok {
		return
	}
	var req dto.ConvertRequest
	if !h.BindJSON(c, &req) {
		return
	}

	value, err := h.factory.CreateFromString(id, req.Literal)
	if err != nil {
		h.Error(c, err)
		return
	}
	literal, err := h.factory.ConvertToString(id, value)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.ConvertResponse{DataType: id.String(), Literal: literal, Value: value})
}

func (h *EnumHandler) lookup(c *gin.Context) (tjs10.DataTypeID, bool) {
	name := c.Param("name")
	id, ok := tjs10.DataTypeByName(name)
	if !ok {
		h.Error(c, apperror.NewNotFound("datatype", name))
		return 0, false
	}
	return id, true
}

func (h *EnumHandler) describe(id tjs10.DataTypeID) (dto.DataTypeResponse, error) {
	literals, err := h.factory.Literals(id)
	if err != nil {
		return dto.DataTypeResponse{}, err
	}
	if literals == nil {
		literals = []string{}
	}
	return dto.DataTypeResponse{
		ID:       int(id),
		Name:     id.String(),
		Nullable: h.factory.Nullable(id),
		Literals: literals,
	}, nil
}
