package dto

import (
	"geotjs/internal/domain/validation"
	"geotjs/internal/metadata"
)

// ValidationResponse is the body of POST /documents/validate.
type ValidationResponse struct {
	Element    string             `json:"element"`
	Classifier string             `json:"classifier"`
	Valid      bool               `json:"valid"`
	Issues     []validation.Issue `json:"issues,omitempty"`
}

// ClassSummary is one entry of the class listing.
type ClassSummary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Element  string `json:"element,omitempty"`
	Features int    `json:"features"`
}

// NewClassSummary summarizes def; element is the root element name, if any.
func NewClassSummary(def metadata.ClassDef, element string) ClassSummary {
	return ClassSummary{
		ID:       def.ID,
		Name:     def.Name,
		Element:  element,
		Features: len(def.Features),
	}
}

// DataTypeResponse describes an enumerated or string datatype.
type DataTypeResponse struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Nullable bool     `json:"nullable"`
	Literals []string `json:"literals"`
}

// ConvertRequest carries a literal to check against a datatype.
type ConvertRequest struct {
	Literal string `json:"literal" binding:"required"`
}

// ConvertResponse echoes the literal in its canonical lexical form.
type ConvertResponse struct {
	DataType string `json:"dataType"`
	Literal  string `json:"literal"`
	Value    any    `json:"value"`
}
