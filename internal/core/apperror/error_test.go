package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errUnknownThing = errors.New("unknown thing")

func TestTranslate(t *testing.T) {
	mappings := []Mapping{
		{Target: errUnknownThing, Build: NewInvalidClassifier},
	}

	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"mapped sentinel", fmt.Errorf("lookup: %w", errUnknownThing), CodeInvalidClassifier, http.StatusNotFound},
		{"already app error", fmt.Errorf("wrapped: %w", NewTooLarge(10)), CodeTooLarge, http.StatusRequestEntityTooLarge},
		{"unknown", errors.New("boom"), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate(tt.err, mappings...)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantStatus, got.HTTPStatus)
			assert.Equal(t, tt.wantStatus, GetHTTPStatus(got))
		})
	}

	assert.Nil(t, Translate(nil, mappings...))
}

func TestAppError_Details(t *testing.T) {
	cause := errors.New("line 3: unexpected EOF")
	err := NewInvalidDocument(cause).WithDetail("element", "GetData")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "GetData", err.Details["element"])
	assert.Equal(t, cause.Error(), err.Details["error"])
	assert.Contains(t, err.Error(), "INVALID_DOCUMENT")
	assert.False(t, IsNotFound(err))
	assert.True(t, IsNotFound(NewNotFound("class", "Foo")))
}
