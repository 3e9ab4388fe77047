package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geotjs/internal/infrastructure/http/v1/dto"
	"geotjs/pkg/logger"
)

const validDescribeKey = `<?xml version="1.0" encoding="UTF-8"?>
<tjs:DescribeKey xmlns:tjs="http://www.opengis.net/tjs/1.0" service="TJS" version="1.0" language="en-CA">
  <tjs:FrameworkURI>http://example.org/frameworks/provinces</tjs:FrameworkURI>
</tjs:DescribeKey>`

const invalidDescribeKey = `<DescribeKey xmlns="http://www.opengis.net/tjs/1.0" version="1.0"/>`

func newTestRouter(t *testing.T, maxBytes int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterConfig{
		Logger:           logger.Nop(),
		MaxDocumentBytes: maxBytes,
		Version:          "test",
	})
}

func do(r http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, 0)

	w := do(r, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(r, http.MethodGet, "/health/info", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var info struct {
		Version string         `json:"version"`
		Model   map[string]any `json:"model"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "test", info.Version)
	assert.EqualValues(t, 49, info.Model["elements"])
}

func TestValidateDocument(t *testing.T) {
	r := newTestRouter(t, 0)

	t.Run("valid", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/documents/validate", strings.NewReader(validDescribeKey))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp dto.ValidationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, "DescribeKey", resp.Element)
		assert.Equal(t, "DescribeKeyType", resp.Classifier)
		assert.Empty(t, resp.Issues)
	})

	t.Run("schema violation", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/documents/validate", strings.NewReader(invalidDescribeKey))
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		var resp dto.ValidationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Valid)
		require.Len(t, resp.Issues, 1)
		assert.Equal(t, "DescribeKey/FrameworkURI", resp.Issues[0].Path)
		assert.Equal(t, "required", resp.Issues[0].Rule)
	})

	t.Run("gzip body", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte(validDescribeKey))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		w := do(r, http.MethodPost, "/api/v1/documents/validate", &buf)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}

func TestValidateDocument_Errors(t *testing.T) {
	tests := []struct {
		name     string
		maxBytes int64
		body     string
		status   int
		code     string
	}{
		{"malformed", 0, "<DescribeKey", http.StatusBadRequest, "INVALID_DOCUMENT"},
		{"unknown root", 0, `<Nope xmlns="http://www.opengis.net/tjs/1.0"/>`, http.StatusBadRequest, "INVALID_DOCUMENT"},
		{"bad enumerator", 0, `<DescribeKey version="9.9"/>`, http.StatusBadRequest, "INVALID_DOCUMENT"},
		{"too large", 16, validDescribeKey, http.StatusRequestEntityTooLarge, "DOCUMENT_TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, tt.maxBytes)
			w := do(r, http.MethodPost, "/api/v1/documents/validate", strings.NewReader(tt.body))
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}
}

func TestNormalizeDocument(t *testing.T) {
	r := newTestRouter(t, 0)

	t.Run("plain", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/documents/normalize?indent=false", strings.NewReader(validDescribeKey))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/xml"))
		assert.Contains(t, w.Body.String(), "<DescribeKey xmlns=\"http://www.opengis.net/tjs/1.0\"")
		assert.Contains(t, w.Body.String(), "http://example.org/frameworks/provinces")
	})

	t.Run("gzip", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/documents/normalize?compress=gzip", strings.NewReader(validDescribeKey))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

		zr, err := gzip.NewReader(w.Body)
		require.NoError(t, err)
		out, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Contains(t, string(out), "FrameworkURI")
	})

	t.Run("unknown compression", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/documents/normalize?compress=brotli", strings.NewReader(validDescribeKey))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, w).Code)
	})

	t.Run("validate rejects", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/documents/normalize?validate=true", strings.NewReader(invalidDescribeKey))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
		assert.Contains(t, body.Details, "issues")
	})
}

func TestMetaRoutes(t *testing.T) {
	r := newTestRouter(t, 0)

	w := do(r, http.MethodGet, "/api/v1/meta?page=1&pageSize=5", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var page dto.GenericListResponse[dto.ClassSummary]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Data, 5)
	assert.Equal(t, "AbstractType", page.Data[0].Name)
	assert.Greater(t, page.Pagination.TotalItems, int64(5))

	w = do(r, http.MethodGet, "/api/v1/meta?pageSize=500", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/api/v1/meta/DescribeKeyType", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "FrameworkURI")

	w = do(r, http.MethodGet, "/api/v1/meta/0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AbstractType")

	w = do(r, http.MethodGet, "/api/v1/meta/NoSuchType", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, w).Code)
}

func TestEnumRoutes(t *testing.T) {
	r := newTestRouter(t, 0)

	w := do(r, http.MethodGet, "/api/v1/enums/PurposeTypeObject", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var dt dto.DataTypeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dt))
	assert.True(t, dt.Nullable)
	assert.Contains(t, dt.Literals, "Attribute")

	w = do(r, http.MethodGet, "/api/v1/enums", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []dto.DataTypeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 36)

	tests := []struct {
		name   string
		target string
		body   string
		status int
		code   string
	}{
		{"ok", "/api/v1/enums/PurposeType/convert", `{"literal":"Attribute"}`, http.StatusOK, ""},
		{"bad literal", "/api/v1/enums/PurposeType/convert", `{"literal":"Nope"}`, http.StatusBadRequest, "INVALID_ENUMERATOR"},
		{"missing literal", "/api/v1/enums/PurposeType/convert", `{}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown type", "/api/v1/enums/NoSuchType/convert", `{"literal":"x"}`, http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, tt.target, strings.NewReader(tt.body))
			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeError(t, w).Code)
				return
			}
			var resp dto.ConvertResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Attribute", resp.Literal)
			assert.Equal(t, "PurposeType", resp.DataType)
		})
	}
}

func TestFactoryRoute(t *testing.T) {
	r := newTestRouter(t, 0)

	w := do(r, http.MethodPost, "/api/v1/factory/GetCapabilitiesType", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "<GetCapabilities")
	assert.Contains(t, w.Body.String(), "xsi:schemaLocation")

	w = do(r, http.MethodPost, "/api/v1/factory/ColumnType1?indent=false", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, strings.HasPrefix(w.Body.String(), "<ColumnType1"), w.Body.String())

	w = do(r, http.MethodPost, "/api/v1/factory/DocumentRoot", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "INVALID_INPUT", body.Code)
	assert.Contains(t, body.Message, "DocumentRoot")

	w = do(r, http.MethodPost, "/api/v1/factory/NoSuchType", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "INVALID_CLASSIFIER", decodeError(t, w).Code)
}
