package validation

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geotjs/internal/core/apperror"
	"geotjs/internal/core/model"
	"geotjs/internal/domain/tjs10"
	"geotjs/internal/domain/xmltype"
)

func validDescribeKey(t *testing.T) *tjs10.DocumentRoot {
	t.Helper()
	req := tjs10.NewDescribeKeyType()
	req.FrameworkURI = "http://example.org/frameworks/provinces"
	req.Version = tjs10.RequestVersion10
	req.Language = "en-CA"
	doc, err := tjs10.NewDocument("DescribeKey", req)
	require.NoError(t, err)
	return doc
}

// rules maps issue paths to the rule that failed there.
func rules(r Report) map[string]string {
	out := map[string]string{}
	for _, is := range r.Issues {
		out[is.Path] = is.Rule
	}
	return out
}

func TestValidate_ValidRequest(t *testing.T) {
	r := Default().Validate(context.Background(), validDescribeKey(t))
	assert.True(t, r.Valid, "%+v", r.Issues)
	assert.NoError(t, r.Err())
}

func TestValidate_RequestRules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*tjs10.DescribeKeyType)
		path     string
		wantRule string
	}{
		{
			name:     "missing framework",
			mutate:   func(r *tjs10.DescribeKeyType) { r.FrameworkURI = "" },
			path:     "DescribeKey/FrameworkURI",
			wantRule: "required",
		},
		{
			name:     "bad version",
			mutate:   func(r *tjs10.DescribeKeyType) { r.Version = "2.0" },
			path:     "DescribeKey/@version",
			wantRule: "tjs_enum",
		},
		{
			name:     "bad language",
			mutate:   func(r *tjs10.DescribeKeyType) { r.Language = "not a tag" },
			path:     "DescribeKey/@language",
			wantRule: "bcp47_language_tag",
		},
		{
			name:     "foreign service",
			mutate:   func(r *tjs10.DescribeKeyType) { r.Service.Set("WMS") },
			path:     "DescribeKey/@service",
			wantRule: "tjs_service",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDescribeKey(t)
			tt.mutate(doc.DescribeKey)

			r := Default().Validate(context.Background(), doc)
			require.False(t, r.Valid)
			assert.Equal(t, tt.wantRule, rules(r)[tt.path], "%+v", r.Issues)
		})
	}
}

func TestValidate_GetCapabilities(t *testing.T) {
	req := tjs10.NewGetCapabilitiesType()
	req.Sections = "Contents,Everything"
	req.Language = "en, xx-!!"
	req.AcceptVersions = tjs10.NewAcceptVersionsType()

	got := rules(Default().Validate(context.Background(), req))
	assert.Equal(t, "tjs_sections", got["Sections"])
	assert.Equal(t, "bcp47_list", got["@language"])
	assert.Equal(t, "min", got["AcceptVersions/Version"])
}

func TestValidate_ValuesChoice(t *testing.T) {
	values := tjs10.NewValuesType()
	r := Default().Validate(context.Background(), values)
	assert.Equal(t, "tjs_choice", rules(r)[""])

	require.NoError(t, model.Set(values, &values.Nominal, tjs10.NewNominalType()))
	require.NoError(t, model.Set(values, &values.Ordinal, tjs10.NewOrdinalType()))
	r = Default().Validate(context.Background(), values)
	assert.Equal(t, "tjs_choice", rules(r)[""])
}

func TestValidate_TwoRootElements(t *testing.T) {
	doc := validDescribeKey(t)
	title := "Provinces"
	doc.Title = &title

	r := Default().Validate(context.Background(), doc)
	require.False(t, r.Valid)
	assert.Equal(t, "tjs_choice", rules(r)[""])
	assert.Equal(t, 2, doc.Populated())
}

func TestValidate_StatusChoice(t *testing.T) {
	status := tjs10.NewStatusType()
	status.CreationTime = "2024-05-01T10:00:00Z"
	status.Href = "http://example.org/status/1"
	status.Accepted = xmltype.NewAnyType("queued")

	r := Default().Validate(context.Background(), status)
	assert.True(t, r.Valid, "%+v", r.Issues)

	status.Failed = tjs10.NewFailedType()
	r = Default().Validate(context.Background(), status)
	assert.Equal(t, "tjs_choice_max", rules(r)[""])
}

func TestValidate_NumericRules(t *testing.T) {
	bc := tjs10.NewBoundingCoordinatesType()
	bc.North = decimal.NewFromInt(10)
	bc.South = decimal.NewFromInt(20)
	assert.Equal(t, "gtefield", rules(Default().Validate(context.Background(), bc))["North"])

	col := tjs10.NewColumnType()
	col.Name = "PR"
	col.Type = tjs10.TypeString
	col.Length = big.NewInt(-1)
	assert.Equal(t, "gte", rules(Default().Validate(context.Background(), col))["@length"])
}

func TestValidate_OptionalEnumAttribute(t *testing.T) {
	col := tjs10.NewColumnType1()
	col.Purpose.Set(tjs10.PurposeType("Key"))

	got := rules(Default().Validate(context.Background(), col))
	assert.Equal(t, "tjs_enum", got["@purpose"])
	assert.Equal(t, "required", got["Values"])
}

func TestValidate_EmptyDocument(t *testing.T) {
	r := Default().Validate(context.Background(), tjs10.NewDocumentRoot())
	require.False(t, r.Valid)
	assert.Equal(t, "tjs_choice", rules(r)[""])
}

func TestReport_Err(t *testing.T) {
	doc := validDescribeKey(t)
	doc.DescribeKey.FrameworkURI = ""

	err := Default().Validate(context.Background(), doc).Err()
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "DescribeKey/FrameworkURI is required")
	assert.Len(t, appErr.Details["issues"], 1)
}
