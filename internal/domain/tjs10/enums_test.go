package tjs10

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnums(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) (any, error)
		literal string
		want    any
		wantErr bool
	}{
		{"data class", wrap(ParseDataClassType), "measure", DataClassMeasure, false},
		{"data class case", wrap(ParseDataClassType), "Measure", nil, true},
		{"purpose", wrap(ParsePurposeType), "Attribute", PurposeAttribute, false},
		{"purpose unknown", wrap(ParsePurposeType), "Key", nil, true},
		{"type", wrap(ParseTypeType), "http://www.w3.org/TR/xmlschema-2/#decimal", TypeDecimal, false},
		{"gaussian", wrap(ParseGaussianType), "unknown", GaussianUnknown, false},
		{"request version", wrap(ParseVersionType2), "1.0.0", RequestVersion100, false},
		{"request version unknown", wrap(ParseVersionType2), "2.0", nil, true},
		{"service", wrap(ParseRequestServiceType), "TJS", RequestServiceTJS, false},
		{"update", wrap(ParseUpdateType), "yes", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse(tt.literal)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidEnumerator))
				assert.Contains(t, err.Error(), "is not a valid enumerator of")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func wrap[T ~string](parse func(string) (T, error)) func(string) (any, error) {
	return func(s string) (any, error) {
		v, err := parse(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func TestEnum_UnmarshalTextRejectsUnknown(t *testing.T) {
	var p PurposeType
	err := p.UnmarshalText([]byte("Nonsense"))
	assert.True(t, errors.Is(err, ErrInvalidEnumerator))
	assert.EqualError(t, err, "invalid enumerator: the value 'Nonsense' is not a valid enumerator of 'PurposeType'")

	require.NoError(t, p.UnmarshalText([]byte("TemporalValue")))
	assert.Equal(t, PurposeTemporalValue, p)
}

func TestEnum_Literals(t *testing.T) {
	assert.Len(t, PurposeType("").Literals(), 10)
	assert.Equal(t, []string{"nominal", "ordinal", "measure", "count"}, DataClassType("").Literals())
	assert.True(t, TypeDouble.IsValid())
	assert.False(t, TypeType("double").IsValid())
	assert.Equal(t, "datetime", TypeDatetime.Short())
}

func TestSectionsType(t *testing.T) {
	assert.True(t, SectionsType("ServiceIdentification,Contents").IsValid())
	assert.True(t, SectionsType("Themes").IsValid())
	assert.False(t, SectionsType("Contents,").IsValid())
	assert.False(t, SectionsType("Everything").IsValid())
	assert.Equal(t, []string{"OperationsMetadata", "Contents"}, SectionsType("OperationsMetadata,Contents").Sections())
}

func TestAcceptLanguages(t *testing.T) {
	assert.Equal(t, []string{"en-CA", "fr-CA"}, AcceptLanguagesType("en-CA, fr-CA").Tags())
	assert.Empty(t, AcceptLanguagesType("").Tags())
}
