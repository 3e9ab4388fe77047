package tjs10

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// DataClassType classifies the values held by an attribute column.
type DataClassType string

const (
	DataClassNominal DataClassType = "nominal"
	DataClassOrdinal DataClassType = "ordinal"
	DataClassMeasure DataClassType = "measure"
	DataClassCount   DataClassType = "count"
)

var dataClassTypeValues = []DataClassType{DataClassNominal, DataClassOrdinal, DataClassMeasure, DataClassCount}

func ParseDataClassType(s string) (DataClassType, error) {
	return parseEnum("DataClassType", dataClassTypeValues, s)
}

func (v DataClassType) Literals() []string {
	return literals(dataClassTypeValues)
}

func (v DataClassType) IsValid() bool {
	return slices.Contains(dataClassTypeValues, v)
}

func (v DataClassType) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *DataClassType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, ParseDataClassType, b)
}

// DescribeDatasetsValueType is the request name of DescribeDatasets.
type DescribeDatasetsValueType string

const DescribeDatasetsValue DescribeDatasetsValueType = "DescribeDatasets"

var describeDatasetsValueTypeValues = []DescribeDatasetsValueType{DescribeDatasetsValue}

func ParseDescribeDatasetsValueType(s string) (DescribeDatasetsValueType, error) {
	return parseEnum("DescribeDatasetsValueType", describeDatasetsValueTypeValues, s)
}

func (v DescribeDatasetsValueType) Literals() []string {
	return literals(describeDatasetsValueTypeValues)
}

func (v DescribeDatasetsValueType) IsValid() bool {
	return slices.Contains(describeDatasetsValueTypeValues, v)
}

func (v DescribeDatasetsValueType) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *DescribeDatasetsValueType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, ParseDescribeDatasetsValueType, b)
}

// DescribeDataValueType is the request name of DescribeData.
type DescribeDataValueType string

const DescribeDataValue DescribeDataValueType = "DescribeData"

var describeDataValueTypeValues = []DescribeDataValueType{DescribeDataValue}

func ParseDescribeDataValueType(s string) (DescribeDataValueType, error) {
	return parseEnum("DescribeDataValueType", describeDataValueTypeValues, s)
}

func (v DescribeDataValueType) Literals() []string {
	return literals(describeDataValueTypeValues)
}

func (v DescribeDataValueType) IsValid() bool {
	return slices.Contains(describeDataValueTypeValues, v)
}

func (v DescribeDataValueType) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *DescribeDataValueType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, ParseDescribeDataValueType, b)
}

// DescribeFrameworksValueType is the request name of DescribeFrameworks.
type DescribeFrameworksValueType string

const DescribeFrameworksValue DescribeFrameworksValueType = "DescribeFrameworks"

var describeFrameworksValueTypeValues = []DescribeFrameworksValueType{DescribeFrameworksValue}

func ParseDescribeFrameworksValueType(s string) (DescribeFrameworksValueType, error) {
	return parseEnum("DescribeFrameworksValueType", describeFrameworksValueTypeValues, s)
}

func (v DescribeFrameworksValueType) Literals() []string {
	return literals(describeFrameworksValueTypeValues)
}

func (v DescribeFrameworksValueType) IsValid() bool {
	return slices.Contains(describeFrameworksValueTypeValues, v)
}

func (v DescribeFrameworksValueType) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *DescribeFrameworksValueType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, ParseDescribeFrameworksValueType, b)
}

// DescribeJoinAbilitiesValueType is the request name of DescribeJoinAbilities.
type DescribeJoinAbilitiesValueType string

const DescribeJoinAbilitiesValue DescribeJoinAbilitiesValueType = "DescribeJoinAbilities"

var describeJoinAbilitiesValueTypeValues = []DescribeJoinAbilitiesValueType{DescribeJoinAbilitiesValue}

func ParseDescribeJoinAbilitiesValueType(s string) (DescribeJoinAbilitiesValueType, error) {
	return parseEnum("DescribeJoinAbilitiesValueType", describeJoinAbilitiesValueTypeValues, s)
}

func (v DescribeJoinAbilitiesValueType) Literals() []string {
	return literals(describeJoinAbilitiesValueTypeValues)
}

func (v DescribeJoinAbilitiesValueType) IsValid() bool {
	return slices.Contains(describeJoinAbilitiesValueTypeValues, v)
}

func (v DescribeJoinAbilitiesValueType) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *DescribeJoinAbilitiesValueType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, ParseDescribeJoinAbilitiesValueType, b)
}

// DescribeKeyValueType is the request name of DescribeKey.
type DescribeKeyValueType string

const DescribeKeyValue DescribeKeyValueType = "DescribeKey"

var describeKeyValueTypeValues = []DescribeKeyValueType{DescribeKeyValue}

func ParseDescribeKeyValueType(s string) (DescribeKeyValueType, error) {
	return parseEnum("DescribeKeyValueType", describeKeyValueTypeValues, s)
}

func (v DescribeKeyValueType) Literals() []string {
	return literals(describeKeyValueTypeValues)
}

func (v DescribeKeyValueType) IsValid() bool {
	return slices.Contains(describeKeyValueTypeValues, v)
}

func (v DescribeKeyValueType) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *DescribeKeyValueType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, ParseDescribeKeyValueType, b)
}

// GaussianType tells whether an uncertainty follows a normal distribution.
type GaussianType string

const (
	GaussianTrue    GaussianType = "true"
	GaussianFalse   GaussianType = "false"
	GaussianUnknown GaussianType = "unknown"
)

var gaussianTypeValues = []GaussianType{GaussianTrue, GaussianFalse, GaussianUnknown}

func ParseGaussianType(s string) (GaussianType, error) {
	return parseEnum("GaussianType", gaussianTypeValues, s)
}

func (v GaussianType) Literals() []string {
	return literals(gaussianTypeValues)
}

func (v GaussianType) IsValid() bool {
	return slices.Contains(gaussianTypeValues, v)
}

func (v GaussianType) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *GaussianType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, ParseGaussianType, b)
}

// GetCapabilitiesValueType is the request name of GetCapabilities.
type GetCapabilitiesValueType string

const GetCapabilitiesValue GetCapabilitiesValueType = "GetCapabilities"

var getCapabilitiesValueTypeValues = []GetCapabilitiesValueType{GetCapabilitiesValue}

func ParseGetCapabilitiesValueType(s string) (GetCapabilitiesValueType, error) {
	return parseEnum("GetCapabilitiesValueType", getCapabilitiesValueTypeValues, s)
}

func (v GetCapabilitiesValueType) Literals() []string {
	return literals(getCapabilitiesValueTypeValues)
}

func (v GetCapabilitiesValueType) IsValid() bool {
	return slices.Contains(getCapabilitiesValueTypeValues, v)
}

func (v GetCapabilitiesValueType) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *GetCapabilitiesValueType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, ParseGetCapabilitiesValueType, b)
}

// GetDataValueType is the request name of GetData.
type GetDataValueType string

const GetDataValue GetDataValueType = "GetData"

var getDataValueTypeValues = []GetDataValueType{GetDataValue}

func ParseGetDataValueType(s string) (GetDataValueType, error) {
	return parseEnum("GetDataValueType", getDataValueTypeValues, s)
}

func (v GetDataValueType) Literals() []string {
	return literals(getDataValueTypeValues)
}

func (v GetDataValueType) IsValid() bool {
	return slices.Contains(getDataValueTypeValues, v)
}

func (v GetDataValueType) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *GetDataValueType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, ParseGetDataValueType, b)
}

// JoinDataValueType is the request name of JoinData.
type JoinDataValueType string

const JoinDataValue JoinDataValueType = "JoinData"

var joinDataValueTypeValues = []JoinDataValueType{JoinDataValue}

func ParseJoinDataValueType(s string) (JoinDataValueType, error) {
	return parseEnum("JoinDataValueType", joinDataValueTypeValues, s)
}

func (v JoinDataValueType) Literals() []string {
	return literals(joinDataValueTypeValues)
}

func (v JoinDataValueType) IsValid() bool {
	return slices.Contains(joinDataValueTypeValues, v)
}

func (v JoinDataValueType) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *JoinDataValueType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, ParseJoinDataValueType, b)
}

// PurposeType states the role a column plays in a join.
type PurposeType string

const (
	PurposeSpatialComponentIdentifier PurposeType = "SpatialComponentIdentifier"
	PurposeSpatialComponentProportion PurposeType = "SpatialComponentProportion"
	PurposeSpatialComponentPercentage PurposeType = "SpatialComponentPercentage"
	PurposeTemporalIdentifier         PurposeType = "TemporalIdentifier"
	PurposeTemporalValue              PurposeType = "TemporalValue"
	PurposeVerticalIdentifier         PurposeType = "VerticalIdentifier"
	PurposeVerticalValue              PurposeType = "VerticalValue"
	PurposeOtherSpatialIdentifier     PurposeType = "OtherSpatialIdentifier"
	PurposeNonSpatialIdentifier       PurposeType = "NonSpatialIdentifier"
	PurposeAttribute                  PurposeType = "Attribute"
)

var purposeTypeValues = []PurposeType{
	PurposeSpatialComponentIdentifier,
	PurposeSpatialComponentProportion,
	PurposeSpatialComponentPercentage,
	PurposeTemporalIdentifier,
	PurposeTemporalValue,
	PurposeVerticalIdentifier,
	PurposeVerticalValue,
	PurposeOtherSpatialIdentifier,
	PurposeNonSpatialIdentifier,
	PurposeAttribute,
}

func ParsePurposeType(s string) (PurposeType, error) {
	return parseEnum("PurposeType", purposeTypeValues, s)
}

func (v PurposeType) Literals() []string {
	return literals(purposeTypeValues)
}

func (v PurposeType) IsValid() bool {
	return slices.Contains(purposeTypeValues, v)
}

func (v PurposeType) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *PurposeType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, ParsePurposeType, b)
}

// RequestServiceType names the service; TJS is the only value.
type RequestServiceType string

const RequestServiceTJS RequestServiceType = "TJS"

var requestServiceTypeValues = []RequestServiceType{RequestServiceTJS}

func ParseRequestServiceType(s string) (RequestServiceType, error) {
	return parseEnum("RequestServiceType", requestServiceTypeValues, s)
}

func (v RequestServiceType) Literals() []string {
	return literals(requestServiceTypeValues)
}

func (v RequestServiceType) IsValid() bool {
	return slices.Contains(requestServiceTypeValues, v)
}

func (v RequestServiceType) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *RequestServiceType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, ParseRequestServiceType, b)
}

// TypeType is the XML Schema datatype URI declared for a column.
type TypeType string

const (
	TypeString   TypeType = "http://www.w3.org/TR/xmlschema-2/#string"
	TypeBoolean  TypeType = "http://www.w3.org/TR/xmlschema-2/#boolean"
	TypeInteger  TypeType = "http://www.w3.org/TR/xmlschema-2/#integer"
	TypeDecimal  TypeType = "http://www.w3.org/TR/xmlschema-2/#decimal"
	TypeFloat    TypeType = "http://www.w3.org/TR/xmlschema-2/#float"
	TypeDouble   TypeType = "http://www.w3.org/TR/xmlschema-2/#double"
	TypeDatetime TypeType = "http://www.w3.org/TR/xmlschema-2/#datetime"
)

var typeTypeValues = []TypeType{TypeString, TypeBoolean, TypeInteger, TypeDecimal, TypeFloat, TypeDouble, TypeDatetime}

func ParseTypeType(s string) (TypeType, error) {
	return parseEnum("TypeType", typeTypeValues, s)
}

func (v TypeType) Literals() []string {
	return literals(typeTypeValues)
}

func (v TypeType) IsValid() bool {
	return slices.Contains(typeTypeValues, v)
}

func (v TypeType) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *TypeType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, ParseTypeType, b)
}

// Short returns the fragment after '#', e.g. "decimal".
func (v TypeType) Short() string {
	_, frag, _ := strings.Cut(string(v), "#")
	return frag
}

// UpdateType asks a JoinData server to refresh cached attribute data.
type UpdateType string

const (
	UpdateTrue  UpdateType = "true"
	UpdateFalse UpdateType = "false"
)

var updateTypeValues = []UpdateType{UpdateTrue, UpdateFalse}

func ParseUpdateType(s string) (UpdateType, error) {
	return parseEnum("UpdateType", updateTypeValues, s)
}

func (v UpdateType) Literals() []string {
	return literals(updateTypeValues)
}

func (v UpdateType) IsValid() bool {
	return slices.Contains(updateTypeValues, v)
}

func (v UpdateType) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *UpdateType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, ParseUpdateType, b)
}

// VersionType is a protocol version accepted by GetCapabilities.
type VersionType string

const Version10 VersionType = "1.0"

var versionTypeValues = []VersionType{Version10}

func ParseVersionType(s string) (VersionType, error) {
	return parseEnum("VersionType", versionTypeValues, s)
}

func (v VersionType) Literals() []string {
	return literals(versionTypeValues)
}

func (v VersionType) IsValid() bool {
	return slices.Contains(versionTypeValues, v)
}

func (v VersionType) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *VersionType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, ParseVersionType, b)
}

// VersionType1 is the protocol version stamped on responses.
type VersionType1 string

const ResponseVersion10 VersionType1 = "1.0"

var versionType1Values = []VersionType1{ResponseVersion10}

func ParseVersionType1(s string) (VersionType1, error) {
	return parseEnum("VersionType1", versionType1Values, s)
}

func (v VersionType1) Literals() []string {
	return literals(versionType1Values)
}

func (v VersionType1) IsValid() bool {
	return slices.Contains(versionType1Values, v)
}

func (v VersionType1) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *VersionType1) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, ParseVersionType1, b)
}

// VersionType2 is the protocol version carried by operation requests.
type VersionType2 string

const (
	RequestVersion1   VersionType2 = "1"
	RequestVersion10  VersionType2 = "1.0"
	RequestVersion100 VersionType2 = "1.0.0"
)

var versionType2Values = []VersionType2{RequestVersion1, RequestVersion10, RequestVersion100}

func ParseVersionType2(s string) (VersionType2, error) {
	return parseEnum("VersionType2", versionType2Values, s)
}

func (v VersionType2) Literals() []string {
	return literals(versionType2Values)
}

func (v VersionType2) IsValid() bool {
	return slices.Contains(versionType2Values, v)
}

func (v VersionType2) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *VersionType2) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, ParseVersionType2, b)
}

// AcceptLanguagesType is a comma separated list of language tags, most preferred first.
type AcceptLanguagesType string

// Tags splits the list into its language tags.
func (v AcceptLanguagesType) Tags() []string {
	return splitList(string(v))
}

// SectionsType is a comma separated list of capabilities sections.
type SectionsType string

var sectionsPattern = regexp.MustCompile(
	`^(ServiceIdentification|ServiceProvider|OperationsMetadata|Contents|Themes)(,(ServiceIdentification|ServiceProvider|OperationsMetadata|Contents|Themes))*$`)

// IsValid reports whether v matches the sections pattern.
func (v SectionsType) IsValid() bool {
	return sectionsPattern.MatchString(string(v))
}

func (v SectionsType) Sections() []string {
	return splitList(string(v))
}

func parseEnum[T ~string](datatype string, values []T, s string) (T, error) {
	for _, v := range values {
		if string(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: the value '%s' is not a valid enumerator of '%s'", ErrInvalidEnumerator, s, datatype)
}

func unmarshalEnum[T ~string](dst *T, parse func(string) (T, error), b []byte) error {
	v, err := parse(string(b))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func literals[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
