package tjs10

import (
	"math/big"

	"github.com/shopspring/decimal"

	"geotjs/internal/core/model"
	"geotjs/internal/domain/xmltype"
)

// frameworkInfo is the description shared by every framework variant.
type frameworkInfo struct {
	FrameworkURI        string                   `xml:"FrameworkURI" validate:"required"`
	Organization        string                   `xml:"Organization" validate:"required"`
	Title               string                   `xml:"Title" validate:"required"`
	Abstract            *AbstractType            `xml:"Abstract" validate:"required"`
	ReferenceDate       *ReferenceDateType       `xml:"ReferenceDate" validate:"required"`
	Version             string                   `xml:"Version" validate:"required"`
	Documentation       string                   `xml:"Documentation,omitempty"`
	FrameworkKey        *FrameworkKeyType        `xml:"FrameworkKey" validate:"required"`
	BoundingCoordinates *BoundingCoordinatesType `xml:"BoundingCoordinates" validate:"required"`
}

// FrameworkType is a spatial framework listed in JoinAbilities.
type FrameworkType struct {
	model.Base
	frameworkInfo
}

// FrameworkType1 is the framework of a GetData response, carrying its dataset.
type FrameworkType1 struct {
	model.Base
	frameworkInfo
	DescribeDatasetsRequest *DescribeDatasetsRequestType `xml:"DescribeDatasetsRequest" validate:"required"`
	Dataset                 *DatasetType1                `xml:"Dataset" validate:"required"`
}

// FrameworkType2 is the framework echoed in JoinData inputs.
type FrameworkType2 struct {
	model.Base
	frameworkInfo
	DescribeDatasetsRequest *DescribeDatasetsRequestType `xml:"DescribeDatasetsRequest" validate:"required"`
}

// FrameworkType3 is a framework listed by DescribeFrameworks.
type FrameworkType3 struct {
	model.Base
	frameworkInfo
	DescribeDatasetsRequest *DescribeDatasetsRequestType `xml:"DescribeDatasetsRequest" validate:"required"`
}

// FrameworkType4 is a framework listed by DescribeDatasets with its datasets.
type FrameworkType4 struct {
	model.Base
	frameworkInfo
	DescribeDatasetsRequest *DescribeDatasetsRequestType `xml:"DescribeDatasetsRequest" validate:"required"`
	Dataset                 []*DatasetType               `xml:"Dataset" validate:"min=1,dive"`
}

// FrameworkDatasetDescribeDataType is a framework listed by DescribeData.
type FrameworkDatasetDescribeDataType struct {
	model.Base
	frameworkInfo
	DescribeDatasetsRequest *DescribeDatasetsRequestType `xml:"DescribeDatasetsRequest" validate:"required"`
	Dataset                 []*DatasetType2              `xml:"Dataset" validate:"min=1,dive"`
}

// DescribeFrameworkKeyType is the framework of a DescribeKey response with its key rows.
type DescribeFrameworkKeyType struct {
	model.Base
	frameworkInfo
	Rowset *RowsetType `xml:"Rowset" validate:"required"`
}

type FrameworkDescriptionsType struct {
	model.Base
	Framework []*FrameworkType3 `xml:"Framework,omitempty" validate:"omitempty,dive"`
	responseAttrs
}

type FrameworkKeyDescriptionType struct {
	model.Base
	Framework *DescribeFrameworkKeyType `xml:"Framework" validate:"required"`
	responseAttrs
}

type SpatialFrameworksType struct {
	model.Base
	Framework []*FrameworkType `xml:"Framework" validate:"min=1,dive"`
}

// keyColumn describes one column of a framework key.
type keyColumn struct {
	Decimals *big.Int `xml:"decimals,attr,omitempty"`
	Length   *big.Int `xml:"length,attr" validate:"required"`
	Name     string   `xml:"name,attr" validate:"required"`
	Type     TypeType `xml:"type,attr" validate:"required,tjs_enum"`
}

type FrameworkKeyType struct {
	model.Base
	Column []*ColumnType `xml:"Column" validate:"min=1,dive"`
}

type ColumnType struct {
	model.Base
	keyColumn
}

// FrameworkKeyType1 is the framework key as used inside a dataset's column set.
type FrameworkKeyType1 struct {
	model.Base
	Column       []*ColumnType2 `xml:"Column" validate:"min=1,dive"`
	Complete     string         `xml:"complete,attr" validate:"required"`
	Relationship string         `xml:"relationship,attr" validate:"required"`
}

type ColumnType2 struct {
	model.Base
	keyColumn
}

// BoundingCoordinatesType is the geographic extent of a framework in decimal degrees.
type BoundingCoordinatesType struct {
	model.Base
	North decimal.Decimal `xml:"North"`
	South decimal.Decimal `xml:"South"`
	East  decimal.Decimal `xml:"East"`
	West  decimal.Decimal `xml:"West"`
}

type ReferenceDateType struct {
	model.Base
	Value     string `xml:",chardata"`
	StartDate string `xml:"startDate,attr,omitempty"`
}

// AbstractType is free text that may carry markup.
type AbstractType struct {
	xmltype.AnyType
}

type RowsetType struct {
	model.Base
	Row []*RowType `xml:"Row" validate:"min=1,dive"`
}

type RowType struct {
	model.Base
	K     []*KType `xml:"K" validate:"min=1,dive"`
	Title string   `xml:"Title,omitempty"`
}

// KType is one key value of a row.
type KType struct {
	model.Base
	Value string `xml:",chardata"`
	Aid   string `xml:"aid,attr,omitempty"`
}

// NewAbstract returns an abstract holding plain text.
func NewAbstract(text string) *AbstractType {
	return &AbstractType{AnyType: *xmltype.NewAnyType(text)}
}

// Names returns the column names of the key in order.
func (k *FrameworkKeyType) Names() []string {
	names := make([]string, 0, len(k.Column))
	for _, c := range k.Column {
		names = append(names, c.Name)
	}
	return names
}

// Contains reports whether the point lies inside the box, edges included.
func (b *BoundingCoordinatesType) Contains(lat, lon decimal.Decimal) bool {
	return lat.LessThanOrEqual(b.North) && lat.GreaterThanOrEqual(b.South) &&
		lon.LessThanOrEqual(b.East) && lon.GreaterThanOrEqual(b.West)
}

// Keys returns the key values of the row.
func (r *RowType) Keys() []string {
	keys := make([]string, 0, len(r.K))
	for _, k := range r.K {
		keys = append(keys, k.Value)
	}
	return keys
}
