package tjs10

import (
	"math/big"

	"geotjs/internal/core/model"
)

// datasetInfo is the description shared by every dataset variant.
type datasetInfo struct {
	DatasetURI    string             `xml:"DatasetURI" validate:"required"`
	Organization  string             `xml:"Organization" validate:"required"`
	Title         string             `xml:"Title" validate:"required"`
	Abstract      *AbstractType      `xml:"Abstract" validate:"required"`
	ReferenceDate *ReferenceDateType `xml:"ReferenceDate" validate:"required"`
	Version       string             `xml:"Version" validate:"required"`
	Documentation string             `xml:"Documentation,omitempty"`
}

// DatasetType is a dataset listed by DescribeDatasets.
type DatasetType struct {
	model.Base
	datasetInfo
	DescribeDataRequest *DescribeDataRequestType `xml:"DescribeDataRequest" validate:"required"`
}

// DatasetType1 is the dataset of a GetData response: its columns and rows.
type DatasetType1 struct {
	model.Base
	datasetInfo
	Columnset *ColumnsetType `xml:"Columnset" validate:"required"`
	Rowset    *RowsetType1   `xml:"Rowset" validate:"required"`
}

// DatasetType2 is a dataset listed by DescribeData.
type DatasetType2 struct {
	model.Base
	datasetInfo
	DescribeDataRequest *DescribeDataRequestType `xml:"DescribeDataRequest" validate:"required"`
	Columnset           *ColumnsetType           `xml:"Columnset" validate:"required"`
}

// DatasetType3 is the dataset echoed in JoinData inputs.
type DatasetType3 struct {
	model.Base
	datasetInfo
	Columnset *ColumnsetType `xml:"Columnset" validate:"required"`
}

type DatasetDescriptionsType struct {
	model.Base
	Framework []*FrameworkType4 `xml:"Framework,omitempty" validate:"omitempty,dive"`
	responseAttrs
}

type DataDescriptionsType struct {
	model.Base
	Framework []*FrameworkDatasetDescribeDataType `xml:"Framework,omitempty" validate:"omitempty,dive"`
	responseAttrs
}

// GDASType is the GetData response (Geospatial Data Attribute Set).
type GDASType struct {
	model.Base
	Framework *FrameworkType1 `xml:"Framework" validate:"required"`
	responseAttrs
}

// ColumnsetType splits a dataset's columns into key and attribute columns.
type ColumnsetType struct {
	model.Base
	FrameworkKey *FrameworkKeyType1 `xml:"FrameworkKey" validate:"required"`
	Attributes   *AttributesType    `xml:"Attributes" validate:"required"`
}

type AttributesType struct {
	model.Base
	Column []*ColumnType1 `xml:"Column" validate:"min=1,dive"`
}

// ColumnType1 describes one attribute column of a dataset.
type ColumnType1 struct {
	model.Base
	Title          string                                  `xml:"Title" validate:"required"`
	Abstract       *AbstractType                           `xml:"Abstract" validate:"required"`
	Documentation  string                                  `xml:"Documentation,omitempty"`
	Values         *ValuesType                             `xml:"Values" validate:"required"`
	GetDataRequest *GetDataRequestType                     `xml:"GetDataRequest,omitempty"`
	Decimals       *big.Int                                `xml:"decimals,attr,omitempty"`
	Length         *big.Int                                `xml:"length,attr" validate:"required"`
	Name           string                                  `xml:"name,attr" validate:"required"`
	Purpose        model.Attr[PurposeType, purposeDefault] `xml:"purpose,attr"`
	Type           model.Attr[TypeType, typeDefault]       `xml:"type,attr"`
}

type RowsetType1 struct {
	model.Base
	Row []*RowType1 `xml:"Row" validate:"min=1,dive"`
}

// RowType1 is one data row: its key values followed by its attribute values.
type RowType1 struct {
	model.Base
	K []*KType `xml:"K" validate:"min=1,dive"`
	V []*VType `xml:"V" validate:"min=1,dive"`
}

// VType is one attribute value. Null marks a missing value.
type VType struct {
	model.Base
	Value string                         `xml:",chardata"`
	Aid   string                         `xml:"aid,attr,omitempty"`
	Null  model.Attr[bool, falseDefault] `xml:"null,attr"`
}

// Column returns the attribute column with the given name.
func (c *ColumnsetType) Column(name string) (*ColumnType1, bool) {
	if c == nil || c.Attributes == nil {
		return nil, false
	}
	for _, col := range c.Attributes.Column {
		if col.Name == name {
			return col, true
		}
	}
	return nil, false
}

// Values returns the attribute values of the row, nil entries for null values.
func (r *RowType1) Values() []*string {
	out := make([]*string, len(r.V))
	for i, v := range r.V {
		if v.Null.Get() {
			continue
		}
		s := v.Value
		out[i] = &s
	}
	return out
}
