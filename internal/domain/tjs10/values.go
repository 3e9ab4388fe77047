package tjs10

import (
	"math/big"

	"geotjs/internal/core/model"
)

// ValuesType describes the values of an attribute column. Exactly one of the
// four data classes is populated.
type ValuesType struct {
	model.Base
	Nominal *NominalType `xml:"Nominal,omitempty"`
	Ordinal *OrdinalType `xml:"Ordinal,omitempty"`
	Count   *CountType   `xml:"Count,omitempty"`
	Measure *MeasureType `xml:"Measure,omitempty"`
}

type NominalType struct {
	model.Base
	Classes    *ClassesType1             `xml:"Classes,omitempty"`
	Exceptions *NominalOrdinalExceptions `xml:"Exceptions,omitempty"`
}

type OrdinalType struct {
	model.Base
	Classes    *ClassesType              `xml:"Classes,omitempty"`
	Exceptions *NominalOrdinalExceptions `xml:"Exceptions,omitempty"`
}

type CountType struct {
	model.Base
	UOM         *UOMType                `xml:"UOM" validate:"required"`
	Uncertainty *UncertaintyType        `xml:"Uncertainty,omitempty"`
	Exceptions  *MeasureCountExceptions `xml:"Exceptions,omitempty"`
}

type MeasureType struct {
	model.Base
	UOM         *UOMType                `xml:"UOM" validate:"required"`
	Uncertainty *UncertaintyType        `xml:"Uncertainty,omitempty"`
	Exceptions  *MeasureCountExceptions `xml:"Exceptions,omitempty"`
}

// classInfo is the description shared by class lists, classes and null values.
type classInfo struct {
	Title         string        `xml:"Title" validate:"required"`
	Abstract      *AbstractType `xml:"Abstract" validate:"required"`
	Documentation string        `xml:"Documentation,omitempty"`
}

// ClassesType lists ranked ordinal classes.
type ClassesType struct {
	model.Base
	classInfo
	Value []*ValueType `xml:"Value" validate:"min=1,dive"`
}

// ClassesType1 lists nominal classes.
type ClassesType1 struct {
	model.Base
	classInfo
	Value []*ValueType1 `xml:"Value" validate:"min=1,dive"`
}

type ValueType struct {
	model.Base
	Identifier string `xml:"Identifier" validate:"required"`
	classInfo
	Color string   `xml:"color,attr,omitempty"`
	Rank  *big.Int `xml:"rank,attr" validate:"required"`
}

type ValueType1 struct {
	model.Base
	Identifier string `xml:"Identifier" validate:"required"`
	classInfo
	Color string `xml:"color,attr,omitempty"`
}

type NullType struct {
	model.Base
	Identifier string `xml:"Identifier" validate:"required"`
	classInfo
}

type NullType1 struct {
	model.Base
	Identifier string `xml:"Identifier" validate:"required"`
	classInfo
	Color string `xml:"color,attr,omitempty"`
}

type MeasureCountExceptions struct {
	model.Base
	Null []*NullType `xml:"Null" validate:"min=1,dive"`
}

type NominalOrdinalExceptions struct {
	model.Base
	Null []*NullType1 `xml:"Null" validate:"min=1,dive"`
}

// UOMType names the unit of measure of count and measure values.
type UOMType struct {
	model.Base
	ShortForm *ShortForm `xml:"ShortForm" validate:"required"`
	LongForm  *LongForm  `xml:"LongForm" validate:"required"`
	Reference string     `xml:"reference,attr,omitempty"`
}

type ShortForm struct {
	model.Base
	Value string `xml:",chardata"`
	Lang  string `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
}

type LongForm struct {
	model.Base
	Value string `xml:",chardata"`
	Lang  string `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
}

// UncertaintyType is the uncertainty of measured values, e.g. a standard deviation.
type UncertaintyType struct {
	model.Base
	Value    string       `xml:",chardata"`
	Gaussian GaussianType `xml:"gaussian,attr" validate:"required,tjs_enum"`
}

// DataClass returns the data class of the populated choice, or "" when none is set.
func (v *ValuesType) DataClass() DataClassType {
	switch {
	case v == nil:
		return ""
	case v.Nominal != nil:
		return DataClassNominal
	case v.Ordinal != nil:
		return DataClassOrdinal
	case v.Count != nil:
		return DataClassCount
	case v.Measure != nil:
		return DataClassMeasure
	}
	return ""
}

// Populated counts the data classes set on v.
func (v *ValuesType) Populated() int {
	n := 0
	for _, set := range []bool{v.Nominal != nil, v.Ordinal != nil, v.Count != nil, v.Measure != nil} {
		if set {
			n++
		}
	}
	return n
}
