package tjs10

import (
	"math/big"

	"geotjs/internal/core/model"
	"geotjs/internal/domain/ows"
	"geotjs/internal/domain/xmltype"
)

// JoinAbilitiesType is the DescribeJoinAbilities response: the frameworks a
// server can join to and the outputs it can produce.
type JoinAbilitiesType struct {
	model.Base
	SpatialFrameworks       *SpatialFrameworksType `xml:"SpatialFrameworks" validate:"required"`
	AttributeLimit          *big.Int               `xml:"AttributeLimit" validate:"required"`
	OutputMechanisms        *OutputMechanismsType  `xml:"OutputMechanisms" validate:"required"`
	OutputStylings          *OutputStylingsType1   `xml:"OutputStylings,omitempty"`
	ClassificationSchemaURL *xmltype.AnyType       `xml:"ClassificationSchemaURL,omitempty"`
	responseAttrs
	UpdateSupported model.Attr[bool, falseDefault] `xml:"updateSupported,attr"`
}

type OutputMechanismsType struct {
	model.Base
	Mechanism []*MechanismType `xml:"Mechanism" validate:"min=1,dive"`
}

// MechanismType describes one way joined output can be delivered.
type MechanismType struct {
	model.Base
	Identifier string `xml:"Identifier" validate:"required"`
	Title      string `xml:"Title" validate:"required"`
	Abstract   string `xml:"Abstract" validate:"required"`
	Reference  string `xml:"Reference" validate:"required"`
}

type OutputStylingsType struct {
	model.Base
	Styling []*StylingType `xml:"Styling" validate:"min=1,dive"`
}

// OutputStylingsType1 is the styling list nested in JoinAbilities.
type OutputStylingsType1 struct {
	model.Base
	Styling []*StylingType `xml:"Styling" validate:"min=1,dive"`
}

type StylingType struct {
	model.Base
	Identifier string `xml:"Identifier" validate:"required"`
	Title      string `xml:"Title" validate:"required"`
	Abstract   string `xml:"Abstract" validate:"required"`
	Reference  string `xml:"Reference" validate:"required"`
	Schema     string `xml:"Schema,omitempty"`
}

// JoinDataResponseType reports the status and outputs of a JoinData request.
type JoinDataResponseType struct {
	model.Base
	Status        *StatusType        `xml:"Status" validate:"required"`
	DataInputs    *DataInputsType    `xml:"DataInputs" validate:"required"`
	JoinedOutputs *JoinedOutputsType `xml:"JoinedOutputs,omitempty"`
	responseAttrs
}

// StatusType holds at most one of Accepted, Completed and Failed.
type StatusType struct {
	model.Base
	Accepted     *xmltype.AnyType `xml:"Accepted,omitempty"`
	Completed    *xmltype.AnyType `xml:"Completed,omitempty"`
	Failed       *FailedType      `xml:"Failed,omitempty"`
	CreationTime string           `xml:"creationTime,attr" validate:"required"`
	Href         string           `xml:"http://www.w3.org/1999/xlink href,attr" validate:"required"`
}

type FailedType struct {
	model.Base
}

// DataInputsType echoes the framework and dataset a join was run on.
type DataInputsType struct {
	model.Base
	Framework *FrameworkType2 `xml:"Framework" validate:"required"`
	Dataset   *DatasetType3   `xml:"Dataset" validate:"required"`
}

type JoinedOutputsType struct {
	model.Base
	Output []*OutputType `xml:"Output" validate:"min=1,dive"`
}

type OutputType struct {
	model.Base
	Mechanism       *MechanismType       `xml:"Mechanism" validate:"required"`
	Resource        *ResourceType        `xml:"Resource,omitempty"`
	ExceptionReport *ExceptionReportType `xml:"ExceptionReport,omitempty"`
}

type ResourceType struct {
	model.Base
	URL       *xmltype.AnyType `xml:"URL" validate:"required"`
	Parameter []*ParameterType `xml:"Parameter,omitempty" validate:"omitempty,dive"`
}

type ParameterType struct {
	model.Base
	Value string `xml:",chardata"`
	Name  string `xml:"name,attr" validate:"required"`
}

type ExceptionReportType struct {
	model.Base
	Exception *ows.Exception `xml:"http://www.opengis.net/ows/1.1 Exception" validate:"required"`
}

// State names the populated status element, or "" when none is.
func (s *StatusType) State() string {
	switch {
	case s.Completed != nil:
		return "Completed"
	case s.Failed != nil:
		return "Failed"
	case s.Accepted != nil:
		return "Accepted"
	}
	return ""
}
