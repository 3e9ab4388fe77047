package tjs10

import (
	"geotjs/internal/core/model"
	"geotjs/internal/domain/ows"
	"geotjs/internal/domain/xmltype"
)

// RequestBaseType carries the attributes shared by every operation request.
type RequestBaseType struct {
	model.Base
	requestAttrs
}

type requestAttrs struct {
	Language string                             `xml:"language,attr,omitempty" validate:"omitempty,bcp47_language_tag"`
	Service  model.Attr[string, serviceDefault] `xml:"service,attr"`
	Version  VersionType2                       `xml:"version,attr,omitempty" validate:"omitempty,tjs_enum"`
}

// GetCapabilitiesType requests the service metadata document.
type GetCapabilitiesType struct {
	model.Base
	AcceptVersions *AcceptVersionsType                `xml:"AcceptVersions,omitempty"`
	Sections       SectionsType                       `xml:"Sections,omitempty" validate:"omitempty,tjs_sections"`
	AcceptFormats  *ows.AcceptFormats                 `xml:"http://www.opengis.net/ows/1.1 AcceptFormats,omitempty"`
	Language       AcceptLanguagesType                `xml:"language,attr,omitempty" validate:"omitempty,bcp47_list"`
	Service        model.Attr[string, serviceDefault] `xml:"service,attr"`
	UpdateSequence string                             `xml:"updateSequence,attr,omitempty"`
}

type AcceptVersionsType struct {
	model.Base
	Version []VersionType `xml:"Version" validate:"min=1,dive,tjs_enum"`
}

type DescribeFrameworksType struct {
	model.Base
	requestAttrs
	FrameworkURI string `xml:"FrameworkURI,omitempty"`
}

type DescribeDatasetsType struct {
	model.Base
	requestAttrs
	FrameworkURI string `xml:"FrameworkURI,omitempty"`
	DatasetURI   string `xml:"DatasetURI,omitempty"`
}

type DescribeDataType struct {
	model.Base
	requestAttrs
	FrameworkURI string `xml:"FrameworkURI,omitempty"`
	DatasetURI   string `xml:"DatasetURI,omitempty"`
	Attributes   string `xml:"Attributes,omitempty"`
}

type DescribeKeyType struct {
	model.Base
	requestAttrs
	FrameworkURI string `xml:"FrameworkURI" validate:"required"`
}

// GetDataType requests attribute data of a dataset.
type GetDataType struct {
	model.Base
	requestAttrs
	FrameworkURI string                         `xml:"FrameworkURI" validate:"required"`
	DatasetURI   string                         `xml:"DatasetURI" validate:"required"`
	Attributes   string                         `xml:"Attributes,omitempty"`
	LinkageKeys  string                         `xml:"LinkageKeys,omitempty"`
	FilterColumn *xmltype.AnyType               `xml:"FilterColumn,omitempty"`
	FilterValue  *xmltype.AnyType               `xml:"FilterValue,omitempty"`
	XSL          *xmltype.AnyType               `xml:"XSL,omitempty"`
	Aid          model.Attr[bool, falseDefault] `xml:"aid,attr"`
}

// JoinDataType asks the server to join attribute data to a spatial framework.
type JoinDataType struct {
	model.Base
	requestAttrs
	AttributeData     *AttributeDataType `xml:"AttributeData" validate:"required"`
	MapStyling        *MapStylingType    `xml:"MapStyling,omitempty"`
	ClassificationURL *xmltype.AnyType   `xml:"ClassificationURL,omitempty"`
	Update            UpdateType         `xml:"update,attr,omitempty" validate:"omitempty,tjs_enum"`
}

// AttributeDataType points at the attribute data to join, by URL or inline request.
type AttributeDataType struct {
	model.Base
	GetDataURL string          `xml:"GetDataURL,omitempty"`
	GetDataXML *GetDataXMLType `xml:"GetDataXML,omitempty"`
}

type GetDataXMLType struct {
	model.Base
	FrameworkURI string `xml:"FrameworkURI" validate:"required"`
	DatasetURI   string `xml:"DatasetURI" validate:"required"`
	Attributes   string `xml:"Attributes,omitempty"`
	LinkageKeys  string `xml:"LinkageKeys,omitempty"`
	GetDataHost  string `xml:"getDataHost,attr,omitempty"`
	Language     string `xml:"language,attr,omitempty" validate:"omitempty,bcp47_language_tag"`
}

type MapStylingType struct {
	model.Base
	StylingIdentifier *xmltype.AnyType `xml:"StylingIdentifier" validate:"required"`
	StylingURL        string           `xml:"StylingURL" validate:"required"`
}

// DescribeDataRequestType, DescribeDatasetsRequestType and GetDataRequestType
// are XLink references to a ready-made request.
type DescribeDataRequestType struct {
	model.Base
	Href string `xml:"http://www.w3.org/1999/xlink href,attr" validate:"required"`
}

type DescribeDatasetsRequestType struct {
	model.Base
	Href string `xml:"http://www.w3.org/1999/xlink href,attr" validate:"required"`
}

type GetDataRequestType struct {
	model.Base
	Href string `xml:"http://www.w3.org/1999/xlink href,attr" validate:"required"`
}

// AttributeNames splits the comma separated attribute list of a GetData request.
func (r *GetDataType) AttributeNames() []string {
	return splitList(r.Attributes)
}

// Keys splits the comma separated linkage keys of a GetData request.
func (r *GetDataType) Keys() []string {
	return splitList(r.LinkageKeys)
}
