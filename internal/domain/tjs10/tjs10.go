// Package tjs10 is the typed object model of OGC Table Joining Service 1.0
// documents: one struct per schema type, enumerations, the document root and
// a factory creating any class by classifier ID.
//
// Elements of the tjs namespace are declared without a namespace in struct
// tags; they inherit it from the document root when encoded and match any
// namespace when decoded.
package tjs10

import "errors"

const (
	Namespace    = "http://www.opengis.net/tjs/1.0"
	Prefix       = "tjs"
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"
	XMLNamespace = "http://www.w3.org/XML/1998/namespace"
	SchemaURL    = "http://schemas.opengis.net/tjs/1.0/tjsAll.xsd"
	ServiceName  = "TJS"
	ServiceVer   = "1.0"
	OWSPrefix    = "ows"
	XLinkPrefix  = "xlink"
	XSIPrefix    = "xsi"

	// MediaType is the content type of encoded documents.
	MediaType = "application/xml"
)

var (
	ErrInvalidClassifier = errors.New("invalid classifier")
	ErrInvalidEnumerator = errors.New("invalid enumerator")
	ErrUnknownElement    = errors.New("unknown document element")
	ErrNoStandaloneForm  = errors.New("class has no standalone XML form")
)

type serviceDefault struct{}

func (serviceDefault) Default() string { return ServiceName }

type versionDefault struct{}

func (versionDefault) Default() string { return ServiceVer }

type falseDefault struct{}

func (falseDefault) Default() bool { return false }

type purposeDefault struct{}

func (purposeDefault) Default() PurposeType { return PurposeSpatialComponentIdentifier }

type typeDefault struct{}

func (typeDefault) Default() TypeType { return TypeString }
