// Package ows holds the OGC Web Services Common 1.1 types used by TJS documents.
package ows

import (
	"geotjs/internal/core/model"
	"geotjs/internal/domain/xmltype"
)

const (
	Namespace      = "http://www.opengis.net/ows/1.1"
	XLinkNamespace = "http://www.w3.org/1999/xlink"
)

// ServiceIdentification describes the service itself.
type ServiceIdentification struct {
	model.Base
	Title              string    `xml:"http://www.opengis.net/ows/1.1 Title,omitempty"`
	Abstract           string    `xml:"http://www.opengis.net/ows/1.1 Abstract,omitempty"`
	Keywords           *Keywords `xml:"http://www.opengis.net/ows/1.1 Keywords,omitempty"`
	ServiceType        string    `xml:"http://www.opengis.net/ows/1.1 ServiceType" validate:"required"`
	ServiceTypeVersion []string  `xml:"http://www.opengis.net/ows/1.1 ServiceTypeVersion" validate:"min=1"`
	Fees               string    `xml:"http://www.opengis.net/ows/1.1 Fees,omitempty"`
	AccessConstraints  []string  `xml:"http://www.opengis.net/ows/1.1 AccessConstraints,omitempty"`
}

type Keywords struct {
	model.Base
	Keyword []string `xml:"http://www.opengis.net/ows/1.1 Keyword"`
	Type    string   `xml:"http://www.opengis.net/ows/1.1 Type,omitempty"`
}

// ServiceProvider describes the organization operating the service.
type ServiceProvider struct {
	model.Base
	ProviderName   string           `xml:"http://www.opengis.net/ows/1.1 ProviderName" validate:"required"`
	ProviderSite   *OnlineResource  `xml:"http://www.opengis.net/ows/1.1 ProviderSite,omitempty"`
	ServiceContact *xmltype.AnyType `xml:"http://www.opengis.net/ows/1.1 ServiceContact" validate:"required"`
}

// OnlineResource is a simple XLink reference.
type OnlineResource struct {
	model.Base
	Href string `xml:"http://www.w3.org/1999/xlink href,attr,omitempty"`
}

// OperationsMetadata lists the operations a server implements and where to reach them.
type OperationsMetadata struct {
	model.Base
	Operation []*Operation `xml:"http://www.opengis.net/ows/1.1 Operation" validate:"min=2,dive"`
}

type Operation struct {
	model.Base
	DCP  []*DCP `xml:"http://www.opengis.net/ows/1.1 DCP" validate:"min=1,dive"`
	Name string `xml:"name,attr" validate:"required"`
}

// DCP is a distributed computing platform binding; only HTTP is defined.
type DCP struct {
	model.Base
	HTTP *HTTP `xml:"http://www.opengis.net/ows/1.1 HTTP" validate:"required"`
}

type HTTP struct {
	model.Base
	Get  []*RequestMethod `xml:"http://www.opengis.net/ows/1.1 Get,omitempty" validate:"omitempty,dive"`
	Post []*RequestMethod `xml:"http://www.opengis.net/ows/1.1 Post,omitempty" validate:"omitempty,dive"`
}

type RequestMethod struct {
	model.Base
	Href string `xml:"http://www.w3.org/1999/xlink href,attr" validate:"required"`
}

// AcceptFormats lists output formats in order of client preference.
type AcceptFormats struct {
	model.Base
	OutputFormat []string `xml:"http://www.opengis.net/ows/1.1 OutputFormat"`
}

// Exception reports one error encountered while processing a request.
type Exception struct {
	model.Base
	ExceptionText []string `xml:"http://www.opengis.net/ows/1.1 ExceptionText,omitempty"`
	ExceptionCode string   `xml:"exceptionCode,attr" validate:"required"`
	Locator       string   `xml:"locator,attr,omitempty"`
}

// Standard OWS exception codes.
const (
	CodeOperationNotSupported    = "OperationNotSupported"
	CodeMissingParameterValue    = "MissingParameterValue"
	CodeInvalidParameterValue    = "InvalidParameterValue"
	CodeVersionNegotiationFailed = "VersionNegotiationFailed"
	CodeInvalidUpdateSequence    = "InvalidUpdateSequence"
	CodeNoApplicableCode         = "NoApplicableCode"
)

// Operations returns the names of all operations listed in m.
func (m *OperationsMetadata) Operations() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.Operation))
	for _, op := range m.Operation {
		names = append(names, op.Name)
	}
	return names
}

// Endpoint returns the first GET or POST address of the named operation.
func (m *OperationsMetadata) Endpoint(operation string, post bool) (string, bool) {
	if m == nil {
		return "", false
	}
	for _, op := range m.Operation {
		if op.Name != operation {
			continue
		}
		for _, dcp := range op.DCP {
			if dcp.HTTP == nil {
				continue
			}
			methods := dcp.HTTP.Get
			if post {
				methods = dcp.HTTP.Post
			}
			if len(methods) > 0 {
				return methods[0].Href, true
			}
		}
	}
	return "", false
}
