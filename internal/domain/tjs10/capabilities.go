package tjs10

import (
	"geotjs/internal/core/model"
	"geotjs/internal/domain/ows"
)

// responseAttrs are the attributes stamped on every response document.
type responseAttrs struct {
	Capabilities string                             `xml:"capabilities,attr" validate:"required"`
	Lang         string                             `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty" validate:"omitempty,bcp47_language_tag"`
	Service      model.Attr[string, serviceDefault] `xml:"service,attr"`
	Version      model.Attr[string, versionDefault] `xml:"version,attr"`
}

// TjsCapabilitiesType is the GetCapabilities response.
type TjsCapabilitiesType struct {
	model.Base
	ServiceIdentification *ows.ServiceIdentification         `xml:"http://www.opengis.net/ows/1.1 ServiceIdentification,omitempty"`
	ServiceProvider       *ows.ServiceProvider               `xml:"http://www.opengis.net/ows/1.1 ServiceProvider,omitempty"`
	OperationsMetadata    *ows.OperationsMetadata            `xml:"http://www.opengis.net/ows/1.1 OperationsMetadata" validate:"required"`
	Languages             *LanguagesType                     `xml:"Languages,omitempty"`
	WSDL                  *WSDLType                          `xml:"WSDL,omitempty"`
	Lang                  string                             `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty" validate:"omitempty,bcp47_language_tag"`
	Service               model.Attr[string, serviceDefault] `xml:"service,attr"`
	UpdateSequence        string                             `xml:"updateSequence,attr,omitempty"`
	Version               model.Attr[string, versionDefault] `xml:"version,attr"`
}

// LanguagesType lists the languages a server can answer in.
type LanguagesType struct {
	model.Base
	Language []string `xml:"http://www.opengis.net/ows/1.1 Language" validate:"min=1,dive,bcp47_language_tag"`
}

type WSDLType struct {
	model.Base
	Href string `xml:"http://www.w3.org/1999/xlink href,attr" validate:"required"`
}

// Supports reports whether the capabilities list the named operation.
func (c *TjsCapabilitiesType) Supports(operation string) bool {
	for _, name := range c.OperationsMetadata.Operations() {
		if name == operation {
			return true
		}
	}
	return false
}
