// Package xmltype holds the XML Schema built-in types that need an object form.
package xmltype

import (
	"encoding/xml"
	"strings"

	"geotjs/internal/core/model"
)

// AnyType holds an xsd:anyType element verbatim: its attributes and raw inner XML.
type AnyType struct {
	model.Base
	Attrs    []xml.Attr `xml:",any,attr"`
	InnerXML string     `xml:",innerxml"`
}

// NewAnyType returns an AnyType with escaped text content.
func NewAnyType(text string) *AnyType {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(text))
	return &AnyType{InnerXML: b.String()}
}

// Text returns the character data of the element, without markup.
func (a *AnyType) Text() string {
	if a == nil {
		return ""
	}
	dec := xml.NewDecoder(strings.NewReader("<x>" + a.InnerXML + "</x>"))
	var b strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		if cd, ok := tok.(xml.CharData); ok {
			b.Write(cd)
		}
	}
	return strings.TrimSpace(b.String())
}

// Attr returns the value of the named attribute.
func (a *AnyType) Attr(local string) (string, bool) {
	if a == nil {
		return "", false
	}
	for _, attr := range a.Attrs {
		if attr.Name.Local == local {
			return attr.Value, true
		}
	}
	return "", false
}
