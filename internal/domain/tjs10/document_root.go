package tjs10

import (
	"encoding/xml"
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strings"

	"geotjs/internal/core/model"
	"geotjs/internal/domain/ows"
	"geotjs/internal/metadata"
)

// DocumentRoot is the root of any TJS document. Exactly one element slot is
// populated; the two maps keep the namespace prefixes and schema locations
// declared on the root element.
type DocumentRoot struct {
	model.Base
	XMLNSPrefixMap    map[string]string `xml:"xmlns,attr"`
	XSISchemaLocation map[string]string `xml:"schemaLocation,attr"`

	Abstract                *AbstractType                `xml:"Abstract"`
	AttributeLimit          *big.Int                     `xml:"AttributeLimit"`
	Attributes              *string                      `xml:"Attributes"`
	BoundingCoordinates     *BoundingCoordinatesType     `xml:"BoundingCoordinates"`
	Capabilities            *TjsCapabilitiesType         `xml:"Capabilities"`
	Columnset               *ColumnsetType               `xml:"Columnset"`
	Count                   *CountType                   `xml:"Count"`
	DataClass               *DataClassType               `xml:"DataClass"`
	DataDescriptions        *DataDescriptionsType        `xml:"DataDescriptions"`
	Dataset                 *DatasetType1                `xml:"Dataset"`
	DatasetDescriptions     *DatasetDescriptionsType     `xml:"DatasetDescriptions"`
	DatasetURI              *string                      `xml:"DatasetURI"`
	DescribeData            *DescribeDataType            `xml:"DescribeData"`
	DescribeDataRequest     *DescribeDataRequestType     `xml:"DescribeDataRequest"`
	DescribeDatasets        *DescribeDatasetsType        `xml:"DescribeDatasets"`
	DescribeDatasetsRequest *DescribeDatasetsRequestType `xml:"DescribeDatasetsRequest"`
	DescribeFrameworks      *DescribeFrameworksType      `xml:"DescribeFrameworks"`
	DescribeJoinAbilities   *RequestBaseType             `xml:"DescribeJoinAbilities"`
	DescribeKey             *DescribeKeyType             `xml:"DescribeKey"`
	Documentation           *string                      `xml:"Documentation"`
	Framework               *FrameworkType1              `xml:"Framework"`
	FrameworkDescriptions   *FrameworkDescriptionsType   `xml:"FrameworkDescriptions"`
	FrameworkKey            *FrameworkKeyType            `xml:"FrameworkKey"`
	FrameworkKeyDescription *FrameworkKeyDescriptionType `xml:"FrameworkKeyDescription"`
	FrameworkURI            *string                      `xml:"FrameworkURI"`
	GDAS                    *GDASType                    `xml:"GDAS"`
	GetCapabilities         *GetCapabilitiesType         `xml:"GetCapabilities"`
	GetData                 *GetDataType                 `xml:"GetData"`
	GetDataRequest          *GetDataRequestType          `xml:"GetDataRequest"`
	Identifier              *string                      `xml:"Identifier"`
	JoinAbilities           *JoinAbilitiesType           `xml:"JoinAbilities"`
	JoinData                *JoinDataType                `xml:"JoinData"`
	JoinDataResponse        *JoinDataResponseType        `xml:"JoinDataResponse"`
	K                       *KType                       `xml:"K"`
	LinkageKeys             *string                      `xml:"LinkageKeys"`
	Measure                 *MeasureType                 `xml:"Measure"`
	Mechanism               *MechanismType               `xml:"Mechanism"`
	Nominal                 *NominalType                 `xml:"Nominal"`
	Ordinal                 *OrdinalType                 `xml:"Ordinal"`
	Organization            *string                      `xml:"Organization"`
	ReferenceDate           *ReferenceDateType           `xml:"ReferenceDate"`
	Rowset                  *RowsetType1                 `xml:"Rowset"`
	SpatialFrameworks       *SpatialFrameworksType       `xml:"SpatialFrameworks"`
	Styling                 *StylingType                 `xml:"Styling"`
	Title                   *string                      `xml:"Title"`
	Uncertainty             *UncertaintyType             `xml:"Uncertainty"`
	UOM                     *UOMType                     `xml:"UOM"`
	Values                  *ValuesType                  `xml:"Values"`
	Version                 *string                      `xml:"Version"`
}

// first feature ID of the element slots; the two maps come before them
const firstSlot = 2

// NewDocument returns a root holding the element named local, with the
// standard TJS namespace declarations.
func NewDocument(local string, value any) (*DocumentRoot, error) {
	d := &DocumentRoot{
		XMLNSPrefixMap:    DefaultPrefixes(),
		XSISchemaLocation: map[string]string{Namespace: SchemaURL},
	}
	if err := d.SetElement(local, value); err != nil {
		return nil, err
	}
	return d, nil
}

// DefaultPrefixes returns the prefix declarations written on new documents.
func DefaultPrefixes() map[string]string {
	return map[string]string{
		Prefix:      Namespace,
		OWSPrefix:   ows.Namespace,
		XLinkPrefix: ows.XLinkNamespace,
		XSIPrefix:   XSINamespace,
	}
}

// ElementNames returns the local names of all root elements in slot order.
func ElementNames() []string {
	defs := metadata.Features(reflect.TypeOf((*DocumentRoot)(nil)))
	names := make([]string, 0, len(defs)-firstSlot)
	for _, f := range defs[firstSlot:] {
		names = append(names, f.XMLName)
	}
	return names
}

// ElementFor returns the root element that holds values of obj's type.
func ElementFor(obj any) (string, bool) {
	t := reflect.TypeOf(obj)
	defs := metadata.Features(reflect.TypeOf((*DocumentRoot)(nil)))
	for _, f := range defs[firstSlot:] {
		if f.GoType == t {
			return f.XMLName, true
		}
	}
	return "", false
}

func slotByName(local string) (metadata.FeatureDef, bool) {
	defs := metadata.Features(reflect.TypeOf((*DocumentRoot)(nil)))
	for _, f := range defs[firstSlot:] {
		if f.XMLName == local {
			return f, true
		}
	}
	return metadata.FeatureDef{}, false
}

// Element returns the local name and value of the populated slot.
// The name is empty when no slot is set.
func (d *DocumentRoot) Element() (string, any) {
	v := reflect.ValueOf(d).Elem()
	for _, f := range model.Features(d)[firstSlot:] {
		fv := v.FieldByIndex(f.Index)
		if !fv.IsNil() {
			return f.XMLName, fv.Interface()
		}
	}
	return "", nil
}

// Populated counts the element slots that hold a value.
func (d *DocumentRoot) Populated() int {
	v := reflect.ValueOf(d).Elem()
	n := 0
	for _, f := range model.Features(d)[firstSlot:] {
		if !v.FieldByIndex(f.Index).IsNil() {
			n++
		}
	}
	return n
}

// SetElement populates the slot named local and clears any other slot.
// Plain strings and DataClassType values are accepted for the simple slots.
func (d *DocumentRoot) SetElement(local string, value any) error {
	f, ok := slotByName(local)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownElement, local)
	}
	switch x := value.(type) {
	case string:
		if f.GoType == reflect.TypeOf((*string)(nil)) {
			value = &x
		}
	case DataClassType:
		value = &x
	}
	if value != nil && !reflect.TypeOf(value).AssignableTo(f.GoType) {
		return fmt.Errorf("%w: %s expects %s, got %T", model.ErrTypeMismatch, local, f.GoType, value)
	}

	if err := d.clearSlots(f.ID); err != nil {
		return err
	}
	return model.SetFeature(d, f.ID, value)
}

// ClearElement empties every slot.
func (d *DocumentRoot) ClearElement() error {
	return d.clearSlots(-1)
}

func (d *DocumentRoot) clearSlots(keep int) error {
	v := reflect.ValueOf(d).Elem()
	for _, f := range model.Features(d)[firstSlot:] {
		if f.ID == keep || v.FieldByIndex(f.Index).IsNil() {
			continue
		}
		if err := model.UnsetFeature(d, f.ID); err != nil {
			return err
		}
	}
	return nil
}

// GetDataClass returns the DataClass slot, which defaults to nominal.
func (d *DocumentRoot) GetDataClass() DataClassType {
	if d.DataClass == nil {
		return DataClassNominal
	}
	return *d.DataClass
}

// SchemaLocation renders the xsi:schemaLocation value, namespaces sorted.
func (d *DocumentRoot) SchemaLocation() string {
	keys := make([]string, 0, len(d.XSISchemaLocation))
	for ns := range d.XSISchemaLocation {
		keys = append(keys, ns)
	}
	sort.Strings(keys)
	parts := make([]string, 0, 2*len(keys))
	for _, ns := range keys {
		parts = append(parts, ns, d.XSISchemaLocation[ns])
	}
	return strings.Join(parts, " ")
}

// MarshalXML writes the populated element in the TJS namespace with the
// root's prefix declarations and schema locations.
func (d *DocumentRoot) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	local, value := d.Element()
	if local == "" {
		return fmt.Errorf("%w: document root is empty", ErrUnknownElement)
	}

	start := xml.StartElement{Name: xml.Name{Space: Namespace, Local: local}}

	// the encoder declares namespaces of the element's own attributes itself
	declared := map[string]bool{}
	if obj, ok := value.(model.Object); ok {
		for _, f := range model.Features(obj) {
			if f.Kind == metadata.KindAttribute && f.Namespace != "" {
				declared[f.Namespace] = true
			}
		}
	}

	prefixes := make([]string, 0, len(d.XMLNSPrefixMap))
	for p := range d.XMLNSPrefixMap {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	for _, p := range prefixes {
		uri := d.XMLNSPrefixMap[p]
		if p == "" || declared[uri] {
			continue
		}
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xmlns:" + p}, Value: uri})
	}

	if len(d.XSISchemaLocation) > 0 {
		if _, ok := d.XMLNSPrefixMap[XSIPrefix]; !ok {
			start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xmlns:" + XSIPrefix}, Value: XSINamespace})
		}
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: XSIPrefix + ":schemaLocation"},
			Value: d.SchemaLocation(),
		})
	}

	return e.EncodeElement(value, start)
}

// UnmarshalXML decodes any TJS root element into its slot and links the
// decoded tree to its containers. The default namespace is implied by the
// element and not recorded.
func (d *DocumentRoot) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	if start.Name.Space != "" && start.Name.Space != Namespace {
		return fmt.Errorf("%w: {%s}%s", ErrUnknownElement, start.Name.Space, start.Name.Local)
	}
	f, ok := slotByName(start.Name.Local)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownElement, start.Name.Local)
	}

	for _, attr := range start.Attr {
		switch {
		case attr.Name.Space == "xmlns":
			d.declare(attr.Name.Local, attr.Value)
		case attr.Name.Space == XSINamespace && attr.Name.Local == "schemaLocation":
			fields := strings.Fields(attr.Value)
			for i := 0; i+1 < len(fields); i += 2 {
				if d.XSISchemaLocation == nil {
					d.XSISchemaLocation = map[string]string{}
				}
				d.XSISchemaLocation[fields[i]] = fields[i+1]
			}
		}
	}

	ptr := reflect.New(f.GoType.Elem())
	if err := dec.DecodeElement(ptr.Interface(), &start); err != nil {
		return fmt.Errorf("decode %s: %w", start.Name.Local, err)
	}

	reflect.ValueOf(d).Elem().FieldByIndex(f.Index).Set(ptr)
	model.Adopt(d)
	return nil
}

func (d *DocumentRoot) declare(prefix, uri string) {
	if d.XMLNSPrefixMap == nil {
		d.XMLNSPrefixMap = map[string]string{}
	}
	d.XMLNSPrefixMap[prefix] = uri
}
