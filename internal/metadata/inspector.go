package metadata

import (
	"encoding"
	"reflect"
	"strings"
	"sync"
)

var (
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	optionalType      = reflect.TypeOf((*optional)(nil)).Elem()
	enumeratedType    = reflect.TypeOf((*enumerated)(nil)).Elem()
)

// optional is implemented by attribute holders that track whether a value was set.
type optional interface {
	IsSet() bool
	DefaultValue() any
}

// enumerated is implemented by enumeration datatypes.
type enumerated interface {
	Literals() []string
}

// features caches the flattened feature list per struct type.
var features sync.Map // reflect.Type -> []FeatureDef

// Inspect analyzes a model struct and returns its ClassDef.
func Inspect(obj any, id int, namespace string) ClassDef {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return ClassDef{
		ID:        id,
		Name:      t.Name(),
		Namespace: namespace,
		Features:  Features(t),
	}
}

// Features returns the flattened feature list of a struct type.
// Embedded structs contribute their fields in declaration order, so a
// feature ID is stable for a given type.
func Features(t reflect.Type) []FeatureDef {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if cached, ok := features.Load(t); ok {
		return cached.([]FeatureDef)
	}

	defs := make([]FeatureDef, 0, t.NumField())
	inspectStruct(t, nil, &defs)

	actual, _ := features.LoadOrStore(t, defs)
	return actual.([]FeatureDef)
}

// FeatureByName looks a feature up by Go field name or XML name.
func FeatureByName(t reflect.Type, name string) (FeatureDef, bool) {
	for _, f := range Features(t) {
		if f.Name == name || f.XMLName == name {
			return f, true
		}
	}
	return FeatureDef{}, false
}

func inspectStruct(t reflect.Type, index []int, defs *[]FeatureDef) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldIndex := append(append([]int(nil), index...), i)

		// Handle embedded structs (flattening)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			inspectStruct(field.Type, fieldIndex, defs)
			continue
		}

		if field.PkgPath != "" { // unexported
			continue
		}

		space, local, flags := parseXMLTag(field)
		if local == "-" {
			continue
		}

		def := FeatureDef{
			ID:        len(*defs),
			Name:      field.Name,
			XMLName:   local,
			Namespace: space,
			Required:  isRequired(field),
			Index:     fieldIndex,
			GoType:    field.Type,
		}
		mapFeatureKind(&def, field.Type, flags)
		*defs = append(*defs, def)
	}
}

func mapFeatureKind(def *FeatureDef, t reflect.Type, flags string) {
	def.Type = t.String()

	switch {
	case strings.Contains(flags, "attr"):
		def.Kind = KindAttribute
	case strings.Contains(flags, "chardata"), strings.Contains(flags, "innerxml"):
		def.Kind = KindText
	case IsObjectType(t):
		def.Kind = KindContainment
	case t.Kind() == reflect.Slice && IsObjectType(t.Elem()):
		def.Kind = KindContainmentList
		def.Many = true
	case t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8:
		def.Kind = KindElementList
		def.Many = true
	default:
		def.Kind = KindElement
	}

	if reflect.PointerTo(t).Implements(optionalType) {
		def.Unsettable = true
		holder := reflect.New(t).Interface().(optional)
		def.Default = holder.DefaultValue()
		if e, ok := def.Default.(enumerated); ok {
			def.Options = e.Literals()
		}
		return
	}

	elem := t
	if def.Many || elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if elem.Implements(enumeratedType) {
		def.Options = reflect.Zero(elem).Interface().(enumerated).Literals()
	}
}

// IsObjectType reports whether t is a pointer to a model object, which makes
// a field holding it a containment reference.
func IsObjectType(t reflect.Type) bool {
	if t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		return false
	}
	if t.Implements(textMarshalerType) {
		return false
	}
	_, ok := t.MethodByName("ModelBase")
	return ok
}

func parseXMLTag(field reflect.StructField) (space, local, flags string) {
	tag, ok := field.Tag.Lookup("xml")
	if !ok {
		return "", field.Name, ""
	}
	name, flags, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	if ns, l, found := strings.Cut(name, " "); found {
		return ns, l, flags
	}
	return "", name, flags
}

func isRequired(field reflect.StructField) bool {
	if tag, ok := field.Tag.Lookup("validate"); ok {
		return strings.Contains(tag, "required") || strings.Contains(tag, "min=1")
	}
	return false
}
