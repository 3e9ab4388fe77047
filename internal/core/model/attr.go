package model

import (
	"encoding"
	"encoding/xml"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Defaulter supplies the schema default of an optional attribute.
// Implementations are empty struct types, so the default costs nothing per value.
type Defaulter[T any] interface {
	Default() T
}

// Attr is an optional attribute with a schema default.
// While unset, Get returns the default and the attribute is omitted from XML.
// Set marks the attribute as set even when the value equals the default.
type Attr[T comparable, D Defaulter[T]] struct {
	value T
	set   bool
}

// NewAttr returns an attribute explicitly set to v.
func NewAttr[T comparable, D Defaulter[T]](v T) Attr[T, D] {
	return Attr[T, D]{value: v, set: true}
}

func (a Attr[T, D]) Get() T {
	if a.set {
		return a.value
	}
	var d D
	return d.Default()
}

func (a Attr[T, D]) IsSet() bool {
	return a.set
}

// Set stores v without notifying; use SetAttr to notify the owner's observers.
func (a *Attr[T, D]) Set(v T) {
	a.value = v
	a.set = true
}

// Unset restores the default.
func (a *Attr[T, D]) Unset() {
	var zero T
	a.value = zero
	a.set = false
}

func (a Attr[T, D]) DefaultValue() any {
	var d D
	return d.Default()
}

func (a Attr[T, D]) AnyValue() any {
	return a.Get()
}

func (a *Attr[T, D]) SetAny(v any) error {
	tv, ok := v.(T)
	if !ok {
		return fmt.Errorf("%w: want %T, got %T", ErrTypeMismatch, tv, v)
	}
	a.Set(tv)
	return nil
}

func (a Attr[T, D]) String() string {
	s, _ := formatValue(a.Get())
	return s
}

// MarshalXMLAttr omits the attribute while it is unset.
func (a Attr[T, D]) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	if !a.set {
		return xml.Attr{}, nil
	}
	s, err := formatValue(a.value)
	if err != nil {
		return xml.Attr{}, err
	}
	return xml.Attr{Name: name, Value: s}, nil
}

func (a *Attr[T, D]) UnmarshalXMLAttr(attr xml.Attr) error {
	v, err := parseValue[T](attr.Value)
	if err != nil {
		return fmt.Errorf("attribute %s: %w", attr.Name.Local, err)
	}
	a.Set(v)
	return nil
}

// optionalValue is the untyped view of Attr used by reflective access.
type optionalValue interface {
	IsSet() bool
	Unset()
	AnyValue() any
	DefaultValue() any
	SetAny(v any) error
}

var _ optionalValue = (*Attr[string, stringDefault])(nil)

type stringDefault struct{}

func (stringDefault) Default() string { return "" }

func formatValue(v any) (string, error) {
	switch x := v.(type) {
	case encoding.TextMarshaler:
		b, err := x.MarshalText()
		return string(b), err
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return fmt.Sprint(v), nil
}

func parseValue[T any](s string) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case encoding.TextUnmarshaler:
		err := p.UnmarshalText([]byte(s))
		return v, err
	case *string:
		*p = s
	case *bool:
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return v, fmt.Errorf("%w: %q is not a boolean", ErrTypeMismatch, s)
		}
		*p = b
	default:
		rv := reflect.ValueOf(&v).Elem()
		if rv.Kind() != reflect.String {
			return v, fmt.Errorf("%w: cannot parse %T", ErrTypeMismatch, v)
		}
		rv.SetString(s)
	}
	return v, nil
}
