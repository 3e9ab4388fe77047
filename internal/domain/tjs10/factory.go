package tjs10

import (
	"fmt"
	"reflect"
	"sync"

	"geotjs/internal/core/model"
	"geotjs/internal/metadata"
)

// Factory creates model objects by classifier and converts datatype values
// to and from their lexical form. The zero value is ready to use.
type Factory struct {
	once     sync.Once
	registry *metadata.Registry
}

var defaultFactory = &Factory{}

// DefaultFactory returns the shared factory.
func DefaultFactory() *Factory {
	return defaultFactory
}

// Create returns an empty instance of the class.
func (f *Factory) Create(id ClassifierID) (model.Object, error) {
	if id < 0 || id >= classifierCount {
		return nil, invalidClassifier(id.String())
	}
	return classTable[id].create(), nil
}

// CreateByName returns an empty instance of the named class.
func (f *Factory) CreateByName(name string) (model.Object, error) {
	id, ok := ClassifierByName(name)
	if !ok {
		return nil, invalidClassifier(name)
	}
	return f.Create(id)
}

// CreateFromString parses a literal of the datatype. Enumerations reject
// unknown literals with ErrInvalidEnumerator; Object variants return a pointer.
func (f *Factory) CreateFromString(id DataTypeID, literal string) (any, error) {
	dt, ok := dataTypeTable[id]
	if !ok {
		return nil, invalidClassifier(id.String())
	}
	return dt.parse(literal)
}

// ConvertToString returns the lexical form of a datatype value.
// A nil value, or a nil pointer for Object variants, converts to "".
func (f *Factory) ConvertToString(id DataTypeID, value any) (string, error) {
	dt, ok := dataTypeTable[id]
	if !ok {
		return "", invalidClassifier(id.String())
	}
	if value == nil {
		return "", nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return "", nil
		}
		rv = rv.Elem()
	}
	if rv.Type() != dt.goType {
		return "", fmt.Errorf("%w: %s expects %s, got %T", model.ErrTypeMismatch, dt.name, dt.goType, value)
	}
	return rv.String(), nil
}

// Literals returns the enumerators of a datatype, nil for free-form strings.
func (f *Factory) Literals(id DataTypeID) ([]string, error) {
	dt, ok := dataTypeTable[id]
	if !ok {
		return nil, invalidClassifier(id.String())
	}
	return dt.literals, nil
}

// Nullable reports whether the datatype is an Object variant.
func (f *Factory) Nullable(id DataTypeID) bool {
	return dataTypeTable[id].nullable
}

// Registry returns the definitions of all classes, built on first use.
func (f *Factory) Registry() *metadata.Registry {
	f.once.Do(func() {
		f.registry = metadata.NewRegistry()
		RegisterClasses(f.registry)
	})
	return f.registry
}

// RegisterClasses adds the definition of every class to reg.
func RegisterClasses(reg *metadata.Registry) {
	for _, id := range Classifiers() {
		reg.Register(metadata.Inspect(classTable[id].create(), int(id), Namespace))
	}
}

func invalidClassifier(name string) error {
	return fmt.Errorf("%w: the class '%s' is not a valid classifier", ErrInvalidClassifier, name)
}
