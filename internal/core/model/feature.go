package model

import (
	"fmt"
	"reflect"

	"geotjs/internal/metadata"
)

// Features returns the feature definitions of obj's class.
func Features(obj Object) []metadata.FeatureDef {
	return metadata.Features(reflect.TypeOf(obj))
}

// FeatureID resolves a feature by Go field name or XML name.
func FeatureID(obj Object, name string) (int, error) {
	f, ok := metadata.FeatureByName(reflect.TypeOf(obj), name)
	if !ok {
		return -1, fmt.Errorf("%w: %T has no feature %q", ErrFeatureNotFound, obj, name)
	}
	return f.ID, nil
}

func featureOf(obj Object, id int) (metadata.FeatureDef, reflect.Value, error) {
	defs := Features(obj)
	if id < 0 || id >= len(defs) {
		return metadata.FeatureDef{}, reflect.Value{},
			fmt.Errorf("%w: %T has no feature %d", ErrFeatureNotFound, obj, id)
	}
	f := defs[id]
	return f, reflect.ValueOf(obj).Elem().FieldByIndex(f.Index), nil
}

// Get returns the current value of a feature. Unset optional attributes
// yield their default.
func Get(obj Object, id int) (any, error) {
	f, v, err := featureOf(obj, id)
	if err != nil {
		return nil, err
	}
	if f.Unsettable {
		return v.Addr().Interface().(optionalValue).AnyValue(), nil
	}
	return v.Interface(), nil
}

// IsSet reports whether a feature holds a value. Optional attributes track
// this explicitly; other features are set when they differ from their zero value.
func IsSet(obj Object, id int) (bool, error) {
	f, v, err := featureOf(obj, id)
	if err != nil {
		return false, err
	}
	if f.Unsettable {
		return v.Addr().Interface().(optionalValue).IsSet(), nil
	}
	if v.Kind() == reflect.Slice {
		return v.Len() > 0, nil
	}
	return !v.IsZero(), nil
}

// SetFeature assigns value to a feature and notifies obj's observers.
// The value must be assignable to the feature type; containment values are
// detached from their previous container first.
func SetFeature(obj Object, id int, value any) error {
	f, v, err := featureOf(obj, id)
	if err != nil {
		return err
	}

	if f.Unsettable {
		holder := v.Addr().Interface().(optionalValue)
		old, wasSet := holder.AnyValue(), holder.IsSet()
		if err := holder.SetAny(value); err != nil {
			return fmt.Errorf("%s.%s: %w", typeName(obj), f.Name, err)
		}
		obj.ModelBase().notify(Notification{
			Notifier: obj, Kind: KindSet, FeatureID: f.ID, Feature: f.Name,
			Old: old, New: value, WasSet: wasSet, Position: -1,
			Touch: wasSet && old == value,
		})
		return nil
	}

	rv, err := assignable(value, f.GoType)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", typeName(obj), f.Name, err)
	}

	switch f.Kind {
	case metadata.KindContainment:
		return setContained(obj, f, v, rv, KindSet)
	case metadata.KindContainmentList:
		return replaceList(obj, f, v, rv, KindSet)
	}

	old := v.Interface()
	v.Set(rv)
	obj.ModelBase().notify(Notification{
		Notifier: obj, Kind: KindSet, FeatureID: f.ID, Feature: f.Name,
		Old: old, New: rv.Interface(), Position: -1,
		Touch: sameValue(old, rv.Interface()),
	})
	return nil
}

// UnsetFeature restores a feature to its default. Optional attributes lose
// their is-set flag; containment values are released from obj.
func UnsetFeature(obj Object, id int) error {
	f, v, err := featureOf(obj, id)
	if err != nil {
		return err
	}

	if f.Unsettable {
		holder := v.Addr().Interface().(optionalValue)
		old, wasSet := holder.AnyValue(), holder.IsSet()
		holder.Unset()
		obj.ModelBase().notify(Notification{
			Notifier: obj, Kind: KindUnset, FeatureID: f.ID, Feature: f.Name,
			Old: old, New: holder.DefaultValue(), WasSet: wasSet, Position: -1,
		})
		return nil
	}

	zero := reflect.Zero(f.GoType)
	switch f.Kind {
	case metadata.KindContainment:
		return setContained(obj, f, v, zero, KindUnset)
	case metadata.KindContainmentList:
		return replaceList(obj, f, v, zero, KindUnset)
	}

	old := v.Interface()
	v.Set(zero)
	obj.ModelBase().notify(Notification{
		Notifier: obj, Kind: KindUnset, FeatureID: f.ID, Feature: f.Name,
		Old: old, New: zero.Interface(), WasSet: !reflect.ValueOf(old).IsZero(), Position: -1,
	})
	return nil
}

func assignable(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil is not a valid %s", ErrTypeMismatch, t)
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: want %s, got %T", ErrTypeMismatch, t, value)
	}
	return rv, nil
}

func sameValue(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}

func typeName(obj Object) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
