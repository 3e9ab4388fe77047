package model

import (
	"reflect"

	"geotjs/internal/metadata"
)

// Contents returns the objects directly contained by obj, in feature order.
func Contents(obj Object) []Object {
	var out []Object
	ov := reflect.ValueOf(obj).Elem()
	for _, f := range Features(obj) {
		switch f.Kind {
		case metadata.KindContainment:
			if child, ok := asObject(ov.FieldByIndex(f.Index)); ok {
				out = append(out, child)
			}
		case metadata.KindContainmentList:
			list := ov.FieldByIndex(f.Index)
			for i := 0; i < list.Len(); i++ {
				if child, ok := asObject(list.Index(i)); ok {
					out = append(out, child)
				}
			}
		}
	}
	return out
}

// Walk visits obj and all of its descendants depth-first.
// Returning an error from fn stops the walk.
func Walk(obj Object, fn func(Object) error) error {
	if err := fn(obj); err != nil {
		return err
	}
	for _, child := range Contents(obj) {
		if err := Walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// Adopt links every contained object of root to its owner. Trees built by
// assigning fields directly, such as decoded documents, need this before
// containment and notifications behave.
func Adopt(root Object) {
	adopt(root)
}

func adopt(owner Object) {
	ov := reflect.ValueOf(owner).Elem()
	for _, f := range Features(owner) {
		switch f.Kind {
		case metadata.KindContainment:
			if child, ok := asObject(ov.FieldByIndex(f.Index)); ok {
				attach(child, owner, f.ID)
				adopt(child)
			}
		case metadata.KindContainmentList:
			list := ov.FieldByIndex(f.Index)
			for i := 0; i < list.Len(); i++ {
				if child, ok := asObject(list.Index(i)); ok {
					attach(child, owner, f.ID)
					adopt(child)
				}
			}
		}
	}
}

// Path returns the feature names leading from the root to obj.
func Path(obj Object) []string {
	var path []string
	for cur := obj; cur.ModelBase().container != nil; cur = cur.ModelBase().container {
		parent := cur.ModelBase().container
		defs := Features(parent)
		if id := cur.ModelBase().feature; id >= 0 && id < len(defs) {
			path = append([]string{defs[id].XMLName}, path...)
		}
	}
	return path
}
