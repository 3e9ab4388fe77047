package model

import (
	"fmt"
	"reflect"

	"geotjs/internal/metadata"
)

// Set assigns v to slot, which must point at a field of owner, and notifies.
//
//	model.Set(fw, &fw.FrameworkKey, key)
func Set[T any](owner Object, slot *T, v T) error {
	id, err := slotFeature(owner, slot)
	if err != nil {
		return err
	}
	return SetFeature(owner, id, v)
}

// SetAttr assigns an optional attribute of owner and notifies.
func SetAttr[T comparable, D Defaulter[T]](owner Object, slot *Attr[T, D], v T) error {
	id, err := slotFeature(owner, slot)
	if err != nil {
		return err
	}
	return SetFeature(owner, id, v)
}

// Unset restores the field at slot to its default and notifies.
func Unset[T any](owner Object, slot *T) error {
	id, err := slotFeature(owner, slot)
	if err != nil {
		return err
	}
	return UnsetFeature(owner, id)
}

// Append adds v to the containment list at slot, detaching it from its
// previous container first.
func Append[T Object](owner Object, slot *[]T, v T) error {
	id, err := slotFeature(owner, slot)
	if err != nil {
		return err
	}
	f := Features(owner)[id]
	if f.Kind != metadata.KindContainmentList {
		return fmt.Errorf("%w: %s.%s", ErrNotContainment, typeName(owner), f.Name)
	}
	if _, ok := asObject(reflect.ValueOf(v)); !ok {
		return fmt.Errorf("%w: cannot add nil to %s.%s", ErrTypeMismatch, typeName(owner), f.Name)
	}
	if IsAncestor(v, owner) {
		return fmt.Errorf("%w: %s cannot contain its ancestor", ErrContainmentCycle, typeName(owner))
	}

	detach(v)
	attach(v, owner, f.ID)
	*slot = append(*slot, v)
	owner.ModelBase().notify(Notification{
		Notifier: owner, Kind: KindAdd, FeatureID: f.ID, Feature: f.Name,
		New: v, Position: len(*slot) - 1,
	})
	return nil
}

// Remove takes v out of the containment list at slot and releases it.
func Remove[T Object](owner Object, slot *[]T, v T) error {
	id, err := slotFeature(owner, slot)
	if err != nil {
		return err
	}
	f := Features(owner)[id]
	for i, e := range *slot {
		if Object(e) == Object(v) {
			*slot = append((*slot)[:i:i], (*slot)[i+1:]...)
			release(v)
			owner.ModelBase().notify(Notification{
				Notifier: owner, Kind: KindRemove, FeatureID: f.ID, Feature: f.Name,
				Old: v, Position: i,
			})
			return nil
		}
	}
	return fmt.Errorf("%w: %s.%s", ErrNotOwned, typeName(owner), f.Name)
}

// Detach removes obj from its container, clearing the owning slot.
func Detach(obj Object) {
	detach(obj)
}

// slotFeature finds the feature whose field lives at slot's address.
func slotFeature(owner Object, slot any) (int, error) {
	sv := reflect.ValueOf(slot)
	ov := reflect.ValueOf(owner).Elem()
	for _, f := range Features(owner) {
		fv := ov.FieldByIndex(f.Index)
		if fv.Addr().Pointer() == sv.Pointer() && fv.Type() == sv.Type().Elem() {
			return f.ID, nil
		}
	}
	return -1, fmt.Errorf("%w: slot %s is not a field of %s", ErrFeatureNotFound, sv.Type().Elem(), typeName(owner))
}

func setContained(owner Object, f metadata.FeatureDef, field, nv reflect.Value, kind Kind) error {
	old := field.Interface()
	oldObj, hadOld := asObject(field)
	newObj, hasNew := asObject(nv)

	if hadOld && hasNew && oldObj == newObj {
		owner.ModelBase().notify(Notification{
			Notifier: owner, Kind: KindSet, FeatureID: f.ID, Feature: f.Name,
			Old: old, New: old, Position: -1, Touch: true,
		})
		return nil
	}
	if hasNew && IsAncestor(newObj, owner) {
		return fmt.Errorf("%w: %s cannot contain its ancestor", ErrContainmentCycle, typeName(owner))
	}

	if hadOld {
		release(oldObj)
	}
	if hasNew {
		detach(newObj)
		attach(newObj, owner, f.ID)
	}
	field.Set(nv)

	owner.ModelBase().notify(Notification{
		Notifier: owner, Kind: kind, FeatureID: f.ID, Feature: f.Name,
		Old: old, New: nv.Interface(), WasSet: hadOld, Position: -1,
	})
	return nil
}

func replaceList(owner Object, f metadata.FeatureDef, field, nv reflect.Value, kind Kind) error {
	seen := make(map[Object]bool, nv.Len())
	for i := 0; i < nv.Len(); i++ {
		child, ok := asObject(nv.Index(i))
		if !ok {
			continue
		}
		if seen[child] {
			return fmt.Errorf("%w: %s.%s[%d]", ErrDuplicate, typeName(owner), f.Name, i)
		}
		seen[child] = true
		if IsAncestor(child, owner) {
			return fmt.Errorf("%w: %s cannot contain its ancestor", ErrContainmentCycle, typeName(owner))
		}
	}

	old := field.Interface()
	wasSet := field.Len() > 0
	for i := 0; i < field.Len(); i++ {
		if child, ok := asObject(field.Index(i)); ok {
			release(child)
		}
	}
	field.Set(reflect.Zero(f.GoType))

	for i := 0; i < nv.Len(); i++ {
		if child, ok := asObject(nv.Index(i)); ok {
			detach(child)
			attach(child, owner, f.ID)
		}
	}
	field.Set(nv)

	owner.ModelBase().notify(Notification{
		Notifier: owner, Kind: kind, FeatureID: f.ID, Feature: f.Name,
		Old: old, New: nv.Interface(), WasSet: wasSet, Position: -1,
	})
	return nil
}

// detach clears the slot currently holding obj in its container.
func detach(obj Object) {
	b := obj.ModelBase()
	parent := b.container
	if parent == nil {
		return
	}
	f, field, err := featureOf(parent, b.feature)
	if err != nil {
		release(obj)
		return
	}

	switch f.Kind {
	case metadata.KindContainment:
		if cur, ok := asObject(field); ok && cur == obj {
			field.Set(reflect.Zero(f.GoType))
			parent.ModelBase().notify(Notification{
				Notifier: parent, Kind: KindSet, FeatureID: f.ID, Feature: f.Name,
				Old: obj, New: nil, WasSet: true, Position: -1,
			})
		}
	case metadata.KindContainmentList:
		for i := 0; i < field.Len(); i++ {
			if cur, ok := asObject(field.Index(i)); ok && cur == obj {
				rest := reflect.AppendSlice(field.Slice3(0, i, i), field.Slice(i+1, field.Len()))
				field.Set(rest)
				parent.ModelBase().notify(Notification{
					Notifier: parent, Kind: KindRemove, FeatureID: f.ID, Feature: f.Name,
					Old: obj, Position: i,
				})
				break
			}
		}
	}
	release(obj)
}

func attach(obj, owner Object, feature int) {
	b := obj.ModelBase()
	b.container = owner
	b.feature = feature
}

func release(obj Object) {
	b := obj.ModelBase()
	b.container = nil
	b.feature = 0
}

func asObject(v reflect.Value) (Object, bool) {
	if !v.IsValid() {
		return nil, false
	}
	if (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) && v.IsNil() {
		return nil, false
	}
	obj, ok := v.Interface().(Object)
	return obj, ok
}
