// Package model provides the object machinery shared by all document classes:
// single-parent containment, change notification, optional attributes with
// defaults and reflective feature access.
package model

// Object is implemented by every model class through an embedded Base.
type Object interface {
	ModelBase() *Base
}

// Base carries the container link and observer list of a model object.
// Embed it by value as the first field of a model struct.
type Base struct {
	container Object
	feature   int
	observers []observerEntry
	nextObs   int
	muted     bool
}

type observerEntry struct {
	id int
	o  Observer
}

// ModelBase returns b itself, which makes any struct embedding Base an Object.
func (b *Base) ModelBase() *Base {
	return b
}

// Container returns the object owning this one, or nil for a root.
func (b *Base) Container() Object {
	return b.container
}

// ContainingFeature returns the feature ID of the owning slot, or -1 for a root.
func (b *Base) ContainingFeature() int {
	if b.container == nil {
		return -1
	}
	return b.feature
}

// Observe registers o and returns a function removing it again.
func (b *Base) Observe(o Observer) (cancel func()) {
	b.nextObs++
	id := b.nextObs
	b.observers = append(b.observers, observerEntry{id: id, o: o})
	return func() {
		for i, e := range b.observers {
			if e.id == id {
				b.observers = append(b.observers[:i:i], b.observers[i+1:]...)
				return
			}
		}
	}
}

// Observed reports whether any observer is registered.
func (b *Base) Observed() bool {
	return len(b.observers) > 0
}

// SetDeliver enables or disables notification delivery for this object.
func (b *Base) SetDeliver(deliver bool) {
	b.muted = !deliver
}

func (b *Base) notify(n Notification) {
	if b.muted || len(b.observers) == 0 {
		return
	}
	// observers may cancel themselves while being notified
	snapshot := append([]observerEntry(nil), b.observers...)
	for _, e := range snapshot {
		e.o.Notify(n)
	}
}

// Root walks up the container chain and returns the topmost object.
func Root(obj Object) Object {
	for {
		parent := obj.ModelBase().container
		if parent == nil {
			return obj
		}
		obj = parent
	}
}

// IsAncestor reports whether a is obj or one of its containers.
func IsAncestor(a, obj Object) bool {
	for cur := obj; cur != nil; cur = cur.ModelBase().container {
		if cur == a {
			return true
		}
	}
	return false
}
