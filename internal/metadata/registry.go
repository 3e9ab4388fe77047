// Package metadata describes model classes and their features for reflective access.
package metadata

import (
	"reflect"
	"sort"
	"sync"
)

// FeatureKind defines how a feature is serialized and owned.
type FeatureKind string

const (
	KindAttribute       FeatureKind = "attribute"
	KindElement         FeatureKind = "element"
	KindElementList     FeatureKind = "elementList"
	KindText            FeatureKind = "text"
	KindContainment     FeatureKind = "containment"
	KindContainmentList FeatureKind = "containmentList"
)

// ClassDef describes a model class.
type ClassDef struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Namespace string       `json:"namespace,omitempty"`
	Abstract  bool         `json:"abstract,omitempty"`
	Features  []FeatureDef `json:"features"`
}

// FeatureDef describes a structural feature of a class.
type FeatureDef struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	XMLName    string      `json:"xmlName"`
	Namespace  string      `json:"namespace,omitempty"`
	Kind       FeatureKind `json:"kind"`
	Type       string      `json:"type"`
	Many       bool        `json:"many,omitempty"`
	Required   bool        `json:"required,omitempty"`
	Unsettable bool        `json:"unsettable,omitempty"` // tracks is-set separately from value
	Default    any         `json:"default,omitempty"`
	Options    []string    `json:"options,omitempty"` // enumeration literals

	Index  []int        `json:"-"`
	GoType reflect.Type `json:"-"`
}

// IsContainment reports whether the feature owns its values.
func (f FeatureDef) IsContainment() bool {
	return f.Kind == KindContainment || f.Kind == KindContainmentList
}

// Registry stores class definitions.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]ClassDef
	byID   map[int]ClassDef
}

func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]ClassDef),
		byID:   make(map[int]ClassDef),
	}
}

func (r *Registry) Register(def ClassDef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[def.Name] = def
	r.byID[def.ID] = def
}

func (r *Registry) Get(name string) (ClassDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byName[name]
	return d, ok
}

func (r *Registry) ByID(id int) (ClassDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	return d, ok
}

// List returns all definitions ordered by class ID.
func (r *Registry) List() []ClassDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]ClassDef, 0, len(r.byID))
	for _, def := range r.byID {
		list = append(list, def)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
