package metadata

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testBase struct{}

func (*testBase) ModelBase() {}

type child struct {
	testBase
	Value string `xml:"value,attr"`
}

type shared struct {
	Extra string `xml:"extra,attr"`
}

type parent struct {
	testBase
	shared
	ID       string   `xml:"id,attr"`
	Name     string   `xml:"Name" validate:"required"`
	Tags     []string `xml:"Tag"`
	Child    *child   `xml:"Child"`
	Children []*child `xml:"http://example.org/ns Children"`
	Text     string   `xml:",chardata"`
	Ignored  string   `xml:"-"`
	hidden   string
}

func TestFeatures(t *testing.T) {
	defs := Features(reflect.TypeOf(&parent{}))
	require.Len(t, defs, 7)

	tests := []struct {
		id      int
		name    string
		xmlName string
		kind    FeatureKind
		many    bool
	}{
		{0, "Extra", "extra", KindAttribute, false},
		{1, "ID", "id", KindAttribute, false},
		{2, "Name", "Name", KindElement, false},
		{3, "Tags", "Tag", KindElementList, true},
		{4, "Child", "Child", KindContainment, false},
		{5, "Children", "Children", KindContainmentList, true},
		{6, "Text", "Text", KindText, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := defs[tt.id]
			assert.Equal(t, tt.id, f.ID)
			assert.Equal(t, tt.name, f.Name)
			assert.Equal(t, tt.xmlName, f.XMLName)
			assert.Equal(t, tt.kind, f.Kind)
			assert.Equal(t, tt.many, f.Many)
		})
	}

	assert.True(t, defs[2].Required)
	assert.Equal(t, "http://example.org/ns", defs[5].Namespace)
	assert.Equal(t, []int{1, 0}, defs[0].Index)
	assert.True(t, defs[4].IsContainment())
	assert.False(t, defs[3].IsContainment())
}

func TestFeatureByName(t *testing.T) {
	typ := reflect.TypeOf(parent{})

	f, ok := FeatureByName(typ, "Tags")
	require.True(t, ok)
	assert.Equal(t, 3, f.ID)

	f, ok = FeatureByName(typ, "Tag")
	require.True(t, ok)
	assert.Equal(t, "Tags", f.Name)

	_, ok = FeatureByName(typ, "hidden")
	assert.False(t, ok)
}

func TestIsObjectType(t *testing.T) {
	assert.True(t, IsObjectType(reflect.TypeOf(&child{})))
	assert.False(t, IsObjectType(reflect.TypeOf(child{})))
	assert.False(t, IsObjectType(reflect.TypeOf(new(string))))
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Inspect(&parent{}, 1, "urn:test"))
	reg.Register(Inspect(child{}, 0, "urn:test"))

	assert.Equal(t, 2, reg.Len())

	def, ok := reg.Get("parent")
	require.True(t, ok)
	assert.Equal(t, 1, def.ID)
	assert.Equal(t, "urn:test", def.Namespace)

	def, ok = reg.ByID(0)
	require.True(t, ok)
	assert.Equal(t, "child", def.Name)

	_, ok = reg.Get("missing")
	assert.False(t, ok)

	list := reg.List()
	require.Len(t, list, 2)
	assert.Equal(t, "child", list[0].Name)
	assert.Equal(t, "parent", list[1].Name)
}
