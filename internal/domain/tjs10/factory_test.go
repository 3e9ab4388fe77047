package tjs10

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geotjs/internal/core/model"
	"geotjs/internal/metadata"
)

func TestFactory_CreateEveryClassifier(t *testing.T) {
	f := DefaultFactory()
	require.Len(t, Classifiers(), 84)

	for _, id := range Classifiers() {
		obj, err := f.Create(id)
		require.NoError(t, err, id.String())
		assert.Equal(t, id.String(), reflect.TypeOf(obj).Elem().Name())
		assert.Nil(t, obj.ModelBase().Container())
	}
}

func TestFactory_InvalidClassifier(t *testing.T) {
	f := DefaultFactory()

	_, err := f.Create(ClassifierID(500))
	assert.True(t, errors.Is(err, ErrInvalidClassifier))
	assert.Contains(t, err.Error(), "is not a valid classifier")

	_, err = f.CreateByName("CapabilitiesType")
	assert.True(t, errors.Is(err, ErrInvalidClassifier))
	assert.Contains(t, err.Error(), "'CapabilitiesType'")

	obj, err := f.CreateByName("GDASType")
	require.NoError(t, err)
	assert.IsType(t, &GDASType{}, obj)
}

func TestFactory_CreateFromStringAndBack(t *testing.T) {
	f := DefaultFactory()

	for _, id := range DataTypes() {
		lits, err := f.Literals(id)
		require.NoError(t, err)
		for _, lit := range lits {
			v, err := f.CreateFromString(id, lit)
			require.NoError(t, err, "%s %q", id, lit)
			if f.Nullable(id) {
				assert.Equal(t, reflect.Ptr, reflect.TypeOf(v).Kind(), id.String())
			}
			s, err := f.ConvertToString(id, v)
			require.NoError(t, err)
			assert.Equal(t, lit, s)
		}
	}
}

func TestFactory_DataTypeErrors(t *testing.T) {
	f := DefaultFactory()

	_, err := f.CreateFromString(DataGaussianType, "maybe")
	assert.True(t, errors.Is(err, ErrInvalidEnumerator))
	assert.Contains(t, err.Error(), "'maybe' is not a valid enumerator of 'GaussianType'")

	_, err = f.CreateFromString(DataTypeID(7), "x")
	assert.True(t, errors.Is(err, ErrInvalidClassifier))

	_, err = f.ConvertToString(DataPurposeType, "Attribute")
	assert.True(t, errors.Is(err, model.ErrTypeMismatch))

	s, err := f.ConvertToString(DataPurposeTypeObject, (*PurposeType)(nil))
	require.NoError(t, err)
	assert.Empty(t, s)

	// free-form datatypes are not checked against a pattern
	v, err := f.CreateFromString(DataSectionsType, "not,a,section")
	require.NoError(t, err)
	assert.Equal(t, SectionsType("not,a,section"), v)
}

func TestFactory_Registry(t *testing.T) {
	reg := DefaultFactory().Registry()
	assert.Equal(t, 84, reg.Len())

	def, ok := reg.Get("ColumnType1")
	require.True(t, ok)
	assert.Equal(t, int(ClassColumnType1), def.ID)

	byName := map[string]metadata.FeatureDef{}
	for _, f := range def.Features {
		byName[f.XMLName] = f
	}

	purpose := byName["purpose"]
	assert.Equal(t, metadata.KindAttribute, purpose.Kind)
	assert.True(t, purpose.Unsettable)
	assert.Equal(t, PurposeSpatialComponentIdentifier, purpose.Default)
	assert.Len(t, purpose.Options, 10)

	assert.Equal(t, metadata.KindContainment, byName["Values"].Kind)
	assert.True(t, byName["length"].Required)
	assert.False(t, byName["decimals"].Required)

	fw, ok := reg.Get("FrameworkType4")
	require.True(t, ok)
	last := fw.Features[len(fw.Features)-1]
	assert.Equal(t, "Dataset", last.XMLName)
	assert.Equal(t, metadata.KindContainmentList, last.Kind)
}
