package tjs10

import (
	"fmt"
	"reflect"
)

// DataTypeID identifies a datatype with a lexical form. IDs continue after
// the class IDs, so a classifier and a datatype never share a number.
type DataTypeID int

const (
	DataDataClassType DataTypeID = iota + DataTypeID(classifierCount)
	DataDescribeDatasetsValueType
	DataDescribeDataValueType
	DataDescribeFrameworksValueType
	DataDescribeJoinAbilitiesValueType
	DataDescribeKeyValueType
	DataGaussianType
	DataGetCapabilitiesValueType
	DataGetDataValueType
	DataJoinDataValueType
	DataPurposeType
	DataRequestServiceType
	DataTypeType
	DataUpdateType
	DataVersionType
	DataVersionType1
	DataVersionType2
	DataAcceptLanguagesType
	DataDataClassTypeObject
	DataDescribeDatasetsValueTypeObject
	DataDescribeDataValueTypeObject
	DataDescribeFrameworksValueTypeObject
	DataDescribeJoinAbilitiesValueTypeObject
	DataDescribeKeyValueTypeObject
	DataGaussianTypeObject
	DataGetCapabilitiesValueTypeObject
	DataGetDataValueTypeObject
	DataJoinDataValueTypeObject
	DataPurposeTypeObject
	DataRequestServiceTypeObject
	DataSectionsType
	DataTypeTypeObject
	DataUpdateTypeObject
	DataVersionTypeObject
	DataVersionTypeObject1
	DataVersionTypeObject2

	dataTypeEnd
)

// dataType describes how a datatype is parsed and printed. Object variants
// are nullable and hold a pointer to the value.
type dataType struct {
	name     string
	goType   reflect.Type
	nullable bool
	parse    func(string) (any, error)
	literals []string
}

func enumType[T ~string](name string, parse func(string) (T, error), values []T) dataType {
	return dataType{
		name:     name,
		goType:   reflect.TypeOf(T("")),
		parse:    func(s string) (any, error) { return parse(s) },
		literals: literals(values),
	}
}

func objectType[T ~string](name string, parse func(string) (T, error), values []T) dataType {
	dt := enumType(name, parse, values)
	dt.nullable = true
	dt.parse = func(s string) (any, error) {
		v, err := parse(s)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	return dt
}

func stringType[T ~string](name string) dataType {
	return dataType{
		name:   name,
		goType: reflect.TypeOf(T("")),
		parse:  func(s string) (any, error) { return T(s), nil },
	}
}

var dataTypeTable = map[DataTypeID]dataType{
	DataDataClassType:                        enumType("DataClassType", ParseDataClassType, dataClassTypeValues),
	DataDescribeDatasetsValueType:            enumType("DescribeDatasetsValueType", ParseDescribeDatasetsValueType, describeDatasetsValueTypeValues),
	DataDescribeDataValueType:                enumType("DescribeDataValueType", ParseDescribeDataValueType, describeDataValueTypeValues),
	DataDescribeFrameworksValueType:          enumType("DescribeFrameworksValueType", ParseDescribeFrameworksValueType, describeFrameworksValueTypeValues),
	DataDescribeJoinAbilitiesValueType:       enumType("DescribeJoinAbilitiesValueType", ParseDescribeJoinAbilitiesValueType, describeJoinAbilitiesValueTypeValues),
	DataDescribeKeyValueType:                 enumType("DescribeKeyValueType", ParseDescribeKeyValueType, describeKeyValueTypeValues),
	DataGaussianType:                         enumType("GaussianType", ParseGaussianType, gaussianTypeValues),
	DataGetCapabilitiesValueType:             enumType("GetCapabilitiesValueType", ParseGetCapabilitiesValueType, getCapabilitiesValueTypeValues),
	DataGetDataValueType:                     enumType("GetDataValueType", ParseGetDataValueType, getDataValueTypeValues),
	DataJoinDataValueType:                    enumType("JoinDataValueType", ParseJoinDataValueType, joinDataValueTypeValues),
	DataPurposeType:                          enumType("PurposeType", ParsePurposeType, purposeTypeValues),
	DataRequestServiceType:                   enumType("RequestServiceType", ParseRequestServiceType, requestServiceTypeValues),
	DataTypeType:                             enumType("TypeType", ParseTypeType, typeTypeValues),
	DataUpdateType:                           enumType("UpdateType", ParseUpdateType, updateTypeValues),
	DataVersionType:                          enumType("VersionType", ParseVersionType, versionTypeValues),
	DataVersionType1:                         enumType("VersionType1", ParseVersionType1, versionType1Values),
	DataVersionType2:                         enumType("VersionType2", ParseVersionType2, versionType2Values),
	DataAcceptLanguagesType:                  stringType[AcceptLanguagesType]("AcceptLanguagesType"),
	DataDataClassTypeObject:                  objectType("DataClassTypeObject", ParseDataClassType, dataClassTypeValues),
	DataDescribeDatasetsValueTypeObject:      objectType("DescribeDatasetsValueTypeObject", ParseDescribeDatasetsValueType, describeDatasetsValueTypeValues),
	DataDescribeDataValueTypeObject:          objectType("DescribeDataValueTypeObject", ParseDescribeDataValueType, describeDataValueTypeValues),
	DataDescribeFrameworksValueTypeObject:    objectType("DescribeFrameworksValueTypeObject", ParseDescribeFrameworksValueType, describeFrameworksValueTypeValues),
	DataDescribeJoinAbilitiesValueTypeObject: objectType("DescribeJoinAbilitiesValueTypeObject", ParseDescribeJoinAbilitiesValueType, describeJoinAbilitiesValueTypeValues),
	DataDescribeKeyValueTypeObject:           objectType("DescribeKeyValueTypeObject", ParseDescribeKeyValueType, describeKeyValueTypeValues),
	DataGaussianTypeObject:                   objectType("GaussianTypeObject", ParseGaussianType, gaussianTypeValues),
	DataGetCapabilitiesValueTypeObject:       objectType("GetCapabilitiesValueTypeObject", ParseGetCapabilitiesValueType, getCapabilitiesValueTypeValues),
	DataGetDataValueTypeObject:               objectType("GetDataValueTypeObject", ParseGetDataValueType, getDataValueTypeValues),
	DataJoinDataValueTypeObject:              objectType("JoinDataValueTypeObject", ParseJoinDataValueType, joinDataValueTypeValues),
	DataPurposeTypeObject:                    objectType("PurposeTypeObject", ParsePurposeType, purposeTypeValues),
	DataRequestServiceTypeObject:             objectType("RequestServiceTypeObject", ParseRequestServiceType, requestServiceTypeValues),
	DataSectionsType:                         stringType[SectionsType]("SectionsType"),
	DataTypeTypeObject:                       objectType("TypeTypeObject", ParseTypeType, typeTypeValues),
	DataUpdateTypeObject:                     objectType("UpdateTypeObject", ParseUpdateType, updateTypeValues),
	DataVersionTypeObject:                    objectType("VersionTypeObject", ParseVersionType, versionTypeValues),
	DataVersionTypeObject1:                   objectType("VersionTypeObject1", ParseVersionType1, versionType1Values),
	DataVersionTypeObject2:                   objectType("VersionTypeObject2", ParseVersionType2, versionType2Values),
}

// String returns the schema name of the datatype.
func (id DataTypeID) String() string {
	if dt, ok := dataTypeTable[id]; ok {
		return dt.name
	}
	return fmt.Sprintf("DataTypeID(%d)", int(id))
}

// DataTypes returns every datatype ID in order.
func DataTypes() []DataTypeID {
	ids := make([]DataTypeID, 0, len(dataTypeTable))
	for id := DataTypeID(classifierCount); id < dataTypeEnd; id++ {
		ids = append(ids, id)
	}
	return ids
}

// DataTypeByName resolves a datatype name.
func DataTypeByName(name string) (DataTypeID, bool) {
	for id, dt := range dataTypeTable {
		if dt.name == name {
			return id, true
		}
	}
	return -1, false
}
