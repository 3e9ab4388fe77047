package tjs10

import (
	"fmt"

	"geotjs/internal/core/model"
)

// ClassifierID identifies a model class. IDs follow the alphabetical
// order of the schema types and are stable.
type ClassifierID int

const (
	ClassAbstractType ClassifierID = iota
	ClassAcceptVersionsType
	ClassAttributeDataType
	ClassAttributesType
	ClassBoundingCoordinatesType
	ClassClassesType
	ClassClassesType1
	ClassColumnsetType
	ClassColumnType
	ClassColumnType1
	ClassColumnType2
	ClassCountType
	ClassDataDescriptionsType
	ClassDataInputsType
	ClassDatasetDescriptionsType
	ClassDatasetType
	ClassDatasetType1
	ClassDatasetType2
	ClassDatasetType3
	ClassDescribeDataRequestType
	ClassDescribeDatasetsRequestType
	ClassDescribeDatasetsType
	ClassDescribeDataType
	ClassDescribeFrameworkKeyType
	ClassDescribeFrameworksType
	ClassDescribeKeyType
	ClassDocumentRoot
	ClassExceptionReportType
	ClassFailedType
	ClassFrameworkDatasetDescribeDataType
	ClassFrameworkDescriptionsType
	ClassFrameworkKeyDescriptionType
	ClassFrameworkKeyType
	ClassFrameworkKeyType1
	ClassFrameworkType
	ClassFrameworkType1
	ClassFrameworkType2
	ClassFrameworkType3
	ClassFrameworkType4
	ClassGDASType
	ClassGetCapabilitiesType
	ClassGetDataRequestType
	ClassGetDataType
	ClassGetDataXMLType
	ClassJoinAbilitiesType
	ClassJoinDataResponseType
	ClassJoinDataType
	ClassJoinedOutputsType
	ClassKType
	ClassShortForm
	ClassLongForm
	ClassLanguagesType
	ClassMapStylingType
	ClassMeasureCountExceptions
	ClassMeasureType
	ClassMechanismType
	ClassNominalOrdinalExceptions
	ClassNominalType
	ClassNullType
	ClassNullType1
	ClassOrdinalType
	ClassOutputMechanismsType
	ClassOutputStylingsType
	ClassOutputStylingsType1
	ClassOutputType
	ClassParameterType
	ClassReferenceDateType
	ClassRequestBaseType
	ClassResourceType
	ClassRowsetType
	ClassRowsetType1
	ClassRowType
	ClassRowType1
	ClassSpatialFrameworksType
	ClassStatusType
	ClassStylingType
	ClassTjsCapabilitiesType
	ClassUncertaintyType
	ClassUOMType
	ClassValuesType
	ClassValueType
	ClassValueType1
	ClassVType
	ClassWSDLType

	classifierCount
)

type classEntry struct {
	name   string
	create func() model.Object
}

var classTable = [classifierCount]classEntry{
	ClassAbstractType:                     {"AbstractType", func() model.Object { return NewAbstractType() }},
	ClassAcceptVersionsType:               {"AcceptVersionsType", func() model.Object { return NewAcceptVersionsType() }},
	ClassAttributeDataType:                {"AttributeDataType", func() model.Object { return NewAttributeDataType() }},
	ClassAttributesType:                   {"AttributesType", func() model.Object { return NewAttributesType() }},
	ClassBoundingCoordinatesType:          {"BoundingCoordinatesType", func() model.Object { return NewBoundingCoordinatesType() }},
	ClassClassesType:                      {"ClassesType", func() model.Object { return NewClassesType() }},
	ClassClassesType1:                     {"ClassesType1", func() model.Object { return NewClassesType1() }},
	ClassColumnsetType:                    {"ColumnsetType", func() model.Object { return NewColumnsetType() }},
	ClassColumnType:                       {"ColumnType", func() model.Object { return NewColumnType() }},
	ClassColumnType1:                      {"ColumnType1", func() model.Object { return NewColumnType1() }},
	ClassColumnType2:                      {"ColumnType2", func() model.Object { return NewColumnType2() }},
	ClassCountType:                        {"CountType", func() model.Object { return NewCountType() }},
	ClassDataDescriptionsType:             {"DataDescriptionsType", func() model.Object { return NewDataDescriptionsType() }},
	ClassDataInputsType:                   {"DataInputsType", func() model.Object { return NewDataInputsType() }},
	ClassDatasetDescriptionsType:          {"DatasetDescriptionsType", func() model.Object { return NewDatasetDescriptionsType() }},
	ClassDatasetType:                      {"DatasetType", func() model.Object { return NewDatasetType() }},
	ClassDatasetType1:                     {"DatasetType1", func() model.Object { return NewDatasetType1() }},
	ClassDatasetType2:                     {"DatasetType2", func() model.Object { return NewDatasetType2() }},
	ClassDatasetType3:                     {"DatasetType3", func() model.Object { return NewDatasetType3() }},
	ClassDescribeDataRequestType:          {"DescribeDataRequestType", func() model.Object { return NewDescribeDataRequestType() }},
	ClassDescribeDatasetsRequestType:      {"DescribeDatasetsRequestType", func() model.Object { return NewDescribeDatasetsRequestType() }},
	ClassDescribeDatasetsType:             {"DescribeDatasetsType", func() model.Object { return NewDescribeDatasetsType() }},
	ClassDescribeDataType:                 {"DescribeDataType", func() model.Object { return NewDescribeDataType() }},
	ClassDescribeFrameworkKeyType:         {"DescribeFrameworkKeyType", func() model.Object { return NewDescribeFrameworkKeyType() }},
	ClassDescribeFrameworksType:           {"DescribeFrameworksType", func() model.Object { return NewDescribeFrameworksType() }},
	ClassDescribeKeyType:                  {"DescribeKeyType", func() model.Object { return NewDescribeKeyType() }},
	ClassDocumentRoot:                     {"DocumentRoot", func() model.Object { return NewDocumentRoot() }},
	ClassExceptionReportType:              {"ExceptionReportType", func() model.Object { return NewExceptionReportType() }},
	ClassFailedType:                       {"FailedType", func() model.Object { return NewFailedType() }},
	ClassFrameworkDatasetDescribeDataType: {"FrameworkDatasetDescribeDataType", func() model.Object { return NewFrameworkDatasetDescribeDataType() }},
	ClassFrameworkDescriptionsType:        {"FrameworkDescriptionsType", func() model.Object { return NewFrameworkDescriptionsType() }},
	ClassFrameworkKeyDescriptionType:      {"FrameworkKeyDescriptionType", func() model.Object { return NewFrameworkKeyDescriptionType() }},
	ClassFrameworkKeyType:                 {"FrameworkKeyType", func() model.Object { return NewFrameworkKeyType() }},
	ClassFrameworkKeyType1:                {"FrameworkKeyType1", func() model.Object { return NewFrameworkKeyType1() }},
	ClassFrameworkType:                    {"FrameworkType", func() model.Object { return NewFrameworkType() }},
	ClassFrameworkType1:                   {"FrameworkType1", func() model.Object { return NewFrameworkType1() }},
	ClassFrameworkType2:                   {"FrameworkType2", func() model.Object { return NewFrameworkType2() }},
	ClassFrameworkType3:                   {"FrameworkType3", func() model.Object { return NewFrameworkType3() }},
	ClassFrameworkType4:                   {"FrameworkType4", func() model.Object { return NewFrameworkType4() }},
	ClassGDASType:                         {"GDASType", func() model.Object { return NewGDASType() }},
	ClassGetCapabilitiesType:              {"GetCapabilitiesType", func() model.Object { return NewGetCapabilitiesType() }},
	ClassGetDataRequestType:               {"GetDataRequestType", func() model.Object { return NewGetDataRequestType() }},
	ClassGetDataType:                      {"GetDataType", func() model.Object { return NewGetDataType() }},
	ClassGetDataXMLType:                   {"GetDataXMLType", func() model.Object { return NewGetDataXMLType() }},
	ClassJoinAbilitiesType:                {"JoinAbilitiesType", func() model.Object { return NewJoinAbilitiesType() }},
	ClassJoinDataResponseType:             {"JoinDataResponseType", func() model.Object { return NewJoinDataResponseType() }},
	ClassJoinDataType:                     {"JoinDataType", func() model.Object { return NewJoinDataType() }},
	ClassJoinedOutputsType:                {"JoinedOutputsType", func() model.Object { return NewJoinedOutputsType() }},
	ClassKType:                            {"KType", func() model.Object { return NewKType() }},
	ClassShortForm:                        {"ShortForm", func() model.Object { return NewShortForm() }},
	ClassLongForm:                         {"LongForm", func() model.Object { return NewLongForm() }},
	ClassLanguagesType:                    {"LanguagesType", func() model.Object { return NewLanguagesType() }},
	ClassMapStylingType:                   {"MapStylingType", func() model.Object { return NewMapStylingType() }},
	ClassMeasureCountExceptions:           {"MeasureCountExceptions", func() model.Object { return NewMeasureCountExceptions() }},
	ClassMeasureType:                      {"MeasureType", func() model.Object { return NewMeasureType() }},
	ClassMechanismType:                    {"MechanismType", func() model.Object { return NewMechanismType() }},
	ClassNominalOrdinalExceptions:         {"NominalOrdinalExceptions", func() model.Object { return NewNominalOrdinalExceptions() }},
	ClassNominalType:                      {"NominalType", func() model.Object { return NewNominalType() }},
	ClassNullType:                         {"NullType", func() model.Object { return NewNullType() }},
	ClassNullType1:                        {"NullType1", func() model.Object { return NewNullType1() }},
	ClassOrdinalType:                      {"OrdinalType", func() model.Object { return NewOrdinalType() }},
	ClassOutputMechanismsType:             {"OutputMechanismsType", func() model.Object { return NewOutputMechanismsType() }},
	ClassOutputStylingsType:               {"OutputStylingsType", func() model.Object { return NewOutputStylingsType() }},
	ClassOutputStylingsType1:              {"OutputStylingsType1", func() model.Object { return NewOutputStylingsType1() }},
	ClassOutputType:                       {"OutputType", func() model.Object { return NewOutputType() }},
	ClassParameterType:                    {"ParameterType", func() model.Object { return NewParameterType() }},
	ClassReferenceDateType:                {"ReferenceDateType", func() model.Object { return NewReferenceDateType() }},
	ClassRequestBaseType:                  {"RequestBaseType", func() model.Object { return NewRequestBaseType() }},
	ClassResourceType:                     {"ResourceType", func() model.Object { return NewResourceType() }},
	ClassRowsetType:                       {"RowsetType", func() model.Object { return NewRowsetType() }},
	ClassRowsetType1:                      {"RowsetType1", func() model.Object { return NewRowsetType1() }},
	ClassRowType:                          {"RowType", func() model.Object { return NewRowType() }},
	ClassRowType1:                         {"RowType1", func() model.Object { return NewRowType1() }},
	ClassSpatialFrameworksType:            {"SpatialFrameworksType", func() model.Object { return NewSpatialFrameworksType() }},
	ClassStatusType:                       {"StatusType", func() model.Object { return NewStatusType() }},
	ClassStylingType:                      {"StylingType", func() model.Object { return NewStylingType() }},
	ClassTjsCapabilitiesType:              {"TjsCapabilitiesType", func() model.Object { return NewTjsCapabilitiesType() }},
	ClassUncertaintyType:                  {"UncertaintyType", func() model.Object { return NewUncertaintyType() }},
	ClassUOMType:                          {"UOMType", func() model.Object { return NewUOMType() }},
	ClassValuesType:                       {"ValuesType", func() model.Object { return NewValuesType() }},
	ClassValueType:                        {"ValueType", func() model.Object { return NewValueType() }},
	ClassValueType1:                       {"ValueType1", func() model.Object { return NewValueType1() }},
	ClassVType:                            {"VType", func() model.Object { return NewVType() }},
	ClassWSDLType:                         {"WSDLType", func() model.Object { return NewWSDLType() }},
}

// String returns the schema type name of the classifier.
func (id ClassifierID) String() string {
	if id < 0 || id >= classifierCount {
		return fmt.Sprintf("ClassifierID(%d)", int(id))
	}
	return classTable[id].name
}

// Classifiers returns every classifier ID in order.
func Classifiers() []ClassifierID {
	ids := make([]ClassifierID, classifierCount)
	for i := range ids {
		ids[i] = ClassifierID(i)
	}
	return ids
}

// ClassifierByName resolves a schema type name.
func ClassifierByName(name string) (ClassifierID, bool) {
	for i, e := range classTable {
		if e.name == name {
			return ClassifierID(i), true
		}
	}
	return -1, false
}

func NewAbstractType() *AbstractType { return &AbstractType{} }

func NewAcceptVersionsType() *AcceptVersionsType { return &AcceptVersionsType{} }

func NewAttributeDataType() *AttributeDataType { return &AttributeDataType{} }

func NewAttributesType() *AttributesType { return &AttributesType{} }

func NewBoundingCoordinatesType() *BoundingCoordinatesType {
	return &BoundingCoordinatesType{}
}

func NewClassesType() *ClassesType { return &ClassesType{} }

func NewClassesType1() *ClassesType1 { return &ClassesType1{} }

func NewColumnsetType() *ColumnsetType { return &ColumnsetType{} }

func NewColumnType() *ColumnType { return &ColumnType{} }

func NewColumnType1() *ColumnType1 { return &ColumnType1{} }

func NewColumnType2() *ColumnType2 { return &ColumnType2{} }

func NewCountType() *CountType { return &CountType{} }

func NewDataDescriptionsType() *DataDescriptionsType { return &DataDescriptionsType{} }

func NewDataInputsType() *DataInputsType { return &DataInputsType{} }

func NewDatasetDescriptionsType() *DatasetDescriptionsType {
	return &DatasetDescriptionsType{}
}

func NewDatasetType() *DatasetType { return &DatasetType{} }

func NewDatasetType1() *DatasetType1 { return &DatasetType1{} }

func NewDatasetType2() *DatasetType2 { return &DatasetType2{} }

func NewDatasetType3() *DatasetType3 { return &DatasetType3{} }

func NewDescribeDataRequestType() *DescribeDataRequestType {
	return &DescribeDataRequestType{}
}

func NewDescribeDatasetsRequestType() *DescribeDatasetsRequestType {
	return &DescribeDatasetsRequestType{}
}

func NewDescribeDatasetsType() *DescribeDatasetsType { return &DescribeDatasetsType{} }

func NewDescribeDataType() *DescribeDataType { return &DescribeDataType{} }

func NewDescribeFrameworkKeyType() *DescribeFrameworkKeyType {
	return &DescribeFrameworkKeyType{}
}

func NewDescribeFrameworksType() *DescribeFrameworksType { return &DescribeFrameworksType{} }

func NewDescribeKeyType() *DescribeKeyType { return &DescribeKeyType{} }

func NewDocumentRoot() *DocumentRoot {
	return &DocumentRoot{XMLNSPrefixMap: map[string]string{}, XSISchemaLocation: map[string]string{}}
}

func NewExceptionReportType() *ExceptionReportType { return &ExceptionReportType{} }

func NewFailedType() *FailedType { return &FailedType{} }

func NewFrameworkDatasetDescribeDataType() *FrameworkDatasetDescribeDataType {
	return &FrameworkDatasetDescribeDataType{}
}

func NewFrameworkDescriptionsType() *FrameworkDescriptionsType {
	return &FrameworkDescriptionsType{}
}

func NewFrameworkKeyDescriptionType() *FrameworkKeyDescriptionType {
	return &FrameworkKeyDescriptionType{}
}

func NewFrameworkKeyType() *FrameworkKeyType { return &FrameworkKeyType{} }

func NewFrameworkKeyType1() *FrameworkKeyType1 { return &FrameworkKeyType1{} }

func NewFrameworkType() *FrameworkType { return &FrameworkType{} }

func NewFrameworkType1() *FrameworkType1 { return &FrameworkType1{} }

func NewFrameworkType2() *FrameworkType2 { return &FrameworkType2{} }

func NewFrameworkType3() *FrameworkType3 { return &FrameworkType3{} }

func NewFrameworkType4() *FrameworkType4 { return &FrameworkType4{} }

func NewGDASType() *GDASType { return &GDASType{} }

func NewGetCapabilitiesType() *GetCapabilitiesType { return &GetCapabilitiesType{} }

func NewGetDataRequestType() *GetDataRequestType { return &GetDataRequestType{} }

func NewGetDataType() *GetDataType { return &GetDataType{} }

func NewGetDataXMLType() *GetDataXMLType { return &GetDataXMLType{} }

func NewJoinAbilitiesType() *JoinAbilitiesType { return &JoinAbilitiesType{} }

func NewJoinDataResponseType() *JoinDataResponseType { return &JoinDataResponseType{} }

func NewJoinDataType() *JoinDataType { return &JoinDataType{} }

func NewJoinedOutputsType() *JoinedOutputsType { return &JoinedOutputsType{} }

func NewKType() *KType { return &KType{} }

func NewShortForm() *ShortForm { return &ShortForm{} }

func NewLongForm() *LongForm { return &LongForm{} }

func NewLanguagesType() *LanguagesType { return &LanguagesType{} }

func NewMapStylingType() *MapStylingType { return &MapStylingType{} }

func NewMeasureCountExceptions() *MeasureCountExceptions { return &MeasureCountExceptions{} }

func NewMeasureType() *MeasureType { return &MeasureType{} }

func NewMechanismType() *MechanismType { return &MechanismType{} }

func NewNominalOrdinalExceptions() *NominalOrdinalExceptions {
	return &NominalOrdinalExceptions{}
}

func NewNominalType() *NominalType { return &NominalType{} }

func NewNullType() *NullType { return &NullType{} }

func NewNullType1() *NullType1 { return &NullType1{} }

func NewOrdinalType() *OrdinalType { return &OrdinalType{} }

func NewOutputMechanismsType() *OutputMechanismsType { return &OutputMechanismsType{} }

func NewOutputStylingsType() *OutputStylingsType { return &OutputStylingsType{} }

func NewOutputStylingsType1() *OutputStylingsType1 { return &OutputStylingsType1{} }

func NewOutputType() *OutputType { return &OutputType{} }

func NewParameterType() *ParameterType { return &ParameterType{} }

func NewReferenceDateType() *ReferenceDateType { return &ReferenceDateType{} }

func NewRequestBaseType() *RequestBaseType { return &RequestBaseType{} }

func NewResourceType() *ResourceType { return &ResourceType{} }

func NewRowsetType() *RowsetType { return &RowsetType{} }

func NewRowsetType1() *RowsetType1 { return &RowsetType1{} }

func NewRowType() *RowType { return &RowType{} }

func NewRowType1() *RowType1 { return &RowType1{} }

func NewSpatialFrameworksType() *SpatialFrameworksType { return &SpatialFrameworksType{} }

func NewStatusType() *StatusType { return &StatusType{} }

func NewStylingType() *StylingType { return &StylingType{} }

func NewTjsCapabilitiesType() *TjsCapabilitiesType { return &TjsCapabilitiesType{} }

func NewUncertaintyType() *UncertaintyType { return &UncertaintyType{} }

func NewUOMType() *UOMType { return &UOMType{} }

func NewValuesType() *ValuesType { return &ValuesType{} }

func NewValueType() *ValueType { return &ValueType{} }

func NewValueType1() *ValueType1 { return &ValueType1{} }

func NewVType() *VType { return &VType{} }

func NewWSDLType() *WSDLType { return &WSDLType{} }
