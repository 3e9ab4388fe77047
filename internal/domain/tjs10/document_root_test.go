package tjs10

import (
	"encoding/xml"
	"errors"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geotjs/internal/core/model"
	"geotjs/internal/domain/ows"
)

const joinAbilitiesXML = `<?xml version="1.0" encoding="UTF-8"?>
<tjs:JoinAbilities xmlns:tjs="http://www.opengis.net/tjs/1.0"
    xmlns:ows="http://www.opengis.net/ows/1.1"
    xmlns:xlink="http://www.w3.org/1999/xlink"
    xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
    xsi:schemaLocation="http://www.opengis.net/tjs/1.0 http://schemas.opengis.net/tjs/1.0/tjsDescribeJoinAbilities_response.xsd"
    capabilities="http://example.org/tjs?request=GetCapabilities"
    service="TJS" version="1.0" xml:lang="en" updateSupported="true">
  <tjs:SpatialFrameworks>
    <tjs:Framework>
      <tjs:FrameworkURI>http://example.org/frameworks/provinces</tjs:FrameworkURI>
      <tjs:Organization>Example Org</tjs:Organization>
      <tjs:Title>Provinces</tjs:Title>
      <tjs:Abstract>Provincial <b>boundaries</b></tjs:Abstract>
      <tjs:ReferenceDate startDate="2001">2006</tjs:ReferenceDate>
      <tjs:Version>1.0</tjs:Version>
      <tjs:FrameworkKey>
        <tjs:Column name="PR" type="http://www.w3.org/TR/xmlschema-2/#string" length="2" decimals="0"/>
      </tjs:FrameworkKey>
      <tjs:BoundingCoordinates>
        <tjs:North>83.1</tjs:North>
        <tjs:South>41.7</tjs:South>
        <tjs:East>-52.6</tjs:East>
        <tjs:West>-141.0</tjs:West>
      </tjs:BoundingCoordinates>
    </tjs:Framework>
  </tjs:SpatialFrameworks>
  <tjs:AttributeLimit>10</tjs:AttributeLimit>
  <tjs:OutputMechanisms>
    <tjs:Mechanism>
      <tjs:Identifier>WMS</tjs:Identifier>
      <tjs:Title>Web Map Service</tjs:Title>
      <tjs:Abstract>Map images</tjs:Abstract>
      <tjs:Reference>http://www.opengeospatial.org/standards/wms</tjs:Reference>
    </tjs:Mechanism>
  </tjs:OutputMechanisms>
</tjs:JoinAbilities>`

func TestDocumentRoot_DecodeJoinAbilities(t *testing.T) {
	doc := NewDocumentRoot()
	require.NoError(t, xml.Unmarshal([]byte(joinAbilitiesXML), doc))

	name, value := doc.Element()
	assert.Equal(t, "JoinAbilities", name)
	ja, ok := value.(*JoinAbilitiesType)
	require.True(t, ok)

	assert.Equal(t, "http://example.org/tjs?request=GetCapabilities", ja.Capabilities)
	assert.Equal(t, "en", ja.Lang)
	assert.True(t, ja.Service.IsSet())
	assert.True(t, ja.UpdateSupported.IsSet())
	assert.True(t, ja.UpdateSupported.Get())
	assert.Equal(t, int64(10), ja.AttributeLimit.Int64())

	fw := ja.SpatialFrameworks.Framework[0]
	assert.Equal(t, "Provincial boundaries", fw.Abstract.Text())
	assert.Equal(t, "2001", fw.ReferenceDate.StartDate)
	assert.Equal(t, []string{"PR"}, fw.FrameworkKey.Names())

	col := fw.FrameworkKey.Column[0]
	assert.Equal(t, TypeString, col.Type)
	assert.Equal(t, int64(2), col.Length.Int64())
	assert.True(t, fw.BoundingCoordinates.North.Equal(decimal.RequireFromString("83.1")))
	assert.True(t, fw.BoundingCoordinates.Contains(decimal.NewFromInt(45), decimal.NewFromInt(-75)))

	// decoded trees are linked to their containers
	assert.Same(t, ja.SpatialFrameworks, fw.Container())
	assert.Same(t, doc, model.Root(col))
	assert.Equal(t, []string{"JoinAbilities", "SpatialFrameworks", "Framework", "FrameworkKey", "Column"}, model.Path(col))

	assert.Equal(t, ows.Namespace, doc.XMLNSPrefixMap["ows"])
	assert.Equal(t, "http://schemas.opengis.net/tjs/1.0/tjsDescribeJoinAbilities_response.xsd",
		doc.XSISchemaLocation[Namespace])
}

func TestDocumentRoot_RoundTrip(t *testing.T) {
	doc := NewDocumentRoot()
	require.NoError(t, xml.Unmarshal([]byte(joinAbilitiesXML), doc))

	first, err := xml.Marshal(doc)
	require.NoError(t, err)

	again := NewDocumentRoot()
	require.NoError(t, xml.Unmarshal(first, again))
	second, err := xml.Marshal(again)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Equal(t, doc.XMLNSPrefixMap, again.XMLNSPrefixMap)
	assert.Equal(t, doc.XSISchemaLocation, again.XSISchemaLocation)
	assert.Contains(t, string(first), `<JoinAbilities xmlns="http://www.opengis.net/tjs/1.0"`)
	assert.Contains(t, string(first), `xml:lang="en"`)
}

func TestDocumentRoot_BuildAndEncodeRequest(t *testing.T) {
	req := NewGetDataType()
	req.FrameworkURI = "http://example.org/frameworks/provinces"
	req.DatasetURI = "http://example.org/datasets/population"
	req.Attributes = "POP2006, POP2001"
	req.Version = RequestVersion10
	require.NoError(t, model.SetAttr(req, &req.Aid, true))

	doc, err := NewDocument("GetData", req)
	require.NoError(t, err)

	out, err := xml.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), `version="1.0"`)
	assert.Contains(t, string(out), `aid="true"`)
	// the service attribute is unset and therefore omitted
	assert.NotContains(t, string(out), `service=`)

	back := NewDocumentRoot()
	require.NoError(t, xml.Unmarshal(out, back))
	got := back.GetData
	require.NotNil(t, got)
	assert.Equal(t, req.DatasetURI, got.DatasetURI)
	assert.Equal(t, []string{"POP2006", "POP2001"}, got.AttributeNames())
	assert.True(t, got.Aid.Get())
	assert.False(t, got.Service.IsSet())
	assert.Equal(t, "TJS", got.Service.Get())
}

func TestDocumentRoot_SetElementClearsOtherSlots(t *testing.T) {
	doc := NewDocumentRoot()

	require.NoError(t, doc.SetElement("Title", "Provinces"))
	require.NotNil(t, doc.Title)

	var got model.Recorder
	doc.Observe(&got)

	limit := big.NewInt(25)
	require.NoError(t, doc.SetElement("AttributeLimit", limit))
	assert.Nil(t, doc.Title)
	assert.Same(t, limit, doc.AttributeLimit)

	require.Len(t, got.Notifications, 2)
	assert.Equal(t, model.KindUnset, got.Notifications[0].Kind)
	assert.Equal(t, "Title", got.Notifications[0].Feature)
	assert.Equal(t, model.KindSet, got.Notifications[1].Kind)

	// a mismatched value leaves the current slot alone
	err := doc.SetElement("Capabilities", NewGDASType())
	assert.True(t, errors.Is(err, model.ErrTypeMismatch))
	assert.NotNil(t, doc.AttributeLimit)

	err = doc.SetElement("Unknown", "x")
	assert.True(t, errors.Is(err, ErrUnknownElement))
}

func TestDocumentRoot_DataClassDefault(t *testing.T) {
	doc := NewDocumentRoot()
	assert.Equal(t, DataClassNominal, doc.GetDataClass())

	require.NoError(t, doc.SetElement("DataClass", DataClassCount))
	assert.Equal(t, DataClassCount, doc.GetDataClass())
}

func TestDocumentRoot_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unknown root", `<tjs:Nope xmlns:tjs="http://www.opengis.net/tjs/1.0"/>`, ErrUnknownElement},
		{"foreign namespace", `<GetData xmlns="http://www.opengis.net/wfs"/>`, ErrUnknownElement},
		{"bad enumerator", `<DescribeKey version="9"><FrameworkURI>x</FrameworkURI></DescribeKey>`, ErrInvalidEnumerator},
		{"bad boolean", `<GetData aid="perhaps"/>`, model.ErrTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := xml.Unmarshal([]byte(tt.src), NewDocumentRoot())
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestDocumentRoot_EmptyCannotEncode(t *testing.T) {
	_, err := xml.Marshal(NewDocumentRoot())
	assert.True(t, errors.Is(err, ErrUnknownElement))
}

func TestElementNames(t *testing.T) {
	names := ElementNames()
	assert.Len(t, names, 49)
	assert.Equal(t, "Abstract", names[0])
	assert.Equal(t, "Version", names[len(names)-1])
}

func TestElementFor(t *testing.T) {
	name, ok := ElementFor(NewGDASType())
	require.True(t, ok)
	assert.Equal(t, "GDAS", name)

	name, ok = ElementFor(NewRequestBaseType())
	require.True(t, ok)
	assert.Equal(t, "DescribeJoinAbilities", name)

	_, ok = ElementFor(NewColumnType1())
	assert.False(t, ok)
}
