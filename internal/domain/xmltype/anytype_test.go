package xmltype

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnyType_RoundTrip(t *testing.T) {
	type holder struct {
		XMLName xml.Name `xml:"h"`
		Any     *AnyType `xml:"FilterValue"`
	}

	src := `<h><FilterValue code="x">a <b>bold</b> &amp; c</FilterValue></h>`

	var h holder
	require.NoError(t, xml.Unmarshal([]byte(src), &h))
	require.NotNil(t, h.Any)

	code, ok := h.Any.Attr("code")
	assert.True(t, ok)
	assert.Equal(t, "x", code)
	assert.Equal(t, "a bold & c", h.Any.Text())

	out, err := xml.Marshal(h)
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestNewAnyType_Escapes(t *testing.T) {
	a := NewAnyType("x < y")
	assert.Equal(t, "x &lt; y", a.InnerXML)
	assert.Equal(t, "x < y", a.Text())

	var nilAny *AnyType
	assert.Equal(t, "", nilAny.Text())
}
