package wordml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseXMLData(t *testing.T) {
	xml := `<w:root w:kind="demo"><w:child a="1">  text  </w:child><other/></w:root>`
	d, err := ParseXMLData(strings.NewReader(xml))
	require.NoError(t, err)
	assert.Equal(t, "w:root", d.Name)
	v, ok := d.Attribute("w:kind")
	require.True(t, ok)
	assert.Equal(t, "demo", v)
	require.Len(t, d.Children, 2)
	assert.Equal(t, "w:child", d.Children[0].Name)
	assert.Equal(t, "text", d.Children[0].Data)
}

func TestXMLDataFindFirst(t *testing.T) {
	d, err := ParseXMLData(strings.NewReader(`<a><b><c hit="yes"/></b><c hit="no"/></a>`))
	require.NoError(t, err)
	c, ok := d.FindFirst("c")
	require.True(t, ok)
	v, _ := c.Attribute("hit")
	assert.Equal(t, "yes", v)

	_, ok = d.FindFirst("missing")
	assert.False(t, ok)
}

func TestXMLDataString(t *testing.T) {
	d, err := ParseXMLData(strings.NewReader(`<a x="1"><b>hi</b></a>`))
	require.NoError(t, err)
	assert.Equal(t, "a x=1\n  b hi\n", d.String())
}

func TestParseXMLDataErrors(t *testing.T) {
	_, err := ParseXMLData(strings.NewReader(`<unclosed`))
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}
