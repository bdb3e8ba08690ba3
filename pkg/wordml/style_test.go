package wordml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleXMLChildOrder(t *testing.T) {
	s := NewStyle("Heading1", StyleTypeParagraph).
		WithName("heading 1").
		WithBasedOn("Normal").
		WithNext("Normal").
		WithQFormat().
		Bold()
	got, err := s.XML()
	require.NoError(t, err)
	want := `<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1" />` +
		`<w:rPr><w:b /><w:bCs /></w:rPr><w:pPr><w:rPr /></w:pPr>` +
		`<w:next w:val="Normal" /><w:qFormat /><w:basedOn w:val="Normal" /></w:style>`
	assert.Equal(t, want, got)
}

func TestStyleTypeDefaultsToParagraph(t *testing.T) {
	s := Style{StyleID: "X"}
	got, err := s.XML()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, `<w:style w:type="paragraph" w:styleId="X">`), got)
}

func TestTableStyleWritesCellAndTableBlocks(t *testing.T) {
	s := NewStyle("TableNormal", StyleTypeTable).WithName("Normal Table")
	got, err := s.XML()
	require.NoError(t, err)
	assert.Contains(t, got, `<w:tcPr />`)
	assert.Contains(t, got, `<w:tblPr>`)
	// Cell block precedes the table block.
	assert.Less(t, strings.Index(got, "<w:tcPr"), strings.Index(got, "<w:tblPr"), got)
}

func TestDocDefaultsXML(t *testing.T) {
	got, err := buildString(NewDocDefaults())
	require.NoError(t, err)
	want := `<w:docDefaults><w:rPrDefault><w:rPr /></w:rPrDefault>` +
		`<w:pPrDefault><w:pPr><w:rPr /></w:pPr></w:pPrDefault></w:docDefaults>`
	assert.Equal(t, want, got)
}

func TestStylesPartXML(t *testing.T) {
	s := NewStyles().Add(NewStyle("Normal", StyleTypeParagraph).WithName("Normal"))
	got, err := s.XML()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got,
		`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
			`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`), got)
	assert.Contains(t, got, `<w:docDefaults>`)
	// Defaults always precede the style list.
	assert.Less(t, strings.Index(got, "<w:docDefaults>"), strings.Index(got, `<w:style `), got)
}

func TestReadStyles(t *testing.T) {
	xml := `<?xml version="1.0"?>` +
		`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:docDefaults><w:rPrDefault><w:rPr><w:sz w:val="21"/></w:rPr></w:rPrDefault></w:docDefaults>` +
		`<w:style w:type="character" w:styleId="Emphasis">` +
		`<w:name w:val="Emphasis"/><w:basedOn w:val="DefaultParagraphFont"/><w:qFormat/>` +
		`<w:rPr><w:i/></w:rPr>` +
		`</w:style>` +
		`<w:latentStyles/>` +
		`</w:styles>`
	s, err := ReadStyles(strings.NewReader(xml))
	require.NoError(t, err)
	require.NotNil(t, s.DocDefaults.RunProperty.Size)
	assert.Equal(t, 21, *s.DocDefaults.RunProperty.Size)
	require.Len(t, s.Styles, 1)
	st, ok := s.Find("Emphasis")
	require.True(t, ok)
	assert.Equal(t, StyleTypeCharacter, st.StyleType)
	assert.Equal(t, "Emphasis", st.Name)
	require.NotNil(t, st.BasedOn)
	assert.Equal(t, "DefaultParagraphFont", *st.BasedOn)
	assert.True(t, st.QFormat)
	require.NotNil(t, st.RunProperty.Italic)
}

func TestReadStylesUnknownTypeDefaultsToParagraph(t *testing.T) {
	xml := `<styles><style type="weird" styleId="X"><name val="X"/></style></styles>`
	s, err := ReadStyles(strings.NewReader(xml))
	require.NoError(t, err)
	require.Len(t, s.Styles, 1)
	assert.Equal(t, StyleTypeParagraph, s.Styles[0].StyleType)
}

func TestReadStylesWrongRootFails(t *testing.T) {
	_, err := ReadStyles(strings.NewReader(`<w:document xmlns:w="x"/>`))
	require.Error(t, err)
	var missing *MissingPartError
	assert.ErrorAs(t, err, &missing)
}
