package wordml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentPrefix = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:document xmlns:o="urn:schemas-microsoft-com:office:office"` +
	` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
	` xmlns:v="urn:schemas-microsoft-com:vml"` +
	` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
	` xmlns:w10="urn:schemas-microsoft-com:office:word"` +
	` xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"` +
	` xmlns:wps="http://schemas.microsoft.com/office/word/2010/wordprocessingShape"` +
	` xmlns:wpg="http://schemas.microsoft.com/office/word/2010/wordprocessingGroup"` +
	` xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006"` +
	` xmlns:wp14="http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing"` +
	` xmlns:w14="http://schemas.microsoft.com/office/word/2010/wordml"` +
	` xmlns:w15="http://schemas.microsoft.com/office/word/2012/wordml"` +
	` mc:Ignorable="w14 wp14"><w:body>`

const defaultSectPr = `<w:sectPr><w:pgSz w:w="11906" w:h="16838" />` +
	`<w:pgMar w:top="1985" w:right="1701" w:bottom="1701" w:left="1701" w:header="851" w:footer="992" w:gutter="0" />` +
	`<w:cols w:space="425" w:num="1" /></w:sectPr>`

func TestDocumentXMLEnvelope(t *testing.T) {
	d := NewDocument().AddParagraph(NewParagraph().AddText("Hello"))
	got, err := d.XML()
	require.NoError(t, err)
	want := documentPrefix +
		`<w:p><w:pPr><w:rPr /></w:pPr><w:r><w:rPr /><w:t xml:space="preserve">Hello</w:t></w:r></w:p>` +
		defaultSectPr +
		`</w:body></w:document>`
	assert.Equal(t, want, got)
}

func TestSectionPropertyHeaderReferenceAndTitlePg(t *testing.T) {
	s := NewSectionProperty().
		WithHeader(HeaderFooterRoleDefault, "rId4", NewHeader()).
		WithHeader(HeaderFooterRoleFirst, "rId5", NewHeader())
	got, err := buildString(s)
	require.NoError(t, err)
	assert.Contains(t, got, `<w:headerReference w:type="default" r:id="rId4" />`)
	assert.Contains(t, got, `<w:headerReference w:type="first" r:id="rId5" />`)
	assert.Contains(t, got, `<w:titlePg />`)
}

func TestSectionPropertyTextDirectionOnlyWhenChanged(t *testing.T) {
	got, err := buildString(NewSectionProperty())
	require.NoError(t, err)
	assert.NotContains(t, got, "w:textDirection")

	got, err = buildString(NewSectionProperty().WithTextDirection("tbRl"))
	require.NoError(t, err)
	assert.Contains(t, got, `<w:textDirection w:val="tbRl" />`)
}

func TestReadDocument(t *testing.T) {
	xml := `<?xml version="1.0"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` +
		`<w:p><w:r><w:t>one</w:t></w:r></w:p>` +
		`<w:tbl><w:tr><w:tc><w:p/></w:tc></w:tr></w:tbl>` +
		`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/><w:titlePg/></w:sectPr>` +
		`</w:body></w:document>`
	d, err := ReadDocument(strings.NewReader(xml))
	require.NoError(t, err)
	require.Len(t, d.Children, 2)
	p, ok := d.Children[0].(Paragraph)
	require.True(t, ok)
	assert.Equal(t, "one", p.PlainText())
	_, ok = d.Children[1].(Table)
	assert.True(t, ok)
	assert.Equal(t, 12240, d.SectionProperty.PageSize.Width)
	assert.Equal(t, 15840, d.SectionProperty.PageSize.Height)
	assert.True(t, d.SectionProperty.TitlePg)
}

func TestReadDocumentWrongRoot(t *testing.T) {
	_, err := ReadDocument(strings.NewReader(`<w:hdr xmlns:w="x"/>`))
	require.Error(t, err)
	var missing *MissingPartError
	assert.ErrorAs(t, err, &missing)
}

func TestReadDocumentMalformedMarkup(t *testing.T) {
	_, err := ReadDocument(strings.NewReader(`<w:document><w:body>`))
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestReadDocumentSectionHeaderReferences(t *testing.T) {
	xml := `<document><body><sectPr>` +
		`<headerReference type="default" id="rId6"/>` +
		`<footerReference type="even" id="rId7"/>` +
		`<headerReference type="bogus" id="rId8"/>` +
		`</sectPr></body></document>`
	d, err := ReadDocument(strings.NewReader(xml))
	require.NoError(t, err)
	require.NotNil(t, d.SectionProperty.HeaderDefault)
	assert.Equal(t, "rId6", d.SectionProperty.HeaderDefault.RID)
	require.NotNil(t, d.SectionProperty.FooterEven)
	assert.Equal(t, "rId7", d.SectionProperty.FooterEven.RID)
	assert.Nil(t, d.SectionProperty.HeaderFirst)
	assert.Nil(t, d.SectionProperty.HeaderEven)
}

func TestHeaderXMLEnvelope(t *testing.T) {
	h := NewHeader().AddParagraph(NewParagraph().AddText("top"))
	got, err := h.XML()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got,
		`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
			`<w:hdr xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`), got)
	assert.Contains(t, got, `mc:Ignorable="w14 wp14"`)
	assert.True(t, strings.HasSuffix(got, `</w:hdr>`), got)
}

func TestFooterXMLEnvelope(t *testing.T) {
	f := NewFooter().AddTable(NewTable())
	got, err := f.XML()
	require.NoError(t, err)
	assert.Contains(t, got, `<w:ftr `)
	assert.Contains(t, got, `<w:tbl>`)
}

func TestReadHeaderAndFooter(t *testing.T) {
	h, err := ReadHeader(strings.NewReader(`<hdr><p><r><t>head</t></r></p><unknown/></hdr>`))
	require.NoError(t, err)
	require.Len(t, h.Children, 1)

	f, err := ReadFooter(strings.NewReader(`<ftr><tbl><tr><tc><p/></tc></tr></tbl></ftr>`))
	require.NoError(t, err)
	require.Len(t, f.Children, 1)
	_, ok := f.Children[0].(Table)
	assert.True(t, ok)
}

func TestTableOfContentsXML(t *testing.T) {
	toc := NewTableOfContents()
	got, err := toc.XML()
	require.NoError(t, err)
	want := `<w:sdt><w:sdtPr><w:rPr /></w:sdtPr><w:sdtContent>` +
		`<w:p><w:pPr><w:rPr /></w:pPr>` +
		`<w:r><w:rPr /><w:fldChar w:fldCharType="begin" w:dirty="true" /></w:r>` +
		`<w:r><w:rPr /><w:instrText>TOC \o &quot;1-3&quot;</w:instrText></w:r>` +
		`<w:r><w:rPr /><w:fldChar w:fldCharType="separate" /></w:r></w:p>` +
		`<w:p><w:pPr><w:rPr /></w:pPr><w:r><w:rPr /><w:fldChar w:fldCharType="end" /></w:r></w:p>` +
		`</w:sdtContent></w:sdt>`
	assert.Equal(t, want, got)
}

func TestCommentsExtendedXML(t *testing.T) {
	ce := NewCommentsExtended().
		Add(NewCommentExtended("12345678").WithDone()).
		Add(NewCommentExtended("9ABCDEF0").WithParentParaID("12345678"))
	got, err := ce.XML()
	require.NoError(t, err)
	assert.Contains(t, got, `<w15:commentEx w15:paraId="12345678" w15:done="1" />`)
	assert.Contains(t, got, `<w15:commentEx w15:paraId="9ABCDEF0" w15:done="0" w15:paraIdParent="12345678" />`)
	assert.Contains(t, got, `mc:Ignorable="w14 w15"`)
}

func TestReadCommentsExtended(t *testing.T) {
	xml := `<w15:commentsEx xmlns:w15="http://schemas.microsoft.com/office/word/2012/wordml">` +
		`<w15:commentEx w15:paraId="AAAA0001" w15:done="1"/>` +
		`<w15:commentEx w15:paraId="AAAA0002" w15:paraIdParent="AAAA0001"/>` +
		`</w15:commentsEx>`
	ce, err := ReadCommentsExtended(strings.NewReader(xml))
	require.NoError(t, err)
	require.Len(t, ce.Children, 2)
	assert.True(t, ce.Children[0].Done)
	require.NotNil(t, ce.Children[1].ParentParaID)
	assert.Equal(t, "AAAA0001", *ce.Children[1].ParentParaID)
}

func TestDocumentWriteMatchesXML(t *testing.T) {
	d := NewDocument().AddParagraph(NewParagraph().AddText("streamed"))
	var buf bytes.Buffer
	require.NoError(t, d.Write(&buf))
	want, err := d.XML()
	require.NoError(t, err)
	assert.Equal(t, want, buf.String())
}
