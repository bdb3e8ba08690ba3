package wordml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredDataTagXML(t *testing.T) {
	tag := NewStructuredDataTag().
		WithAlias("Title").
		AddParagraph(NewParagraph().AddText("bound"))
	got, err := tag.XML()
	require.NoError(t, err)
	want := `<w:sdt><w:sdtPr><w:rPr /><w:alias w:val="Title" /></w:sdtPr>` +
		`<w:sdtContent><w:p><w:pPr><w:rPr /></w:pPr>` +
		`<w:r><w:rPr /><w:t xml:space="preserve">bound</w:t></w:r></w:p>` +
		`</w:sdtContent></w:sdt>`
	assert.Equal(t, want, got)
}

func TestStructuredDataTagDataBindingXML(t *testing.T) {
	tag := NewStructuredDataTag().WithDataBinding(
		NewDataBinding().
			WithXPath("/root/title").
			WithPrefixMappings("xmlns:ns0='http://example.com'").
			WithStoreItemID("{GUID}"),
	)
	got, err := tag.XML()
	require.NoError(t, err)
	assert.Contains(t, got,
		`<w:dataBinding w:xpath="/root/title"`+
			` w:prefixMappings="xmlns:ns0=&apos;http://example.com&apos;"`+
			` w:storeItemID="{GUID}" />`)
}

func TestReadStructuredDataTag(t *testing.T) {
	el := parseFragment(t, `<sdt>`+
		`<sdtPr><alias val="Region"/><dataBinding xpath="/a/b" storeItemID="{X}"/></sdtPr>`+
		`<sdtContent><p><r><t>content</t></r></p><unknown/></sdtContent>`+
		`</sdt>`)
	tag := readStructuredDataTag(el)
	require.NotNil(t, tag.Property.Alias)
	assert.Equal(t, "Region", *tag.Property.Alias)
	require.NotNil(t, tag.Property.DataBinding)
	require.NotNil(t, tag.Property.DataBinding.XPath)
	assert.Equal(t, "/a/b", *tag.Property.DataBinding.XPath)
	require.Len(t, tag.Children, 1)
	p, ok := tag.Children[0].(Paragraph)
	require.True(t, ok)
	assert.Equal(t, "content", p.PlainText())
}

func TestReadStructuredDataTagNested(t *testing.T) {
	el := parseFragment(t, `<sdt><sdtPr/><sdtContent>`+
		`<sdt><sdtPr/><sdtContent>`+
		`<sdt><sdtPr/><sdtContent><p><pPr><numPr><ilvl val="0"/><numId val="1"/></numPr></pPr></p></sdtContent></sdt>`+
		`</sdtContent></sdt>`+
		`</sdtContent></sdt>`)
	outer := readStructuredDataTag(el)
	require.Len(t, outer.Children, 1)
	mid, ok := outer.Children[0].(StructuredDataTag)
	require.True(t, ok)
	require.Len(t, mid.Children, 1)
	inner, ok := mid.Children[0].(StructuredDataTag)
	require.True(t, ok)
	require.Len(t, inner.Children, 1)

	// The numbering flag folds all the way out.
	assert.True(t, inner.HasNumbering)
	assert.True(t, mid.HasNumbering)
	assert.True(t, outer.HasNumbering)
}

func TestReadStructuredDataTagAbsorbsCommentReferenceRun(t *testing.T) {
	el := parseFragment(t, `<sdt><sdtPr/><sdtContent>`+
		`<commentRangeStart id="2"/>`+
		`<r><t>flagged</t></r>`+
		`<commentRangeEnd id="2"/>`+
		`<r><rPr/><commentReference id="2"/></r>`+
		`</sdtContent></sdt>`)
	tag := readStructuredDataTag(el)
	require.Len(t, tag.Children, 3)
	_, ok := tag.Children[2].(CommentRangeEnd)
	assert.True(t, ok)
}
