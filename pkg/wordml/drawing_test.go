package wordml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawingInlineXML(t *testing.T) {
	r := NewRun().AddDrawing(NewDrawing().WithPic(NewPic("rId5", 320, 240)))
	got, err := buildString(r)
	require.NoError(t, err)
	want := `<w:r><w:rPr /><w:drawing>` +
		`<wp:inline distT="0" distB="0" distL="0" distR="0">` +
		`<wp:extent cx="3048000" cy="2286000" />` +
		`<wp:effectExtent b="0" l="0" r="0" t="0" />` +
		`<wp:docPr id="1" name="Figure" descr="" />` +
		`<wp:cNvGraphicFramePr>` +
		`<a:graphicFrameLocks xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" noChangeAspect="1" />` +
		`</wp:cNvGraphicFramePr>` +
		`<a:graphic xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">` +
		`<a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">` +
		`<pic:pic xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">` +
		`<pic:nvPicPr><pic:cNvPr id="0" name="" />` +
		`<pic:cNvPicPr><a:picLocks noChangeAspect="1" noChangeArrowheads="1" /></pic:cNvPicPr>` +
		`</pic:nvPicPr>` +
		`<pic:blipFill><a:blip r:embed="rId5" /><a:srcRect />` +
		`<a:stretch><a:fillRect /></a:stretch></pic:blipFill>` +
		`<pic:spPr bwMode="auto"><a:xfrm rot="0"><a:off x="0" y="0" />` +
		`<a:ext cx="3048000" cy="2286000" /></a:xfrm>` +
		`<a:prstGeom prst="rect"><a:avLst /></a:prstGeom></pic:spPr>` +
		`</pic:pic></a:graphicData></a:graphic>` +
		`</wp:inline></w:drawing></w:r>`
	assert.Equal(t, want, got)
}

func TestDrawingFloatingWrapModes(t *testing.T) {
	anchored := NewDrawing().WithPic(NewPic("rId5", 10, 10).AsFloating())
	got, err := buildString(anchored)
	require.NoError(t, err)
	assert.Contains(t, got, `<wp:anchor `)
	assert.Contains(t, got, `<wp:wrapSquare wrapText="bothSides" />`)
	assert.Contains(t, got, `<wp:positionH relativeFrom="margin"><wp:posOffset>0</wp:posOffset></wp:positionH>`)

	overlapping := NewDrawing().WithPic(NewPic("rId5", 10, 10).AsFloating().Overlapping())
	got, err = buildString(overlapping)
	require.NoError(t, err)
	assert.Contains(t, got, `<wp:wrapNone />`)
	assert.NotContains(t, got, "wrapSquare")
	assert.Contains(t, got, `allowOverlap="1"`)
}

func TestDrawingPositionAlign(t *testing.T) {
	pic := NewPic("rId9", 10, 10).AsFloating().WithPositionH(PositionAlign("center"))
	got, err := buildString(NewDrawing().WithPic(pic))
	require.NoError(t, err)
	assert.Contains(t, got, `<wp:positionH relativeFrom="margin"><wp:align>center</wp:align></wp:positionH>`)
}

func TestDrawingRotationScalesTo60000ths(t *testing.T) {
	pic := NewPic("rId5", 10, 10).WithRotation(90)
	got, err := buildString(NewDrawing().WithPic(pic))
	require.NoError(t, err)
	assert.Contains(t, got, `<a:xfrm rot="5400000">`)
}

func TestDrawingTextBoxHasNoWriter(t *testing.T) {
	d := Drawing{TextBox: &TextBox{}}
	_, err := buildString(d)
	require.Error(t, err)
	var unsupported *UnsupportedError
	assert.ErrorAs(t, err, &unsupported)

	_, err = buildString(NewDrawing())
	require.Error(t, err)
	assert.ErrorAs(t, err, &unsupported)
}

func TestReadDrawingInlinePic(t *testing.T) {
	el := parseFragment(t, `<drawing><wp:inline xmlns:wp="x" distT="10" distB="20" distL="30" distR="40">`+
		`<wp:extent cx="3048000" cy="2286000"/>`+
		`<wp:docPr id="2" name="Figure" descr="chart"/>`+
		`<a:graphic xmlns:a="y"><a:graphicData>`+
		`<pic:pic xmlns:pic="z"><pic:blipFill><a:blip r:embed="rId8"/></pic:blipFill>`+
		`<pic:spPr><a:xfrm rot="5400000"/></pic:spPr></pic:pic>`+
		`</a:graphicData></a:graphic></wp:inline></drawing>`)
	child := readDrawing(el)
	require.NotNil(t, child)
	d, ok := child.(Drawing)
	require.True(t, ok)
	require.NotNil(t, d.Pic)
	assert.Equal(t, "rId8", d.Pic.RelationshipID)
	assert.False(t, d.Pic.Floating)
	assert.Equal(t, 3048000, d.Pic.Cx)
	assert.Equal(t, 2286000, d.Pic.Cy)
	assert.Equal(t, 10, d.Pic.DistT)
	assert.Equal(t, 90, d.Pic.Rotation)
	assert.Equal(t, "chart", d.Pic.Description)
	// The writer's synthesized name reads back as unset.
	assert.Equal(t, "", d.Pic.Name)
}

func TestReadDrawingAnchorAttributes(t *testing.T) {
	el := parseFragment(t, `<drawing><anchor simplePos="0" allowOverlap="1" layoutInCell="1" relativeHeight="190500">`+
		`<simplePos x="100" y="200"/>`+
		`<positionH relativeFrom="page"><posOffset>914400</posOffset></positionH>`+
		`<positionV relativeFrom="paragraph"><align>top</align></positionV>`+
		`<pic><blipFill><blip embed="rId3"/></blipFill></pic>`+
		`</anchor></drawing>`)
	child := readDrawing(el)
	require.NotNil(t, child)
	d := child.(Drawing)
	require.NotNil(t, d.Pic)
	assert.True(t, d.Pic.Floating)
	assert.True(t, d.Pic.AllowOverlap)
	assert.True(t, d.Pic.LayoutInCell)
	assert.Equal(t, 190500, d.Pic.RelativeHeight)
	assert.Equal(t, 100, d.Pic.SimplePosX)
	assert.Equal(t, "page", d.Pic.RelativeFromH)
	assert.Equal(t, 914400, d.Pic.PositionH.Offset)
	assert.Equal(t, "top", d.Pic.PositionV.Align)
}

func TestReadDrawingTextBox(t *testing.T) {
	el := parseFragment(t, `<drawing><inline>`+
		`<graphic><graphicData><wps:wsp xmlns:wps="x">`+
		`<wps:txbx><w:txbxContent xmlns:w="y"><w:p><w:r><w:t>boxed</w:t></w:r></w:p></w:txbxContent></wps:txbx>`+
		`</wps:wsp></graphicData></graphic>`+
		`</inline></drawing>`)
	child := readDrawing(el)
	require.NotNil(t, child)
	d := child.(Drawing)
	require.NotNil(t, d.TextBox)
	require.Len(t, d.TextBox.Children, 1)
	p, ok := d.TextBox.Children[0].(Paragraph)
	require.True(t, ok)
	assert.Equal(t, "boxed", p.PlainText())
}

func TestReadDrawingBlipWithoutEmbedDropped(t *testing.T) {
	el := parseFragment(t, `<drawing><inline><pic><blipFill><blip/></blipFill></pic></inline></drawing>`)
	assert.Nil(t, readDrawing(el))
}
