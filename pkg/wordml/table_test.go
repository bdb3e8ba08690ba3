package wordml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableXMLDefaults(t *testing.T) {
	tbl := NewTable().WithGrid([]int{100})
	got, err := tbl.XML()
	require.NoError(t, err)
	want := `<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto" /><w:jc w:val="left" />` +
		`<w:tblBorders>` +
		`<w:top w:val="single" w:sz="2" w:space="0" w:color="000000" />` +
		`<w:left w:val="single" w:sz="2" w:space="0" w:color="000000" />` +
		`<w:bottom w:val="single" w:sz="2" w:space="0" w:color="000000" />` +
		`<w:right w:val="single" w:sz="2" w:space="0" w:color="000000" />` +
		`<w:insideH w:val="single" w:sz="2" w:space="0" w:color="000000" />` +
		`<w:insideV w:val="single" w:sz="2" w:space="0" w:color="000000" />` +
		`</w:tblBorders></w:tblPr>` +
		`<w:tblGrid><w:gridCol w:w="100" w:type="dxa" /></w:tblGrid></w:tbl>`
	assert.Equal(t, want, got)
}

func TestTableCellSynthesizesEmptyParagraph(t *testing.T) {
	row := NewTableRow().AddCell(NewTableCell())
	got, err := buildString(row)
	require.NoError(t, err)
	want := `<w:tr><w:trPr />` +
		`<w:tc><w:tcPr /><w:p><w:pPr><w:rPr /></w:pPr></w:p></w:tc></w:tr>`
	assert.Equal(t, want, got)
}

func TestTableCellKeepsExplicitParagraph(t *testing.T) {
	cell := NewTableCell().AddParagraph(NewParagraph().AddText("x"))
	got, err := buildString(cell)
	require.NoError(t, err)
	want := `<w:tc><w:tcPr /><w:p><w:pPr><w:rPr /></w:pPr>` +
		`<w:r><w:rPr /><w:t xml:space="preserve">x</w:t></w:r></w:p></w:tc>`
	assert.Equal(t, want, got)
}

func TestTableCellPropertyXML(t *testing.T) {
	cell := NewTableCell().
		Width(2500, WidthTypeDxa).
		GridSpan(2).
		VMerge(VMergeTypeRestart).
		VAlign("center")
	got, err := buildString(cell)
	require.NoError(t, err)
	want := `<w:tc><w:tcPr><w:tcW w:w="2500" w:type="dxa" /><w:gridSpan w:val="2" />` +
		`<w:vMerge w:val="restart" /><w:vAlign w:val="center" /></w:tcPr>` +
		`<w:p><w:pPr><w:rPr /></w:pPr></w:p></w:tc>`
	assert.Equal(t, want, got)
}

func TestReadTableGridAndRows(t *testing.T) {
	el := parseFragment(t, `<tbl>`+
		`<tblPr><tblW w="5000" type="pct"/><jc val="center"/></tblPr>`+
		`<tblGrid><gridCol w="200"/><gridCol w="300"/></tblGrid>`+
		`<tr><tc><p><r><t>a</t></r></p></tc><tc><p><r><t>b</t></r></p></tc></tr>`+
		`</tbl>`)
	tbl := readTable(el)
	assert.Equal(t, []int{200, 300}, tbl.Grid)
	assert.Equal(t, TableWidth{Width: 5000, Type: WidthTypePct}, tbl.Property.Width)
	assert.Equal(t, Justification("center"), tbl.Property.Justification)
	require.Len(t, tbl.Rows, 1)
	assert.Len(t, tbl.Rows[0].Cells, 2)
	assert.Nil(t, tbl.Property.Borders)
}

func TestReadTableWidthToleratesPercentSuffix(t *testing.T) {
	el := parseFragment(t, `<tblPr><tblW w="50%" type="pct"/></tblPr>`)
	p := readTableProperty(el)
	assert.Equal(t, TableWidth{Width: 50, Type: WidthTypePct}, p.Width)
}

func TestReadCellVMergeDefaultsToContinue(t *testing.T) {
	el := parseFragment(t, `<tcPr><vMerge/></tcPr>`)
	p := readTableCellProperty(el)
	require.NotNil(t, p.VMerge)
	assert.Equal(t, VMergeTypeContinue, *p.VMerge)

	el = parseFragment(t, `<tcPr><vMerge val="restart"/></tcPr>`)
	p = readTableCellProperty(el)
	require.NotNil(t, p.VMerge)
	assert.Equal(t, VMergeTypeRestart, *p.VMerge)
}

func TestReadTableRowProperty(t *testing.T) {
	el := parseFragment(t, `<tr><trPr><trHeight val="240.5" hRule="exact"/><cantSplit/><gridAfter val="1"/></trPr><tc><p/></tc></tr>`)
	row := readTableRow(el)
	require.NotNil(t, row.Property.RowHeight)
	assert.Equal(t, 240.5, *row.Property.RowHeight)
	require.NotNil(t, row.Property.HeightRule)
	assert.Equal(t, "exact", *row.Property.HeightRule)
	assert.True(t, row.Property.CantSplit)
	require.NotNil(t, row.Property.GridAfter)
	assert.Equal(t, 1, *row.Property.GridAfter)
}

func TestReadNestedTable(t *testing.T) {
	el := parseFragment(t, `<tbl><tr><tc><tbl><tr><tc><p><r><t>inner</t></r></p></tc></tr></tbl><p/></tc></tr></tbl>`)
	tbl := readTable(el)
	require.Len(t, tbl.Rows, 1)
	require.Len(t, tbl.Rows[0].Cells, 1)
	cell := tbl.Rows[0].Cells[0]
	require.Len(t, cell.Children, 2)
	_, ok := cell.Children[0].(Table)
	assert.True(t, ok)
}

func TestReadTableDropsUnknownChildren(t *testing.T) {
	el := parseFragment(t, `<tbl><tblPrEx/><tr><tc><p/></tc></tr></tbl>`)
	tbl := readTable(el)
	assert.Len(t, tbl.Rows, 1)
}

func TestReadTablePropertyValueFieldsKeepLastDuplicate(t *testing.T) {
	el := parseFragment(t, `<tblPr>`+
		`<tblW w="2000" type="dxa"/>`+
		`<tblW w="50%" type="pct"/>`+
		`</tblPr>`)
	p := readTableProperty(el)
	assert.Equal(t, 50, p.Width.Width)
	assert.Equal(t, WidthTypePct, p.Width.Type)
}
