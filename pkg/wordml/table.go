package wordml

import "strconv"

// TableWidth is a measured width plus its unit tag.
type TableWidth struct {
	Width int
	Type  WidthType
}

func (w TableWidth) buildAs(b *XMLBuilder, tag string) {
	b.Empty(tag,
		attr("w:w", strconv.Itoa(w.Width)),
		attr("w:type", string(w.Type)),
	)
}

// TableBorder is one edge of a table or cell border set.
type TableBorder struct {
	Val   string
	Size  int
	Space int
	Color string
}

// NewTableBorder returns the default thin single border.
func NewTableBorder() TableBorder {
	return TableBorder{Val: "single", Size: 2, Space: 0, Color: "000000"}
}

func (t TableBorder) buildAs(b *XMLBuilder, tag string) {
	b.Empty(tag,
		attr("w:val", t.Val),
		attr("w:sz", strconv.Itoa(t.Size)),
		attr("w:space", strconv.Itoa(t.Space)),
		attr("w:color", t.Color),
	)
}

// TableBorders is the six-edge border set of a table.
type TableBorders struct {
	Top     *TableBorder
	Left    *TableBorder
	Bottom  *TableBorder
	Right   *TableBorder
	InsideH *TableBorder
	InsideV *TableBorder
}

// NewTableBorders returns all six edges set to the default single border.
func NewTableBorders() TableBorders {
	def := NewTableBorder()
	return TableBorders{
		Top: &def, Left: &def, Bottom: &def, Right: &def,
		InsideH: &def, InsideV: &def,
	}
}

func (t TableBorders) build(b *XMLBuilder) {
	b.Open("w:tblBorders")
	if t.Top != nil {
		t.Top.buildAs(b, "w:top")
	}
	if t.Left != nil {
		t.Left.buildAs(b, "w:left")
	}
	if t.Bottom != nil {
		t.Bottom.buildAs(b, "w:bottom")
	}
	if t.Right != nil {
		t.Right.buildAs(b, "w:right")
	}
	if t.InsideH != nil {
		t.InsideH.buildAs(b, "w:insideH")
	}
	if t.InsideV != nil {
		t.InsideV.buildAs(b, "w:insideV")
	}
	b.Close()
}

// CellBorders is the eight-edge border set of a cell, including the two
// diagonals.
type CellBorders struct {
	Top     *TableBorder
	Left    *TableBorder
	Bottom  *TableBorder
	Right   *TableBorder
	InsideH *TableBorder
	InsideV *TableBorder
	TL2BR   *TableBorder
	TR2BL   *TableBorder
}

func (t CellBorders) build(b *XMLBuilder) {
	b.Open("w:tcBorders")
	if t.Top != nil {
		t.Top.buildAs(b, "w:top")
	}
	if t.Left != nil {
		t.Left.buildAs(b, "w:left")
	}
	if t.Bottom != nil {
		t.Bottom.buildAs(b, "w:bottom")
	}
	if t.Right != nil {
		t.Right.buildAs(b, "w:right")
	}
	if t.InsideH != nil {
		t.InsideH.buildAs(b, "w:insideH")
	}
	if t.InsideV != nil {
		t.InsideV.buildAs(b, "w:insideV")
	}
	if t.TL2BR != nil {
		t.TL2BR.buildAs(b, "w:tl2br")
	}
	if t.TR2BL != nil {
		t.TR2BL.buildAs(b, "w:tr2bl")
	}
	b.Close()
}

// TableProperty is the tblPr block. Width and justification are always
// written.
type TableProperty struct {
	Width         TableWidth
	Justification Justification
	Borders       *TableBorders
	Indent        *int
	Style         *string
	Layout        *string
}

// NewTableProperty returns the builder default: auto width, left
// justification, full single borders.
func NewTableProperty() TableProperty {
	borders := NewTableBorders()
	return TableProperty{
		Width:         TableWidth{Width: 0, Type: WidthTypeAuto},
		Justification: "left",
		Borders:       &borders,
	}
}

// NewTablePropertyWithoutBorders is what the reader starts from: ingested
// tables only carry the borders their markup declares.
func NewTablePropertyWithoutBorders() TableProperty {
	return TableProperty{
		Width:         TableWidth{Width: 0, Type: WidthTypeAuto},
		Justification: "left",
	}
}

func (p TableProperty) WithWidth(w int, t WidthType) TableProperty {
	p.Width = TableWidth{Width: w, Type: t}
	return p
}
func (p TableProperty) WithJustification(j Justification) TableProperty {
	p.Justification = j
	return p
}
func (p TableProperty) WithIndent(dxa int) TableProperty  { p.Indent = &dxa; return p }
func (p TableProperty) WithStyle(id string) TableProperty { p.Style = &id; return p }
func (p TableProperty) WithLayout(v string) TableProperty { p.Layout = &v; return p }
func (p TableProperty) WithoutBorders() TableProperty     { p.Borders = nil; return p }

func (p TableProperty) build(b *XMLBuilder) {
	b.Open("w:tblPr")
	p.Width.buildAs(b, "w:tblW")
	b.Empty("w:jc", attr("w:val", string(p.Justification)))
	if p.Borders != nil {
		p.Borders.build(b)
	}
	if p.Indent != nil {
		b.Empty("w:tblInd",
			attr("w:w", strconv.Itoa(*p.Indent)),
			attr("w:type", "dxa"),
		)
	}
	buildValAttr(b, "w:tblStyle", p.Style)
	if p.Layout != nil {
		b.Empty("w:tblLayout", attr("w:type", *p.Layout))
	}
	b.Close()
}

// RowTrack is the author/date pair of a row-level tracked change.
type RowTrack struct {
	ID     int
	Author string
	Date   string
}

func (t RowTrack) buildAs(b *XMLBuilder, tag string) {
	b.Empty(tag,
		attr("w:id", strconv.Itoa(t.ID)),
		attr("w:author", t.Author),
		attr("w:date", t.Date),
	)
}

// TableRowProperty is the trPr block, always written even when empty.
type TableRowProperty struct {
	GridBefore  *int
	WidthBefore *float64
	GridAfter   *int
	WidthAfter  *float64
	RowHeight   *float64
	HeightRule  *string
	CantSplit   bool
	Ins         *RowTrack
	Del         *RowTrack
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (p TableRowProperty) build(b *XMLBuilder) {
	b.Open("w:trPr")
	if p.GridBefore != nil {
		b.Empty("w:gridBefore", attr("w:val", strconv.Itoa(*p.GridBefore)))
	}
	if p.WidthBefore != nil {
		b.Empty("w:wBefore",
			attr("w:w", formatFloat(*p.WidthBefore)),
			attr("w:type", "dxa"),
		)
	}
	if p.GridAfter != nil {
		b.Empty("w:gridAfter", attr("w:val", strconv.Itoa(*p.GridAfter)))
	}
	if p.WidthAfter != nil {
		b.Empty("w:wAfter",
			attr("w:w", formatFloat(*p.WidthAfter)),
			attr("w:type", "dxa"),
		)
	}
	if p.RowHeight != nil {
		attrs := []Attr{attr("w:val", formatFloat(*p.RowHeight))}
		if p.HeightRule != nil {
			attrs = append(attrs, attr("w:hRule", *p.HeightRule))
		}
		b.Empty("w:trHeight", attrs...)
	}
	if p.CantSplit {
		b.Empty("w:cantSplit")
	}
	if p.Ins != nil {
		p.Ins.buildAs(b, "w:ins")
	}
	if p.Del != nil {
		p.Del.buildAs(b, "w:del")
	}
	b.Close()
}

// BlockChild is a block-level child as hosted by table cells, headers,
// footers and text boxes. The legal set is the same for all four.
type BlockChild interface {
	element
	isBlockChild()
}

// TableCellProperty is the tcPr block, always written even when empty.
type TableCellProperty struct {
	Width         *TableWidth
	GridSpan      *int
	VMerge        *VMergeType
	VAlign        *string
	TextDirection *string
	Borders       *CellBorders
	Shading       *Shading
}

func (p TableCellProperty) build(b *XMLBuilder) {
	b.Open("w:tcPr")
	if p.Width != nil {
		p.Width.buildAs(b, "w:tcW")
	}
	if p.GridSpan != nil {
		b.Empty("w:gridSpan", attr("w:val", strconv.Itoa(*p.GridSpan)))
	}
	if p.VMerge != nil {
		b.Empty("w:vMerge", attr("w:val", string(*p.VMerge)))
	}
	if p.VAlign != nil {
		b.Empty("w:vAlign", attr("w:val", *p.VAlign))
	}
	if p.TextDirection != nil {
		b.Empty("w:textDirection", attr("w:val", *p.TextDirection))
	}
	if p.Borders != nil {
		p.Borders.build(b)
	}
	if p.Shading != nil {
		p.Shading.build(b)
	}
	b.Close()
}

// TableCell holds block content. A cell that would otherwise be content-less
// gains a synthesized empty paragraph on write; the target format forbids
// empty cells.
type TableCell struct {
	Property     TableCellProperty
	Children     []BlockChild
	HasNumbering bool
}

// NewTableCell returns an empty cell.
func NewTableCell() TableCell { return TableCell{} }

// AddParagraph appends a paragraph and folds in its numbering flag.
func (c TableCell) AddParagraph(p Paragraph) TableCell {
	c.Children = append(c.Children, p)
	if p.HasNumbering {
		c.HasNumbering = true
	}
	return c
}

// AddTable nests a table.
func (c TableCell) AddTable(t Table) TableCell {
	c.Children = append(c.Children, t)
	if t.HasNumbering {
		c.HasNumbering = true
	}
	return c
}

// AddStructuredDataTag appends a structured tag.
func (c TableCell) AddStructuredDataTag(t StructuredDataTag) TableCell {
	c.Children = append(c.Children, t)
	if t.HasNumbering {
		c.HasNumbering = true
	}
	return c
}

func (c TableCell) Width(w int, t WidthType) TableCell {
	c.Property.Width = &TableWidth{Width: w, Type: t}
	return c
}

func (c TableCell) GridSpan(n int) TableCell {
	c.Property.GridSpan = &n
	return c
}

func (c TableCell) VMerge(v VMergeType) TableCell {
	c.Property.VMerge = &v
	return c
}

func (c TableCell) VAlign(v string) TableCell {
	c.Property.VAlign = &v
	return c
}

func (c TableCell) TextDirection(v string) TableCell {
	c.Property.TextDirection = &v
	return c
}

func (c TableCell) Shading(s Shading) TableCell {
	c.Property.Shading = &s
	return c
}

func (c TableCell) hasParagraph() bool {
	for _, ch := range c.Children {
		if _, ok := ch.(Paragraph); ok {
			return true
		}
	}
	return false
}

func (c TableCell) build(b *XMLBuilder) {
	b.Open("w:tc")
	c.Property.build(b)
	for _, ch := range c.Children {
		ch.build(b)
	}
	if !c.hasParagraph() {
		NewParagraph().build(b)
	}
	b.Close()
}

// TableRow is one row of cells.
type TableRow struct {
	Property     TableRowProperty
	Cells        []TableCell
	HasNumbering bool
}

// NewTableRow returns an empty row.
func NewTableRow() TableRow { return TableRow{} }

// AddCell appends a cell and folds in its numbering flag.
func (r TableRow) AddCell(c TableCell) TableRow {
	r.Cells = append(r.Cells, c)
	if c.HasNumbering {
		r.HasNumbering = true
	}
	return r
}

// RowHeight fixes the row height in dxa.
func (r TableRow) RowHeight(h float64) TableRow {
	r.Property.RowHeight = &h
	return r
}

// HeightRule sets how the height value is interpreted.
func (r TableRow) HeightRule(v string) TableRow {
	r.Property.HeightRule = &v
	return r
}

// CantSplit keeps the row on one page.
func (r TableRow) CantSplit() TableRow {
	r.Property.CantSplit = true
	return r
}

func (r TableRow) build(b *XMLBuilder) {
	b.Open("w:tr")
	r.Property.build(b)
	for _, c := range r.Cells {
		c.build(b)
	}
	b.Close()
}

// Table is a strict three-level container: table, rows, cells.
type Table struct {
	Property     TableProperty
	Grid         []int
	Rows         []TableRow
	HasNumbering bool
}

// NewTable returns a table with the default bordered property block.
func NewTable() Table {
	return Table{Property: NewTableProperty()}
}

func (Table) isDocumentChild() {}
func (Table) isBlockChild()    {}
func (Table) isSDTChild()      {}

// AddRow appends a row and folds in its numbering flag.
func (t Table) AddRow(r TableRow) Table {
	t.Rows = append(t.Rows, r)
	if r.HasNumbering {
		t.HasNumbering = true
	}
	return t
}

// WithGrid declares the column widths in dxa.
func (t Table) WithGrid(widths []int) Table {
	t.Grid = widths
	return t
}

func (t Table) Style(id string) Table {
	t.Property = t.Property.WithStyle(id)
	return t
}

func (t Table) Width(w int, wt WidthType) Table {
	t.Property = t.Property.WithWidth(w, wt)
	return t
}

func (t Table) Indent(dxa int) Table {
	t.Property = t.Property.WithIndent(dxa)
	return t
}

func (t Table) Align(j Justification) Table {
	t.Property = t.Property.WithJustification(j)
	return t
}

func (t Table) Layout(v string) Table {
	t.Property = t.Property.WithLayout(v)
	return t
}

func (t Table) build(b *XMLBuilder) {
	b.Open("w:tbl")
	t.Property.build(b)
	b.Open("w:tblGrid")
	for _, w := range t.Grid {
		b.Empty("w:gridCol",
			attr("w:w", strconv.Itoa(w)),
			attr("w:type", "dxa"),
		)
	}
	b.Close()
	for _, r := range t.Rows {
		r.build(b)
	}
	b.Close()
}

// XML renders the table fragment.
func (t Table) XML() (string, error) {
	return buildString(t)
}
