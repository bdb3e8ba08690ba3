package wordml

import "strconv"

// PageSize is the page extent in dxa.
type PageSize struct {
	Width  int
	Height int
	Orient *string
}

// NewPageSize returns the default A4 portrait page.
func NewPageSize() PageSize {
	return PageSize{Width: 11906, Height: 16838}
}

func (p PageSize) build(b *XMLBuilder) {
	attrs := []Attr{
		attr("w:w", strconv.Itoa(p.Width)),
		attr("w:h", strconv.Itoa(p.Height)),
	}
	if p.Orient != nil {
		attrs = append(attrs, attr("w:orient", *p.Orient))
	}
	b.Empty("w:pgSz", attrs...)
}

// PageMargin is the page margin set in dxa.
type PageMargin struct {
	Top    int
	Right  int
	Bottom int
	Left   int
	Header int
	Footer int
	Gutter int
}

// NewPageMargin returns the default margin set.
func NewPageMargin() PageMargin {
	return PageMargin{
		Top:    1985,
		Right:  1701,
		Bottom: 1701,
		Left:   1701,
		Header: 851,
		Footer: 992,
		Gutter: 0,
	}
}

func (p PageMargin) build(b *XMLBuilder) {
	b.Empty("w:pgMar",
		attr("w:top", strconv.Itoa(p.Top)),
		attr("w:right", strconv.Itoa(p.Right)),
		attr("w:bottom", strconv.Itoa(p.Bottom)),
		attr("w:left", strconv.Itoa(p.Left)),
		attr("w:header", strconv.Itoa(p.Header)),
		attr("w:footer", strconv.Itoa(p.Footer)),
		attr("w:gutter", strconv.Itoa(p.Gutter)),
	)
}

// DocGrid is the document grid block.
type DocGrid struct {
	GridType  string
	LinePitch *int
	CharSpace *int
}

func (d DocGrid) build(b *XMLBuilder) {
	attrs := []Attr{attr("w:type", d.GridType)}
	if d.LinePitch != nil {
		attrs = append(attrs, attr("w:linePitch", strconv.Itoa(*d.LinePitch)))
	}
	if d.CharSpace != nil {
		attrs = append(attrs, attr("w:charSpace", strconv.Itoa(*d.CharSpace)))
	}
	b.Empty("w:docGrid", attrs...)
}

// PageNumType restarts or reformats page numbering for the section.
type PageNumType struct {
	Start  *int
	Format *string
}

func (p PageNumType) build(b *XMLBuilder) {
	attrs := make([]Attr, 0, 2)
	if p.Start != nil {
		attrs = append(attrs, attr("w:start", strconv.Itoa(*p.Start)))
	}
	if p.Format != nil {
		attrs = append(attrs, attr("w:fmt", *p.Format))
	}
	b.Empty("w:pgNumType", attrs...)
}

// HeaderReference binds a header part to the section under one role. The
// content travels with the reference so a document can be written without a
// side table; the packaging layer assigns the relationship id.
type HeaderReference struct {
	RID    string
	Header *Header
}

// FooterReference binds a footer part to the section under one role.
type FooterReference struct {
	RID    string
	Footer *Footer
}

// SectionProperty is the one per-document section block: page geometry,
// columns, header/footer bindings keyed default/first/even, numbering and
// grid settings.
type SectionProperty struct {
	PageSize      PageSize
	PageMargin    PageMargin
	Columns       int
	ColumnSpace   int
	DocGrid       *DocGrid
	HeaderDefault *HeaderReference
	HeaderFirst   *HeaderReference
	HeaderEven    *HeaderReference
	FooterDefault *FooterReference
	FooterFirst   *FooterReference
	FooterEven    *FooterReference
	PageNumType   *PageNumType
	TextDirection string
	SectionType   *string
	TitlePg       bool
}

// NewSectionProperty returns the documented default section.
func NewSectionProperty() SectionProperty {
	return SectionProperty{
		PageSize:      NewPageSize(),
		PageMargin:    NewPageMargin(),
		Columns:       1,
		ColumnSpace:   425,
		TextDirection: "lrTb",
	}
}

func (s SectionProperty) WithPageSize(p PageSize) SectionProperty     { s.PageSize = p; return s }
func (s SectionProperty) WithPageMargin(p PageMargin) SectionProperty { s.PageMargin = p; return s }

// WithColumns sets the column count, keeping the default gap.
func (s SectionProperty) WithColumns(n int) SectionProperty { s.Columns = n; return s }

func (s SectionProperty) WithDocGrid(d DocGrid) SectionProperty { s.DocGrid = &d; return s }

// WithHeader binds header content under the given role. Binding a first
// header or footer also raises the title-page flag, matching how the
// original part wires separate first pages.
func (s SectionProperty) WithHeader(role HeaderFooterRole, rid string, h Header) SectionProperty {
	ref := &HeaderReference{RID: rid, Header: &h}
	switch role {
	case HeaderFooterRoleFirst:
		s.HeaderFirst = ref
		s.TitlePg = true
	case HeaderFooterRoleEven:
		s.HeaderEven = ref
	default:
		s.HeaderDefault = ref
	}
	return s
}

// WithFooter binds footer content under the given role.
func (s SectionProperty) WithFooter(role HeaderFooterRole, rid string, f Footer) SectionProperty {
	ref := &FooterReference{RID: rid, Footer: &f}
	switch role {
	case HeaderFooterRoleFirst:
		s.FooterFirst = ref
		s.TitlePg = true
	case HeaderFooterRoleEven:
		s.FooterEven = ref
	default:
		s.FooterDefault = ref
	}
	return s
}

func (s SectionProperty) WithPageNumType(p PageNumType) SectionProperty {
	s.PageNumType = &p
	return s
}

func (s SectionProperty) WithTextDirection(v string) SectionProperty {
	s.TextDirection = v
	return s
}

func (s SectionProperty) WithSectionType(v string) SectionProperty { s.SectionType = &v; return s }
func (s SectionProperty) WithTitlePg() SectionProperty             { s.TitlePg = true; return s }

func buildHeaderReference(b *XMLBuilder, role HeaderFooterRole, ref *HeaderReference) {
	if ref == nil {
		return
	}
	b.Empty("w:headerReference",
		attr("w:type", string(role)),
		attr("r:id", ref.RID),
	)
}

func buildFooterReference(b *XMLBuilder, role HeaderFooterRole, ref *FooterReference) {
	if ref == nil {
		return
	}
	b.Empty("w:footerReference",
		attr("w:type", string(role)),
		attr("r:id", ref.RID),
	)
}

// Child order is fixed: page size, margin, columns, grid, header
// references, footer references, numbering, text direction, section type,
// title page.
func (s SectionProperty) build(b *XMLBuilder) {
	b.Open("w:sectPr")
	s.PageSize.build(b)
	s.PageMargin.build(b)
	b.Empty("w:cols",
		attr("w:space", strconv.Itoa(s.ColumnSpace)),
		attr("w:num", strconv.Itoa(s.Columns)),
	)
	if s.DocGrid != nil {
		s.DocGrid.build(b)
	}
	buildHeaderReference(b, HeaderFooterRoleDefault, s.HeaderDefault)
	buildHeaderReference(b, HeaderFooterRoleFirst, s.HeaderFirst)
	buildHeaderReference(b, HeaderFooterRoleEven, s.HeaderEven)
	buildFooterReference(b, HeaderFooterRoleDefault, s.FooterDefault)
	buildFooterReference(b, HeaderFooterRoleFirst, s.FooterFirst)
	buildFooterReference(b, HeaderFooterRoleEven, s.FooterEven)
	if s.PageNumType != nil {
		s.PageNumType.build(b)
	}
	if s.TextDirection != "lrTb" {
		b.Empty("w:textDirection", attr("w:val", s.TextDirection))
	}
	if s.SectionType != nil {
		b.Empty("w:type", attr("w:val", *s.SectionType))
	}
	if s.TitlePg {
		b.Empty("w:titlePg")
	}
	b.Close()
}
