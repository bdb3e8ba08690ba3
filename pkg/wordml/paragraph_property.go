package wordml

import "strconv"

// Justification is a paragraph alignment value (left, center, right, both,
// distribute, start, end).
type Justification string

// NumberingProperty binds a paragraph to a numbering instance and level.
type NumberingProperty struct {
	NumID *int
	Level *int
}

func (n NumberingProperty) build(b *XMLBuilder) {
	b.Open("w:numPr")
	if n.Level != nil {
		b.Empty("w:ilvl", attr("w:val", strconv.Itoa(*n.Level)))
	}
	if n.NumID != nil {
		b.Empty("w:numId", attr("w:val", strconv.Itoa(*n.NumID)))
	}
	b.Close()
}

// Indent is a paragraph indent in dxa. Start/End are the logical left/right
// edges; Special is the mutually exclusive first-line or hanging form.
type Indent struct {
	Start      *int
	End        *int
	Special    *SpecialIndent
	StartChars *int
}

func (i Indent) build(b *XMLBuilder) {
	attrs := make([]Attr, 0, 4)
	if i.Start != nil {
		attrs = append(attrs, attr("w:left", strconv.Itoa(*i.Start)))
	}
	if i.End != nil {
		attrs = append(attrs, attr("w:right", strconv.Itoa(*i.End)))
	}
	if i.Special != nil {
		switch i.Special.Kind {
		case SpecialIndentHanging:
			attrs = append(attrs, attr("w:hanging", strconv.Itoa(i.Special.Val)))
		default:
			attrs = append(attrs, attr("w:firstLine", strconv.Itoa(i.Special.Val)))
		}
	}
	if i.StartChars != nil {
		attrs = append(attrs, attr("w:leftChars", strconv.Itoa(*i.StartChars)))
	}
	b.Empty("w:ind", attrs...)
}

// LineSpacing captures the w:spacing element of a paragraph.
type LineSpacing struct {
	Before      *int
	BeforeLines *int
	After       *int
	AfterLines  *int
	Line        *int
	LineRule    *string
}

func (s LineSpacing) isZero() bool {
	return s.Before == nil && s.BeforeLines == nil && s.After == nil &&
		s.AfterLines == nil && s.Line == nil && s.LineRule == nil
}

func (s LineSpacing) build(b *XMLBuilder) {
	attrs := make([]Attr, 0, 6)
	if s.Before != nil {
		attrs = append(attrs, attr("w:before", strconv.Itoa(*s.Before)))
	}
	if s.BeforeLines != nil {
		attrs = append(attrs, attr("w:beforeLines", strconv.Itoa(*s.BeforeLines)))
	}
	if s.After != nil {
		attrs = append(attrs, attr("w:after", strconv.Itoa(*s.After)))
	}
	if s.AfterLines != nil {
		attrs = append(attrs, attr("w:afterLines", strconv.Itoa(*s.AfterLines)))
	}
	if s.Line != nil {
		attrs = append(attrs, attr("w:line", strconv.Itoa(*s.Line)))
	}
	if s.LineRule != nil {
		attrs = append(attrs, attr("w:lineRule", *s.LineRule))
	}
	b.Empty("w:spacing", attrs...)
}

// TabStop is one entry of the paragraph tab list.
type TabStop struct {
	Val    *string
	Leader *string
	Pos    *int
}

func (t TabStop) build(b *XMLBuilder) {
	attrs := make([]Attr, 0, 3)
	if t.Val != nil {
		attrs = append(attrs, attr("w:val", *t.Val))
	}
	if t.Leader != nil {
		attrs = append(attrs, attr("w:leader", *t.Leader))
	}
	if t.Pos != nil {
		attrs = append(attrs, attr("w:pos", strconv.Itoa(*t.Pos)))
	}
	b.Empty("w:tab", attrs...)
}

// ParagraphProperty is the paragraph formatting block. The run property it
// carries formats the paragraph mark and is always written, even when empty.
type ParagraphProperty struct {
	Style           *string
	RunProperty     RunProperty
	Numbering       *NumberingProperty
	Alignment       *Justification
	Indent          *Indent
	LineSpacing     *LineSpacing
	TextAlignment   *string
	AdjustRightInd  *int
	OutlineLvl      *int
	SnapToGrid      *bool
	KeepNext        *bool
	KeepLines       *bool
	PageBreakBefore *bool
	WidowControl    *bool
	DivID           *string
	Tabs            []TabStop
}

// NewParagraphProperty returns an empty block.
func NewParagraphProperty() ParagraphProperty { return ParagraphProperty{} }

func (p ParagraphProperty) WithStyle(id string) ParagraphProperty { p.Style = &id; return p }

func (p ParagraphProperty) WithNumbering(numID, level int) ParagraphProperty {
	p.Numbering = &NumberingProperty{NumID: &numID, Level: &level}
	return p
}

func (p ParagraphProperty) WithAlignment(j Justification) ParagraphProperty {
	p.Alignment = &j
	return p
}

func (p ParagraphProperty) WithIndent(i Indent) ParagraphProperty      { p.Indent = &i; return p }
func (p ParagraphProperty) WithLineSpacing(s LineSpacing) ParagraphProperty {
	p.LineSpacing = &s
	return p
}
func (p ParagraphProperty) WithKeepNext() ParagraphProperty {
	v := true
	p.KeepNext = &v
	return p
}
func (p ParagraphProperty) WithKeepLines() ParagraphProperty {
	v := true
	p.KeepLines = &v
	return p
}
func (p ParagraphProperty) WithPageBreakBefore() ParagraphProperty {
	v := true
	p.PageBreakBefore = &v
	return p
}
func (p ParagraphProperty) WithWidowControl(v bool) ParagraphProperty {
	p.WidowControl = &v
	return p
}
func (p ParagraphProperty) WithOutlineLvl(v int) ParagraphProperty { p.OutlineLvl = &v; return p }
func (p ParagraphProperty) AddTab(t TabStop) ParagraphProperty {
	p.Tabs = append(p.Tabs, t)
	return p
}

// Child order is fixed by the target schema.
func (p ParagraphProperty) build(b *XMLBuilder) {
	b.Open("w:pPr")
	buildValAttr(b, "w:pStyle", p.Style)
	p.RunProperty.build(b)
	if p.Numbering != nil {
		p.Numbering.build(b)
	}
	if p.Alignment != nil {
		b.Empty("w:jc", attr("w:val", string(*p.Alignment)))
	}
	if p.Indent != nil {
		p.Indent.build(b)
	}
	if p.LineSpacing != nil {
		p.LineSpacing.build(b)
	}
	buildValAttr(b, "w:textAlignment", p.TextAlignment)
	buildValInt(b, "w:adjustRightInd", p.AdjustRightInd)
	buildValInt(b, "w:outlineLvl", p.OutlineLvl)
	buildToggle(b, "w:snapToGrid", p.SnapToGrid)
	buildToggle(b, "w:keepNext", p.KeepNext)
	buildToggle(b, "w:keepLines", p.KeepLines)
	buildToggle(b, "w:pageBreakBefore", p.PageBreakBefore)
	buildToggle(b, "w:widowControl", p.WidowControl)
	if len(p.Tabs) > 0 {
		b.Open("w:tabs")
		for _, t := range p.Tabs {
			t.build(b)
		}
		b.Close()
	}
	buildValAttr(b, "w:divId", p.DivID)
	b.Close()
}
