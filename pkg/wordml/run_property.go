package wordml

import "strconv"

// RunFonts names the fonts used for each script range of a run. The theme
// fields reference theme slots instead of literal font names.
type RunFonts struct {
	Ascii    string
	HiAnsi   string
	EastAsia string
	Cs       string

	AsciiTheme    string
	HiAnsiTheme   string
	EastAsiaTheme string
	CsTheme       string

	Hint string
}

// NewRunFonts returns an empty font set.
func NewRunFonts() RunFonts { return RunFonts{} }

func (f RunFonts) WithAscii(v string) RunFonts    { f.Ascii = v; return f }
func (f RunFonts) WithHiAnsi(v string) RunFonts   { f.HiAnsi = v; return f }
func (f RunFonts) WithEastAsia(v string) RunFonts { f.EastAsia = v; return f }
func (f RunFonts) WithCs(v string) RunFonts       { f.Cs = v; return f }

func (f RunFonts) WithAsciiTheme(v string) RunFonts    { f.AsciiTheme = v; return f }
func (f RunFonts) WithHiAnsiTheme(v string) RunFonts   { f.HiAnsiTheme = v; return f }
func (f RunFonts) WithEastAsiaTheme(v string) RunFonts { f.EastAsiaTheme = v; return f }
func (f RunFonts) WithCsTheme(v string) RunFonts       { f.CsTheme = v; return f }

func (f RunFonts) WithHint(v string) RunFonts { f.Hint = v; return f }

func (f RunFonts) build(b *XMLBuilder) {
	attrs := make([]Attr, 0, 9)
	if f.Ascii != "" {
		attrs = append(attrs, attr("w:ascii", f.Ascii))
	}
	if f.HiAnsi != "" {
		attrs = append(attrs, attr("w:hAnsi", f.HiAnsi))
	}
	if f.EastAsia != "" {
		attrs = append(attrs, attr("w:eastAsia", f.EastAsia))
	}
	if f.Cs != "" {
		attrs = append(attrs, attr("w:cs", f.Cs))
	}
	if f.AsciiTheme != "" {
		attrs = append(attrs, attr("w:asciiTheme", f.AsciiTheme))
	}
	if f.HiAnsiTheme != "" {
		attrs = append(attrs, attr("w:hAnsiTheme", f.HiAnsiTheme))
	}
	if f.EastAsiaTheme != "" {
		attrs = append(attrs, attr("w:eastAsiaTheme", f.EastAsiaTheme))
	}
	if f.CsTheme != "" {
		attrs = append(attrs, attr("w:cstheme", f.CsTheme))
	}
	if f.Hint != "" {
		attrs = append(attrs, attr("w:hint", f.Hint))
	}
	b.Empty("w:rFonts", attrs...)
}

// TextBorder draws a border around a run.
type TextBorder struct {
	Val   string
	Color string
	Space int
	Size  int
}

func (t TextBorder) build(b *XMLBuilder) {
	b.Empty("w:bdr",
		attr("w:val", t.Val),
		attr("w:color", t.Color),
		attr("w:space", strconv.Itoa(t.Space)),
		attr("w:sz", strconv.Itoa(t.Size)),
	)
}

// RunProperty is the formatting block of a run. A zero value writes as the
// empty-but-present `<w:rPr />` the dialect requires.
type RunProperty struct {
	Style            *string
	Fonts            *RunFonts
	Bold             *bool
	BoldCs           *bool
	Italic           *bool
	ItalicCs         *bool
	Strike           *bool
	DStrike          *bool
	Size             *int
	SizeCs           *int
	Color            *string
	Underline        *string
	Vanish           bool
	SpecVanish       bool
	CharacterSpacing *int
	Highlight        *string
	TextBorder       *TextBorder
	VertAlign        *string
	Ins              *TrackChangeMark
	Del              *TrackChangeMark
}

// NewRunProperty returns an empty formatting block.
func NewRunProperty() RunProperty { return RunProperty{} }

func (p RunProperty) WithStyle(id string) RunProperty  { p.Style = &id; return p }
func (p RunProperty) WithFonts(f RunFonts) RunProperty { p.Fonts = &f; return p }
func (p RunProperty) WithBold() RunProperty            { v := true; p.Bold = &v; p.BoldCs = &v; return p }
func (p RunProperty) WithItalic() RunProperty {
	v := true
	p.Italic = &v
	p.ItalicCs = &v
	return p
}
func (p RunProperty) WithStrike() RunProperty  { v := true; p.Strike = &v; return p }
func (p RunProperty) WithDStrike() RunProperty { v := true; p.DStrike = &v; return p }

// WithSize sets the font size in half-points, for both plain and complex
// script.
func (p RunProperty) WithSize(halfPoints int) RunProperty {
	sz := halfPoints
	szCs := halfPoints
	p.Size = &sz
	p.SizeCs = &szCs
	return p
}

func (p RunProperty) WithColor(hex string) RunProperty       { p.Color = &hex; return p }
func (p RunProperty) WithUnderline(style string) RunProperty { p.Underline = &style; return p }
func (p RunProperty) WithVanish() RunProperty                { p.Vanish = true; return p }
func (p RunProperty) WithSpecVanish() RunProperty            { p.SpecVanish = true; return p }
func (p RunProperty) WithCharacterSpacing(v int) RunProperty { p.CharacterSpacing = &v; return p }
func (p RunProperty) WithHighlight(v string) RunProperty     { p.Highlight = &v; return p }
func (p RunProperty) WithTextBorder(t TextBorder) RunProperty {
	p.TextBorder = &t
	return p
}
func (p RunProperty) WithVertAlign(v string) RunProperty { p.VertAlign = &v; return p }

// WithInsertMark records the formatting itself as a tracked insertion.
func (p RunProperty) WithInsertMark(m TrackChangeMark) RunProperty { p.Ins = &m; return p }

// WithDeleteMark records the formatting itself as a tracked deletion.
func (p RunProperty) WithDeleteMark(m TrackChangeMark) RunProperty { p.Del = &m; return p }

// buildToggle writes an on/off element; an explicit false carries
// w:val="false" so the toggle round-trips.
func buildToggle(b *XMLBuilder, tag string, v *bool) {
	if v == nil {
		return
	}
	if *v {
		b.Empty(tag)
		return
	}
	b.Empty(tag, attr("w:val", "false"))
}

func buildValAttr(b *XMLBuilder, tag string, v *string) {
	if v == nil {
		return
	}
	b.Empty(tag, attr("w:val", *v))
}

func buildValInt(b *XMLBuilder, tag string, v *int) {
	if v == nil {
		return
	}
	b.Empty(tag, attr("w:val", strconv.Itoa(*v)))
}

// Child order is fixed by the target schema and never varies with which
// fields are populated.
func (p RunProperty) build(b *XMLBuilder) {
	b.Open("w:rPr")
	buildValAttr(b, "w:rStyle", p.Style)
	if p.Fonts != nil {
		p.Fonts.build(b)
	}
	buildToggle(b, "w:b", p.Bold)
	buildToggle(b, "w:bCs", p.BoldCs)
	buildToggle(b, "w:i", p.Italic)
	buildToggle(b, "w:iCs", p.ItalicCs)
	buildToggle(b, "w:strike", p.Strike)
	buildToggle(b, "w:dstrike", p.DStrike)
	buildValInt(b, "w:sz", p.Size)
	buildValInt(b, "w:szCs", p.SizeCs)
	buildValAttr(b, "w:color", p.Color)
	buildValAttr(b, "w:u", p.Underline)
	if p.Vanish {
		b.Empty("w:vanish")
	}
	if p.SpecVanish {
		b.Empty("w:specVanish")
	}
	buildValInt(b, "w:spacing", p.CharacterSpacing)
	buildValAttr(b, "w:highlight", p.Highlight)
	if p.TextBorder != nil {
		p.TextBorder.build(b)
	}
	buildValAttr(b, "w:vertAlign", p.VertAlign)
	if p.Ins != nil {
		p.Ins.buildAs(b, "w:ins")
	}
	if p.Del != nil {
		p.Del.buildAs(b, "w:del")
	}
	b.Close()
}
