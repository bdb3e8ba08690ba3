package wordml

import "strconv"

// RunChild is one payload of a run. The set is closed: every variant the
// builder can attach has a matching arm in readRunChild, and every variant
// here has exactly one emission routine (or fails with UnsupportedError).
type RunChild interface {
	element
	isRunChild()
}

// Text is literal run text. PreserveSpace is set on everything the builder
// or reader produces so leading/trailing whitespace survives round trips.
type Text struct {
	Value         string
	PreserveSpace bool
}

// NewText returns space-preserving text.
func NewText(v string) Text {
	return Text{Value: v, PreserveSpace: true}
}

func (Text) isRunChild() {}

func (t Text) build(b *XMLBuilder) {
	if t.PreserveSpace {
		b.Open("w:t", attr("xml:space", "preserve"))
	} else {
		b.Open("w:t")
	}
	b.Text(t.Value).Close()
}

// DeleteText is run text inside a deletion.
type DeleteText struct {
	Value         string
	PreserveSpace bool
}

// NewDeleteText returns space-preserving deleted text.
func NewDeleteText(v string) DeleteText {
	return DeleteText{Value: v, PreserveSpace: true}
}

func (DeleteText) isRunChild() {}

func (t DeleteText) build(b *XMLBuilder) {
	if t.PreserveSpace {
		b.Open("w:delText", attr("xml:space", "preserve"))
	} else {
		b.Open("w:delText")
	}
	b.Text(t.Value).Close()
}

// Sym is a single symbol from a named font. Both fields are required; the
// reader drops a sym missing either.
type Sym struct {
	Font string
	Char string
}

// NewSym returns a symbol reference.
func NewSym(font, char string) Sym {
	return Sym{Font: font, Char: char}
}

func (Sym) isRunChild() {}

func (s Sym) build(b *XMLBuilder) {
	b.Empty("w:sym", attr("w:font", s.Font), attr("w:char", s.Char))
}

// Tab is an ordinary tab character.
type Tab struct{}

func (Tab) isRunChild() {}

func (Tab) build(b *XMLBuilder) {
	b.Empty("w:tab")
}

// PTab is an absolute-position tab.
type PTab struct {
	Alignment  PTabAlignment
	RelativeTo PTabRelativeTo
	Leader     PTabLeader
}

// NewPTab returns an absolute tab with the documented defaults.
func NewPTab() PTab {
	return PTab{
		Alignment:  PTabAlignmentLeft,
		RelativeTo: PTabRelativeToMargin,
		Leader:     PTabLeaderNone,
	}
}

func (PTab) isRunChild() {}

func (p PTab) build(b *XMLBuilder) {
	b.Empty("w:ptab",
		attr("w:alignment", string(p.Alignment)),
		attr("w:relativeTo", string(p.RelativeTo)),
		attr("w:leader", string(p.Leader)),
	)
}

// Break forces a line, column, or page break.
type Break struct {
	Type BreakType
}

// NewBreak returns a break of the given kind.
func NewBreak(t BreakType) Break { return Break{Type: t} }

func (Break) isRunChild() {}

func (br Break) build(b *XMLBuilder) {
	b.Empty("w:br", attr("w:type", string(br.Type)))
}

// FieldChar delimits a complex field.
type FieldChar struct {
	Type  FieldCharType
	Dirty bool
}

// NewFieldChar returns a field delimiter.
func NewFieldChar(t FieldCharType) FieldChar { return FieldChar{Type: t} }

// WithDirty marks the field result stale.
func (f FieldChar) WithDirty() FieldChar { f.Dirty = true; return f }

func (FieldChar) isRunChild() {}

func (f FieldChar) build(b *XMLBuilder) {
	b.Empty("w:fldChar",
		attr("w:fldCharType", string(f.Type)),
		attr("w:dirty", strconv.FormatBool(f.Dirty)),
	)
}

// InstrText is a field instruction. The reader drops instructions that trim
// to the empty string.
type InstrText struct {
	Value string
}

// NewInstrText returns a field instruction.
func NewInstrText(v string) InstrText { return InstrText{Value: v} }

func (InstrText) isRunChild() {}

func (t InstrText) build(b *XMLBuilder) {
	b.Open("w:instrText").Text(t.Value).Close()
}

// DeleteInstrText is a field instruction inside a deletion.
type DeleteInstrText struct {
	Value string
}

// NewDeleteInstrText returns a deleted field instruction.
func NewDeleteInstrText(v string) DeleteInstrText { return DeleteInstrText{Value: v} }

func (DeleteInstrText) isRunChild() {}

func (t DeleteInstrText) build(b *XMLBuilder) {
	b.Open("w:delInstrText").Text(t.Value).Close()
}

// FootnoteReference points at a footnote by id. The id is required; the
// reader drops a reference without one.
type FootnoteReference struct {
	ID int
}

// NewFootnoteReference returns a footnote reference.
func NewFootnoteReference(id int) FootnoteReference { return FootnoteReference{ID: id} }

func (FootnoteReference) isRunChild() {}

func (f FootnoteReference) build(b *XMLBuilder) {
	b.Empty("w:footnoteReference", attr("w:id", strconv.Itoa(f.ID)))
}

// Shading fills the run background.
type Shading struct {
	ShdType string
	Color   string
	Fill    string
}

// NewShading returns the default clear/auto/FFFFFF shading.
func NewShading() Shading {
	return Shading{ShdType: "clear", Color: "auto", Fill: "FFFFFF"}
}

func (s Shading) WithShdType(v string) Shading { s.ShdType = v; return s }
func (s Shading) WithColor(v string) Shading   { s.Color = v; return s }
func (s Shading) WithFill(v string) Shading    { s.Fill = v; return s }

func (Shading) isRunChild() {}

func (s Shading) build(b *XMLBuilder) {
	b.Empty("w:shd",
		attr("w:val", s.ShdType),
		attr("w:color", s.Color),
		attr("w:fill", s.Fill),
	)
}

// Shape is a free-floating drawing shape. It exists so ingested documents
// can carry the variant, but it has no canonical form: writing one fails.
type Shape struct{}

func (Shape) isRunChild() {}

func (Shape) build(b *XMLBuilder) {
	b.fail(NewUnsupportedError("run shape"))
}

// Run is a contiguous span of identically formatted content.
type Run struct {
	Property RunProperty
	Children []RunChild
}

func (Run) isParagraphChild() {}
func (Run) isHyperlinkChild() {}
func (Run) isInsertChild()    {}
func (Run) isDeleteChild()    {}
func (Run) isSDTChild()       {}

// NewRun returns an empty run.
func NewRun() Run { return Run{} }

// WithProperty replaces the whole formatting block.
func (r Run) WithProperty(p RunProperty) Run { r.Property = p; return r }

// AddText appends space-preserving text.
func (r Run) AddText(v string) Run {
	r.Children = append(r.Children, NewText(v))
	return r
}

// AddDeleteText appends deleted text.
func (r Run) AddDeleteText(v string) Run {
	r.Children = append(r.Children, NewDeleteText(v))
	return r
}

// AddSym appends a symbol reference.
func (r Run) AddSym(font, char string) Run {
	r.Children = append(r.Children, NewSym(font, char))
	return r
}

// AddTab appends a tab.
func (r Run) AddTab() Run {
	r.Children = append(r.Children, Tab{})
	return r
}

// AddPTab appends an absolute tab.
func (r Run) AddPTab(p PTab) Run {
	r.Children = append(r.Children, p)
	return r
}

// AddBreak appends a break.
func (r Run) AddBreak(t BreakType) Run {
	r.Children = append(r.Children, NewBreak(t))
	return r
}

// AddDrawing appends a drawing.
func (r Run) AddDrawing(d Drawing) Run {
	r.Children = append(r.Children, d)
	return r
}

// AddFieldChar appends a field delimiter.
func (r Run) AddFieldChar(f FieldChar) Run {
	r.Children = append(r.Children, f)
	return r
}

// AddInstrText appends a field instruction.
func (r Run) AddInstrText(v string) Run {
	r.Children = append(r.Children, NewInstrText(v))
	return r
}

// AddDeleteInstrText appends a deleted field instruction.
func (r Run) AddDeleteInstrText(v string) Run {
	r.Children = append(r.Children, NewDeleteInstrText(v))
	return r
}

// AddFootnoteReference appends a footnote reference.
func (r Run) AddFootnoteReference(id int) Run {
	r.Children = append(r.Children, NewFootnoteReference(id))
	return r
}

// AddShading appends run shading.
func (r Run) AddShading(s Shading) Run {
	r.Children = append(r.Children, s)
	return r
}

// Formatting conveniences mirrored from the property block.

func (r Run) Bold() Run                  { r.Property = r.Property.WithBold(); return r }
func (r Run) Italic() Run                { r.Property = r.Property.WithItalic(); return r }
func (r Run) Strike() Run                { r.Property = r.Property.WithStrike(); return r }
func (r Run) Size(halfPoints int) Run    { r.Property = r.Property.WithSize(halfPoints); return r }
func (r Run) Color(hex string) Run       { r.Property = r.Property.WithColor(hex); return r }
func (r Run) Underline(style string) Run { r.Property = r.Property.WithUnderline(style); return r }
func (r Run) Highlight(v string) Run     { r.Property = r.Property.WithHighlight(v); return r }
func (r Run) Style(id string) Run        { r.Property = r.Property.WithStyle(id); return r }
func (r Run) Fonts(f RunFonts) Run       { r.Property = r.Property.WithFonts(f); return r }
func (r Run) Vanish() Run                { r.Property = r.Property.WithVanish(); return r }

// PlainText concatenates the literal text payloads, mainly for callers that
// only care about content.
func (r Run) PlainText() string {
	out := ""
	for _, c := range r.Children {
		switch t := c.(type) {
		case Text:
			out += t.Value
		case Tab:
			out += "\t"
		case Break:
			out += "\n"
		}
	}
	return out
}

func (r Run) build(b *XMLBuilder) {
	b.Open("w:r")
	r.Property.build(b)
	for _, c := range r.Children {
		c.build(b)
	}
	b.Close()
}

// XML renders the run fragment, mainly for tests and tooling.
func (r Run) XML() (string, error) {
	return buildString(r)
}
