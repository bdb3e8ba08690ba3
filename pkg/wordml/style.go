package wordml

import "io"

// Style is one named formatting definition. Character styles carry only a
// run property; paragraph and table styles carry the full set.
type Style struct {
	StyleID   string
	StyleType StyleType
	Name      string

	RunProperty       RunProperty
	ParagraphProperty ParagraphProperty
	TableProperty     *TableProperty
	TableCellProperty *TableCellProperty

	BasedOn *string
	Next    *string
	Link    *string
	QFormat bool
}

// NewStyle returns a style with the given id and type.
func NewStyle(id string, t StyleType) Style {
	return Style{StyleID: id, StyleType: t}
}

func (s Style) WithName(v string) Style { s.Name = v; return s }
func (s Style) WithBasedOn(v string) Style {
	s.BasedOn = &v
	return s
}
func (s Style) WithNext(v string) Style { s.Next = &v; return s }
func (s Style) WithLink(v string) Style { s.Link = &v; return s }
func (s Style) WithQFormat() Style      { s.QFormat = true; return s }

func (s Style) WithRunProperty(p RunProperty) Style { s.RunProperty = p; return s }
func (s Style) WithParagraphProperty(p ParagraphProperty) Style {
	s.ParagraphProperty = p
	return s
}
func (s Style) WithTableProperty(p TableProperty) Style { s.TableProperty = &p; return s }
func (s Style) WithTableCellProperty(p TableCellProperty) Style {
	s.TableCellProperty = &p
	return s
}

// Bold turns on the bold pair.
func (s Style) Bold() Style { s.RunProperty = s.RunProperty.WithBold(); return s }

// Italic turns on the italic pair.
func (s Style) Italic() Style { s.RunProperty = s.RunProperty.WithItalic(); return s }

// Size sets the font size pair in half points.
func (s Style) Size(halfPoints int) Style {
	s.RunProperty = s.RunProperty.WithSize(halfPoints)
	return s
}

// Color sets the text color.
func (s Style) Color(hex string) Style {
	s.RunProperty = s.RunProperty.WithColor(hex)
	return s
}

// Align sets the paragraph justification.
func (s Style) Align(j Justification) Style {
	s.ParagraphProperty = s.ParagraphProperty.WithAlignment(j)
	return s
}

func (s Style) build(b *XMLBuilder) {
	st := s.StyleType
	if st == "" {
		st = StyleTypeParagraph
	}
	b.Open("w:style", attr("w:type", string(st)), attr("w:styleId", s.StyleID))
	b.Empty("w:name", attr("w:val", s.Name))
	s.RunProperty.build(b)
	s.ParagraphProperty.build(b)
	if st == StyleTypeTable {
		tc := s.TableCellProperty
		if tc == nil {
			tc = &TableCellProperty{}
		}
		tc.build(b)
		tp := s.TableProperty
		if tp == nil {
			p := NewTableProperty()
			tp = &p
		}
		tp.build(b)
	}
	if s.Next != nil {
		b.Empty("w:next", attr("w:val", *s.Next))
	}
	if s.Link != nil {
		b.Empty("w:link", attr("w:val", *s.Link))
	}
	if s.QFormat {
		b.Empty("w:qFormat")
	}
	if s.BasedOn != nil {
		b.Empty("w:basedOn", attr("w:val", *s.BasedOn))
	}
	b.Close()
}

// XML renders the style fragment.
func (s Style) XML() (string, error) { return buildString(s) }

// DocDefaults carries the document-wide default run and paragraph
// properties. Both blocks are always written.
type DocDefaults struct {
	RunProperty       RunProperty
	ParagraphProperty ParagraphProperty
}

// NewDocDefaults returns empty defaults.
func NewDocDefaults() DocDefaults { return DocDefaults{} }

func (d DocDefaults) WithRunProperty(p RunProperty) DocDefaults {
	d.RunProperty = p
	return d
}

func (d DocDefaults) WithParagraphProperty(p ParagraphProperty) DocDefaults {
	d.ParagraphProperty = p
	return d
}

func (d DocDefaults) build(b *XMLBuilder) {
	b.Open("w:docDefaults")
	b.Open("w:rPrDefault")
	d.RunProperty.build(b)
	b.Close()
	b.Open("w:pPrDefault")
	d.ParagraphProperty.build(b)
	b.Close()
	b.Close()
}

// Styles is the style definitions part. Defaults come first, then the
// styles in insertion order.
type Styles struct {
	DocDefaults DocDefaults
	Styles      []Style
}

// NewStyles returns an empty part.
func NewStyles() Styles { return Styles{} }

// Add appends a style definition.
func (s Styles) Add(st Style) Styles {
	s.Styles = append(s.Styles, st)
	return s
}

// WithDocDefaults replaces the document defaults.
func (s Styles) WithDocDefaults(d DocDefaults) Styles {
	s.DocDefaults = d
	return s
}

// Find returns the style with the given id.
func (s Styles) Find(id string) (Style, bool) {
	for _, st := range s.Styles {
		if st.StyleID == id {
			return st, true
		}
	}
	return Style{}, false
}

func (s Styles) build(b *XMLBuilder) {
	b.Declaration()
	b.Open("w:styles",
		attr("xmlns:w", "http://schemas.openxmlformats.org/wordprocessingml/2006/main"),
		attr("xmlns:w14", "http://schemas.microsoft.com/office/word/2010/wordml"),
		attr("xmlns:w15", "http://schemas.microsoft.com/office/word/2012/wordml"),
	)
	s.DocDefaults.build(b)
	for _, st := range s.Styles {
		st.build(b)
	}
	b.Close()
}

// Write streams the complete part to w.
func (s Styles) Write(w io.Writer) error { return writePart(w, s) }

// XML renders the complete part including the declaration.
func (s Styles) XML() (string, error) { return buildString(s) }
