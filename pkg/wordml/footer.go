package wordml

import "io"

// Footer is a footer part. Its children are block-level content.
type Footer struct {
	Children     []BlockChild
	HasNumbering bool
}

// NewFooter returns an empty footer.
func NewFooter() Footer { return Footer{} }

// AddParagraph appends a paragraph and folds in its numbering flag.
func (f Footer) AddParagraph(p Paragraph) Footer {
	f.Children = append(f.Children, p)
	if p.HasNumbering {
		f.HasNumbering = true
	}
	return f
}

// AddTable appends a table and folds in its numbering flag.
func (f Footer) AddTable(t Table) Footer {
	f.Children = append(f.Children, t)
	if t.HasNumbering {
		f.HasNumbering = true
	}
	return f
}

// AddStructuredDataTag appends a structured tag and folds in its numbering
// flag.
func (f Footer) AddStructuredDataTag(t StructuredDataTag) Footer {
	f.Children = append(f.Children, t)
	if t.HasNumbering {
		f.HasNumbering = true
	}
	return f
}

func (f Footer) build(b *XMLBuilder) {
	b.Declaration()
	b.Open("w:ftr", headerFooterNamespaces()...)
	for _, c := range f.Children {
		c.build(b)
	}
	b.Close()
}

// Write streams the complete part to w.
func (f Footer) Write(w io.Writer) error { return writePart(w, f) }

// XML renders the complete part including the declaration.
func (f Footer) XML() (string, error) { return buildString(f) }
