package wordml

// ParagraphChild is one child of a paragraph. The set is closed; see
// readParagraphChild for the matching reader-side mapping.
type ParagraphChild interface {
	element
	isParagraphChild()
}

// Paragraph is a block of inline content with its own formatting block.
// HasNumbering is cached bottom-up when a numbering binding is attached, so
// containers never rescan their subtree.
type Paragraph struct {
	// ID is the w14:paraId value; empty means the attribute is omitted.
	ID           string
	Property     ParagraphProperty
	Children     []ParagraphChild
	HasNumbering bool
}

// NewParagraph returns an empty paragraph.
func NewParagraph() Paragraph { return Paragraph{} }

func (Paragraph) isDocumentChild() {}
func (Paragraph) isBlockChild()    {}
func (Paragraph) isSDTChild()      {}

// WithID sets the paragraph id.
func (p Paragraph) WithID(id string) Paragraph { p.ID = id; return p }

// WithIDFrom takes the next paragraph id from the build context's counter.
func (p Paragraph) WithIDFrom(c *IDCounter) Paragraph { p.ID = c.NextParaID(); return p }

// WithProperty replaces the formatting block.
func (p Paragraph) WithProperty(pp ParagraphProperty) Paragraph { p.Property = pp; return p }

// AddRun appends a run.
func (p Paragraph) AddRun(r Run) Paragraph {
	p.Children = append(p.Children, r)
	return p
}

// AddText appends a run holding just the given text.
func (p Paragraph) AddText(v string) Paragraph {
	return p.AddRun(NewRun().AddText(v))
}

// AddHyperlink appends a hyperlink.
func (p Paragraph) AddHyperlink(h Hyperlink) Paragraph {
	p.Children = append(p.Children, h)
	return p
}

// AddInsert appends a tracked insertion.
func (p Paragraph) AddInsert(i Insert) Paragraph {
	p.Children = append(p.Children, i)
	return p
}

// AddDelete appends a tracked deletion.
func (p Paragraph) AddDelete(d Delete) Paragraph {
	p.Children = append(p.Children, d)
	return p
}

// AddBookmarkStart appends a bookmark opening.
func (p Paragraph) AddBookmarkStart(id int, name string) Paragraph {
	p.Children = append(p.Children, NewBookmarkStart(id, name))
	return p
}

// AddBookmarkEnd appends a bookmark closing.
func (p Paragraph) AddBookmarkEnd(id int) Paragraph {
	p.Children = append(p.Children, NewBookmarkEnd(id))
	return p
}

// AddCommentStart appends a comment range opening.
func (p Paragraph) AddCommentStart(c Comment) Paragraph {
	p.Children = append(p.Children, NewCommentRangeStart(c))
	return p
}

// AddCommentEnd appends a comment range closing.
func (p Paragraph) AddCommentEnd(id int) Paragraph {
	p.Children = append(p.Children, NewCommentRangeEnd(id))
	return p
}

// AddStructuredDataTag nests a structured tag inline.
func (p Paragraph) AddStructuredDataTag(t StructuredDataTag) Paragraph {
	p.Children = append(p.Children, t)
	if t.HasNumbering {
		p.HasNumbering = true
	}
	return p
}

// Style sets the paragraph style id.
func (p Paragraph) Style(id string) Paragraph {
	p.Property = p.Property.WithStyle(id)
	return p
}

// Numbering binds the paragraph to a numbering instance and marks the
// cached flag.
func (p Paragraph) Numbering(numID, level int) Paragraph {
	p.Property = p.Property.WithNumbering(numID, level)
	p.HasNumbering = true
	return p
}

// Align sets the justification.
func (p Paragraph) Align(j Justification) Paragraph {
	p.Property = p.Property.WithAlignment(j)
	return p
}

// IndentLeft indents the logical start edge by dxa.
func (p Paragraph) IndentLeft(dxa int) Paragraph {
	start := dxa
	if p.Property.Indent == nil {
		p.Property.Indent = &Indent{}
	}
	ind := *p.Property.Indent
	ind.Start = &start
	p.Property.Indent = &ind
	return p
}

// PageBreakBefore forces a page break ahead of the paragraph.
func (p Paragraph) PageBreakBefore() Paragraph {
	p.Property = p.Property.WithPageBreakBefore()
	return p
}

// KeepNext keeps the paragraph with the following one.
func (p Paragraph) KeepNext() Paragraph {
	p.Property = p.Property.WithKeepNext()
	return p
}

// KeepLines keeps all lines on one page.
func (p Paragraph) KeepLines() Paragraph {
	p.Property = p.Property.WithKeepLines()
	return p
}

// LineSpacing sets the spacing block.
func (p Paragraph) LineSpacing(s LineSpacing) Paragraph {
	p.Property = p.Property.WithLineSpacing(s)
	return p
}

// PlainText concatenates the text of all runs, including those inside
// hyperlinks and insertions.
func (p Paragraph) PlainText() string {
	out := ""
	for _, c := range p.Children {
		switch t := c.(type) {
		case Run:
			out += t.PlainText()
		case Hyperlink:
			for _, hc := range t.Children {
				if r, ok := hc.(Run); ok {
					out += r.PlainText()
				}
			}
		case Insert:
			for _, ic := range t.Children {
				if r, ok := ic.(Run); ok {
					out += r.PlainText()
				}
			}
		}
	}
	return out
}

func (p Paragraph) build(b *XMLBuilder) {
	if p.ID != "" {
		b.Open("w:p", attr("w14:paraId", p.ID))
	} else {
		b.Open("w:p")
	}
	p.Property.build(b)
	for _, c := range p.Children {
		c.build(b)
	}
	b.Close()
}

// XML renders the paragraph fragment.
func (p Paragraph) XML() (string, error) {
	return buildString(p)
}
