package wordml

// TableOfContents is a field-backed content region. The instruction text is
// carried opaquely; when Dirty is set the consumer recalculates the field
// on open.
type TableOfContents struct {
	InstrText string
	Dirty     bool
	Alias     *string
}

// NewTableOfContents returns a dirty field covering heading levels 1-3.
func NewTableOfContents() TableOfContents {
	return TableOfContents{InstrText: `TOC \o "1-3"`, Dirty: true}
}

func (t TableOfContents) WithInstrText(v string) TableOfContents { t.InstrText = v; return t }
func (t TableOfContents) WithAlias(v string) TableOfContents     { t.Alias = &v; return t }
func (t TableOfContents) WithDirty(v bool) TableOfContents       { t.Dirty = v; return t }

func (TableOfContents) isDocumentChild() {}

// The field renders as a structured tag holding two paragraphs. The first
// opens the field and carries the instruction up to the separator; the
// second closes it.
func (t TableOfContents) build(b *XMLBuilder) {
	b.Open("w:sdt")
	b.Open("w:sdtPr")
	b.Empty("w:rPr")
	if t.Alias != nil {
		b.Empty("w:alias", attr("w:val", *t.Alias))
	}
	b.Close()
	b.Open("w:sdtContent")

	b.Open("w:p")
	b.Open("w:pPr").Empty("w:rPr").Close()
	b.Open("w:r").Empty("w:rPr")
	if t.Dirty {
		b.Empty("w:fldChar", attr("w:fldCharType", "begin"), attr("w:dirty", "true"))
	} else {
		b.Empty("w:fldChar", attr("w:fldCharType", "begin"))
	}
	b.Close()
	b.Open("w:r").Empty("w:rPr")
	b.Open("w:instrText").Text(t.InstrText).Close()
	b.Close()
	b.Open("w:r").Empty("w:rPr")
	b.Empty("w:fldChar", attr("w:fldCharType", "separate"))
	b.Close()
	b.Close() // w:p

	b.Open("w:p")
	b.Open("w:pPr").Empty("w:rPr").Close()
	b.Open("w:r").Empty("w:rPr")
	b.Empty("w:fldChar", attr("w:fldCharType", "end"))
	b.Close()
	b.Close() // w:p

	b.Close() // w:sdtContent
	b.Close() // w:sdt
}

// XML renders the field fragment.
func (t TableOfContents) XML() (string, error) { return buildString(t) }
