package wordml

import "io"

// Header is a header part. Its children are block-level content.
type Header struct {
	Children     []BlockChild
	HasNumbering bool
}

// NewHeader returns an empty header.
func NewHeader() Header { return Header{} }

// AddParagraph appends a paragraph and folds in its numbering flag.
func (h Header) AddParagraph(p Paragraph) Header {
	h.Children = append(h.Children, p)
	if p.HasNumbering {
		h.HasNumbering = true
	}
	return h
}

// AddTable appends a table and folds in its numbering flag.
func (h Header) AddTable(t Table) Header {
	h.Children = append(h.Children, t)
	if t.HasNumbering {
		h.HasNumbering = true
	}
	return h
}

// AddStructuredDataTag appends a structured tag and folds in its numbering
// flag.
func (h Header) AddStructuredDataTag(t StructuredDataTag) Header {
	h.Children = append(h.Children, t)
	if t.HasNumbering {
		h.HasNumbering = true
	}
	return h
}

func headerFooterNamespaces() []Attr {
	return []Attr{
		attr("xmlns:r", "http://schemas.openxmlformats.org/officeDocument/2006/relationships"),
		attr("xmlns:o", "urn:schemas-microsoft-com:office:office"),
		attr("xmlns:v", "urn:schemas-microsoft-com:vml"),
		attr("xmlns:w", "http://schemas.openxmlformats.org/wordprocessingml/2006/main"),
		attr("xmlns:w10", "urn:schemas-microsoft-com:office:word"),
		attr("xmlns:wp", "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"),
		attr("xmlns:wps", "http://schemas.microsoft.com/office/word/2010/wordprocessingShape"),
		attr("xmlns:wpg", "http://schemas.microsoft.com/office/word/2010/wordprocessingGroup"),
		attr("xmlns:mc", "http://schemas.openxmlformats.org/markup-compatibility/2006"),
		attr("xmlns:wp14", "http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing"),
		attr("xmlns:w14", "http://schemas.microsoft.com/office/word/2010/wordml"),
		attr("mc:Ignorable", "w14 wp14"),
	}
}

func (h Header) build(b *XMLBuilder) {
	b.Declaration()
	b.Open("w:hdr", headerFooterNamespaces()...)
	for _, c := range h.Children {
		c.build(b)
	}
	b.Close()
}

// Write streams the complete part to w.
func (h Header) Write(w io.Writer) error { return writePart(w, h) }

// XML renders the complete part including the declaration.
func (h Header) XML() (string, error) { return buildString(h) }
