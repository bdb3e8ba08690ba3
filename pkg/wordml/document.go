package wordml

import "io"

// DocumentChild is one child of the document body.
type DocumentChild interface {
	element
	isDocumentChild()
}

// Document is the main document part. The section block always follows the
// body children; HasNumbering is folded bottom-up from every added child.
type Document struct {
	Children        []DocumentChild
	SectionProperty SectionProperty
	HasNumbering    bool
}

// NewDocument returns an empty document with the default section.
func NewDocument() Document {
	return Document{SectionProperty: NewSectionProperty()}
}

// WithSectionProperty replaces the section block.
func (d Document) WithSectionProperty(s SectionProperty) Document {
	d.SectionProperty = s
	return d
}

// AddParagraph appends a paragraph and folds in its numbering flag.
func (d Document) AddParagraph(p Paragraph) Document {
	d.Children = append(d.Children, p)
	if p.HasNumbering {
		d.HasNumbering = true
	}
	return d
}

// AddTable appends a table and folds in its numbering flag.
func (d Document) AddTable(t Table) Document {
	d.Children = append(d.Children, t)
	if t.HasNumbering {
		d.HasNumbering = true
	}
	return d
}

// AddStructuredDataTag appends a structured tag and folds in its numbering
// flag.
func (d Document) AddStructuredDataTag(t StructuredDataTag) Document {
	d.Children = append(d.Children, t)
	if t.HasNumbering {
		d.HasNumbering = true
	}
	return d
}

// AddTableOfContents appends a field-backed contents region.
func (d Document) AddTableOfContents(t TableOfContents) Document {
	d.Children = append(d.Children, t)
	return d
}

// AddBookmarkStart appends a body-level bookmark opening.
func (d Document) AddBookmarkStart(id int, name string) Document {
	d.Children = append(d.Children, NewBookmarkStart(id, name))
	return d
}

// AddBookmarkEnd appends a body-level bookmark closing.
func (d Document) AddBookmarkEnd(id int) Document {
	d.Children = append(d.Children, NewBookmarkEnd(id))
	return d
}

// AddCommentStart appends a body-level comment range opening.
func (d Document) AddCommentStart(c Comment) Document {
	d.Children = append(d.Children, NewCommentRangeStart(c))
	return d
}

// AddCommentEnd appends a body-level comment range closing.
func (d Document) AddCommentEnd(id int) Document {
	d.Children = append(d.Children, NewCommentRangeEnd(id))
	return d
}

// Header binds default header content through the section block.
func (d Document) Header(rid string, h Header) Document {
	d.SectionProperty = d.SectionProperty.WithHeader(HeaderFooterRoleDefault, rid, h)
	if h.HasNumbering {
		d.HasNumbering = true
	}
	return d
}

// Footer binds default footer content through the section block.
func (d Document) Footer(rid string, f Footer) Document {
	d.SectionProperty = d.SectionProperty.WithFooter(HeaderFooterRoleDefault, rid, f)
	if f.HasNumbering {
		d.HasNumbering = true
	}
	return d
}

func (d Document) build(b *XMLBuilder) {
	b.Declaration()
	b.Open("w:document",
		attr("xmlns:o", "urn:schemas-microsoft-com:office:office"),
		attr("xmlns:r", "http://schemas.openxmlformats.org/officeDocument/2006/relationships"),
		attr("xmlns:v", "urn:schemas-microsoft-com:vml"),
		attr("xmlns:w", "http://schemas.openxmlformats.org/wordprocessingml/2006/main"),
		attr("xmlns:w10", "urn:schemas-microsoft-com:office:word"),
		attr("xmlns:wp", "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"),
		attr("xmlns:wps", "http://schemas.microsoft.com/office/word/2010/wordprocessingShape"),
		attr("xmlns:wpg", "http://schemas.microsoft.com/office/word/2010/wordprocessingGroup"),
		attr("xmlns:mc", "http://schemas.openxmlformats.org/markup-compatibility/2006"),
		attr("xmlns:wp14", "http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing"),
		attr("xmlns:w14", "http://schemas.microsoft.com/office/word/2010/wordml"),
		attr("xmlns:w15", "http://schemas.microsoft.com/office/word/2012/wordml"),
		attr("mc:Ignorable", "w14 wp14"),
	)
	b.Open("w:body")
	for _, c := range d.Children {
		c.build(b)
	}
	d.SectionProperty.build(b)
	b.Close()
	b.Close()
}

// Write streams the complete part to w.
func (d Document) Write(w io.Writer) error { return writePart(w, d) }

// XML renders the complete part including the declaration.
func (d Document) XML() (string, error) { return buildString(d) }
