package wordml

import (
	"io"
	"strconv"
)

// Comment is the annotation a comment range points at. Only the id travels
// with the range markers; the body lives in the comments part.
type Comment struct {
	ID       int
	Author   string
	Date     string
	Children []Paragraph
	ParentID *int
}

// NewComment returns a comment with the default author and epoch date.
func NewComment(id int) Comment {
	return Comment{
		ID:     id,
		Author: "unnamed",
		Date:   "1970-01-01T00:00:00Z",
	}
}

func (c Comment) WithAuthor(v string) Comment { c.Author = v; return c }
func (c Comment) WithDate(v string) Comment   { c.Date = v; return c }

// AddParagraph appends body content.
func (c Comment) AddParagraph(p Paragraph) Comment {
	c.Children = append(c.Children, p)
	return c
}

// WithParent threads this comment under another.
func (c Comment) WithParent(id int) Comment { c.ParentID = &id; return c }

func (c Comment) build(b *XMLBuilder) {
	b.Open("w:comment",
		attr("w:id", strconv.Itoa(c.ID)),
		attr("w:author", c.Author),
		attr("w:date", c.Date),
	)
	for _, p := range c.Children {
		p.build(b)
	}
	b.Close()
}

// Comments is the comments part holding the annotation bodies the range
// markers point at.
type Comments struct {
	Children []Comment
}

// NewComments returns an empty part.
func NewComments() Comments { return Comments{} }

// Add appends one comment.
func (c Comments) Add(cm Comment) Comments {
	c.Children = append(c.Children, cm)
	return c
}

// Find returns the comment with the given id.
func (c Comments) Find(id int) (Comment, bool) {
	for _, cm := range c.Children {
		if cm.ID == id {
			return cm, true
		}
	}
	return Comment{}, false
}

func (c Comments) build(b *XMLBuilder) {
	b.Declaration()
	b.Open("w:comments",
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
	for _, cm := range c.Children {
		cm.build(b)
	}
	b.Close()
}

// Write streams the complete part to w.
func (c Comments) Write(w io.Writer) error { return writePart(w, c) }

// XML renders the complete part including the declaration.
func (c Comments) XML() (string, error) { return buildString(c) }

// CommentRangeStart marks where a comment's range opens. It carries the
// full comment so programmatic construction needs no side table.
type CommentRangeStart struct {
	ID      int
	Comment Comment
}

// NewCommentRangeStart returns a start marker for the comment.
func NewCommentRangeStart(c Comment) CommentRangeStart {
	return CommentRangeStart{ID: c.ID, Comment: c}
}

func (CommentRangeStart) isParagraphChild() {}
func (CommentRangeStart) isDocumentChild()  {}
func (CommentRangeStart) isSDTChild()       {}
func (CommentRangeStart) isHyperlinkChild() {}
func (CommentRangeStart) isInsertChild()    {}
func (CommentRangeStart) isDeleteChild()    {}

func (m CommentRangeStart) build(b *XMLBuilder) {
	b.Empty("w:commentRangeStart", attr("w:id", strconv.Itoa(m.ID)))
}

// CommentRangeEnd closes the range and anchors the reference run.
type CommentRangeEnd struct {
	ID int
}

// NewCommentRangeEnd returns an end marker.
func NewCommentRangeEnd(id int) CommentRangeEnd {
	return CommentRangeEnd{ID: id}
}

func (CommentRangeEnd) isParagraphChild() {}
func (CommentRangeEnd) isDocumentChild()  {}
func (CommentRangeEnd) isSDTChild()       {}
func (CommentRangeEnd) isHyperlinkChild() {}
func (CommentRangeEnd) isInsertChild()    {}
func (CommentRangeEnd) isDeleteChild()    {}

func (m CommentRangeEnd) build(b *XMLBuilder) {
	id := strconv.Itoa(m.ID)
	b.Empty("w:commentRangeEnd", attr("w:id", id))
	b.Open("w:r")
	b.Empty("w:rPr")
	b.Empty("w:commentReference", attr("w:id", id))
	b.Close()
}

// CommentExtended carries the modern threading metadata for one comment,
// keyed by the paragraph id of the comment's last paragraph.
type CommentExtended struct {
	ParaID       string
	Done         bool
	ParentParaID *string
}

// NewCommentExtended returns an unresolved entry.
func NewCommentExtended(paraID string) CommentExtended {
	return CommentExtended{ParaID: paraID}
}

func (c CommentExtended) WithDone() CommentExtended { c.Done = true; return c }
func (c CommentExtended) WithParentParaID(v string) CommentExtended {
	c.ParentParaID = &v
	return c
}

func (c CommentExtended) build(b *XMLBuilder) {
	attrs := []Attr{
		attr("w15:paraId", c.ParaID),
		attr("w15:done", boolAttr(c.Done)),
	}
	if c.ParentParaID != nil {
		attrs = append(attrs, attr("w15:paraIdParent", *c.ParentParaID))
	}
	b.Empty("w15:commentEx", attrs...)
}

// CommentsExtended is the commentsExtended part.
type CommentsExtended struct {
	Children []CommentExtended
}

// NewCommentsExtended returns an empty part.
func NewCommentsExtended() CommentsExtended { return CommentsExtended{} }

// Add appends one entry.
func (c CommentsExtended) Add(e CommentExtended) CommentsExtended {
	c.Children = append(c.Children, e)
	return c
}

func (c CommentsExtended) build(b *XMLBuilder) {
	b.Declaration()
	b.Open("w15:commentsEx",
		attr("xmlns:wpc", "http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas"),
		attr("xmlns:cx", "http://schemas.microsoft.com/office/drawing/2014/chartex"),
		attr("xmlns:mc", "http://schemas.openxmlformats.org/markup-compatibility/2006"),
		attr("xmlns:w", "http://schemas.openxmlformats.org/wordprocessingml/2006/main"),
		attr("xmlns:w14", "http://schemas.microsoft.com/office/word/2010/wordml"),
		attr("xmlns:w15", "http://schemas.microsoft.com/office/word/2012/wordml"),
		attr("mc:Ignorable", "w14 w15"),
	)
	for _, e := range c.Children {
		e.build(b)
	}
	b.Close()
}

// Write streams the complete part to w.
func (c CommentsExtended) Write(w io.Writer) error { return writePart(w, c) }

// XML renders the part to a string.
func (c CommentsExtended) XML() (string, error) {
	return buildString(c)
}
