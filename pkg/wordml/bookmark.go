package wordml

import "strconv"

// BookmarkStart opens a named range. Id and name are both required; the
// reader drops a start marker missing either. Uniqueness of ids is the
// caller's responsibility.
type BookmarkStart struct {
	ID   int
	Name string
}

// NewBookmarkStart returns a start marker.
func NewBookmarkStart(id int, name string) BookmarkStart {
	return BookmarkStart{ID: id, Name: name}
}

func (BookmarkStart) isParagraphChild() {}
func (BookmarkStart) isDocumentChild()  {}
func (BookmarkStart) isSDTChild()       {}
func (BookmarkStart) isHyperlinkChild() {}

func (m BookmarkStart) build(b *XMLBuilder) {
	b.Empty("w:bookmarkStart",
		attr("w:id", strconv.Itoa(m.ID)),
		attr("w:name", m.Name),
	)
}

// BookmarkEnd closes the range with the matching id.
type BookmarkEnd struct {
	ID int
}

// NewBookmarkEnd returns an end marker.
func NewBookmarkEnd(id int) BookmarkEnd {
	return BookmarkEnd{ID: id}
}

func (BookmarkEnd) isParagraphChild() {}
func (BookmarkEnd) isDocumentChild()  {}
func (BookmarkEnd) isSDTChild()       {}
func (BookmarkEnd) isHyperlinkChild() {}

func (m BookmarkEnd) build(b *XMLBuilder) {
	b.Empty("w:bookmarkEnd", attr("w:id", strconv.Itoa(m.ID)))
}
