package wordml

import "strconv"

// HyperlinkChild is one child of a hyperlink.
type HyperlinkChild interface {
	element
	isHyperlinkChild()
}

// Hyperlink is either a relationship-backed external link or an in-document
// anchor. Path is writer-side bookkeeping for the packaging layer and never
// appears in the markup.
type Hyperlink struct {
	Kind     HyperlinkKind
	RID      string
	Path     string
	Anchor   string
	History  *int
	Children []HyperlinkChild
}

// NewExternalHyperlink returns a link resolved through a relationship id.
func NewExternalHyperlink(rid, path string) Hyperlink {
	return Hyperlink{Kind: HyperlinkKindExternal, RID: rid, Path: path}
}

// NewAnchorHyperlink returns a link to a bookmark in the same document.
func NewAnchorHyperlink(anchor string) Hyperlink {
	return Hyperlink{Kind: HyperlinkKindAnchor, Anchor: anchor}
}

func (h Hyperlink) WithHistory(v int) Hyperlink { h.History = &v; return h }

// AddRun appends link text.
func (h Hyperlink) AddRun(r Run) Hyperlink {
	h.Children = append(h.Children, r)
	return h
}

// AddBookmarkStart appends a bookmark opening.
func (h Hyperlink) AddBookmarkStart(m BookmarkStart) Hyperlink {
	h.Children = append(h.Children, m)
	return h
}

// AddBookmarkEnd appends a bookmark closing.
func (h Hyperlink) AddBookmarkEnd(m BookmarkEnd) Hyperlink {
	h.Children = append(h.Children, m)
	return h
}

// AddInsert appends a tracked insertion.
func (h Hyperlink) AddInsert(i Insert) Hyperlink {
	h.Children = append(h.Children, i)
	return h
}

// AddDelete appends a tracked deletion.
func (h Hyperlink) AddDelete(d Delete) Hyperlink {
	h.Children = append(h.Children, d)
	return h
}

// AddCommentStart appends a comment range opening.
func (h Hyperlink) AddCommentStart(c CommentRangeStart) Hyperlink {
	h.Children = append(h.Children, c)
	return h
}

// AddCommentEnd appends a comment range closing.
func (h Hyperlink) AddCommentEnd(c CommentRangeEnd) Hyperlink {
	h.Children = append(h.Children, c)
	return h
}

func (Hyperlink) isParagraphChild() {}

func (h Hyperlink) build(b *XMLBuilder) {
	history := 1
	if h.History != nil {
		history = *h.History
	}
	switch h.Kind {
	case HyperlinkKindAnchor:
		b.Open("w:hyperlink",
			attr("w:anchor", h.Anchor),
			attr("w:history", strconv.Itoa(history)),
		)
	default:
		b.Open("w:hyperlink",
			attr("r:id", h.RID),
			attr("w:history", strconv.Itoa(history)),
		)
	}
	for _, c := range h.Children {
		c.build(b)
	}
	b.Close()
}
