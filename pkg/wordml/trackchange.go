package wordml

import "strconv"

const (
	defaultChangeAuthor = "unnamed"
	defaultChangeDate   = "1970-01-01T00:00:00Z"
)

// TrackChangeMark records who changed run formatting and when. Unlike
// Insert/Delete it wraps no content; it renders as an empty marker element
// inside the property block that was changed.
type TrackChangeMark struct {
	ID     int
	Author string
	Date   string
}

// NewTrackChangeMark returns a mark with the default author and epoch date.
func NewTrackChangeMark() TrackChangeMark {
	return TrackChangeMark{Author: defaultChangeAuthor, Date: defaultChangeDate}
}

func (m TrackChangeMark) WithID(id int) TrackChangeMark           { m.ID = id; return m }
func (m TrackChangeMark) WithIDFrom(c *IDCounter) TrackChangeMark { m.ID = c.Next(); return m }
func (m TrackChangeMark) WithAuthor(v string) TrackChangeMark     { m.Author = v; return m }
func (m TrackChangeMark) WithDate(v string) TrackChangeMark       { m.Date = v; return m }

func (m TrackChangeMark) buildAs(b *XMLBuilder, tag string) {
	b.Empty(tag,
		attr("w:id", strconv.Itoa(m.ID)),
		attr("w:author", m.Author),
		attr("w:date", m.Date),
	)
}

// InsertChild is one child of a tracked insertion.
type InsertChild interface {
	element
	isInsertChild()
}

// DeleteChild is one child of a tracked deletion.
type DeleteChild interface {
	element
	isDeleteChild()
}

// Insert is a tracked insertion. The id is sequential within one build
// context; pass the document's IDCounter (or set one explicitly) rather
// than relying on any process-wide state.
type Insert struct {
	ID       int
	Author   string
	Date     string
	Children []InsertChild
}

// NewInsert returns an insertion wrapping one run, with the default author
// and epoch date.
func NewInsert(run Run) Insert {
	return Insert{
		Author:   defaultChangeAuthor,
		Date:     defaultChangeDate,
		Children: []InsertChild{run},
	}
}

func (i Insert) WithID(id int) Insert           { i.ID = id; return i }
func (i Insert) WithIDFrom(c *IDCounter) Insert { i.ID = c.Next(); return i }
func (i Insert) WithAuthor(v string) Insert     { i.Author = v; return i }
func (i Insert) WithDate(v string) Insert       { i.Date = v; return i }

// AddRun appends another inserted run.
func (i Insert) AddRun(r Run) Insert {
	i.Children = append(i.Children, r)
	return i
}

// AddDelete nests a deletion, as produced when an insertion is itself
// revised.
func (i Insert) AddDelete(d Delete) Insert {
	i.Children = append(i.Children, d)
	return i
}

// AddCommentStart appends a comment range opening.
func (i Insert) AddCommentStart(c CommentRangeStart) Insert {
	i.Children = append(i.Children, c)
	return i
}

// AddCommentEnd appends a comment range closing.
func (i Insert) AddCommentEnd(c CommentRangeEnd) Insert {
	i.Children = append(i.Children, c)
	return i
}

func (Insert) isParagraphChild() {}
func (Insert) isHyperlinkChild() {}

func (i Insert) build(b *XMLBuilder) {
	b.Open("w:ins",
		attr("w:id", strconv.Itoa(i.ID)),
		attr("w:author", i.Author),
		attr("w:date", i.Date),
	)
	for _, c := range i.Children {
		c.build(b)
	}
	b.Close()
}

// Delete is a tracked deletion.
type Delete struct {
	ID       int
	Author   string
	Date     string
	Children []DeleteChild
}

// NewDelete returns a deletion wrapping one run, with the default author
// and epoch date.
func NewDelete(run Run) Delete {
	return Delete{
		Author:   defaultChangeAuthor,
		Date:     defaultChangeDate,
		Children: []DeleteChild{run},
	}
}

func (d Delete) WithID(id int) Delete           { d.ID = id; return d }
func (d Delete) WithIDFrom(c *IDCounter) Delete { d.ID = c.Next(); return d }
func (d Delete) WithAuthor(v string) Delete     { d.Author = v; return d }
func (d Delete) WithDate(v string) Delete       { d.Date = v; return d }

// AddRun appends another deleted run.
func (d Delete) AddRun(r Run) Delete {
	d.Children = append(d.Children, r)
	return d
}

// AddCommentStart appends a comment range opening.
func (d Delete) AddCommentStart(c CommentRangeStart) Delete {
	d.Children = append(d.Children, c)
	return d
}

// AddCommentEnd appends a comment range closing.
func (d Delete) AddCommentEnd(c CommentRangeEnd) Delete {
	d.Children = append(d.Children, c)
	return d
}

func (Delete) isParagraphChild() {}
func (Delete) isHyperlinkChild() {}
func (Delete) isInsertChild()    {}

func (d Delete) build(b *XMLBuilder) {
	b.Open("w:del",
		attr("w:id", strconv.Itoa(d.ID)),
		attr("w:author", d.Author),
		attr("w:date", d.Date),
	)
	for _, c := range d.Children {
		c.build(b)
	}
	b.Close()
}
