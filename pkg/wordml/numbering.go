package wordml

import (
	"io"
	"strconv"
)

// Level is one tier of an abstract numbering definition.
type Level struct {
	Level        int
	Start        int
	Format       string
	Text         string
	Jc           string
	Suffix       LevelSuffix
	LevelRestart *int
	IsLgl        bool

	ParagraphProperty ParagraphProperty
	RunProperty       RunProperty
}

// NewLevel returns a level with the documented defaults.
func NewLevel(level int) Level {
	return Level{
		Level:  level,
		Start:  1,
		Format: "decimal",
		Jc:     "left",
		Suffix: LevelSuffixTab,
	}
}

func (l Level) WithStart(v int) Level     { l.Start = v; return l }
func (l Level) WithFormat(v string) Level { l.Format = v; return l }
func (l Level) WithText(v string) Level   { l.Text = v; return l }
func (l Level) WithJc(v string) Level     { l.Jc = v; return l }
func (l Level) WithSuffix(s LevelSuffix) Level {
	l.Suffix = s
	return l
}
func (l Level) WithLevelRestart(v int) Level { l.LevelRestart = &v; return l }
func (l Level) WithIsLgl() Level             { l.IsLgl = true; return l }

func (l Level) WithParagraphProperty(p ParagraphProperty) Level {
	l.ParagraphProperty = p
	return l
}

func (l Level) WithRunProperty(p RunProperty) Level {
	l.RunProperty = p
	return l
}

func (l Level) build(b *XMLBuilder) {
	b.Open("w:lvl", attr("w:ilvl", strconv.Itoa(l.Level)))
	b.Empty("w:start", attr("w:val", strconv.Itoa(l.Start)))
	b.Empty("w:numFmt", attr("w:val", l.Format))
	b.Empty("w:lvlText", attr("w:val", l.Text))
	b.Empty("w:lvlJc", attr("w:val", l.Jc))
	if l.LevelRestart != nil {
		b.Empty("w:lvlRestart", attr("w:val", strconv.Itoa(*l.LevelRestart)))
	}
	if l.IsLgl {
		b.Empty("w:isLgl")
	}
	if l.Suffix != LevelSuffixTab {
		b.Empty("w:suff", attr("w:val", string(l.Suffix)))
	}
	l.ParagraphProperty.build(b)
	l.RunProperty.build(b)
	b.Close()
}

// AbstractNumbering is a reusable multi-level list definition.
type AbstractNumbering struct {
	ID             int
	StyleLink      *string
	NumStyleLink   *string
	MultiLevelType *string
	Levels         []Level
}

// NewAbstractNumbering returns an empty definition with the given id.
func NewAbstractNumbering(id int) AbstractNumbering {
	return AbstractNumbering{ID: id}
}

// AddLevel appends a level definition.
func (a AbstractNumbering) AddLevel(l Level) AbstractNumbering {
	a.Levels = append(a.Levels, l)
	return a
}

func (a AbstractNumbering) WithStyleLink(v string) AbstractNumbering {
	a.StyleLink = &v
	return a
}

func (a AbstractNumbering) WithNumStyleLink(v string) AbstractNumbering {
	a.NumStyleLink = &v
	return a
}

func (a AbstractNumbering) WithMultiLevelType(v string) AbstractNumbering {
	a.MultiLevelType = &v
	return a
}

func (a AbstractNumbering) build(b *XMLBuilder) {
	b.Open("w:abstractNum", attr("w:abstractNumId", strconv.Itoa(a.ID)))
	if a.MultiLevelType != nil {
		b.Empty("w:multiLevelType", attr("w:val", *a.MultiLevelType))
	}
	if a.StyleLink != nil {
		b.Empty("w:styleLink", attr("w:val", *a.StyleLink))
	}
	if a.NumStyleLink != nil {
		b.Empty("w:numStyleLink", attr("w:val", *a.NumStyleLink))
	}
	for _, l := range a.Levels {
		l.build(b)
	}
	b.Close()
}

// XML renders the definition fragment.
func (a AbstractNumbering) XML() (string, error) { return buildString(a) }

// LevelOverride restarts one level of a numbering instance, optionally
// replacing the whole level definition.
type LevelOverride struct {
	Level         int
	StartOverride *int
	OverrideLevel *Level
}

// NewLevelOverride returns an override for the given level.
func NewLevelOverride(level int) LevelOverride { return LevelOverride{Level: level} }

func (o LevelOverride) WithStartOverride(v int) LevelOverride {
	o.StartOverride = &v
	return o
}

// WithLevel replaces the overridden level's full definition.
func (o LevelOverride) WithLevel(l Level) LevelOverride {
	o.OverrideLevel = &l
	return o
}

func (o LevelOverride) build(b *XMLBuilder) {
	b.Open("w:lvlOverride", attr("w:ilvl", strconv.Itoa(o.Level)))
	if o.StartOverride != nil {
		b.Empty("w:startOverride", attr("w:val", strconv.Itoa(*o.StartOverride)))
	}
	if o.OverrideLevel != nil {
		o.OverrideLevel.build(b)
	}
	b.Close()
}

// Numbering is a concrete list instance bound to an abstract definition.
type Numbering struct {
	ID             int
	AbstractNumID  int
	LevelOverrides []LevelOverride
}

// NewNumbering binds an instance id to an abstract definition id.
func NewNumbering(id, abstractNumID int) Numbering {
	return Numbering{ID: id, AbstractNumID: abstractNumID}
}

// AddOverride appends a level override.
func (n Numbering) AddOverride(o LevelOverride) Numbering {
	n.LevelOverrides = append(n.LevelOverrides, o)
	return n
}

func (n Numbering) build(b *XMLBuilder) {
	b.Open("w:num", attr("w:numId", strconv.Itoa(n.ID)))
	b.Empty("w:abstractNumId", attr("w:val", strconv.Itoa(n.AbstractNumID)))
	for _, o := range n.LevelOverrides {
		o.build(b)
	}
	b.Close()
}

// XML renders the instance fragment.
func (n Numbering) XML() (string, error) { return buildString(n) }

// Numberings is the numbering definitions part. Abstract definitions are
// written before instances regardless of insertion order.
type Numberings struct {
	Abstracts []AbstractNumbering
	Instances []Numbering
}

// NewNumberings returns an empty part.
func NewNumberings() Numberings { return Numberings{} }

// AddAbstract appends an abstract definition.
func (n Numberings) AddAbstract(a AbstractNumbering) Numberings {
	n.Abstracts = append(n.Abstracts, a)
	return n
}

// AddInstance appends a concrete instance.
func (n Numberings) AddInstance(num Numbering) Numberings {
	n.Instances = append(n.Instances, num)
	return n
}

// FindAbstract returns the abstract definition with the given id.
func (n Numberings) FindAbstract(id int) (AbstractNumbering, bool) {
	for _, a := range n.Abstracts {
		if a.ID == id {
			return a, true
		}
	}
	return AbstractNumbering{}, false
}

// FindInstance returns the instance with the given id.
func (n Numberings) FindInstance(id int) (Numbering, bool) {
	for _, num := range n.Instances {
		if num.ID == id {
			return num, true
		}
	}
	return Numbering{}, false
}

func (n Numberings) build(b *XMLBuilder) {
	b.Declaration()
	b.Open("w:numbering",
		attr("xmlns:w", "http://schemas.openxmlformats.org/wordprocessingml/2006/main"),
		attr("xmlns:w14", "http://schemas.microsoft.com/office/word/2010/wordml"),
		attr("xmlns:w15", "http://schemas.microsoft.com/office/word/2012/wordml"),
	)
	for _, a := range n.Abstracts {
		a.build(b)
	}
	for _, num := range n.Instances {
		num.build(b)
	}
	b.Close()
}

// Write streams the complete part to w.
func (n Numberings) Write(w io.Writer) error { return writePart(w, n) }

// XML renders the complete part including the declaration.
func (n Numberings) XML() (string, error) { return buildString(n) }
