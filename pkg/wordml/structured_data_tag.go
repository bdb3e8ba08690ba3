package wordml

// DataBinding ties a structured tag to an external XML store.
type DataBinding struct {
	XPath          *string
	PrefixMappings *string
	StoreItemID    *string
}

// NewDataBinding returns an empty binding.
func NewDataBinding() DataBinding { return DataBinding{} }

func (d DataBinding) WithXPath(v string) DataBinding          { d.XPath = &v; return d }
func (d DataBinding) WithPrefixMappings(v string) DataBinding { d.PrefixMappings = &v; return d }
func (d DataBinding) WithStoreItemID(v string) DataBinding    { d.StoreItemID = &v; return d }

func (d DataBinding) build(b *XMLBuilder) {
	attrs := make([]Attr, 0, 3)
	if d.XPath != nil {
		attrs = append(attrs, attr("w:xpath", *d.XPath))
	}
	if d.PrefixMappings != nil {
		attrs = append(attrs, attr("w:prefixMappings", *d.PrefixMappings))
	}
	if d.StoreItemID != nil {
		attrs = append(attrs, attr("w:storeItemID", *d.StoreItemID))
	}
	b.Empty("w:dataBinding", attrs...)
}

// StructuredDataTagProperty is the sdtPr block. The run property is always
// written, matching the empty-but-present convention of the dialect.
type StructuredDataTagProperty struct {
	RunProperty RunProperty
	DataBinding *DataBinding
	Alias       *string
}

// NewStructuredDataTagProperty returns an empty property block.
func NewStructuredDataTagProperty() StructuredDataTagProperty {
	return StructuredDataTagProperty{}
}

func (p StructuredDataTagProperty) WithAlias(v string) StructuredDataTagProperty {
	p.Alias = &v
	return p
}

func (p StructuredDataTagProperty) WithDataBinding(d DataBinding) StructuredDataTagProperty {
	p.DataBinding = &d
	return p
}

func (p StructuredDataTagProperty) build(b *XMLBuilder) {
	b.Open("w:sdtPr")
	p.RunProperty.build(b)
	if p.DataBinding != nil {
		p.DataBinding.build(b)
	}
	if p.Alias != nil {
		b.Empty("w:alias", attr("w:val", *p.Alias))
	}
	b.Close()
}

// SDTChild is one child of a structured tag's content block. Structured
// tags nest arbitrarily, so the set includes the tag itself.
type SDTChild interface {
	element
	isSDTChild()
}

// StructuredDataTag is a bound or templated content region.
type StructuredDataTag struct {
	Property     StructuredDataTagProperty
	Children     []SDTChild
	HasNumbering bool
}

// NewStructuredDataTag returns an empty tag.
func NewStructuredDataTag() StructuredDataTag { return StructuredDataTag{} }

func (StructuredDataTag) isDocumentChild()  {}
func (StructuredDataTag) isParagraphChild() {}
func (StructuredDataTag) isBlockChild()     {}
func (StructuredDataTag) isSDTChild()       {}

// WithAlias names the region.
func (t StructuredDataTag) WithAlias(v string) StructuredDataTag {
	t.Property = t.Property.WithAlias(v)
	return t
}

// WithDataBinding binds the region to an external store.
func (t StructuredDataTag) WithDataBinding(d DataBinding) StructuredDataTag {
	t.Property = t.Property.WithDataBinding(d)
	return t
}

// AddRun appends an inline run.
func (t StructuredDataTag) AddRun(r Run) StructuredDataTag {
	t.Children = append(t.Children, r)
	return t
}

// AddParagraph appends a paragraph and folds in its numbering flag.
func (t StructuredDataTag) AddParagraph(p Paragraph) StructuredDataTag {
	t.Children = append(t.Children, p)
	if p.HasNumbering {
		t.HasNumbering = true
	}
	return t
}

// AddTable appends a table and folds in its numbering flag.
func (t StructuredDataTag) AddTable(tbl Table) StructuredDataTag {
	t.Children = append(t.Children, tbl)
	if tbl.HasNumbering {
		t.HasNumbering = true
	}
	return t
}

// AddBookmarkStart appends a bookmark opening.
func (t StructuredDataTag) AddBookmarkStart(id int, name string) StructuredDataTag {
	t.Children = append(t.Children, NewBookmarkStart(id, name))
	return t
}

// AddBookmarkEnd appends a bookmark closing.
func (t StructuredDataTag) AddBookmarkEnd(id int) StructuredDataTag {
	t.Children = append(t.Children, NewBookmarkEnd(id))
	return t
}

// AddCommentStart appends a comment range opening.
func (t StructuredDataTag) AddCommentStart(c Comment) StructuredDataTag {
	t.Children = append(t.Children, NewCommentRangeStart(c))
	return t
}

// AddCommentEnd appends a comment range closing.
func (t StructuredDataTag) AddCommentEnd(id int) StructuredDataTag {
	t.Children = append(t.Children, NewCommentRangeEnd(id))
	return t
}

// AddStructuredDataTag nests another tag.
func (t StructuredDataTag) AddStructuredDataTag(inner StructuredDataTag) StructuredDataTag {
	t.Children = append(t.Children, inner)
	if inner.HasNumbering {
		t.HasNumbering = true
	}
	return t
}

func (t StructuredDataTag) build(b *XMLBuilder) {
	b.Open("w:sdt")
	t.Property.build(b)
	b.Open("w:sdtContent")
	for _, c := range t.Children {
		c.build(b)
	}
	b.Close()
	b.Close()
}

// XML renders the tag fragment.
func (t StructuredDataTag) XML() (string, error) {
	return buildString(t)
}
