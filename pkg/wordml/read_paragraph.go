package wordml

import "github.com/beevik/etree"

// isCommentReferenceRun reports whether a run only anchors a comment
// reference. The writer synthesizes that run next to every range end, so the
// reader absorbs it to keep re-serialization stable.
func isCommentReferenceRun(el *etree.Element) bool {
	found := false
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "rPr":
		case "commentReference":
			found = true
		default:
			return false
		}
	}
	return found
}

func readCommentRangeStart(el *etree.Element) (CommentRangeStart, bool) {
	v, ok := attrValue(el, "id")
	if !ok {
		return CommentRangeStart{}, false
	}
	id, ok := parseInt(v)
	if !ok {
		return CommentRangeStart{}, false
	}
	c := NewComment(id)
	return CommentRangeStart{ID: id, Comment: c}, true
}

func readCommentRangeEnd(el *etree.Element) (CommentRangeEnd, bool) {
	v, ok := attrValue(el, "id")
	if !ok {
		return CommentRangeEnd{}, false
	}
	id, ok := parseInt(v)
	if !ok {
		return CommentRangeEnd{}, false
	}
	return CommentRangeEnd{ID: id}, true
}

func readBookmarkStart(el *etree.Element) (BookmarkStart, bool) {
	idRaw, okID := attrValue(el, "id")
	name, okName := attrValue(el, "name")
	if !okID || !okName {
		return BookmarkStart{}, false
	}
	id, ok := parseInt(idRaw)
	if !ok {
		return BookmarkStart{}, false
	}
	return BookmarkStart{ID: id, Name: name}, true
}

func readBookmarkEnd(el *etree.Element) (BookmarkEnd, bool) {
	v, ok := attrValue(el, "id")
	if !ok {
		return BookmarkEnd{}, false
	}
	id, ok := parseInt(v)
	if !ok {
		return BookmarkEnd{}, false
	}
	return BookmarkEnd{ID: id}, true
}

func readParagraph(el *etree.Element) Paragraph {
	p := Paragraph{}
	if v, ok := attrValue(el, "paraId"); ok {
		p.ID = v
	}
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "pPr":
			p.Property = readParagraphProperty(c)
			if p.Property.Numbering != nil {
				p.HasNumbering = true
			}
		case "r":
			if isCommentReferenceRun(c) {
				continue
			}
			p.Children = append(p.Children, readRun(c))
		case "hyperlink":
			if h, ok := readHyperlink(c); ok {
				p.Children = append(p.Children, h)
			} else {
				dropChild("p", c)
			}
		case "ins":
			p.Children = append(p.Children, readInsert(c))
		case "del":
			p.Children = append(p.Children, readDelete(c))
		case "bookmarkStart":
			if m, ok := readBookmarkStart(c); ok {
				p.Children = append(p.Children, m)
			}
		case "bookmarkEnd":
			if m, ok := readBookmarkEnd(c); ok {
				p.Children = append(p.Children, m)
			}
		case "commentRangeStart":
			if m, ok := readCommentRangeStart(c); ok {
				p.Children = append(p.Children, m)
			}
		case "commentRangeEnd":
			if m, ok := readCommentRangeEnd(c); ok {
				p.Children = append(p.Children, m)
			}
		case "sdt":
			t := readStructuredDataTag(c)
			p.Children = append(p.Children, t)
			if t.HasNumbering {
				p.HasNumbering = true
			}
		default:
			dropChild("p", c)
		}
	}
	return p
}

// readHyperlink rejects a hyperlink carrying neither a relationship id nor
// an anchor; the parent drops it.
func readHyperlink(el *etree.Element) (Hyperlink, bool) {
	h := Hyperlink{}
	if rid, ok := attrValue(el, "id"); ok {
		h.Kind = HyperlinkKindExternal
		h.RID = rid
	} else if anchor, ok := attrValue(el, "anchor"); ok {
		h.Kind = HyperlinkKindAnchor
		h.Anchor = anchor
	} else {
		return Hyperlink{}, false
	}
	if v, ok := attrValue(el, "history"); ok {
		if n, ok := parseInt(v); ok {
			h.History = &n
		}
	}
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "r":
			if isCommentReferenceRun(c) {
				continue
			}
			h.Children = append(h.Children, readRun(c))
		case "ins":
			h.Children = append(h.Children, readInsert(c))
		case "del":
			h.Children = append(h.Children, readDelete(c))
		case "bookmarkStart":
			if m, ok := readBookmarkStart(c); ok {
				h.Children = append(h.Children, m)
			}
		case "bookmarkEnd":
			if m, ok := readBookmarkEnd(c); ok {
				h.Children = append(h.Children, m)
			}
		case "commentRangeStart":
			if m, ok := readCommentRangeStart(c); ok {
				h.Children = append(h.Children, m)
			}
		case "commentRangeEnd":
			if m, ok := readCommentRangeEnd(c); ok {
				h.Children = append(h.Children, m)
			}
		default:
			dropChild("hyperlink", c)
		}
	}
	return h, true
}

func readTrackChangeAttrs(el *etree.Element) (int, string, string) {
	id := parseIntOr(attrOr(el, "id", ""), 0)
	author := attrOr(el, "author", defaultChangeAuthor)
	date := attrOr(el, "date", defaultChangeDate)
	return id, author, date
}

func readInsert(el *etree.Element) Insert {
	i := Insert{}
	i.ID, i.Author, i.Date = readTrackChangeAttrs(el)
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "r":
			if isCommentReferenceRun(c) {
				continue
			}
			i.Children = append(i.Children, readRun(c))
		case "del":
			i.Children = append(i.Children, readDelete(c))
		case "commentRangeStart":
			if m, ok := readCommentRangeStart(c); ok {
				i.Children = append(i.Children, m)
			}
		case "commentRangeEnd":
			if m, ok := readCommentRangeEnd(c); ok {
				i.Children = append(i.Children, m)
			}
		default:
			dropChild("ins", c)
		}
	}
	return i
}

func readDelete(el *etree.Element) Delete {
	d := Delete{}
	d.ID, d.Author, d.Date = readTrackChangeAttrs(el)
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "r":
			if isCommentReferenceRun(c) {
				continue
			}
			d.Children = append(d.Children, readRun(c))
		case "commentRangeStart":
			if m, ok := readCommentRangeStart(c); ok {
				d.Children = append(d.Children, m)
			}
		case "commentRangeEnd":
			if m, ok := readCommentRangeEnd(c); ok {
				d.Children = append(d.Children, m)
			}
		default:
			dropChild("del", c)
		}
	}
	return d
}

func readNumberingProperty(el *etree.Element) *NumberingProperty {
	n := NumberingProperty{}
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "ilvl":
			setIntVal(&n.Level, c)
		case "numId":
			setIntVal(&n.NumID, c)
		default:
			dropChild("numPr", c)
		}
	}
	if n.NumID == nil && n.Level == nil {
		return nil
	}
	return &n
}

func readIndent(el *etree.Element) *Indent {
	i := Indent{}
	if v, ok := attrValue(el, "left"); ok {
		if n, ok := parseDxa(v); ok {
			i.Start = &n
		}
	} else if v, ok := attrValue(el, "start"); ok {
		if n, ok := parseDxa(v); ok {
			i.Start = &n
		}
	}
	if v, ok := attrValue(el, "right"); ok {
		if n, ok := parseDxa(v); ok {
			i.End = &n
		}
	} else if v, ok := attrValue(el, "end"); ok {
		if n, ok := parseDxa(v); ok {
			i.End = &n
		}
	}
	// Hanging wins over firstLine when both appear.
	if v, ok := attrValue(el, "hanging"); ok {
		if n, ok := parseDxa(v); ok {
			i.Special = &SpecialIndent{Kind: SpecialIndentHanging, Val: n}
		}
	}
	if i.Special == nil {
		if v, ok := attrValue(el, "firstLine"); ok {
			if n, ok := parseDxa(v); ok {
				i.Special = &SpecialIndent{Kind: SpecialIndentFirstLine, Val: n}
			}
		}
	}
	if v, ok := attrValue(el, "leftChars"); ok {
		if n, ok := parseInt(v); ok {
			i.StartChars = &n
		}
	}
	if i.Start == nil && i.End == nil && i.Special == nil && i.StartChars == nil {
		return nil
	}
	return &i
}

func readLineSpacing(el *etree.Element) *LineSpacing {
	s := LineSpacing{}
	setAttrDxa := func(dst **int, name string) {
		if v, ok := attrValue(el, name); ok {
			if n, ok := parseDxa(v); ok {
				*dst = &n
			}
		}
	}
	setAttrDxa(&s.Before, "before")
	setAttrDxa(&s.After, "after")
	setAttrDxa(&s.Line, "line")
	if v, ok := attrValue(el, "beforeLines"); ok {
		if n, ok := parseInt(v); ok {
			s.BeforeLines = &n
		}
	}
	if v, ok := attrValue(el, "afterLines"); ok {
		if n, ok := parseInt(v); ok {
			s.AfterLines = &n
		}
	}
	if v, ok := attrValue(el, "lineRule"); ok {
		s.LineRule = &v
	}
	if s.isZero() {
		return nil
	}
	return &s
}

func readTabStop(el *etree.Element) TabStop {
	t := TabStop{}
	if v, ok := valAttr(el); ok {
		t.Val = &v
	}
	if v, ok := attrValue(el, "leader"); ok {
		t.Leader = &v
	}
	if v, ok := attrValue(el, "pos"); ok {
		if n, ok := parseDxa(v); ok {
			t.Pos = &n
		}
	}
	return t
}

// readParagraphProperty fills the formatting block. First occurrence of a
// child wins; later duplicates are ignored.
func readParagraphProperty(el *etree.Element) ParagraphProperty {
	p := ParagraphProperty{}
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "pStyle":
			setStringVal(&p.Style, c)
		case "rPr":
			p.RunProperty = readRunProperty(c)
		case "numPr":
			if p.Numbering == nil {
				p.Numbering = readNumberingProperty(c)
			}
		case "jc":
			if p.Alignment == nil {
				if v, ok := valAttr(c); ok {
					j := Justification(v)
					p.Alignment = &j
				}
			}
		case "ind":
			if p.Indent == nil {
				p.Indent = readIndent(c)
			}
		case "spacing":
			if p.LineSpacing == nil {
				p.LineSpacing = readLineSpacing(c)
			}
		case "textAlignment":
			setStringVal(&p.TextAlignment, c)
		case "adjustRightInd":
			setIntVal(&p.AdjustRightInd, c)
		case "outlineLvl":
			setIntVal(&p.OutlineLvl, c)
		case "snapToGrid":
			setToggle(&p.SnapToGrid, c)
		case "keepNext":
			setToggle(&p.KeepNext, c)
		case "keepLines":
			setToggle(&p.KeepLines, c)
		case "pageBreakBefore":
			setToggle(&p.PageBreakBefore, c)
		case "widowControl":
			setToggle(&p.WidowControl, c)
		case "tabs":
			if p.Tabs == nil {
				for _, t := range c.ChildElements() {
					if t.Tag == "tab" {
						p.Tabs = append(p.Tabs, readTabStop(t))
					}
				}
			}
		case "divId":
			setStringVal(&p.DivID, c)
		default:
			dropChild("pPr", c)
		}
	}
	return p
}
