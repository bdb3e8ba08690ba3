package wordml

import "github.com/beevik/etree"

func readDocumentRoot(root *etree.Element) Document {
	d := Document{SectionProperty: NewSectionProperty()}
	body := findDescendant(root, "body")
	if body == nil {
		return d
	}
	for _, c := range body.ChildElements() {
		switch c.Tag {
		case "p":
			p := readParagraph(c)
			d.Children = append(d.Children, p)
			if p.HasNumbering {
				d.HasNumbering = true
			}
		case "tbl":
			t := readTable(c)
			d.Children = append(d.Children, t)
			if t.HasNumbering {
				d.HasNumbering = true
			}
		case "sdt":
			t := readStructuredDataTag(c)
			d.Children = append(d.Children, t)
			if t.HasNumbering {
				d.HasNumbering = true
			}
		case "bookmarkStart":
			if m, ok := readBookmarkStart(c); ok {
				d.Children = append(d.Children, m)
			}
		case "bookmarkEnd":
			if m, ok := readBookmarkEnd(c); ok {
				d.Children = append(d.Children, m)
			}
		case "commentRangeStart":
			if m, ok := readCommentRangeStart(c); ok {
				d.Children = append(d.Children, m)
			}
		case "commentRangeEnd":
			if m, ok := readCommentRangeEnd(c); ok {
				d.Children = append(d.Children, m)
			}
		case "sectPr":
			d.SectionProperty = readSectionProperty(c)
		default:
			dropChild("body", c)
		}
	}
	return d
}

func readPageSize(el *etree.Element) PageSize {
	p := NewPageSize()
	if v, ok := attrValue(el, "w"); ok {
		if n, ok := parseUint(v); ok {
			p.Width = n
		}
	}
	if v, ok := attrValue(el, "h"); ok {
		if n, ok := parseUint(v); ok {
			p.Height = n
		}
	}
	if v, ok := attrValue(el, "orient"); ok {
		p.Orient = &v
	}
	return p
}

func readPageMargin(el *etree.Element) PageMargin {
	m := NewPageMargin()
	set := func(dst *int, name string) {
		if v, ok := attrValue(el, name); ok {
			if n, ok := parseDxa(v); ok {
				*dst = n
			}
		}
	}
	set(&m.Top, "top")
	set(&m.Right, "right")
	set(&m.Bottom, "bottom")
	set(&m.Left, "left")
	set(&m.Header, "header")
	set(&m.Footer, "footer")
	set(&m.Gutter, "gutter")
	return m
}

func readDocGrid(el *etree.Element) DocGrid {
	g := DocGrid{GridType: attrOr(el, "type", "default")}
	if v, ok := attrValue(el, "linePitch"); ok {
		if n, ok := parseInt(v); ok {
			g.LinePitch = &n
		}
	}
	if v, ok := attrValue(el, "charSpace"); ok {
		if n, ok := parseInt(v); ok {
			g.CharSpace = &n
		}
	}
	return g
}

func readPageNumType(el *etree.Element) PageNumType {
	p := PageNumType{}
	if v, ok := attrValue(el, "start"); ok {
		if n, ok := parseUint(v); ok {
			p.Start = &n
		}
	}
	if v, ok := attrValue(el, "fmt"); ok {
		p.Format = &v
	}
	return p
}

// readSectionProperty fills the section block. Header and footer references
// keep only the relationship id; resolving the id to part content is the
// packaging layer's job.
func readSectionProperty(el *etree.Element) SectionProperty {
	s := NewSectionProperty()
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "pgSz":
			s.PageSize = readPageSize(c)
		case "pgMar":
			s.PageMargin = readPageMargin(c)
		case "cols":
			if v, ok := attrValue(c, "num"); ok {
				s.Columns = parseUintOr(v, 1)
			}
			if v, ok := attrValue(c, "space"); ok {
				s.ColumnSpace = parseUintOr(v, 425)
			}
		case "docGrid":
			g := readDocGrid(c)
			s.DocGrid = &g
		case "headerReference":
			role, ok := headerFooterRoleFromString(attrOr(c, "type", ""))
			if !ok {
				dropChild("sectPr", c)
				continue
			}
			rid, ok := attrValue(c, "id")
			if !ok {
				continue
			}
			ref := &HeaderReference{RID: rid}
			switch role {
			case HeaderFooterRoleFirst:
				s.HeaderFirst = ref
			case HeaderFooterRoleEven:
				s.HeaderEven = ref
			default:
				s.HeaderDefault = ref
			}
		case "footerReference":
			role, ok := headerFooterRoleFromString(attrOr(c, "type", ""))
			if !ok {
				dropChild("sectPr", c)
				continue
			}
			rid, ok := attrValue(c, "id")
			if !ok {
				continue
			}
			ref := &FooterReference{RID: rid}
			switch role {
			case HeaderFooterRoleFirst:
				s.FooterFirst = ref
			case HeaderFooterRoleEven:
				s.FooterEven = ref
			default:
				s.FooterDefault = ref
			}
		case "pgNumType":
			p := readPageNumType(c)
			s.PageNumType = &p
		case "textDirection":
			s.TextDirection = valOr(c, "lrTb")
		case "type":
			if v, ok := valAttr(c); ok {
				s.SectionType = &v
			}
		case "titlePg":
			s.TitlePg = onOffValue(c)
		default:
			dropChild("sectPr", c)
		}
	}
	return s
}
