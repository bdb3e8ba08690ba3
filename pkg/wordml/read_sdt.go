package wordml

import "github.com/beevik/etree"

func readDataBinding(el *etree.Element) DataBinding {
	d := DataBinding{}
	if v, ok := attrValue(el, "xpath"); ok {
		d.XPath = &v
	}
	if v, ok := attrValue(el, "prefixMappings"); ok {
		d.PrefixMappings = &v
	}
	if v, ok := attrValue(el, "storeItemID"); ok {
		d.StoreItemID = &v
	}
	return d
}

func readStructuredDataTagProperty(el *etree.Element) StructuredDataTagProperty {
	p := StructuredDataTagProperty{}
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "rPr":
			p.RunProperty = readRunProperty(c)
		case "dataBinding":
			if p.DataBinding == nil {
				d := readDataBinding(c)
				p.DataBinding = &d
			}
		case "alias":
			setStringVal(&p.Alias, c)
		default:
			dropChild("sdtPr", c)
		}
	}
	return p
}

func readStructuredDataTag(el *etree.Element) StructuredDataTag {
	t := StructuredDataTag{}
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "sdtPr":
			t.Property = readStructuredDataTagProperty(c)
		case "sdtContent":
			for _, cc := range c.ChildElements() {
				switch cc.Tag {
				case "p":
					p := readParagraph(cc)
					t.Children = append(t.Children, p)
					if p.HasNumbering {
						t.HasNumbering = true
					}
				case "tbl":
					tbl := readTable(cc)
					t.Children = append(t.Children, tbl)
					if tbl.HasNumbering {
						t.HasNumbering = true
					}
				case "r":
					if isCommentReferenceRun(cc) {
						continue
					}
					t.Children = append(t.Children, readRun(cc))
				case "sdt":
					inner := readStructuredDataTag(cc)
					t.Children = append(t.Children, inner)
					if inner.HasNumbering {
						t.HasNumbering = true
					}
				case "bookmarkStart":
					if m, ok := readBookmarkStart(cc); ok {
						t.Children = append(t.Children, m)
					}
				case "bookmarkEnd":
					if m, ok := readBookmarkEnd(cc); ok {
						t.Children = append(t.Children, m)
					}
				case "commentRangeStart":
					if m, ok := readCommentRangeStart(cc); ok {
						t.Children = append(t.Children, m)
					}
				case "commentRangeEnd":
					if m, ok := readCommentRangeEnd(cc); ok {
						t.Children = append(t.Children, m)
					}
				default:
					dropChild("sdtContent", cc)
				}
			}
		default:
			dropChild("sdt", c)
		}
	}
	return t
}
