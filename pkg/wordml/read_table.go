package wordml

import "github.com/beevik/etree"

func readTableBorderEdge(el *etree.Element) TableBorder {
	b := NewTableBorder()
	if v, ok := valAttr(el); ok {
		b.Val = v
	}
	if v, ok := attrValue(el, "sz"); ok {
		if n, ok := parseInt(v); ok {
			b.Size = n
		}
	}
	if v, ok := attrValue(el, "space"); ok {
		if n, ok := parseInt(v); ok {
			b.Space = n
		}
	}
	if v, ok := attrValue(el, "color"); ok {
		b.Color = v
	}
	return b
}

func readTableBorders(el *etree.Element) *TableBorders {
	t := TableBorders{}
	for _, c := range el.ChildElements() {
		edge := readTableBorderEdge(c)
		switch c.Tag {
		case "top":
			t.Top = &edge
		case "left", "start":
			t.Left = &edge
		case "bottom":
			t.Bottom = &edge
		case "right", "end":
			t.Right = &edge
		case "insideH":
			t.InsideH = &edge
		case "insideV":
			t.InsideV = &edge
		default:
			dropChild("tblBorders", c)
		}
	}
	return &t
}

func readCellBorders(el *etree.Element) *CellBorders {
	t := CellBorders{}
	for _, c := range el.ChildElements() {
		edge := readTableBorderEdge(c)
		switch c.Tag {
		case "top":
			t.Top = &edge
		case "left", "start":
			t.Left = &edge
		case "bottom":
			t.Bottom = &edge
		case "right", "end":
			t.Right = &edge
		case "insideH":
			t.InsideH = &edge
		case "insideV":
			t.InsideV = &edge
		case "tl2br":
			t.TL2BR = &edge
		case "tr2bl":
			t.TR2BL = &edge
		default:
			dropChild("tcBorders", c)
		}
	}
	return &t
}

func readTableWidth(el *etree.Element) TableWidth {
	w := TableWidth{Type: WidthTypeFromString(attrOr(el, "type", ""))}
	if v, ok := attrValue(el, "w"); ok {
		if n, ok := parseWidthValue(v); ok {
			w.Width = n
		}
	}
	return w
}

func readTableProperty(el *etree.Element) TableProperty {
	p := NewTablePropertyWithoutBorders()
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "tblW":
			p.Width = readTableWidth(c)
		case "jc":
			if v, ok := valAttr(c); ok {
				p.Justification = Justification(v)
			}
		case "tblBorders":
			if p.Borders == nil {
				p.Borders = readTableBorders(c)
			}
		case "tblInd":
			if p.Indent == nil {
				if v, ok := attrValue(c, "w"); ok {
					if n, ok := parseDxa(v); ok {
						p.Indent = &n
					}
				}
			}
		case "tblStyle":
			setStringVal(&p.Style, c)
		case "tblLayout":
			if p.Layout == nil {
				if v, ok := attrValue(c, "type"); ok {
					p.Layout = &v
				}
			}
		default:
			dropChild("tblPr", c)
		}
	}
	return p
}

func readRowTrack(el *etree.Element) *RowTrack {
	t := RowTrack{Author: defaultChangeAuthor, Date: defaultChangeDate}
	t.ID, t.Author, t.Date = readTrackChangeAttrs(el)
	return &t
}

func readTableRowProperty(el *etree.Element) TableRowProperty {
	p := TableRowProperty{}
	setFloat := func(dst **float64, src *etree.Element, name string) {
		if *dst != nil {
			return
		}
		if v, ok := attrValue(src, name); ok {
			if f, ok := parseFloat(v); ok {
				*dst = &f
			}
		}
	}
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "gridBefore":
			setIntVal(&p.GridBefore, c)
		case "wBefore":
			setFloat(&p.WidthBefore, c, "w")
		case "gridAfter":
			setIntVal(&p.GridAfter, c)
		case "wAfter":
			setFloat(&p.WidthAfter, c, "w")
		case "trHeight":
			setFloat(&p.RowHeight, c, "val")
			if p.HeightRule == nil {
				if v, ok := attrValue(c, "hRule"); ok {
					p.HeightRule = &v
				}
			}
		case "cantSplit":
			p.CantSplit = true
		case "ins":
			if p.Ins == nil {
				p.Ins = readRowTrack(c)
			}
		case "del":
			if p.Del == nil {
				p.Del = readRowTrack(c)
			}
		default:
			dropChild("trPr", c)
		}
	}
	return p
}

func readTableCellProperty(el *etree.Element) TableCellProperty {
	p := TableCellProperty{}
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "tcW":
			if p.Width == nil {
				w := readTableWidth(c)
				p.Width = &w
			}
		case "gridSpan":
			setIntVal(&p.GridSpan, c)
		case "vMerge":
			if p.VMerge == nil {
				v := VMergeTypeFromString(valOr(c, ""))
				p.VMerge = &v
			}
		case "vAlign":
			setStringVal(&p.VAlign, c)
		case "textDirection":
			setStringVal(&p.TextDirection, c)
		case "tcBorders":
			if p.Borders == nil {
				p.Borders = readCellBorders(c)
			}
		case "shd":
			if p.Shading == nil {
				s := readShading(c)
				p.Shading = &s
			}
		default:
			dropChild("tcPr", c)
		}
	}
	return p
}

func readTableCell(el *etree.Element) TableCell {
	cell := TableCell{}
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "tcPr":
			cell.Property = readTableCellProperty(c)
		case "p":
			p := readParagraph(c)
			cell.Children = append(cell.Children, p)
			if p.HasNumbering {
				cell.HasNumbering = true
			}
		case "tbl":
			t := readTable(c)
			cell.Children = append(cell.Children, t)
			if t.HasNumbering {
				cell.HasNumbering = true
			}
		case "sdt":
			t := readStructuredDataTag(c)
			cell.Children = append(cell.Children, t)
			if t.HasNumbering {
				cell.HasNumbering = true
			}
		default:
			dropChild("tc", c)
		}
	}
	return cell
}

func readTableRow(el *etree.Element) TableRow {
	row := TableRow{}
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "trPr":
			row.Property = readTableRowProperty(c)
		case "tc":
			cell := readTableCell(c)
			row.Cells = append(row.Cells, cell)
			if cell.HasNumbering {
				row.HasNumbering = true
			}
		default:
			dropChild("tr", c)
		}
	}
	return row
}

func readTable(el *etree.Element) Table {
	t := Table{Property: NewTablePropertyWithoutBorders()}
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "tblPr":
			t.Property = readTableProperty(c)
		case "tblGrid":
			for _, g := range c.ChildElements() {
				if g.Tag != "gridCol" {
					dropChild("tblGrid", g)
					continue
				}
				if v, ok := attrValue(g, "w"); ok {
					if n, ok := parseDxa(v); ok {
						t.Grid = append(t.Grid, n)
					}
				}
			}
		case "tr":
			row := readTableRow(c)
			t.Rows = append(t.Rows, row)
			if row.HasNumbering {
				t.HasNumbering = true
			}
		default:
			dropChild("tbl", c)
		}
	}
	return t
}
