package wordml

import "github.com/beevik/etree"

// findDescendant walks the subtree depth first for the first element with
// the given local name.
func findDescendant(el *etree.Element, tag string) *etree.Element {
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			return c
		}
		if found := findDescendant(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func readDrawingPosition(el *etree.Element) DrawingPosition {
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "align":
			return DrawingPosition{Align: c.Text()}
		case "posOffset":
			return DrawingPosition{Offset: parseIntOr(c.Text(), 0)}
		}
	}
	return DrawingPosition{}
}

func readPic(anchor *etree.Element, floating bool) *Pic {
	blip := findDescendant(anchor, "blip")
	if blip == nil {
		return nil
	}
	rid, ok := attrValue(blip, "embed")
	if !ok {
		return nil
	}
	p := Pic{RelationshipID: rid, Floating: floating}
	p.DistT = parseIntOr(attrOr(anchor, "distT", ""), 0)
	p.DistB = parseIntOr(attrOr(anchor, "distB", ""), 0)
	p.DistL = parseIntOr(attrOr(anchor, "distL", ""), 0)
	p.DistR = parseIntOr(attrOr(anchor, "distR", ""), 0)
	if floating {
		p.SimplePos = parseOnOff(attrOr(anchor, "simplePos", "0"))
		p.AllowOverlap = parseOnOff(attrOr(anchor, "allowOverlap", "0"))
		p.LayoutInCell = parseOnOff(attrOr(anchor, "layoutInCell", "0"))
		p.RelativeHeight = parseIntOr(attrOr(anchor, "relativeHeight", ""), 0)
	}
	for _, c := range anchor.ChildElements() {
		switch c.Tag {
		case "extent":
			p.Cx = parseIntOr(attrOr(c, "cx", ""), 0)
			p.Cy = parseIntOr(attrOr(c, "cy", ""), 0)
		case "simplePos":
			p.SimplePosX = parseIntOr(attrOr(c, "x", ""), 0)
			p.SimplePosY = parseIntOr(attrOr(c, "y", ""), 0)
		case "positionH":
			p.RelativeFromH = attrOr(c, "relativeFrom", "margin")
			p.PositionH = readDrawingPosition(c)
		case "positionV":
			p.RelativeFromV = attrOr(c, "relativeFrom", "margin")
			p.PositionV = readDrawingPosition(c)
		case "docPr":
			p.DocPrID = attrOr(c, "id", "")
			p.Name = attrOr(c, "name", "")
			p.Description = attrOr(c, "descr", "")
		}
	}
	if p.Name == "Figure" {
		p.Name = ""
	}
	if xfrm := findDescendant(anchor, "xfrm"); xfrm != nil {
		if rot, ok := attrValue(xfrm, "rot"); ok {
			if n, ok := parseInt(rot); ok {
				p.Rotation = n / 60000
			}
		}
	}
	return &p
}

func readTextBox(el *etree.Element) *TextBox {
	content := findDescendant(el, "txbxContent")
	if content == nil {
		return nil
	}
	children, _ := readBlockChildren(content, "txbxContent")
	return &TextBox{Children: children}
}

// readDrawing maps a drawing to its single payload. A drawing with neither a
// picture nor a text box is dropped.
func readDrawing(el *etree.Element) RunChild {
	for _, c := range el.ChildElements() {
		floating := c.Tag == "anchor"
		if c.Tag != "inline" && c.Tag != "anchor" {
			dropChild("drawing", c)
			continue
		}
		if pic := findDescendant(c, "pic"); pic != nil {
			if p := readPic(c, floating); p != nil {
				return Drawing{Pic: p}
			}
		}
		if tb := readTextBox(c); tb != nil {
			return Drawing{TextBox: tb}
		}
	}
	return nil
}
