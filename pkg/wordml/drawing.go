package wordml

import "strconv"

// EMUPerPixel converts 96dpi pixels to English Metric Units. One inch is
// 914400 EMU.
const EMUPerPixel = 9525

// DrawingPosition is either an absolute EMU offset or a named alignment.
type DrawingPosition struct {
	Align  string
	Offset int
}

// PositionOffset returns an absolute position.
func PositionOffset(emu int) DrawingPosition { return DrawingPosition{Offset: emu} }

// PositionAlign returns an aligned position (left, right, center, top,
// bottom).
func PositionAlign(v string) DrawingPosition { return DrawingPosition{Align: v} }

// Pic is an embedded raster picture referenced through a relationship id.
// The binary payload itself lives outside this model.
type Pic struct {
	RelationshipID string
	// Size in EMU.
	Cx int
	Cy int
	// Rotation in degrees.
	Rotation       int
	Floating       bool
	SimplePos      bool
	SimplePosX     int
	SimplePosY     int
	LayoutInCell   bool
	AllowOverlap   bool
	RelativeHeight int
	DistT          int
	DistB          int
	DistL          int
	DistR          int
	RelativeFromH  string
	RelativeFromV  string
	PositionH      DrawingPosition
	PositionV      DrawingPosition
	DocPrID        string
	Name           string
	Description    string
}

// NewPic returns an inline picture bound to a relationship id, sized in
// pixels.
func NewPic(relationshipID string, widthPx, heightPx int) Pic {
	return Pic{
		RelationshipID: relationshipID,
		Cx:             widthPx * EMUPerPixel,
		Cy:             heightPx * EMUPerPixel,
		RelativeHeight: 190500,
		RelativeFromH:  "margin",
		RelativeFromV:  "margin",
	}
}

// WithSize overrides the size in EMU.
func (p Pic) WithSize(cxEmu, cyEmu int) Pic { p.Cx = cxEmu; p.Cy = cyEmu; return p }

// AsFloating anchors the picture instead of placing it inline.
func (p Pic) AsFloating() Pic { p.Floating = true; return p }

// Overlapping lets text overlap the picture.
func (p Pic) Overlapping() Pic { p.AllowOverlap = true; return p }

func (p Pic) WithOffsetX(emu int) Pic             { p.PositionH = PositionOffset(emu); return p }
func (p Pic) WithOffsetY(emu int) Pic             { p.PositionV = PositionOffset(emu); return p }
func (p Pic) WithPositionH(d DrawingPosition) Pic { p.PositionH = d; return p }
func (p Pic) WithPositionV(d DrawingPosition) Pic { p.PositionV = d; return p }
func (p Pic) WithRelativeFromH(v string) Pic      { p.RelativeFromH = v; return p }
func (p Pic) WithRelativeFromV(v string) Pic      { p.RelativeFromV = v; return p }
func (p Pic) WithRotation(deg int) Pic            { p.Rotation = deg; return p }
func (p Pic) WithName(v string) Pic               { p.Name = v; return p }
func (p Pic) WithDescription(v string) Pic        { p.Description = v; return p }

func (p Pic) docPrName() string {
	if p.Name == "" {
		return "Figure"
	}
	return p.Name
}

func (p Pic) build(b *XMLBuilder) {
	cx := strconv.Itoa(p.Cx)
	cy := strconv.Itoa(p.Cy)
	b.Open("pic:pic", attr("xmlns:pic", "http://schemas.openxmlformats.org/drawingml/2006/picture"))
	b.Open("pic:nvPicPr")
	b.Empty("pic:cNvPr", attr("id", "0"), attr("name", ""))
	b.Open("pic:cNvPicPr")
	b.Empty("a:picLocks", attr("noChangeAspect", "1"), attr("noChangeArrowheads", "1"))
	b.Close() // pic:cNvPicPr
	b.Close() // pic:nvPicPr
	b.Open("pic:blipFill")
	b.Empty("a:blip", attr("r:embed", p.RelationshipID))
	b.Empty("a:srcRect")
	b.Open("a:stretch").Empty("a:fillRect").Close()
	b.Close() // pic:blipFill
	b.Open("pic:spPr", attr("bwMode", "auto"))
	b.Open("a:xfrm", attr("rot", strconv.Itoa(p.Rotation*60000)))
	b.Empty("a:off", attr("x", "0"), attr("y", "0"))
	b.Empty("a:ext", attr("cx", cx), attr("cy", cy))
	b.Close() // a:xfrm
	b.Open("a:prstGeom", attr("prst", "rect")).Empty("a:avLst").Close()
	b.Close() // pic:spPr
	b.Close() // pic:pic
}

// TextBox is a shape-hosted block content container. It is read-only: the
// reader can produce one but there is no canonical writer for it.
type TextBox struct {
	Children []BlockChild
}

// Drawing wraps exactly one graphical payload. Only the picture payload has
// a writer; an empty drawing or a text box fails loudly on emission.
type Drawing struct {
	Pic     *Pic
	TextBox *TextBox
}

// NewDrawing returns an empty drawing.
func NewDrawing() Drawing { return Drawing{} }

// WithPic sets the picture payload.
func (d Drawing) WithPic(p Pic) Drawing { d.Pic = &p; return d }

func (Drawing) isRunChild() {}

func (d Drawing) build(b *XMLBuilder) {
	if d.TextBox != nil {
		b.fail(NewUnsupportedError("drawing text box"))
		return
	}
	if d.Pic == nil {
		b.fail(NewUnsupportedError("empty drawing"))
		return
	}
	p := d.Pic
	b.Open("w:drawing")
	if !p.Floating {
		b.Open("wp:inline",
			attr("distT", strconv.Itoa(p.DistT)),
			attr("distB", strconv.Itoa(p.DistB)),
			attr("distL", strconv.Itoa(p.DistL)),
			attr("distR", strconv.Itoa(p.DistR)),
		)
	} else {
		b.Open("wp:anchor",
			attr("distT", strconv.Itoa(p.DistT)),
			attr("distB", strconv.Itoa(p.DistB)),
			attr("distL", strconv.Itoa(p.DistL)),
			attr("distR", strconv.Itoa(p.DistR)),
			attr("simplePos", boolAttr(p.SimplePos)),
			attr("allowOverlap", boolAttr(p.AllowOverlap)),
			attr("behindDoc", "0"),
			attr("locked", "0"),
			attr("layoutInCell", boolAttr(p.LayoutInCell)),
			attr("relativeHeight", strconv.Itoa(p.RelativeHeight)),
		)
		b.Empty("wp:simplePos",
			attr("x", strconv.Itoa(p.SimplePosX)),
			attr("y", strconv.Itoa(p.SimplePosY)),
		)
		buildWpPosition(b, "wp:positionH", p.RelativeFromH, p.PositionH)
		buildWpPosition(b, "wp:positionV", p.RelativeFromV, p.PositionV)
	}
	b.Empty("wp:extent", attr("cx", strconv.Itoa(p.Cx)), attr("cy", strconv.Itoa(p.Cy)))
	b.Empty("wp:effectExtent", attr("b", "0"), attr("l", "0"), attr("r", "0"), attr("t", "0"))
	if p.AllowOverlap {
		b.Empty("wp:wrapNone")
	} else if p.Floating {
		b.Empty("wp:wrapSquare", attr("wrapText", "bothSides"))
	}
	docPrID := p.DocPrID
	if docPrID == "" {
		docPrID = "1"
	}
	b.Empty("wp:docPr",
		attr("id", docPrID),
		attr("name", p.docPrName()),
		attr("descr", p.Description),
	)
	b.Open("wp:cNvGraphicFramePr")
	b.Empty("a:graphicFrameLocks",
		attr("xmlns:a", "http://schemas.openxmlformats.org/drawingml/2006/main"),
		attr("noChangeAspect", "1"),
	)
	b.Close()
	b.Open("a:graphic", attr("xmlns:a", "http://schemas.openxmlformats.org/drawingml/2006/main"))
	b.Open("a:graphicData", attr("uri", "http://schemas.openxmlformats.org/drawingml/2006/picture"))
	p.build(b)
	b.Close() // a:graphicData
	b.Close() // a:graphic
	b.Close() // wp:inline / wp:anchor
	b.Close() // w:drawing
}

func buildWpPosition(b *XMLBuilder, tag, relativeFrom string, pos DrawingPosition) {
	b.Open(tag, attr("relativeFrom", relativeFrom))
	if pos.Align != "" {
		b.Open("wp:align").Text(pos.Align).Close()
	} else {
		b.Open("wp:posOffset").Text(strconv.Itoa(pos.Offset)).Close()
	}
	b.Close()
}

func boolAttr(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
