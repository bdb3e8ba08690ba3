package wordml

import (
	"strings"

	"github.com/beevik/etree"
)

func readText(el *etree.Element) Text {
	preserve := attrOr(el, "space", "") == "preserve"
	return Text{Value: el.Text(), PreserveSpace: preserve}
}

func readDeleteText(el *etree.Element) DeleteText {
	preserve := attrOr(el, "space", "") == "preserve"
	return DeleteText{Value: el.Text(), PreserveSpace: preserve}
}

// readRunChild maps one element to its run child variant. nil means the
// element carries no usable payload and is dropped.
func readRunChild(el *etree.Element) RunChild {
	switch el.Tag {
	case "t":
		return readText(el)
	case "delText":
		return readDeleteText(el)
	case "sym":
		font, okFont := attrValue(el, "font")
		char, okChar := attrValue(el, "char")
		if !okFont || !okChar {
			return nil
		}
		return Sym{Font: font, Char: char}
	case "tab":
		return Tab{}
	case "ptab":
		return PTab{
			Alignment:  PTabAlignmentFromString(attrOr(el, "alignment", "")),
			RelativeTo: PTabRelativeToFromString(attrOr(el, "relativeTo", "")),
			Leader:     PTabLeaderFromString(attrOr(el, "leader", "")),
		}
	case "br":
		return Break{Type: BreakTypeFromString(attrOr(el, "type", ""))}
	case "fldChar":
		f := FieldChar{Type: FieldCharTypeFromString(attrOr(el, "fldCharType", ""))}
		if v, ok := attrValue(el, "dirty"); ok {
			f.Dirty = parseOnOff(v)
		}
		return f
	case "instrText":
		if strings.TrimSpace(el.Text()) == "" {
			return nil
		}
		return InstrText{Value: el.Text()}
	case "delInstrText":
		if strings.TrimSpace(el.Text()) == "" {
			return nil
		}
		return DeleteInstrText{Value: el.Text()}
	case "footnoteReference":
		v, ok := attrValue(el, "id")
		if !ok {
			return nil
		}
		id, ok := parseInt(v)
		if !ok {
			return nil
		}
		return FootnoteReference{ID: id}
	case "shd":
		return readShading(el)
	case "drawing":
		return readDrawing(el)
	case "pict", "shape":
		return Shape{}
	default:
		return nil
	}
}

func readShading(el *etree.Element) Shading {
	s := NewShading()
	if v, ok := valAttr(el); ok {
		s.ShdType = v
	}
	if v, ok := attrValue(el, "color"); ok {
		s.Color = v
	}
	if v, ok := attrValue(el, "fill"); ok {
		s.Fill = v
	}
	return s
}

func readRun(el *etree.Element) Run {
	r := Run{}
	for _, c := range el.ChildElements() {
		if c.Tag == "rPr" {
			r.Property = readRunProperty(c)
			continue
		}
		if child := readRunChild(c); child != nil {
			r.Children = append(r.Children, child)
			continue
		}
		dropChild("r", c)
	}
	return r
}

// readRunProperty fills a formatting block field by field. The first
// occurrence of a child wins; later duplicates are ignored.
func readRunProperty(el *etree.Element) RunProperty {
	p := RunProperty{}
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "rStyle":
			if p.Style == nil {
				if v, ok := valAttr(c); ok {
					p.Style = &v
				}
			}
		case "rFonts":
			if p.Fonts == nil {
				f := readRunFonts(c)
				p.Fonts = &f
			}
		case "b":
			setToggle(&p.Bold, c)
		case "bCs":
			setToggle(&p.BoldCs, c)
		case "i":
			setToggle(&p.Italic, c)
		case "iCs":
			setToggle(&p.ItalicCs, c)
		case "strike":
			setToggle(&p.Strike, c)
		case "dstrike":
			setToggle(&p.DStrike, c)
		case "sz":
			setIntVal(&p.Size, c)
		case "szCs":
			setIntVal(&p.SizeCs, c)
		case "color":
			setStringVal(&p.Color, c)
		case "u":
			setStringVal(&p.Underline, c)
		case "vanish":
			p.Vanish = true
		case "specVanish":
			p.SpecVanish = true
		case "spacing":
			setIntVal(&p.CharacterSpacing, c)
		case "highlight":
			setStringVal(&p.Highlight, c)
		case "bdr":
			if p.TextBorder == nil {
				t := readTextBorder(c)
				p.TextBorder = &t
			}
		case "vertAlign":
			setStringVal(&p.VertAlign, c)
		case "ins":
			if p.Ins == nil {
				m := readTrackChangeMark(c)
				p.Ins = &m
			}
		case "del":
			if p.Del == nil {
				m := readTrackChangeMark(c)
				p.Del = &m
			}
		default:
			dropChild("rPr", c)
		}
	}
	return p
}

func readTrackChangeMark(el *etree.Element) TrackChangeMark {
	m := TrackChangeMark{}
	m.ID, m.Author, m.Date = readTrackChangeAttrs(el)
	return m
}

func readRunFonts(el *etree.Element) RunFonts {
	return RunFonts{
		Ascii:    attrOr(el, "ascii", ""),
		HiAnsi:   attrOr(el, "hAnsi", ""),
		EastAsia: attrOr(el, "eastAsia", ""),
		Cs:       attrOr(el, "cs", ""),

		AsciiTheme:    attrOr(el, "asciiTheme", ""),
		HiAnsiTheme:   attrOr(el, "hAnsiTheme", ""),
		EastAsiaTheme: attrOr(el, "eastAsiaTheme", ""),
		CsTheme:       attrOr(el, "cstheme", ""),

		Hint: attrOr(el, "hint", ""),
	}
}

func readTextBorder(el *etree.Element) TextBorder {
	return TextBorder{
		Val:   valOr(el, "single"),
		Color: attrOr(el, "color", "000000"),
		Space: parseIntOr(attrOr(el, "space", ""), 0),
		Size:  parseIntOr(attrOr(el, "sz", ""), 4),
	}
}

// setToggle assigns an on/off child to a *bool field, first occurrence wins.
func setToggle(dst **bool, el *etree.Element) {
	if *dst != nil {
		return
	}
	v := onOffValue(el)
	*dst = &v
}

func setIntVal(dst **int, el *etree.Element) {
	if *dst != nil {
		return
	}
	v, ok := valAttr(el)
	if !ok {
		return
	}
	n, ok := parseInt(v)
	if !ok {
		return
	}
	*dst = &n
}

func setStringVal(dst **string, el *etree.Element) {
	if *dst != nil {
		return
	}
	if v, ok := valAttr(el); ok {
		*dst = &v
	}
}
