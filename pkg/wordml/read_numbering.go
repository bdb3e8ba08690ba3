package wordml

import (
	"io"

	"github.com/beevik/etree"
)

// ReadNumberings parses a numbering definitions part.
func ReadNumberings(r io.Reader) (Numberings, error) {
	root, err := loadRoot(r, "numbering", "numbering")
	if err != nil {
		return Numberings{}, err
	}
	n := Numberings{}
	for _, c := range root.ChildElements() {
		switch c.Tag {
		case "abstractNum":
			if a, ok := readAbstractNumbering(c); ok {
				n.Abstracts = append(n.Abstracts, a)
			}
		case "num":
			if num, ok := readNumbering(c); ok {
				n.Instances = append(n.Instances, num)
			}
		default:
			dropChild("numbering", c)
		}
	}
	return n, nil
}

func readAbstractNumbering(el *etree.Element) (AbstractNumbering, bool) {
	idRaw, ok := attrValue(el, "abstractNumId")
	if !ok {
		return AbstractNumbering{}, false
	}
	id, ok := parseInt(idRaw)
	if !ok {
		return AbstractNumbering{}, false
	}
	a := AbstractNumbering{ID: id}
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "multiLevelType":
			setStringVal(&a.MultiLevelType, c)
		case "styleLink":
			setStringVal(&a.StyleLink, c)
		case "numStyleLink":
			setStringVal(&a.NumStyleLink, c)
		case "lvl":
			a.Levels = append(a.Levels, readLevel(c))
		default:
			dropChild("abstractNum", c)
		}
	}
	return a, true
}

func readLevel(el *etree.Element) Level {
	l := NewLevel(parseIntOr(attrOr(el, "ilvl", ""), 0))
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "start":
			l.Start = parseIntOr(valOr(c, ""), 1)
		case "numFmt":
			l.Format = valOr(c, "decimal")
		case "lvlText":
			l.Text = valOr(c, "")
		case "lvlJc":
			l.Jc = valOr(c, "left")
		case "suff":
			l.Suffix = LevelSuffixFromString(valOr(c, ""))
		case "lvlRestart":
			setIntVal(&l.LevelRestart, c)
		case "isLgl":
			l.IsLgl = onOffValue(c)
		case "pPr":
			l.ParagraphProperty = readParagraphProperty(c)
		case "rPr":
			l.RunProperty = readRunProperty(c)
		default:
			dropChild("lvl", c)
		}
	}
	return l
}

func readNumbering(el *etree.Element) (Numbering, bool) {
	idRaw, ok := attrValue(el, "numId")
	if !ok {
		return Numbering{}, false
	}
	id, ok := parseInt(idRaw)
	if !ok {
		return Numbering{}, false
	}
	n := Numbering{ID: id}
	seenAbstract := false
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "abstractNumId":
			if !seenAbstract {
				if v, ok := valAttr(c); ok {
					if a, ok := parseInt(v); ok {
						n.AbstractNumID = a
						seenAbstract = true
					}
				}
			}
		case "lvlOverride":
			o := LevelOverride{Level: parseIntOr(attrOr(c, "ilvl", ""), 0)}
			for _, oc := range c.ChildElements() {
				switch oc.Tag {
				case "startOverride":
					setIntVal(&o.StartOverride, oc)
				case "lvl":
					if o.OverrideLevel == nil {
						l := readLevel(oc)
						o.OverrideLevel = &l
					}
				default:
					dropChild("lvlOverride", oc)
				}
			}
			n.LevelOverrides = append(n.LevelOverrides, o)
		default:
			dropChild("num", c)
		}
	}
	return n, true
}
