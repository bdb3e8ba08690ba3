package wordml

import (
	"io"

	"github.com/beevik/etree"
)

// ReadStyles parses a style definitions part.
func ReadStyles(r io.Reader) (Styles, error) {
	root, err := loadRoot(r, "styles", "styles")
	if err != nil {
		return Styles{}, err
	}
	s := Styles{}
	for _, c := range root.ChildElements() {
		switch c.Tag {
		case "docDefaults":
			s.DocDefaults = readDocDefaults(c)
		case "style":
			s.Styles = append(s.Styles, readStyle(c))
		default:
			dropChild("styles", c)
		}
	}
	return s, nil
}

func readDocDefaults(el *etree.Element) DocDefaults {
	d := DocDefaults{}
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "rPrDefault":
			if rpr := findDescendant(c, "rPr"); rpr != nil {
				d.RunProperty = readRunProperty(rpr)
			}
		case "pPrDefault":
			if ppr := findDescendant(c, "pPr"); ppr != nil {
				d.ParagraphProperty = readParagraphProperty(ppr)
			}
		default:
			dropChild("docDefaults", c)
		}
	}
	return d
}

func readStyle(el *etree.Element) Style {
	s := Style{
		StyleID:   attrOr(el, "styleId", ""),
		StyleType: StyleTypeFromString(attrOr(el, "type", "")),
	}
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "name":
			if s.Name == "" {
				s.Name = valOr(c, "")
			}
		case "rPr":
			s.RunProperty = readRunProperty(c)
		case "pPr":
			s.ParagraphProperty = readParagraphProperty(c)
		case "tblPr":
			if s.TableProperty == nil {
				p := readTableProperty(c)
				s.TableProperty = &p
			}
		case "tcPr":
			if s.TableCellProperty == nil {
				p := readTableCellProperty(c)
				s.TableCellProperty = &p
			}
		case "basedOn":
			setStringVal(&s.BasedOn, c)
		case "next":
			setStringVal(&s.Next, c)
		case "link":
			setStringVal(&s.Link, c)
		case "qFormat":
			s.QFormat = true
		default:
			dropChild("style", c)
		}
	}
	return s
}
