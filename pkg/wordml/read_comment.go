package wordml

import (
	"io"

	"github.com/beevik/etree"
)

// ReadComments parses a comments part.
func ReadComments(r io.Reader) (Comments, error) {
	root, err := loadRoot(r, "comments", "comments")
	if err != nil {
		return Comments{}, err
	}
	c := Comments{}
	for _, el := range root.ChildElements() {
		switch el.Tag {
		case "comment":
			if cm, ok := readComment(el); ok {
				c.Children = append(c.Children, cm)
			}
		default:
			dropChild("comments", el)
		}
	}
	return c, nil
}

func readComment(el *etree.Element) (Comment, bool) {
	idRaw, ok := attrValue(el, "id")
	if !ok {
		return Comment{}, false
	}
	id, ok := parseInt(idRaw)
	if !ok {
		return Comment{}, false
	}
	c := NewComment(id)
	if v, ok := attrValue(el, "author"); ok {
		c.Author = v
	}
	if v, ok := attrValue(el, "date"); ok {
		c.Date = v
	}
	for _, ch := range el.ChildElements() {
		switch ch.Tag {
		case "p":
			c.Children = append(c.Children, readParagraph(ch))
		default:
			dropChild("comment", ch)
		}
	}
	return c, true
}
