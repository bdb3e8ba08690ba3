package wordml

import (
	"io"

	"github.com/beevik/etree"
)

// The reader is tolerant by construction. Element and attribute names match
// on the local part, so plain and prefixed spellings land on the same field.
// Unknown children are logged and dropped (see Config.LogDropped); malformed
// field values fall back to the documented defaults. Only an unreadable
// stream or a wrong root element is an error.
//
// Duplicate children in property containers resolve first-wins for optional
// (pointer-typed) fields. Value-typed fields such as tblW, jc, pgSz and
// pgMar have no unset state and keep the last occurrence instead.

// loadRoot parses the stream and checks the local name of the root element.
func loadRoot(r io.Reader, part, want string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, NewParseError(part, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, NewMissingPartError(part, want, "")
	}
	if root.Tag != want {
		return nil, NewMissingPartError(part, want, root.FullTag())
	}
	return root, nil
}

// attrValue returns the first attribute whose local name matches, regardless
// of prefix.
func attrValue(el *etree.Element, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Key == name {
			return a.Value, true
		}
	}
	return "", false
}

// attrOr is attrValue with a fallback.
func attrOr(el *etree.Element, name, def string) string {
	if v, ok := attrValue(el, name); ok {
		return v
	}
	return def
}

// attrValueNS returns the attribute with the exact prefix and local name.
func attrValueNS(el *etree.Element, space, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Space == space && a.Key == name {
			return a.Value, true
		}
	}
	return "", false
}

// valAttr reads the w:val (or unprefixed val) attribute most elements carry.
func valAttr(el *etree.Element) (string, bool) {
	return attrValue(el, "val")
}

// valOr is valAttr with a fallback.
func valOr(el *etree.Element, def string) string {
	if v, ok := valAttr(el); ok {
		return v
	}
	return def
}

// onOffValue reads a toggle element: present with no value means true.
func onOffValue(el *etree.Element) bool {
	v, ok := valAttr(el)
	if !ok {
		return true
	}
	return parseOnOff(v)
}

func dropChild(container string, el *etree.Element) {
	if !GetGlobalConfig().LogDropped {
		return
	}
	GetLogger().DebugDropped(container, el.FullTag())
}

// ReadDocument parses a main document part.
func ReadDocument(r io.Reader) (Document, error) {
	root, err := loadRoot(r, "document", "document")
	if err != nil {
		return Document{}, err
	}
	return readDocumentRoot(root), nil
}

// ReadHeader parses a header part.
func ReadHeader(r io.Reader) (Header, error) {
	root, err := loadRoot(r, "header", "hdr")
	if err != nil {
		return Header{}, err
	}
	h := Header{}
	children, hasNumbering := readBlockChildren(root, "hdr")
	h.Children = children
	h.HasNumbering = hasNumbering
	return h, nil
}

// ReadFooter parses a footer part.
func ReadFooter(r io.Reader) (Footer, error) {
	root, err := loadRoot(r, "footer", "ftr")
	if err != nil {
		return Footer{}, err
	}
	f := Footer{}
	children, hasNumbering := readBlockChildren(root, "ftr")
	f.Children = children
	f.HasNumbering = hasNumbering
	return f, nil
}

// readBlockChildren reads the shared block-level content of cells, headers,
// footers and text boxes.
func readBlockChildren(el *etree.Element, container string) ([]BlockChild, bool) {
	var children []BlockChild
	hasNumbering := false
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "p":
			p := readParagraph(c)
			children = append(children, p)
			if p.HasNumbering {
				hasNumbering = true
			}
		case "tbl":
			t := readTable(c)
			children = append(children, t)
			if t.HasNumbering {
				hasNumbering = true
			}
		case "sdt":
			t := readStructuredDataTag(c)
			children = append(children, t)
			if t.HasNumbering {
				hasNumbering = true
			}
		default:
			dropChild(container, c)
		}
	}
	return children, hasNumbering
}
