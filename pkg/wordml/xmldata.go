package wordml

import (
	"io"
	"strings"

	"github.com/beevik/etree"
)

// XMLAttr is one attribute of a projected node, in document order.
type XMLAttr struct {
	Name  string
	Value string
}

// XMLData is a schema-free projection of an XML subtree. The reader uses it
// for payloads it carries opaquely; callers can use it to inspect parts this
// model does not type.
type XMLData struct {
	Name       string
	Attributes []XMLAttr
	Data       string
	Children   []XMLData
}

// ParseXMLData projects the document read from r into an XMLData tree
// rooted at the document element.
func ParseXMLData(r io.Reader) (XMLData, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return XMLData{}, NewParseError("xml", err)
	}
	root := doc.Root()
	if root == nil {
		return XMLData{}, NewMissingPartError("xml", "document element", "none")
	}
	return xmlDataFromElement(root), nil
}

func xmlDataFromElement(el *etree.Element) XMLData {
	d := XMLData{Name: el.FullTag()}
	for _, a := range el.Attr {
		d.Attributes = append(d.Attributes, XMLAttr{Name: a.FullKey(), Value: a.Value})
	}
	if text := strings.TrimSpace(el.Text()); text != "" {
		d.Data = text
	}
	for _, child := range el.ChildElements() {
		d.Children = append(d.Children, xmlDataFromElement(child))
	}
	return d
}

// FindFirst returns the first descendant with the given name, depth first.
func (d XMLData) FindFirst(name string) (XMLData, bool) {
	for _, c := range d.Children {
		if c.Name == name {
			return c, true
		}
		if found, ok := c.FindFirst(name); ok {
			return found, true
		}
	}
	return XMLData{}, false
}

// Attribute returns the value of the named attribute.
func (d XMLData) Attribute(name string) (string, bool) {
	for _, a := range d.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// String renders the debugging form, one element per line with two-space
// indentation per depth.
func (d XMLData) String() string {
	var sb strings.Builder
	d.writeString(&sb, 0)
	return sb.String()
}

func (d XMLData) writeString(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString(d.Name)
	for _, a := range d.Attributes {
		sb.WriteString(" ")
		sb.WriteString(a.Name)
		sb.WriteString("=")
		sb.WriteString(a.Value)
	}
	if d.Data != "" {
		sb.WriteString(" ")
		sb.WriteString(d.Data)
	}
	sb.WriteString("\n")
	for _, c := range d.Children {
		c.writeString(sb, depth+1)
	}
}
