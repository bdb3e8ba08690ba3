package wordml

import (
	"fmt"
	"io"
	"strings"
)

// Attr is a single XML attribute. Attribute order is significant in the
// emitted markup, so attributes are passed as an ordered list, never a map.
type Attr struct {
	Name  string
	Value string
}

func attr(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// XMLBuilder streams markup events to an io.Writer. It never buffers the
// document tree: each Open/Text/Close call writes immediately. The first
// write failure sticks; every later call is a no-op and Err reports it.
type XMLBuilder struct {
	w   io.Writer
	err error

	// tags holds the open-element stack; content tracks whether the element
	// at the same depth has received any child or text yet, which decides
	// between a self-closing tag and an explicit end tag.
	tags    []string
	content []bool
	pending bool
}

// NewXMLBuilder returns a builder writing to w.
func NewXMLBuilder(w io.Writer) *XMLBuilder {
	return &XMLBuilder{w: w}
}

// Err reports the first failure encountered, if any. Unbalanced open
// elements at the time of the call are also an error.
func (b *XMLBuilder) Err() error {
	if b.err != nil {
		return b.err
	}
	if len(b.tags) > 0 {
		return fmt.Errorf("wordml: unclosed element <%s>", b.tags[len(b.tags)-1])
	}
	return nil
}

func (b *XMLBuilder) fail(err error) *XMLBuilder {
	if b.err == nil {
		b.err = err
	}
	return b
}

func (b *XMLBuilder) write(s string) {
	if b.err != nil {
		return
	}
	if _, err := io.WriteString(b.w, s); err != nil {
		b.err = err
	}
}

// flush terminates a pending open tag with '>' before children or text.
func (b *XMLBuilder) flush() {
	if b.pending {
		b.write(">")
		b.pending = false
	}
}

// Declaration writes the XML prolog. Only independently packaged parts
// (document, header, footer, settings) call this.
func (b *XMLBuilder) Declaration() *XMLBuilder {
	b.write(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	return b
}

// Open starts an element with the given attributes, in the given order.
func (b *XMLBuilder) Open(tag string, attrs ...Attr) *XMLBuilder {
	if b.err != nil {
		return b
	}
	b.flush()
	if n := len(b.content); n > 0 {
		b.content[n-1] = true
	}
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(tag)
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(xmlEscaper.Replace(a.Value))
		sb.WriteByte('"')
	}
	b.write(sb.String())
	b.tags = append(b.tags, tag)
	b.content = append(b.content, false)
	b.pending = true
	return b
}

// Close ends the innermost open element. An element that received no
// children or text closes as `<tag />`.
func (b *XMLBuilder) Close() *XMLBuilder {
	if b.err != nil {
		return b
	}
	n := len(b.tags)
	if n == 0 {
		return b.fail(fmt.Errorf("wordml: close without matching open"))
	}
	tag := b.tags[n-1]
	b.tags = b.tags[:n-1]
	hadContent := b.content[n-1]
	b.content = b.content[:n-1]
	if b.pending && !hadContent {
		b.write(" />")
		b.pending = false
		return b
	}
	b.flush()
	b.write("</" + tag + ">")
	return b
}

// Empty emits a childless element in one step.
func (b *XMLBuilder) Empty(tag string, attrs ...Attr) *XMLBuilder {
	return b.Open(tag, attrs...).Close()
}

// Text writes escaped character data inside the current element.
func (b *XMLBuilder) Text(s string) *XMLBuilder {
	if b.err != nil {
		return b
	}
	b.flush()
	if n := len(b.content); n > 0 {
		b.content[n-1] = true
	}
	b.write(xmlEscaper.Replace(s))
	return b
}

// element is the writer-side contract every model node implements. A node
// with no legal canonical form reports an UnsupportedError through the
// builder's sticky error instead of emitting markup.
type element interface {
	build(b *XMLBuilder)
}

// writePart streams one part to w, reporting the first write failure.
func writePart(w io.Writer, el element) error {
	b := NewXMLBuilder(w)
	el.build(b)
	return b.Err()
}

// buildString renders one element to a string, mainly for tests and the
// per-part XML convenience methods.
func buildString(el element) (string, error) {
	var sb strings.Builder
	b := NewXMLBuilder(&sb)
	el.build(b)
	if err := b.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
