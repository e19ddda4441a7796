// Package markup builds the HTML emitted for summary pages.
//
// # Overview
//
// The package has three layers:
//
//   - [Page]: a small push/pop builder for nested block markup, used for
//     programmatic content such as plot grids and switcher controls.
//   - HTML helpers: the fragment loader, state switcher, and navigation
//     bar shared by every page (html.go).
//   - [Doc]: the full index-page shell, rendered through html/template
//     (doc.go).
//
// All text and attribute values pass through HTML escaping; raw markup
// must be injected explicitly via [Page.Raw].
package markup

import (
	"bytes"
	"fmt"
	"html"
	"strings"
)

// Attr is a single HTML attribute. Attributes render in the order given,
// keeping output deterministic.
type Attr struct {
	Key string
	Val string
}

// Class is shorthand for a class attribute.
func Class(v string) Attr { return Attr{Key: "class", Val: v} }

// ID is shorthand for an id attribute.
func ID(v string) Attr { return Attr{Key: "id", Val: v} }

// Href is shorthand for an href attribute.
func Href(v string) Attr { return Attr{Key: "href", Val: v} }

// Page accumulates nested HTML markup. The zero value is ready to use.
//
// Open pushes an element onto the stack; Close pops and closes the most
// recently opened one. String closes nothing: callers are expected to
// balance their own Open/Close pairs, and String reports an imbalance in
// a trailing comment rather than panicking.
type Page struct {
	buf   bytes.Buffer
	stack []string
}

// NewPage returns an empty page builder.
func NewPage() *Page {
	return &Page{}
}

func writeAttrs(buf *bytes.Buffer, attrs []Attr) {
	for _, a := range attrs {
		if a.Val == "" {
			continue
		}
		fmt.Fprintf(buf, " %s=%q", a.Key, html.EscapeString(a.Val))
	}
}

// Open starts a nested element.
func (p *Page) Open(tag string, attrs ...Attr) *Page {
	p.buf.WriteByte('<')
	p.buf.WriteString(tag)
	writeAttrs(&p.buf, attrs)
	p.buf.WriteString(">\n")
	p.stack = append(p.stack, tag)
	return p
}

// Close ends the most recently opened element. Closing with an empty
// stack is a no-op.
func (p *Page) Close() *Page {
	if len(p.stack) == 0 {
		return p
	}
	tag := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	fmt.Fprintf(&p.buf, "</%s>\n", tag)
	return p
}

// Element writes a complete element with escaped text content.
func (p *Page) Element(tag, text string, attrs ...Attr) *Page {
	p.buf.WriteByte('<')
	p.buf.WriteString(tag)
	writeAttrs(&p.buf, attrs)
	p.buf.WriteByte('>')
	p.buf.WriteString(html.EscapeString(text))
	fmt.Fprintf(&p.buf, "</%s>\n", tag)
	return p
}

// P writes a paragraph with escaped text.
func (p *Page) P(text string, attrs ...Attr) *Page {
	return p.Element("p", text, attrs...)
}

// Img writes a void image element.
func (p *Page) Img(src string, attrs ...Attr) *Page {
	p.buf.WriteString("<img")
	writeAttrs(&p.buf, append([]Attr{{Key: "src", Val: src}}, attrs...))
	p.buf.WriteString(" />\n")
	return p
}

// Script writes an inline script. The body is emitted verbatim.
func (p *Page) Script(js string) *Page {
	p.buf.WriteString("<script type=\"text/javascript\">\n")
	p.buf.WriteString(js)
	p.buf.WriteString("\n</script>\n")
	return p
}

// Text writes escaped text content.
func (p *Page) Text(s string) *Page {
	p.buf.WriteString(html.EscapeString(s))
	return p
}

// Raw writes unescaped markup. Callers own the safety of s.
func (p *Page) Raw(s string) *Page {
	p.buf.WriteString(s)
	return p
}

// AddContent appends arbitrary pre-built content: either another page or
// a plain string. Strings that do not already look like markup are
// wrapped in a paragraph, matching how forewords and afterwords are
// configured as prose.
func (p *Page) AddContent(content any) *Page {
	switch c := content.(type) {
	case nil:
		return p
	case *Page:
		if c != nil {
			p.buf.WriteString(c.String())
		}
		return p
	case string:
		if c == "" {
			return p
		}
		if strings.HasPrefix(strings.TrimSpace(c), "<") {
			return p.Raw(c)
		}
		return p.P(c)
	default:
		return p.P(fmt.Sprint(c))
	}
}

// Len returns the number of bytes written so far.
func (p *Page) Len() int {
	return p.buf.Len()
}

// String serializes the page. Unbalanced open elements are left open and
// flagged with a trailing comment so broken composition is visible in
// output rather than silent.
func (p *Page) String() string {
	if len(p.stack) == 0 {
		return p.buf.String()
	}
	return p.buf.String() + fmt.Sprintf("<!-- unclosed: %s -->\n",
		strings.Join(p.stack, ", "))
}
