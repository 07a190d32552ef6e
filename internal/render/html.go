package render

import (
	"fmt"
	"strings"

	"github.com/yosssi/gohtml"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FallbackImage is shown when a record has no image
const FallbackImage = "https://images2.imgbox.com/3c/0e/T8iJcSN3_o.png"

func elem(tag atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: tag, Data: tag.String(), Attr: attrs}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attrs(kv ...string) []html.Attribute {
	out := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return out
}

func div(class string, children ...*html.Node) *html.Node {
	return elem(atom.Div, attrs("class", class), children...)
}

func span(class string, children ...*html.Node) *html.Node {
	return elem(atom.Span, attrs("class", class), children...)
}

func icon(name string) *html.Node {
	return elem(atom.I, attrs("class", "bi bi-"+name+" me-1"))
}

func externalLink(href, class string, children ...*html.Node) *html.Node {
	return elem(atom.A, attrs("href", href, "target", "_blank", "rel", "noopener", "class", class), children...)
}

// Render serializes nodes in order. Text and attribute values are escaped.
func Render(nodes ...*html.Node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("render html: %w", err)
		}
	}
	return b.String(), nil
}

// Pretty indents an HTML fragment for files meant to be read by people
func Pretty(fragment string) string {
	return gohtml.Format(fragment)
}
