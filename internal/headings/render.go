package headings

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/arterdev/site/internal/doctree"
)

// RenderHTML writes forest as nested <ul> lists of fragment links. Nothing is
// written for an empty forest.
func RenderHTML(w io.Writer, forest []*doctree.Heading) error {
	if len(forest) == 0 {
		return nil
	}
	return html.Render(w, listNode(forest))
}

func listNode(nodes []*doctree.Heading) *html.Node {
	ul := &html.Node{Type: html.ElementNode, Data: "ul", DataAtom: atom.Ul}
	for _, h := range nodes {
		li := &html.Node{Type: html.ElementNode, Data: "li", DataAtom: atom.Li}
		a := &html.Node{
			Type:     html.ElementNode,
			Data:     "a",
			DataAtom: atom.A,
			Attr:     []html.Attribute{{Key: "href", Val: "#" + h.ID}},
		}
		a.AppendChild(&html.Node{Type: html.TextNode, Data: h.Text})
		li.AppendChild(a)
		if len(h.Children) > 0 {
			li.AppendChild(listNode(h.Children))
		}
		ul.AppendChild(li)
	}
	return ul
}
