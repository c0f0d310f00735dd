// Package dom keeps the HTML page that hosts the canvas: the splash overlay,
// its stylesheet and the startup error block.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const page = `<!DOCTYPE html><html><head><title>vrroom</title></head><body><canvas id="application-canvas"></canvas></body></html>`

type Document struct {
	Root *html.Node
	Head *html.Node
	Body *html.Node
}

func NewDocument() (*Document, error) {
	root, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("dom: parse page: %w", err)
	}
	d := &Document{Root: root}
	walk(root, func(n *html.Node) bool {
		switch n.DataAtom {
		case atom.Head:
			d.Head = n
		case atom.Body:
			d.Body = n
		}
		return true
	})
	return d, nil
}

// CreateElement returns a detached element node.
func (d *Document) CreateElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// GetElementByID returns the first attached element with the id, or nil.
func (d *Document) GetElementByID(id string) *html.Node {
	return FindByID(d.Root, id)
}

// FindByID returns the first element with the id in the subtree rooted at
// root, or nil.
func FindByID(root *html.Node, id string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if v, ok := Attr(n, "id"); ok && v == id {
				found = n
				return false
			}
		}
		return true
	})
	return found
}

// ElementsByTag returns every attached element with the tag in document order.
func (d *Document) ElementsByTag(tag string) []*html.Node {
	var out []*html.Node
	walk(d.Root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		return true
	})
	return out
}

func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.Root)
}

func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Remove detaches n from its parent. It reports false if n was detached.
func Remove(n *html.Node) bool {
	if n == nil || n.Parent == nil {
		return false
	}
	n.Parent.RemoveChild(n)
	return true
}

func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func AppendText(n *html.Node, s string) {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

// walk visits n and its descendants depth first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}
