package dom

import (
	"strings"

	"golang.org/x/net/html"
)

type declaration struct {
	prop  string
	value string
}

func parseStyle(s string) []declaration {
	var out []declaration
	for _, part := range strings.Split(s, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(strings.ToLower(prop))
		if prop == "" {
			continue
		}
		out = append(out, declaration{prop: prop, value: strings.TrimSpace(value)})
	}
	return out
}

func formatStyle(decls []declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.prop + ": " + d.value + ";"
	}
	return strings.Join(parts, " ")
}

// Style returns the inline value of prop, or "" if unset.
func Style(n *html.Node, prop string) string {
	v, _ := Attr(n, "style")
	for _, d := range parseStyle(v) {
		if d.prop == prop {
			return d.value
		}
	}
	return ""
}

// SetStyle sets one inline style property, keeping the others in order.
func SetStyle(n *html.Node, prop, value string) {
	v, _ := Attr(n, "style")
	decls := parseStyle(v)
	prop = strings.ToLower(prop)
	for i := range decls {
		if decls[i].prop == prop {
			decls[i].value = value
			SetAttr(n, "style", formatStyle(decls))
			return
		}
	}
	decls = append(decls, declaration{prop: prop, value: value})
	SetAttr(n, "style", formatStyle(decls))
}

// InjectStyleSheet appends a <style> block with css to the document head.
func (d *Document) InjectStyleSheet(css string) *html.Node {
	style := d.CreateElement("style")
	SetAttr(style, "type", "text/css")
	AppendText(style, css)
	d.Head.AppendChild(style)
	return style
}
