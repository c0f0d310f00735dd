package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const errorMarkup = `<table style="background-color: #8CE; width: 100%; height: 100%;">
  <tr>
      <td align="center">
          <div style="display: table-cell; vertical-align: middle;">
              <div style="" id="application-error"></div>
          </div>
      </td>
  </tr>
</table>`

// DisplayError appends a full-page error block showing msg as text.
func DisplayError(d *Document, msg string) (*html.Node, error) {
	div := d.CreateElement("div")
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(errorMarkup), context)
	if err != nil {
		return nil, fmt.Errorf("dom: parse error markup: %w", err)
	}
	for _, n := range nodes {
		div.AppendChild(n)
	}
	d.Body.AppendChild(div)

	target := FindByID(div, "application-error")
	if target == nil {
		return nil, fmt.Errorf("dom: error markup has no message slot")
	}
	AppendText(target, msg)
	return div, nil
}
