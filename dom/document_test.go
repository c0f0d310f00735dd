package dom

import (
	"strings"
	"testing"
)

func TestStyle(t *testing.T) {
	d, err := NewDocument()
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	bar := d.CreateElement("div")
	SetAttr(bar, "id", "bar")
	d.Body.AppendChild(bar)

	SetStyle(bar, "width", "0%")
	SetStyle(bar, "display", "none")
	SetStyle(bar, "width", "50%")

	if got := Style(bar, "width"); got != "50%" {
		t.Fatalf("width = %q", got)
	}
	if got, _ := Attr(bar, "style"); got != "width: 50%; display: none;" {
		t.Fatalf("style attr = %q", got)
	}
	if d.GetElementByID("bar") != bar {
		t.Fatal("GetElementByID did not find bar")
	}
	if !Remove(bar) || Remove(bar) {
		t.Fatal("Remove should succeed once")
	}
	if d.GetElementByID("bar") != nil {
		t.Fatal("removed element still attached")
	}
}

func TestDisplayErrorEscapesMessage(t *testing.T) {
	d, err := NewDocument()
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	if _, err := DisplayError(d, "Could not initialize application. Error: <b>boom</b>"); err != nil {
		t.Fatalf("DisplayError: %v", err)
	}
	out := d.String()
	for _, want := range []string{
		"background-color: #8CE",
		`<td align="center">`,
		"Error: &lt;b&gt;boom&lt;/b&gt;",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered page missing %q:\n%s", want, out)
		}
	}
	if len(d.ElementsByTag("table")) != 1 {
		t.Fatal("expected one error table")
	}
}

func TestDisplayErrorTwiceFillsEachBlock(t *testing.T) {
	d, err := NewDocument()
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	messages := []string{"physics module did not load", "invalid settings"}
	for _, msg := range messages {
		block, err := DisplayError(d, msg)
		if err != nil {
			t.Fatalf("DisplayError(%q): %v", msg, err)
		}
		slot := FindByID(block, "application-error")
		if slot == nil || slot.FirstChild == nil || slot.FirstChild.Data != msg {
			t.Fatalf("block for %q holds %+v", msg, slot)
		}
		if slot.FirstChild.NextSibling != nil {
			t.Fatalf("block for %q holds more than one message", msg)
		}
	}
	if n := len(d.ElementsByTag("table")); n != len(messages) {
		t.Fatalf("tables = %d, want %d", n, len(messages))
	}
}
