package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components can emit
// markup without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// text writes s escaped for element content and attribute values.
func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (hw *htmlWriter) attr(name, value string) {
	hw.raw(" " + name + `="`)
	hw.text(value)
	hw.raw(`"`)
}

// child renders a nested component into the same writer.
func (hw *htmlWriter) child(ctx context.Context, c templ.Component) {
	if hw.err != nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

// displayStyle is the inline style toggling an element the way the page
// script does.
func displayStyle(visible bool) string {
	if visible {
		return "display: block"
	}
	return "display: none"
}

// groupContainerID maps a filter group to the id of its container element.
func groupContainerID(name string) string {
	return strings.ToLower(name) + "-filters"
}
