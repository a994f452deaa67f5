package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/rubiojr/folio/pkg/render"
)

// Suggestions renders the items of the autocomplete dropdown. The
// container element itself belongs to the page.
func Suggestions(list render.SuggestionList) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		if !list.Visible {
			return nil
		}
		for _, item := range list.Items {
			hw.raw(`<div class="suggestion-item"`)
			hw.attr("data-suggestion", item)
			hw.raw(`>`)
			hw.text(item)
			hw.raw(`</div>`)
		}
		return hw.err
	})
}
