package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/rubiojr/folio/pkg/render"
)

// Card renders one book.
func Card(card render.Card) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div class="book-card"><div class="book-title">`)
		hw.text(card.Title)
		hw.raw(`</div><div class="book-author">`)
		hw.text(card.AuthorLine)
		hw.raw(`</div><div><span class="book-category">`)
		hw.text(card.Category)
		hw.raw(`</span> <span`)
		hw.attr("class", card.BadgeClass)
		hw.raw(`>`)
		hw.text(card.BadgeLabel)
		hw.raw(`</span></div><div class="book-id">`)
		hw.text(card.IDLine)
		hw.raw(`</div></div>`)
		return hw.err
	})
}

// Results renders the content of the results container: the cards, or the
// message of the empty and error states.
func Results(view render.ResultsView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		if view.State != render.StateResults {
			hw.raw(`<div class="no-results">`)
			hw.text(view.Message)
			hw.raw(`</div>`)
			return hw.err
		}
		for _, card := range view.Cards {
			hw.child(ctx, Card(card))
		}
		return hw.err
	})
}
