package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/rubiojr/folio/cmd/web/components/types"
	"github.com/rubiojr/folio/pkg/search"
)

// Page renders the complete search page. The form submits with GET to "/",
// so filtering and searching work without the script; app.js upgrades it
// to live suggestions and in-place results over /ws.
func Page(data types.PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.raw(`<title>`)
		hw.text(data.Title)
		hw.raw(`</title><link rel="stylesheet" href="/static/style.css"></head><body>`)

		hw.raw(`<header><h1><a href="/">folio</a></h1><p>Book search</p></header>`)
		hw.raw(`<form id="search-form" method="get" action="/" autocomplete="off"><div class="search-box">`)
		hw.raw(`<input type="text" id="search-input" placeholder="Search by title or author..."`)
		hw.attr("name", search.KeyQuery)
		hw.attr("value", data.Params.Query)
		hw.raw(`><button type="submit" id="search-button">Search</button>`)
		hw.raw(`<div id="suggestions-container" class="suggestions"`)
		hw.attr("style", displayStyle(data.Suggestions.Visible))
		hw.raw(`>`)
		hw.child(ctx, Suggestions(data.Suggestions))
		hw.raw(`</div></div>`)

		hw.raw(`<div class="layout">`)
		hw.child(ctx, FilterPanel(data.Filters))
		hw.raw(`<main><div id="loading" class="loading" style="display: none">Loading...</div>`)
		hw.raw(`<div id="results-container">`)
		hw.child(ctx, Results(data.Results))
		hw.raw(`</div></main></div></form>`)

		hw.raw(`<footer>folio `)
		hw.text(data.Version)
		hw.raw(`</footer><script src="/static/app.js"></script></body></html>`)
		return hw.err
	})
}
