package components

import (
	"bytes"
	"context"

	"github.com/a-h/templ"

	"github.com/rubiojr/folio/pkg/render"
)

// FragmentRenderer renders the fragments pushed over the WebSocket.
type FragmentRenderer struct{}

func (FragmentRenderer) Suggestions(ctx context.Context, list render.SuggestionList) (string, error) {
	return renderString(ctx, Suggestions(list))
}

func (FragmentRenderer) Results(ctx context.Context, view render.ResultsView) (string, error) {
	return renderString(ctx, Results(view))
}

func renderString(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
