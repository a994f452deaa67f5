package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/rubiojr/folio/pkg/render"
)

// FilterGroup renders the radio options of one group.
func FilterGroup(group render.FilterGroup) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div class="filter-group"><h3>`)
		hw.text(group.Title)
		hw.raw(`</h3><div`)
		hw.attr("id", groupContainerID(group.Name))
		hw.raw(`>`)
		for _, opt := range group.Options {
			hw.raw(`<div class="filter-option"><input type="radio"`)
			hw.attr("name", group.Name)
			hw.attr("id", opt.ID)
			hw.attr("value", opt.Value)
			if opt.Checked {
				hw.raw(` checked`)
			}
			hw.raw(`><label`)
			hw.attr("for", opt.ID)
			hw.raw(`>`)
			hw.text(opt.Label)
			hw.raw(`</label></div>`)
		}
		hw.raw(`</div></div>`)
		return hw.err
	})
}

// FilterPanel renders the three filter groups and the apply button.
func FilterPanel(panel render.FilterPanel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<aside class="filters">`)
		for _, group := range panel.Groups() {
			hw.child(ctx, FilterGroup(group))
		}
		hw.raw(`<button type="submit" id="apply-filters-button">Apply Filters</button></aside>`)
		return hw.err
	})
}
