package render

import (
	"github.com/rubiojr/folio/pkg/search"
	"github.com/rubiojr/folio/pkg/searchapi"
)

// AllLabel is the label of the unrestricted option of every group.
const AllLabel = "All"

// Option is one radio control of a filter group.
type Option struct {
	ID      string `json:"id"`
	Value   string `json:"value"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// FilterGroup is a named set of mutually exclusive options.
type FilterGroup struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Options []Option `json:"options"`
}

// FilterPanel holds the three filter groups of the page.
type FilterPanel struct {
	Category  FilterGroup `json:"category"`
	Author    FilterGroup `json:"author"`
	Published FilterGroup `json:"published"`
}

// Groups returns the groups in display order.
func (p FilterPanel) Groups() []FilterGroup {
	return []FilterGroup{p.Category, p.Author, p.Published}
}

// Filters builds the filter panel for the vocabulary returned by /filters/.
//
// Category and author groups get an "All" option (empty value, checked)
// followed by one option per entry in API order. When opts is nil, because
// the vocabulary could not be loaded, both groups are left without options.
// The published group is always present.
func Filters(opts *searchapi.FilterOptions) FilterPanel {
	panel := FilterPanel{
		Category:  FilterGroup{Name: search.KeyCategory, Title: "Category"},
		Author:    FilterGroup{Name: search.KeyAuthor, Title: "Author"},
		Published: publishedGroup(),
	}
	if opts == nil {
		return panel
	}

	panel.Category.Options = make([]Option, 0, len(opts.Categories)+1)
	panel.Category.Options = append(panel.Category.Options, allOption(search.KeyCategory))
	for _, category := range opts.Categories {
		panel.Category.Options = append(panel.Category.Options, Option{
			ID:    search.KeyCategory + "-" + category,
			Value: category,
			Label: PlainText(category),
		})
	}

	panel.Author.Options = make([]Option, 0, len(opts.Authors)+1)
	panel.Author.Options = append(panel.Author.Options, allOption(search.KeyAuthor))
	for _, author := range opts.Authors {
		panel.Author.Options = append(panel.Author.Options, Option{
			ID:    search.KeyAuthor + "-" + dashSpaces(author),
			Value: author,
			Label: PlainText(author),
		})
	}

	return panel
}

func allOption(group string) Option {
	return Option{ID: group + "-all", Value: "", Label: AllLabel, Checked: true}
}

func publishedGroup() FilterGroup {
	return FilterGroup{
		Name:  search.KeyPublished,
		Title: "Status",
		Options: []Option{
			{ID: "published-all", Value: search.PublishedAny, Label: AllLabel, Checked: true},
			{ID: "published-true", Value: search.PublishedTrue, Label: "Published"},
			{ID: "published-false", Value: search.PublishedFalse, Label: "Unpublished"},
		},
	}
}

// Select checks the options matching params and returns the panel together
// with the parameters it actually represents.
//
// Exactly one option per non-empty group ends up checked. A value that is
// not offered by its group selects "All" and is cleared from the returned
// parameters. Groups without options (vocabulary not loaded) leave the
// requested value untouched.
func (p FilterPanel) Select(params search.Params) (FilterPanel, search.Params) {
	p.Category, params.Category = p.Category.selectValue(params.Category)
	p.Author, params.Author = p.Author.selectValue(params.Author)
	p.Published, params.Published = p.Published.selectValue(params.Published)
	return p, params
}

func (g FilterGroup) selectValue(value string) (FilterGroup, string) {
	if len(g.Options) == 0 {
		return g, value
	}

	found := false
	for _, opt := range g.Options {
		if opt.Value == value {
			found = true
			break
		}
	}
	if !found {
		value = ""
	}

	options := make([]Option, len(g.Options))
	checked := false
	for i, opt := range g.Options {
		opt.Checked = !checked && opt.Value == value
		if opt.Checked {
			checked = true
		}
		options[i] = opt
	}
	g.Options = options
	return g, value
}

// Selected returns the value of the checked option, or "" when none is.
func (g FilterGroup) Selected() string {
	for _, opt := range g.Options {
		if opt.Checked {
			return opt.Value
		}
	}
	return ""
}
