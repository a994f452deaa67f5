package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rubiojr/folio/pkg/render"
	"github.com/rubiojr/folio/pkg/search"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Define styles using lipgloss
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1).
			Margin(0, 0, 1, 0)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Margin(1, 0, 0, 0)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Margin(0, 0, 1, 2)

	bookTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	publishedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("32"))

	unpublishedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("160"))

	noDataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Margin(1, 0)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))
)

var upper = cases.Upper(language.English)

// formatResults renders the results panel for the terminal.
func formatResults(view render.ResultsView, params search.Params) string {
	var b strings.Builder

	header := "📚 All books"
	if !params.IsZero() {
		header = "📚 " + params.Encode()
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")

	if view.State != render.StateResults {
		b.WriteString(noDataStyle.Render(view.Message))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(metaStyle.Render(fmt.Sprintf("%d found, showing %d", view.NumFound, len(view.Cards))))
	b.WriteString("\n\n")
	for _, card := range view.Cards {
		b.WriteString(formatCard(card))
		b.WriteString("\n")
	}
	return b.String()
}

func formatCard(card render.Card) string {
	badge := unpublishedStyle.Render(upper.String(card.BadgeLabel))
	if card.Published {
		badge = publishedStyle.Render(upper.String(card.BadgeLabel))
	}

	lines := []string{
		bookTitleStyle.Render(card.Title),
		card.AuthorLine,
		categoryStyle.Render(card.Category) + "  " + badge,
		metaStyle.Render(card.IDLine),
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

// formatSuggestions prints one suggestion per line, nothing when hidden.
func formatSuggestions(list render.SuggestionList) string {
	if !list.Visible {
		return ""
	}
	var b strings.Builder
	for _, item := range list.Items {
		b.WriteString("  ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}

// formatFilters lists the filter vocabulary, marking the default option.
func formatFilters(panel render.FilterPanel) string {
	var b strings.Builder
	title := cases.Title(language.English)

	for _, group := range panel.Groups() {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%s)", group.Title, title.String(group.Name))))
		b.WriteString("\n")
		if len(group.Options) == 0 {
			b.WriteString(noDataStyle.Render("  unavailable"))
			b.WriteString("\n")
			continue
		}
		for _, opt := range group.Options {
			label := opt.Label
			if opt.Value != "" && opt.Value != opt.Label {
				label = fmt.Sprintf("%s [%s]", opt.Label, opt.Value)
			}
			if opt.Checked {
				b.WriteString("  " + selectedStyle.Render("● "+label) + "\n")
			} else {
				b.WriteString("  ○ " + label + "\n")
			}
		}
	}
	return b.String()
}
