package render

import (
	"github.com/rubiojr/folio/pkg/searchapi"
)

// Messages shown in place of result cards.
const (
	NoResultsMessage = "No books found matching your search criteria."
	ErrorMessage     = "An error occurred while searching. Please try again."
)

// Badge classes and labels of the published status.
const (
	PublishedClass   = "book-published"
	UnpublishedClass = "book-unpublished"
	PublishedLabel   = "Published"
	UnpublishedLabel = "Unpublished"
)

// ResultState tells what the results panel contains.
type ResultState string

const (
	StateResults ResultState = "results"
	StateEmpty   ResultState = "empty"
	StateError   ResultState = "error"
)

// Card is one book in the results panel.
type Card struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	AuthorLine string `json:"author_line"`
	Category   string `json:"category"`
	Published  bool   `json:"published"`
	BadgeClass string `json:"badge_class"`
	BadgeLabel string `json:"badge_label"`
	IDLine     string `json:"id_line"`
}

// ResultsView replaces the whole results panel. Message is set for the
// empty and error states, Cards for the results state.
type ResultsView struct {
	State    ResultState `json:"state"`
	Message  string      `json:"message,omitempty"`
	NumFound int         `json:"num_found"`
	Cards    []Card      `json:"cards"`
}

// Results builds the results panel for a /search/ answer. A missing
// response or numFound == 0 yields the no-results message; otherwise each
// document becomes a card, in API order.
//
// A positive numFound without a docs list is a broken answer and yields the
// error message. An empty docs list (a page past the last match) yields the
// no-results message.
func Results(resp *searchapi.SearchResponse) ResultsView {
	if resp.Empty() {
		return ResultsView{State: StateEmpty, Message: NoResultsMessage, Cards: []Card{}}
	}
	if resp.Response.Docs == nil {
		return ErrorResults()
	}
	if len(resp.Response.Docs) == 0 {
		return ResultsView{State: StateEmpty, Message: NoResultsMessage, NumFound: resp.Response.NumFound, Cards: []Card{}}
	}

	cards := make([]Card, 0, len(resp.Response.Docs))
	for _, doc := range resp.Response.Docs {
		cards = append(cards, NewCard(doc))
	}

	return ResultsView{
		State:    StateResults,
		NumFound: resp.Response.NumFound,
		Cards:    cards,
	}
}

// ErrorResults is the results panel after a failed search.
func ErrorResults() ResultsView {
	return ResultsView{State: StateError, Message: ErrorMessage, Cards: []Card{}}
}

// NewCard builds the card of one document.
func NewCard(doc searchapi.Doc) Card {
	card := Card{
		ID:        PlainText(doc.ID.String()),
		Title:     PlainText(doc.Title.String()),
		Author:    PlainText(doc.Author.String()),
		Category:  PlainText(doc.Category.String()),
		Published: doc.Published.Bool(),
	}

	card.AuthorLine = "by " + card.Author
	card.IDLine = "ID: " + card.ID
	if card.Published {
		card.BadgeClass, card.BadgeLabel = PublishedClass, PublishedLabel
	} else {
		card.BadgeClass, card.BadgeLabel = UnpublishedClass, UnpublishedLabel
	}
	return card
}
