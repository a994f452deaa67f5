package realtime

import (
	"github.com/rubiojr/folio/pkg/render"
	"github.com/rubiojr/folio/pkg/search"
)

// Client message types.
const (
	TypeInput  = "input"
	TypeSearch = "search"
	TypeSelect = "select"
)

// Server message types.
const (
	TypeInit        = "init"
	TypeSuggestions = "suggestions"
	TypeLoading     = "loading"
	TypeResults     = "results"
	TypeError       = "error"
)

// ClientMessage is sent by the browser. Seq increases with every message
// the page sends and is echoed back in the replies it causes.
//
//	{"type":"input","seq":3,"text":"du"}
//	{"type":"search","seq":4,"params":{"q":"dune","category":"Fiction"}}
//	{"type":"select","seq":5,"text":"Dune","params":{"category":"Fiction"}}
type ClientMessage struct {
	Type   string        `json:"type"`
	Seq    uint64        `json:"seq"`
	Text   string        `json:"text,omitempty"`
	Params search.Params `json:"params"`
}

// ServerMessage is sent to the browser. HTML carries the rendered fragment;
// Suggestions and Results carry the same content as render instructions.
type ServerMessage struct {
	Type        string                 `json:"type"`
	Seq         uint64                 `json:"seq,omitempty"`
	Session     string                 `json:"session,omitempty"`
	HTML        string                 `json:"html,omitempty"`
	Visible     *bool                  `json:"visible,omitempty"`
	Query       *string                `json:"query,omitempty"`
	Suggestions *render.SuggestionList `json:"suggestions,omitempty"`
	Results     *render.ResultsView    `json:"results,omitempty"`
	Message     string                 `json:"message,omitempty"`
}
