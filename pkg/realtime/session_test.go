package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rubiojr/folio/pkg/page"
	"github.com/rubiojr/folio/pkg/render"
	"github.com/rubiojr/folio/pkg/search"
	"github.com/rubiojr/folio/pkg/searchapi"
)

// slowBackend blocks suggestion lookups for "slow" until the request is
// cancelled, and answers everything else immediately.
type slowBackend struct{}

func (slowBackend) Filters(ctx context.Context) (*searchapi.FilterOptions, error) {
	return &searchapi.FilterOptions{}, nil
}

func (slowBackend) Suggest(ctx context.Context, text string) (*searchapi.Suggestions, error) {
	if strings.TrimSpace(text) == "slow" {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return &searchapi.Suggestions{Suggestions: []searchapi.FlexString{searchapi.FlexString(text + " one"), searchapi.FlexString(text + " two")}}, nil
}

func (slowBackend) Search(ctx context.Context, params search.Params) (*searchapi.SearchResponse, error) {
	if params.Query == "slow" {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return &searchapi.SearchResponse{Response: &searchapi.ResultSet{
		NumFound: 1,
		Docs:     []searchapi.Doc{{ID: "1", Title: searchapi.FlexString(params.Query), Author: "X", Category: "Fiction", Published: true}},
	}}, nil
}

type textRenderer struct{}

func (textRenderer) Suggestions(ctx context.Context, list render.SuggestionList) (string, error) {
	return "<ul>" + strings.Join(list.Items, "|") + "</ul>", nil
}

func (textRenderer) Results(ctx context.Context, view render.ResultsView) (string, error) {
	return fmt.Sprintf("<div>%d cards</div>", len(view.Cards)), nil
}

func dial(t *testing.T) (*websocket.Conn, ServerMessage) {
	t.Helper()
	handler := NewHandler(page.NewController(slowBackend{}), textRenderer{})
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	u, _ := url.Parse(ts.URL)
	u.Scheme = "ws"

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial ws: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn, readMessage(t, conn)
}

func readMessage(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatalf("set read deadline: %v", err)
	}
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read message: %v", err)
	}
	var msg ServerMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
	return msg
}

// readUntil reads messages until one of the given type and seq arrives and
// returns everything read.
func readUntil(t *testing.T, conn *websocket.Conn, typ string, seq uint64) []ServerMessage {
	t.Helper()
	var seen []ServerMessage
	for {
		msg := readMessage(t, conn)
		seen = append(seen, msg)
		if msg.Type == typ && msg.Seq == seq {
			return seen
		}
	}
}

func sendMessage(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write message: %v", err)
	}
}

func TestInitMessage(t *testing.T) {
	_, init := dial(t)
	if init.Type != TypeInit {
		t.Fatalf("expected init message, got %q", init.Type)
	}
	if len(init.Session) != 36 {
		t.Errorf("expected a uuid session id, got %q", init.Session)
	}
}

func TestInputSuggestions(t *testing.T) {
	conn, _ := dial(t)

	sendMessage(t, conn, ClientMessage{Type: TypeInput, Seq: 1, Text: "du"})
	msg := readMessage(t, conn)

	if msg.Type != TypeSuggestions || msg.Seq != 1 {
		t.Fatalf("unexpected message %+v", msg)
	}
	if msg.Visible == nil || !*msg.Visible {
		t.Error("expected a visible list")
	}
	if msg.HTML != "<ul>du one|du two</ul>" {
		t.Errorf("unexpected html %q", msg.HTML)
	}
	if msg.Suggestions == nil || len(msg.Suggestions.Items) != 2 {
		t.Errorf("unexpected suggestions %+v", msg.Suggestions)
	}
}

func TestShortInputHidesSuggestions(t *testing.T) {
	conn, _ := dial(t)

	sendMessage(t, conn, ClientMessage{Type: TypeInput, Seq: 1, Text: " d "})
	msg := readMessage(t, conn)

	if msg.Type != TypeSuggestions || msg.Visible == nil || *msg.Visible {
		t.Fatalf("expected hidden suggestions, got %+v", msg)
	}
	if msg.HTML != "" {
		t.Errorf("hidden list should carry no html, got %q", msg.HTML)
	}
}

func TestStaleSuggestionsAreDropped(t *testing.T) {
	conn, _ := dial(t)

	sendMessage(t, conn, ClientMessage{Type: TypeInput, Seq: 1, Text: "slow"})
	sendMessage(t, conn, ClientMessage{Type: TypeInput, Seq: 2, Text: "fast"})
	sendMessage(t, conn, ClientMessage{Type: TypeInput, Seq: 3, Text: "x"})

	for _, msg := range readUntil(t, conn, TypeSuggestions, 3) {
		if msg.Seq == 1 {
			t.Errorf("stale reply for seq 1 was delivered: %+v", msg)
		}
	}
}

func TestSearchFlow(t *testing.T) {
	conn, _ := dial(t)

	sendMessage(t, conn, ClientMessage{Type: TypeSearch, Seq: 7, Params: search.Params{Query: "  dune ", Category: "Fiction"}})

	hidden := readMessage(t, conn)
	if hidden.Type != TypeSuggestions || hidden.Visible == nil || *hidden.Visible {
		t.Fatalf("expected suggestions to be hidden first, got %+v", hidden)
	}

	loading := readMessage(t, conn)
	if loading.Type != TypeLoading || loading.Seq != 7 {
		t.Fatalf("expected loading, got %+v", loading)
	}

	results := readMessage(t, conn)
	if results.Type != TypeResults || results.Seq != 7 {
		t.Fatalf("expected results, got %+v", results)
	}
	if results.HTML != "<div>1 cards</div>" {
		t.Errorf("unexpected html %q", results.HTML)
	}
	if results.Query == nil || *results.Query != "dune" {
		t.Errorf("expected trimmed query echo, got %v", results.Query)
	}
	if results.Results == nil || results.Results.Cards[0].Title != "dune" {
		t.Errorf("unexpected results %+v", results.Results)
	}
}

func TestSelectSuggestion(t *testing.T) {
	conn, _ := dial(t)

	sendMessage(t, conn, ClientMessage{Type: TypeSelect, Seq: 4, Text: "Dune Messiah", Params: search.Params{Query: "du"}})

	msgs := readUntil(t, conn, TypeResults, 4)
	results := msgs[len(msgs)-1]
	if results.Query == nil || *results.Query != "Dune Messiah" {
		t.Errorf("expected the suggestion as query, got %v", results.Query)
	}
	if results.Results.Cards[0].Title != "Dune Messiah" {
		t.Errorf("expected a search for the suggestion, got %+v", results.Results)
	}
}

func TestStaleSearchIsDropped(t *testing.T) {
	conn, _ := dial(t)

	sendMessage(t, conn, ClientMessage{Type: TypeSearch, Seq: 1, Params: search.Params{Query: "slow"}})
	sendMessage(t, conn, ClientMessage{Type: TypeSearch, Seq: 2, Params: search.Params{Query: "quick"}})

	for _, msg := range readUntil(t, conn, TypeResults, 2) {
		if msg.Type == TypeResults && msg.Seq == 1 {
			t.Errorf("stale results for seq 1 were delivered")
		}
	}
}

func TestMalformedAndUnknownMessages(t *testing.T) {
	conn, _ := dial(t)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if msg := readMessage(t, conn); msg.Type != TypeError {
		t.Errorf("expected error message, got %+v", msg)
	}

	sendMessage(t, conn, ClientMessage{Type: "bogus", Seq: 1})
	if msg := readMessage(t, conn); msg.Type != TypeError || msg.Message != "unknown message type" {
		t.Errorf("expected unknown type error, got %+v", msg)
	}
}
