// Package realtime carries the interactive part of the search page over a
// WebSocket: keystrokes become suggestion lookups and submissions become
// searches, each answered with rendered fragments.
//
// Every connection is a Session. A session keeps one search.Sequencer per
// request class (suggest, search) so a slow answer can never overwrite the
// answer to a newer request: starting a request cancels the previous one
// of the same class and stale answers are dropped before they are sent.
package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rubiojr/folio/pkg/log"
	"github.com/rubiojr/folio/pkg/metrics"
	"github.com/rubiojr/folio/pkg/page"
	"github.com/rubiojr/folio/pkg/render"
	"github.com/rubiojr/folio/pkg/search"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 64 << 10
)

// Request classes used as the label of folio_stale_responses_total.
const (
	classSuggest = "suggest"
	classSearch  = "search"
)

// Renderer produces the HTML fragments pushed to the browser.
type Renderer interface {
	Suggestions(ctx context.Context, list render.SuggestionList) (string, error)
	Results(ctx context.Context, view render.ResultsView) (string, error)
}

// Session is one browser connection.
type Session struct {
	ID string

	conn     *websocket.Conn
	ctrl     *page.Controller
	renderer Renderer
	logger   *log.Logger

	writeMu sync.Mutex

	suggestSeq search.Sequencer
	searchSeq  search.Sequencer

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newSession(parent context.Context, conn *websocket.Conn, ctrl *page.Controller, renderer Renderer) *Session {
	ctx, cancel := context.WithCancel(parent)
	return &Session{
		ID:       uuid.NewString(),
		conn:     conn,
		ctrl:     ctrl,
		renderer: renderer,
		logger:   log.ForService("realtime"),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// run greets the browser and serves its messages until the connection
// closes.
func (s *Session) run() {
	defer s.close()

	s.conn.SetReadLimit(maxMessageSize)
	if err := s.send(ServerMessage{Type: TypeInit, Session: s.ID}); err != nil {
		s.logger.Warnf("session %s: sending init: %v", s.ID, err)
		return
	}

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warnf("session %s: read: %v", s.ID, err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.Debugf("session %s: malformed message: %v", s.ID, err)
			s.sendError("malformed message")
			continue
		}
		s.dispatch(msg)
	}
}

// dispatch starts the work for msg. Tickets are taken here, in message
// order, so the last message received is the one whose answer wins.
func (s *Session) dispatch(msg ClientMessage) {
	switch msg.Type {
	case TypeInput:
		ticket, ctx := s.suggestSeq.Begin(s.ctx)
		s.spawn(func() { s.handleInput(ctx, ticket, msg) })
	case TypeSearch:
		s.hideSuggestions(msg.Seq)
		ticket, ctx := s.searchSeq.Begin(s.ctx)
		s.spawn(func() { s.handleSearch(ctx, ticket, msg.Seq, msg.Params) })
	case TypeSelect:
		s.hideSuggestions(msg.Seq)
		ticket, ctx := s.searchSeq.Begin(s.ctx)
		s.spawn(func() { s.handleSelect(ctx, ticket, msg) })
	default:
		s.logger.Debugf("session %s: unknown message type %q", s.ID, msg.Type)
		s.sendError("unknown message type")
	}
}

func (s *Session) spawn(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn()
	}()
}

func (s *Session) handleInput(ctx context.Context, ticket search.Ticket, msg ClientMessage) {
	defer s.suggestSeq.Done(ticket)

	list := s.ctrl.HandleInput(ctx, msg.Text)
	if !s.suggestSeq.Current(ticket) {
		s.dropStale(classSuggest, msg.Seq)
		return
	}

	sent, err := s.sendCurrent(&s.suggestSeq, ticket, s.suggestionsMessage(ctx, msg.Seq, list))
	if err != nil {
		s.logger.Debugf("session %s: sending suggestions: %v", s.ID, err)
	} else if !sent {
		s.dropStale(classSuggest, msg.Seq)
	}
}

func (s *Session) handleSearch(ctx context.Context, ticket search.Ticket, seq uint64, params search.Params) {
	defer s.searchSeq.Done(ticket)

	params = params.Normalize()
	if !s.sendLoading(ticket, seq) {
		return
	}

	view := s.ctrl.PerformSearch(ctx, params)
	s.finishSearch(ctx, ticket, seq, params.Query, view)
}

func (s *Session) handleSelect(ctx context.Context, ticket search.Ticket, msg ClientMessage) {
	defer s.searchSeq.Done(ticket)

	if !s.sendLoading(ticket, msg.Seq) {
		return
	}

	params, view := s.ctrl.SelectSuggestion(ctx, msg.Text, msg.Params.Normalize())
	s.finishSearch(ctx, ticket, msg.Seq, params.Query, view)
}

// sendLoading shows the loading indicator for a search that is still the
// latest one. It reports whether the search should go ahead.
func (s *Session) sendLoading(ticket search.Ticket, seq uint64) bool {
	sent, err := s.sendCurrent(&s.searchSeq, ticket, ServerMessage{Type: TypeLoading, Seq: seq})
	if err != nil {
		s.logger.Debugf("session %s: sending loading: %v", s.ID, err)
		return false
	}
	if !sent {
		s.dropStale(classSearch, seq)
	}
	return sent
}

func (s *Session) finishSearch(ctx context.Context, ticket search.Ticket, seq uint64, query string, view render.ResultsView) {
	if !s.searchSeq.Current(ticket) {
		s.dropStale(classSearch, seq)
		return
	}

	msg := ServerMessage{Type: TypeResults, Seq: seq, Query: &query, Results: &view}
	if s.renderer != nil {
		html, err := s.renderer.Results(ctx, view)
		if err != nil {
			s.logger.Errorf("session %s: rendering results: %v", s.ID, err)
			s.sendError("rendering failed")
			return
		}
		msg.HTML = html
	}

	sent, err := s.sendCurrent(&s.searchSeq, ticket, msg)
	if err != nil {
		s.logger.Debugf("session %s: sending results: %v", s.ID, err)
	} else if !sent {
		s.dropStale(classSearch, seq)
	}
}

func (s *Session) dropStale(class string, seq uint64) {
	metrics.StaleResponsesTotal.WithLabelValues(class).Inc()
	s.logger.Debugf("session %s: dropping stale %s reply for seq %d", s.ID, class, seq)
}

// hideSuggestions closes the dropdown and supersedes any pending lookup,
// so a late answer cannot reopen it over the results.
func (s *Session) hideSuggestions(seq uint64) {
	ticket, _ := s.suggestSeq.Begin(s.ctx)
	s.suggestSeq.Done(ticket)
	if err := s.send(s.suggestionsMessage(s.ctx, seq, render.HiddenSuggestions())); err != nil {
		s.logger.Debugf("session %s: hiding suggestions: %v", s.ID, err)
	}
}

func (s *Session) suggestionsMessage(ctx context.Context, seq uint64, list render.SuggestionList) ServerMessage {
	visible := list.Visible
	msg := ServerMessage{Type: TypeSuggestions, Seq: seq, Visible: &visible, Suggestions: &list}
	if s.renderer == nil || !list.Visible {
		return msg
	}

	html, err := s.renderer.Suggestions(ctx, list)
	if err != nil {
		s.logger.Errorf("session %s: rendering suggestions: %v", s.ID, err)
		hidden := render.HiddenSuggestions()
		visible = false
		msg.Suggestions = &hidden
		return msg
	}
	msg.HTML = html
	return msg
}

func (s *Session) sendError(message string) {
	if err := s.send(ServerMessage{Type: TypeError, Message: message}); err != nil {
		s.logger.Debugf("session %s: sending error: %v", s.ID, err)
	}
}

// send writes one message. Writes from concurrent handlers are serialized.
func (s *Session) send(msg ServerMessage) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.write(msg)
}

// sendCurrent writes msg only if ticket is still the latest of seq. The
// check happens under the write lock so no newer reply of the same class
// can be written in between.
func (s *Session) sendCurrent(seq *search.Sequencer, ticket search.Ticket, msg ServerMessage) (bool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if !seq.Current(ticket) {
		return false, nil
	}
	return true, s.write(msg)
}

func (s *Session) write(msg ServerMessage) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteJSON(msg)
}

func (s *Session) close() {
	s.cancel()
	s.suggestSeq.Stop()
	s.searchSeq.Stop()
	s.wg.Wait()
	_ = s.conn.Close()
}
