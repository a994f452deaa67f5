package search

import (
	"context"
	"sync"
)

// Ticket identifies one request issued through a Sequencer.
type Ticket uint64

// Sequencer implements a latest-request-wins policy for one class of
// requests (for example, autocomplete lookups of a single page session).
//
// Begin hands out increasing tickets and cancels the context of the request
// it supersedes. Current tells a finishing request whether its result may
// still be applied. The zero value is ready to use and safe for concurrent
// use.
type Sequencer struct {
	mu     sync.Mutex
	latest Ticket
	cancel context.CancelFunc
}

// Begin starts a new request derived from parent. The previous in-flight
// request, if any, has its context cancelled.
func (s *Sequencer) Begin(parent context.Context) (Ticket, context.Context) {
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.latest++
	s.cancel = cancel
	return s.latest, ctx
}

// Current reports whether t is the most recently issued ticket.
func (s *Sequencer) Current(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t == s.latest
}

// Done releases the resources of the request identified by t. Superseded
// tickets were already cancelled by Begin, so only the latest one matters.
func (s *Sequencer) Done(t Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t == s.latest && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Stop cancels whatever request is in flight. Later tickets keep working.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
