package search

import (
	"context"
	"sync"
	"testing"
)

func TestSequencerLatestWins(t *testing.T) {
	var seq Sequencer

	first, firstCtx := seq.Begin(context.Background())
	second, secondCtx := seq.Begin(context.Background())

	if seq.Current(first) {
		t.Error("first ticket should be stale after a second Begin")
	}
	if !seq.Current(second) {
		t.Error("second ticket should be current")
	}

	select {
	case <-firstCtx.Done():
	default:
		t.Error("superseded request context should be cancelled")
	}

	if secondCtx.Err() != nil {
		t.Errorf("current request context should be live, got %v", secondCtx.Err())
	}

	seq.Done(second)
	if secondCtx.Err() == nil {
		t.Error("Done should release the current request context")
	}
	if !seq.Current(second) {
		t.Error("Done must not invalidate the ticket itself")
	}
}

func TestSequencerDoneOnStaleTicket(t *testing.T) {
	var seq Sequencer

	first, _ := seq.Begin(context.Background())
	second, secondCtx := seq.Begin(context.Background())

	seq.Done(first)
	if secondCtx.Err() != nil {
		t.Error("Done on a stale ticket must not cancel the current request")
	}
	seq.Done(second)
}

func TestSequencerStop(t *testing.T) {
	var seq Sequencer

	_, ctx := seq.Begin(context.Background())
	seq.Stop()
	if ctx.Err() == nil {
		t.Error("Stop should cancel the in-flight request")
	}

	ticket, next := seq.Begin(context.Background())
	if next.Err() != nil || !seq.Current(ticket) {
		t.Error("Sequencer should keep working after Stop")
	}
	seq.Done(ticket)
}

func TestSequencerConcurrentBegin(t *testing.T) {
	var seq Sequencer
	var wg sync.WaitGroup

	tickets := make(chan Ticket, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticket, _ := seq.Begin(context.Background())
			tickets <- ticket
		}()
	}
	wg.Wait()
	close(tickets)

	seen := make(map[Ticket]bool)
	current := 0
	for ticket := range tickets {
		if seen[ticket] {
			t.Fatalf("ticket %d issued twice", ticket)
		}
		seen[ticket] = true
		if seq.Current(ticket) {
			current++
		}
	}
	if current != 1 {
		t.Errorf("expected exactly one current ticket, got %d", current)
	}
	seq.Stop()
}
