package feed

import (
	"testing"
	"time"
)

func TestPublishFansOut(t *testing.T) {
	h := NewHub()

	ch1, cancel1 := h.Subscribe()
	ch2, cancel2 := h.Subscribe()
	defer cancel1()
	defer cancel2()

	sent := h.Publish(EventSubmitted, "G1", 7, "42")
	if sent.ID == "" || sent.Type != EventSubmitted {
		t.Fatalf("Publish() returned %+v, want submitted event with id", sent)
	}

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			if ev.GuildID != "G1" || ev.SuggestionID != 7 || ev.AuthorID != "42" {
				t.Errorf("received %+v, want G1/7/42", ev)
			}
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestCancelRemovesSubscriber(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe()
	if h.Subscribers() != 1 {
		t.Fatalf("Subscribers() = %d, want 1", h.Subscribers())
	}

	cancel()
	if h.Subscribers() != 0 {
		t.Errorf("Subscribers() after cancel = %d, want 0", h.Subscribers())
	}

	// Channel must be closed so readers can stop
	if _, open := <-ch; open {
		t.Error("channel still open after cancel")
	}

	// Cancel twice must not panic
	cancel()
}

func TestSlowSubscriberDropsEvents(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe()
	defer cancel()

	// Fill the buffer without reading; extra publishes must not block
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			h.Publish(EventApproved, "G1", int64(i), "42")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish() blocked on a slow subscriber")
	}

	if got := len(ch); got > 16 {
		t.Errorf("buffered events = %d, want at most the buffer size", got)
	}
}
