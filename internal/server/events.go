package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/theirongolddev/creditsim/internal/export"
	"github.com/theirongolddev/creditsim/internal/model"
)

// Event is published after every successful run. It carries the run's
// shape and outcome, not its rows.
type Event struct {
	ID           int64     `json:"id"`
	Type         string    `json:"type"`
	Timestamp    time.Time `json:"timestamp"`
	Source       string    `json:"source"`
	Months       int       `json:"months"`
	Bands        int       `json:"bands"`
	FinalBalance float64   `json:"final_balance"`
	TotalPaid    float64   `json:"total_paid"`
	PayoffMonth  int       `json:"payoff_month"`
}

// runFeed keeps the most recent events in a fixed ring and fans new ones
// out to stream subscribers. Slow subscribers miss events rather than
// block a run.
type runFeed struct {
	mu     sync.RWMutex
	ring   []Event
	head   int // next write slot
	size   int
	lastID int64
	subs   map[chan Event]struct{}
}

func newRunFeed(capacity int) *runFeed {
	return &runFeed{
		ring: make([]Event, capacity),
		subs: make(map[chan Event]struct{}),
	}
}

// publish assigns ev the next ID, stores it and notifies subscribers.
func (f *runFeed) publish(ev Event) Event {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastID++
	ev.ID = f.lastID
	f.ring[f.head] = ev
	f.head = (f.head + 1) % len(f.ring)
	f.size = min(f.size+1, len(f.ring))

	for ch := range f.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	return ev
}

// since returns buffered events with ID > after, oldest first.
func (f *runFeed) since(after int64) []Event {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.sinceLocked(after)
}

func (f *runFeed) sinceLocked(after int64) []Event {
	out := make([]Event, 0, f.size)
	start := (f.head - f.size + len(f.ring)) % len(f.ring)
	for i := 0; i < f.size; i++ {
		ev := f.ring[(start+i)%len(f.ring)]
		if ev.ID > after {
			out = append(out, ev)
		}
	}
	return out
}

// subscribe registers a channel and returns the events after lastSeen that
// it would otherwise have missed. The backlog and registration happen under
// one lock so nothing falls between them.
func (f *runFeed) subscribe(lastSeen int64) (chan Event, []Event) {
	ch := make(chan Event, 16)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs[ch] = struct{}{}

	if lastSeen == 0 {
		return ch, nil
	}
	return ch, f.sinceLocked(lastSeen)
}

func (f *runFeed) unsubscribe(ch chan Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.subs, ch)
}

func (f *runFeed) stats() (buffered, subscribers int) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.size, len(f.subs)
}

func (s *Service) recordRun(source string, doc export.Document, res model.Result) {
	s.mu.Lock()
	s.runCount++
	s.mu.Unlock()

	s.feed.publish(Event{
		Type:         "simulation",
		Timestamp:    time.Now(),
		Source:       source,
		Months:       doc.Months,
		Bands:        len(doc.Bands),
		FinalBalance: res.Summary.FinalBalance,
		TotalPaid:    res.Summary.TotalPaid,
		PayoffMonth:  res.PayoffMonth,
	})
}

// handleEvents lists buffered events; ?since=N keeps those with ID > N.
func (s *Service) handleEvents(w http.ResponseWriter, r *http.Request) {
	after, err := eventCursor(r.URL.Query().Get("since"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid since", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.feed.since(after))
}

// handleStream serves events as server-sent events. A reconnecting client's
// Last-Event-ID header replays what it missed from the buffer.
func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	lastSeen, err := eventCursor(r.Header.Get("Last-Event-ID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid Last-Event-ID", err.Error())
		return
	}

	ch, backlog := s.feed.subscribe(lastSeen)
	defer s.feed.unsubscribe(ch)

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")

	_, _ = fmt.Fprint(w, ": connected\n\n")
	for _, ev := range backlog {
		writeSSE(w, ev)
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func eventCursor(v string) (int64, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%q is not an event id", v)
	}
	return n, nil
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", ev.ID, ev.Type, data)
}
