package logbook

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"movie-logbook/pkg/feed"
)

// FetchFunc performs the one-time bulk read of the caller's rows for
// one table.
type FetchFunc[T Record] func(ctx context.Context) ([]T, error)

// Syncer keeps one Collection consistent with server state: a bulk
// fetch initializes it, then change-feed events mutate it for the rest
// of the session. Events that arrive while the bulk fetch is still in
// flight are buffered and replayed once the snapshot lands, so nothing
// is lost and nothing is applied twice. After Close no mutation is
// applied, including late fetch results.
type Syncer[T Record] struct {
	table string

	mu     sync.Mutex
	col    *Collection[T]
	ready  bool
	closed bool
	buffer []feed.Event
}

func NewSyncer[T Record](table string) *Syncer[T] {
	return &Syncer[T]{
		table: table,
		col:   NewCollection[T](),
	}
}

func (s *Syncer[T]) Table() string { return s.table }

// Load runs the bulk fetch and installs the snapshot, then replays any
// events buffered in the meantime. A failed fetch leaves the snapshot
// empty but still replays the buffer, so live changes keep arriving.
func (s *Syncer[T]) Load(ctx context.Context, fetch FetchFunc[T]) error {
	recs, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		// screen already torn down, late result discarded
		return nil
	}
	if s.ready {
		return nil
	}

	if err == nil {
		s.col.Reset(recs)
	}

	for _, ev := range s.buffer {
		s.applyLocked(ev)
	}
	s.buffer = nil
	s.ready = true

	if err != nil {
		return fmt.Errorf("bulk fetch %s: %w", s.table, err)
	}
	return nil
}

// Apply routes one change event into the collection. Events for other
// tables are ignored, so several syncers can share one feed connection.
func (s *Syncer[T]) Apply(ev feed.Event) {
	if ev.Table != s.table {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if !s.ready {
		s.buffer = append(s.buffer, ev)
		return
	}
	s.applyLocked(ev)
}

func (s *Syncer[T]) applyLocked(ev feed.Event) {
	switch ev.Type {
	case feed.EventInsert, feed.EventUpdate:
		var rec T
		if err := json.Unmarshal(ev.Record, &rec); err != nil {
			return
		}
		if ev.Type == feed.EventInsert {
			s.col.Insert(rec)
		} else {
			s.col.Update(rec)
		}
	case feed.EventDelete:
		s.col.Delete(ev.OldID)
	}
}

// Close detaches the syncer. Buffered events are dropped and every
// later Apply or Load result is discarded.
func (s *Syncer[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.buffer = nil
}

func (s *Syncer[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.col.Get(id)
}

func (s *Syncer[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.col.Len()
}

// Records returns the current records in arrival order.
func (s *Syncer[T]) Records() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.col.Records()
}
