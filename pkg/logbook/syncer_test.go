package logbook

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"movie-logbook/pkg/feed"
)

func mustRecord(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal record: %v", err)
	}
	return data
}

func staticFetch(filmes []Filme, err error) FetchFunc[Filme] {
	return func(context.Context) ([]Filme, error) {
		return filmes, err
	}
}

func TestSyncerEventsBeforeFetchAreReplayed(t *testing.T) {
	s := NewSyncer[Filme](feed.TableFilmes)

	// events land while the bulk fetch is still in flight
	s.Apply(feed.Event{
		Table:  feed.TableFilmes,
		Type:   feed.EventInsert,
		Record: mustRecord(t, Filme{ID: "f2", Titulo: "chegou antes"}),
	})
	s.Apply(feed.Event{
		Table: feed.TableFilmes,
		Type:  feed.EventDelete,
		OldID: "f1",
	})

	err := s.Load(context.Background(), staticFetch([]Filme{
		{ID: "f1", Titulo: "do snapshot"},
	}, nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// f1 came in the snapshot but was deleted by a buffered event;
	// f2 arrived only through the feed
	if _, ok := s.Get("f1"); ok {
		t.Error("f1 should have been removed by the replayed delete")
	}
	if got, ok := s.Get("f2"); !ok || got.Titulo != "chegou antes" {
		t.Errorf("f2 = %+v ok=%v, want buffered insert applied", got, ok)
	}
}

func TestSyncerInsertForSnapshotRowIsIdempotent(t *testing.T) {
	s := NewSyncer[Filme](feed.TableFilmes)

	s.Apply(feed.Event{
		Table:  feed.TableFilmes,
		Type:   feed.EventInsert,
		Record: mustRecord(t, Filme{ID: "f1", Titulo: "do evento"}),
	})

	if err := s.Load(context.Background(), staticFetch([]Filme{
		{ID: "f1", Titulo: "do snapshot"},
	}, nil)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (no duplicate from event + snapshot)", s.Len())
	}
	got, _ := s.Get("f1")
	if got.Titulo != "do evento" {
		t.Errorf("Titulo = %q, want the later (event) write to win", got.Titulo)
	}
}

func TestSyncerFailedFetchLeavesEmptyButLive(t *testing.T) {
	s := NewSyncer[Filme](feed.TableFilmes)

	err := s.Load(context.Background(), staticFetch(nil, errors.New("sem rede")))
	if err == nil {
		t.Fatal("Load should surface the fetch error")
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0 after failed fetch", s.Len())
	}

	// feed still applies afterwards
	s.Apply(feed.Event{
		Table:  feed.TableFilmes,
		Type:   feed.EventInsert,
		Record: mustRecord(t, Filme{ID: "f1"}),
	})
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1: live events keep working after a failed fetch", s.Len())
	}
}

func TestSyncerCloseStopsMutations(t *testing.T) {
	s := NewSyncer[Filme](feed.TableFilmes)
	if err := s.Load(context.Background(), staticFetch([]Filme{{ID: "f1"}}, nil)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	s.Close()

	s.Apply(feed.Event{
		Table: feed.TableFilmes,
		Type:  feed.EventDelete,
		OldID: "f1",
	})
	if _, ok := s.Get("f1"); !ok {
		t.Error("event applied after Close")
	}
}

func TestSyncerLateFetchAfterCloseIsDiscarded(t *testing.T) {
	s := NewSyncer[Filme](feed.TableFilmes)
	s.Close()

	if err := s.Load(context.Background(), staticFetch([]Filme{{ID: "f1"}}, nil)); err != nil {
		t.Fatalf("Load after Close should be silent, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0: late fetch result must be discarded", s.Len())
	}
}

func TestSyncerRoutesByTable(t *testing.T) {
	filmes := NewSyncer[Filme](feed.TableFilmes)
	cenas := NewSyncer[Cena](feed.TableCenas)

	if err := filmes.Load(context.Background(), staticFetch(nil, nil)); err != nil {
		t.Fatalf("Load filmes: %v", err)
	}
	if err := cenas.Load(context.Background(), func(context.Context) ([]Cena, error) {
		return nil, nil
	}); err != nil {
		t.Fatalf("Load cenas: %v", err)
	}

	events := []feed.Event{
		{Table: feed.TableFilmes, Type: feed.EventInsert, Record: mustRecord(t, Filme{ID: "f1"})},
		{Table: feed.TableCenas, Type: feed.EventInsert, Record: mustRecord(t, Cena{ID: "c1", IDFilme: "f1"})},
		{Table: feed.TableResenhas, Type: feed.EventInsert, Record: mustRecord(t, Resenha{ID: "r1"})},
	}
	for _, ev := range events {
		filmes.Apply(ev)
		cenas.Apply(ev)
	}

	if filmes.Len() != 1 {
		t.Errorf("filmes.Len = %d, want 1", filmes.Len())
	}
	if cenas.Len() != 1 {
		t.Errorf("cenas.Len = %d, want 1", cenas.Len())
	}
	if _, ok := filmes.Get("c1"); ok {
		t.Error("cena event leaked into the filme collection")
	}
}

func TestSyncerEventOrderPreserved(t *testing.T) {
	s := NewSyncer[Filme](feed.TableFilmes)
	if err := s.Load(context.Background(), staticFetch(nil, nil)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	s.Apply(feed.Event{Table: feed.TableFilmes, Type: feed.EventInsert, Record: mustRecord(t, Filme{ID: "f1", Titulo: "a"})})
	s.Apply(feed.Event{Table: feed.TableFilmes, Type: feed.EventUpdate, Record: mustRecord(t, Filme{ID: "f1", Titulo: "b"})})
	s.Apply(feed.Event{Table: feed.TableFilmes, Type: feed.EventUpdate, Record: mustRecord(t, Filme{ID: "f1", Titulo: "c"})})

	got, _ := s.Get("f1")
	if got.Titulo != "c" {
		t.Errorf("Titulo = %q, want last event in server order", got.Titulo)
	}
}

func TestResolverPlaceholderUntilFilmeArrives(t *testing.T) {
	filmes := NewSyncer[Filme](feed.TableFilmes)
	if err := filmes.Load(context.Background(), staticFetch(nil, nil)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	resolver := NewFilmeResolver(filmes)

	if got := resolver.Titulo("f1"); got != FilmeNaoDisponivel {
		t.Errorf("Titulo = %q, want placeholder %q", got, FilmeNaoDisponivel)
	}

	filmes.Apply(feed.Event{
		Table:  feed.TableFilmes,
		Type:   feed.EventInsert,
		Record: mustRecord(t, Filme{ID: "f1", Titulo: "Cidade de Deus"}),
	})

	if got := resolver.Titulo("f1"); got != "Cidade de Deus" {
		t.Errorf("Titulo = %q after arrival, want the movie title", got)
	}
}
