package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"movie-logbook/pkg/feed"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func insertEvent(table, id string) feed.Event {
	record, _ := json.Marshal(map[string]string{"id": id})
	return feed.Event{Table: table, Type: feed.EventInsert, Record: record}
}

func recvEvent(t *testing.T, sub *Subscriber) feed.Event {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		if !ok {
			t.Fatal("events channel closed unexpectedly")
		}
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return feed.Event{}
}

func TestPublishRoutesByTableAndOwner(t *testing.T) {
	hub := NewHub(nil, zap.NewNop())
	owner := uuid.New()
	other := uuid.New()

	filmesSub := hub.Subscribe(owner, []string{feed.TableFilmes})
	cenasSub := hub.Subscribe(owner, []string{feed.TableCenas})
	otherSub := hub.Subscribe(other, []string{feed.TableFilmes})

	hub.Publish(owner, insertEvent(feed.TableFilmes, "f1"))

	ev := recvEvent(t, filmesSub)
	if ev.Table != feed.TableFilmes || ev.RecordID() != "f1" {
		t.Fatalf("unexpected event: %+v", ev)
	}

	// neither the other table's subscriber nor the other owner's may see it
	select {
	case ev := <-cenasSub.Events():
		t.Fatalf("cenas subscriber received filmes event: %+v", ev)
	case ev := <-otherSub.Events():
		t.Fatalf("other owner received foreign event: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishPreservesOrder(t *testing.T) {
	hub := NewHub(nil, zap.NewNop())
	owner := uuid.New()
	sub := hub.Subscribe(owner, []string{feed.TableResenhas})

	for i := 0; i < 10; i++ {
		hub.Publish(owner, insertEvent(feed.TableResenhas, string(rune('a'+i))))
	}

	for i := 0; i < 10; i++ {
		ev := recvEvent(t, sub)
		if want := string(rune('a' + i)); ev.RecordID() != want {
			t.Fatalf("event %d out of order: got %s, want %s", i, ev.RecordID(), want)
		}
	}
}

func TestClosedSubscriberReceivesNothing(t *testing.T) {
	hub := NewHub(nil, zap.NewNop())
	owner := uuid.New()
	sub := hub.Subscribe(owner, []string{feed.TableFilmes})

	sub.Close()
	hub.Publish(owner, insertEvent(feed.TableFilmes, "late"))

	if _, ok := <-sub.Events(); ok {
		t.Fatal("event delivered after Close")
	}
}

func TestMultiTableSubscriber(t *testing.T) {
	hub := NewHub(nil, zap.NewNop())
	owner := uuid.New()
	sub := hub.Subscribe(owner, []string{feed.TableFilmes, feed.TableCenas})

	hub.Publish(owner, insertEvent(feed.TableCenas, "c1"))
	hub.Publish(owner, insertEvent(feed.TableFilmes, "f1"))

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		ev := recvEvent(t, sub)
		seen[ev.Table] = true
	}
	if !seen[feed.TableFilmes] || !seen[feed.TableCenas] {
		t.Fatalf("expected events from both tables, got %v", seen)
	}
}
