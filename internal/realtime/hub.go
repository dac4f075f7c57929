package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"movie-logbook/pkg/feed"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// redis channel carrying change events between server instances
const redisChannel = "logbook:feed"

// Publisher is the mutation-side view of the hub
type Publisher interface {
	Publish(userID uuid.UUID, ev feed.Event)
}

type subKey struct {
	table  string
	userID uuid.UUID
}

// Subscriber receives the change events of one user for a set of tables.
// Events arrive in publish order per table. A subscriber that stops
// draining is dropped rather than allowed to stall the hub.
type Subscriber struct {
	hub    *Hub
	userID uuid.UUID
	tables []string
	events chan feed.Event
	once   sync.Once
}

func (s *Subscriber) Events() <-chan feed.Event {
	return s.events
}

// Close detaches the subscriber. The events channel is closed and no
// further events are delivered.
func (s *Subscriber) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.events)
	})
}

// Hub routes change events to websocket subscribers, keyed by table and
// owner. With a redis client configured, events travel through pub/sub
// so every server instance sees every mutation.
type Hub struct {
	mu     sync.RWMutex
	subs   map[subKey]map[*Subscriber]struct{}
	rdb    *redis.Client
	log    *zap.Logger
	cancel context.CancelFunc
}

func NewHub(rdb *redis.Client, log *zap.Logger) *Hub {
	h := &Hub{
		subs: make(map[subKey]map[*Subscriber]struct{}),
		rdb:  rdb,
		log:  log.With(zap.String("component", "realtime")),
	}

	if rdb != nil {
		ctx, cancel := context.WithCancel(context.Background())
		h.cancel = cancel
		go h.listen(ctx)
	}

	return h
}

type envelope struct {
	UserID string     `json:"userId"`
	Event  feed.Event `json:"event"`
}

// Publish fans out one change event to the owner's subscribers. Goes
// through redis when configured so other instances deliver it too.
func (h *Hub) Publish(userID uuid.UUID, ev feed.Event) {
	if h.rdb == nil {
		h.dispatch(userID, ev)
		return
	}

	payload, err := json.Marshal(envelope{UserID: userID.String(), Event: ev})
	if err != nil {
		h.log.Error("Failed to marshal feed event", zap.Error(err))
		return
	}

	if err := h.rdb.Publish(context.Background(), redisChannel, payload).Err(); err != nil {
		h.log.Error("Failed to publish feed event to redis",
			zap.Error(err),
			zap.String("table", ev.Table),
		)
		// degrade to local delivery so this instance's subscribers
		// still see the change
		h.dispatch(userID, ev)
	}
}

func (h *Hub) listen(ctx context.Context) {
	sub := h.rdb.Subscribe(ctx, redisChannel)
	defer sub.Close()

	for msg := range sub.Channel() {
		var env envelope
		if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
			h.log.Warn("Dropping malformed feed payload", zap.Error(err))
			continue
		}

		userID, err := uuid.Parse(env.UserID)
		if err != nil {
			h.log.Warn("Dropping feed payload with bad user id", zap.Error(err))
			continue
		}

		h.dispatch(userID, env.Event)
	}
}

func (h *Hub) dispatch(userID uuid.UUID, ev feed.Event) {
	key := subKey{table: ev.Table, userID: userID}

	h.mu.RLock()
	var slow []*Subscriber
	for sub := range h.subs[key] {
		select {
		case sub.events <- ev:
		default:
			slow = append(slow, sub)
		}
	}
	h.mu.RUnlock()

	for _, sub := range slow {
		h.log.Warn("Dropping slow feed subscriber",
			zap.String("table", ev.Table),
			zap.String("user_id", userID.String()),
		)
		sub.Close()
	}
}

// Subscribe registers a subscriber for the given tables, all scoped to
// one owner.
func (h *Hub) Subscribe(userID uuid.UUID, tables []string) *Subscriber {
	sub := &Subscriber{
		hub:    h,
		userID: userID,
		tables: tables,
		events: make(chan feed.Event, 64),
	}

	h.mu.Lock()
	for _, table := range tables {
		key := subKey{table: table, userID: userID}
		if h.subs[key] == nil {
			h.subs[key] = make(map[*Subscriber]struct{})
		}
		h.subs[key][sub] = struct{}{}
	}
	h.mu.Unlock()

	return sub
}

func (h *Hub) remove(sub *Subscriber) {
	h.mu.Lock()
	for _, table := range sub.tables {
		key := subKey{table: table, userID: sub.userID}
		delete(h.subs[key], sub)
		if len(h.subs[key]) == 0 {
			delete(h.subs, key)
		}
	}
	h.mu.Unlock()
}

// Shutdown stops the redis listener, if any
func (h *Hub) Shutdown() {
	if h.cancel != nil {
		h.cancel()
	}
}
