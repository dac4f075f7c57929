package adaptor

import (
	"net/http"
	"strings"
	"time"

	"movie-logbook/internal/realtime"
	"movie-logbook/pkg/feed"
	"movie-logbook/pkg/utils"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	feedWriteWait = 10 * time.Second
	feedPingEvery = 30 * time.Second
)

type FeedHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewFeedHandler(hub *realtime.Hub, log *zap.Logger) *FeedHandler {
	return &FeedHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log: log.With(zap.String("handler", "feed")),
	}
}

// Stream handles GET /api/feed (protected). Upgrades to a websocket and
// pushes the caller's change events for the requested tables until the
// client disconnects. Tables come comma-separated in ?tables=; omitting
// the parameter subscribes to all of them.
func (h *FeedHandler) Stream(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	tables, err := parseTables(r.URL.Query().Get("tables"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}

	sub := h.hub.Subscribe(userID, tables)

	h.log.Info("Feed subscriber connected",
		zap.String("user_id", userID.String()),
		zap.Strings("tables", tables),
	)

	// reader exists only to detect the client going away
	go func() {
		defer sub.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(feedPingEvery)
	defer func() {
		ticker.Stop()
		sub.Close()
		conn.Close()
		h.log.Info("Feed subscriber disconnected",
			zap.String("user_id", userID.String()),
		)
	}()

	for {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(feedWriteWait))
				return
			}
			conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if err := conn.WriteJSON(ev); err != nil {
				h.log.Warn("Failed to write feed event", zap.Error(err))
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func parseTables(raw string) ([]string, error) {
	if raw == "" {
		return []string{feed.TableFilmes, feed.TableResenhas, feed.TableCenas}, nil
	}

	var tables []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !feed.ValidTable(name) {
			return nil, &unknownTableError{name: name}
		}
		tables = append(tables, name)
	}

	if len(tables) == 0 {
		return []string{feed.TableFilmes, feed.TableResenhas, feed.TableCenas}, nil
	}
	return tables, nil
}

type unknownTableError struct {
	name string
}

func (e *unknownTableError) Error() string {
	return "invalid table: " + e.name
}
