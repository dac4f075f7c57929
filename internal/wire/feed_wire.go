package wire

import (
	"movie-logbook/internal/adaptor"
	"movie-logbook/internal/data/repository"
	"movie-logbook/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFeed(
	r chi.Router,
	feedHandler *adaptor.FeedHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Websocket clients authenticate via the token query parameter,
	// handled by the same session middleware.
	r.Route("/api/feed", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/", feedHandler.Stream) // GET /api/feed?tables=filmes,resenhas
	})
}
