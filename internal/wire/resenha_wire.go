package wire

import (
	"movie-logbook/internal/adaptor"
	"movie-logbook/internal/data/repository"
	"movie-logbook/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireResenha(
	r chi.Router,
	resenhaHandler *adaptor.ResenhaHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/resenhas", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/", resenhaHandler.List)          // GET /api/resenhas
		r.Post("/", resenhaHandler.Create)       // POST /api/resenhas
		r.Put("/{id}", resenhaHandler.Update)    // PUT /api/resenhas/{id}
		r.Delete("/{id}", resenhaHandler.Delete) // DELETE /api/resenhas/{id}
	})
}
