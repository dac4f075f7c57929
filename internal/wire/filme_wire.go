package wire

import (
	"movie-logbook/internal/adaptor"
	"movie-logbook/internal/data/repository"
	"movie-logbook/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFilme(
	r chi.Router,
	filmeHandler *adaptor.FilmeHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// All movie routes are owner-scoped, nothing is public
	r.Route("/api/filmes", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/", filmeHandler.List)          // GET /api/filmes
		r.Post("/", filmeHandler.Create)       // POST /api/filmes
		r.Put("/{id}", filmeHandler.Update)    // PUT /api/filmes/{id}
		r.Delete("/{id}", filmeHandler.Delete) // DELETE /api/filmes/{id}
	})
}
