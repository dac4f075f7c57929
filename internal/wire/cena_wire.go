package wire

import (
	"movie-logbook/internal/adaptor"
	"movie-logbook/internal/data/repository"
	"movie-logbook/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCena(
	r chi.Router,
	cenaHandler *adaptor.CenaHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/cenas", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/", cenaHandler.List)          // GET /api/cenas
		r.Post("/", cenaHandler.Create)       // POST /api/cenas
		r.Put("/{id}", cenaHandler.Update)    // PUT /api/cenas/{id}
		r.Delete("/{id}", cenaHandler.Delete) // DELETE /api/cenas/{id}
	})
}
