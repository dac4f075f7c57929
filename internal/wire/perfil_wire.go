package wire

import (
	"movie-logbook/internal/adaptor"
	"movie-logbook/internal/data/repository"
	"movie-logbook/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePerfil(
	r chi.Router,
	perfilHandler *adaptor.PerfilHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/perfil", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/", perfilHandler.Get)
		r.Put("/", perfilHandler.Update)
	})
}
