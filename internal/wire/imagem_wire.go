package wire

import (
	"movie-logbook/internal/adaptor"
	"movie-logbook/internal/data/repository"
	"movie-logbook/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireImagem(
	r chi.Router,
	imagemHandler *adaptor.ImagemHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/imagens", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/", imagemHandler.Upload) // POST /api/imagens
	})
}
