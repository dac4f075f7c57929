// internal/wire/wire.go
package wire

import (
	"net/http"

	"movie-logbook/internal/adaptor"
	"movie-logbook/internal/data/repository"
	"movie-logbook/internal/realtime"
	"movie-logbook/internal/usecase"
	"movie-logbook/pkg/middleware"
	"movie-logbook/pkg/storage"
	"movie-logbook/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	hub *realtime.Hub,
	bucket *storage.DiskBucket,
	logger *zap.Logger,
) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, config, hub, logger)
	handler := adaptor.NewHandler(service, hub, bucket, logger)

	// Setup router
	router := setupRouter(handler, repo, bucket, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	bucket *storage.DiskBucket,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, logger)
	wirePerfil(r, handler.Perfil, repo, logger)
	wireFilme(r, handler.Filme, repo, logger)
	wireResenha(r, handler.Resenha, repo, logger)
	wireCena(r, handler.Cena, repo, logger)
	wireImagem(r, handler.Imagem, repo, logger)
	wireFeed(r, handler.Feed, repo, logger)

	// Serve stored images read-only
	fs := http.StripPrefix("/storage/imagens/", http.FileServer(http.Dir(bucket.Dir())))
	r.Get("/storage/imagens/*", fs.ServeHTTP)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
