package adaptor

import (
	"net/http"
	"strings"

	"movie-logbook/internal/realtime"
	"movie-logbook/internal/usecase"
	"movie-logbook/pkg/storage"
	"movie-logbook/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Perfil  *PerfilHandler
	Filme   *FilmeHandler
	Resenha *ResenhaHandler
	Cena    *CenaHandler
	Imagem  *ImagemHandler
	Feed    *FeedHandler
}

func NewHandler(service *usecase.Service, hub *realtime.Hub, bucket storage.Bucket, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Perfil:  NewPerfilHandler(service.Perfil, log),
		Filme:   NewFilmeHandler(service.Filme, log),
		Resenha: NewResenhaHandler(service.Resenha, log),
		Cena:    NewCenaHandler(service.Cena, log),
		Imagem:  NewImagemHandler(bucket, log),
		Feed:    NewFeedHandler(hub, log),
	}
}

// handleServiceError maps service error messages onto HTTP status codes
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already registered"):
		log.Warn(operation+" failed - already registered",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "credentials"), strings.Contains(errMsg, "deactivated"):
		log.Warn(operation+" unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
