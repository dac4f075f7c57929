package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-logbook/internal/dto/request"
	"movie-logbook/internal/usecase"
	"movie-logbook/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FilmeHandler struct {
	service usecase.FilmeService
	log     *zap.Logger
}

func NewFilmeHandler(service usecase.FilmeService, log *zap.Logger) *FilmeHandler {
	return &FilmeHandler{
		service: service,
		log:     log.With(zap.String("handler", "filme")),
	}
}

// List handles GET /api/filmes (protected, owner-scoped)
func (h *FilmeHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	filmes, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list filmes")
		return
	}

	utils.ResponseSuccess(w, "success", filmes)
}

// Create handles POST /api/filmes (protected)
func (h *FilmeHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.FilmeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	filme, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create filme")
		return
	}

	utils.ResponseCreated(w, "success", filme)
}

// Update handles PUT /api/filmes/{id} (protected)
func (h *FilmeHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	filmeID := chi.URLParam(r, "id")
	if filmeID == "" {
		utils.ResponseBadRequest(w, "Filme ID is required", nil)
		return
	}

	var req request.FilmeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	filme, err := h.service.Update(r.Context(), userID, filmeID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update filme")
		return
	}

	utils.ResponseSuccess(w, "success", filme)
}

// Delete handles DELETE /api/filmes/{id} (protected)
func (h *FilmeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	filmeID := chi.URLParam(r, "id")
	if filmeID == "" {
		utils.ResponseBadRequest(w, "Filme ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), userID, filmeID); err != nil {
		handleServiceError(w, h.log, err, "delete filme")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
