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

type ResenhaHandler struct {
	service usecase.ResenhaService
	log     *zap.Logger
}

func NewResenhaHandler(service usecase.ResenhaService, log *zap.Logger) *ResenhaHandler {
	return &ResenhaHandler{
		service: service,
		log:     log.With(zap.String("handler", "resenha")),
	}
}

// List handles GET /api/resenhas (protected, owner-scoped)
func (h *ResenhaHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resenhas, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list resenhas")
		return
	}

	utils.ResponseSuccess(w, "success", resenhas)
}

// Create handles POST /api/resenhas (protected)
func (h *ResenhaHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ResenhaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resenha, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create resenha")
		return
	}

	utils.ResponseCreated(w, "success", resenha)
}

// Update handles PUT /api/resenhas/{id} (protected)
func (h *ResenhaHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resenhaID := chi.URLParam(r, "id")
	if resenhaID == "" {
		utils.ResponseBadRequest(w, "Resenha ID is required", nil)
		return
	}

	var req request.ResenhaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resenha, err := h.service.Update(r.Context(), userID, resenhaID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update resenha")
		return
	}

	utils.ResponseSuccess(w, "success", resenha)
}

// Delete handles DELETE /api/resenhas/{id} (protected)
func (h *ResenhaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resenhaID := chi.URLParam(r, "id")
	if resenhaID == "" {
		utils.ResponseBadRequest(w, "Resenha ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), userID, resenhaID); err != nil {
		handleServiceError(w, h.log, err, "delete resenha")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
