package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-logbook/internal/usecase"
	"movie-logbook/pkg/utils"

	"go.uber.org/zap"
)

type PerfilHandler struct {
	service usecase.PerfilService
	log     *zap.Logger
}

func NewPerfilHandler(service usecase.PerfilService, log *zap.Logger) *PerfilHandler {
	return &PerfilHandler{
		service: service,
		log:     log.With(zap.String("handler", "perfil")),
	}
}

// Get handles GET /api/perfil (protected)
func (h *PerfilHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	perfil, err := h.service.Get(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get perfil")
		return
	}

	utils.ResponseSuccess(w, "success", perfil)
}

// Update handles PUT /api/perfil (protected)
func (h *PerfilHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req struct {
		Nome     string `json:"nome"`
		DataNasc string `json:"datanasc"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	perfil, err := h.service.Update(r.Context(), userID, req.Nome, req.DataNasc)
	if err != nil {
		handleServiceError(w, h.log, err, "update perfil")
		return
	}

	utils.ResponseSuccess(w, "success", perfil)
}
