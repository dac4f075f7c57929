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

type CenaHandler struct {
	service usecase.CenaService
	log     *zap.Logger
}

func NewCenaHandler(service usecase.CenaService, log *zap.Logger) *CenaHandler {
	return &CenaHandler{
		service: service,
		log:     log.With(zap.String("handler", "cena")),
	}
}

// List handles GET /api/cenas (protected, owner-scoped)
func (h *CenaHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	cenas, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list cenas")
		return
	}

	utils.ResponseSuccess(w, "success", cenas)
}

// Create handles POST /api/cenas (protected)
func (h *CenaHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CenaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cena, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create cena")
		return
	}

	utils.ResponseCreated(w, "success", cena)
}

// Update handles PUT /api/cenas/{id} (protected)
func (h *CenaHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	cenaID := chi.URLParam(r, "id")
	if cenaID == "" {
		utils.ResponseBadRequest(w, "Cena ID is required", nil)
		return
	}

	var req request.CenaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cena, err := h.service.Update(r.Context(), userID, cenaID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update cena")
		return
	}

	utils.ResponseSuccess(w, "success", cena)
}

// Delete handles DELETE /api/cenas/{id} (protected)
func (h *CenaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	cenaID := chi.URLParam(r, "id")
	if cenaID == "" {
		utils.ResponseBadRequest(w, "Cena ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), userID, cenaID); err != nil {
		handleServiceError(w, h.log, err, "delete cena")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
