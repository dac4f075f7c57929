package response

import (
	"movie-logbook/internal/data/entity"
)

// ResenhaResponse translates the id_filme column to the in-memory
// idFilme name. The mapping must stay exact: existing clients key on it.
type ResenhaResponse struct {
	ID       string `json:"id"`
	IDFilme  string `json:"idFilme"`
	Titulo   string `json:"titulo"`
	Texto    string `json:"texto"`
	Estrelas int    `json:"estrelas"`
}

func ResenhaToResponse(resenha *entity.Resenha) ResenhaResponse {
	return ResenhaResponse{
		ID:       resenha.ID.String(),
		IDFilme:  resenha.IDFilme.String(),
		Titulo:   resenha.Titulo,
		Texto:    resenha.Texto,
		Estrelas: resenha.Estrelas,
	}
}
