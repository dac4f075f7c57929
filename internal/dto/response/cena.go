package response

import (
	"movie-logbook/internal/data/entity"
)

type CenaResponse struct {
	ID         string `json:"id"`
	IDFilme    string `json:"idFilme"`
	Titulo     string `json:"titulo"`
	Descricao  string `json:"descricao"`
	Observacao string `json:"observacao"`
	Estrelas   int    `json:"estrelas"`
	URLFoto    string `json:"urlfoto"`
}

func CenaToResponse(cena *entity.Cena) CenaResponse {
	return CenaResponse{
		ID:         cena.ID.String(),
		IDFilme:    cena.IDFilme.String(),
		Titulo:     cena.Titulo,
		Descricao:  cena.Descricao,
		Observacao: cena.Observacao,
		Estrelas:   cena.Estrelas,
		URLFoto:    cena.URLFoto,
	}
}
