package response

import (
	"movie-logbook/internal/data/entity"
)

// FilmeResponse is the client-facing row shape. Field names follow the
// in-memory convention of the mobile models, not the column names.
type FilmeResponse struct {
	ID             string `json:"id"`
	Titulo         string `json:"titulo"`
	Genero         string `json:"genero"`
	Sinopse        string `json:"sinopse"`
	DataLancamento string `json:"datalancamento"`
	URLFoto        string `json:"urlfoto"`
}

func FilmeToResponse(filme *entity.Filme) FilmeResponse {
	return FilmeResponse{
		ID:             filme.ID.String(),
		Titulo:         filme.Titulo,
		Genero:         filme.Genero,
		Sinopse:        filme.Sinopse,
		DataLancamento: filme.DataLancamento,
		URLFoto:        filme.URLFoto,
	}
}
