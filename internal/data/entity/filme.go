package entity

import (
	"github.com/google/uuid"
)

type Filme struct {
	BaseSimple
	UserID         uuid.UUID `db:"user_id"`
	Titulo         string    `db:"titulo"`
	Genero         string    `db:"genero"`
	Sinopse        string    `db:"sinopse"`
	DataLancamento string    `db:"datalancamento"` // DD/MM/YYYY
	URLFoto        string    `db:"urlfoto"`
}

// Generos is the fixed list offered by the movie form
var Generos = []string{
	"Ação",
	"Aventura",
	"Animação",
	"Comédia",
	"Crime",
	"Documentário",
	"Drama",
	"Fantasia",
	"Ficção Científica",
	"Guerra",
	"História",
	"Horror",
	"Mistério",
	"Musical",
	"Romance",
	"Suspense",
	"Terror",
	"Western",
}

func ValidGenero(genero string) bool {
	for _, g := range Generos {
		if g == genero {
			return true
		}
	}
	return false
}
