package entity

import (
	"github.com/google/uuid"
)

type Cena struct {
	BaseSimple
	UserID     uuid.UUID `db:"user_id"`
	IDFilme    uuid.UUID `db:"id_filme"`
	Titulo     string    `db:"titulo"`
	Descricao  string    `db:"descricao"`
	Observacao string    `db:"observacao"`
	Estrelas   int       `db:"estrelas"` // 0-5
	URLFoto    string    `db:"urlfoto"`
}
