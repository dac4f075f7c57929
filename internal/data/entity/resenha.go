package entity

import (
	"github.com/google/uuid"
)

type Resenha struct {
	BaseSimple
	UserID   uuid.UUID `db:"user_id"`
	IDFilme  uuid.UUID `db:"id_filme"`
	Titulo   string    `db:"titulo"`
	Texto    string    `db:"texto"`
	Estrelas int       `db:"estrelas"` // 0-5
}
