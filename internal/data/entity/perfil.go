package entity

import (
	"github.com/google/uuid"
)

// Perfil is the user profile row in the usuarios table
type Perfil struct {
	BaseSimple
	UserID   uuid.UUID `db:"user_id"`
	Nome     string    `db:"nome"`
	DataNasc string    `db:"datanasc"` // DD/MM/YYYY
}
