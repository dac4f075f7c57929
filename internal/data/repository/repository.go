package repository

import (
	"movie-logbook/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Perfil  PerfilRepository
	Session SessionRepository
	Filme   FilmeRepository
	Resenha ResenhaRepository
	Cena    CenaRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Perfil:  NewPerfilRepository(db, log),
		Session: NewSessionRepository(db, log),
		Filme:   NewFilmeRepository(db, log),
		Resenha: NewResenhaRepository(db, log),
		Cena:    NewCenaRepository(db, log),
	}
}
