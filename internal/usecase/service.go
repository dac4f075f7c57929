package usecase

import (
	"movie-logbook/internal/data/repository"
	"movie-logbook/internal/realtime"
	"movie-logbook/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Perfil  PerfilService
	Filme   FilmeService
	Resenha ResenhaService
	Cena    CenaService
}

func NewService(repo *repository.Repository, config *utils.Config, pub realtime.Publisher, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Perfil:  NewPerfilService(repo, log),
		Filme:   NewFilmeService(repo, pub, log),
		Resenha: NewResenhaService(repo, pub, log),
		Cena:    NewCenaService(repo, pub, log),
	}
}

// clampEstrelas keeps star ratings inside [0,5]
func clampEstrelas(estrelas int) int {
	if estrelas < 0 {
		return 0
	}
	if estrelas > 5 {
		return 5
	}
	return estrelas
}
