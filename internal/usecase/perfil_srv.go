package usecase

import (
	"context"
	"fmt"

	"movie-logbook/internal/data/repository"
	"movie-logbook/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PerfilService interface {
	Get(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	Update(ctx context.Context, userID uuid.UUID, nome, datanasc string) (*response.UserResponse, error)
}

type perfilService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPerfilService(repo *repository.Repository, log *zap.Logger) PerfilService {
	return &perfilService{
		repo: repo,
		log:  log.With(zap.String("service", "perfil")),
	}
}

func (s *perfilService) Get(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("User not found")
	}

	perfil, err := s.repo.Perfil.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Warn("Failed to load perfil",
			zap.Error(err), zap.String("user_id", userID.String()))
	}

	resp := response.UserToResponse(user, perfil)
	return &resp, nil
}

func (s *perfilService) Update(ctx context.Context, userID uuid.UUID, nome, datanasc string) (*response.UserResponse, error) {
	if nome == "" {
		return nil, fmt.Errorf("validation failed: Nome: This field is required")
	}

	perfil, err := s.repo.Perfil.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load perfil: %w", err)
	}
	if perfil == nil {
		return nil, fmt.Errorf("perfil not found")
	}

	perfil.Nome = nome
	perfil.DataNasc = datanasc

	if err := s.repo.Perfil.Update(ctx, perfil); err != nil {
		s.log.Error("Failed to update perfil",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("update perfil: %w", err)
	}

	return s.Get(ctx, userID)
}
