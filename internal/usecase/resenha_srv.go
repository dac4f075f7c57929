package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"movie-logbook/internal/data/entity"
	"movie-logbook/internal/data/repository"
	"movie-logbook/internal/dto/request"
	"movie-logbook/internal/dto/response"
	"movie-logbook/internal/realtime"
	"movie-logbook/pkg/feed"
	"movie-logbook/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ResenhaService interface {
	List(ctx context.Context, userID uuid.UUID) ([]response.ResenhaResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *request.ResenhaRequest) (*response.ResenhaResponse, error)
	Update(ctx context.Context, userID uuid.UUID, resenhaID string, req *request.ResenhaRequest) (*response.ResenhaResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, resenhaID string) error
}

type resenhaService struct {
	repo *repository.Repository
	pub  realtime.Publisher
	log  *zap.Logger
}

func NewResenhaService(
	repo *repository.Repository,
	pub realtime.Publisher,
	log *zap.Logger,
) ResenhaService {
	return &resenhaService{
		repo: repo,
		pub:  pub,
		log:  log.With(zap.String("service", "resenha")),
	}
}

func (s *resenhaService) List(ctx context.Context, userID uuid.UUID) ([]response.ResenhaResponse, error) {
	resenhas, err := s.repo.Resenha.FindAllByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list resenhas",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list resenhas: %w", err)
	}

	resenhaResponses := make([]response.ResenhaResponse, len(resenhas))
	for i, resenha := range resenhas {
		resenhaResponses[i] = response.ResenhaToResponse(resenha)
	}

	return resenhaResponses, nil
}

// ownFilme verifies the referenced filme exists and belongs to userID.
// Reviews and scenes may only point at the owner's own movies.
func (s *resenhaService) ownFilme(ctx context.Context, userID uuid.UUID, idFilme string) (uuid.UUID, error) {
	filmeID, err := uuid.Parse(idFilme)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid filme id: %w", err)
	}

	filme, err := s.repo.Filme.FindByID(ctx, filmeID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load filme: %w", err)
	}
	if filme == nil || filme.UserID != userID {
		return uuid.Nil, fmt.Errorf("filme not found")
	}

	return filmeID, nil
}

func (s *resenhaService) Create(ctx context.Context, userID uuid.UUID, req *request.ResenhaRequest) (*response.ResenhaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create resenha validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	filmeID, err := s.ownFilme(ctx, userID, req.IDFilme)
	if err != nil {
		return nil, err
	}

	resenha := &entity.Resenha{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
		IDFilme:    filmeID,
		Titulo:     req.Titulo,
		Texto:      req.Texto,
		Estrelas:   clampEstrelas(req.Estrelas),
	}

	if err := s.repo.Resenha.Create(ctx, resenha); err != nil {
		s.log.Error("Failed to create resenha", zap.Error(err))
		return nil, fmt.Errorf("create resenha: %w", err)
	}

	resp := response.ResenhaToResponse(resenha)
	s.publish(userID, feed.EventInsert, &resp, "")

	s.log.Info("Resenha created",
		zap.String("resenha_id", resenha.ID.String()),
		zap.String("user_id", userID.String()),
	)

	return &resp, nil
}

func (s *resenhaService) Update(ctx context.Context, userID uuid.UUID, resenhaID string, req *request.ResenhaRequest) (*response.ResenhaResponse, error) {
	id, err := uuid.Parse(resenhaID)
	if err != nil {
		return nil, fmt.Errorf("invalid resenha id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update resenha validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	filmeID, err := s.ownFilme(ctx, userID, req.IDFilme)
	if err != nil {
		return nil, err
	}

	resenha, err := s.repo.Resenha.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load resenha: %w", err)
	}
	if resenha == nil || resenha.UserID != userID {
		return nil, fmt.Errorf("resenha not found")
	}

	resenha.IDFilme = filmeID
	resenha.Titulo = req.Titulo
	resenha.Texto = req.Texto
	resenha.Estrelas = clampEstrelas(req.Estrelas)

	if err := s.repo.Resenha.Update(ctx, resenha); err != nil {
		s.log.Error("Failed to update resenha",
			zap.Error(err),
			zap.String("resenha_id", resenhaID),
		)
		return nil, fmt.Errorf("update resenha: %w", err)
	}

	resp := response.ResenhaToResponse(resenha)
	s.publish(userID, feed.EventUpdate, &resp, "")

	return &resp, nil
}

func (s *resenhaService) Delete(ctx context.Context, userID uuid.UUID, resenhaID string) error {
	id, err := uuid.Parse(resenhaID)
	if err != nil {
		return fmt.Errorf("invalid resenha id: %w", err)
	}

	if err := s.repo.Resenha.Delete(ctx, id, userID); err != nil {
		s.log.Error("Failed to delete resenha",
			zap.Error(err),
			zap.String("resenha_id", resenhaID),
		)
		return fmt.Errorf("delete resenha: %w", err)
	}

	s.publish(userID, feed.EventDelete, nil, resenhaID)

	return nil
}

func (s *resenhaService) publish(userID uuid.UUID, eventType feed.EventType, resp *response.ResenhaResponse, oldID string) {
	ev := feed.Event{Table: feed.TableResenhas, Type: eventType, OldID: oldID}

	if resp != nil {
		record, err := json.Marshal(resp)
		if err != nil {
			s.log.Error("Failed to marshal resenha event", zap.Error(err))
			return
		}
		ev.Record = record
	}

	s.pub.Publish(userID, ev)
}
