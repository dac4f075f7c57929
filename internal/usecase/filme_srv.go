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

type FilmeService interface {
	List(ctx context.Context, userID uuid.UUID) ([]response.FilmeResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *request.FilmeRequest) (*response.FilmeResponse, error)
	Update(ctx context.Context, userID uuid.UUID, filmeID string, req *request.FilmeRequest) (*response.FilmeResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, filmeID string) error
}

type filmeService struct {
	repo *repository.Repository
	pub  realtime.Publisher
	log  *zap.Logger
}

func NewFilmeService(
	repo *repository.Repository,
	pub realtime.Publisher,
	log *zap.Logger,
) FilmeService {
	return &filmeService{
		repo: repo,
		pub:  pub,
		log:  log.With(zap.String("service", "filme")),
	}
}

func (s *filmeService) List(ctx context.Context, userID uuid.UUID) ([]response.FilmeResponse, error) {
	filmes, err := s.repo.Filme.FindAllByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list filmes",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list filmes: %w", err)
	}

	filmeResponses := make([]response.FilmeResponse, len(filmes))
	for i, filme := range filmes {
		filmeResponses[i] = response.FilmeToResponse(filme)
	}

	return filmeResponses, nil
}

func (s *filmeService) Create(ctx context.Context, userID uuid.UUID, req *request.FilmeRequest) (*response.FilmeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create filme validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !entity.ValidGenero(req.Genero) {
		return nil, fmt.Errorf("invalid genero: %s", req.Genero)
	}

	filme := &entity.Filme{
		BaseSimple:     entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:         userID,
		Titulo:         req.Titulo,
		Genero:         req.Genero,
		Sinopse:        req.Sinopse,
		DataLancamento: req.DataLancamento,
		URLFoto:        req.URLFoto,
	}

	if err := s.repo.Filme.Create(ctx, filme); err != nil {
		s.log.Error("Failed to create filme", zap.Error(err))
		return nil, fmt.Errorf("create filme: %w", err)
	}

	resp := response.FilmeToResponse(filme)
	s.publish(userID, feed.EventInsert, &resp, "")

	s.log.Info("Filme created",
		zap.String("filme_id", filme.ID.String()),
		zap.String("user_id", userID.String()),
	)

	return &resp, nil
}

func (s *filmeService) Update(ctx context.Context, userID uuid.UUID, filmeID string, req *request.FilmeRequest) (*response.FilmeResponse, error) {
	id, err := uuid.Parse(filmeID)
	if err != nil {
		return nil, fmt.Errorf("invalid filme id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update filme validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !entity.ValidGenero(req.Genero) {
		return nil, fmt.Errorf("invalid genero: %s", req.Genero)
	}

	filme, err := s.repo.Filme.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load filme: %w", err)
	}
	if filme == nil || filme.UserID != userID {
		return nil, fmt.Errorf("filme not found")
	}

	filme.Titulo = req.Titulo
	filme.Genero = req.Genero
	filme.Sinopse = req.Sinopse
	filme.DataLancamento = req.DataLancamento
	filme.URLFoto = req.URLFoto

	if err := s.repo.Filme.Update(ctx, filme); err != nil {
		s.log.Error("Failed to update filme",
			zap.Error(err),
			zap.String("filme_id", filmeID),
		)
		return nil, fmt.Errorf("update filme: %w", err)
	}

	resp := response.FilmeToResponse(filme)
	s.publish(userID, feed.EventUpdate, &resp, "")

	return &resp, nil
}

func (s *filmeService) Delete(ctx context.Context, userID uuid.UUID, filmeID string) error {
	id, err := uuid.Parse(filmeID)
	if err != nil {
		return fmt.Errorf("invalid filme id: %w", err)
	}

	if err := s.repo.Filme.Delete(ctx, id, userID); err != nil {
		s.log.Error("Failed to delete filme",
			zap.Error(err),
			zap.String("filme_id", filmeID),
		)
		return fmt.Errorf("delete filme: %w", err)
	}

	s.publish(userID, feed.EventDelete, nil, filmeID)

	return nil
}

func (s *filmeService) publish(userID uuid.UUID, eventType feed.EventType, resp *response.FilmeResponse, oldID string) {
	ev := feed.Event{Table: feed.TableFilmes, Type: eventType, OldID: oldID}

	if resp != nil {
		record, err := json.Marshal(resp)
		if err != nil {
			s.log.Error("Failed to marshal filme event", zap.Error(err))
			return
		}
		ev.Record = record
	}

	s.pub.Publish(userID, ev)
}
