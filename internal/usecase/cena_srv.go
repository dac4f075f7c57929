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

type CenaService interface {
	List(ctx context.Context, userID uuid.UUID) ([]response.CenaResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *request.CenaRequest) (*response.CenaResponse, error)
	Update(ctx context.Context, userID uuid.UUID, cenaID string, req *request.CenaRequest) (*response.CenaResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, cenaID string) error
}

type cenaService struct {
	repo *repository.Repository
	pub  realtime.Publisher
	log  *zap.Logger
}

func NewCenaService(
	repo *repository.Repository,
	pub realtime.Publisher,
	log *zap.Logger,
) CenaService {
	return &cenaService{
		repo: repo,
		pub:  pub,
		log:  log.With(zap.String("service", "cena")),
	}
}

func (s *cenaService) List(ctx context.Context, userID uuid.UUID) ([]response.CenaResponse, error) {
	cenas, err := s.repo.Cena.FindAllByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list cenas",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list cenas: %w", err)
	}

	cenaResponses := make([]response.CenaResponse, len(cenas))
	for i, cena := range cenas {
		cenaResponses[i] = response.CenaToResponse(cena)
	}

	return cenaResponses, nil
}

func (s *cenaService) ownFilme(ctx context.Context, userID uuid.UUID, idFilme string) (uuid.UUID, error) {
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

func (s *cenaService) Create(ctx context.Context, userID uuid.UUID, req *request.CenaRequest) (*response.CenaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create cena validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	filmeID, err := s.ownFilme(ctx, userID, req.IDFilme)
	if err != nil {
		return nil, err
	}

	cena := &entity.Cena{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
		IDFilme:    filmeID,
		Titulo:     req.Titulo,
		Descricao:  req.Descricao,
		Observacao: req.Observacao,
		Estrelas:   clampEstrelas(req.Estrelas),
		URLFoto:    req.URLFoto,
	}

	if err := s.repo.Cena.Create(ctx, cena); err != nil {
		s.log.Error("Failed to create cena", zap.Error(err))
		return nil, fmt.Errorf("create cena: %w", err)
	}

	resp := response.CenaToResponse(cena)
	s.publish(userID, feed.EventInsert, &resp, "")

	s.log.Info("Cena created",
		zap.String("cena_id", cena.ID.String()),
		zap.String("user_id", userID.String()),
	)

	return &resp, nil
}

func (s *cenaService) Update(ctx context.Context, userID uuid.UUID, cenaID string, req *request.CenaRequest) (*response.CenaResponse, error) {
	id, err := uuid.Parse(cenaID)
	if err != nil {
		return nil, fmt.Errorf("invalid cena id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update cena validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	filmeID, err := s.ownFilme(ctx, userID, req.IDFilme)
	if err != nil {
		return nil, err
	}

	cena, err := s.repo.Cena.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load cena: %w", err)
	}
	if cena == nil || cena.UserID != userID {
		return nil, fmt.Errorf("cena not found")
	}

	cena.IDFilme = filmeID
	cena.Titulo = req.Titulo
	cena.Descricao = req.Descricao
	cena.Observacao = req.Observacao
	cena.Estrelas = clampEstrelas(req.Estrelas)
	cena.URLFoto = req.URLFoto

	if err := s.repo.Cena.Update(ctx, cena); err != nil {
		s.log.Error("Failed to update cena",
			zap.Error(err),
			zap.String("cena_id", cenaID),
		)
		return nil, fmt.Errorf("update cena: %w", err)
	}

	resp := response.CenaToResponse(cena)
	s.publish(userID, feed.EventUpdate, &resp, "")

	return &resp, nil
}

func (s *cenaService) Delete(ctx context.Context, userID uuid.UUID, cenaID string) error {
	id, err := uuid.Parse(cenaID)
	if err != nil {
		return fmt.Errorf("invalid cena id: %w", err)
	}

	if err := s.repo.Cena.Delete(ctx, id, userID); err != nil {
		s.log.Error("Failed to delete cena",
			zap.Error(err),
			zap.String("cena_id", cenaID),
		)
		return fmt.Errorf("delete cena: %w", err)
	}

	s.publish(userID, feed.EventDelete, nil, cenaID)

	return nil
}

func (s *cenaService) publish(userID uuid.UUID, eventType feed.EventType, resp *response.CenaResponse, oldID string) {
	ev := feed.Event{Table: feed.TableCenas, Type: eventType, OldID: oldID}

	if resp != nil {
		record, err := json.Marshal(resp)
		if err != nil {
			s.log.Error("Failed to marshal cena event", zap.Error(err))
			return
		}
		ev.Record = record
	}

	s.pub.Publish(userID, ev)
}
