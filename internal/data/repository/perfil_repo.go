package repository

import (
	"context"
	"fmt"

	"movie-logbook/internal/data/entity"
	"movie-logbook/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PerfilRepository interface {
	Create(ctx context.Context, perfil *entity.Perfil) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Perfil, error)
	Update(ctx context.Context, perfil *entity.Perfil) error
}

type perfilRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPerfilRepository(db database.PgxIface, log *zap.Logger) PerfilRepository {
	return &perfilRepository{
		db:  db,
		log: log.With(zap.String("repository", "perfil")),
	}
}

func (r *perfilRepository) Create(ctx context.Context, perfil *entity.Perfil) error {
	query := `
		INSERT INTO usuarios (id, user_id, nome, datanasc, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		perfil.ID,
		perfil.UserID,
		perfil.Nome,
		perfil.DataNasc,
		perfil.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create perfil",
			zap.Error(err),
			zap.String("user_id", perfil.UserID.String()),
		)
		return fmt.Errorf("failed to create perfil: %w", err)
	}

	return nil
}

func (r *perfilRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Perfil, error) {
	query := `
		SELECT id, user_id, nome, datanasc, created_at
		FROM usuarios
		WHERE user_id = $1
	`

	var perfil entity.Perfil
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&perfil.ID,
		&perfil.UserID,
		&perfil.Nome,
		&perfil.DataNasc,
		&perfil.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find perfil",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find perfil for user %s: %w", userID.String(), err)
	}

	return &perfil, nil
}

func (r *perfilRepository) Update(ctx context.Context, perfil *entity.Perfil) error {
	query := `
		UPDATE usuarios
		SET nome = $2, datanasc = $3
		WHERE user_id = $1
	`

	result, err := r.db.Exec(ctx, query,
		perfil.UserID,
		perfil.Nome,
		perfil.DataNasc,
	)

	if err != nil {
		r.log.Error("Failed to update perfil",
			zap.Error(err),
			zap.String("user_id", perfil.UserID.String()),
		)
		return fmt.Errorf("update perfil: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("perfil not found")
	}

	return nil
}
