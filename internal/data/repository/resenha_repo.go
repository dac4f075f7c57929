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

type ResenhaRepository interface {
	Create(ctx context.Context, resenha *entity.Resenha) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Resenha, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Resenha, error)
	Update(ctx context.Context, resenha *entity.Resenha) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type resenhaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResenhaRepository(db database.PgxIface, log *zap.Logger) ResenhaRepository {
	return &resenhaRepository{
		db:  db,
		log: log.With(zap.String("repository", "resenha")),
	}
}

func (r *resenhaRepository) Create(ctx context.Context, resenha *entity.Resenha) error {
	query := `
		INSERT INTO resenhas (id, user_id, id_filme, titulo, texto, estrelas, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		resenha.ID,
		resenha.UserID,
		resenha.IDFilme,
		resenha.Titulo,
		resenha.Texto,
		resenha.Estrelas,
		resenha.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create resenha",
			zap.Error(err),
			zap.String("id_filme", resenha.IDFilme.String()),
		)
		return fmt.Errorf("failed to create resenha: %w", err)
	}

	return nil
}

func (r *resenhaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resenha, error) {
	query := `
		SELECT id, user_id, id_filme, titulo, texto, estrelas, created_at
		FROM resenhas
		WHERE id = $1
	`

	var resenha entity.Resenha
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resenha.ID,
		&resenha.UserID,
		&resenha.IDFilme,
		&resenha.Titulo,
		&resenha.Texto,
		&resenha.Estrelas,
		&resenha.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find resenha by ID",
			zap.Error(err),
			zap.String("resenha_id", id.String()),
		)
		return nil, fmt.Errorf("find resenha by ID %s: %w", id.String(), err)
	}

	return &resenha, nil
}

func (r *resenhaRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Resenha, error) {
	query := `
		SELECT id, user_id, id_filme, titulo, texto, estrelas, created_at
		FROM resenhas
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find resenhas by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find resenhas by user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var resenhas []*entity.Resenha
	for rows.Next() {
		var resenha entity.Resenha
		err := rows.Scan(
			&resenha.ID,
			&resenha.UserID,
			&resenha.IDFilme,
			&resenha.Titulo,
			&resenha.Texto,
			&resenha.Estrelas,
			&resenha.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan resenha row", zap.Error(err))
			return nil, fmt.Errorf("scan resenha row: %w", err)
		}
		resenhas = append(resenhas, &resenha)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate resenha rows: %w", err)
	}

	return resenhas, nil
}

func (r *resenhaRepository) Update(ctx context.Context, resenha *entity.Resenha) error {
	query := `
		UPDATE resenhas
		SET id_filme = $3, titulo = $4, texto = $5, estrelas = $6
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.Exec(ctx, query,
		resenha.ID,
		resenha.UserID,
		resenha.IDFilme,
		resenha.Titulo,
		resenha.Texto,
		resenha.Estrelas,
	)

	if err != nil {
		r.log.Error("Failed to update resenha",
			zap.Error(err),
			zap.String("resenha_id", resenha.ID.String()),
		)
		return fmt.Errorf("update resenha %s: %w", resenha.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("resenha not found")
	}

	return nil
}

func (r *resenhaRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM resenhas WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("Failed to delete resenha",
			zap.Error(err),
			zap.String("resenha_id", id.String()),
		)
		return fmt.Errorf("delete resenha %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("resenha not found")
	}

	r.log.Info("Resenha deleted", zap.String("resenha_id", id.String()))
	return nil
}
