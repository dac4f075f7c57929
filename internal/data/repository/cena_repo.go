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

type CenaRepository interface {
	Create(ctx context.Context, cena *entity.Cena) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cena, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Cena, error)
	Update(ctx context.Context, cena *entity.Cena) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type cenaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCenaRepository(db database.PgxIface, log *zap.Logger) CenaRepository {
	return &cenaRepository{
		db:  db,
		log: log.With(zap.String("repository", "cena")),
	}
}

func (r *cenaRepository) Create(ctx context.Context, cena *entity.Cena) error {
	query := `
		INSERT INTO cenas (id, user_id, id_filme, titulo, descricao,
		                   observacao, estrelas, urlfoto, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		cena.ID,
		cena.UserID,
		cena.IDFilme,
		cena.Titulo,
		cena.Descricao,
		cena.Observacao,
		cena.Estrelas,
		cena.URLFoto,
		cena.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create cena",
			zap.Error(err),
			zap.String("id_filme", cena.IDFilme.String()),
		)
		return fmt.Errorf("failed to create cena: %w", err)
	}

	return nil
}

func (r *cenaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cena, error) {
	query := `
		SELECT id, user_id, id_filme, titulo, descricao, observacao, estrelas, urlfoto, created_at
		FROM cenas
		WHERE id = $1
	`

	var cena entity.Cena
	err := r.db.QueryRow(ctx, query, id).Scan(
		&cena.ID,
		&cena.UserID,
		&cena.IDFilme,
		&cena.Titulo,
		&cena.Descricao,
		&cena.Observacao,
		&cena.Estrelas,
		&cena.URLFoto,
		&cena.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cena by ID",
			zap.Error(err),
			zap.String("cena_id", id.String()),
		)
		return nil, fmt.Errorf("find cena by ID %s: %w", id.String(), err)
	}

	return &cena, nil
}

func (r *cenaRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Cena, error) {
	query := `
		SELECT id, user_id, id_filme, titulo, descricao, observacao, estrelas, urlfoto, created_at
		FROM cenas
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find cenas by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find cenas by user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var cenas []*entity.Cena
	for rows.Next() {
		var cena entity.Cena
		err := rows.Scan(
			&cena.ID,
			&cena.UserID,
			&cena.IDFilme,
			&cena.Titulo,
			&cena.Descricao,
			&cena.Observacao,
			&cena.Estrelas,
			&cena.URLFoto,
			&cena.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan cena row", zap.Error(err))
			return nil, fmt.Errorf("scan cena row: %w", err)
		}
		cenas = append(cenas, &cena)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate cena rows: %w", err)
	}

	return cenas, nil
}

func (r *cenaRepository) Update(ctx context.Context, cena *entity.Cena) error {
	query := `
		UPDATE cenas
		SET id_filme = $3, titulo = $4, descricao = $5, observacao = $6,
		    estrelas = $7, urlfoto = $8
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.Exec(ctx, query,
		cena.ID,
		cena.UserID,
		cena.IDFilme,
		cena.Titulo,
		cena.Descricao,
		cena.Observacao,
		cena.Estrelas,
		cena.URLFoto,
	)

	if err != nil {
		r.log.Error("Failed to update cena",
			zap.Error(err),
			zap.String("cena_id", cena.ID.String()),
		)
		return fmt.Errorf("update cena %s: %w", cena.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cena not found")
	}

	return nil
}

func (r *cenaRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM cenas WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("Failed to delete cena",
			zap.Error(err),
			zap.String("cena_id", id.String()),
		)
		return fmt.Errorf("delete cena %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cena not found")
	}

	r.log.Info("Cena deleted", zap.String("cena_id", id.String()))
	return nil
}
