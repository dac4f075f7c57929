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

type FilmeRepository interface {
	Create(ctx context.Context, filme *entity.Filme) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Filme, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Filme, error)
	Update(ctx context.Context, filme *entity.Filme) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type filmeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFilmeRepository(db database.PgxIface, log *zap.Logger) FilmeRepository {
	return &filmeRepository{
		db:  db,
		log: log.With(zap.String("repository", "filme")),
	}
}

func (r *filmeRepository) Create(ctx context.Context, filme *entity.Filme) error {
	query := `
		INSERT INTO filmes (id, user_id, titulo, genero, sinopse,
		                    datalancamento, urlfoto, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		filme.ID,
		filme.UserID,
		filme.Titulo,
		filme.Genero,
		filme.Sinopse,
		filme.DataLancamento,
		filme.URLFoto,
		filme.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create filme",
			zap.Error(err),
			zap.String("titulo", filme.Titulo),
		)
		return fmt.Errorf("failed to create filme: %w", err)
	}

	return nil
}

func (r *filmeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Filme, error) {
	query := `
		SELECT id, user_id, titulo, genero, sinopse, datalancamento, urlfoto, created_at
		FROM filmes
		WHERE id = $1
	`

	var filme entity.Filme
	err := r.db.QueryRow(ctx, query, id).Scan(
		&filme.ID,
		&filme.UserID,
		&filme.Titulo,
		&filme.Genero,
		&filme.Sinopse,
		&filme.DataLancamento,
		&filme.URLFoto,
		&filme.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find filme by ID",
			zap.Error(err),
			zap.String("filme_id", id.String()),
		)
		return nil, fmt.Errorf("find filme by ID %s: %w", id.String(), err)
	}

	return &filme, nil
}

func (r *filmeRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Filme, error) {
	query := `
		SELECT id, user_id, titulo, genero, sinopse, datalancamento, urlfoto, created_at
		FROM filmes
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find filmes by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find filmes by user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var filmes []*entity.Filme
	for rows.Next() {
		var filme entity.Filme
		err := rows.Scan(
			&filme.ID,
			&filme.UserID,
			&filme.Titulo,
			&filme.Genero,
			&filme.Sinopse,
			&filme.DataLancamento,
			&filme.URLFoto,
			&filme.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan filme row", zap.Error(err))
			return nil, fmt.Errorf("scan filme row: %w", err)
		}
		filmes = append(filmes, &filme)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate filme rows: %w", err)
	}

	return filmes, nil
}

func (r *filmeRepository) Update(ctx context.Context, filme *entity.Filme) error {
	query := `
		UPDATE filmes
		SET titulo = $3, genero = $4, sinopse = $5, datalancamento = $6, urlfoto = $7
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.Exec(ctx, query,
		filme.ID,
		filme.UserID,
		filme.Titulo,
		filme.Genero,
		filme.Sinopse,
		filme.DataLancamento,
		filme.URLFoto,
	)

	if err != nil {
		r.log.Error("Failed to update filme",
			zap.Error(err),
			zap.String("filme_id", filme.ID.String()),
		)
		return fmt.Errorf("update filme %s: %w", filme.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("filme not found")
	}

	return nil
}

func (r *filmeRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM filmes WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("Failed to delete filme",
			zap.Error(err),
			zap.String("filme_id", id.String()),
		)
		return fmt.Errorf("delete filme %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("filme not found")
	}

	r.log.Info("Filme deleted", zap.String("filme_id", id.String()))
	return nil
}
