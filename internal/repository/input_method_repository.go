package repository

import (
	"context"
	"errors"

	"github.com/betoquiroga/edmoney-backend/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type InputMethodRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewInputMethodRepository(db *pgxpool.Pool, logger *zap.Logger) *InputMethodRepository {
	return &InputMethodRepository{
		db:     db,
		logger: logger,
	}
}

func (r *InputMethodRepository) Create(ctx context.Context, im *models.InputMethod) error {
	query := squirrel.Insert("input_methods").
		Columns("id", "name", "is_active", "created_at", "updated_at").
		Values(im.ID, im.Name, im.IsActive, im.CreatedAt, im.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *InputMethodRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.InputMethod, error) {
	query := squirrel.Select("id", "name", "is_active", "created_at", "updated_at").
		From("input_methods").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var im models.InputMethod
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&im.ID, &im.Name, &im.IsActive, &im.CreatedAt, &im.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &im, nil
}

func (r *InputMethodRepository) List(ctx context.Context) ([]*models.InputMethod, error) {
	query := squirrel.Select("id", "name", "is_active", "created_at", "updated_at").
		From("input_methods").
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var methods []*models.InputMethod
	for rows.Next() {
		var im models.InputMethod
		if err := rows.Scan(
			&im.ID, &im.Name, &im.IsActive, &im.CreatedAt, &im.UpdatedAt,
		); err != nil {
			return nil, err
		}
		methods = append(methods, &im)
	}

	return methods, rows.Err()
}

func (r *InputMethodRepository) Update(ctx context.Context, im *models.InputMethod) error {
	query := squirrel.Update("input_methods").
		Set("name", im.Name).
		Set("is_active", im.IsActive).
		Set("updated_at", im.UpdatedAt).
		Where(squirrel.Eq{"id": im.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *InputMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("input_methods").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
