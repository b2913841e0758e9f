package promo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dhatucraft-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	FindValid(ctx context.Context, code string, today time.Time) (*Promo, error)
	List(ctx context.Context) ([]*Promo, error)
	Create(ctx context.Context, input CreateInput) (*Promo, error)
	Update(ctx context.Context, id uint, input UpdateInput) (*Promo, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// FindValid matches an active code whose expiry is today or later. The start
// date is stored but intentionally not part of the lookup bound.
func (r *repository) FindValid(ctx context.Context, code string, today time.Time) (*Promo, error) {
	var p Promo
	err := r.db.QueryRowContext(ctx, `
		SELECT id, code, discount_percent, active, starts_at, expires_at, created_at
		FROM promos
		WHERE code = $1 AND active = TRUE AND expires_at::date >= $2::date
	`, code, today).Scan(
		&p.ID,
		&p.Code,
		&p.DiscountPercent,
		&p.Active,
		&p.StartsAt,
		&p.ExpiresAt,
		&p.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPromoNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: promo lookup failed",
			zap.String("code", code),
			zap.Error(err),
		)
		return nil, err
	}

	return &p, nil
}

func (r *repository) List(ctx context.Context) ([]*Promo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, code, discount_percent, active, starts_at, expires_at, created_at
		FROM promos ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promos []*Promo
	for rows.Next() {
		var p Promo
		if err := rows.Scan(
			&p.ID, &p.Code, &p.DiscountPercent, &p.Active,
			&p.StartsAt, &p.ExpiresAt, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		promos = append(promos, &p)
	}

	return promos, rows.Err()
}

func (r *repository) Create(ctx context.Context, input CreateInput) (*Promo, error) {
	var p Promo
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO promos (code, discount_percent, active, starts_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, code, discount_percent, active, starts_at, expires_at, created_at
	`,
		input.Code,
		input.DiscountPercent,
		input.Active,
		input.StartsAt,
		input.ExpiresAt,
	).Scan(
		&p.ID, &p.Code, &p.DiscountPercent, &p.Active,
		&p.StartsAt, &p.ExpiresAt, &p.CreatedAt,
	)

	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert promo",
			zap.String("code", input.Code),
			zap.Error(err),
		)
		return nil, err
	}

	return &p, nil
}

func (r *repository) Update(ctx context.Context, id uint, input UpdateInput) (*Promo, error) {
	var p Promo
	err := r.db.QueryRowContext(ctx, `
		UPDATE promos SET
			discount_percent = COALESCE($1, discount_percent),
			active = COALESCE($2, active),
			starts_at = COALESCE($3, starts_at),
			expires_at = COALESCE($4, expires_at)
		WHERE id = $5
		RETURNING id, code, discount_percent, active, starts_at, expires_at, created_at
	`,
		input.DiscountPercent,
		input.Active,
		input.StartsAt,
		input.ExpiresAt,
		id,
	).Scan(
		&p.ID, &p.Code, &p.DiscountPercent, &p.Active,
		&p.StartsAt, &p.ExpiresAt, &p.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPromoNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM promos WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrPromoNotFound
	}
	return nil
}
