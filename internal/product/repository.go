package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"dhatucraft-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, filter *FilterInput, limit, page *int32) ([]Product, error)
	GetByID(ctx context.Context, id uint) (Product, error)
	Create(ctx context.Context, input CreateInput) (Product, error)
	Update(ctx context.Context, id uint, input UpdateInput) (Product, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(
	ctx context.Context,
	filter *FilterInput,
	limit *int32,
	page *int32,
) ([]Product, error) {

	// ---------- DEFAULTS ----------
	finalLimit := int32(20)
	finalPage := int32(1)

	if limit != nil && *limit > 0 {
		finalLimit = *limit
	}
	if page != nil && *page > 0 {
		finalPage = *page
	}
	if finalLimit > 100 {
		finalLimit = 100
	}

	finalOffset := (finalPage - 1) * finalLimit

	log := logger.FromCtx(ctx).With(
		zap.Int32("limit", finalLimit),
		zap.Int32("page", finalPage),
		zap.Int32("offset", finalOffset),
	)
	log.Debug("List products started")

	// ---------- BASE QUERY ----------
	query := `
		SELECT
			p.id,
			p.name,
			p.price,
			p.discount_price,
			p.stock,
			p.description,
			p.care,
			p.category_id,
			p.images,
			p.created_at,
			p.updated_at
		FROM products p
	`

	where := []string{}
	args := []interface{}{}

	// ---------- FILTER ----------
	if filter != nil {
		if filter.Search != nil && *filter.Search != "" {
			where = append(where, fmt.Sprintf(
				"(p.name ILIKE $%d OR p.description ILIKE $%d)",
				len(args)+1, len(args)+1,
			))
			args = append(args, "%"+*filter.Search+"%")
		}

		if filter.CategoryID != nil {
			where = append(where, fmt.Sprintf("p.category_id = $%d", len(args)+1))
			args = append(args, *filter.CategoryID)
		}
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	// ---------- ORDER ----------
	query += " ORDER BY p.name ASC"

	// ---------- PAGINATION ----------
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, finalLimit, finalOffset)

	log.Debug("Executing list products query",
		zap.String("query", query),
		zap.Any("args", args),
	)

	// ---------- EXECUTE ----------
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed List products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []Product

	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.DiscountPrice,
			&p.Stock,
			&p.Description,
			&p.Care,
			&p.CategoryID,
			pq.Array(&p.Images),
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, err
	}

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price, discount_price, stock, description, care,
		       category_id, images, created_at, updated_at
		FROM products WHERE id = $1
	`, id).Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.DiscountPrice,
		&p.Stock,
		&p.Description,
		&p.Care,
		&p.CategoryID,
		pq.Array(&p.Images),
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		return Product{}, err
	}

	return p, nil
}

func (r *repository) Create(ctx context.Context, input CreateInput) (Product, error) {
	log := logger.FromCtx(ctx)

	var p Product
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, price, discount_price, stock, description, care, category_id, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, price, discount_price, stock, description, care,
		          category_id, images, created_at, updated_at
	`,
		input.Name,
		input.Price,
		input.DiscountPrice,
		input.Stock,
		input.Description,
		input.Care,
		input.CategoryID,
		pq.Array(input.Images),
	).Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.DiscountPrice,
		&p.Stock,
		&p.Description,
		&p.Care,
		&p.CategoryID,
		pq.Array(&p.Images),
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err != nil {
		log.Error("db: failed to insert product",
			zap.String("name", input.Name),
			zap.Error(err),
		)
		return Product{}, err
	}

	return p, nil
}

func (r *repository) Update(ctx context.Context, id uint, input UpdateInput) (Product, error) {
	set := []string{}
	args := []interface{}{}

	addSet := func(col string, val interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)+1))
		args = append(args, val)
	}

	if input.Name != nil {
		addSet("name", *input.Name)
	}
	if input.Price != nil {
		addSet("price", *input.Price)
	}
	if input.DiscountPrice != nil {
		addSet("discount_price", *input.DiscountPrice)
	}
	if input.Stock != nil {
		addSet("stock", *input.Stock)
	}
	if input.Description != nil {
		addSet("description", *input.Description)
	}
	if input.Care != nil {
		addSet("care", *input.Care)
	}
	if input.CategoryID != nil {
		addSet("category_id", *input.CategoryID)
	}
	if input.Images != nil {
		addSet("images", pq.Array(input.Images))
	}

	if len(set) == 0 {
		return Product{}, ErrNoUpdateFields
	}

	set = append(set, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE products SET %s WHERE id = $%d
		RETURNING id, name, price, discount_price, stock, description, care,
		          category_id, images, created_at, updated_at
	`, strings.Join(set, ", "), len(args)+1)
	args = append(args, id)

	var p Product
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.DiscountPrice,
		&p.Stock,
		&p.Description,
		&p.Care,
		&p.CategoryID,
		pq.Array(&p.Images),
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		return Product{}, err
	}

	return p, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}
