package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"dhatucraft-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	PlaceOrderTx(ctx context.Context, o *Order) error
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
	ListAll(ctx context.Context, filter *FilterInput, limit, page *int32) ([]*Order, error)
	GetByID(ctx context.Context, orderID uint) (*Order, error)
	UpdateStatusIf(ctx context.Context, orderID uint, from, to OrderStatus) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// PlaceOrderTx inserts the order row with its line-item snapshot and
// decrements stock per item inside one transaction. A decrement that would
// take stock negative affects zero rows and aborts the whole transaction.
func (r *repository) PlaceOrderTx(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "PlaceOrderTx"),
		zap.Uint("user_id", o.UserID),
		zap.Int("item_count", len(o.Items)),
	)

	log.Debug("starting order transaction")

	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			} else {
				log.Debug("transaction rolled back")
			}
		}
	}()

	// Insert order with the immutable item snapshot
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			user_id, username, email, phone, address,
			items, total_amount, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at, updated_at
	`,
		o.UserID,
		o.Username,
		o.Email,
		o.Phone,
		o.Address,
		itemsJSON,
		o.TotalAmount,
		StatusPending,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	o.Status = StatusPending

	// Deduct stock, refusing to go negative
	for i, item := range o.Items {
		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock = stock - $1
			WHERE id = $2 AND stock >= $1
		`, item.Quantity, item.ProductID)
		if err != nil {
			log.Error("failed to decrement stock",
				zap.Int("item_index", i),
				zap.Uint("product_id", item.ProductID),
				zap.Error(err),
			)
			return err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			log.Warn("insufficient stock",
				zap.Uint("product_id", item.ProductID),
				zap.Int("quantity", item.Quantity),
			)
			return ErrInsufficientStock
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return err
	}

	committed = true
	log.Info("order transaction committed", zap.Uint("order_id", o.ID))

	return nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "ListByUser"),
		zap.Uint("user_id", userID),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, username, email, phone, address,
		       items, total_amount, status, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *repository) ListAll(
	ctx context.Context,
	filter *FilterInput,
	limit, page *int32,
) ([]*Order, error) {

	// ---------- PAGINATION ----------
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

	offset := (finalPage - 1) * finalLimit

	log := logger.FromCtx(ctx).With(
		zap.String("method", "ListAll"),
		zap.Int32("limit", finalLimit),
		zap.Int32("page", finalPage),
		zap.Int32("offset", offset),
	)

	log.Debug("start list orders")

	// ---------- BASE QUERY ----------
	query := `
		SELECT
			o.id,
			o.user_id,
			o.username,
			o.email,
			o.phone,
			o.address,
			o.items,
			o.total_amount,
			o.status,
			o.created_at,
			o.updated_at
		FROM orders o
		WHERE 1=1
	`

	args := []any{}
	argIndex := 1

	// ---------- FILTERING ----------
	if filter != nil {

		if filter.Search != nil && *filter.Search != "" {
			query += fmt.Sprintf(
				" AND (o.id::text ILIKE $%d OR o.email ILIKE $%d)",
				argIndex, argIndex,
			)
			args = append(args, "%"+*filter.Search+"%")
			argIndex++
		}

		if filter.Status != nil && *filter.Status != "" {
			query += fmt.Sprintf(" AND o.status = $%d", argIndex)
			args = append(args, *filter.Status)
			argIndex++
		}

		if filter.DateFrom != nil {
			query += fmt.Sprintf(" AND o.created_at >= $%d", argIndex)
			args = append(args, *filter.DateFrom)
			argIndex++
		}

		if filter.DateTo != nil {
			query += fmt.Sprintf(" AND o.created_at <= $%d", argIndex)
			args = append(args, *filter.DateTo)
			argIndex++
		}
	}

	query += " ORDER BY o.created_at DESC"

	// ---------- PAGINATION ----------
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, finalLimit, offset)

	log.Debug("executing list orders query",
		zap.String("query", query),
		zap.Any("args", args),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		log.Error("failed to scan orders", zap.Error(err))
		return nil, err
	}

	log.Info("list orders success", zap.Int("count", len(orders)))

	return orders, nil
}

func (r *repository) GetByID(ctx context.Context, orderID uint) (*Order, error) {
	var o Order
	var itemsJSON []byte

	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, username, email, phone, address,
		       items, total_amount, status, created_at, updated_at
		FROM orders WHERE id = $1
	`, orderID).Scan(
		&o.ID, &o.UserID, &o.Username, &o.Email, &o.Phone, &o.Address,
		&itemsJSON, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, err
	}

	return &o, nil
}

// UpdateStatusIf moves the order from one status to another. The from-status
// guard makes concurrent transitions lose cleanly instead of clobbering.
func (r *repository) UpdateStatusIf(ctx context.Context, orderID uint, from, to OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, to, orderID, from)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

func scanOrders(rows *sql.Rows) ([]*Order, error) {
	var orders []*Order

	for rows.Next() {
		var o Order
		var itemsJSON []byte

		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Username, &o.Email, &o.Phone, &o.Address,
			&itemsJSON, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			return nil, err
		}

		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
