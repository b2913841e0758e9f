package promo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promoRows(code string, percent int, expiresAt time.Time) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "code", "discount_percent", "active", "starts_at", "expires_at", "created_at",
	}).AddRow(1, code, percent, true, now.Add(-24*time.Hour), expiresAt, now)
}

func TestRepository_FindValid(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	today := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM promos\\s+WHERE code = \\$1 AND active = TRUE").
			WithArgs("SAVE10", today).
			WillReturnRows(promoRows("SAVE10", 10, today.Add(72*time.Hour)))

		p, err := repo.FindValid(context.Background(), "SAVE10", today)
		assert.NoError(t, err)
		assert.Equal(t, "SAVE10", p.Code)
		assert.Equal(t, 10, p.DiscountPercent)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM promos").
			WithArgs("NOPE", today).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "code", "discount_percent", "active", "starts_at", "expires_at", "created_at",
			}))

		_, err := repo.FindValid(context.Background(), "NOPE", today)
		assert.ErrorIs(t, err, ErrPromoNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM promos").
			WillReturnError(errors.New("db error"))

		_, err := repo.FindValid(context.Background(), "SAVE10", today)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrPromoNotFound)
	})
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	expires := time.Now().Add(30 * 24 * time.Hour)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO promos").
			WithArgs("DIWALI20", 20, true, sqlmock.AnyArg(), expires).
			WillReturnRows(promoRows("DIWALI20", 20, expires))

		p, err := repo.Create(context.Background(), CreateInput{
			Code:            "DIWALI20",
			DiscountPercent: 20,
			Active:          true,
			StartsAt:        time.Now(),
			ExpiresAt:       expires,
		})
		assert.NoError(t, err)
		assert.Equal(t, "DIWALI20", p.Code)
	})

	t.Run("DuplicateCode", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO promos").
			WillReturnError(errors.New("duplicate key value violates unique constraint \"promos_code_key\""))

		_, err := repo.Create(context.Background(), CreateInput{Code: "DIWALI20", DiscountPercent: 20})
		assert.Error(t, err)
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM promos WHERE id = \\$1").
			WithArgs(uint(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 1))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM promos WHERE id = \\$1").
			WithArgs(uint(9)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 9), ErrPromoNotFound)
	})
}
