package promo

import (
	"context"
	"strings"
	"time"

	"dhatucraft-be/internal/logger"

	"go.uber.org/zap"
)

// Validation is the computed outcome of applying a promo to a subtotal.
type Validation struct {
	Code            string
	DiscountPercent int
	DiscountAmount  int64
	Payable         int64
}

type Service interface {
	Validate(ctx context.Context, code string, subtotal int64, today time.Time) (*Validation, error)
	List(ctx context.Context) ([]*Promo, error)
	Create(ctx context.Context, input CreateInput) (*Promo, error)
	Update(ctx context.Context, id uint, input UpdateInput) (*Promo, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Validate canonicalizes the code to uppercase before lookup. A miss is a
// user-facing rejection, not a system error.
func (s *service) Validate(ctx context.Context, code string, subtotal int64, today time.Time) (*Validation, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrCodeRequired
	}

	p, err := s.repo.FindValid(ctx, code, today)
	if err != nil {
		return nil, err
	}

	discount := subtotal * int64(p.DiscountPercent) / 100

	logger.FromCtx(ctx).Info("promo validated",
		zap.String("code", p.Code),
		zap.Int("percent", p.DiscountPercent),
		zap.Int64("discount", discount),
	)

	return &Validation{
		Code:            p.Code,
		DiscountPercent: p.DiscountPercent,
		DiscountAmount:  discount,
		Payable:         subtotal - discount,
	}, nil
}

func (s *service) List(ctx context.Context) ([]*Promo, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Promo, error) {
	input.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	if input.Code == "" {
		return nil, ErrCodeRequired
	}
	if input.DiscountPercent < 1 || input.DiscountPercent > 100 {
		return nil, ErrInvalidDiscount
	}

	return s.repo.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, id uint, input UpdateInput) (*Promo, error) {
	if input.DiscountPercent != nil &&
		(*input.DiscountPercent < 1 || *input.DiscountPercent > 100) {
		return nil, ErrInvalidDiscount
	}

	return s.repo.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
