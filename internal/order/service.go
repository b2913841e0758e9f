package order

import (
	"context"
	"errors"
	"time"

	"dhatucraft-be/internal/logger"
	"dhatucraft-be/internal/media"
	"dhatucraft-be/internal/metrics"

	"go.uber.org/zap"
)

// Notifier hands the placed order to the notification pipeline after commit.
// A publish failure never fails the order.
type Notifier interface {
	OrderPlaced(ctx context.Context, o *Order) error
}

type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
	ListAll(ctx context.Context, filter *FilterInput, limit, page *int32) ([]*Order, error)
	GetDetail(ctx context.Context, userID, orderID uint, isAdmin bool) (*Order, error)
	Cancel(ctx context.Context, userID, orderID uint, now time.Time) error
	UpdateStatus(ctx context.Context, orderID uint, status OrderStatus) error
}

type service struct {
	repo     Repository
	notifier Notifier
	resolver *media.Resolver
	metrics  *metrics.Registry
}

func NewService(repo Repository, notifier Notifier, resolver *media.Resolver, reg *metrics.Registry) Service {
	return &service{
		repo:     repo,
		notifier: notifier,
		resolver: resolver,
		metrics:  reg,
	}
}

// PlaceOrder validates the request, runs the all-or-nothing transaction, and
// only then triggers notification. Placement is deliberately not idempotent:
// a replayed request creates a second order and a second decrement.
func (s *service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.Uint("user_id", input.UserID),
		zap.Int("item_count", len(input.Items)),
	)

	// Rejections happen before any database interaction.
	if input.UserID == 0 {
		return nil, ErrMissingUserID
	}
	if len(input.Items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}
	if input.TotalAmount < 0 {
		return nil, ErrInvalidTotal
	}

	o := &Order{
		UserID:      input.UserID,
		Username:    input.Username,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		Items:       input.Items,
		TotalAmount: input.TotalAmount,
	}

	timer := metrics.StartTimer()

	if err := s.repo.PlaceOrderTx(ctx, o); err != nil {
		s.metrics.OrderFailures.Inc()

		if errors.Is(err, ErrInsufficientStock) {
			return nil, err
		}

		// Raw DB errors stay in the log; callers get a generic failure.
		log.Error("order transaction failed", zap.Error(err))
		return nil, ErrPlaceOrderFailed
	}

	s.metrics.OrdersPlaced.Inc()

	log.Info("order placed",
		zap.Uint("order_id", o.ID),
		zap.Int64("total_amount", o.TotalAmount),
		zap.Duration("took", timer.Duration()),
	)

	// Best effort: the order is already committed.
	if err := s.notifier.OrderPlaced(ctx, o); err != nil {
		log.Error("failed to dispatch order notification",
			zap.Uint("order_id", o.ID),
			zap.Error(err),
		)
	}

	return o, nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.resolveImages(orders)
	return orders, nil
}

func (s *service) ListAll(ctx context.Context, filter *FilterInput, limit, page *int32) ([]*Order, error) {
	orders, err := s.repo.ListAll(ctx, filter, limit, page)
	if err != nil {
		return nil, err
	}

	s.resolveImages(orders)
	return orders, nil
}

func (s *service) GetDetail(ctx context.Context, userID, orderID uint, isAdmin bool) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && o.UserID != userID {
		return nil, ErrUnauthorized
	}

	for i := range o.Items {
		o.Items[i].Image = s.resolver.Resolve(o.Items[i].Image)
	}

	return o, nil
}

// Cancel is the customer path: ownership is checked and the 6-hour window is
// enforced server-side, not just in the client.
func (s *service) Cancel(ctx context.Context, userID, orderID uint, now time.Time) error {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if o.UserID != userID {
		return ErrUnauthorized
	}

	if !ValidTransition(o.Status, StatusCancelled) {
		return ErrInvalidTransition
	}

	if now.Sub(o.CreatedAt) > CancelWindow {
		return ErrCancelWindowClosed
	}

	if err := s.repo.UpdateStatusIf(ctx, orderID, o.Status, StatusCancelled); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("order cancelled by customer",
		zap.Uint("order_id", orderID),
		zap.Uint("user_id", userID),
	)

	return nil
}

// UpdateStatus is the admin path. Transition legality is enforced here too;
// arbitrary status strings are rejected.
func (s *service) UpdateStatus(ctx context.Context, orderID uint, status OrderStatus) error {
	if !ValidStatus(status) {
		return ErrInvalidTransition
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if !ValidTransition(o.Status, status) {
		return ErrInvalidTransition
	}

	return s.repo.UpdateStatusIf(ctx, orderID, o.Status, status)
}

func (s *service) resolveImages(orders []*Order) {
	for _, o := range orders {
		for i := range o.Items {
			o.Items[i].Image = s.resolver.Resolve(o.Items[i].Image)
		}
	}
}
