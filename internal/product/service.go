package product

import (
	"context"

	"dhatucraft-be/internal/media"
)

type Service interface {
	List(ctx context.Context, filter *FilterInput, limit, page *int32) ([]Product, error)
	Get(ctx context.Context, id uint) (Product, error)
	Create(ctx context.Context, input CreateInput) (Product, error)
	Update(ctx context.Context, id uint, input UpdateInput) (Product, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo     Repository
	resolver *media.Resolver
}

func NewService(repo Repository, resolver *media.Resolver) Service {
	return &service{repo: repo, resolver: resolver}
}

func (s *service) List(ctx context.Context, filter *FilterInput, limit, page *int32) ([]Product, error) {
	products, err := s.repo.List(ctx, filter, limit, page)
	if err != nil {
		return nil, err
	}

	for i := range products {
		products[i].Images = s.resolver.ResolveAll(products[i].Images)
	}

	return products, nil
}

func (s *service) Get(ctx context.Context, id uint) (Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Product{}, err
	}

	p.Images = s.resolver.ResolveAll(p.Images)
	return p, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (Product, error) {
	if input.Price <= 0 {
		return Product{}, ErrInvalidPrice
	}
	if input.Stock < 0 {
		return Product{}, ErrInvalidStock
	}

	return s.repo.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, id uint, input UpdateInput) (Product, error) {
	if !input.HasAnyField() {
		return Product{}, ErrNoUpdateFields
	}
	if input.Price != nil && *input.Price <= 0 {
		return Product{}, ErrInvalidPrice
	}
	if input.Stock != nil && *input.Stock < 0 {
		return Product{}, ErrInvalidStock
	}

	return s.repo.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
