package category

import (
	"context"
	"strings"
)

type Service interface {
	List(ctx context.Context, filter *string, limit, page *int32) ([]*Category, error)
	Create(ctx context.Context, name string, image *string) (*Category, error)
	Update(ctx context.Context, id uint, name string, image *string) (*Category, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter *string, limit, page *int32) ([]*Category, error) {
	return s.repo.GetCategories(ctx, filter, limit, page)
}

func (s *service) Create(ctx context.Context, name string, image *string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	return s.repo.AddCategory(ctx, name, image)
}

func (s *service) Update(ctx context.Context, id uint, name string, image *string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	return s.repo.UpdateCategory(ctx, id, name, image)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteCategory(ctx, id)
}
