package product

import (
	"context"
	"testing"

	"dhatucraft-be/internal/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, filter *FilterInput, limit, page *int32) ([]Product, error) {
	args := m.Called(ctx, filter, limit, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input CreateInput) (Product, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id uint, input UpdateInput) (Product, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(Product), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService(repo Repository) Service {
	return NewService(repo, media.NewResolver("https://media.example.com"))
}

func TestService_List_ResolvesImages(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	svc := newTestService(mockRepo)

	mockRepo.On("List", ctx, (*FilterInput)(nil), (*int32)(nil), (*int32)(nil)).
		Return([]Product{
			{ID: 1, Name: "Brass Diya", Images: []string{"diya.jpg"}},
			{ID: 2, Name: "Copper Bottle", Images: []string{"https://cdn.example.com/bottle.jpg"}},
		}, nil)

	products, err := svc.List(ctx, nil, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "https://media.example.com/diya.jpg", products[0].Images[0])
	// Absolute URLs pass through untouched.
	assert.Equal(t, "https://cdn.example.com/bottle.jpg", products[1].Images[0])
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := newTestService(mockRepo)

		mockRepo.On("GetByID", ctx, uint(1)).
			Return(Product{ID: 1, Images: []string{"diya.jpg"}}, nil)

		p, err := svc.Get(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "https://media.example.com/diya.jpg", p.Images[0])
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := newTestService(mockRepo)

		mockRepo.On("GetByID", ctx, uint(9)).Return(Product{}, ErrProductNotFound)

		_, err := svc.Get(ctx, 9)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestService_Create_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("ZeroPrice", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := newTestService(mockRepo)

		_, err := svc.Create(ctx, CreateInput{Name: "Diya", Price: 0, Stock: 1})
		assert.ErrorIs(t, err, ErrInvalidPrice)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("NegativeStock", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := newTestService(mockRepo)

		_, err := svc.Create(ctx, CreateInput{Name: "Diya", Price: 450, Stock: -1})
		assert.ErrorIs(t, err, ErrInvalidStock)
	})

	t.Run("Valid", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := newTestService(mockRepo)

		input := CreateInput{Name: "Diya", Price: 450, Stock: 10, CategoryID: 1}
		mockRepo.On("Create", ctx, input).Return(Product{ID: 1, Name: "Diya"}, nil)

		p, err := svc.Create(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), p.ID)
	})
}

func TestService_Update_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("NoFields", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := newTestService(mockRepo)

		_, err := svc.Update(ctx, 1, UpdateInput{})
		assert.ErrorIs(t, err, ErrNoUpdateFields)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("InvalidPrice", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := newTestService(mockRepo)

		bad := int64(-10)
		_, err := svc.Update(ctx, 1, UpdateInput{Price: &bad})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}
