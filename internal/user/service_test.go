package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"dhatucraft-be/internal/otp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, input RegisterInput, hashedPassword string) (User, error) {
	args := m.Called(ctx, input, hashedPassword)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) UpdatePassword(ctx context.Context, email, hashedPassword string) error {
	args := m.Called(ctx, email, hashedPassword)
	return args.Error(0)
}

// MockOTPStore is a mock implementation of the otp.Store interface
type MockOTPStore struct {
	mock.Mock
}

func (m *MockOTPStore) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	args := m.Called(ctx, email, code, ttl)
	return args.Error(0)
}

func (m *MockOTPStore) Verify(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

// MockMailer is a mock implementation of the ResetMailer interface
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendPasswordResetOTP(ctx context.Context, to, code string) error {
	args := m.Called(ctx, to, code)
	return args.Error(0)
}

func TestService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	ctx := context.Background()

	input := RegisterInput{
		Email:    "asha@example.com",
		Password: "password123",
		Name:     "Asha",
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockOTPStore), new(MockMailer))

		expected := User{ID: 1, Email: input.Email, Name: input.Name, Role: RoleUser}
		mockRepo.On("Create", ctx, input, mock.AnythingOfType("string")).Return(expected, nil)

		token, u, err := svc.Register(ctx, input)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, expected, u)
		mockRepo.AssertExpectations(t)
	})

	t.Run("EmailExists", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockOTPStore), new(MockMailer))

		mockRepo.On("Create", ctx, input, mock.Anything).
			Return(User{}, errors.New("duplicate key value violates unique constraint \"users_email_key\""))

		_, _, err := svc.Register(ctx, input)
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockOTPStore), new(MockMailer))

		mockRepo.On("Create", ctx, input, mock.Anything).Return(User{}, errors.New("db error"))

		_, _, err := svc.Register(ctx, input)
		assert.Error(t, err)
		assert.Equal(t, "db error", err.Error())
	})
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	ctx := context.Background()
	email := "asha@example.com"
	password := "password123"

	hashed, _ := HashPassword(password)

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockOTPStore), new(MockMailer))

		u := User{ID: 1, Email: email, Password: hashed, Role: RoleUser}
		mockRepo.On("FindByEmail", ctx, email).Return(u, nil)

		token, got, err := svc.Login(ctx, email, password)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, u, got)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockOTPStore), new(MockMailer))

		mockRepo.On("FindByEmail", ctx, email).Return(User{}, ErrUserNotFound)

		_, _, err := svc.Login(ctx, email, password)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockOTPStore), new(MockMailer))

		u := User{ID: 1, Email: email, Password: hashed, Role: RoleUser}
		mockRepo.On("FindByEmail", ctx, email).Return(u, nil)

		_, _, err := svc.Login(ctx, email, "wrongpassword")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_RequestPasswordReset(t *testing.T) {
	ctx := context.Background()
	email := "asha@example.com"

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockStore := new(MockOTPStore)
		mockMailer := new(MockMailer)
		svc := NewService(mockRepo, mockStore, mockMailer)

		mockRepo.On("FindByEmail", ctx, email).Return(User{ID: 1, Email: email}, nil)
		mockStore.On("Put", ctx, email, mock.AnythingOfType("string"), resetCodeTTL).Return(nil)
		mockMailer.On("SendPasswordResetOTP", ctx, email, mock.AnythingOfType("string")).Return(nil)

		err := svc.RequestPasswordReset(ctx, email)
		assert.NoError(t, err)
		mockStore.AssertExpectations(t)
		mockMailer.AssertExpectations(t)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockStore := new(MockOTPStore)
		svc := NewService(mockRepo, mockStore, new(MockMailer))

		mockRepo.On("FindByEmail", ctx, email).Return(User{}, ErrUserNotFound)

		err := svc.RequestPasswordReset(ctx, email)
		assert.ErrorIs(t, err, ErrUserNotFound)
		mockStore.AssertNotCalled(t, "Put")
	})

	t.Run("MailFailure_StillSucceeds", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockStore := new(MockOTPStore)
		mockMailer := new(MockMailer)
		svc := NewService(mockRepo, mockStore, mockMailer)

		mockRepo.On("FindByEmail", ctx, email).Return(User{ID: 1, Email: email}, nil)
		mockStore.On("Put", ctx, email, mock.Anything, resetCodeTTL).Return(nil)
		mockMailer.On("SendPasswordResetOTP", ctx, email, mock.Anything).Return(errors.New("smtp down"))

		err := svc.RequestPasswordReset(ctx, email)
		assert.NoError(t, err)
	})
}

func TestService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	email := "asha@example.com"

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockStore := new(MockOTPStore)
		svc := NewService(mockRepo, mockStore, new(MockMailer))

		mockStore.On("Verify", ctx, email, "123456").Return(nil)
		mockRepo.On("UpdatePassword", ctx, email, mock.AnythingOfType("string")).Return(nil)

		err := svc.ResetPassword(ctx, email, "123456", "newpassword")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("ExpiredCode", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockStore := new(MockOTPStore)
		svc := NewService(mockRepo, mockStore, new(MockMailer))

		mockStore.On("Verify", ctx, email, "123456").Return(otp.ErrCodeExpired)

		err := svc.ResetPassword(ctx, email, "123456", "newpassword")
		assert.ErrorIs(t, err, otp.ErrCodeExpired)
		mockRepo.AssertNotCalled(t, "UpdatePassword")
	})

	t.Run("WrongCode", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockStore := new(MockOTPStore)
		svc := NewService(mockRepo, mockStore, new(MockMailer))

		mockStore.On("Verify", ctx, email, "000000").Return(otp.ErrCodeInvalid)

		err := svc.ResetPassword(ctx, email, "000000", "newpassword")
		assert.ErrorIs(t, err, otp.ErrCodeInvalid)
	})
}
