package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dhatucraft-be/internal/logger"
	"dhatucraft-be/internal/otp"

	"go.uber.org/zap"
)

const resetCodeTTL = 10 * time.Minute

// ResetMailer delivers the reset code to the user. Failures are logged,
// never surfaced to the caller.
type ResetMailer interface {
	SendPasswordResetOTP(ctx context.Context, to, code string) error
}

type Service interface {
	Register(ctx context.Context, input RegisterInput) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type service struct {
	repo   Repository
	otp    otp.Store
	mailer ResetMailer
}

func NewService(repo Repository, otpStore otp.Store, mailer ResetMailer) Service {
	return &service{repo: repo, otp: otpStore, mailer: mailer}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (string, User, error) {
	log := logger.FromCtx(ctx)

	hashed, err := HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.Create(ctx, input, hashed)
	if err != nil {
		log.Error("failed to create user", zap.String("email", input.Email), zap.Error(err))
		if strings.Contains(err.Error(), "users_email_key") {
			return "", User{}, ErrEmailExists
		}
		return "", User{}, err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", fmt.Sprint(u.ID)), zap.Error(err))
		return "", User{}, err
	}

	log.Info("register service completed",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("email", input.Email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Debug("login: email not found", zap.String("email", email))
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Debug("login: password mismatch", zap.String("email", email))
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	return token, u, err
}

// RequestPasswordReset always succeeds from the caller's point of view when
// the account exists; mail delivery is best effort.
func (s *service) RequestPasswordReset(ctx context.Context, email string) error {
	log := logger.FromCtx(ctx).With(zap.String("email", email))

	if _, err := s.repo.FindByEmail(ctx, email); err != nil {
		return err
	}

	code, err := otp.GenerateCode()
	if err != nil {
		log.Error("failed to generate otp", zap.Error(err))
		return err
	}

	if err := s.otp.Put(ctx, email, code, resetCodeTTL); err != nil {
		log.Error("failed to store otp", zap.Error(err))
		return err
	}

	if err := s.mailer.SendPasswordResetOTP(ctx, email, code); err != nil {
		log.Error("failed to send otp mail", zap.Error(err))
	}

	return nil
}

func (s *service) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	log := logger.FromCtx(ctx).With(zap.String("email", email))

	if err := s.otp.Verify(ctx, email, code); err != nil {
		log.Warn("otp verification failed", zap.Error(err))
		return err
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, email, hashed); err != nil {
		log.Error("failed to update password", zap.Error(err))
		return err
	}

	log.Info("password reset completed")
	return nil
}
