package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
)

var (
	ErrCodeExpired = errors.New("otp code expired or not requested")
	ErrCodeInvalid = errors.New("otp code does not match")
)

// Store keeps one-time codes keyed by email with an explicit TTL.
// Entries survive process restarts and are shared across server instances.
type Store interface {
	Put(ctx context.Context, email, code string, ttl time.Duration) error
	Verify(ctx context.Context, email, code string) error
}

// GenerateCode returns a zero-padded 6-digit numeric code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
