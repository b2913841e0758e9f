package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string) Store {
	return &redisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (s *redisStore) key(email string) string {
	return fmt.Sprintf("otp:reset:%s", email)
}

func (s *redisStore) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(email), code, ttl).Err()
}

// Verify checks the stored code and consumes it on success. A missing key
// means the code expired or was never requested.
func (s *redisStore) Verify(ctx context.Context, email, code string) error {
	stored, err := s.client.Get(ctx, s.key(email)).Result()
	if err == redis.Nil {
		return ErrCodeExpired
	}
	if err != nil {
		return err
	}

	if stored != code {
		return ErrCodeInvalid
	}

	return s.client.Del(ctx, s.key(email)).Err()
}
