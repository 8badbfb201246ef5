package redisstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	client *redis.Client
}

func New(addr, password string, db int) *Store {
	return &Store{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// IncrEvent bumps the hit counter for one analytics event name.
func (s *Store) IncrEvent(ctx context.Context, event string) error {
	return s.client.Incr(ctx, fmt.Sprintf("analytics:events:%s", event)).Err()
}

// EventCount reads a counter back; missing keys read as zero.
func (s *Store) EventCount(ctx context.Context, event string) (int64, error) {
	n, err := s.client.Get(ctx, fmt.Sprintf("analytics:events:%s", event)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

func (s *Store) Close() error {
	return s.client.Close()
}
