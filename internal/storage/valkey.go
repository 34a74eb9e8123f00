package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

type ValkeyConfig struct {
	Addr     string
	Password string
	DB       int
}

// ValkeyAdapter keeps each slice under its key in Valkey/Redis
type ValkeyAdapter struct {
	client *redis.Client
}

func NewValkeyAdapter(cfg ValkeyConfig) (*ValkeyAdapter, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Valkey: %w", err)
	}

	slog.Info("Using Valkey storage backend", "addr", cfg.Addr)
	return &ValkeyAdapter{client: rdb}, nil
}

func (v *ValkeyAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := v.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return data, nil
}

func (v *ValkeyAdapter) Set(ctx context.Context, key string, value []byte) error {
	if err := v.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (v *ValkeyAdapter) Close() error {
	return v.client.Close()
}
