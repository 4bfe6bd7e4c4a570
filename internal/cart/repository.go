package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bloomshop-be/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Repository is the durable storage for per-session cart snapshots. A
// missing or corrupt record rehydrates as an empty cart, never an error.
type Repository interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, sessionID string, cart *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) Repository {
	return &redisRepository{client: client}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (r *redisRepository) Get(ctx context.Context, sessionID string) (*Cart, error) {
	data, err := r.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadCart, err)
	}

	var cart Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		// Corrupt record: discard and start over with an empty cart.
		logger.FromCtx(ctx).Warn("discarding corrupt cart record",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return NewCart(), nil
	}
	if cart.Items == nil {
		cart.Items = []LineItem{}
	}

	return &cart, nil
}

func (r *redisRepository) Save(ctx context.Context, sessionID string, cart *Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrFailedSaveCart, err)
	}

	if err := r.client.Set(ctx, cartKey(sessionID), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedClearCart, err)
	}
	return nil
}
