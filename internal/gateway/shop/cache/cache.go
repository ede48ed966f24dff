// Package cache keeps shop display names in Redis in front of a shop gateway.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/abhishek622/streetsmart/internal/gateway"
	"github.com/abhishek622/streetsmart/pkg/auth"
	"github.com/abhishek622/streetsmart/shop/pkg/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ShopStore caches GetBasicInfo results and delegates every other call.
type ShopStore struct {
	gateway.ShopStore
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// New wraps next with a Redis cache of shop names.
func New(next gateway.ShopStore, client *redis.Client, ttl time.Duration, logger *zap.Logger) *ShopStore {
	return &ShopStore{ShopStore: next, client: client, ttl: ttl, logger: logger}
}

func key(id model.ShopID) string {
	return "shop:name:" + string(id)
}

// GetBasicInfo returns the cached shop name, loading it through the wrapped
// gateway on a miss. Cache failures fall through to the gateway.
func (s *ShopStore) GetBasicInfo(ctx context.Context, id model.ShopID, cred auth.Credential) (string, error) {
	name, err := s.client.Get(ctx, key(id)).Result()
	if err == nil {
		return name, nil
	}
	if !errors.Is(err, redis.Nil) {
		s.logger.Warn("Shop name cache read failed", zap.String("shopId", string(id)), zap.Error(err))
	}
	name, err = s.ShopStore.GetBasicInfo(ctx, id, cred)
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, key(id), name, s.ttl).Err(); err != nil {
		s.logger.Warn("Shop name cache write failed", zap.String("shopId", string(id)), zap.Error(err))
	}
	return name, nil
}
