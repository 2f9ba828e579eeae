package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Digga-coder/POS-FRECUENZY/internal/model"

	"github.com/redis/go-redis/v9"
)

// CartStore holds transient per-waiter carts. Carts never touch Postgres:
// they live in Redis under cart:{waiter_id} with a TTL, so an abandoned
// terminal session expires on its own.
type CartStore interface {
	Get(ctx context.Context, waiterID string) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	Clear(ctx context.Context, waiterID string) error
}

const cartKeyPrefix = "cart:"

type redisCartStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCartStore(rdb *redis.Client, ttl time.Duration) CartStore {
	return &redisCartStore{rdb: rdb, ttl: ttl}
}

func (s *redisCartStore) Get(ctx context.Context, waiterID string) (*model.Cart, error) {
	raw, err := s.rdb.Get(ctx, cartKeyPrefix+waiterID).Bytes()
	if errors.Is(err, redis.Nil) {
		return &model.Cart{WaiterID: waiterID}, nil
	}
	if err != nil {
		return nil, err
	}
	var cart model.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *redisCartStore) Save(ctx context.Context, cart *model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, cartKeyPrefix+cart.WaiterID, data, s.ttl).Err()
}

func (s *redisCartStore) Clear(ctx context.Context, waiterID string) error {
	return s.rdb.Del(ctx, cartKeyPrefix+waiterID).Err()
}
