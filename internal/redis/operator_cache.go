package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"equipmentCentral/internal/domain"
	"equipmentCentral/internal/service"

	goredis "github.com/redis/go-redis/v9"
)

const activeOperatorsKey = "operators:active"

// OperatorCache is a read-through cache of the active operator list.
// Redis failures degrade to the backing store.
type OperatorCache struct {
	client *goredis.Client
	next   service.OperatorStore
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

func NewOperatorCache(client *goredis.Client, next service.OperatorStore, ttl time.Duration, logger *slog.Logger) *OperatorCache {
	return &OperatorCache{
		client: client,
		next:   next,
		key:    activeOperatorsKey,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *OperatorCache) ListActive(ctx context.Context) ([]domain.Operator, error) {
	cached, err := c.get(ctx)
	switch {
	case err != nil:
		c.logger.Warn("operator cache read failed", slog.Any("error", err))
	case cached != nil:
		return cached, nil
	}

	ops, err := c.next.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.set(ctx, ops); err != nil {
		c.logger.Warn("operator cache write failed", slog.Any("error", err))
	}
	return ops, nil
}

func (c *OperatorCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}

func (c *OperatorCache) get(ctx context.Context) ([]domain.Operator, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	ops := make([]domain.Operator, 0)
	if err := json.Unmarshal(data, &ops); err != nil {
		return nil, err
	}
	return ops, nil
}

func (c *OperatorCache) set(ctx context.Context, ops []domain.Operator) error {
	if ops == nil {
		ops = []domain.Operator{}
	}
	b, err := json.Marshal(ops)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, c.ttl).Err()
}
