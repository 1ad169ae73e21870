package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"equipmentCentral/internal/domain"
	"equipmentCentral/pkg/e"

	"github.com/redis/go-redis/v9"
)

type SearchQueue struct {
	client *redis.Client
	key    string
}

func NewSearchQueue(client *redis.Client, key string) *SearchQueue {
	return &SearchQueue{client: client, key: key}
}

func (q *SearchQueue) Publish(ctx context.Context, event domain.SearchEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *SearchQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.SearchEvent, error) {
	var ev domain.SearchEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrQueueEmpty
		}
		return ev, err
	}
	if len(res) < 2 {
		return ev, e.ErrQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, err
	}
	return ev, nil
}
