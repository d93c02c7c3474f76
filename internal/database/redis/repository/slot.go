package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hrdesk/internal/core"
	client "hrdesk/internal/database/client"
	"hrdesk/internal/database/slot"

	"github.com/redis/go-redis/v9"
)

// SlotRepository slot 存成不過期的 string key："<server>:slot:<name>"
type SlotRepository struct {
	client *redis.Client
}

func NewSlotRepository(redisClient *client.RedisClient) *SlotRepository {
	return &SlotRepository{client: redisClient.Client()}
}

func (repository *SlotRepository) Get(ctx context.Context, name core.SlotName) ([]byte, error) {
	value, err := repository.client.Get(ctx, repository.buildKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, slot.ErrNotFound
	}
	return value, err
}

func (repository *SlotRepository) Set(ctx context.Context, name core.SlotName, value []byte) error {
	return repository.client.Set(ctx, repository.buildKey(name), value, 0).Err()
}

func (repository *SlotRepository) Delete(ctx context.Context, name core.SlotName) error {
	return repository.client.Del(ctx, repository.buildKey(name)).Err()
}

func (repository *SlotRepository) Names(ctx context.Context) ([]core.SlotName, error) {
	prefix := repository.buildKey("")
	var names []core.SlotName
	iter := repository.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		names = append(names, core.SlotName(strings.TrimPrefix(iter.Val(), prefix)))
	}
	return names, iter.Err()
}

func (repository *SlotRepository) Driver() core.StorageDriver { return core.StorageRedis }

// buildKey 建構 slot 用的 Redis key
func (repository *SlotRepository) buildKey(name core.SlotName) string {
	return fmt.Sprintf("%s:slot:%s", core.RedisKeyServerName, name)
}
