package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "rental:idempotency"

// RedisStore keeps idempotency records as JSON values with a TTL, scoped per user.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

func (s *RedisStore) Reserve(ctx context.Context, key string, userID uuid.UUID, requestHash string) (*commands.IdempotencyRecord, bool, error) {
	payload, err := json.Marshal(commands.IdempotencyRecord{
		Status:      commands.IdempotencyStatusProcessing,
		RequestHash: requestHash,
	})
	if err != nil {
		return nil, false, err
	}

	redisKey := recordKey(key, userID)
	claimed, err := s.client.SetNX(ctx, redisKey, payload, s.ttl).Result()
	if err != nil {
		return nil, false, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to reserve idempotency key", err)
	}
	if claimed {
		return nil, true, nil
	}

	raw, err := s.client.Get(ctx, redisKey).Bytes()
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET; let the caller proceed as the owner
		claimed, err = s.client.SetNX(ctx, redisKey, payload, s.ttl).Result()
		if err != nil {
			return nil, false, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to reserve idempotency key", err)
		}
		if claimed {
			return nil, true, nil
		}
		raw, err = s.client.Get(ctx, redisKey).Bytes()
	}
	if err != nil {
		return nil, false, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to read idempotency key", err)
	}

	var existing commands.IdempotencyRecord
	if err := json.Unmarshal(raw, &existing); err != nil {
		return nil, false, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "corrupt idempotency record", err)
	}
	return &existing, false, nil
}

func (s *RedisStore) Complete(ctx context.Context, key string, userID uuid.UUID, requestHash string, rentalID uuid.UUID) error {
	payload, err := json.Marshal(commands.IdempotencyRecord{
		Status:      commands.IdempotencyStatusCompleted,
		RequestHash: requestHash,
		RentalID:    &rentalID,
	})
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, recordKey(key, userID), payload, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to complete idempotency key", err)
	}
	return nil
}

func (s *RedisStore) Release(ctx context.Context, key string, userID uuid.UUID) error {
	if err := s.client.Del(ctx, recordKey(key, userID)).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to release idempotency key", err)
	}
	return nil
}

func recordKey(key string, userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, userID, key)
}
