package redis

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"

	// Local Packages
	models "tap-terminal/models"

	// External Packages
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DeadLetterQueue parks receipt events that could not be published or
// delivered so they can be replayed later.
type DeadLetterQueue struct {
	client   *redis.Client
	logger   *zap.Logger
	listName string
}

func NewDeadLetterQueue(client *redis.Client, logger *zap.Logger) *DeadLetterQueue {
	return &DeadLetterQueue{client: client, logger: logger, listName: "failed-receipts"}
}

// Send stores every record under "receipt:{key}" and appends the key to the
// queue list.
func (r *DeadLetterQueue) Send(ctx context.Context, records []models.Record) error {
	if len(records) == 0 {
		return nil
	}

	successCount := 0
	var lastErr error
	for _, record := range records {
		jsonData, err := json.Marshal(record)
		if err != nil {
			r.logger.Error("failed to marshal record", zap.Error(err))
			lastErr = err
			continue
		}

		key := fmt.Sprintf("receipt:%s", record.Key)
		_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, jsonData, 0)
			pipe.RPush(ctx, r.listName, key)
			return nil
		})
		if err != nil {
			r.logger.Error("failed to store record", zap.String("key", key), zap.Error(err))
			lastErr = err
			continue
		}
		successCount++
	}

	if successCount > 0 {
		r.logger.Info("parked records in dead letter queue", zap.Int("count", successCount))
	}
	return lastErr
}

// Len is the number of parked records.
func (r *DeadLetterQueue) Len(ctx context.Context) (int64, error) {
	return r.client.LLen(ctx, r.listName).Result()
}
