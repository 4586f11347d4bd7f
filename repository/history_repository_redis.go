package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"toolbox-api/domain"
)

const (
	historyKey = "fixed-fee:history"

	// maxSaveAttempts bounds retries when another writer changes the list
	// between the duplicate check and the append.
	maxSaveAttempts = 10
)

// HistoryRepositoryRedis keeps the history as a Redis list of JSON records,
// oldest first. Entries never expire.
type HistoryRepositoryRedis struct {
	client redis.UniversalClient
	key    string
}

func NewHistoryRepositoryRedis(client redis.UniversalClient, prefix string) *HistoryRepositoryRedis {
	return &HistoryRepositoryRedis{client: client, key: prefix + historyKey}
}

func decodeRecords(raw []string) ([]domain.CalculationRecord, error) {
	records := make([]domain.CalculationRecord, 0, len(raw))
	for _, entry := range raw {
		var rec domain.CalculationRecord
		if err := json.Unmarshal([]byte(entry), &rec); err != nil {
			return nil, fmt.Errorf("decoding history: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Save appends record unless its combination is already stored. The check and
// the append run in one WATCH transaction, so concurrent writers in other
// processes cannot slip a duplicate in or lose an update.
func (r *HistoryRepositoryRedis) Save(ctx context.Context, record domain.CalculationRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	txf := func(tx *redis.Tx) error {
		stored, err := tx.LRange(ctx, r.key, 0, -1).Result()
		if err != nil {
			return err
		}
		records, err := decodeRecords(stored)
		if err != nil {
			return err
		}
		for _, existing := range records {
			if sameCombination(existing, record) {
				return domain.ErrDuplicateCalculation
			}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.RPush(ctx, r.key, raw)
			return nil
		})
		return err
	}

	for i := 0; i < maxSaveAttempts; i++ {
		err := r.client.Watch(ctx, txf, r.key)
		switch {
		case err == nil, errors.Is(err, domain.ErrDuplicateCalculation):
			return err
		case errors.Is(err, redis.TxFailedErr):
			continue
		default:
			return fmt.Errorf("saving history: %w", err)
		}
	}
	return fmt.Errorf("saving history: list kept changing after %d attempts", maxSaveAttempts)
}

func (r *HistoryRepositoryRedis) List(ctx context.Context) ([]domain.CalculationRecord, error) {
	stored, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	return decodeRecords(stored)
}

func (r *HistoryRepositoryRedis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}
