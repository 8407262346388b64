// Package engagement хранит голоса устройства: какие отчёты оно уже поддержало
// и локально переопределённые счётчики голосов для режима без бэкенда.
package engagement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/systemfailed/internal/models"
)

const (
	upvotedKeyPrefix = "systemfailed_upvoted:"
	countsKey        = "systemfailed_upvote_counts"

	maxTxAttempts = 10
)

// Countable - отчёт со счётчиком голосов (инцидент или ловушка)
type Countable[T any] interface {
	ReportID() string
	WithUpvotes(count int) T
}

// OverrideCount возвращает копию отчёта с сохранённым счётчиком, если он есть, иначе сам отчёт
func OverrideCount[T Countable[T]](item T, counts map[string]int) T {
	if count, ok := counts[item.ReportID()]; ok {
		return item.WithUpvotes(count)
	}
	return item
}

// Store - реализация на Redis. Оба логических ключа хранят JSON.
type Store struct {
	redisClient *redis.Client
}

func NewStore(redisClient *redis.Client) *Store {
	return &Store{redisClient: redisClient}
}

func upvotedKey(deviceID string) string {
	return upvotedKeyPrefix + deviceID
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readIDs(ctx context.Context, g getter, key string) ([]string, error) {
	val, err := g.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read upvoted ids: %w", err)
	}
	var ids []string
	if err := json.Unmarshal(val, &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal upvoted ids: %w", err)
	}
	return ids, nil
}

func readCounts(ctx context.Context, g getter) (map[string]int, error) {
	counts := make(map[string]int)
	val, err := g.Get(ctx, countsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return counts, nil
		}
		return nil, fmt.Errorf("failed to read upvote counts: %w", err)
	}
	if err := json.Unmarshal(val, &counts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal upvote counts: %w", err)
	}
	return counts, nil
}

// HasUpvoted проверяет, голосовало ли устройство за отчёт
func (s *Store) HasUpvoted(ctx context.Context, deviceID, reportID string) (bool, error) {
	ids, err := readIDs(ctx, s.redisClient, upvotedKey(deviceID))
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, reportID), nil
}

// Counts возвращает все переопределённые счётчики
func (s *Store) Counts(ctx context.Context) (map[string]int, error) {
	return readCounts(ctx, s.redisClient)
}

// RecordUpvote добавляет отчёт в набор устройства и сохраняет newCount.
// Обе записи выполняются в одной транзакции: либо обе, либо ни одной.
func (s *Store) RecordUpvote(ctx context.Context, deviceID, reportID string, newCount int) error {
	_, err := s.update(ctx, deviceID, reportID, func(map[string]int) int { return newCount })
	return err
}

// IncrementUpvote увеличивает сохранённый счётчик (или baseline, если его нет) на 1
// и отмечает голос устройства. Чтение и запись происходят в одной транзакции.
func (s *Store) IncrementUpvote(ctx context.Context, deviceID, reportID string, baseline int) (int, error) {
	return s.update(ctx, deviceID, reportID, func(counts map[string]int) int {
		current, ok := counts[reportID]
		if !ok {
			current = baseline
		}
		return current + 1
	})
}

func (s *Store) update(ctx context.Context, deviceID, reportID string, next func(map[string]int) int) (int, error) {
	setKey := upvotedKey(deviceID)
	var newCount int

	txf := func(tx *redis.Tx) error {
		ids, err := readIDs(ctx, tx, setKey)
		if err != nil {
			return err
		}
		if slices.Contains(ids, reportID) {
			return models.ErrAlreadyVoted
		}
		counts, err := readCounts(ctx, tx)
		if err != nil {
			return err
		}

		newCount = next(counts)
		counts[reportID] = newCount
		idsVal, err := json.Marshal(append(ids, reportID))
		if err != nil {
			return fmt.Errorf("failed to marshal upvoted ids: %w", err)
		}
		countsVal, err := json.Marshal(counts)
		if err != nil {
			return fmt.Errorf("failed to marshal upvote counts: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, setKey, idsVal, 0)
			pipe.Set(ctx, countsKey, countsVal, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxAttempts; i++ {
		err := s.redisClient.Watch(ctx, txf, setKey, countsKey)
		if errors.Is(err, redis.TxFailedErr) {
			// ключи изменились между чтением и EXEC, повторяем
			continue
		}
		if err != nil {
			if errors.Is(err, models.ErrAlreadyVoted) {
				return 0, err
			}
			return 0, fmt.Errorf("failed to record upvote: %w", err)
		}
		return newCount, nil
	}
	return 0, fmt.Errorf("failed to record upvote for %s: transaction contention", reportID)
}

// MarkUpvoted только отмечает голос устройства, счётчик не трогает.
// Используется после успешного голосования через бэкенд. Повторный вызов ничего не меняет.
func (s *Store) MarkUpvoted(ctx context.Context, deviceID, reportID string) error {
	setKey := upvotedKey(deviceID)
	txf := func(tx *redis.Tx) error {
		ids, err := readIDs(ctx, tx, setKey)
		if err != nil {
			return err
		}
		if slices.Contains(ids, reportID) {
			return nil
		}
		val, err := json.Marshal(append(ids, reportID))
		if err != nil {
			return fmt.Errorf("failed to marshal upvoted ids: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, setKey, val, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxAttempts; i++ {
		err := s.redisClient.Watch(ctx, txf, setKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to mark upvote: %w", err)
		}
		return nil
	}
	return fmt.Errorf("failed to mark upvote for %s: transaction contention", reportID)
}
