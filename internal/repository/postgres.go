package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/systemfailed/internal/models"
	"github.com/shenikar/systemfailed/internal/service"
	"github.com/sirupsen/logrus"
)

// cacheTTL - срок жизни закешированной записи
const cacheTTL = 5 * time.Minute

// DB - часть pgxpool.Pool, которой пользуются репозитории
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Backend - хостинговая стратегия хранения: инциденты и ловушки в PostgreSQL
type Backend struct {
	*IncidentRepository
	*HazardRepository
}

func NewBackend(db DB, redisClient *redis.Client, logger *logrus.Logger) service.Backend {
	return &Backend{
		IncidentRepository: NewIncidentRepository(db, redisClient, logger),
		HazardRepository:   NewHazardRepository(db, redisClient, logger),
	}
}

// validID отсекает id, которые заведомо не могут быть первичным ключом
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

type recordCache struct {
	redisClient *redis.Client
	logger      *logrus.Logger
}

// get пытается получить запись из Redis. Промах и ошибки Redis возвращают false.
func (c recordCache) get(ctx context.Context, key string, dest any) bool {
	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WithError(err).WithField("key", key).Warn("Failed to get record from cache")
		}
		return false
	}
	if err := json.Unmarshal(val, dest); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to unmarshal record from cache")
		return false
	}
	return true
}

// set сохраняет запись в Redis
func (c recordCache) set(ctx context.Context, key string, record any) {
	val, err := json.Marshal(record)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to marshal record for cache")
		return
	}
	if err := c.redisClient.Set(ctx, key, val, cacheTTL).Err(); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to set record in cache")
	}
}

// invalidate удаляет запись из кеша
func (c recordCache) invalidate(ctx context.Context, key string) {
	if err := c.redisClient.Del(ctx, key).Err(); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to invalidate cache")
	}
}

// recordVote регистрирует голос устройства и вызывает функцию инкремента в одной транзакции.
// Повторный голос того же устройства даёт ErrAlreadyVoted, отсутствующая запись - ErrNotFound.
func recordVote(ctx context.Context, db DB, incrementFunc, deviceID, id string) (int, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin upvote transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		INSERT INTO upvotes (report_id, device_id)
		VALUES ($1, $2)
		ON CONFLICT (report_id, device_id) DO NOTHING;
	`, id, deviceID)
	if err != nil {
		return 0, fmt.Errorf("failed to record vote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return 0, models.ErrAlreadyVoted
	}

	var count *int
	query := fmt.Sprintf("SELECT %s($1);", incrementFunc)
	if err := tx.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to increment upvote count: %w", err)
	}
	if count == nil {
		return 0, models.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit upvote: %w", err)
	}
	return *count, nil
}
