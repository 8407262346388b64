package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/systemfailed/internal/models"
	"github.com/sirupsen/logrus"
)

const hazardColumns = `
	id,
	lat,
	lng,
	address,
	city,
	state,
	negligence_type,
	severity,
	description,
	COALESCE(image_url, ''),
	evidence_links,
	status,
	COALESCE(reported_by, ''),
	upvote_count,
	created_at`

type HazardRepository struct {
	db    DB
	cache recordCache
}

func NewHazardRepository(db DB, redisClient *redis.Client, logger *logrus.Logger) *HazardRepository {
	return &HazardRepository{
		db:    db,
		cache: recordCache{redisClient: redisClient, logger: logger},
	}
}

func hazardCacheKey(id string) string {
	return fmt.Sprintf("hazard:%s", id)
}

func scanHazard(row pgx.Row) (*models.Hazard, error) {
	hazard := &models.Hazard{}
	err := row.Scan(
		&hazard.ID,
		&hazard.Location.Lat,
		&hazard.Location.Lng,
		&hazard.Location.Address,
		&hazard.Location.City,
		&hazard.Location.State,
		&hazard.NegligenceType,
		&hazard.Severity,
		&hazard.Description,
		&hazard.ImageURL,
		&hazard.EvidenceLinks,
		&hazard.Status,
		&hazard.ReportedBy,
		&hazard.UpvoteCount,
		&hazard.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if hazard.EvidenceLinks == nil {
		hazard.EvidenceLinks = []string{}
	}
	return hazard, nil
}

// ListHazards возвращает все ловушки от новых к старым
func (r *HazardRepository) ListHazards(ctx context.Context) ([]*models.Hazard, error) {
	query := `SELECT ` + hazardColumns + `
		FROM hazards
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list hazards: %w", err)
	}
	defer rows.Close()

	hazards := make([]*models.Hazard, 0)
	for rows.Next() {
		hazard, err := scanHazard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hazard row: %w", err)
		}
		hazards = append(hazards, hazard)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return hazards, nil
}

// GetHazard возвращает ловушку по id, сначала проверяя кеш
func (r *HazardRepository) GetHazard(ctx context.Context, id string) (*models.Hazard, error) {
	if !validID(id) {
		return nil, models.ErrNotFound
	}

	cached := &models.Hazard{}
	if r.cache.get(ctx, hazardCacheKey(id), cached) {
		return cached, nil
	}

	query := `SELECT ` + hazardColumns + `
		FROM hazards
		WHERE id = $1;
	`
	hazard, err := scanHazard(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hazard by id: %w", err)
	}

	r.cache.set(ctx, hazardCacheKey(id), hazard)
	return hazard, nil
}

// CreateHazard создает новую запись о ловушке и заполняет ID
func (r *HazardRepository) CreateHazard(ctx context.Context, hazard *models.Hazard) error {
	query := `
		INSERT INTO hazards (
			lat, lng, address, city, state, negligence_type, severity, description,
			image_url, evidence_links, status, reported_by, upvote_count, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, NULLIF($12, ''), $13, $14)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		hazard.Location.Lat,
		hazard.Location.Lng,
		hazard.Location.Address,
		hazard.Location.City,
		hazard.Location.State,
		string(hazard.NegligenceType),
		string(hazard.Severity),
		hazard.Description,
		hazard.ImageURL,
		hazard.EvidenceLinks,
		string(hazard.Status),
		hazard.ReportedBy,
		hazard.UpvoteCount,
		hazard.CreatedAt,
	).Scan(&hazard.ID)
	if err != nil {
		return fmt.Errorf("failed to create hazard: %w", err)
	}
	return nil
}

// UpvoteHazard засчитывает голос устройства и сбрасывает кеш ловушки
func (r *HazardRepository) UpvoteHazard(ctx context.Context, deviceID, id string) (int, error) {
	if !validID(id) {
		return 0, models.ErrNotFound
	}

	count, err := recordVote(ctx, r.db, "increment_hazard_upvote", deviceID, id)
	if err != nil {
		return 0, err
	}

	r.cache.invalidate(ctx, hazardCacheKey(id))
	return count, nil
}
