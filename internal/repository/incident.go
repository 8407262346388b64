package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/systemfailed/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const incidentColumns = `
	id,
	case_id,
	title,
	victims,
	COALESCE(date_of_incident::text, ''),
	lat,
	lng,
	address,
	city,
	state,
	negligence_type,
	responsible_entities,
	status,
	evidence_links,
	description,
	COALESCE(image_url, ''),
	upvote_count,
	created_at`

type IncidentRepository struct {
	db    DB
	cache recordCache
}

func NewIncidentRepository(db DB, redisClient *redis.Client, logger *logrus.Logger) *IncidentRepository {
	return &IncidentRepository{
		db:    db,
		cache: recordCache{redisClient: redisClient, logger: logger},
	}
}

func incidentCacheKey(id string) string {
	return fmt.Sprintf("incident:%s", id)
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.CaseID,
		&incident.Title,
		&incident.Victims,
		&incident.DateOfIncident,
		&incident.Location.Lat,
		&incident.Location.Lng,
		&incident.Location.Address,
		&incident.Location.City,
		&incident.Location.State,
		&incident.NegligenceType,
		&incident.ResponsibleEntities,
		&incident.Status,
		&incident.EvidenceLinks,
		&incident.Description,
		&incident.ImageURL,
		&incident.UpvoteCount,
		&incident.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if incident.EvidenceLinks == nil {
		incident.EvidenceLinks = []string{}
	}
	return incident, nil
}

func (r *IncidentRepository) queryIncidents(ctx context.Context, query string, args ...any) ([]*models.Incident, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// ListIncidents возвращает все инциденты от новых к старым
func (r *IncidentRepository) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + `
		FROM incidents
		ORDER BY created_at DESC;
	`
	return r.queryIncidents(ctx, query)
}

// ListIncidentsPage возвращает страницу инцидентов и общее количество; запросы выполняются параллельно
func (r *IncidentRepository) ListIncidentsPage(ctx context.Context, offset, limit int) ([]*models.Incident, int, error) {
	var (
		incidents []*models.Incident
		total     int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		query := `SELECT ` + incidentColumns + `
			FROM incidents
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2;
		`
		var err error
		incidents, err = r.queryIncidents(gctx, query, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = r.CountIncidents(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return incidents, total, nil
}

// GetIncident возвращает инцидент по id, сначала проверяя кеш
func (r *IncidentRepository) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	if !validID(id) {
		return nil, models.ErrNotFound
	}

	cached := &models.Incident{}
	if r.cache.get(ctx, incidentCacheKey(id), cached) {
		return cached, nil
	}

	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE id = $1;
	`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}

	r.cache.set(ctx, incidentCacheKey(id), incident)
	return incident, nil
}

// MostUpvotedIncidents возвращает limit инцидентов с наибольшим числом голосов
func (r *IncidentRepository) MostUpvotedIncidents(ctx context.Context, limit int) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + `
		FROM incidents
		ORDER BY upvote_count DESC, created_at DESC
		LIMIT $1;
	`
	return r.queryIncidents(ctx, query, limit)
}

func (r *IncidentRepository) CountIncidents(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM incidents;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count incidents: %w", err)
	}
	return count, nil
}

// CreateIncident создает новую запись об инциденте в бд и заполняет ID
func (r *IncidentRepository) CreateIncident(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (
			case_id, title, victims, date_of_incident, lat, lng, address, city, state,
			negligence_type, responsible_entities, status, evidence_links, description,
			image_url, upvote_count, created_at
		)
		VALUES ($1, $2, $3, NULLIF($4, '')::date, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NULLIF($15, ''), $16, $17)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		incident.CaseID,
		incident.Title,
		incident.Victims,
		incident.DateOfIncident,
		incident.Location.Lat,
		incident.Location.Lng,
		incident.Location.Address,
		incident.Location.City,
		incident.Location.State,
		string(incident.NegligenceType),
		incident.ResponsibleEntities,
		string(incident.Status),
		incident.EvidenceLinks,
		incident.Description,
		incident.ImageURL,
		incident.UpvoteCount,
		incident.CreatedAt,
	).Scan(&incident.ID)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// UpvoteIncident засчитывает голос устройства и сбрасывает кеш инцидента
func (r *IncidentRepository) UpvoteIncident(ctx context.Context, deviceID, id string) (int, error) {
	if !validID(id) {
		return 0, models.ErrNotFound
	}

	count, err := recordVote(ctx, r.db, "increment_upvote", deviceID, id)
	if err != nil {
		return 0, err
	}

	r.cache.invalidate(ctx, incidentCacheKey(id))
	return count, nil
}
