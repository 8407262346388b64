package service

import (
	"context"

	"github.com/shenikar/systemfailed/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

// Backend определяет контракт стратегии хранения: хостинговая БД или демонстрационные данные.
// Стратегия выбирается один раз при старте и не меняется.
type Backend interface {
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	ListIncidentsPage(ctx context.Context, offset, limit int) ([]*models.Incident, int, error)
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	MostUpvotedIncidents(ctx context.Context, limit int) ([]*models.Incident, error)
	CountIncidents(ctx context.Context) (int, error)
	CreateIncident(ctx context.Context, incident *models.Incident) error
	UpvoteIncident(ctx context.Context, deviceID, id string) (int, error)

	ListHazards(ctx context.Context) ([]*models.Hazard, error)
	GetHazard(ctx context.Context, id string) (*models.Hazard, error)
	CreateHazard(ctx context.Context, hazard *models.Hazard) error
	UpvoteHazard(ctx context.Context, deviceID, id string) (int, error)
}

// EngagementStore - голоса устройства, сохраняемые между сессиями
type EngagementStore interface {
	HasUpvoted(ctx context.Context, deviceID, reportID string) (bool, error)
	MarkUpvoted(ctx context.Context, deviceID, reportID string) error
}

// Geocoder переводит адрес в координаты
type Geocoder interface {
	Geocode(ctx context.Context, address, city, state string) (float64, float64, error)
}

// PhotoStore загружает фото и возвращает публичную ссылку
type PhotoStore interface {
	Upload(ctx context.Context, photo *models.Photo) (string, error)
}

// ReportService определяет контракт фасада доступа к данным
type ReportService interface {
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	ListIncidentsPaginated(ctx context.Context, page, pageSize int) (*models.Page[*models.Incident], error)
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	MostUpvoted(ctx context.Context, limit int) ([]*models.Incident, error)
	IncidentCount(ctx context.Context) (int, error)
	CreateIncident(ctx context.Context, input models.CreateIncidentInput) (*models.Incident, error)
	UpvoteIncident(ctx context.Context, deviceID, id string) (int, error)

	ListHazards(ctx context.Context) ([]*models.Hazard, error)
	GetHazard(ctx context.Context, id string) (*models.Hazard, error)
	CreateHazard(ctx context.Context, input models.CreateHazardInput) (*models.Hazard, error)
	UpvoteHazard(ctx context.Context, deviceID, id string) (int, error)

	HasUpvoted(ctx context.Context, deviceID, reportID string) (bool, error)
	Stats(ctx context.Context) (*models.Stats, error)
}
