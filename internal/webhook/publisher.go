package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/systemfailed/internal/models"
)

const (
	webhookQueueKey = "webhook_events"
)

const (
	KindIncident = "incident"
	KindHazard   = "hazard"
)

// ReportEvent - уведомление модераторам о новом отчёте
type ReportEvent struct {
	Kind           string                `json:"kind"`
	ReportID       string                `json:"report_id"`
	CaseID         string                `json:"case_id,omitempty"`
	Title          string                `json:"title,omitempty"`
	NegligenceType models.NegligenceType `json:"negligence_type"`
	Severity       models.HazardSeverity `json:"severity,omitempty"`
	City           string                `json:"city"`
	State          string                `json:"state"`
	Geocoded       bool                  `json:"geocoded"`
	Timestamp      time.Time             `json:"timestamp"`
}

// IncidentCreated собирает событие по новому инциденту
func IncidentCreated(incident *models.Incident) ReportEvent {
	return ReportEvent{
		Kind:           KindIncident,
		ReportID:       incident.ID,
		CaseID:         incident.CaseID,
		Title:          incident.Title,
		NegligenceType: incident.NegligenceType,
		City:           incident.Location.City,
		State:          incident.Location.State,
		Geocoded:       incident.Location.Resolved(),
		Timestamp:      incident.CreatedAt,
	}
}

// HazardCreated собирает событие по новой ловушке
func HazardCreated(hazard *models.Hazard) ReportEvent {
	return ReportEvent{
		Kind:           KindHazard,
		ReportID:       hazard.ID,
		NegligenceType: hazard.NegligenceType,
		Severity:       hazard.Severity,
		City:           hazard.Location.City,
		State:          hazard.Location.State,
		Geocoded:       hazard.Location.Resolved(),
		Timestamp:      hazard.CreatedAt,
	}
}

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event ReportEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event ReportEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
