package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/shenikar/systemfailed/internal/config"
	"github.com/shenikar/systemfailed/internal/models"
	"github.com/shenikar/systemfailed/internal/stats"
	"github.com/shenikar/systemfailed/internal/webhook"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPageSize    = 10
	maxPageSize        = 100
	defaultMostUpvoted = 5
)

type reportService struct {
	backend    Backend
	engagement EngagementStore
	geocoder   Geocoder
	photos     PhotoStore
	publisher  webhook.WebhookPublisher
	logger     *logrus.Logger
	cfg        *config.Config

	now     func() time.Time
	caseSeq func() int
}

// NewReportService собирает фасад. photos может быть nil: тогда фото к отчётам не прикладываются.
func NewReportService(
	backend Backend,
	engagement EngagementStore,
	geocoder Geocoder,
	photos PhotoStore,
	publisher webhook.WebhookPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
) ReportService {
	return &reportService{
		backend:    backend,
		engagement: engagement,
		geocoder:   geocoder,
		photos:     photos,
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
		now:        time.Now,
		caseSeq:    func() int { return rand.IntN(999) + 1 },
	}
}

func (s *reportService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  method,
	})
}

// wrapBackend оставляет ErrNotFound и ErrAlreadyVoted как есть, остальное заворачивает в BackendError
func wrapBackend(op string, err error) error {
	if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrAlreadyVoted) {
		return err
	}
	var backendErr *models.BackendError
	if errors.As(err, &backendErr) {
		return err
	}
	return &models.BackendError{Op: op, Err: err}
}

// ListIncidents возвращает все инциденты от новых к старым
func (s *reportService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	log := s.log("ListIncidents")

	var incidents []*models.Incident
	err := s.withRetry(ctx, log, func() error {
		var err error
		incidents, err = s.backend.ListIncidents(ctx)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from backend")
		return nil, fmt.Errorf("service: could not list incidents: %w", wrapBackend("list incidents", err))
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// ListIncidentsPaginated возвращает страницу инцидентов; page считается с 1
func (s *reportService) ListIncidentsPaginated(ctx context.Context, page, pageSize int) (*models.Page[*models.Incident], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	// смещение последней страницы должно помещаться в int
	if lastPage := (math.MaxInt-pageSize)/pageSize + 1; page > lastPage {
		page = lastPage
	}

	log := s.log("ListIncidentsPaginated").WithFields(logrus.Fields{
		"page":      page,
		"page_size": pageSize,
	})

	from := (page - 1) * pageSize
	to := from + pageSize - 1

	var (
		items []*models.Incident
		total int
	)
	err := s.withRetry(ctx, log, func() error {
		var err error
		items, total, err = s.backend.ListIncidentsPage(ctx, from, pageSize)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Failed to list incidents page from backend")
		return nil, fmt.Errorf("service: could not list incidents page: %w", wrapBackend("list incidents page", err))
	}

	return &models.Page[*models.Incident]{
		Items:    items,
		Total:    total,
		HasMore:  to < total-1,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetIncident получает инцидент по ID
func (s *reportService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	log := s.log("GetIncident").WithField("incident_id", id)

	var incident *models.Incident
	err := s.withRetry(ctx, log, func() error {
		var err error
		incident, err = s.backend.GetIncident(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Debug("Incident not found")
		} else {
			log.WithError(err).Error("Failed to get incident from backend")
		}
		return nil, fmt.Errorf("service: could not get incident %s: %w", id, wrapBackend("get incident", err))
	}
	return incident, nil
}

// MostUpvoted возвращает самые поддержанные инциденты
func (s *reportService) MostUpvoted(ctx context.Context, limit int) ([]*models.Incident, error) {
	if limit < 1 {
		limit = defaultMostUpvoted
	}
	log := s.log("MostUpvoted").WithField("limit", limit)

	var incidents []*models.Incident
	err := s.withRetry(ctx, log, func() error {
		var err error
		incidents, err = s.backend.MostUpvotedIncidents(ctx, limit)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Failed to list most upvoted incidents")
		return nil, fmt.Errorf("service: could not list most upvoted incidents: %w", wrapBackend("most upvoted", err))
	}
	return incidents, nil
}

func (s *reportService) IncidentCount(ctx context.Context) (int, error) {
	log := s.log("IncidentCount")

	var count int
	err := s.withRetry(ctx, log, func() error {
		var err error
		count, err = s.backend.CountIncidents(ctx)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Failed to count incidents")
		return 0, fmt.Errorf("service: could not count incidents: %w", wrapBackend("count incidents", err))
	}
	return count, nil
}

// CreateIncident создает инцидент: параллельно загружает фото и геокодирует адрес, затем сохраняет
func (s *reportService) CreateIncident(ctx context.Context, input models.CreateIncidentInput) (*models.Incident, error) {
	log := s.log("CreateIncident").WithFields(logrus.Fields{
		"title": input.Title,
		"state": input.State,
	})
	log.Info("Attempting to create a new incident")

	ev, err := s.gatherEvidence(ctx, log, input.Photo, input.Address, input.City, input.State)
	if err != nil {
		log.WithError(err).Error("Failed to upload evidence photo")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	now := s.now()
	incident := &models.Incident{
		CaseID:         NewCaseID(input.State, now, s.caseSeq()),
		Title:          input.Title,
		Victims:        input.Victims,
		DateOfIncident: input.DateOfIncident,
		Location: models.Location{
			Lat:     ev.lat,
			Lng:     ev.lng,
			Address: input.Address,
			City:    input.City,
			State:   input.State,
		},
		NegligenceType: input.NegligenceType,
		ResponsibleEntities: models.ResponsibleEntities{
			Agency: input.Agency,
			MLA:    orUnknown(input.MLA),
			MP:     orUnknown(input.MP),
		},
		Status:        models.IncidentCommunityFlagged,
		EvidenceLinks: nonNilLinks(input.EvidenceLinks),
		Description:   input.Description,
		ImageURL:      ev.imageURL,
		UpvoteCount:   0,
		CreatedAt:     now,
	}

	if err := s.backend.CreateIncident(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in backend")
		return nil, fmt.Errorf("service: could not create incident: %w", wrapBackend("create incident", err))
	}

	log.WithFields(logrus.Fields{
		"incident_id": incident.ID,
		"case_id":     incident.CaseID,
	}).Info("Incident created successfully")

	s.notify(ctx, log, webhook.IncidentCreated(incident))
	return incident, nil
}

// CreateHazard создает ловушку, симметрично CreateIncident
func (s *reportService) CreateHazard(ctx context.Context, input models.CreateHazardInput) (*models.Hazard, error) {
	log := s.log("CreateHazard").WithFields(logrus.Fields{
		"severity": input.Severity,
		"state":    input.State,
	})
	log.Info("Attempting to create a new hazard")

	ev, err := s.gatherEvidence(ctx, log, input.Photo, input.Address, input.City, input.State)
	if err != nil {
		log.WithError(err).Error("Failed to upload evidence photo")
		return nil, fmt.Errorf("service: could not create hazard: %w", err)
	}

	hazard := &models.Hazard{
		Location: models.Location{
			Lat:     ev.lat,
			Lng:     ev.lng,
			Address: input.Address,
			City:    input.City,
			State:   input.State,
		},
		NegligenceType: input.NegligenceType,
		Severity:       input.Severity,
		Description:    input.Description,
		ImageURL:       ev.imageURL,
		EvidenceLinks:  nonNilLinks(input.EvidenceLinks),
		Status:         models.HazardReported,
		ReportedBy:     input.ReportedBy,
		UpvoteCount:    0,
		CreatedAt:      s.now(),
	}

	if err := s.backend.CreateHazard(ctx, hazard); err != nil {
		log.WithError(err).Error("Failed to create hazard in backend")
		return nil, fmt.Errorf("service: could not create hazard: %w", wrapBackend("create hazard", err))
	}

	log.WithField("hazard_id", hazard.ID).Info("Hazard created successfully")

	s.notify(ctx, log, webhook.HazardCreated(hazard))
	return hazard, nil
}

type evidence struct {
	imageURL string
	lat, lng float64
}

// gatherEvidence запускает загрузку фото и геокодирование одновременно, у каждого свой таймаут.
// Ошибка загрузки отменяет геокодирование; ошибки геокодера дают координаты (0,0).
func (s *reportService) gatherEvidence(ctx context.Context, log *logrus.Entry, photo *models.Photo, address, city, state string) (evidence, error) {
	var ev evidence
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if photo == nil {
			return nil
		}
		if s.photos == nil {
			log.Debug("Photo storage is not configured, skipping evidence photo")
			return nil
		}
		uploadCtx, cancel := context.WithTimeout(gctx, s.cfg.UploadTimeout)
		defer cancel()

		url, err := s.photos.Upload(uploadCtx, photo)
		if err != nil {
			return &models.BackendError{Op: "upload evidence photo", Err: err}
		}
		ev.imageURL = url
		return nil
	})

	g.Go(func() error {
		geoCtx, cancel := context.WithTimeout(gctx, s.cfg.GeocodeTimeout)
		defer cancel()

		lat, lng, err := s.geocoder.Geocode(geoCtx, address, city, state)
		if err != nil {
			log.WithError(err).Warn("Geocoding failed, using unresolved location")
			return nil
		}
		ev.lat, ev.lng = lat, lng
		return nil
	})

	if err := g.Wait(); err != nil {
		return evidence{}, err
	}
	return ev, nil
}

func (s *reportService) notify(ctx context.Context, log *logrus.Entry, event webhook.ReportEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish moderation event")
	}
}

func (s *reportService) UpvoteIncident(ctx context.Context, deviceID, id string) (int, error) {
	log := s.log("UpvoteIncident").WithFields(logrus.Fields{
		"incident_id": id,
		"device_id":   deviceID,
	})
	return s.upvote(ctx, log, deviceID, id, s.backend.UpvoteIncident)
}

func (s *reportService) UpvoteHazard(ctx context.Context, deviceID, id string) (int, error) {
	log := s.log("UpvoteHazard").WithFields(logrus.Fields{
		"hazard_id": id,
		"device_id": deviceID,
	})
	return s.upvote(ctx, log, deviceID, id, s.backend.UpvoteHazard)
}

// upvote сначала проверяет локальную отметку (без обращения к бэкенду), затем атомарно увеличивает счётчик.
// Запись не повторяется при сбоях: повтор мог бы засчитать голос дважды.
func (s *reportService) upvote(ctx context.Context, log *logrus.Entry, deviceID, id string, increment func(context.Context, string, string) (int, error)) (int, error) {
	voted, err := s.engagement.HasUpvoted(ctx, deviceID, id)
	if err != nil {
		log.WithError(err).Error("Failed to read engagement store")
		return 0, fmt.Errorf("service: could not upvote %s: %w", id, wrapBackend("read engagement", err))
	}
	if voted {
		log.Info("Device has already upvoted this report")
		return 0, fmt.Errorf("service: could not upvote %s: %w", id, models.ErrAlreadyVoted)
	}

	count, err := increment(ctx, deviceID, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrAlreadyVoted) {
			log.WithError(err).Info("Upvote rejected")
		} else {
			log.WithError(err).Error("Failed to increment upvote count")
		}
		return 0, fmt.Errorf("service: could not upvote %s: %w", id, wrapBackend("increment upvote", err))
	}

	if err := s.engagement.MarkUpvoted(ctx, deviceID, id); err != nil {
		// счётчик уже увеличен, повторный голос всё равно отсечёт бэкенд
		log.WithError(err).Warn("Failed to remember upvote for device")
	}

	log.WithField("upvote_count", count).Info("Upvote recorded")
	return count, nil
}

func (s *reportService) HasUpvoted(ctx context.Context, deviceID, reportID string) (bool, error) {
	voted, err := s.engagement.HasUpvoted(ctx, deviceID, reportID)
	if err != nil {
		s.log("HasUpvoted").WithError(err).Error("Failed to read engagement store")
		return false, fmt.Errorf("service: could not check upvote: %w", wrapBackend("read engagement", err))
	}
	return voted, nil
}

// ListHazards возвращает все ловушки от новых к старым
func (s *reportService) ListHazards(ctx context.Context) ([]*models.Hazard, error) {
	log := s.log("ListHazards")

	var hazards []*models.Hazard
	err := s.withRetry(ctx, log, func() error {
		var err error
		hazards, err = s.backend.ListHazards(ctx)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Failed to list hazards from backend")
		return nil, fmt.Errorf("service: could not list hazards: %w", wrapBackend("list hazards", err))
	}
	return hazards, nil
}

// GetHazard получает ловушку по ID
func (s *reportService) GetHazard(ctx context.Context, id string) (*models.Hazard, error) {
	log := s.log("GetHazard").WithField("hazard_id", id)

	var hazard *models.Hazard
	err := s.withRetry(ctx, log, func() error {
		var err error
		hazard, err = s.backend.GetHazard(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Debug("Hazard not found")
		} else {
			log.WithError(err).Error("Failed to get hazard from backend")
		}
		return nil, fmt.Errorf("service: could not get hazard %s: %w", id, wrapBackend("get hazard", err))
	}
	return hazard, nil
}

// Stats считает цифры для счётчика погибших на главной странице
func (s *reportService) Stats(ctx context.Context) (*models.Stats, error) {
	incidents, err := s.ListIncidents(ctx)
	if err != nil {
		return nil, err
	}
	hazards, err := s.ListHazards(ctx)
	if err != nil {
		return nil, err
	}
	summary := stats.Summarize(incidents, hazards)
	return &summary, nil
}

func orUnknown(value string) string {
	if value == "" {
		return models.UnknownEntity
	}
	return value
}

func nonNilLinks(links []string) []string {
	if links == nil {
		return []string{}
	}
	return links
}
