package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/systemfailed/internal/config"
	"github.com/shenikar/systemfailed/internal/models"
	"github.com/shenikar/systemfailed/internal/service"
	"github.com/sirupsen/logrus"
)

const maxPhotoSize = 10 << 20

var errPhotoTooLarge = errors.New("photo exceeds 10MB limit")

type Handler struct {
	reportService service.ReportService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
	now           func() time.Time
}

func NewHandler(reportService service.ReportService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		reportService: reportService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
		now:           time.Now,
	}
}

// respondError переводит ошибки сервиса в HTTP-статусы
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Info("Report not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
	case errors.Is(err, models.ErrAlreadyVoted):
		log.WithError(err).Info("Duplicate upvote rejected")
		c.JSON(http.StatusConflict, gin.H{"error": "already upvoted"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindReport читает тело подачи: JSON или multipart с полями data и photo.
// Возвращаемый close освобождает загруженный файл.
func bindReport(c *gin.Context, dest any) (*models.Photo, func(), error) {
	noop := func() {}
	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return nil, noop, c.ShouldBindJSON(dest)
	}

	if err := json.Unmarshal([]byte(c.PostForm("data")), dest); err != nil {
		return nil, noop, fmt.Errorf("invalid data field: %w", err)
	}

	header, err := c.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, noop, nil
		}
		return nil, noop, fmt.Errorf("invalid photo field: %w", err)
	}
	if header.Size > maxPhotoSize {
		return nil, noop, errPhotoTooLarge
	}

	return openPhoto(header)
}

func openPhoto(header *multipart.FileHeader) (*models.Photo, func(), error) {
	file, err := header.Open()
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to open photo: %w", err)
	}
	photo := &models.Photo{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}
	return photo, func() { _ = file.Close() }, nil
}

// @Summary List incidents
// @Description Paginated list of incidents, newest first. all=true returns every incident.
// @Tags Incidents
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param all query bool false "Return the full list"
// @Success 200 {object} IncidentPageResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	if c.Query("all") == "true" {
		incidents, err := h.reportService.ListIncidents(c.Request.Context())
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents, h.now()))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	result, err := h.reportService.ListIncidentsPaginated(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, IncidentPageResponse{
		Items:    ModelsToIncidentResponses(result.Items, h.now()),
		Total:    result.Total,
		HasMore:  result.HasMore,
		Page:     result.Page,
		PageSize: result.PageSize,
	})
}

// @Summary Most upvoted incidents
// @Tags Incidents
// @Produce json
// @Param limit query int false "Number of incidents" default(5)
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/top [get]
func (h *Handler) topIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "topIncidents")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	incidents, err := h.reportService.MostUpvoted(c.Request.Context(), limit)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents, h.now()))
}

// @Summary Incident count
// @Tags Incidents
// @Produce json
// @Success 200 {object} CountResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/count [get]
func (h *Handler) countIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "countIncidents")

	count, err := h.reportService.IncidentCount(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CountToResponse(count))
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.reportService.GetIncident(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident, h.now()))
}

// @Summary Report an incident
// @Description Submit a new incident. Accepts JSON, or multipart/form-data with a JSON "data" field and an optional "photo" file.
// @Tags Incidents
// @Accept json,mpfd
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident submission"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	photo, closePhoto, err := bindReport(c, &input)
	defer closePhoto()
	if err != nil {
		log.WithError(err).Warn("Failed to bind request")
		c.JSON(http.StatusBadRequest, gin.H{"error": requestError(err)})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.reportService.CreateIncident(c.Request.Context(), DTOToIncidentInput(input, photo))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident, h.now()))
}

// @Summary Upvote an incident
// @Description One upvote per device. Requires the X-Device-ID header.
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Param X-Device-ID header string true "Device identifier"
// @Success 200 {object} UpvoteResponse
// @Failure 400 {object} map[string]string "Missing device ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Already upvoted"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/upvote [post]
func (h *Handler) upvoteIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "upvoteIncident").WithField("id", id)

	count, err := h.reportService.UpvoteIncident(c.Request.Context(), deviceID(c), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, UpvoteResponse{UpvoteCount: count})
}

// @Summary List hazards
// @Tags Hazards
// @Produce json
// @Success 200 {array} HazardResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards [get]
func (h *Handler) listHazards(c *gin.Context) {
	log := h.logger.WithField("method", "listHazards")

	hazards, err := h.reportService.ListHazards(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToHazardResponses(hazards, h.now()))
}

// @Summary Get hazard by ID
// @Tags Hazards
// @Produce json
// @Param id path string true "Hazard ID"
// @Success 200 {object} HazardResponse
// @Failure 404 {object} map[string]string "Hazard not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/{id} [get]
func (h *Handler) getHazard(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getHazard").WithField("id", id)

	hazard, err := h.reportService.GetHazard(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToHazardResponse(hazard, h.now()))
}

// @Summary Report a hazard
// @Description Submit a new hazard. Accepts JSON, or multipart/form-data with a JSON "data" field and an optional "photo" file.
// @Tags Hazards
// @Accept json,mpfd
// @Produce json
// @Param hazard body CreateHazardRequest true "Hazard submission"
// @Success 201 {object} HazardResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards [post]
func (h *Handler) createHazard(c *gin.Context) {
	var input CreateHazardRequest
	log := h.logger.WithField("method", "createHazard")

	photo, closePhoto, err := bindReport(c, &input)
	defer closePhoto()
	if err != nil {
		log.WithError(err).Warn("Failed to bind request")
		c.JSON(http.StatusBadRequest, gin.H{"error": requestError(err)})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hazard, err := h.reportService.CreateHazard(c.Request.Context(), DTOToHazardInput(input, photo))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToHazardResponse(hazard, h.now()))
}

// @Summary Upvote a hazard
// @Description One upvote per device. Requires the X-Device-ID header.
// @Tags Hazards
// @Produce json
// @Param id path string true "Hazard ID"
// @Param X-Device-ID header string true "Device identifier"
// @Success 200 {object} UpvoteResponse
// @Failure 400 {object} map[string]string "Missing device ID"
// @Failure 404 {object} map[string]string "Hazard not found"
// @Failure 409 {object} map[string]string "Already upvoted"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/{id}/upvote [post]
func (h *Handler) upvoteHazard(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "upvoteHazard").WithField("id", id)

	count, err := h.reportService.UpvoteHazard(c.Request.Context(), deviceID(c), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, UpvoteResponse{UpvoteCount: count})
}

// @Summary Has this device upvoted a report
// @Tags Reports
// @Produce json
// @Param id path string true "Incident or hazard ID"
// @Param X-Device-ID header string true "Device identifier"
// @Success 200 {object} UpvotedResponse
// @Failure 400 {object} map[string]string "Missing device ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/upvoted [get]
func (h *Handler) hasUpvoted(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "hasUpvoted").WithField("id", id)

	voted, err := h.reportService.HasUpvoted(c.Request.Context(), deviceID(c), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, UpvotedResponse{Upvoted: voted})
}

// @Summary Death counter totals
// @Tags System
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	summary, err := h.reportService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStatsResponse(summary))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	mode := "backend"
	if h.cfg.SeedMode() {
		mode = "seed"
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "mode": mode})
}

func requestError(err error) string {
	if errors.Is(err, errPhotoTooLarge) {
		return err.Error()
	}
	return "invalid request body"
}
