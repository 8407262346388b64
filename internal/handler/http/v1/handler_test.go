package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/systemfailed/internal/config"
	"github.com/shenikar/systemfailed/internal/models"
	"github.com/shenikar/systemfailed/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockReportService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockReportService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	handler := NewHandler(mockService, logger, &config.Config{})
	handler.now = func() time.Time { return testNow }

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validIncidentRequest() CreateIncidentRequest {
	return CreateIncidentRequest{
		Title:          "Scooter rider falls into open pit",
		Victims:        []VictimRequest{{Name: "Kamal", Age: 25, Outcome: "Death"}},
		DateOfIncident: "2026-03-01",
		Address:        "Janakpuri",
		City:           "New Delhi",
		State:          "Delhi",
		NegligenceType: "Open_Pit",
		Agency:         "Delhi Jal Board",
		EvidenceLinks:  []string{"https://www.ndtv.com/story"},
	}
}

func TestCreateIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := validIncidentRequest()

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input models.CreateIncidentInput) (*models.Incident, error) {
			assert.Nil(t, input.Photo)
			assert.Equal(t, models.OutcomeDeath, input.Victims[0].Outcome)
			return &models.Incident{
				ID:             "new-id",
				CaseID:         "DL-2026-101",
				Title:          input.Title,
				Victims:        input.Victims,
				Location:       models.Location{City: input.City, State: input.State},
				NegligenceType: input.NegligenceType,
				Status:         models.IncidentCommunityFlagged,
				EvidenceLinks:  input.EvidenceLinks,
				CreatedAt:      testNow.Add(-10 * time.Minute),
			}, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "new-id", resp.ID)
	assert.Equal(t, "DL-2026-101", resp.CaseID)
	assert.Equal(t, "1 death", resp.VictimSummary)
	assert.Equal(t, "Open Pit", resp.NegligenceLabel)
	assert.Equal(t, 1, resp.TotalDeaths)
	assert.Equal(t, "New Delhi, Delhi", resp.LocationLabel)
	assert.Equal(t, "Just now", resp.ReportedAgo)
	require.Len(t, resp.EvidenceLinks, 1)
	assert.Equal(t, "ndtv.com", resp.EvidenceLinks[0].Domain)
	require.NotNil(t, resp.Search)
	assert.Contains(t, resp.Search.Google, "Kamal%20New%20Delhi%20Open%20Pit%20death")
}

func TestCreateIncident_Multipart(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := validIncidentRequest()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	data, _ := json.Marshal(reqBody)
	require.NoError(t, writer.WriteField("data", string(data)))
	part, err := writer.CreateFormFile("photo", "pit.jpg")
	require.NoError(t, err)
	_, _ = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, writer.Close())

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input models.CreateIncidentInput) (*models.Incident, error) {
			require.NotNil(t, input.Photo)
			assert.Equal(t, "pit.jpg", input.Photo.Name)
			content, err := io.ReadAll(input.Photo.Body)
			require.NoError(t, err)
			assert.Equal(t, "jpeg-bytes", string(content))
			return &models.Incident{ID: "with-photo", ImageURL: "http://cdn/evidence/x.jpg"}, nil
		}).Times(1)

	req := httptest.NewRequest("POST", "/api/v1/incidents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "http://cdn/evidence/x.jpg")
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"title": "test"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := validIncidentRequest()
	reqBody.Victims = nil

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Victims' failed on the 'required' tag")
}

func TestCreateIncident_InvalidOutcome(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := validIncidentRequest()
	reqBody.Victims[0].Outcome = "Minor_Scratch"

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'Outcome' failed on the 'oneof' tag")
}

func TestCreateIncident_AcceptsLooseEvidenceLinks(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := validIncidentRequest()
	reqBody.EvidenceLinks = []string{"", "ndtv.com/story", "   "}

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input models.CreateIncidentInput) (*models.Incident, error) {
			assert.Equal(t, []string{"ndtv.com/story"}, input.EvidenceLinks)
			return &models.Incident{ID: "new-id", EvidenceLinks: input.EvidenceLinks, CreatedAt: testNow}, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.EvidenceLinks, 1)
	assert.Equal(t, "ndtv.com/story", resp.EvidenceLinks[0].Domain)
}

func TestCreateIncident_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(nil, &models.BackendError{Op: "upload evidence photo", Err: errors.New("denied")}).
		Times(1)

	bodyBytes, _ := json.Marshal(validIncidentRequest())
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "internal server error"}`, w.Body.String())
}

func TestListIncidents_Paginated(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListIncidentsPaginated(gomock.Any(), 2, 5).
		Return(&models.Page[*models.Incident]{
			Items:    []*models.Incident{{ID: "a"}, {ID: "b"}},
			Total:    12,
			HasMore:  true,
			Page:     2,
			PageSize: 5,
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?page=2&pageSize=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 12, resp.Total)
	assert.True(t, resp.HasMore)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 5, resp.PageSize)
}

func TestListIncidents_ReportsEffectivePageSize(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListIncidentsPaginated(gomock.Any(), 1, 500).
		Return(&models.Page[*models.Incident]{Total: 0, Page: 1, PageSize: 100}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?pageSize=500", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 100, resp.PageSize)
	assert.Equal(t, 1, resp.Page)
}

func TestListIncidents_All(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListIncidentsPaginated(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	mockService.EXPECT().
		ListIncidents(gomock.Any()).
		Return([]*models.Incident{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?all=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 3)
}

func TestListIncidents_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListIncidentsPaginated(gomock.Any(), 1, 10).
		Return(nil, fmt.Errorf("service: could not list incidents page: %w", &models.BackendError{Op: "list", Err: errors.New("timeout")})).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestTopAndCount(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().MostUpvoted(gomock.Any(), 3).Return([]*models.Incident{{ID: "top"}}, nil).Times(1)
	mockService.EXPECT().IncidentCount(gomock.Any()).Return(7, nil).Times(1)

	top := makeRequest(router, "GET", "/api/v1/incidents/top?limit=3", nil)
	count := makeRequest(router, "GET", "/api/v1/incidents/count", nil)

	assert.Equal(t, http.StatusOK, top.Code)
	assert.Contains(t, top.Body.String(), `"id":"top"`)
	assert.Equal(t, http.StatusOK, count.Code)
	assert.JSONEq(t, `{"count": 7, "formatted": "07"}`, count.Body.String())
}

func TestGetIncident_AccountabilityChain(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		GetIncident(gomock.Any(), "1").
		Return(&models.Incident{
			ID: "1",
			ResponsibleEntities: models.ResponsibleEntities{
				Agency: "BBMP",
				MLA:    "Shri R. Kumar",
				CM:     "Siddaramaiah",
			},
			CreatedAt: testNow,
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []AccountabilityLevel{
		{Role: "Agency", Name: "BBMP"},
		{Role: "MLA", Name: "Shri R. Kumar"},
		{Role: "MP", Name: "Investigation Required"},
		{Role: "Chief Minister", Name: "Siddaramaiah"},
	}, resp.Accountability)
	assert.Empty(t, resp.ResponsibleEntities.MP)
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		GetIncident(gomock.Any(), "missing").
		Return(nil, fmt.Errorf("service: could not get incident missing: %w", models.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "report not found")
}

func TestUpvoteIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UpvoteIncident(gomock.Any(), "device-1", "1").Return(42, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents/1/upvote", nil, map[string]string{"X-Device-ID": "device-1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"upvote_count": 42}`, w.Body.String())
}

func TestUpvoteIncident_MissingDevice(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UpvoteIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/incidents/1/upvote", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "X-Device-ID header required")
}

func TestUpvoteHazard_AlreadyVoted(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		UpvoteHazard(gomock.Any(), "device-1", "h1").
		Return(0, fmt.Errorf("service: could not upvote h1: %w", models.ErrAlreadyVoted)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/hazards/h1/upvote", nil, map[string]string{"X-Device-ID": "device-1"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already upvoted")
}

func TestCreateHazard_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateHazard(gomock.Any(), gomock.Any()).Times(0)

	reqBody := CreateHazardRequest{City: "Pune", State: "Maharashtra", NegligenceType: "Pothole", Severity: "Extreme"}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/hazards", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'Severity' failed on the 'oneof' tag")
}

func TestCreateHazard_DropsBlankEvidenceLinks(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		CreateHazard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input models.CreateHazardInput) (*models.Hazard, error) {
			assert.Equal(t, []string{"twitter.com/user/status/1"}, input.EvidenceLinks)
			return &models.Hazard{ID: "h-new", EvidenceLinks: input.EvidenceLinks, CreatedAt: testNow}, nil
		}).Times(1)

	reqBody := CreateHazardRequest{
		City:           "Pune",
		State:          "Maharashtra",
		NegligenceType: "Pothole",
		Severity:       "High",
		EvidenceLinks:  []string{"", "twitter.com/user/status/1"},
	}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/hazards", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateHazard_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		CreateHazard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input models.CreateHazardInput) (*models.Hazard, error) {
			return &models.Hazard{
				ID:             "h-new",
				Location:       models.Location{City: input.City, State: input.State},
				NegligenceType: input.NegligenceType,
				Severity:       input.Severity,
				Status:         models.HazardReported,
				EvidenceLinks:  []string{},
				CreatedAt:      testNow.Add(-3 * time.Hour),
			}, nil
		}).Times(1)

	reqBody := CreateHazardRequest{City: "Pune", State: "Maharashtra", NegligenceType: "Open_Drain", Severity: "High"}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/hazards", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp HazardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Open Drain", resp.NegligenceLabel)
	assert.Equal(t, "3h ago", resp.ReportedAgo)
	assert.Equal(t, "High", resp.Severity)
}

func TestListAndGetHazards(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListHazards(gomock.Any()).Return([]*models.Hazard{{ID: "h1"}, {ID: "h2"}}, nil).Times(1)
	mockService.EXPECT().GetHazard(gomock.Any(), "h2").Return(&models.Hazard{ID: "h2"}, nil).Times(1)

	list := makeRequest(router, "GET", "/api/v1/hazards", nil)
	one := makeRequest(router, "GET", "/api/v1/hazards/h2", nil)

	assert.Equal(t, http.StatusOK, list.Code)
	var hazards []HazardResponse
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &hazards))
	assert.Len(t, hazards, 2)
	assert.Equal(t, http.StatusOK, one.Code)
	assert.Contains(t, one.Body.String(), `"id":"h2"`)
}

func TestHasUpvoted(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().HasUpvoted(gomock.Any(), "device-1", "3").Return(true, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/3/upvoted", nil, map[string]string{"X-Device-ID": "device-1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"upvoted": true}`, w.Body.String())
}

func TestGetStats(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Stats(gomock.Any()).
		Return(&models.Stats{Incidents: 3, Hazards: 3, Deaths: 4, Injuries: 1}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"incidents": 3, "hazards": 3, "deaths": 4, "injuries": 1, "deaths_formatted": "04"}`, w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok", "mode": "seed"}`, w.Body.String())
}
