package v1

import (
	"time"

	"github.com/shenikar/systemfailed/internal/models"
)

// VictimRequest DTO пострадавшего
// @Description DTO пострадавшего
type VictimRequest struct {
	Name       string `json:"name,omitempty"`
	Age        int    `json:"age,omitempty"`
	Occupation string `json:"occupation,omitempty"`
	Outcome    string `json:"outcome" validate:"required,oneof=Death Serious_Injury"`
}

// CreateIncidentRequest DTO для подачи инцидента
// @Description DTO для подачи инцидента. В multipart-запросе передаётся JSON в поле data.
type CreateIncidentRequest struct {
	Title          string          `json:"title" validate:"required"`
	Victims        []VictimRequest `json:"victims" validate:"required,min=1,dive"`
	DateOfIncident string          `json:"date_of_incident" validate:"required,datetime=2006-01-02"`
	Address        string          `json:"address,omitempty"`
	City           string          `json:"city" validate:"required"`
	State          string          `json:"state" validate:"required"`
	NegligenceType string          `json:"negligence_type" validate:"required"`
	Agency         string          `json:"agency" validate:"required"`
	MLA            string          `json:"mla,omitempty"`
	MP             string          `json:"mp,omitempty"`
	Description    string          `json:"description,omitempty"`
	EvidenceLinks  []string        `json:"evidence_links,omitempty"`
}

// CreateHazardRequest DTO для подачи "ловушки"
// @Description DTO для подачи "ловушки". В multipart-запросе передаётся JSON в поле data.
type CreateHazardRequest struct {
	Address        string   `json:"address,omitempty"`
	City           string   `json:"city" validate:"required"`
	State          string   `json:"state" validate:"required"`
	NegligenceType string   `json:"negligence_type" validate:"required"`
	Severity       string   `json:"severity" validate:"required,oneof=Low Medium High Critical"`
	Description    string   `json:"description,omitempty"`
	EvidenceLinks  []string `json:"evidence_links,omitempty"`
	ReportedBy     string   `json:"reported_by,omitempty"`
}

// SearchLinks ссылки для поиска новостей о пострадавшем
type SearchLinks struct {
	Google  string `json:"google"`
	Twitter string `json:"twitter"`
}

// AccountabilityLevel звено цепочки ответственности для карточки инцидента
type AccountabilityLevel struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

// EvidenceSource ссылка-доказательство с доменом источника
type EvidenceSource struct {
	URL    string `json:"url"`
	Domain string `json:"domain"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                  string                     `json:"id"`
	CaseID              string                     `json:"case_id"`
	Title               string                     `json:"title"`
	Victims             []models.Victim            `json:"victims"`
	DateOfIncident      string                     `json:"date_of_incident"`
	Location            models.Location            `json:"location"`
	LocationLabel       string                     `json:"location_label"`
	NegligenceType      string                     `json:"negligence_type"`
	NegligenceLabel     string                     `json:"negligence_label"`
	ResponsibleEntities models.ResponsibleEntities `json:"responsible_entities"`
	Accountability      []AccountabilityLevel      `json:"accountability"`
	Status              string                     `json:"status"`
	EvidenceLinks       []EvidenceSource           `json:"evidence_links"`
	Description         string                     `json:"description"`
	ImageURL            string                     `json:"image_url,omitempty"`
	UpvoteCount         int                        `json:"upvote_count"`
	VictimSummary       string                     `json:"victim_summary"`
	VictimNames         string                     `json:"victim_names"`
	TotalDeaths         int                        `json:"total_deaths"`
	TotalInjuries       int                        `json:"total_injuries"`
	Search              *SearchLinks               `json:"search,omitempty"`
	CreatedAt           time.Time                  `json:"created_at"`
	ReportedAgo         string                     `json:"reported_ago"`
}

// HazardResponse DTO для ответа с информацией о ловушке
// @Description DTO для ответа с информацией о ловушке
type HazardResponse struct {
	ID              string           `json:"id"`
	Location        models.Location  `json:"location"`
	LocationLabel   string           `json:"location_label"`
	NegligenceType  string           `json:"negligence_type"`
	NegligenceLabel string           `json:"negligence_label"`
	Severity        string           `json:"severity"`
	Description     string           `json:"description"`
	ImageURL        string           `json:"image_url,omitempty"`
	EvidenceLinks   []EvidenceSource `json:"evidence_links"`
	Status          string           `json:"status"`
	ReportedBy      string           `json:"reported_by,omitempty"`
	UpvoteCount     int              `json:"upvote_count"`
	CreatedAt       time.Time        `json:"created_at"`
	ReportedAgo     string           `json:"reported_ago"`
}

// IncidentPageResponse DTO страницы инцидентов
// @Description DTO страницы инцидентов
type IncidentPageResponse struct {
	Items    []*IncidentResponse `json:"items"`
	Total    int                 `json:"total"`
	HasMore  bool                `json:"has_more"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

// CountResponse DTO количества инцидентов
type CountResponse struct {
	Count     int    `json:"count"`
	Formatted string `json:"formatted"`
}

// UpvoteResponse DTO ответа на голос
type UpvoteResponse struct {
	UpvoteCount int `json:"upvote_count"`
}

// UpvotedResponse DTO ответа "голосовало ли устройство"
type UpvotedResponse struct {
	Upvoted bool `json:"upvoted"`
}

// StatsResponse DTO для счётчика на главной странице
// @Description DTO для счётчика на главной странице
type StatsResponse struct {
	Incidents       int    `json:"incidents"`
	Hazards         int    `json:"hazards"`
	Deaths          int    `json:"deaths"`
	Injuries        int    `json:"injuries"`
	DeathsFormatted string `json:"deaths_formatted"`
}
