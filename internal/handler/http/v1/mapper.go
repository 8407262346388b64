package v1

import (
	"strings"
	"time"

	"github.com/shenikar/systemfailed/internal/format"
	"github.com/shenikar/systemfailed/internal/models"
	"github.com/shenikar/systemfailed/internal/stats"
)

// DTOToIncidentInput преобразует DTO подачи в вход сервиса
func DTOToIncidentInput(dto CreateIncidentRequest, photo *models.Photo) models.CreateIncidentInput {
	victims := make([]models.Victim, len(dto.Victims))
	for i, v := range dto.Victims {
		victims[i] = models.Victim{
			Name:       v.Name,
			Age:        v.Age,
			Occupation: v.Occupation,
			Outcome:    models.Outcome(v.Outcome),
		}
	}
	return models.CreateIncidentInput{
		Title:          dto.Title,
		Victims:        victims,
		DateOfIncident: dto.DateOfIncident,
		Address:        dto.Address,
		City:           dto.City,
		State:          dto.State,
		NegligenceType: models.NegligenceType(dto.NegligenceType),
		Agency:         dto.Agency,
		MLA:            dto.MLA,
		MP:             dto.MP,
		Description:    dto.Description,
		EvidenceLinks:  nonBlankLinks(dto.EvidenceLinks),
		Photo:          photo,
	}
}

// DTOToHazardInput преобразует DTO подачи ловушки в вход сервиса
func DTOToHazardInput(dto CreateHazardRequest, photo *models.Photo) models.CreateHazardInput {
	return models.CreateHazardInput{
		Address:        dto.Address,
		City:           dto.City,
		State:          dto.State,
		NegligenceType: models.NegligenceType(dto.NegligenceType),
		Severity:       models.HazardSeverity(dto.Severity),
		Description:    dto.Description,
		EvidenceLinks:  nonBlankLinks(dto.EvidenceLinks),
		ReportedBy:     dto.ReportedBy,
		Photo:          photo,
	}
}

// nonBlankLinks отбрасывает пустые строки формы, остальные ссылки принимаются как есть
func nonBlankLinks(links []string) []string {
	out := make([]string, 0, len(links))
	for _, link := range links {
		if link = strings.TrimSpace(link); link != "" {
			out = append(out, link)
		}
	}
	return out
}

func evidenceSources(links []string) []EvidenceSource {
	sources := make([]EvidenceSource, len(links))
	for i, link := range links {
		sources[i] = EvidenceSource{URL: link, Domain: format.ExtractDomain(link)}
	}
	return sources
}

// accountabilityChain раскладывает ответственных от ведомства до главы штата.
// Ведомство, MLA и MP показываются всегда, неизвестные помечаются как требующие расследования.
func accountabilityChain(e models.ResponsibleEntities) []AccountabilityLevel {
	chain := []AccountabilityLevel{{Role: "Agency", Name: models.Placeholder(e.Agency)}}
	if e.Ward != "" {
		chain = append(chain, AccountabilityLevel{Role: "Ward Councillor", Name: e.Ward})
	}
	chain = append(chain,
		AccountabilityLevel{Role: "MLA", Name: models.Placeholder(e.MLA)},
		AccountabilityLevel{Role: "MP", Name: models.Placeholder(e.MP)},
	)
	if e.CM != "" {
		chain = append(chain, AccountabilityLevel{Role: "Chief Minister", Name: e.CM})
	}
	return chain
}

// searchLinks строит ссылки поиска по первому пострадавшему с известным именем
func searchLinks(model *models.Incident) *SearchLinks {
	for _, v := range model.Victims {
		if v.Name == "" {
			continue
		}
		negligence := string(model.NegligenceType)
		return &SearchLinks{
			Google:  format.GoogleSearchURL(v.Name, model.Location.City, negligence),
			Twitter: format.TwitterSearchURL(v.Name, model.Location.City, negligence),
		}
	}
	return nil
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident, now time.Time) *IncidentResponse {
	victims := model.Victims
	if victims == nil {
		victims = []models.Victim{}
	}
	return &IncidentResponse{
		ID:                  model.ID,
		CaseID:              model.CaseID,
		Title:               model.Title,
		Victims:             victims,
		DateOfIncident:      model.DateOfIncident,
		Location:            model.Location,
		LocationLabel:       format.FormatLocation(model.Location.City, model.Location.State),
		NegligenceType:      string(model.NegligenceType),
		NegligenceLabel:     format.NegligenceLabel(string(model.NegligenceType)),
		ResponsibleEntities: model.ResponsibleEntities,
		Accountability:      accountabilityChain(model.ResponsibleEntities),
		Status:              string(model.Status),
		EvidenceLinks:       evidenceSources(model.EvidenceLinks),
		Description:         model.Description,
		ImageURL:            model.ImageURL,
		UpvoteCount:         model.UpvoteCount,
		VictimSummary:       stats.VictimSummary(model),
		VictimNames:         stats.VictimsList(model.Victims),
		TotalDeaths:         stats.TotalDeaths(model),
		TotalInjuries:       stats.TotalInjuries(model),
		Search:              searchLinks(model),
		CreatedAt:           model.CreatedAt,
		ReportedAgo:         format.RelativeTime(model.CreatedAt, now),
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident, now time.Time) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model, now)
	}
	return responses
}

func ModelToHazardResponse(model *models.Hazard, now time.Time) *HazardResponse {
	return &HazardResponse{
		ID:              model.ID,
		Location:        model.Location,
		LocationLabel:   format.FormatLocation(model.Location.City, model.Location.State),
		NegligenceType:  string(model.NegligenceType),
		NegligenceLabel: format.NegligenceLabel(string(model.NegligenceType)),
		Severity:        string(model.Severity),
		Description:     model.Description,
		ImageURL:        model.ImageURL,
		EvidenceLinks:   evidenceSources(model.EvidenceLinks),
		Status:          string(model.Status),
		ReportedBy:      model.ReportedBy,
		UpvoteCount:     model.UpvoteCount,
		CreatedAt:       model.CreatedAt,
		ReportedAgo:     format.RelativeTime(model.CreatedAt, now),
	}
}

func ModelsToHazardResponses(models []*models.Hazard, now time.Time) []*HazardResponse {
	responses := make([]*HazardResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToHazardResponse(model, now)
	}
	return responses
}

func ModelToStatsResponse(summary *models.Stats) *StatsResponse {
	return &StatsResponse{
		Incidents:       summary.Incidents,
		Hazards:         summary.Hazards,
		Deaths:          summary.Deaths,
		Injuries:        summary.Injuries,
		DeathsFormatted: format.FormatCount(summary.Deaths),
	}
}

func CountToResponse(count int) CountResponse {
	return CountResponse{Count: count, Formatted: format.FormatCount(count)}
}
