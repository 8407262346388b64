package models

import (
	"time"
)

// NegligenceType - категория причины. Кроме перечисленных значений допускается произвольный текст ("другое").
type NegligenceType string

const (
	NegligencePothole       NegligenceType = "Pothole"
	NegligenceOpenDrain     NegligenceType = "Open_Drain"
	NegligenceElectrocution NegligenceType = "Electrocution"
	NegligenceCollapse      NegligenceType = "Collapse"
	NegligenceOpenPit       NegligenceType = "Open_Pit"
)

type Outcome string

const (
	OutcomeDeath         Outcome = "Death"
	OutcomeSeriousInjury Outcome = "Serious_Injury"
)

type IncidentStatus string

const (
	IncidentVerified         IncidentStatus = "Verified"
	IncidentCommunityFlagged IncidentStatus = "Community_Flagged"
	IncidentOfficialDenial   IncidentStatus = "Official_Denial"
)

// Location - точка на карте и адрес в свободной форме.
// Координаты (0,0) означают, что адрес не удалось геокодировать.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"`
}

// Resolved возвращает false для сентинельных координат (0,0)
func (l Location) Resolved() bool {
	return l.Lat != 0 || l.Lng != 0
}

// Victim - пострадавший. Имя, возраст и род занятий могут быть неизвестны.
type Victim struct {
	Name       string  `json:"name,omitempty"`
	Age        int     `json:"age,omitempty"`
	Occupation string  `json:"occupation,omitempty"`
	Outcome    Outcome `json:"outcome"`
}

// UnknownEntity подставляется вместо незаполненных депутатов при создании инцидента
const UnknownEntity = "Unknown"

// ResponsibleEntities - цепочка ответственности от исполнителя работ до главы штата
type ResponsibleEntities struct {
	Agency string `json:"agency"`
	Ward   string `json:"ward,omitempty"`
	MLA    string `json:"mla,omitempty"`
	MP     string `json:"mp,omitempty"`
	CM     string `json:"cm,omitempty"`
}

// Placeholder возвращает значение или "Investigation Required", если звено цепочки не установлено
func Placeholder(value string) string {
	if value == "" {
		return "Investigation Required"
	}
	return value
}

type Incident struct {
	ID                  string              `json:"id"`
	CaseID              string              `json:"case_id"`
	Title               string              `json:"title"`
	Victims             []Victim            `json:"victims"`
	DateOfIncident      string              `json:"date_of_incident"`
	Location            Location            `json:"location"`
	NegligenceType      NegligenceType      `json:"negligence_type"`
	ResponsibleEntities ResponsibleEntities `json:"responsible_entities"`
	Status              IncidentStatus      `json:"status"`
	EvidenceLinks       []string            `json:"evidence_links"`
	Description         string              `json:"description"`
	ImageURL            string              `json:"image_url,omitempty"`
	UpvoteCount         int                 `json:"upvote_count"`
	CreatedAt           time.Time           `json:"created_at"`
}

// ReportID позволяет обрабатывать инциденты и ловушки одним кодом
func (i *Incident) ReportID() string { return i.ID }

// WithUpvotes возвращает копию с заменённым счётчиком голосов
func (i *Incident) WithUpvotes(count int) *Incident {
	c := *i
	c.UpvoteCount = count
	return &c
}

// Clone делает глубокую копию, чтобы вызывающий код не мог изменить общий набор данных
func (i *Incident) Clone() *Incident {
	c := *i
	c.Victims = append([]Victim(nil), i.Victims...)
	c.EvidenceLinks = append([]string{}, i.EvidenceLinks...)
	return &c
}
