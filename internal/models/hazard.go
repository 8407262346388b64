package models

import "time"

type HazardSeverity string

const (
	SeverityLow      HazardSeverity = "Low"
	SeverityMedium   HazardSeverity = "Medium"
	SeverityHigh     HazardSeverity = "High"
	SeverityCritical HazardSeverity = "Critical"
)

type HazardStatus string

const (
	HazardReported HazardStatus = "Reported"
	HazardVerified HazardStatus = "Verified"
	HazardFixed    HazardStatus = "Fixed"
)

// Hazard - "ловушка": опасное место, где жертв пока нет
type Hazard struct {
	ID             string         `json:"id"`
	Location       Location       `json:"location"`
	NegligenceType NegligenceType `json:"negligence_type"`
	Severity       HazardSeverity `json:"severity"`
	Description    string         `json:"description"`
	ImageURL       string         `json:"image_url,omitempty"`
	EvidenceLinks  []string       `json:"evidence_links"`
	Status         HazardStatus   `json:"status"`
	ReportedBy     string         `json:"reported_by,omitempty"`
	UpvoteCount    int            `json:"upvote_count"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (h *Hazard) ReportID() string { return h.ID }

func (h *Hazard) WithUpvotes(count int) *Hazard {
	c := *h
	c.UpvoteCount = count
	return &c
}

func (h *Hazard) Clone() *Hazard {
	c := *h
	c.EvidenceLinks = append([]string{}, h.EvidenceLinks...)
	return &c
}
