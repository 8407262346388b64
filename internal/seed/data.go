package seed

import (
	"time"

	"github.com/shenikar/systemfailed/internal/models"
)

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// Hazards возвращает свежую копию демонстрационных ловушек
func Hazards() []*models.Hazard {
	return []*models.Hazard{
		{
			ID: "h1",
			Location: models.Location{
				Lat:     28.5921,
				Lng:     77.0460,
				Address: "Sector 6, Near Dwarka Metro Station",
				City:    "Dwarka, Delhi",
				State:   "Delhi",
			},
			NegligenceType: models.NegligenceOpenDrain,
			Severity:       models.SeverityCritical,
			Description: "Large uncovered manhole on a busy pedestrian path near Dwarka Sector 6 metro station. " +
				"No barricades or warning signs. Multiple near-misses reported by residents, especially dangerous " +
				"after dark with no street lighting.",
			EvidenceLinks: []string{"https://www.ndtv.com/delhi-news/uncovered-manholes-delhi-dwarka"},
			Status:        models.HazardVerified,
			ReportedBy:    "Anonymous",
			UpvoteCount:   7,
			CreatedAt:     mustTime("2026-02-06T14:00:00Z"),
		},
		{
			ID: "h2",
			Location: models.Location{
				Lat:     12.9352,
				Lng:     77.6245,
				Address: "1st Cross, Koramangala 4th Block",
				City:    "Bengaluru",
				State:   "Karnataka",
			},
			NegligenceType: models.NegligenceElectrocution,
			Severity:       models.SeverityHigh,
			Description: "Exposed high-voltage wires hanging at head height from a broken BESCOM transformer pole. " +
				"Sparks visible during rain. Residents have complained multiple times with no action taken.",
			EvidenceLinks: []string{},
			Status:        models.HazardReported,
			UpvoteCount:   3,
			CreatedAt:     mustTime("2026-02-05T09:30:00Z"),
		},
		{
			ID: "h3",
			Location: models.Location{
				Lat:     19.0632,
				Lng:     72.8358,
				Address: "Linking Road, near Shoppers Stop",
				City:    "Mumbai",
				State:   "Maharashtra",
			},
			NegligenceType: models.NegligencePothole,
			Severity:       models.SeverityHigh,
			Description: "Crater-sized pothole spanning half the lane on Linking Road. At least 3 feet deep and " +
				"filled with stagnant water, making it invisible to drivers. Several two-wheelers have crashed " +
				"here in the past week.",
			EvidenceLinks: []string{},
			Status:        models.HazardReported,
			UpvoteCount:   5,
			CreatedAt:     mustTime("2026-02-04T16:00:00Z"),
		},
	}
}

// Incidents возвращает свежую копию демонстрационных инцидентов
func Incidents() []*models.Incident {
	return []*models.Incident{
		{
			ID:     "1",
			CaseID: "DL-2026-001",
			Title:  "Bank Manager Falls Into Uncovered DJB Pit",
			Victims: []models.Victim{
				{Name: "Kamal Dhyani", Age: 25, Occupation: "HDFC Bank Assistant Manager", Outcome: models.OutcomeDeath},
			},
			DateOfIncident: "2026-02-06",
			Location: models.Location{
				Lat:     28.6303,
				Lng:     77.0825,
				Address: "Near Andhra School, Joginder Singh Marg",
				City:    "Janakpuri, Delhi",
				State:   "Delhi",
			},
			NegligenceType: models.NegligenceOpenPit,
			ResponsibleEntities: models.ResponsibleEntities{
				Agency: "Delhi Jal Board (DJB)",
				Ward:   "Janakpuri Ward",
				MLA:    models.UnknownEntity,
				MP:     models.UnknownEntity,
				CM:     "Chief Minister, Delhi",
			},
			Status: models.IncidentVerified,
			EvidenceLinks: []string{
				"https://www.ndtv.com/delhi-news/delhi-man-falls-into-15-foot-pit-dug-by-jal-board-dies-7670389",
				"https://timesofindia.indiatimes.com/city/delhi/25-year-old-banker-falls-into-15-foot-deep-djb-pit-in-delhis-janakpuri-dies/articleshow/128003498.cms",
			},
			Description: "A 25-year-old HDFC Bank Assistant Manager fell into a 15-foot deep pit dug by the Delhi " +
				"Jal Board (DJB) for construction work near Andhra School on Joginder Singh Marg in Janakpuri. " +
				"The pit had no barricades, warning signs, or lighting. He was returning home at night when he " +
				"fell in. He was pulled out and rushed to DDU Hospital but was declared dead on arrival. DJB had " +
				"left the pit open and unguarded despite it being on a public road.",
			ImageURL:    "/images/WhatsApp Image 2026-02-07 at 1.19.07 PM.jpeg",
			UpvoteCount: 12,
			CreatedAt:   mustTime("2026-02-07T08:00:00Z"),
		},
		{
			ID:     "2",
			CaseID: "DL-2026-002",
			Title:  "Biker Dies in Open DJB Pit, Police Argue Over Jurisdiction",
			Victims: []models.Victim{
				{Name: "Abhishek", Age: 28, Occupation: "Private Employee", Outcome: models.OutcomeDeath},
			},
			DateOfIncident: "2026-02-05",
			Location: models.Location{
				Lat:     28.6480,
				Lng:     77.2506,
				Address: "Shanti Van Area",
				City:    "Delhi",
				State:   "Delhi",
			},
			NegligenceType: models.NegligenceOpenPit,
			ResponsibleEntities: models.ResponsibleEntities{
				Agency: "Delhi Jal Board (DJB)",
				Ward:   "Civil Lines Ward",
				MLA:    models.UnknownEntity,
				MP:     models.UnknownEntity,
				CM:     "Chief Minister, Delhi",
			},
			Status: models.IncidentVerified,
			EvidenceLinks: []string{
				"https://timesofindia.indiatimes.com/city/delhi/after-noida-techies-death-delhi-biker-falls-into-pit-dies-family-spent-night-shuttling-between-police-stations/articleshow/127973494.cms",
			},
			Description: "Biker fell into an open Delhi Jal Board pit left without signage near Shanti Van. While " +
				"the victim lay dying, police from two stations argued over jurisdiction. The family spent the " +
				"night shuttling between stations instead of grieving.",
			UpvoteCount: 8,
			CreatedAt:   mustTime("2026-02-06T05:00:00Z"),
		},
		{
			ID:     "3",
			CaseID: "KA-2026-015",
			Title:  "Two-Wheeler Rider Killed After Hitting Pothole",
			Victims: []models.Victim{
				{Age: 45, Outcome: models.OutcomeDeath},
			},
			DateOfIncident: "2026-02-04",
			Location: models.Location{
				Lat:     12.9566,
				Lng:     77.7010,
				Address: "Outer Ring Road, Marathahalli",
				City:    "Bengaluru",
				State:   "Karnataka",
			},
			NegligenceType: models.NegligencePothole,
			ResponsibleEntities: models.ResponsibleEntities{
				Agency: "BBMP (Bruhat Bengaluru Mahanagara Palike)",
				Ward:   "Marathahalli Ward",
			},
			Status:        models.IncidentCommunityFlagged,
			EvidenceLinks: []string{},
			Description: "Two-wheeler rider lost control after hitting a large pothole on the Outer Ring Road. No " +
				"street lighting in the area. BBMP had been notified about the pothole weeks earlier.",
			UpvoteCount: 5,
			CreatedAt:   mustTime("2026-02-05T10:00:00Z"),
		},
	}
}
