// Package stats считает производные показатели по жертвам инцидентов.
package stats

import (
	"fmt"
	"strings"

	"github.com/shenikar/systemfailed/internal/models"
)

func countOutcome(incident *models.Incident, outcome models.Outcome) int {
	n := 0
	for _, v := range incident.Victims {
		if v.Outcome == outcome {
			n++
		}
	}
	return n
}

// TotalDeaths возвращает число погибших
func TotalDeaths(incident *models.Incident) int {
	return countOutcome(incident, models.OutcomeDeath)
}

// TotalInjuries возвращает число тяжело пострадавших
func TotalInjuries(incident *models.Incident) int {
	return countOutcome(incident, models.OutcomeSeriousInjury)
}

// VictimSummary формирует короткую подпись вида "3 victims • 2 deaths • 1 injured".
// Для единственной жертвы возвращается "1 death" или "1 injured".
func VictimSummary(incident *models.Incident) string {
	total := len(incident.Victims)
	deaths := TotalDeaths(incident)
	injuries := TotalInjuries(incident)

	if total == 1 {
		if deaths == 1 {
			return "1 death"
		}
		return "1 injured"
	}

	parts := []string{fmt.Sprintf("%d %s", total, plural(total, "victim"))}
	if deaths > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", deaths, plural(deaths, "death")))
	}
	if injuries > 0 {
		parts = append(parts, fmt.Sprintf("%d injured", injuries))
	}
	return strings.Join(parts, " • ")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// VictimsList перечисляет жертв через запятую: "Имя, возраст" или "Unknown victim"
func VictimsList(victims []models.Victim) string {
	names := make([]string, 0, len(victims))
	for _, v := range victims {
		if v.Name == "" {
			names = append(names, "Unknown victim")
			continue
		}
		if v.Age > 0 {
			names = append(names, fmt.Sprintf("%s, %d", v.Name, v.Age))
			continue
		}
		names = append(names, v.Name)
	}
	return strings.Join(names, ", ")
}

// Summarize собирает цифры для счётчика погибших
func Summarize(incidents []*models.Incident, hazards []*models.Hazard) models.Stats {
	s := models.Stats{
		Incidents: len(incidents),
		Hazards:   len(hazards),
	}
	for _, inc := range incidents {
		s.Deaths += TotalDeaths(inc)
		s.Injuries += TotalInjuries(inc)
	}
	return s
}
