package models

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNotFound - запись с таким id отсутствует
	ErrNotFound = errors.New("report not found")
	// ErrAlreadyVoted - устройство уже голосовало за эту запись
	ErrAlreadyVoted = errors.New("already upvoted")
)

// BackendError оборачивает любой сбой хостингового бэкенда, хранилища или сети
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend: %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Page - страница списка. HasMore истинно, пока верхняя граница диапазона меньше total-1.
type Page[T any] struct {
	Items    []T  `json:"items"`
	Total    int  `json:"total"`
	HasMore  bool `json:"has_more"`
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
}

// Photo - необязательная фотография-доказательство, прикладываемая к отчёту
type Photo struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// CreateIncidentInput - данные формы подачи инцидента
type CreateIncidentInput struct {
	Title          string
	Victims        []Victim
	DateOfIncident string
	Address        string
	City           string
	State          string
	NegligenceType NegligenceType
	Agency         string
	MLA            string
	MP             string
	Description    string
	EvidenceLinks  []string
	Photo          *Photo
}

// CreateHazardInput - данные формы подачи "ловушки"
type CreateHazardInput struct {
	Address        string
	City           string
	State          string
	NegligenceType NegligenceType
	Severity       HazardSeverity
	Description    string
	EvidenceLinks  []string
	ReportedBy     string
	Photo          *Photo
}

// Stats - сводные цифры для счётчика на главной странице
type Stats struct {
	Incidents int `json:"incidents"`
	Hazards   int `json:"hazards"`
	Deaths    int `json:"deaths"`
	Injuries  int `json:"injuries"`
}
