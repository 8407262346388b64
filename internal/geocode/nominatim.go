// Package geocode переводит адрес в свободной форме в координаты через Nominatim-совместимый API.
package geocode

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// candidate - элемент ответа /search, координаты приходят строками
type candidate struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

type Nominatim struct {
	httpClient   *resty.Client
	countryCodes string
}

// NewNominatim создаёт клиента геокодера. Таймаут задаётся контекстом вызова.
func NewNominatim(baseURL, userAgent, countryCodes string, logger *logrus.Logger) *Nominatim {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetLogger(logger)

	return &Nominatim{
		httpClient:   client,
		countryCodes: countryCodes,
	}
}

// Geocode возвращает координаты первого совпадения. Пустой ответ даёт (0,0) без ошибки.
func (n *Nominatim) Geocode(ctx context.Context, address, city, state string) (float64, float64, error) {
	query := joinNonEmpty(", ", address, city, state)

	var candidates []candidate
	resp, err := n.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":            query,
			"format":       "json",
			"limit":        "1",
			"countrycodes": n.countryCodes,
		}).
		SetResult(&candidates).
		Get("/search")
	if err != nil {
		return 0, 0, fmt.Errorf("failed to call geocoding service: %w", err)
	}
	if resp.IsError() {
		return 0, 0, fmt.Errorf("geocoding service returned status %d", resp.StatusCode())
	}
	if len(candidates) == 0 {
		return 0, 0, nil
	}

	lat, err := strconv.ParseFloat(candidates[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse latitude %q: %w", candidates[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(candidates[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse longitude %q: %w", candidates[0].Lon, err)
	}
	return lat, lng, nil
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
