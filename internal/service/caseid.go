package service

import (
	"fmt"
	"strings"
	"time"
)

// stateCodes - коды штатов и союзных территорий Индии (как в номерах автомобилей)
var stateCodes = map[string]string{
	"andaman and nicobar islands": "AN",
	"andhra pradesh":              "AP",
	"arunachal pradesh":           "AR",
	"assam":                       "AS",
	"bihar":                       "BR",
	"chandigarh":                  "CH",
	"chhattisgarh":                "CG",
	"dadra and nagar haveli and daman and diu": "DD",
	"delhi":             "DL",
	"goa":               "GA",
	"gujarat":           "GJ",
	"haryana":           "HR",
	"himachal pradesh":  "HP",
	"jammu and kashmir": "JK",
	"jharkhand":         "JH",
	"karnataka":         "KA",
	"kerala":            "KL",
	"ladakh":            "LA",
	"lakshadweep":       "LD",
	"madhya pradesh":    "MP",
	"maharashtra":       "MH",
	"manipur":           "MN",
	"meghalaya":         "ML",
	"mizoram":           "MZ",
	"nagaland":          "NL",
	"odisha":            "OD",
	"puducherry":        "PY",
	"punjab":            "PB",
	"rajasthan":         "RJ",
	"sikkim":            "SK",
	"tamil nadu":        "TN",
	"telangana":         "TS",
	"tripura":           "TR",
	"uttar pradesh":     "UP",
	"uttarakhand":       "UK",
	"west bengal":       "WB",
}

// StateCode возвращает двухбуквенный код штата. Для неизвестного штата - первые две буквы в верхнем регистре.
func StateCode(state string) string {
	normalized := strings.ToLower(strings.TrimSpace(state))
	if code, ok := stateCodes[normalized]; ok {
		return code
	}
	runes := []rune(strings.ToUpper(strings.TrimSpace(state)))
	return string(runes[:min(2, len(runes))])
}

// NewCaseID формирует номер дела "<код штата>-<год>-<порядковый номер>".
// seq случайный, поэтому уникальность не гарантируется.
func NewCaseID(state string, now time.Time, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", StateCode(state), now.Year(), seq)
}
