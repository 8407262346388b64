// Package format содержит чистые функции форматирования для карточек и ссылок.
package format

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var indianPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatDate возвращает дату в коротком индийском формате: "6 Feb 2026"
func FormatDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}

// RelativeTime описывает давность события относительно now
func RelativeTime(t, now time.Time) string {
	hours := int(now.Sub(t).Hours())
	days := hours / 24

	switch {
	case hours < 1:
		return "Just now"
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	}
	return FormatDate(t)
}

// FormatLocation склеивает город и штат
func FormatLocation(city, state string) string {
	return city + ", " + state
}

// FormatCount печатает число с индийской группировкой разрядов и минимум двумя цифрами
func FormatCount(n int) string {
	return indianPrinter.Sprint(number.Decimal(n, number.MinIntegerDigits(2)))
}

// NegligenceLabel заменяет подчёркивания пробелами, регистр не трогает
func NegligenceLabel(negligenceType string) string {
	return strings.ReplaceAll(negligenceType, "_", " ")
}

// SearchQuery строит запрос для поиска новостей о жертве
func SearchQuery(victimName, city, negligenceType string) string {
	return fmt.Sprintf("%s %s %s death", victimName, city, NegligenceLabel(negligenceType))
}

// GoogleSearchURL возвращает ссылку на веб-поиск
func GoogleSearchURL(victimName, city, negligenceType string) string {
	return "https://www.google.com/search?q=" + encodeComponent(SearchQuery(victimName, city, negligenceType))
}

// TwitterSearchURL возвращает ссылку на живой поиск в соцсети
func TwitterSearchURL(victimName, city, negligenceType string) string {
	return "https://twitter.com/search?q=" + encodeComponent(SearchQuery(victimName, city, negligenceType)) + "&f=live"
}

// componentUnescaper возвращает символы, которые encodeURIComponent оставляет как есть.
// QueryEscape кодирует литеральный "+" как %2B, поэтому замена "+" на %20 безопасна.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// ExtractDomain возвращает хост без "www.". Для некорректного URL возвращает вход как есть.
func ExtractDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Hostname() == "" {
		return rawURL
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
