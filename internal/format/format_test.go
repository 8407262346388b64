package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, time.February, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"thirty minutes", 30 * time.Minute, "Just now"},
		{"five hours", 5 * time.Hour, "5h ago"},
		{"just under a day", 23*time.Hour + 59*time.Minute, "23h ago"},
		{"three days", 3 * 24 * time.Hour, "3d ago"},
		{"ten days", 10 * 24 * time.Hour, "10 Feb 2026"},
		{"future timestamp", -2 * time.Hour, "Just now"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(now.Add(-tt.ago), now))
		})
	}
}

func TestNegligenceLabel(t *testing.T) {
	assert.Equal(t, "Open Drain", NegligenceLabel("Open_Drain"))
	assert.Equal(t, "open pit", NegligenceLabel("open_pit"))
	assert.Equal(t, "Falling tree", NegligenceLabel("Falling tree"))
}

func TestSearchURLs(t *testing.T) {
	assert.Equal(t, "Kamal Janakpuri Open Pit death", SearchQuery("Kamal", "Janakpuri", "Open_Pit"))
	assert.Equal(t,
		"https://www.google.com/search?q=Kamal%20Janakpuri%20Open%20Pit%20death",
		GoogleSearchURL("Kamal", "Janakpuri", "Open_Pit"),
	)
	assert.Equal(t,
		"https://twitter.com/search?q=A%26B%20Delhi%20Pothole%20death&f=live",
		TwitterSearchURL("A&B", "Delhi", "Pothole"),
	)
	assert.Equal(t,
		"https://www.google.com/search?q=O'Brien%20(Jr)%20Pune%20Pothole%20death",
		GoogleSearchURL("O'Brien (Jr)", "Pune", "Pothole"),
	)
}

func TestEncodeComponent(t *testing.T) {
	assert.Equal(t, "a%2Bb%20c!*~", encodeComponent("a+b c!*~"))
	assert.Equal(t, "%D0%9C%D0%B8%D1%80", encodeComponent("Мир"))
}

func TestExtractDomain(t *testing.T) {
	assert.Equal(t, "ndtv.com", ExtractDomain("https://www.ndtv.com/x"))
	assert.Equal(t, "timesofindia.indiatimes.com", ExtractDomain("https://timesofindia.indiatimes.com/city/delhi"))
	assert.Equal(t, "example.org", ExtractDomain("http://example.org:8080/path"))
	assert.Equal(t, "not a url", ExtractDomain("not a url"))
	assert.Equal(t, "://broken", ExtractDomain("://broken"))
}

func TestFormatCountAndLocation(t *testing.T) {
	assert.Equal(t, "05", FormatCount(5))
	assert.Equal(t, "42", FormatCount(42))
	assert.Equal(t, "1,234", FormatCount(1234))
	assert.Equal(t, "Bengaluru, Karnataka", FormatLocation("Bengaluru", "Karnataka"))
}
