package infrastructure

import (
	"errors"
	"strings"

	"github.com/mileusna/useragent"
	"github.com/x-way/crawlerdetect"

	"blog-v0/internal/tagging/domain"
)

var ErrMalformedUserAgent = errors.New("user agent has no product/version token")

var tvMarkers = []string{
	"smart-tv",
	"smarttv",
	"googletv",
	"appletv",
	"hbbtv",
	"netcast",
	"crkey",
	"roku",
	"aftb",
	"afts",
}

// UserAgentParser implements domain.UserAgentParser on top of mileusna/useragent
type UserAgentParser struct{}

// NewUserAgentParser creates a new user agent parser
func NewUserAgentParser() domain.UserAgentParser {
	return &UserAgentParser{}
}

// Parse extracts the browser name and platform type from a User-Agent header
func (p *UserAgentParser) Parse(userAgent string) (domain.ParsedAgent, error) {
	if !strings.Contains(userAgent, "/") {
		return domain.ParsedAgent{}, ErrMalformedUserAgent
	}

	ua := useragent.Parse(userAgent)

	return domain.ParsedAgent{
		BrowserName:  ua.Name,
		PlatformType: platformType(ua),
	}, nil
}

func platformType(ua useragent.UserAgent) string {
	lower := strings.ToLower(ua.String)
	for _, marker := range tvMarkers {
		if strings.Contains(lower, marker) {
			return "tv"
		}
	}

	switch {
	case ua.Tablet:
		return "tablet"
	case ua.Mobile:
		return "mobile"
	case ua.Desktop:
		return "desktop"
	default:
		return ""
	}
}

// BotDetector implements domain.BotDetector using the crawlerdetect signature list
type BotDetector struct{}

// NewBotDetector creates a new crawler signature matcher
func NewBotDetector() domain.BotDetector {
	return &BotDetector{}
}

// IsBot reports whether userAgent matches a known crawler signature
func (d *BotDetector) IsBot(userAgent string) bool {
	if userAgent == "" {
		return false
	}
	return crawlerdetect.IsCrawler(userAgent)
}
