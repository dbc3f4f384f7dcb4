package domain

import (
	"strings"
)

const (
	BrowserUnknown = "unknown"
	BrowserOther   = "other"
	DeviceUnknown  = "unknown"
)

// ParsedAgent is what a UserAgentParser extracts from a User-Agent header.
// Empty fields mean the parser could not tell.
type ParsedAgent struct {
	BrowserName  string
	PlatformType string
}

// UserAgentParser extracts browser and platform information from a raw User-Agent string.
type UserAgentParser interface {
	Parse(userAgent string) (ParsedAgent, error)
}

// BotDetector matches a User-Agent against known crawler signatures.
type BotDetector interface {
	IsBot(userAgent string) bool
}

// Agent is the normalized, low-cardinality view of a client used as metric labels.
type Agent struct {
	Browser string
	Device  string
}

var unknownAgent = Agent{Browser: BrowserUnknown, Device: DeviceUnknown}

var browserFamilies = map[string]string{
	"chrome":            "chrome",
	"firefox":           "firefox",
	"safari":            "safari",
	"mobile safari":     "safari",
	"microsoft edge":    "edge",
	"edge":              "edge",
	"opera":             "opera",
	"opera coast":       "opera",
	"opera mini":        "opera",
	"opera touch":       "opera",
	"samsung internet":  "samsung",
	"samsung browser":   "samsung",
	"vivaldi":           "vivaldi",
	"brave":             "brave",
	"chromium":          "chrome",
	"librewolf":         "firefox",
	"pale moon":         "firefox",
	"internet explorer": "ie",
}

var deviceTypes = map[string]bool{
	"desktop": true,
	"mobile":  true,
	"tablet":  true,
	"tv":      true,
}

// BrowserFamily collapses a parsed browser name into one of the fixed browser labels.
func BrowserFamily(name string) string {
	if name == "" {
		return BrowserUnknown
	}
	if family, ok := browserFamilies[strings.ToLower(name)]; ok {
		return family
	}
	return BrowserOther
}

// DetectBrowserAndDevice parses userAgent with p. Blank input, parser errors
// and parser panics all yield unknown/unknown.
func DetectBrowserAndDevice(p UserAgentParser, userAgent string) (agent Agent) {
	if strings.TrimSpace(userAgent) == "" {
		return unknownAgent
	}

	defer func() {
		if recover() != nil {
			agent = unknownAgent
		}
	}()

	parsed, err := p.Parse(userAgent)
	if err != nil {
		return unknownAgent
	}

	device := DeviceUnknown
	if deviceTypes[parsed.PlatformType] {
		device = parsed.PlatformType
	}

	return Agent{
		Browser: BrowserFamily(parsed.BrowserName),
		Device:  device,
	}
}
