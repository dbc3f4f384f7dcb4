package application

import (
	"net/http"
	"time"

	"blog-v0/internal/tagging/domain"
)

// Tagger classifies inbound requests for the metrics pipeline. It has no
// access to the metrics registry: recording happens later, at render time,
// from the Tags it produces.
type Tagger struct {
	ownDomains []string
	parser     domain.UserAgentParser
	bots       domain.BotDetector
	now        func() time.Time
}

// NewTagger creates a new request tagger
func NewTagger(ownDomains []string, parser domain.UserAgentParser, bots domain.BotDetector) *Tagger {
	if len(ownDomains) == 0 {
		ownDomains = domain.DefaultOwnDomains
	}
	return &Tagger{
		ownDomains: ownDomains,
		parser:     parser,
		bots:       bots,
		now:        time.Now,
	}
}

// Tag computes the request's tags. ok is false when the path is excluded
// from tracking, in which case nothing else is computed.
func (t *Tagger) Tag(r *http.Request) (tags domain.Tags, ok bool) {
	rawPath := r.URL.Path
	if domain.ShouldExclude(rawPath) {
		return domain.Tags{}, false
	}

	startedAt := t.now()
	path := domain.NormalizePath(rawPath)
	userAgent := r.UserAgent()
	agent := domain.DetectBrowserAndDevice(t.parser, userAgent)
	utmSource, utmMedium := domain.ExtractUTM(r.URL.Query())

	return domain.Tags{
		RawPath:     rawPath,
		Path:        path,
		Method:      r.Method,
		ContentType: string(domain.ContentTypeFor(path)),
		IsBot:       t.bots.IsBot(userAgent),
		Source:      domain.DetectSource(r.Referer(), t.ownDomains),
		UTMSource:   utmSource,
		UTMMedium:   utmMedium,
		Browser:     agent.Browser,
		Device:      agent.Device,
		StartedAt:   startedAt,
	}, true
}
