package domain

import "strings"

type ContentType string

const (
	ContentBlog    ContentType = "blog"
	ContentArticle ContentType = "article"
	ContentProject ContentType = "project"
	ContentAPI     ContentType = "api"
	ContentPage    ContentType = "page"
)

var excludedPathPrefixes = []string{
	"/_next",
	"/api",
	"/metrics",
	"/health",
}

var staticExtensions = []string{
	".js",
	".css",
	".ico",
	".png",
	".jpg",
	".jpeg",
	".gif",
	".svg",
	".woff",
	".woff2",
	".ttf",
	".eot",
}

// Checked in order; first match wins.
var contentPrefixes = []struct {
	prefix      string
	contentType ContentType
}{
	{"/blog", ContentBlog},
	{"/articles", ContentArticle},
	{"/projects", ContentProject},
	{"/api", ContentAPI},
}

// ShouldExclude reports whether a raw request path is infrastructure or a
// static asset and therefore never tracked.
func ShouldExclude(path string) bool {
	for _, prefix := range excludedPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	lower := strings.ToLower(path)
	for _, ext := range staticExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}

	return false
}

// NormalizePath lowercases path and removes a single trailing slash, keeping "/" as is.
func NormalizePath(path string) string {
	normalized := strings.ToLower(path)
	if len(normalized) > 1 && strings.HasSuffix(normalized, "/") {
		normalized = normalized[:len(normalized)-1]
	}
	return normalized
}

func ContentTypeFor(path string) ContentType {
	for _, p := range contentPrefixes {
		if strings.HasPrefix(path, p.prefix) {
			return p.contentType
		}
	}
	return ContentPage
}
