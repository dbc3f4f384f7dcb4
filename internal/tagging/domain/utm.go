package domain

import (
	"net/url"
	"strings"
)

const UTMMaxLength = 50

// ValidateUTM lowercases a campaign parameter and drops it when it is longer
// than UTMMaxLength or contains anything outside [a-z0-9_-].
func ValidateUTM(value string) string {
	if value == "" {
		return ""
	}

	normalized := strings.ToLower(value)
	if len(normalized) > UTMMaxLength {
		return ""
	}
	for i := 0; i < len(normalized); i++ {
		c := normalized[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' || c == '-' {
			continue
		}
		return ""
	}

	return normalized
}

// ExtractUTM reads utm_source and utm_medium from a query string.
func ExtractUTM(query url.Values) (source, medium string) {
	return ValidateUTM(query.Get("utm_source")), ValidateUTM(query.Get("utm_medium"))
}
