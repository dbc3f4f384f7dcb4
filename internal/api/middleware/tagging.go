package middleware

import (
	"net/http"

	"blog-v0/internal/tagging/domain"
)

// RequestTagger classifies a request; ok is false for untracked paths
type RequestTagger interface {
	Tag(r *http.Request) (domain.Tags, bool)
}

// Tagging attaches request tags to the context for the render-time metrics
// stage. It records nothing itself, and excluded paths pass through untouched.
func Tagging(tagger RequestTagger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tags, ok := tagger.Tag(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(domain.WithTags(r.Context(), tags)))
		})
	}
}
