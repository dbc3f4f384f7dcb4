package domain

import (
	"context"
	"strconv"
	"time"
)

// Tags is the classification computed once per eligible request by the
// tagging middleware and read back by the render-time metrics stage.
type Tags struct {
	// RawPath is the request path as received, before normalization.
	RawPath     string
	Path        string
	Method      string
	ContentType string
	IsBot       bool
	Source      string
	UTMSource   string
	UTMMedium   string
	Browser     string
	Device      string
	StartedAt   time.Time
}

// IsBotLabel renders IsBot the way it is exported as a metric label.
func (t Tags) IsBotLabel() string {
	return strconv.FormatBool(t.IsBot)
}

type tagsKeyType struct{}

var tagsKey tagsKeyType = struct{}{}

// WithTags returns a copy of ctx carrying t.
func WithTags(ctx context.Context, t Tags) context.Context {
	return context.WithValue(ctx, tagsKey, t)
}

// TagsFromContext returns the tags attached by the middleware. ok is false
// when the request was excluded from tracking or never went through it.
func TagsFromContext(ctx context.Context) (Tags, bool) {
	t, ok := ctx.Value(tagsKey).(Tags)
	return t, ok
}
