package application

import (
	"context"
	"net/http"
	"time"

	"blog-v0/internal/metrics/domain"
	sharedlogger "blog-v0/internal/shared/logger"
	taggingdomain "blog-v0/internal/tagging/domain"
)

const notFoundPath = "/not_found"

// Recorder is the render-time half of request tagging: it reads the Tags
// attached by the middleware and turns them into metric observations.
// Recording never fails the caller; a misbehaving sink is logged and ignored.
type Recorder struct {
	logger sharedlogger.Logger
	sink   domain.Sink
	now    func() time.Time
}

// NewRecorder creates a new render-time metrics recorder
func NewRecorder(logger sharedlogger.Logger, sink domain.Sink) *Recorder {
	return &Recorder{
		logger: logger,
		sink:   sink,
		now:    time.Now,
	}
}

// RecordPage records one successful page render: a page view, the render
// duration and a 200 request outcome. Untagged requests are ignored.
func (r *Recorder) RecordPage(ctx context.Context) {
	defer r.recoverPanic("page")

	tags, ok := taggingdomain.TagsFromContext(ctx)
	if !ok {
		return
	}

	view := domain.PageView{
		Path:        tags.Path,
		Method:      tags.Method,
		IsBot:       tags.IsBotLabel(),
		ContentType: tags.ContentType,
		Source:      tags.Source,
		UTMSource:   tags.UTMSource,
		UTMMedium:   tags.UTMMedium,
		Browser:     tags.Browser,
		Device:      tags.Device,
	}
	r.sink.RecordPageView(view)

	if !tags.StartedAt.IsZero() {
		r.sink.ObserveDuration(domain.Duration{
			Path:        tags.Path,
			Method:      tags.Method,
			ContentType: tags.ContentType,
			Seconds:     r.now().Sub(tags.StartedAt).Seconds(),
		})
	}

	r.sink.RecordRequest(domain.Request{
		Path:        tags.Path,
		Method:      tags.Method,
		StatusCode:  http.StatusOK,
		ContentType: tags.ContentType,
	})

	r.logger.Debug("Recorded page view",
		"series", domain.NewSeriesID(domain.PageViewsName, domain.PageViewLabelNames, view.LabelValues()).Canonical())
}

// RecordNotFound counts a 404 under the path as requested, falling back to the
// normalized path and then to a fixed placeholder for untagged requests.
func (r *Recorder) RecordNotFound(ctx context.Context) {
	defer r.recoverPanic("not_found")

	path := notFoundPath
	method := http.MethodGet
	contentType := string(taggingdomain.ContentTypeFor(path))
	if tags, ok := taggingdomain.TagsFromContext(ctx); ok {
		path = tags.RawPath
		if path == "" {
			path = tags.Path
		}
		method = tags.Method
		contentType = tags.ContentType
	}

	req := domain.Request{
		Path:        path,
		Method:      method,
		StatusCode:  http.StatusNotFound,
		ContentType: contentType,
	}
	r.sink.RecordRequest(req)

	r.logger.Debug("Recorded not found",
		"series", domain.NewSeriesID(domain.HTTPRequestsName, domain.HTTPRequestLabelNames, req.LabelValues()).Canonical())
}

func (r *Recorder) recoverPanic(stage string) {
	if rec := recover(); rec != nil {
		r.logger.Error("Metrics recording failed", "stage", stage, "panic", rec)
	}
}
