package infrastructure

import (
	"bytes"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"blog-v0/internal/metrics/domain"
)

// Ensure Registry implements the domain Sink interface
var _ domain.Sink = (*Registry)(nil)

const DefaultAppLabel = "victorbona-blog"

// ContentType of the payload produced by Encode.
const ContentType = string(expfmt.FmtText)

// Registry owns the process metrics: a Prometheus registry with the page
// view counter, the HTTP request counter and the page duration histogram.
type Registry struct {
	registry *prometheus.Registry
	labeled  prometheus.Registerer

	pageViews    *prometheus.CounterVec
	requests     *prometheus.CounterVec
	pageDuration *prometheus.HistogramVec
}

// NewRegistry builds a fresh registry. Every series carries app=<app>.
// Registering a metric name twice on the same registry panics.
func NewRegistry(app string) *Registry {
	if app == "" {
		app = DefaultAppLabel
	}

	reg := prometheus.NewRegistry()
	labeled := prometheus.WrapRegistererWith(prometheus.Labels{"app": app}, reg)
	labeled.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(labeled)

	return &Registry{
		registry: reg,
		labeled:  labeled,
		pageViews: factory.NewCounterVec(prometheus.CounterOpts{
			Name: domain.PageViewsName,
			Help: "Page views per eligible page render.",
		}, domain.PageViewLabelNames),
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: domain.HTTPRequestsName,
			Help: "Terminal HTTP outcomes by status code.",
		}, domain.HTTPRequestLabelNames),
		pageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    domain.PageDurationName,
			Help:    "Time from request tagging to page render completion.",
			Buckets: domain.PageDurationBuckets,
		}, domain.PageDurationLabelNames),
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, creating it on first use.
// Later calls return the same instance whatever app they pass.
func Default(app string) *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(app)
	})
	return defaultRegistry
}

func (r *Registry) RecordPageView(v domain.PageView) {
	r.pageViews.WithLabelValues(v.LabelValues()...).Inc()
}

func (r *Registry) RecordRequest(req domain.Request) {
	r.requests.WithLabelValues(req.LabelValues()...).Inc()
}

func (r *Registry) ObserveDuration(d domain.Duration) {
	r.pageDuration.WithLabelValues(d.LabelValues()...).Observe(d.Seconds)
}

// Gatherer exposes the underlying registry for scraping.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Registerer lets other components add their own collectors. Collectors
// registered through it carry the app label too.
func (r *Registry) Registerer() prometheus.Registerer {
	return r.labeled
}

// Encode gathers g and renders it in the Prometheus text format. On error
// nothing is returned, so callers never serve a partial scrape.
func Encode(g prometheus.Gatherer) ([]byte, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}
