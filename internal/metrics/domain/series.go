package domain

import (
	"strconv"

	"blog-v0/pkg/utils"
)

const (
	PageViewsName    = "page_views_total"
	HTTPRequestsName = "http_requests_total"
	PageDurationName = "page_duration_seconds"
)

var (
	PageViewLabelNames     = []string{"path", "method", "is_bot", "content_type", "source", "utm_source", "utm_medium", "browser", "device"}
	HTTPRequestLabelNames  = []string{"path", "method", "status_code", "content_type"}
	PageDurationLabelNames = []string{"path", "method", "content_type"}

	// PageDurationBuckets are upper bounds in seconds.
	PageDurationBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
)

// PageView is one eligible page render.
type PageView struct {
	Path        string
	Method      string
	IsBot       string // "true" or "false"
	ContentType string
	Source      string
	UTMSource   string
	UTMMedium   string
	Browser     string
	Device      string
}

// LabelValues returns the values in PageViewLabelNames order.
func (v PageView) LabelValues() []string {
	return []string{v.Path, v.Method, v.IsBot, v.ContentType, v.Source, v.UTMSource, v.UTMMedium, v.Browser, v.Device}
}

// Request is a terminal HTTP outcome.
type Request struct {
	Path        string
	Method      string
	StatusCode  int
	ContentType string
}

func (r Request) LabelValues() []string {
	return []string{r.Path, r.Method, strconv.Itoa(r.StatusCode), r.ContentType}
}

// Duration is the wall-clock time between tagging and render completion.
type Duration struct {
	Path        string
	Method      string
	ContentType string
	Seconds     float64
}

func (d Duration) LabelValues() []string {
	return []string{d.Path, d.Method, d.ContentType}
}

// NewSeriesID pairs a metric name with label names and values.
func NewSeriesID(name string, labelNames, labelValues []string) utils.SeriesID {
	labels := make(map[string]string, len(labelNames))
	for i, n := range labelNames {
		if i < len(labelValues) {
			labels[n] = labelValues[i]
		}
	}
	return utils.SeriesID{Name: name, Labels: labels}
}
