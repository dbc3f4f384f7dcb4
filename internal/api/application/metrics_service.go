package application

import (
	metricsinfra "blog-v0/internal/metrics/infrastructure"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsService serves scrapes of the metrics registry
type MetricsService struct {
	gatherer prometheus.Gatherer
}

// NewMetricsService creates a new metrics scrape service
func NewMetricsService(gatherer prometheus.Gatherer) *MetricsService {
	return &MetricsService{
		gatherer: gatherer,
	}
}

// Scrape gathers every registered metric and encodes it in the text
// exposition format. Nothing is returned unless the whole scrape succeeds.
func (s *MetricsService) Scrape() ([]byte, error) {
	return metricsinfra.Encode(s.gatherer)
}

// ContentType is the media type of Scrape's output
func (s *MetricsService) ContentType() string {
	return metricsinfra.ContentType
}
