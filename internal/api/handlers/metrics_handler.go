package handlers

import (
	"net/http"

	api "blog-v0/internal/api/application"
)

// MetricsHandler serves the Prometheus scrape endpoint
type MetricsHandler struct {
	service *api.MetricsService
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(service *api.MetricsService) *MetricsHandler {
	return &MetricsHandler{
		service: service,
	}
}

// Scrape handles GET /metrics
// @Summary      Prometheus metrics
// @Description  All registered metrics in the Prometheus text format
// @Tags         metrics
// @Produce      plain
// @Success      200  {string}  string
// @Failure      503  {string}  string
// @Router       /metrics [get]
func (h *MetricsHandler) Scrape(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	body, err := h.service.Scrape()
	if err != nil {
		logger.Error("Failed to gather metrics", "err", err)
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", h.service.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
