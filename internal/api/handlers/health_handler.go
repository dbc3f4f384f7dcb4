package handlers

import (
	"net/http"

	api "blog-v0/internal/api/application"
)

// Health handles GET /health
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  application.HealthResponse
// @Router       /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, api.HealthResponse{Status: "ok"})
}
