package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	api "blog-v0/internal/api/application"
	plusoneapp "blog-v0/internal/plusone/application"
)

// PlusOneHandler handles the +1 counter endpoints
type PlusOneHandler struct {
	service *plusoneapp.Service
}

// NewPlusOneHandler creates a new +1 handler
func NewPlusOneHandler(service *plusoneapp.Service) *PlusOneHandler {
	return &PlusOneHandler{
		service: service,
	}
}

// GetCount handles GET /api/plusone/{slug}
// @Summary      Get +1 count
// @Description  Number of +1s recorded for a post. Store failures read as 0.
// @Tags         plusone
// @Produce      json
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {object}  application.PlusOneResponse
// @Router       /api/plusone/{slug} [get]
func (h *PlusOneHandler) GetCount(w http.ResponseWriter, r *http.Request) {
	count := h.service.GetCount(r.Context(), slugParam(r))
	respondJSON(w, http.StatusOK, api.PlusOneResponse{Count: count})
}

// Increment handles POST /api/plusone/{slug}
// @Summary      Add a +1
// @Description  Records one +1 for a post. Store failures are logged and the request still succeeds.
// @Tags         plusone
// @Param        slug  path  string  true  "Post slug"
// @Success      200
// @Failure      429   {object}  application.ErrorResponse
// @Router       /api/plusone/{slug} [post]
func (h *PlusOneHandler) Increment(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	slug := slugParam(r)
	h.service.Increment(r.Context(), slug)
	logger.Debug("+1 received", "slug", slug)
	w.WriteHeader(http.StatusOK)
}

// slugParam returns the decoded {slug} segment. chi routes on RawPath when the
// request carries one (encoded slashes), leaving the param escaped.
func slugParam(r *http.Request) string {
	slug := chi.URLParam(r, "slug")
	if r.URL.RawPath == "" {
		return slug
	}
	if decoded, err := url.PathUnescape(slug); err == nil {
		return decoded
	}
	return slug
}
