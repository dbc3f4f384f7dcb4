package handlers

import (
	"net/http"

	contentapp "blog-v0/internal/content/application"
)

// FeedHandler serves the sitemap, RSS, robots.txt and llms.txt
type FeedHandler struct {
	feeds *contentapp.Feeds
}

func NewFeedHandler(feeds *contentapp.Feeds) *FeedHandler {
	return &FeedHandler{feeds: feeds}
}

func (h *FeedHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	h.writeXML(w, r, h.feeds.Sitemap, "application/xml; charset=utf-8")
}

func (h *FeedHandler) RSS(w http.ResponseWriter, r *http.Request) {
	h.writeXML(w, r, h.feeds.RSS, "application/rss+xml; charset=utf-8")
}

func (h *FeedHandler) writeXML(w http.ResponseWriter, r *http.Request, render func() ([]byte, error), contentType string) {
	body, err := render()
	if err != nil {
		getLogger(r).Error("Failed to render feed", "path", r.URL.Path, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *FeedHandler) Robots(w http.ResponseWriter, r *http.Request) {
	writeText(w, h.feeds.Robots())
}

func (h *FeedHandler) LLMsTxt(w http.ResponseWriter, r *http.Request) {
	writeText(w, h.feeds.LLMsTxt())
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
