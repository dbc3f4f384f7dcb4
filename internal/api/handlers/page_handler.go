package handlers

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	configdomain "blog-v0/internal/config/domain"
	contentapp "blog-v0/internal/content/application"
	contentdomain "blog-v0/internal/content/domain"
	metricsapp "blog-v0/internal/metrics/application"
)

//go:embed templates/*.html
var templateFS embed.FS

const recentPosts = 5

var pageNames = []string{"home", "blog", "post", "tag", "articles", "article", "projects", "notfound"}

var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string { return t.Format("January 2, 2006") },
	"isoDate":    func(t time.Time) string { return t.Format(time.DateOnly) },
	"safeHTML":   func(s string) template.HTML { return template.HTML(s) },
	"lower":      strings.ToLower,
	"join":       strings.Join,
}

type pageData struct {
	Site  configdomain.SiteConfig
	Title string
	Data  any
}

// PageHandler renders the site pages. Each successful render is reported to
// the metrics recorder, which reads the request tags set by the middleware.
type PageHandler struct {
	site     configdomain.SiteConfig
	content  *contentapp.Service
	recorder *metricsapp.Recorder
	pages    map[string]*template.Template
}

// NewPageHandler parses the page templates
func NewPageHandler(site configdomain.SiteConfig, content *contentapp.Service, recorder *metricsapp.Recorder) (*PageHandler, error) {
	layout, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		base, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		page, err := base.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		pages[name] = page
	}

	return &PageHandler{
		site:     site,
		content:  content,
		recorder: recorder,
		pages:    pages,
	}, nil
}

// render writes the page and reports whether it was sent
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, name string, status int, title string, data any) bool {
	var buf bytes.Buffer
	err := h.pages[name].ExecuteTemplate(&buf, "layout", pageData{Site: h.site, Title: title, Data: data})
	if err != nil {
		getLogger(r).Error("Failed to render page", "page", name, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return false
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
	return true
}

func (h *PageHandler) renderPage(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	if h.render(w, r, name, http.StatusOK, title, data) {
		h.recorder.RecordPage(r.Context())
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	posts := h.content.Posts()
	if len(posts) > recentPosts {
		posts = posts[:recentPosts]
	}
	h.renderPage(w, r, "home", "", map[string]any{"Posts": posts})
}

// BlogIndex handles GET /blog
func (h *PageHandler) BlogIndex(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "blog", "Blog", map[string]any{
		"Posts": h.content.Posts(),
		"Tags":  h.content.Tags(),
	})
}

// BlogPost handles GET /blog/{slug}
func (h *PageHandler) BlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.content.Post(chi.URLParam(r, "slug"))
	if err != nil {
		h.notFoundOr500(w, r, err)
		return
	}
	h.renderPage(w, r, "post", post.Title, post)
}

// Tag handles GET /blog/tag/{tag}
func (h *PageHandler) Tag(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")
	posts, err := h.content.PostsByTag(tag)
	if err != nil {
		h.notFoundOr500(w, r, err)
		return
	}
	h.renderPage(w, r, "tag", "Tag: "+tag, map[string]any{"Tag": tag, "Posts": posts})
}

// Articles handles GET /articles
func (h *PageHandler) Articles(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "articles", "Articles", map[string]any{"Articles": h.content.Articles()})
}

// Article handles GET /articles/{slug}
func (h *PageHandler) Article(w http.ResponseWriter, r *http.Request) {
	article, err := h.content.Article(chi.URLParam(r, "slug"))
	if err != nil {
		h.notFoundOr500(w, r, err)
		return
	}
	h.renderPage(w, r, "article", article.Title, article)
}

// Projects handles GET /projects
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "projects", "Projects", map[string]any{"Projects": h.content.Projects()})
}

// NotFound renders the 404 page and counts it as a terminal request outcome
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.recorder.RecordNotFound(r.Context())
	h.render(w, r, "notfound", http.StatusNotFound, "Not Found", nil)
}

func (h *PageHandler) notFoundOr500(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, contentdomain.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	getLogger(r).Error("Failed to load content", "path", r.URL.Path, "err", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
