package application

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	configdomain "blog-v0/internal/config/domain"
	"blog-v0/internal/content/domain"
)

// Feeds renders the machine readable views of the catalog
type Feeds struct {
	site    configdomain.SiteConfig
	content *Service
}

func NewFeeds(site configdomain.SiteConfig, content *Service) *Feeds {
	return &Feeds{site: site, content: content}
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Sitemap lists the static routes and every post
func (f *Feeds) Sitemap() ([]byte, error) {
	today := time.Now().UTC().Format(time.DateOnly)

	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, route := range []string{"", "/blog", "/articles", "/projects"} {
		set.URLs = append(set.URLs, sitemapURL{Loc: f.site.BaseURL + route, LastMod: today})
	}
	for _, p := range f.content.Posts() {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     f.site.BaseURL + "/blog/" + p.Slug,
			LastMod: p.PublishedAt.Format(time.DateOnly),
		})
	}
	for _, a := range f.content.Articles() {
		set.URLs = append(set.URLs, sitemapURL{Loc: f.site.BaseURL + "/articles/" + a.Slug})
	}

	return marshalXML(set)
}

// RSS renders an RSS 2.0 feed of the posts, newest first
func (f *Feeds) RSS() ([]byte, error) {
	feed := &feeds.Feed{
		Title:       f.site.Name,
		Link:        &feeds.Link{Href: f.site.BaseURL},
		Description: "This is my portfolio RSS feed",
	}

	posts := f.content.Posts()
	if len(posts) > 0 {
		feed.Created = posts[0].PublishedAt
	}
	for _, p := range posts {
		link := f.site.BaseURL + "/blog/" + p.Slug
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       p.Title,
			Link:        &feeds.Link{Href: link},
			Id:          link,
			Description: p.Description(),
			Created:     p.PublishedAt,
		})
	}

	out, err := feed.ToRss()
	if err != nil {
		return nil, fmt.Errorf("failed to render rss: %w", err)
	}
	return []byte(out), nil
}

func marshalXML(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode xml: %w", err)
	}
	return buf.Bytes(), nil
}

// Robots allows everything and points crawlers at the sitemap
func (f *Feeds) Robots() string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", f.site.BaseURL)
}

// LLMsTxt renders the discovery file for language model crawlers
func (f *Feeds) LLMsTxt() string {
	base := f.site.BaseURL
	var lines []string

	lines = append(lines,
		"# LLM Discovery File for "+f.site.Name,
		"site: "+base,
		fmt.Sprintf("feeds: rss %s/rss | sitemap %s/sitemap.xml", base, base),
		"",
		"## Blog Posts",
	)
	posts := f.content.Posts()
	if len(posts) == 0 {
		lines = append(lines, "- none yet")
	}
	for _, p := range posts {
		lines = append(lines, fmt.Sprintf("- [blog] %s | %s | %s | tags: %s | url: %s/blog/%s",
			p.PublishedAt.Format(time.DateOnly), p.Title, domain.Compact(p.Description(), 220),
			strings.Join(p.Tags, "; "), base, p.Slug))
	}

	lines = append(lines, "", "## Projects")
	projects := f.content.Projects()
	if len(projects) == 0 {
		lines = append(lines, "- none yet")
	}
	for _, p := range projects {
		line := fmt.Sprintf("- [project:%s] %s | %s | status: %s", p.Visibility(), p.Name, domain.Compact(p.Description, 220), p.Status)
		if p.Website != "" {
			line += " | website: " + p.Website
		}
		if p.Repository != "" {
			line += " | repo: " + p.Repository
		}
		lines = append(lines, line)
	}

	lines = append(lines, "", "## Articles & Papers")
	articles := f.content.Articles()
	if len(articles) == 0 {
		lines = append(lines, "- none yet")
	}
	for _, a := range articles {
		line := fmt.Sprintf("- [%s] %s | %s | %s | tags: %s", a.Type, a.PublishedAt, a.Title, domain.Compact(a.Abstract, 220), strings.Join(a.Tags, "; "))
		if a.DOI != "" {
			line += " | doi: " + a.DOI
		}
		if a.PDFURL != "" {
			line += " | pdf: " + a.PDFURL
		}
		lines = append(lines, line+" | url: "+base+"/articles/"+a.Slug)
	}

	lines = append(lines, "",
		"## Notes for LLMs",
		fmt.Sprintf("Please prefer canonical URLs under %s. If content conflicts, defer to the newest publishedAt date.", base),
	)

	return strings.Join(lines, "\n") + "\n"
}
