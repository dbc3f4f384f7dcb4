package domain

import (
	"sort"
	"time"
)

// Article is a paper or long-form article listed in the articles catalog
type Article struct {
	Slug        string   `yaml:"slug"`
	Title       string   `yaml:"title"`
	Abstract    string   `yaml:"abstract"`
	Authors     []string `yaml:"authors"`
	PublishedAt string   `yaml:"publishedAt"`
	Journal     string   `yaml:"journal"`
	DOI         string   `yaml:"doi"`
	Tags        []string `yaml:"tags"`
	Type        string   `yaml:"type"`
	Status      string   `yaml:"status"`
	PDFURL      string   `yaml:"pdfUrl"`
}

// Published reports whether the article date is set and parseable
func (a Article) Published() (time.Time, bool) {
	t, err := ParseDate(a.PublishedAt)
	return t, err == nil
}

// SortArticlesNewestFirst orders by PublishedAt descending; undated entries go last
func SortArticlesNewestFirst(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		ti, oki := articles[i].Published()
		tj, okj := articles[j].Published()
		if oki != okj {
			return oki
		}
		return ti.After(tj)
	})
}

// Project is an entry of the projects catalog
type Project struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	LongDescription string   `yaml:"longDescription"`
	Repository      string   `yaml:"repository"`
	Website         string   `yaml:"website"`
	Tags            []string `yaml:"tags"`
	Status          string   `yaml:"status"`
	PubliclyShared  bool     `yaml:"publiclyShared"`
	License         string   `yaml:"license"`
	StartDate       string   `yaml:"startDate"`
}

func (p Project) Visibility() string {
	if p.PubliclyShared {
		return "public"
	}
	return "private"
}

// Catalog is everything the site publishes
type Catalog struct {
	Posts    []Post
	Articles []Article
	Projects []Project
}
