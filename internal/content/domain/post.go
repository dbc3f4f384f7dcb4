package domain

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"
)

var ErrNotFound = errors.New("content not found")

const WordsPerMinute = 200

// Frontmatter is the metadata block at the top of a post file
type Frontmatter struct {
	Title       string  `yaml:"title"`
	PublishedAt string  `yaml:"publishedAt"`
	Summary     string  `yaml:"summary"`
	Tags        TagList `yaml:"tags"`
	Image       string  `yaml:"image"`
}

// Post is a blog post loaded from the content directory
type Post struct {
	Slug        string
	Title       string
	PublishedAt time.Time
	Summary     string
	Tags        []string
	Image       string
	// Body is the markdown source without frontmatter
	Body string
	// HTML is the rendered body
	HTML string
}

// ReadingTime returns whole minutes at WordsPerMinute, never less than 1 for non-empty text
func ReadingTime(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / WordsPerMinute))
}

func (p Post) ReadingMinutes() int {
	return ReadingTime(p.Body)
}

// HasTag matches tags case-insensitively
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Description is the summary, or the first non-empty body line compacted
func (p Post) Description() string {
	if p.Summary != "" {
		return p.Summary
	}
	for _, line := range strings.Split(p.Body, "\n") {
		if strings.TrimSpace(line) != "" {
			return Compact(line, 220)
		}
	}
	return ""
}

// SortNewestFirst orders posts by PublishedAt descending, then by slug
func SortNewestFirst(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].PublishedAt.Equal(posts[j].PublishedAt) {
			return posts[i].Slug < posts[j].Slug
		}
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
}

// FilterByTag keeps posts carrying tag, preserving order
func FilterByTag(posts []Post, tag string) []Post {
	var out []Post
	for _, p := range posts {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

// AllTags returns the distinct lowercased tags across posts, sorted
func AllTags(posts []Post) []string {
	seen := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			seen[strings.ToLower(t)] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// ParseDate accepts a date ("2024-01-31") or an RFC 3339 timestamp
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Compact collapses whitespace and truncates to limit runes with an ellipsis
func Compact(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	return strings.TrimRight(string(runes[:limit-1]), " ") + "…"
}
