package infrastructure

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"blog-v0/internal/content/domain"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

const (
	postsDir     = "posts"
	articlesFile = "articles.yaml"
	projectsFile = "projects.yaml"
)

var frontmatterFence = []byte("---")

// FSRepository reads content from a directory tree:
//
//	posts/<slug>.md   markdown with a YAML frontmatter block
//	articles.yaml     list of articles
//	projects.yaml     list of projects
type FSRepository struct {
	fsys     fs.FS
	markdown goldmark.Markdown
}

func NewFSRepository(fsys fs.FS) *FSRepository {
	return &FSRepository{
		fsys:     fsys,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Load reads the whole tree. Missing catalog files yield empty lists.
func (r *FSRepository) Load(ctx context.Context) (*domain.Catalog, error) {
	posts, err := r.loadPosts(ctx)
	if err != nil {
		return nil, err
	}

	var articles []domain.Article
	if err := r.loadYAML(articlesFile, &articles); err != nil {
		return nil, err
	}

	var projects []domain.Project
	if err := r.loadYAML(projectsFile, &projects); err != nil {
		return nil, err
	}

	return &domain.Catalog{Posts: posts, Articles: articles, Projects: projects}, nil
}

func (r *FSRepository) loadPosts(ctx context.Context) ([]domain.Post, error) {
	entries, err := fs.ReadDir(r.fsys, postsDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	var posts []domain.Post
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ext := path.Ext(entry.Name())
		if entry.IsDir() || (ext != ".md" && ext != ".mdx") {
			continue
		}

		name := path.Join(postsDir, entry.Name())
		raw, err := fs.ReadFile(r.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		post, err := r.parsePost(strings.TrimSuffix(entry.Name(), ext), raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		posts = append(posts, post)
	}

	domain.SortNewestFirst(posts)
	return posts, nil
}

func (r *FSRepository) parsePost(slug string, raw []byte) (domain.Post, error) {
	header, body, err := splitFrontmatter(raw)
	if err != nil {
		return domain.Post{}, err
	}

	var fm domain.Frontmatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return domain.Post{}, fmt.Errorf("invalid frontmatter: %w", err)
	}
	if fm.Title == "" {
		return domain.Post{}, errors.New("frontmatter: title is required")
	}

	published, err := domain.ParseDate(fm.PublishedAt)
	if err != nil {
		return domain.Post{}, fmt.Errorf("frontmatter: invalid publishedAt %q", fm.PublishedAt)
	}

	var html bytes.Buffer
	if err := r.markdown.Convert(body, &html); err != nil {
		return domain.Post{}, fmt.Errorf("failed to render markdown: %w", err)
	}

	return domain.Post{
		Slug:        slug,
		Title:       fm.Title,
		PublishedAt: published,
		Summary:     fm.Summary,
		Tags:        fm.Tags,
		Image:       fm.Image,
		Body:        string(body),
		HTML:        html.String(),
	}, nil
}

// splitFrontmatter separates a leading ---/--- block from the document body
func splitFrontmatter(raw []byte) (header, body []byte, err error) {
	raw = bytes.TrimLeft(raw, "\ufeff \t\r\n")
	if !bytes.HasPrefix(raw, frontmatterFence) {
		return nil, nil, errors.New("missing frontmatter")
	}

	rest := raw[len(frontmatterFence):]
	end := bytes.Index(rest, append([]byte("\n"), frontmatterFence...))
	if end < 0 {
		return nil, nil, errors.New("unterminated frontmatter")
	}

	header = rest[:end]
	body = rest[end+1+len(frontmatterFence):]
	return header, bytes.TrimSpace(body), nil
}

func (r *FSRepository) loadYAML(name string, out any) error {
	raw, err := fs.ReadFile(r.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
