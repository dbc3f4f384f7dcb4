package application

import (
	"context"
	"fmt"
	"sync"

	"blog-v0/internal/content/domain"
	sharedlogger "blog-v0/internal/shared/logger"
)

// Service serves content from an in-memory catalog loaded from the repository
type Service struct {
	logger sharedlogger.Logger
	repo   domain.Repository

	mu      sync.RWMutex
	catalog *domain.Catalog
}

func NewService(logger sharedlogger.Logger, repo domain.Repository) *Service {
	return &Service{
		logger:  logger,
		repo:    repo,
		catalog: &domain.Catalog{},
	}
}

// Load (re)reads the catalog. On failure the previous catalog stays in place.
func (s *Service) Load(ctx context.Context) error {
	catalog, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	s.logger.Info("Content loaded",
		"posts", len(catalog.Posts),
		"articles", len(catalog.Articles),
		"projects", len(catalog.Projects),
	)
	return nil
}

func (s *Service) current() *domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Posts returns all posts, newest first
func (s *Service) Posts() []domain.Post {
	return s.current().Posts
}

func (s *Service) Post(slug string) (domain.Post, error) {
	for _, p := range s.current().Posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.Post{}, fmt.Errorf("post %q: %w", slug, domain.ErrNotFound)
}

// PostsByTag returns ErrNotFound when no post carries tag
func (s *Service) PostsByTag(tag string) ([]domain.Post, error) {
	posts := domain.FilterByTag(s.current().Posts, tag)
	if len(posts) == 0 {
		return nil, fmt.Errorf("tag %q: %w", tag, domain.ErrNotFound)
	}
	return posts, nil
}

func (s *Service) Tags() []string {
	return domain.AllTags(s.current().Posts)
}

// Articles returns articles newest first
func (s *Service) Articles() []domain.Article {
	articles := append([]domain.Article(nil), s.current().Articles...)
	domain.SortArticlesNewestFirst(articles)
	return articles
}

func (s *Service) Article(slug string) (domain.Article, error) {
	for _, a := range s.current().Articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return domain.Article{}, fmt.Errorf("article %q: %w", slug, domain.ErrNotFound)
}

func (s *Service) Projects() []domain.Project {
	return s.current().Projects
}
