package application

import (
	"context"
	"time"

	"blog-v0/internal/plusone/domain"
	sharedlogger "blog-v0/internal/shared/logger"
)

// Service reads and increments +1 counters. Counts are display data, so store
// failures are logged and degrade to defaults instead of reaching the caller.
type Service struct {
	logger  sharedlogger.Logger
	repo    domain.Repository
	timeout time.Duration
	now     func() time.Time
}

// NewService creates a like counter service. A zero timeout leaves store calls
// bound only by the caller's context.
func NewService(logger sharedlogger.Logger, repo domain.Repository, timeout time.Duration) *Service {
	return &Service{
		logger:  logger,
		repo:    repo,
		timeout: timeout,
		now:     time.Now,
	}
}

// GetCount returns the number of likes for slug, or 0 when the store fails
func (s *Service) GetCount(ctx context.Context, slug string) int64 {
	if err := domain.ValidateSlug(slug); err != nil {
		s.logger.Warn("Rejected like count lookup", "slug", slug, "err", err)
		return 0
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	count, err := s.repo.CountBySlug(ctx, slug)
	if err != nil {
		s.logger.Error("Failed to get like count", "slug", slug, "err", err)
		return 0
	}
	if count < 0 {
		return 0
	}
	return count
}

// Increment records one like for slug. Failures are logged and swallowed.
func (s *Service) Increment(ctx context.Context, slug string) {
	if err := domain.ValidateSlug(slug); err != nil {
		s.logger.Warn("Rejected like", "slug", slug, "err", err)
		return
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	if err := s.repo.Insert(ctx, slug, s.now()); err != nil {
		s.logger.Error("Failed to increment like count", "slug", slug, "err", err)
		return
	}
	s.logger.Debug("Recorded like", "slug", slug)
}

func (s *Service) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}
