package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blog-v0/pkg/utils"
)

var ErrInvalidSlug = errors.New("invalid slug")

// Like is one +1 event. Rows are append-only and a slug may have any number of them.
type Like struct {
	ID        int64
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository defines the interface for like persistence
type Repository interface {
	CountBySlug(ctx context.Context, slug string) (int64, error)
	Insert(ctx context.Context, slug string, at time.Time) error
}

// ValidateSlug reports whether slug can key a like counter
func ValidateSlug(slug string) error {
	if err := utils.CheckSlug(slug); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSlug, err)
	}
	return nil
}
