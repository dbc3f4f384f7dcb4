package domain

import "context"

// Repository loads the site content
type Repository interface {
	Load(ctx context.Context) (*Catalog, error)
}
