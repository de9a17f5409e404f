package repository

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrSlugNotFound is returned when no business owns the slug.
	ErrSlugNotFound = errors.New("slug not found")
)

// SlugRepository manages slug ownership records.
type SlugRepository interface {
	// FindSlugOwner returns the business ID owning the slug.
	FindSlugOwner(ctx context.Context, slug string) (string, error)

	// ClaimSlug records the business as owner of the slug.
	ClaimSlug(ctx context.Context, slug, businessID string) error

	// ReleaseSlug deletes the ownership record of the slug.
	ReleaseSlug(ctx context.Context, slug string) error
}
