package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SlugAvailability is the outcome of an availability check
type SlugAvailability struct {
	Slug      string               `json:"slug"`
	Available bool                 `json:"available"`
	Reason    entity.SlugRejection `json:"reason,omitempty"`
}

// SlugUsecase manages public vanity paths of storefronts
type SlugUsecase interface {
	// SetSlug atomically claims a slug for the business, releasing its previous one
	SetSlug(ctx context.Context, businessID, requested string) (string, error)

	// ClearSlug atomically releases the business's slug
	ClearSlug(ctx context.Context, businessID string) error

	// CheckAvailability normalizes and validates a slug and reports whether it is free
	CheckAvailability(ctx context.Context, requested string) (*SlugAvailability, error)

	// ResolveSlug returns the business owning a slug
	ResolveSlug(ctx context.Context, slug string) (string, error)
}
