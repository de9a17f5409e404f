package firestore

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	gfirestore "cloud.google.com/go/firestore"
)

// slugRepository stores one 'slugs/{slug}' document per claimed slug.
type slugRepository struct {
	sess session
}

// NewSlugRepository is the constructor for slugRepository.
func NewSlugRepository(client *gfirestore.Client) repository.SlugRepository {
	return &slugRepository{sess: session{client: client}}
}

func (repo *slugRepository) doc(slug string) *gfirestore.DocumentRef {
	return repo.sess.client.Collection(model.CollectionSlugs).Doc(slug)
}

// FindSlugOwner returns the business ID recorded for the slug.
func (repo *slugRepository) FindSlugOwner(ctx context.Context, slug string) (string, error) {
	snap, err := repo.sess.get(ctx, repo.doc(slug))
	if err != nil {
		if isNotFound(err) {
			return "", repository.ErrSlugNotFound
		}

		return "", errors.Wrap(err, "failed to find slug")
	}

	var slugM model.SlugModel
	if err := snap.DataTo(&slugM); err != nil {
		return "", errors.Wrap(err, "failed to decode slug")
	}
	if slugM.BusinessID == "" {
		return "", repository.ErrSlugNotFound
	}

	return slugM.BusinessID, nil
}

// ClaimSlug writes the ownership record.
func (repo *slugRepository) ClaimSlug(ctx context.Context, slug, businessID string) error {
	err := repo.sess.set(ctx, repo.doc(slug), map[string]any{
		"businessId":         businessID,
		model.FieldCreatedAt: gfirestore.ServerTimestamp,
	})

	return errors.Wrap(err, "failed to claim slug")
}

// ReleaseSlug deletes the ownership record. Releasing an unknown slug is not an error.
func (repo *slugRepository) ReleaseSlug(ctx context.Context, slug string) error {
	return errors.Wrap(repo.sess.delete(ctx, repo.doc(slug)), "failed to release slug")
}
