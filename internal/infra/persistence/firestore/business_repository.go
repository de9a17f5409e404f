package firestore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	gfirestore "cloud.google.com/go/firestore"
)

// businessRepository implements the domain.BusinessRepository interface using Firestore.
type businessRepository struct {
	sess session
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(client *gfirestore.Client) repository.BusinessRepository {
	return &businessRepository{sess: session{client: client}}
}

func (repo *businessRepository) doc(businessID string) *gfirestore.DocumentRef {
	return repo.sess.client.Collection(model.CollectionBusinesses).Doc(businessID)
}

// FindBusinessByID retrieves a business document by its ID.
func (repo *businessRepository) FindBusinessByID(ctx context.Context, businessID string) (*entity.Business, error) {
	snap, err := repo.sess.get(ctx, repo.doc(businessID))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	var businessM model.BusinessModel
	if err := snap.DataTo(&businessM); err != nil {
		return nil, errors.Wrap(err, "failed to decode business")
	}

	return toBusinessDomain(snap.Ref.ID, &businessM), nil
}

// FindBusinessByStripeAccountID looks up the business whose payment map points at the account.
func (repo *businessRepository) FindBusinessByStripeAccountID(ctx context.Context, accountID string) (*entity.Business, error) {
	q := repo.sess.client.Collection(model.CollectionBusinesses).
		Where(model.FieldPaymentStripeAccountID, "==", accountID).
		Limit(1)

	snaps, err := repo.sess.query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business by stripe account")
	}
	if len(snaps) == 0 {
		return nil, repository.ErrBusinessNotFound
	}

	var businessM model.BusinessModel
	if err := snaps[0].DataTo(&businessM); err != nil {
		return nil, errors.Wrap(err, "failed to decode business")
	}

	return toBusinessDomain(snaps[0].Ref.ID, &businessM), nil
}

// MergePayment merge-writes the non-nil payment fields into the business document.
func (repo *businessRepository) MergePayment(ctx context.Context, businessID string, update *entity.PaymentUpdate) error {
	if update == nil {
		return nil
	}

	err := repo.sess.set(ctx, repo.doc(businessID), paymentMergeData(update), gfirestore.MergeAll)

	return errors.Wrap(err, "failed to merge business payment")
}

// SetSlug points the business at its claimed slug.
func (repo *businessRepository) SetSlug(ctx context.Context, businessID, slug string) error {
	err := repo.sess.set(ctx, repo.doc(businessID), map[string]any{model.FieldSlug: slug}, gfirestore.MergeAll)

	return errors.Wrap(err, "failed to set business slug")
}

// ClearSlug deletes the slug field from the business document.
func (repo *businessRepository) ClearSlug(ctx context.Context, businessID string) error {
	err := repo.sess.update(ctx, repo.doc(businessID), []gfirestore.Update{
		{Path: model.FieldSlug, Value: gfirestore.Delete},
	})
	if err != nil && isNotFound(err) {
		return repository.ErrBusinessNotFound
	}

	return errors.Wrap(err, "failed to clear business slug")
}
