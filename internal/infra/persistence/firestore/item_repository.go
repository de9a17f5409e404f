package firestore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	gfirestore "cloud.google.com/go/firestore"
)

type itemRepository struct {
	sess session
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(client *gfirestore.Client) repository.ItemRepository {
	return &itemRepository{sess: session{client: client}}
}

// FindItemByID reads 'businesses/{businessId}/items/{itemId}'.
func (repo *itemRepository) FindItemByID(ctx context.Context, businessID, itemID string) (*entity.Item, error) {
	ref := repo.sess.client.Collection(model.CollectionBusinesses).Doc(businessID).
		Collection(model.CollectionItems).Doc(itemID)

	snap, err := repo.sess.get(ctx, ref)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by id")
	}

	var itemM model.ItemModel
	if err := snap.DataTo(&itemM); err != nil {
		return nil, errors.Wrap(err, "failed to decode item")
	}

	return toItemDomain(businessID, snap.Ref.ID, &itemM)
}
