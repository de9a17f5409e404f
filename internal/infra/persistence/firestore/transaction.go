package firestore

import (
	"context"

	"storefront/internal/domain/repository"

	gfirestore "cloud.google.com/go/firestore"
)

// firestoreTransactionManager implements the domain's TransactionManager interface using Firestore transactions.
type firestoreTransactionManager struct {
	client *gfirestore.Client
}

// firestoreRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a single Firestore transaction and hands out repositories bound to it.
type firestoreRepositoryFactory struct {
	sess session
}

// NewBusinessRepository creates a business repository bound to the transaction.
func (f *firestoreRepositoryFactory) NewBusinessRepository() repository.BusinessRepository {
	return &businessRepository{sess: f.sess}
}

// NewOrderRepository creates an order repository bound to the transaction.
func (f *firestoreRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return &orderRepository{sess: f.sess}
}

// NewSlugRepository creates a slug repository bound to the transaction.
func (f *firestoreRepositoryFactory) NewSlugRepository() repository.SlugRepository {
	return &slugRepository{sess: f.sess}
}

// NewTransactionManager is the constructor for firestoreTransactionManager.
func NewTransactionManager(client *gfirestore.Client) repository.TransactionManager {
	return &firestoreTransactionManager{client: client}
}

// Execute runs fn inside a Firestore transaction. Firestore retries fn when
// the documents it read change before commit; an error from fn aborts the
// transaction and is returned unchanged.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.client.RunTransaction(ctx, func(_ context.Context, tx *gfirestore.Transaction) error {
		return fn(&firestoreRepositoryFactory{sess: session{client: tm.client, tx: tx}})
	})
}
