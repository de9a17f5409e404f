package repository

import "context"

// TransactionManager defines the interface for running document store transactions.
// This lets the use case layer span several documents without depending on the Firestore client.
type TransactionManager interface {
	// Execute runs fn within a transaction. The store may invoke fn several times on
	// contention, so fn must not have side effects outside the repositories it is given.
	// If fn returns an error nothing is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a single transaction.
// Inside a transaction all reads must happen before the first write.
type RepositoryFactory interface {
	// NewBusinessRepository returns a BusinessRepository bound to the current transaction.
	NewBusinessRepository() BusinessRepository

	// NewOrderRepository returns an OrderRepository bound to the current transaction.
	NewOrderRepository() OrderRepository

	// NewSlugRepository returns a SlugRepository bound to the current transaction.
	NewSlugRepository() SlugRepository
}
