package impl

import (
	"context"
	"sync"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type slugServiceFixtures struct {
	service   usecase.SlugUsecase
	slugRepo  *mockRepo.MockSlugRepository
	txManager *mockRepo.MockTransactionManager
}

func createTestSlugService(t *testing.T) slugServiceFixtures {
	slugRepo := mockRepo.NewMockSlugRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	return slugServiceFixtures{
		service:   NewSlugService(slugRepo, txManager, newDiscardLogger()),
		slugRepo:  slugRepo,
		txManager: txManager,
	}
}

func TestSlugService_SetSlug_ClaimsAndReleasesPrevious(t *testing.T) {
	fx := createTestSlugService(t)

	ctx := context.Background()
	expectTransaction(t, fx.txManager, func(repos *txRepos) {
		repos.businessRepo.EXPECT().FindBusinessByID(ctx, testBusinessID).
			Return(&entity.Business{ID: testBusinessID, Slug: "old-name"}, nil)
		repos.slugRepo.EXPECT().FindSlugOwner(ctx, "my-shop").Return("", repository.ErrSlugNotFound)
		repos.slugRepo.EXPECT().ReleaseSlug(ctx, "old-name").Return(nil)
		repos.slugRepo.EXPECT().ClaimSlug(ctx, "my-shop", testBusinessID).Return(nil)
		repos.businessRepo.EXPECT().SetSlug(ctx, testBusinessID, "my-shop").Return(nil)
	})

	slug, err := fx.service.SetSlug(ctx, testBusinessID, "  My Shop!! ")

	require.NoError(t, err)
	assert.Equal(t, "my-shop", slug)
}

func TestSlugService_SetSlug_SameSlugIsReclaimed(t *testing.T) {
	fx := createTestSlugService(t)

	ctx := context.Background()
	expectTransaction(t, fx.txManager, func(repos *txRepos) {
		repos.businessRepo.EXPECT().FindBusinessByID(ctx, testBusinessID).
			Return(&entity.Business{ID: testBusinessID, Slug: "my-shop"}, nil)
		repos.slugRepo.EXPECT().FindSlugOwner(ctx, "my-shop").Return(testBusinessID, nil)
		repos.slugRepo.EXPECT().ClaimSlug(ctx, "my-shop", testBusinessID).Return(nil)
		repos.businessRepo.EXPECT().SetSlug(ctx, testBusinessID, "my-shop").Return(nil)
	})

	_, err := fx.service.SetSlug(ctx, testBusinessID, "my-shop")

	require.NoError(t, err)
}

func TestSlugService_SetSlug_TakenByAnotherBusiness(t *testing.T) {
	fx := createTestSlugService(t)

	ctx := context.Background()
	expectTransaction(t, fx.txManager, func(repos *txRepos) {
		repos.businessRepo.EXPECT().FindBusinessByID(ctx, testBusinessID).Return(&entity.Business{ID: testBusinessID}, nil)
		repos.slugRepo.EXPECT().FindSlugOwner(ctx, "my-shop").Return("uid-other", nil)
	})

	_, err := fx.service.SetSlug(ctx, testBusinessID, "my-shop")

	assert.ErrorIs(t, err, domainerrors.ErrSlugTaken)
}

func TestSlugService_SetSlug_InvalidNeverOpensTransaction(t *testing.T) {
	fx := createTestSlugService(t)

	for _, input := range []string{"", "admin", "ab", "---"} {
		_, err := fx.service.SetSlug(context.Background(), testBusinessID, input)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidSlug, input)
	}
}

func TestSlugService_SetSlug_BusinessNotFound(t *testing.T) {
	fx := createTestSlugService(t)

	ctx := context.Background()
	expectTransaction(t, fx.txManager, func(repos *txRepos) {
		repos.businessRepo.EXPECT().FindBusinessByID(ctx, testBusinessID).Return(nil, repository.ErrBusinessNotFound)
	})

	_, err := fx.service.SetSlug(ctx, testBusinessID, "my-shop")

	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

// Two businesses race for one slug: the store serializes the transactions,
// so the second one reads the first one's claim.
func TestSlugService_SetSlug_ConcurrentClaimsOneWins(t *testing.T) {
	slugRepo := mockRepo.NewMockSlugRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewSlugService(slugRepo, txManager, newDiscardLogger())

	var (
		mu    sync.Mutex
		owner string
	)

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mu.Lock()
			defer mu.Unlock()

			return fn(&memoryTxFactory{owner: &owner})
		})

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, businessID := range []string{"uid-a", "uid-b"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SetSlug(context.Background(), businessID, "popular")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, taken int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, domainerrors.ErrSlugTaken):
			taken++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, taken)
}

func TestSlugService_ClearSlug(t *testing.T) {
	fx := createTestSlugService(t)

	ctx := context.Background()
	expectTransaction(t, fx.txManager, func(repos *txRepos) {
		repos.businessRepo.EXPECT().FindBusinessByID(ctx, testBusinessID).
			Return(&entity.Business{ID: testBusinessID, Slug: "my-shop"}, nil)
		repos.slugRepo.EXPECT().FindSlugOwner(ctx, "my-shop").Return(testBusinessID, nil)
		repos.slugRepo.EXPECT().ReleaseSlug(ctx, "my-shop").Return(nil)
		repos.businessRepo.EXPECT().ClearSlug(ctx, testBusinessID).Return(nil)
	})

	require.NoError(t, fx.service.ClearSlug(ctx, testBusinessID))
}

func TestSlugService_CheckAvailability(t *testing.T) {
	fx := createTestSlugService(t)

	ctx := context.Background()
	fx.slugRepo.EXPECT().FindSlugOwner(ctx, "free-name").Return("", repository.ErrSlugNotFound)
	fx.slugRepo.EXPECT().FindSlugOwner(ctx, "used-name").Return("uid-x", nil)

	free, err := fx.service.CheckAvailability(ctx, "Free Name")
	require.NoError(t, err)
	assert.Equal(t, &usecase.SlugAvailability{Slug: "free-name", Available: true}, free)

	used, err := fx.service.CheckAvailability(ctx, "used-name")
	require.NoError(t, err)
	assert.False(t, used.Available)
	assert.Equal(t, entity.SlugTaken, used.Reason)

	reserved, err := fx.service.CheckAvailability(ctx, "dashboard")
	require.NoError(t, err)
	assert.Equal(t, entity.SlugReserved, reserved.Reason)
}

func TestSlugService_ResolveSlug(t *testing.T) {
	fx := createTestSlugService(t)

	ctx := context.Background()
	fx.slugRepo.EXPECT().FindSlugOwner(ctx, "my-shop").Return(testBusinessID, nil)
	fx.slugRepo.EXPECT().FindSlugOwner(ctx, "nobody").Return("", repository.ErrSlugNotFound)

	businessID, err := fx.service.ResolveSlug(ctx, "My-Shop")
	require.NoError(t, err)
	assert.Equal(t, testBusinessID, businessID)

	_, err = fx.service.ResolveSlug(ctx, "nobody")
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

// memoryTxFactory backs one slug record and any business with in-memory state.
type memoryTxFactory struct {
	owner *string
}

func (f *memoryTxFactory) NewBusinessRepository() repository.BusinessRepository {
	return memoryBusinessRepo{}
}

func (f *memoryTxFactory) NewOrderRepository() repository.OrderRepository {
	return nil
}

func (f *memoryTxFactory) NewSlugRepository() repository.SlugRepository {
	return memorySlugRepo{owner: f.owner}
}

type memoryBusinessRepo struct {
	repository.BusinessRepository
}

func (memoryBusinessRepo) FindBusinessByID(_ context.Context, businessID string) (*entity.Business, error) {
	return &entity.Business{ID: businessID}, nil
}

func (memoryBusinessRepo) SetSlug(context.Context, string, string) error {
	return nil
}

type memorySlugRepo struct {
	owner *string
}

func (r memorySlugRepo) FindSlugOwner(context.Context, string) (string, error) {
	if *r.owner == "" {
		return "", repository.ErrSlugNotFound
	}

	return *r.owner, nil
}

func (r memorySlugRepo) ClaimSlug(_ context.Context, _ string, businessID string) error {
	*r.owner = businessID

	return nil
}

func (r memorySlugRepo) ReleaseSlug(context.Context, string) error {
	*r.owner = ""

	return nil
}
