package impl

import (
	"context"
	"testing"

	"orla/internal/domain/entity"
	domainerrors "orla/internal/domain/errors"
	mockRepo "orla/internal/mocks/repository"
	"orla/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service   usecase.CatalogUsecase
	ownerRepo *mockRepo.MockOwnerRepository
	userRepo  *mockRepo.MockUserRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	ownerRepo := mockRepo.NewMockOwnerRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewCatalogService(ownerRepo, userRepo, newDiscardLogger())

	return catalogServiceFixtures{
		service:   service,
		ownerRepo: ownerRepo,
		userRepo:  userRepo,
	}
}

func TestCatalogService_ListOwners_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	owners := []*entity.Owner{
		{ID: uuid.New(), Name: "Carlos Pereira"},
		{ID: uuid.New(), Name: "Maria Silva"},
	}

	fx.ownerRepo.EXPECT().ListAll(ctx).Return(owners, nil)

	result, err := fx.service.ListOwners(ctx)

	require.NoError(t, err)
	assert.Equal(t, owners, result)
}

func TestCatalogService_ListOwners_RepositoryError(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.ownerRepo.EXPECT().ListAll(ctx).Return(nil, errors.New("connection reset"))

	result, err := fx.service.ListOwners(ctx)

	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestCatalogService_ListBrokers_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	brokers := []*entity.User{
		{ID: uuid.New(), Name: "Ana Souza", Role: entity.RoleBroker},
		{ID: uuid.New(), Name: "Bruno Lima", Role: entity.RoleAdmin},
	}

	fx.userRepo.EXPECT().ListAll(ctx).Return(brokers, nil)

	result, err := fx.service.ListBrokers(ctx)

	require.NoError(t, err)
	// Every profile is assignable as a broker, whatever its role label.
	assert.Equal(t, brokers, result)
}

func TestCatalogService_CreateOwner_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreateOwnerInput{
		Name:     "  Carlos Pereira  ",
		Email:    " carlos@example.com ",
		Phone:    "48999990000",
		Document: "123.456.789-00",
	}

	fx.ownerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Owner")).
		Run(func(ctx context.Context, owner *entity.Owner) {
			assert.Equal(t, "Carlos Pereira", owner.Name)
			assert.Equal(t, "carlos@example.com", owner.Email)

			owner.ID = uuid.New()
		}).
		Return(nil)

	owner, err := fx.service.CreateOwner(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Carlos Pereira", owner.Name)
	assert.NotEqual(t, uuid.Nil, owner.ID)
}

func TestCatalogService_CreateOwner_BlankNameRejected(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreateOwnerInput{Name: "   "}

	owner, err := fx.service.CreateOwner(ctx, input)

	assert.Nil(t, owner)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.ownerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
