package impl

import (
	"context"
	"testing"

	"orla/internal/domain/entity"
	domainerrors "orla/internal/domain/errors"
	"orla/internal/domain/repository"
	mockRepo "orla/internal/mocks/repository"
	mockSvc "orla/internal/mocks/service"
	"orla/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// listingServiceFixtures holds all test dependencies for listing service tests.
type listingServiceFixtures struct {
	service     usecase.ListingUsecase
	listingRepo *mockRepo.MockListingRepository
	userRepo    *mockRepo.MockUserRepository
	codeGen     *mockSvc.MockCodeGenerator
}

func createTestListingService(t *testing.T) listingServiceFixtures {
	listingRepo := mockRepo.NewMockListingRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	codeGen := mockSvc.NewMockCodeGenerator(t)

	service := NewListingService(listingRepo, userRepo, codeGen, newDiscardLogger())

	return listingServiceFixtures{
		service:     service,
		listingRepo: listingRepo,
		userRepo:    userRepo,
		codeGen:     codeGen,
	}
}

func TestListingService_Create_Success(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	createdBy := uuid.New()
	input := &usecase.CreateListingInput{
		Form: usecase.ListingForm{
			Title: "Apto 2 quartos",
			City:  "Florianópolis",
			Price: "380000",
		},
		CreatedBy: createdBy,
	}

	fx.codeGen.EXPECT().Generate().Return("IMV-1736951112345")
	fx.listingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Listing")).
		Run(func(ctx context.Context, listing *entity.Listing) {
			assert.Equal(t, "IMV-1736951112345", listing.Code)
			assert.Equal(t, "Apto 2 quartos", listing.Title)
			assert.Equal(t, entity.StatusAvailable, listing.Status)
			assert.Equal(t, createdBy, listing.CreatedBy)
			require.NotNil(t, listing.Price)
			assert.InDelta(t, 380000.0, *listing.Price, 0.001)

			listing.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "IMV-1736951112345", output.Code)
	assert.NotEqual(t, uuid.Nil, output.Listing.ID)
}

func TestListingService_Create_BlankTitleNeverReachesStore(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	input := &usecase.CreateListingInput{
		Form:      usecase.ListingForm{Title: "   "},
		CreatedBy: uuid.New(),
	}

	// Only the code generator runs; Create is never called on the repository.
	fx.codeGen.EXPECT().Generate().Return("IMV-1")

	output, err := fx.service.Create(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTitleRequired))
	fx.listingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListingService_Create_RepositoryError(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	input := &usecase.CreateListingInput{
		Form:      usecase.ListingForm{Title: "Casa"},
		CreatedBy: uuid.New(),
	}

	fx.codeGen.EXPECT().Generate().Return("IMV-2")
	fx.listingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Listing")).
		Return(domainerrors.ErrConflict)

	output, err := fx.service.Create(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestListingService_List_ResolvesListerNames(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	listerID := uuid.New()
	listings := []*entity.Listing{
		{Code: "IMV-1", Title: "Apto", Status: entity.StatusAvailable, ListerID: &listerID},
		{Code: "IMV-2", Title: "Casa", Status: entity.StatusAvailable, ListerID: &listerID},
		{Code: "IMV-3", Title: "Terreno", Status: entity.StatusSold},
	}

	fx.listingRepo.EXPECT().FindAll(ctx).Return(listings, nil)
	// Duplicate references collapse into one batched lookup.
	fx.userRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{listerID}).
		Return([]*entity.User{{ID: listerID, Name: "Ana Souza"}}, nil)

	output, err := fx.service.List(ctx, &usecase.ListListingsInput{})

	require.NoError(t, err)
	require.Len(t, output.Items, 3)
	assert.Equal(t, "Ana Souza", output.Items[0].ListerName)
	assert.Equal(t, "Ana Souza", output.Items[1].ListerName)
	assert.Equal(t, "", output.Items[2].ListerName)
}

func TestListingService_List_AppliesFilter(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	listings := []*entity.Listing{
		{Code: "IMV-1", Title: "Apto Centro", Status: entity.StatusAvailable},
		{Code: "IMV-2", Title: "Casa", Status: entity.StatusReserved},
	}

	fx.listingRepo.EXPECT().FindAll(ctx).Return(listings, nil)

	output, err := fx.service.List(ctx, &usecase.ListListingsInput{Status: "reserved"})

	require.NoError(t, err)
	require.Len(t, output.Items, 1)
	assert.Equal(t, "IMV-2", output.Items[0].Listing.Code)
}

func TestListingService_List_NameLookupFailureDegrades(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	listerID := uuid.New()
	listings := []*entity.Listing{
		{Code: "IMV-1", Title: "Apto", Status: entity.StatusAvailable, ListerID: &listerID},
	}

	fx.listingRepo.EXPECT().FindAll(ctx).Return(listings, nil)
	fx.userRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{listerID}).
		Return(nil, errors.New("connection reset"))

	output, err := fx.service.List(ctx, &usecase.ListListingsInput{})

	// The list still loads; only the display names are missing.
	require.NoError(t, err)
	require.Len(t, output.Items, 1)
	assert.Equal(t, "", output.Items[0].ListerName)
}

func TestListingService_List_RepositoryError(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	fx.listingRepo.EXPECT().FindAll(ctx).Return(nil, errors.New("connection reset"))

	output, err := fx.service.List(ctx, &usecase.ListListingsInput{})

	assert.Nil(t, output)
	assert.Error(t, err)
}

func TestListingService_Get_ResolvesListerName(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	id := uuid.New()
	listerID := uuid.New()
	listing := &entity.Listing{
		ID:       id,
		Code:     "IMV-1",
		Title:    "Apto",
		Status:   entity.StatusAvailable,
		ListerID: &listerID,
	}

	fx.listingRepo.EXPECT().FindByID(ctx, id).Return(listing, nil)
	fx.userRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{listerID}).
		Return([]*entity.User{{ID: listerID, Name: "Ana Souza"}}, nil)

	view, err := fx.service.Get(ctx, &usecase.GetListingInput{ID: id})

	require.NoError(t, err)
	assert.Same(t, listing, view.Listing)
	assert.Equal(t, "Ana Souza", view.ListerName)
}

func TestListingService_Get_WithoutListerSkipsLookup(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	id := uuid.New()
	listing := &entity.Listing{ID: id, Code: "IMV-2", Title: "Terreno", Status: entity.StatusSold}

	fx.listingRepo.EXPECT().FindByID(ctx, id).Return(listing, nil)

	view, err := fx.service.Get(ctx, &usecase.GetListingInput{ID: id})

	require.NoError(t, err)
	assert.Equal(t, "", view.ListerName)
	fx.userRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}

func TestListingService_Get_NotFound(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.listingRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrListingNotFound)

	view, err := fx.service.Get(ctx, &usecase.GetListingInput{ID: id})

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrListingNotFound))
}

func TestListingService_SetStatus_Success(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.listingRepo.EXPECT().UpdateStatus(ctx, id, entity.StatusSold).Return(nil)

	err := fx.service.SetStatus(ctx, &usecase.SetListingStatusInput{ID: id, Status: "Sold"})

	assert.NoError(t, err)
}

func TestListingService_SetStatus_RejectsBlankAndInvalid(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	id := uuid.New()

	for _, status := range []string{"", "   ", "archived"} {
		err := fx.service.SetStatus(ctx, &usecase.SetListingStatusInput{ID: id, Status: status})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatus), "status %q", status)
	}
	fx.listingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestListingService_SetStatus_NotFound(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.listingRepo.EXPECT().
		UpdateStatus(ctx, id, entity.StatusReserved).
		Return(repository.ErrListingNotFound)

	err := fx.service.SetStatus(ctx, &usecase.SetListingStatusInput{ID: id, Status: "reserved"})

	assert.True(t, errors.Is(err, domainerrors.ErrListingNotFound))
}

func TestListingService_Delete_Success(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.listingRepo.EXPECT().Delete(ctx, id).Return(nil)

	err := fx.service.Delete(ctx, &usecase.DeleteListingInput{ID: id, Confirmed: true})

	assert.NoError(t, err)
}

func TestListingService_Delete_UnconfirmedNeverReachesStore(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	id := uuid.New()

	err := fx.service.Delete(ctx, &usecase.DeleteListingInput{ID: id, Confirmed: false})

	assert.True(t, errors.Is(err, domainerrors.ErrDeleteNotConfirmed))
	fx.listingRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestListingService_Delete_NotFound(t *testing.T) {
	fx := createTestListingService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.listingRepo.EXPECT().Delete(ctx, id).Return(repository.ErrListingNotFound)

	err := fx.service.Delete(ctx, &usecase.DeleteListingInput{ID: id, Confirmed: true})

	assert.True(t, errors.Is(err, domainerrors.ErrListingNotFound))
}
