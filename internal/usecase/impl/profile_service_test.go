package impl

import (
	"context"
	"testing"

	"orla/internal/domain/entity"
	domainerrors "orla/internal/domain/errors"
	"orla/internal/domain/repository"
	mockRepo "orla/internal/mocks/repository"
	"orla/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewProfileService(userRepo, newDiscardLogger())

	return profileServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestProfileService_ResolveProfile_Found(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{
		ID:    userID,
		Name:  "Ana Souza",
		Email: "ana@example.com",
		Role:  entity.RoleBroker,
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(stored, nil)

	resolved := fx.service.ResolveProfile(ctx, &usecase.ResolveProfileInput{
		UserID: userID,
		Email:  "ana@example.com",
	})

	require.NotNil(t, resolved)
	assert.False(t, resolved.Synthesized)
	assert.Empty(t, resolved.Notice)
	assert.Same(t, stored, resolved.Profile)
}

func TestProfileService_ResolveProfile_RowMissingSynthesizes(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	resolved := fx.service.ResolveProfile(ctx, &usecase.ResolveProfileInput{
		UserID: userID,
		Email:  "novo@example.com",
	})

	require.NotNil(t, resolved)
	assert.True(t, resolved.Synthesized)
	assert.Equal(t, noticeProfileMissing, resolved.Notice)

	// The stand-in keeps the session identity and defaults the role.
	require.NotNil(t, resolved.Profile)
	assert.Equal(t, userID, resolved.Profile.ID)
	assert.Equal(t, "novo@example.com", resolved.Profile.Email)
	assert.Equal(t, "novo@example.com", resolved.Profile.Name)
	assert.Equal(t, entity.RoleBroker, resolved.Profile.Role)
}

func TestProfileService_ResolveProfile_LookupFailureSynthesizes(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("connection reset"))

	resolved := fx.service.ResolveProfile(ctx, &usecase.ResolveProfileInput{
		UserID: userID,
		Email:  "ana@example.com",
	})

	require.NotNil(t, resolved)
	assert.True(t, resolved.Synthesized)
	assert.Contains(t, resolved.Notice, noticeProfileFailed)
	assert.Contains(t, resolved.Notice, "connection reset")
	assert.Equal(t, "ana@example.com", resolved.Profile.Email)
}

func TestProfileService_UpdateProfile_RenamesExistingRow(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{
		ID:    userID,
		Name:  "Ana",
		Email: "ana@example.com",
		Role:  entity.RoleBroker,
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(stored, nil)
	fx.userRepo.EXPECT().Update(ctx, stored).Return(nil)

	user, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		UserID: userID,
		Email:  "ana@example.com",
		Name:   "  Ana Souza  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", user.Name)
}

func TestProfileService_UpdateProfile_CreatesMissingRow(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			// First save completes the registration with the session identity.
			assert.Equal(t, userID, user.ID)
			assert.Equal(t, "novo@example.com", user.Email)
			assert.Equal(t, "Bruno Lima", user.Name)
			assert.Equal(t, entity.RoleBroker, user.Role)
		}).
		Return(nil)

	user, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		UserID: userID,
		Email:  "novo@example.com",
		Name:   "Bruno Lima",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bruno Lima", user.Name)
}

func TestProfileService_UpdateProfile_BlankNameRejected(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	user, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		UserID: uuid.New(),
		Email:  "ana@example.com",
		Name:   "   ",
	})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_LookupFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("connection reset"))

	user, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		UserID: userID,
		Email:  "ana@example.com",
		Name:   "Ana Souza",
	})

	assert.Nil(t, user)
	assert.Error(t, err)
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
