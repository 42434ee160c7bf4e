package repository_test

import (
	"database/sql"
	"testing"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_userRepository_GetProfile(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)

	followshipRepo := repository.NewFollowshipRepository()
	require.NoError(t, followshipRepo.Create(ctx, testutil.User2.ID, testutil.User1.ID))
	require.NoError(t, followshipRepo.Create(ctx, testutil.User3.ID, testutil.User1.ID))
	require.NoError(t, followshipRepo.Create(ctx, testutil.User1.ID, testutil.User3.ID))

	profile, err := repository.NewUserRepository().GetProfile(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, testutil.User1.Account, profile.Account)
	require.Equal(t, int64(2), profile.FollowerCount)
	require.Equal(t, int64(1), profile.FollowingCount)

	_, err = repository.NewUserRepository().GetProfile(ctx, "no-such-user")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func Test_userRepository_Create_Duplicated(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)

	// A write racing past the domain pre-check is rejected by the unique
	// index and surfaces as the translated duplicate-key error.
	err := repository.NewUserRepository().Create(ctx, &entity.User{
		Base:     entity.Base{ID: "clone"},
		Account:  testutil.User1.Account,
		Email:    "clone@example.com",
		Password: "whatever",
	})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	err = repository.NewUserRepository().Create(ctx, &entity.User{
		Base:     entity.Base{ID: "clone"},
		Account:  "clone",
		Email:    testutil.User1.Email,
		Password: "whatever",
	})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func Test_userRepository_UpdateByID(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)

	userRepo := repository.NewUserRepository()

	// An empty update is a no-op, not an error.
	require.NoError(t, userRepo.UpdateByID(ctx, testutil.User1.ID, &entity.User{}))

	require.NoError(t, userRepo.UpdateByID(ctx, testutil.User1.ID, &entity.User{
		Name:         "Renamed",
		Introduction: sql.NullString{String: "new intro", Valid: true},
	}))

	record, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, "Renamed", record.Name)
	require.Equal(t, "new intro", record.Introduction.String)

	// Untouched fields survive the partial update.
	require.Equal(t, testutil.User1.Account, record.Account)
	require.Equal(t, testutil.User1.Avatar, record.Avatar)
}
