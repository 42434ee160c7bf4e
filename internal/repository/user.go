package repository

import (
	"context"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/pkg/xcontext"
)

// UserProfile is a user row with its follower aggregates, produced by a single
// statement so the counts and the row come from one snapshot.
type UserProfile struct {
	entity.User `gorm:"embedded"`

	FollowerCount  int64
	FollowingCount int64
}

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByAccount(ctx context.Context, account string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetProfile(ctx context.Context, id string) (*UserProfile, error)
	UpdateByID(ctx context.Context, id string, data *entity.User) error
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByAccount(ctx context.Context, account string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("account=?", account).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("email=?", email).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// GetProfile attaches the follower and following counts to the primary row
// fetch as correlated scalar subqueries, so listing needs no extra round trip
// and never tears between a row and its counts.
func (r *userRepository) GetProfile(ctx context.Context, id string) (*UserProfile, error) {
	var result UserProfile
	err := xcontext.DB(ctx).Model(&entity.User{}).
		Select("users.*, " +
			"(SELECT COUNT(*) FROM followships WHERE followships.following_id = users.id) AS follower_count, " +
			"(SELECT COUNT(*) FROM followships WHERE followships.follower_id = users.id) AS following_count").
		Where("users.id = ?", id).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) UpdateByID(ctx context.Context, id string, data *entity.User) error {
	updateMap := map[string]any{}
	if data.Account != "" {
		updateMap["account"] = data.Account
	}

	if data.Name != "" {
		updateMap["name"] = data.Name
	}

	if data.Email != "" {
		updateMap["email"] = data.Email
	}

	if data.Password != "" {
		updateMap["password"] = data.Password
	}

	if data.Introduction.Valid {
		updateMap["introduction"] = data.Introduction
	}

	if data.Avatar != "" {
		updateMap["avatar"] = data.Avatar
	}

	if data.Cover != "" {
		updateMap["cover"] = data.Cover
	}

	if len(updateMap) == 0 {
		return nil
	}

	return xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Updates(updateMap).Error
}
