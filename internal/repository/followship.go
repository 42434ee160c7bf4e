package repository

import (
	"context"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type FollowshipRepository interface {
	Create(ctx context.Context, followerID, followingID string) error
	Delete(ctx context.Context, followerID, followingID string) error
	GetFollowers(ctx context.Context, userID string) ([]entity.User, error)
	GetFollowings(ctx context.Context, userID string) ([]entity.User, error)
	GetFollowerIDs(ctx context.Context, userID string) ([]string, error)
	GetFollowingIDs(ctx context.Context, userID string) ([]string, error)
}

type followshipRepository struct{}

func NewFollowshipRepository() *followshipRepository {
	return &followshipRepository{}
}

// Create is idempotent, a repeated follow of the same pair leaves the existing
// edge untouched.
func (r *followshipRepository) Create(ctx context.Context, followerID, followingID string) error {
	followship := &entity.Followship{FollowerID: followerID, FollowingID: followingID}
	return xcontext.DB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(followship).Error
}

func (r *followshipRepository) Delete(ctx context.Context, followerID, followingID string) error {
	return xcontext.DB(ctx).
		Where("follower_id=? AND following_id=?", followerID, followingID).
		Delete(&entity.Followship{}).Error
}

func (r *followshipRepository) GetFollowers(ctx context.Context, userID string) ([]entity.User, error) {
	var result []entity.User
	err := xcontext.DB(ctx).Model(&entity.User{}).
		Joins("JOIN followships ON followships.follower_id = users.id").
		Where("followships.following_id = ?", userID).
		Order("followships.created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followshipRepository) GetFollowings(ctx context.Context, userID string) ([]entity.User, error) {
	var result []entity.User
	err := xcontext.DB(ctx).Model(&entity.User{}).
		Joins("JOIN followships ON followships.following_id = users.id").
		Where("followships.follower_id = ?", userID).
		Order("followships.created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followshipRepository) GetFollowerIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := xcontext.DB(ctx).Model(&entity.Followship{}).
		Where("following_id=?", userID).
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *followshipRepository) GetFollowingIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := xcontext.DB(ctx).Model(&entity.Followship{}).
		Where("follower_id=?", userID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}
