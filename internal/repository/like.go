package repository

import (
	"context"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	Create(ctx context.Context, userID, tweetID string) error
	Delete(ctx context.Context, userID, tweetID string) error
	GetListByUserID(ctx context.Context, userID string) ([]entity.Like, error)
}

type likeRepository struct{}

func NewLikeRepository() *likeRepository {
	return &likeRepository{}
}

// Create is idempotent, liking an already liked tweet leaves the existing row
// untouched.
func (r *likeRepository) Create(ctx context.Context, userID, tweetID string) error {
	like := &entity.Like{
		Base:    entity.Base{ID: uuid.NewString()},
		UserID:  userID,
		TweetID: tweetID,
	}

	return xcontext.DB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

func (r *likeRepository) Delete(ctx context.Context, userID, tweetID string) error {
	return xcontext.DB(ctx).
		Where("user_id=? AND tweet_id=?", userID, tweetID).
		Delete(&entity.Like{}).Error
}

func (r *likeRepository) GetListByUserID(ctx context.Context, userID string) ([]entity.Like, error) {
	var result []entity.Like
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
