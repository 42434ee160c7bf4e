package repository

import (
	"context"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/pkg/xcontext"
)

// TweetWithStats is a tweet row with its engagement aggregates from the same
// statement.
type TweetWithStats struct {
	entity.Tweet `gorm:"embedded"`

	ReplyCount int64
	LikeCount  int64
}

type TweetRepository interface {
	Create(ctx context.Context, data *entity.Tweet) error
	GetByID(ctx context.Context, id string) (*entity.Tweet, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Tweet, error)
	GetListByUserID(ctx context.Context, userID string) ([]TweetWithStats, error)
}

type tweetRepository struct{}

func NewTweetRepository() *tweetRepository {
	return &tweetRepository{}
}

func (r *tweetRepository) Create(ctx context.Context, data *entity.Tweet) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *tweetRepository) GetByID(ctx context.Context, id string) (*entity.Tweet, error) {
	var record entity.Tweet
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *tweetRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Tweet, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var record []entity.Tweet
	if err := xcontext.DB(ctx).Where("id IN (?)", ids).Find(&record).Error; err != nil {
		return nil, err
	}

	return record, nil
}

// GetListByUserID attaches the reply and like counts to the tweet fetch as
// correlated scalar subqueries. One round trip for the whole list, no per-row
// count queries.
func (r *tweetRepository) GetListByUserID(ctx context.Context, userID string) ([]TweetWithStats, error) {
	var result []TweetWithStats
	err := xcontext.DB(ctx).Model(&entity.Tweet{}).
		Select("tweets.*, " +
			"(SELECT COUNT(*) FROM replies WHERE replies.tweet_id = tweets.id) AS reply_count, " +
			"(SELECT COUNT(*) FROM likes WHERE likes.tweet_id = tweets.id) AS like_count").
		Where("tweets.user_id = ?", userID).
		Order("tweets.created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
