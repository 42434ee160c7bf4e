package repository

import (
	"context"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/pkg/xcontext"
)

type ReplyRepository interface {
	Create(ctx context.Context, data *entity.Reply) error
	GetListByUserID(ctx context.Context, userID string) ([]entity.Reply, error)
}

type replyRepository struct{}

func NewReplyRepository() *replyRepository {
	return &replyRepository{}
}

func (r *replyRepository) Create(ctx context.Context, data *entity.Reply) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *replyRepository) GetListByUserID(ctx context.Context, userID string) ([]entity.Reply, error) {
	var result []entity.Reply
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
