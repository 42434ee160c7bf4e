package domain

import (
	"context"
	"errors"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/internal/model"
	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TweetDomain interface {
	CreateTweet(context.Context, *model.CreateTweetRequest) (*model.CreateTweetResponse, error)
	CreateReply(context.Context, *model.CreateReplyRequest) (*model.CreateReplyResponse, error)
	LikeTweet(context.Context, *model.LikeTweetRequest) (*model.LikeTweetResponse, error)
	UnlikeTweet(context.Context, *model.UnlikeTweetRequest) (*model.UnlikeTweetResponse, error)
	GetTweets(context.Context, *model.GetTweetsRequest) (*model.GetTweetsResponse, error)
	GetReplies(context.Context, *model.GetRepliesRequest) (*model.GetRepliesResponse, error)
	GetLikedTweets(context.Context, *model.GetLikedTweetsRequest) (*model.GetLikedTweetsResponse, error)
}

type tweetDomain struct {
	tweetRepo repository.TweetRepository
	replyRepo repository.ReplyRepository
	likeRepo  repository.LikeRepository
	userRepo  repository.UserRepository
}

func NewTweetDomain(
	tweetRepo repository.TweetRepository,
	replyRepo repository.ReplyRepository,
	likeRepo repository.LikeRepository,
	userRepo repository.UserRepository,
) *tweetDomain {
	return &tweetDomain{
		tweetRepo: tweetRepo,
		replyRepo: replyRepo,
		likeRepo:  likeRepo,
		userRepo:  userRepo,
	}
}

func (d *tweetDomain) CreateTweet(
	ctx context.Context, req *model.CreateTweetRequest,
) (*model.CreateTweetResponse, error) {
	if req.Description == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty description")
	}

	requestUserID := xcontext.RequestUserID(ctx)
	tweet := &entity.Tweet{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      requestUserID,
		Description: req.Description,
	}

	if err := d.tweetRepo.Create(ctx, tweet); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create tweet: %v", err)
		return nil, errorx.Unknown
	}

	owner, err := d.userRepo.GetByID(ctx, requestUserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get tweet owner: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateTweetResponse{
		Tweet: model.ConvertTweet(tweet, model.ConvertUser(owner, false), 0, 0),
	}, nil
}

func (d *tweetDomain) CreateReply(
	ctx context.Context, req *model.CreateReplyRequest,
) (*model.CreateReplyResponse, error) {
	if req.Comment == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty comment")
	}

	if _, err := d.tweetRepo.GetByID(ctx, req.TweetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found tweet")
		}

		xcontext.Logger(ctx).Errorf("Cannot get tweet: %v", err)
		return nil, errorx.Unknown
	}

	requestUserID := xcontext.RequestUserID(ctx)
	reply := &entity.Reply{
		Base:    entity.Base{ID: uuid.NewString()},
		UserID:  requestUserID,
		TweetID: req.TweetID,
		Comment: req.Comment,
	}

	if err := d.replyRepo.Create(ctx, reply); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create reply: %v", err)
		return nil, errorx.Unknown
	}

	author, err := d.userRepo.GetByID(ctx, requestUserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get reply author: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateReplyResponse{
		Reply: model.ConvertReply(reply, model.ConvertUser(author, false)),
	}, nil
}

func (d *tweetDomain) LikeTweet(
	ctx context.Context, req *model.LikeTweetRequest,
) (*model.LikeTweetResponse, error) {
	if _, err := d.tweetRepo.GetByID(ctx, req.TweetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found tweet")
		}

		xcontext.Logger(ctx).Errorf("Cannot get tweet: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.likeRepo.Create(ctx, xcontext.RequestUserID(ctx), req.TweetID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create like: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LikeTweetResponse{}, nil
}

func (d *tweetDomain) UnlikeTweet(
	ctx context.Context, req *model.UnlikeTweetRequest,
) (*model.UnlikeTweetResponse, error) {
	if err := d.likeRepo.Delete(ctx, xcontext.RequestUserID(ctx), req.TweetID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete like: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UnlikeTweetResponse{}, nil
}

// GetTweets lists a user's tweets, each carrying its reply and like counts
// from the same statement as the row itself.
func (d *tweetDomain) GetTweets(
	ctx context.Context, req *model.GetTweetsRequest,
) (*model.GetTweetsResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	tweets, err := d.tweetRepo.GetListByUserID(ctx, req.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get tweets: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Tweet{}
	if len(tweets) == 0 {
		return &model.GetTweetsResponse{Tweets: result}, nil
	}

	owner, err := d.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get tweet owner: %v", err)
		return nil, errorx.Unknown
	}

	ownerProjection := model.ConvertUser(owner, false)
	for _, tweet := range tweets {
		tweet := tweet
		result = append(result, model.ConvertTweet(
			&tweet.Tweet, ownerProjection, tweet.ReplyCount, tweet.LikeCount))
	}

	return &model.GetTweetsResponse{Tweets: result}, nil
}

func (d *tweetDomain) GetReplies(
	ctx context.Context, req *model.GetRepliesRequest,
) (*model.GetRepliesResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	replies, err := d.replyRepo.GetListByUserID(ctx, req.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get replies: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Reply{}
	if len(replies) == 0 {
		return &model.GetRepliesResponse{Replies: result}, nil
	}

	author, err := d.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get reply author: %v", err)
		return nil, errorx.Unknown
	}

	authorProjection := model.ConvertUser(author, false)
	for _, reply := range replies {
		reply := reply
		result = append(result, model.ConvertReply(&reply, authorProjection))
	}

	return &model.GetRepliesResponse{Replies: result}, nil
}

func (d *tweetDomain) GetLikedTweets(
	ctx context.Context, req *model.GetLikedTweetsRequest,
) (*model.GetLikedTweetsResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	likes, err := d.likeRepo.GetListByUserID(ctx, req.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get likes: %v", err)
		return nil, errorx.Unknown
	}

	tweetIDs := []string{}
	for _, like := range likes {
		tweetIDs = append(tweetIDs, like.TweetID)
	}

	tweets, err := d.tweetRepo.GetByIDs(ctx, tweetIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get liked tweets: %v", err)
		return nil, errorx.Unknown
	}

	tweetMap := map[string]entity.Tweet{}
	for _, tweet := range tweets {
		tweetMap[tweet.ID] = tweet
	}

	result := []model.Like{}
	for _, like := range likes {
		like := like
		tweet, ok := tweetMap[like.TweetID]
		if !ok {
			xcontext.Logger(ctx).Errorf("Cannot find tweet %s for like", like.TweetID)
			return nil, errorx.Unknown
		}

		result = append(result, model.ConvertLike(
			&like, model.ConvertTweet(&tweet, model.User{}, 0, 0)))
	}

	return &model.GetLikedTweetsResponse{Likes: result}, nil
}
