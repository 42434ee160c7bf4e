package domain

import (
	"context"
	"errors"

	"github.com/chirp-lab/backend/internal/model"
	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type FollowDomain interface {
	Follow(context.Context, *model.FollowRequest) (*model.FollowResponse, error)
	Unfollow(context.Context, *model.UnfollowRequest) (*model.UnfollowResponse, error)
	GetFollowers(context.Context, *model.GetFollowersRequest) (*model.GetFollowersResponse, error)
	GetFollowings(context.Context, *model.GetFollowingsRequest) (*model.GetFollowingsResponse, error)
}

type followDomain struct {
	followshipRepo repository.FollowshipRepository
	userRepo       repository.UserRepository
}

func NewFollowDomain(
	followshipRepo repository.FollowshipRepository,
	userRepo repository.UserRepository,
) *followDomain {
	return &followDomain{followshipRepo: followshipRepo, userRepo: userRepo}
}

func (d *followDomain) Follow(
	ctx context.Context, req *model.FollowRequest,
) (*model.FollowResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	requestUserID := xcontext.RequestUserID(ctx)
	if req.UserID == requestUserID {
		return nil, errorx.New(errorx.BadRequest, "Cannot follow yourself")
	}

	if _, err := d.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.followshipRepo.Create(ctx, requestUserID, req.UserID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create followship: %v", err)
		return nil, errorx.Unknown
	}

	return &model.FollowResponse{}, nil
}

func (d *followDomain) Unfollow(
	ctx context.Context, req *model.UnfollowRequest,
) (*model.UnfollowResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	err := d.followshipRepo.Delete(ctx, xcontext.RequestUserID(ctx), req.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete followship: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UnfollowResponse{}, nil
}

// GetFollowers lists the users following the target. The is_followed flag on
// every item answers "does the requester follow this user", computed from the
// requester's own followings in one grouped query.
func (d *followDomain) GetFollowers(
	ctx context.Context, req *model.GetFollowersRequest,
) (*model.GetFollowersResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	followers, err := d.followshipRepo.GetFollowers(ctx, req.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get followers: %v", err)
		return nil, errorx.Unknown
	}

	followingIDs, err := d.followshipRepo.GetFollowingIDs(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get followings of requester: %v", err)
		return nil, errorx.Unknown
	}

	followingSet := map[string]bool{}
	for _, id := range followingIDs {
		followingSet[id] = true
	}

	result := []model.FollowUser{}
	for _, follower := range followers {
		follower := follower
		result = append(result, model.FollowUser{
			User:       model.ConvertUser(&follower, false),
			IsFollowed: followingSet[follower.ID],
		})
	}

	return &model.GetFollowersResponse{Followers: result}, nil
}

// GetFollowings lists the users the target follows. The is_followed flag is
// computed against the requester's own followers, matching the behavior
// clients have always been built against.
func (d *followDomain) GetFollowings(
	ctx context.Context, req *model.GetFollowingsRequest,
) (*model.GetFollowingsResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	followings, err := d.followshipRepo.GetFollowings(ctx, req.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get followings: %v", err)
		return nil, errorx.Unknown
	}

	followerIDs, err := d.followshipRepo.GetFollowerIDs(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get followers of requester: %v", err)
		return nil, errorx.Unknown
	}

	followerSet := map[string]bool{}
	for _, id := range followerIDs {
		followerSet[id] = true
	}

	result := []model.FollowUser{}
	for _, following := range followings {
		following := following
		result = append(result, model.FollowUser{
			User:       model.ConvertUser(&following, false),
			IsFollowed: followerSet[following.ID],
		})
	}

	return &model.GetFollowingsResponse{Followings: result}, nil
}
