package model

type FollowRequest struct {
	UserID string `json:"user_id"`
}

type FollowResponse struct{}

type UnfollowRequest struct {
	UserID string `json:"user_id"`
}

type UnfollowResponse struct{}

type GetFollowersRequest struct {
	UserID string `json:"user_id" form:"user_id"`
}

type GetFollowersResponse struct {
	Followers []FollowUser `json:"followers"`
}

type GetFollowingsRequest struct {
	UserID string `json:"user_id" form:"user_id"`
}

type GetFollowingsResponse struct {
	Followings []FollowUser `json:"followings"`
}
