package model

type Tweet struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	User        User   `json:"user"`
	ReplyCount  int64  `json:"reply_count"`
	LikeCount   int64  `json:"like_count"`
}

type Reply struct {
	ID        string `json:"id"`
	TweetID   string `json:"tweet_id"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
	User      User   `json:"user"`
}

type Like struct {
	TweetID   string `json:"tweet_id"`
	CreatedAt string `json:"created_at"`
	Tweet     Tweet  `json:"tweet"`
}

type CreateTweetRequest struct {
	Description string `json:"description"`
}

type CreateTweetResponse struct {
	Tweet Tweet `json:"tweet"`
}

type CreateReplyRequest struct {
	TweetID string `json:"tweet_id"`
	Comment string `json:"comment"`
}

type CreateReplyResponse struct {
	Reply Reply `json:"reply"`
}

type LikeTweetRequest struct {
	TweetID string `json:"tweet_id"`
}

type LikeTweetResponse struct{}

type UnlikeTweetRequest struct {
	TweetID string `json:"tweet_id"`
}

type UnlikeTweetResponse struct{}

type GetTweetsRequest struct {
	UserID string `json:"user_id" form:"user_id"`
}

type GetTweetsResponse struct {
	Tweets []Tweet `json:"tweets"`
}

type GetRepliesRequest struct {
	UserID string `json:"user_id" form:"user_id"`
}

type GetRepliesResponse struct {
	Replies []Reply `json:"replies"`
}

type GetLikedTweetsRequest struct {
	UserID string `json:"user_id" form:"user_id"`
}

type GetLikedTweetsResponse struct {
	Likes []Like `json:"likes"`
}
