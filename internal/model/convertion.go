package model

import (
	"time"

	"github.com/chirp-lab/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

// ConvertUser builds the outward projection of a user. The credential hash has
// no field here, so it cannot leak on any response path. Email and role are
// kept only when includeSensitive is set, which single-user responses do;
// list items (followers, followings, tweet owners) pass false and hide both.
func ConvertUser(user *entity.User, includeSensitive bool) User {
	if user == nil {
		return User{}
	}

	result := User{
		ID:           user.ID,
		Account:      user.Account,
		Name:         user.Name,
		Introduction: user.Introduction.String,
		Avatar:       user.Avatar,
		Cover:        user.Cover,
		CreatedAt:    user.CreatedAt.Format(DefaultTimeLayout),
	}

	if includeSensitive {
		result.Email = user.Email
		result.Role = user.Role
	}

	return result
}

func ConvertTweet(tweet *entity.Tweet, owner User, replyCount, likeCount int64) Tweet {
	if tweet == nil {
		return Tweet{}
	}

	return Tweet{
		ID:          tweet.ID,
		Description: tweet.Description,
		CreatedAt:   tweet.CreatedAt.Format(DefaultTimeLayout),
		User:        owner,
		ReplyCount:  replyCount,
		LikeCount:   likeCount,
	}
}

func ConvertReply(reply *entity.Reply, author User) Reply {
	if reply == nil {
		return Reply{}
	}

	return Reply{
		ID:        reply.ID,
		TweetID:   reply.TweetID,
		Comment:   reply.Comment,
		CreatedAt: reply.CreatedAt.Format(DefaultTimeLayout),
		User:      author,
	}
}

func ConvertLike(like *entity.Like, tweet Tweet) Like {
	if like == nil {
		return Like{}
	}

	return Like{
		TweetID:   like.TweetID,
		CreatedAt: like.CreatedAt.Format(DefaultTimeLayout),
		Tweet:     tweet,
	}
}
