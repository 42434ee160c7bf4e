package domain

import (
	"testing"

	"github.com/chirp-lab/backend/internal/model"
	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/chirp-lab/backend/pkg/testutil"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTweetDomain() *tweetDomain {
	return NewTweetDomain(
		repository.NewTweetRepository(),
		repository.NewReplyRepository(),
		repository.NewLikeRepository(),
		repository.NewUserRepository(),
	)
}

func Test_tweetDomain_CreateTweet(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	domain := newTweetDomain()

	resp, err := domain.CreateTweet(ctx, &model.CreateTweetRequest{Description: "first post"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Tweet.ID)
	require.Equal(t, "first post", resp.Tweet.Description)
	require.Equal(t, testutil.User1.ID, resp.Tweet.User.ID)
	require.Equal(t, int64(0), resp.Tweet.ReplyCount)
	require.Equal(t, int64(0), resp.Tweet.LikeCount)

	_, err = domain.CreateTweet(ctx, &model.CreateTweetRequest{})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_tweetDomain_CreateReply(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User2.ID)

	domain := newTweetDomain()

	resp, err := domain.CreateReply(ctx, &model.CreateReplyRequest{
		TweetID: testutil.Tweet1.ID,
		Comment: "nice one",
	})
	require.NoError(t, err)
	require.Equal(t, testutil.Tweet1.ID, resp.Reply.TweetID)
	require.Equal(t, "nice one", resp.Reply.Comment)
	require.Equal(t, testutil.User2.ID, resp.Reply.User.ID)

	_, err = domain.CreateReply(ctx, &model.CreateReplyRequest{
		TweetID: "no-such-tweet",
		Comment: "into the void",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
	require.Equal(t, "Not found tweet", err.Error())
}

func Test_tweetDomain_GetTweets(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User2.ID)

	domain := newTweetDomain()

	for _, comment := range []string{"first reply", "second reply"} {
		_, err := domain.CreateReply(ctx, &model.CreateReplyRequest{
			TweetID: testutil.Tweet1.ID,
			Comment: comment,
		})
		require.NoError(t, err)
	}

	_, err := domain.LikeTweet(ctx, &model.LikeTweetRequest{TweetID: testutil.Tweet1.ID})
	require.NoError(t, err)

	resp, err := domain.GetTweets(ctx, &model.GetTweetsRequest{UserID: testutil.User1.ID})
	require.NoError(t, err)
	require.Len(t, resp.Tweets, 1)
	require.Equal(t, testutil.Tweet1.ID, resp.Tweets[0].ID)
	require.Equal(t, int64(2), resp.Tweets[0].ReplyCount)
	require.Equal(t, int64(1), resp.Tweets[0].LikeCount)
	require.Equal(t, testutil.User1.Account, resp.Tweets[0].User.Account)

	// List items hide the sensitive fields of the owner.
	require.Empty(t, resp.Tweets[0].User.Email)
}

func Test_tweetDomain_GetTweets_UnknownUser(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	resp, err := newTweetDomain().GetTweets(ctx, &model.GetTweetsRequest{UserID: "no-such-user"})
	require.NoError(t, err)
	require.Empty(t, resp.Tweets)
}

func Test_tweetDomain_LikeUnlike(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User2.ID)

	domain := newTweetDomain()

	_, err := domain.LikeTweet(ctx, &model.LikeTweetRequest{TweetID: testutil.Tweet1.ID})
	require.NoError(t, err)

	// Liking twice keeps a single like.
	_, err = domain.LikeTweet(ctx, &model.LikeTweetRequest{TweetID: testutil.Tweet1.ID})
	require.NoError(t, err)

	resp, err := domain.GetTweets(ctx, &model.GetTweetsRequest{UserID: testutil.User1.ID})
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.Tweets[0].LikeCount)

	_, err = domain.UnlikeTweet(ctx, &model.UnlikeTweetRequest{TweetID: testutil.Tweet1.ID})
	require.NoError(t, err)

	resp, err = domain.GetTweets(ctx, &model.GetTweetsRequest{UserID: testutil.User1.ID})
	require.NoError(t, err)
	require.Equal(t, int64(0), resp.Tweets[0].LikeCount)

	_, err = domain.LikeTweet(ctx, &model.LikeTweetRequest{TweetID: "no-such-tweet"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_tweetDomain_GetReplies(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User2.ID)

	domain := newTweetDomain()

	_, err := domain.CreateReply(ctx, &model.CreateReplyRequest{
		TweetID: testutil.Tweet1.ID,
		Comment: "hello",
	})
	require.NoError(t, err)

	resp, err := domain.GetReplies(ctx, &model.GetRepliesRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)
	require.Len(t, resp.Replies, 1)
	require.Equal(t, "hello", resp.Replies[0].Comment)
	require.Equal(t, testutil.User2.ID, resp.Replies[0].User.ID)
}

func Test_tweetDomain_GetLikedTweets(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixture(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User3.ID)

	domain := newTweetDomain()

	_, err := domain.LikeTweet(ctx, &model.LikeTweetRequest{TweetID: testutil.Tweet1.ID})
	require.NoError(t, err)

	_, err = domain.LikeTweet(ctx, &model.LikeTweetRequest{TweetID: testutil.Tweet2.ID})
	require.NoError(t, err)

	resp, err := domain.GetLikedTweets(ctx, &model.GetLikedTweetsRequest{UserID: testutil.User3.ID})
	require.NoError(t, err)
	require.Len(t, resp.Likes, 2)

	liked := map[string]bool{}
	for _, like := range resp.Likes {
		liked[like.TweetID] = true
		require.Equal(t, like.TweetID, like.Tweet.ID)
		require.NotEmpty(t, like.Tweet.Description)
	}
	require.True(t, liked[testutil.Tweet1.ID])
	require.True(t, liked[testutil.Tweet2.ID])
}
