package main

import (
	"fmt"
	"net/http"

	"github.com/chirp-lab/backend/internal/middleware"
	"github.com/chirp-lab/backend/pkg/router"
	"github.com/chirp-lab/backend/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadTokenEngine()
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadStorage()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.ApiServer.Host, cfg.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	xcontext.Logger(s.ctx).Infof("Starting server on port: %s", cfg.ApiServer.Port)
	if cfg.ApiServer.Cert != "" && cfg.ApiServer.Key != "" {
		return httpServer.ListenAndServeTLS(cfg.ApiServer.Cert, cfg.ApiServer.Key)
	}

	return httpServer.ListenAndServe()
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.Use(middleware.AllowCors(xcontext.Configs(s.ctx).ApiServer.AllowCORS))

	// Auth API
	router.POST(s.router, "/register", s.authDomain.Register)
	router.POST(s.router, "/login", s.authDomain.Login)

	// These following APIs need authentication with Access Token.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.Authenticate())
	{
		// User API
		router.GET(authRouter, "/getUser", s.userDomain.GetUser)
		router.POST(authRouter, "/updateUser", s.userDomain.UpdateUser)

		// Follow API
		router.GET(authRouter, "/getFollowers", s.followDomain.GetFollowers)
		router.GET(authRouter, "/getFollowings", s.followDomain.GetFollowings)
		router.POST(authRouter, "/follow", s.followDomain.Follow)
		router.POST(authRouter, "/unfollow", s.followDomain.Unfollow)

		// Tweet API
		router.GET(authRouter, "/getTweets", s.tweetDomain.GetTweets)
		router.GET(authRouter, "/getReplies", s.tweetDomain.GetReplies)
		router.GET(authRouter, "/getLikedTweets", s.tweetDomain.GetLikedTweets)
		router.POST(authRouter, "/createTweet", s.tweetDomain.CreateTweet)
		router.POST(authRouter, "/createReply", s.tweetDomain.CreateReply)
		router.POST(authRouter, "/like", s.tweetDomain.LikeTweet)
		router.POST(authRouter, "/unlike", s.tweetDomain.UnlikeTweet)
	}
}
