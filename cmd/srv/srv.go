package main

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chirp-lab/backend/config"
	"github.com/chirp-lab/backend/internal/domain"
	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/migration"
	"github.com/chirp-lab/backend/pkg/authenticator"
	"github.com/chirp-lab/backend/pkg/logger"
	"github.com/chirp-lab/backend/pkg/router"
	"github.com/chirp-lab/backend/pkg/storage"
	"github.com/chirp-lab/backend/pkg/xcontext"

	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context
	app *cli.App

	userRepo       repository.UserRepository
	followshipRepo repository.FollowshipRepository
	tweetRepo      repository.TweetRepository
	replyRepo      repository.ReplyRepository
	likeRepo       repository.LikeRepository

	authDomain   domain.AuthDomain
	userDomain   domain.UserDomain
	followDomain domain.FollowDomain
	tweetDomain  domain.TweetDomain

	fileStorage storage.Storage

	router *router.Router
}

func (s *srv) loadConfig() {
	cfg := config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "chirp"),
			Password: getEnv("MYSQL_PASSWORD", "password"),
			Database: getEnv("MYSQL_DATABASE", "chirp"),
		},
		ApiServer: config.ServerConfigs{
			Host:      getEnv("HOST", ""),
			Port:      getEnv("PORT", "3000"),
			Cert:      getEnv("SERVER_CERT", ""),
			Key:       getEnv("SERVER_KEY", ""),
			AllowCORS: strings.Split(getEnv("ALLOW_CORS", "*"), ","),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token-secret"),
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: parseDuration(getEnv("ACCESS_TOKEN_DURATION", "720h")),
			},
		},
		Storage: config.S3Configs{
			Region:         getEnv("STORAGE_REGION", "auto"),
			Endpoint:       getEnv("STORAGE_ENDPOINT", "http://localhost:9000"),
			PublicEndpoint: getEnv("STORAGE_PUBLIC_ENDPOINT", "http://localhost:9000"),
			AccessKey:      getEnv("STORAGE_ACCESS_KEY", "access-key"),
			SecretKey:      getEnv("STORAGE_SECRET_KEY", "secret-key"),
			SSLDisabled:    parseBool(getEnv("STORAGE_SSL_DISABLE", "false")),
			Bucket:         getEnv("STORAGE_BUCKET", "chirp"),
		},
		File: config.FileConfigs{
			MaxSize: parseInt64(getEnv("MAX_UPLOAD_SIZE", "2097152")),
		},
	}

	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if xcontext.Configs(s.ctx).Env == "local" {
		level = logger.DEBUG
	}

	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
}

func (s *srv) loadTokenEngine() {
	s.ctx = xcontext.WithTokenEngine(s.ctx,
		authenticator.NewTokenEngine(xcontext.Configs(s.ctx).Auth.TokenSecret))
}

func (s *srv) newDatabase() *gorm.DB {
	databaseCfg := xcontext.Configs(s.ctx).Database
	db, err := gorm.Open(mysql.Open(databaseCfg.ConnectionString()), &gorm.Config{
		// Duplicate-entry errors from the driver surface as
		// gorm.ErrDuplicatedKey, which the domains map to conflicts.
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) migrateDB() {
	if err := migration.AutoMigrate(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadStorage() {
	s.fileStorage = storage.NewS3Storage(xcontext.Configs(s.ctx).Storage)
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.followshipRepo = repository.NewFollowshipRepository()
	s.tweetRepo = repository.NewTweetRepository()
	s.replyRepo = repository.NewReplyRepository()
	s.likeRepo = repository.NewLikeRepository()
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo, s.fileStorage)
	s.followDomain = domain.NewFollowDomain(s.followshipRepo, s.userRepo)
	s.tweetDomain = domain.NewTweetDomain(s.tweetRepo, s.replyRepo, s.likeRepo, s.userRepo)
}

func (s *srv) startMigrate(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func parseDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		panic(err)
	}

	return d
}

func parseInt64(value string) int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		panic(err)
	}

	return n
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(value)
	if err != nil {
		panic(err)
	}

	return b
}
