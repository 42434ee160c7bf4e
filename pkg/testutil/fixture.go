package testutil

import (
	"context"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/pkg/crypto"
)

var (
	User1 = entity.User{
		Base:     entity.Base{ID: "user1"},
		Account:  "root",
		Name:     "Root",
		Email:    "root@example.com",
		Password: "12345678",
		Avatar:   "https://loremflickr.com/320/240/cat?random=1",
		Cover:    "https://loremflickr.com/820/312/space?random=1",
		Role:     entity.UserRole,
	}

	User2 = entity.User{
		Base:     entity.Base{ID: "user2"},
		Account:  "alice",
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "12345678",
		Avatar:   "https://loremflickr.com/320/240/cat?random=2",
		Cover:    "https://loremflickr.com/820/312/space?random=2",
		Role:     entity.UserRole,
	}

	User3 = entity.User{
		Base:     entity.Base{ID: "user3"},
		Account:  "bob",
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "12345678",
		Avatar:   "https://loremflickr.com/320/240/cat?random=3",
		Cover:    "https://loremflickr.com/820/312/space?random=3",
		Role:     entity.UserRole,
	}

	Tweet1 = entity.Tweet{
		Base:        entity.Base{ID: "tweet1"},
		UserID:      User1.ID,
		Description: "hello world",
	}

	Tweet2 = entity.Tweet{
		Base:        entity.Base{ID: "tweet2"},
		UserID:      User2.ID,
		Description: "second tweet",
	}
)

// CreateFixture inserts the sample users and tweets. Passwords are stored
// hashed so Login works against the plain values above.
func CreateFixture(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	for _, user := range []entity.User{User1, User2, User3} {
		hashed, err := crypto.HashPassword(user.Password)
		if err != nil {
			panic(err)
		}

		user.Password = hashed
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}

	tweetRepo := repository.NewTweetRepository()
	for _, tweet := range []entity.Tweet{Tweet1, Tweet2} {
		tweet := tweet
		if err := tweetRepo.Create(ctx, &tweet); err != nil {
			panic(err)
		}
	}
}
