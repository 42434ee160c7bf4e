package entity

// A user likes a tweet at most once, the composite index is the arbiter of
// concurrent duplicates.
type Like struct {
	Base
	UserID  string `gorm:"uniqueIndex:idx_likes_pair;not null"`
	User    User   `gorm:"foreignKey:UserID"`
	TweetID string `gorm:"uniqueIndex:idx_likes_pair;not null"`
	Tweet   Tweet  `gorm:"foreignKey:TweetID"`
}
