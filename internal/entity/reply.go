package entity

type Reply struct {
	Base
	UserID  string `gorm:"not null"`
	User    User   `gorm:"foreignKey:UserID"`
	TweetID string `gorm:"index;not null"`
	Tweet   Tweet  `gorm:"foreignKey:TweetID"`
	Comment string `gorm:"type:text"`
}
