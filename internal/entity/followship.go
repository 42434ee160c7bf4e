package entity

import (
	"time"
)

// Followship is the directed edge "follower follows following". The composite
// primary key keeps at most one row per ordered pair.
type Followship struct {
	CreatedAt time.Time
	UpdatedAt time.Time

	FollowerID string `gorm:"primaryKey"`
	Follower   User   `gorm:"foreignKey:FollowerID"`

	FollowingID string `gorm:"primaryKey"`
	Following   User   `gorm:"foreignKey:FollowingID"`
}
