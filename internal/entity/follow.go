package entity

import "time"

// Follow is a directed edge meaning "follower receives followed's posts in
// their personalized feed". The composite primary key keeps at most one edge
// per ordered (follower, followed) pair; the self-follow ban lives in the
// follow service.
type Follow struct {
	FollowerID uint      `gorm:"primaryKey;autoIncrement:false"`
	FollowedID uint      `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt  time.Time `gorm:"not null"`

	Follower User `gorm:"foreignKey:FollowerID;references:ID"`
	Followed User `gorm:"foreignKey:FollowedID;references:ID"`
}
