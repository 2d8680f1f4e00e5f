package entity

import "time"

// Comment is a reply attached to exactly one post. The post/author linkage
// is immutable after creation.
type Comment struct {
	ID        uint      `gorm:"primaryKey"`
	Text      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`

	AuthorID uint `gorm:"not null;index"`
	Author   User `gorm:"foreignKey:AuthorID;references:ID"`

	PostID uint `gorm:"not null;index"`
}
