package entity

import "time"

// Post is an author-owned content unit. AuthorID and CreatedAt are set once
// at creation and never reassigned; edits may only touch Text, Group and Image.
type Post struct {
	ID        uint      `gorm:"primaryKey"`
	Text      string    `gorm:"not null"`
	Image     string    // filename under the media directory, empty when no image was attached
	CreatedAt time.Time `gorm:"not null;index"`

	AuthorID uint `gorm:"not null;index"`
	Author   User `gorm:"foreignKey:AuthorID;references:ID"`

	GroupID *uint  `gorm:"index"`
	Group   *Group `gorm:"foreignKey:GroupID;references:ID"`

	Comments []Comment `gorm:"foreignKey:PostID;references:ID"`
}
