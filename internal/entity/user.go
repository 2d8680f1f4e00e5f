package entity

import "time"

// User is an authoring identity. Username is the routing key for profile
// pages and never changes after registration.
type User struct {
	ID          uint      `gorm:"primaryKey"`
	Username    string    `gorm:"uniqueIndex;not null"`
	Email       string    `gorm:"index"`
	DisplayName string
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null"`

	Secret   UserSecret `gorm:"foreignKey:UserID;references:ID"`
	Posts    []Post     `gorm:"foreignKey:AuthorID;references:ID"`
	Comments []Comment  `gorm:"foreignKey:AuthorID;references:ID"`
}
