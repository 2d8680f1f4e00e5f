package entity

// Group is a named topic a post may optionally belong to.
// The slug is unique and used as the routing key for /group/{slug}/.
type Group struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string

	Posts []Post `gorm:"foreignKey:GroupID;references:ID"`
}
