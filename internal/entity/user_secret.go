package entity

// Just the ID of a user with its hashed password.
// It's stored in a different table so that even when doing SELECT * on a user, the hash is untouched.
type UserSecret struct {
	UserID uint   `gorm:"primaryKey" json:"-"`
	Hash   string `gorm:"not null" json:"-"` // BCrypt, already salted, default cost
}
