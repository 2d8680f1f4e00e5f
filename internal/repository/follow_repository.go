package repository

import (
	"yatube/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// This repository maintains the directed follower->followed graph.
type FollowRepository interface {
	Create(follow *entity.Follow) error        // Idempotent: inserting an existing edge is a no-op
	Delete(followerID, followedID uint) error  // Deleting a missing edge is a no-op
	Exists(followerID, followedID uint) (bool, error)

	FollowersOf(userID uint) ([]*entity.User, error) // Users that follow userID
	FollowingOf(userID uint) ([]*entity.User, error) // Users that userID follows
}

// Implementation of the repository using a SQLite DB
type SQLiteFollowRepository struct {
	db *gorm.DB
}

func NewSQLiteFollowRepository(db *gorm.DB) FollowRepository {
	return &SQLiteFollowRepository{db}
}

func (repo *SQLiteFollowRepository) Create(follow *entity.Follow) error {
	// The composite primary key makes duplicate edges a constraint violation;
	// DO NOTHING swallows it so concurrent double-clicks both succeed.
	return repo.db.Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error
}

func (repo *SQLiteFollowRepository) Delete(followerID, followedID uint) error {
	return repo.db.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&entity.Follow{}).Error
}

func (repo *SQLiteFollowRepository) Exists(followerID, followedID uint) (bool, error) {
	var count int64
	err := repo.db.Model(&entity.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

func (repo *SQLiteFollowRepository) FollowersOf(userID uint) ([]*entity.User, error) {
	var users []*entity.User
	err := repo.db.Model(&entity.User{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followed_id = ?", userID).
		Order("users.username").
		Find(&users).Error
	return users, err
}

func (repo *SQLiteFollowRepository) FollowingOf(userID uint) ([]*entity.User, error) {
	var users []*entity.User
	err := repo.db.Model(&entity.User{}).
		Joins("JOIN follows ON follows.followed_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("users.username").
		Find(&users).Error
	return users, err
}
