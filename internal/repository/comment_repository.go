package repository

import (
	"yatube/internal/entity"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByPost(postID uint) ([]*entity.Comment, error) // All comments of a post, oldest first
	CountByPost(postID uint) (int64, error)
}

// Implementation of the repository using a SQLite DB
type SQLiteCommentRepository struct {
	db *gorm.DB
}

func NewSQLiteCommentRepository(db *gorm.DB) CommentRepository {
	return &SQLiteCommentRepository{db}
}

func (repo *SQLiteCommentRepository) Create(comment *entity.Comment) error {
	return repo.db.Create(comment).Error
}

func (repo *SQLiteCommentRepository) GetByPost(postID uint) ([]*entity.Comment, error) {
	var comments []*entity.Comment
	err := repo.db.Preload("Author").Where("post_id = ?", postID).
		Order("created_at ASC").Order("id ASC").Find(&comments).Error
	return comments, err
}

func (repo *SQLiteCommentRepository) CountByPost(postID uint) (int64, error) {
	var count int64
	err := repo.db.Model(&entity.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
