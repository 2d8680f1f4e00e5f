package repository

import (
	"yatube/internal/entity"

	"gorm.io/gorm"
)

// This repository answers every post query shape the pages need. All listing
// methods return posts newest-first, ties broken by id descending so paging
// is deterministic, and take an explicit offset/limit pair.
type PostRepository interface {
	Create(post *entity.Post) error
	Update(post *entity.Post) error

	GetByID(id uint) (*entity.Post, error) // Retrieves one post with its author and group

	CountAll() (int64, error)
	GetPage(offset, limit int) ([]*entity.Post, error) // Global timeline window

	CountByAuthor(authorID uint) (int64, error)
	GetPageByAuthor(authorID uint, offset, limit int) ([]*entity.Post, error) // Profile window

	CountByAuthors(authorIDs []uint) (int64, error)
	GetPageByAuthors(authorIDs []uint, offset, limit int) ([]*entity.Post, error) // Feed window

	RecentByGroup(groupID uint, limit int) ([]*entity.Post, error) // Newest posts of a group, capped
}

// Implementation of the repository using a SQLite DB
type SQLitePostRepository struct {
	db *gorm.DB
}

func NewSQLitePostRepository(db *gorm.DB) PostRepository {
	return &SQLitePostRepository{db}
}

func (repo *SQLitePostRepository) ordered() *gorm.DB {
	return repo.db.Preload("Author").Preload("Group").
		Order("created_at DESC").Order("id DESC")
}

func (repo *SQLitePostRepository) Create(post *entity.Post) error {
	return repo.db.Create(post).Error
}

func (repo *SQLitePostRepository) Update(post *entity.Post) error {
	return repo.db.Save(post).Error
}

func (repo *SQLitePostRepository) GetByID(id uint) (*entity.Post, error) {
	var post entity.Post
	if err := repo.db.Preload("Author").Preload("Group").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (repo *SQLitePostRepository) CountAll() (int64, error) {
	var count int64
	err := repo.db.Model(&entity.Post{}).Count(&count).Error
	return count, err
}

func (repo *SQLitePostRepository) GetPage(offset, limit int) ([]*entity.Post, error) {
	var posts []*entity.Post
	err := repo.ordered().Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (repo *SQLitePostRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := repo.db.Model(&entity.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

func (repo *SQLitePostRepository) GetPageByAuthor(authorID uint, offset, limit int) ([]*entity.Post, error) {
	var posts []*entity.Post
	err := repo.ordered().Where("author_id = ?", authorID).
		Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (repo *SQLitePostRepository) CountByAuthors(authorIDs []uint) (int64, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := repo.db.Model(&entity.Post{}).Where("author_id IN ?", authorIDs).Count(&count).Error
	return count, err
}

func (repo *SQLitePostRepository) GetPageByAuthors(authorIDs []uint, offset, limit int) ([]*entity.Post, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var posts []*entity.Post
	err := repo.ordered().Where("author_id IN ?", authorIDs).
		Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (repo *SQLitePostRepository) RecentByGroup(groupID uint, limit int) ([]*entity.Post, error) {
	var posts []*entity.Post
	err := repo.ordered().Where("group_id = ?", groupID).Limit(limit).Find(&posts).Error
	return posts, err
}
