package repository

import (
	"yatube/internal/entity"

	"gorm.io/gorm"
)

// This repository handles the topic groups posts can be published into.
type GroupRepository interface {
	Create(group *entity.Group) error

	GetBySlug(slug string) (*entity.Group, error) // Retrieves the group routed by the given slug
	GetAll() ([]*entity.Group, error)             // Retrieves all groups, for the post form's group selector
}

// Implementation of the repository using a SQLite DB
type SQLiteGroupRepository struct {
	db *gorm.DB
}

func NewSQLiteGroupRepository(db *gorm.DB) GroupRepository {
	return &SQLiteGroupRepository{db}
}

func (repo *SQLiteGroupRepository) Create(group *entity.Group) error {
	return repo.db.Create(group).Error
}

func (repo *SQLiteGroupRepository) GetBySlug(slug string) (*entity.Group, error) {
	var group entity.Group
	if err := repo.db.Where("slug = ?", slug).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (repo *SQLiteGroupRepository) GetAll() ([]*entity.Group, error) {
	var groups []*entity.Group
	err := repo.db.Order("title").Find(&groups).Error
	return groups, err
}
