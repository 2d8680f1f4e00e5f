package service

import (
	"errors"

	"yatube/internal/entity"
	"yatube/internal/repository"

	"gorm.io/gorm"
)

// Service resolving profile routes to users.
type UserService interface {
	GetByUsername(username string) (*entity.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetByUsername(username string) (*entity.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
