package service

import (
	"errors"
	"strings"
	"time"

	"yatube/internal/entity"
	"yatube/internal/repository"
	"yatube/internal/wlog"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service used for the user registration and login phases
type AuthService interface {
	Register(username, email, displayName, password string) (*entity.User, error) // Tries to create a new user, returning it if successful
	Login(username, password string) (*entity.User, error)                        // Tries to authenticate a user via its credentials
}

type authService struct {
	users  repository.UserRepository
	logger wlog.Logger
}

func NewAuthService(users repository.UserRepository, logger wlog.Logger) AuthService {
	return &authService{
		users:  users,
		logger: logger,
	}
}

func (a *authService) Register(username, email, displayName, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrBadCredentials
	}

	if _, err := a.users.GetByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		a.logger.Logf("Could not calculate hash{%v}", err)
		return nil, err
	}

	user := &entity.User{
		Username:    username,
		Email:       email,
		DisplayName: displayName,
		Active:      true,
		CreatedAt:   time.Now(),
		Secret: entity.UserSecret{
			Hash: string(hash),
		},
	}
	if err := a.users.Create(user); err != nil {
		// The unique index on username may fire under a concurrent signup.
		a.logger.Logf("User creation failed{%v}", err)
		return nil, ErrUsernameTaken
	}

	a.logger.Logf("User %q registered", username)
	return user, nil
}

func (a *authService) Login(username, password string) (*entity.User, error) {
	user, err := a.users.GetForLogin(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !user.Active {
		return nil, ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Secret.Hash), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}

	a.logger.Logf("User %q logged in", username)
	return user, nil
}
