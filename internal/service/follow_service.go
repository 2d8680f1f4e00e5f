package service

import (
	"time"

	"yatube/internal/entity"
	"yatube/internal/repository"
	"yatube/internal/wlog"
)

// Service maintaining the follower->followed graph.
//
// Follow is an idempotent get-or-create: following an already followed author
// succeeds silently, only a self-follow is refused. Unfollow of a missing
// edge is equally a no-op.
type FollowService interface {
	Follow(follower, followed *entity.User) error
	Unfollow(follower, followed *entity.User) error

	IsFollowing(followerID, followedID uint) (bool, error)

	FollowersOf(userID uint) ([]*entity.User, error)
	FollowingOf(userID uint) ([]*entity.User, error)
}

type followService struct {
	follows repository.FollowRepository
	logger  wlog.Logger
}

func NewFollowService(follows repository.FollowRepository, logger wlog.Logger) FollowService {
	return &followService{
		follows: follows,
		logger:  logger,
	}
}

func (s *followService) Follow(follower, followed *entity.User) error {
	if follower.ID == followed.ID {
		return ErrSelfFollow
	}

	err := s.follows.Create(&entity.Follow{
		FollowerID: follower.ID,
		FollowedID: followed.ID,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		s.logger.Logf("Follow %q -> %q failed{%v}", follower.Username, followed.Username, err)
		return err
	}

	s.logger.Logf("%q now follows %q", follower.Username, followed.Username)
	return nil
}

func (s *followService) Unfollow(follower, followed *entity.User) error {
	if err := s.follows.Delete(follower.ID, followed.ID); err != nil {
		s.logger.Logf("Unfollow %q -> %q failed{%v}", follower.Username, followed.Username, err)
		return err
	}

	s.logger.Logf("%q no longer follows %q", follower.Username, followed.Username)
	return nil
}

func (s *followService) IsFollowing(followerID, followedID uint) (bool, error) {
	return s.follows.Exists(followerID, followedID)
}

func (s *followService) FollowersOf(userID uint) ([]*entity.User, error) {
	return s.follows.FollowersOf(userID)
}

func (s *followService) FollowingOf(userID uint) ([]*entity.User, error) {
	return s.follows.FollowingOf(userID)
}
