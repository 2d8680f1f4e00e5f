package service

import (
	"yatube/internal/entity"
	"yatube/internal/pagination"
	"yatube/internal/repository"
	"yatube/internal/wlog"
)

// Service assembling the personalized feed: the posts authored by everyone
// the viewer follows, newest first. Authentication is enforced at the HTTP
// boundary before this service is reached.
type FeedService interface {
	BuildFeed(viewer *entity.User, pageNumber, pageSize int) (*PostPage, error)
}

type feedService struct {
	follows repository.FollowRepository
	posts   repository.PostRepository
	logger  wlog.Logger
}

func NewFeedService(follows repository.FollowRepository, posts repository.PostRepository, logger wlog.Logger) FeedService {
	return &feedService{
		follows: follows,
		posts:   posts,
		logger:  logger,
	}
}

func (s *feedService) BuildFeed(viewer *entity.User, pageNumber, pageSize int) (*PostPage, error) {
	following, err := s.follows.FollowingOf(viewer.ID)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]uint, 0, len(following))
	for _, author := range following {
		authorIDs = append(authorIDs, author.ID)
	}

	count, err := s.posts.CountByAuthors(authorIDs)
	if err != nil {
		return nil, err
	}

	page := pagination.New(int(count), pageSize).Page(pageNumber)
	posts, err := s.posts.GetPageByAuthors(authorIDs, page.Offset(), page.Limit())
	if err != nil {
		return nil, err
	}

	return &PostPage{Posts: posts, Page: page}, nil
}
