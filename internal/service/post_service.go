package service

import (
	"errors"
	"strings"
	"time"

	"yatube/internal/entity"
	"yatube/internal/pagination"
	"yatube/internal/repository"
	"yatube/internal/wlog"

	"gorm.io/gorm"
)

// Page sizes of the rendered listings. The global timeline shows ten posts
// per page; every other listing shows five. A group page only ever paginates
// its twelve most recent posts.
const (
	IndexPageSize   = 10
	ProfilePageSize = 5
	GroupPageSize   = 5
	GroupWindow     = 12
	FeedPageSize    = 5
)

// PostPage is one rendered window over an ordered list of posts.
type PostPage struct {
	Posts []*entity.Post
	Page  pagination.Page
}

// Service holding the post lifecycle and the read-side listing queries.
type PostService interface {
	CreatePost(author *entity.User, text string, groupID *uint, image string) (*entity.Post, error)
	EditPost(requester *entity.User, postID uint, text string, groupID *uint, image string) (*entity.Post, error)

	GetPost(id uint) (*entity.Post, error)
	Groups() ([]*entity.Group, error) // All groups, for the post form's selector

	IndexPage(pageNumber int) (*PostPage, error)                           // Global timeline
	AuthorPage(author *entity.User, pageNumber int) (*PostPage, error)     // One author's posts
	GroupPage(slug string, pageNumber int) (*entity.Group, *PostPage, error) // A group's recent posts
}

type postService struct {
	posts  repository.PostRepository
	groups repository.GroupRepository
	logger wlog.Logger
}

func NewPostService(posts repository.PostRepository, groups repository.GroupRepository, logger wlog.Logger) PostService {
	return &postService{
		posts:  posts,
		groups: groups,
		logger: logger,
	}
}

func (s *postService) CreatePost(author *entity.User, text string, groupID *uint, image string) (*entity.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	post := &entity.Post{
		Text:      text,
		Image:     image,
		CreatedAt: time.Now(),
		AuthorID:  author.ID,
		GroupID:   groupID,
	}
	if err := s.posts.Create(post); err != nil {
		s.logger.Logf("Post creation by %q failed{%v}", author.Username, err)
		return nil, err
	}

	s.logger.Logf("Post %d created by %q", post.ID, author.Username)
	return post, nil
}

func (s *postService) EditPost(requester *entity.User, postID uint, text string, groupID *uint, image string) (*entity.Post, error) {
	post, err := s.GetPost(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != requester.ID {
		return post, ErrNotOwner
	}
	if strings.TrimSpace(text) == "" {
		return post, ErrEmptyText
	}

	// Author and creation timestamp are immutable; only the editable fields move.
	post.Text = text
	post.GroupID = groupID
	if image != "" {
		post.Image = image
	}
	if err := s.posts.Update(post); err != nil {
		s.logger.Logf("Post %d update failed{%v}", post.ID, err)
		return nil, err
	}

	s.logger.Logf("Post %d edited by %q", post.ID, requester.Username)
	return post, nil
}

func (s *postService) GetPost(id uint) (*entity.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) IndexPage(pageNumber int) (*PostPage, error) {
	count, err := s.posts.CountAll()
	if err != nil {
		return nil, err
	}

	page := pagination.New(int(count), IndexPageSize).Page(pageNumber)
	posts, err := s.posts.GetPage(page.Offset(), page.Limit())
	if err != nil {
		return nil, err
	}
	return &PostPage{Posts: posts, Page: page}, nil
}

func (s *postService) AuthorPage(author *entity.User, pageNumber int) (*PostPage, error) {
	count, err := s.posts.CountByAuthor(author.ID)
	if err != nil {
		return nil, err
	}

	page := pagination.New(int(count), ProfilePageSize).Page(pageNumber)
	posts, err := s.posts.GetPageByAuthor(author.ID, page.Offset(), page.Limit())
	if err != nil {
		return nil, err
	}
	return &PostPage{Posts: posts, Page: page}, nil
}

func (s *postService) Groups() ([]*entity.Group, error) {
	return s.groups.GetAll()
}

func (s *postService) GroupPage(slug string, pageNumber int) (*entity.Group, *PostPage, error) {
	group, err := s.groups.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	// The group view only ever paginates over its most recent posts, so the
	// window is fetched once and sliced in memory.
	recent, err := s.posts.RecentByGroup(group.ID, GroupWindow)
	if err != nil {
		return nil, nil, err
	}

	page := pagination.New(len(recent), GroupPageSize).Page(pageNumber)
	lo := page.Offset()
	hi := lo + page.Limit()
	if hi > len(recent) {
		hi = len(recent)
	}
	return group, &PostPage{Posts: recent[lo:hi], Page: page}, nil
}
