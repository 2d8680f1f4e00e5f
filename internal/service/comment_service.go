package service

import (
	"strings"
	"time"

	"yatube/internal/entity"
	"yatube/internal/repository"
	"yatube/internal/wlog"
)

// Service attaching comments to existing posts.
type CommentService interface {
	AddComment(author *entity.User, postID uint, text string) (*entity.Comment, error)
	CommentsFor(postID uint) ([]*entity.Comment, error)
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	logger   wlog.Logger
}

func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository, logger wlog.Logger) CommentService {
	return &commentService{
		comments: comments,
		posts:    posts,
		logger:   logger,
	}
}

func (s *commentService) AddComment(author *entity.User, postID uint, text string) (*entity.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	if _, err := s.posts.GetByID(postID); err != nil {
		return nil, ErrNotFound
	}

	comment := &entity.Comment{
		Text:      text,
		CreatedAt: time.Now(),
		AuthorID:  author.ID,
		PostID:    postID,
	}
	if err := s.comments.Create(comment); err != nil {
		s.logger.Logf("Comment on post %d by %q failed{%v}", postID, author.Username, err)
		return nil, err
	}

	s.logger.Logf("Comment %d added on post %d by %q", comment.ID, postID, author.Username)
	return comment, nil
}

func (s *commentService) CommentsFor(postID uint) ([]*entity.Comment, error) {
	return s.comments.GetByPost(postID)
}
