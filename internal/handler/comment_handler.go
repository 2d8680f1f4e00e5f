package handler

import (
	"errors"
	"fmt"
	"net/http"

	"yatube/internal/service"
	"yatube/internal/view"
	"yatube/internal/wlog"

	"github.com/gorilla/mux"
)

// CommentHandler attaches comments to posts on behalf of the authenticated
// commenter.
type CommentHandler struct {
	commentService service.CommentService
	renderer       *view.PageRenderer
	logger         wlog.Logger
}

func NewCommentHandler(commentService service.CommentService, renderer *view.PageRenderer, logger wlog.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		renderer:       renderer,
		logger:         logger,
	}
}

// AddComment stores the submitted comment and returns to the post's read
// view. An empty comment is silently dropped and lands on the same view, so
// the page never dead-ends on a validation slip.
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	viewer := viewerOf(r)
	vars := mux.Vars(r)

	postID, err := parseID(vars["postID"])
	if err != nil {
		renderNotFound(h.renderer, w, r)
		return
	}

	_, err = h.commentService.AddComment(viewer, postID, r.FormValue("text"))
	if err != nil && !errors.Is(err, service.ErrEmptyText) {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(h.renderer, w, r)
			return
		}
		renderServerError(h.renderer, h.logger, w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/%s/%d/", vars["username"], postID), http.StatusFound)
}
