package handler

import (
	"errors"
	"net/http"

	"yatube/internal/entity"
	"yatube/internal/pagination"
	"yatube/internal/service"
	"yatube/internal/view"
	"yatube/internal/wlog"

	"github.com/gorilla/mux"
)

type feedPage struct {
	Viewer *entity.User
	Posts  []*entity.Post
	Page   pagination.Page
}

// FollowHandler serves the personalized feed and the follow/unfollow
// actions on profiles.
type FollowHandler struct {
	followService service.FollowService
	feedService   service.FeedService
	userService   service.UserService
	renderer      *view.PageRenderer
	logger        wlog.Logger
}

func NewFollowHandler(
	followService service.FollowService,
	feedService service.FeedService,
	userService service.UserService,
	renderer *view.PageRenderer,
	logger wlog.Logger,
) *FollowHandler {
	return &FollowHandler{
		followService: followService,
		feedService:   feedService,
		userService:   userService,
		renderer:      renderer,
		logger:        logger,
	}
}

// FeedIndex renders the viewer's personalized feed.
func (h *FollowHandler) FeedIndex(w http.ResponseWriter, r *http.Request) {
	viewer := viewerOf(r)
	number := pagination.ParsePage(r.URL.Query().Get("page"))

	pp, err := h.feedService.BuildFeed(viewer, number, service.FeedPageSize)
	if err != nil {
		renderServerError(h.renderer, h.logger, w, err)
		return
	}

	data := feedPage{Viewer: viewer, Posts: pp.Posts, Page: pp.Page}
	if err := h.renderer.Render(w, http.StatusOK, "follow.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ProfileFollow creates the follow edge and returns to the profile. A
// self-follow attempt changes nothing and lands on the same profile.
func (h *FollowHandler) ProfileFollow(w http.ResponseWriter, r *http.Request) {
	h.mutateEdge(w, r, h.followService.Follow)
}

// ProfileUnfollow removes the follow edge and returns to the profile.
// Removing an edge that does not exist is a no-op.
func (h *FollowHandler) ProfileUnfollow(w http.ResponseWriter, r *http.Request) {
	h.mutateEdge(w, r, h.followService.Unfollow)
}

func (h *FollowHandler) mutateEdge(w http.ResponseWriter, r *http.Request, op func(follower, followed *entity.User) error) {
	viewer := viewerOf(r)
	username := mux.Vars(r)["username"]

	author, err := h.userService.GetByUsername(username)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(h.renderer, w, r)
			return
		}
		renderServerError(h.renderer, h.logger, w, err)
		return
	}

	if err := op(viewer, author); err != nil && !errors.Is(err, service.ErrSelfFollow) {
		renderServerError(h.renderer, h.logger, w, err)
		return
	}

	http.Redirect(w, r, "/"+username+"/", http.StatusFound)
}
