package handler

import (
	"errors"
	"fmt"
	"net/http"

	"yatube/internal/entity"
	"yatube/internal/media"
	"yatube/internal/pagination"
	"yatube/internal/service"
	"yatube/internal/view"
	"yatube/internal/wlog"

	"github.com/gorilla/mux"
)

type timelinePage struct {
	Viewer *entity.User
	Posts  []*entity.Post
	Page   pagination.Page
}

type groupPage struct {
	Viewer *entity.User
	Group  *entity.Group
	Posts  []*entity.Post
	Page   pagination.Page
}

type profilePage struct {
	Viewer    *entity.User
	Author    *entity.User
	Posts     []*entity.Post
	Page      pagination.Page
	Following bool
}

type postDetailPage struct {
	Viewer   *entity.User
	Author   *entity.User
	Post     *entity.Post
	Comments []*entity.Comment
}

type postFormPage struct {
	Viewer       *entity.User
	Heading      string
	Post         *entity.Post // nil on the creation form
	Groups       []*entity.Group
	Text         string
	GroupID      string
	ErrorMessage string
}

// PostHandler serves every post-centric page: the timeline, group and
// profile listings, the single-post view and the create/edit forms.
type PostHandler struct {
	postService    service.PostService
	userService    service.UserService
	commentService service.CommentService
	followService  service.FollowService
	mediaStore     *media.Store
	renderer       *view.PageRenderer
	logger         wlog.Logger
}

func NewPostHandler(
	postService service.PostService,
	userService service.UserService,
	commentService service.CommentService,
	followService service.FollowService,
	mediaStore *media.Store,
	renderer *view.PageRenderer,
	logger wlog.Logger,
) *PostHandler {
	return &PostHandler{
		postService:    postService,
		userService:    userService,
		commentService: commentService,
		followService:  followService,
		mediaStore:     mediaStore,
		renderer:       renderer,
		logger:         logger,
	}
}

// Index renders the global timeline. The route is wrapped in the page cache,
// so this handler only runs on cache misses.
func (h *PostHandler) Index(w http.ResponseWriter, r *http.Request) {
	number := pagination.ParsePage(r.URL.Query().Get("page"))
	pp, err := h.postService.IndexPage(number)
	if err != nil {
		renderServerError(h.renderer, h.logger, w, err)
		return
	}

	data := timelinePage{Viewer: viewerOf(r), Posts: pp.Posts, Page: pp.Page}
	if err := h.renderer.Render(w, http.StatusOK, "index.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GroupPosts renders the recent posts of one group.
func (h *PostHandler) GroupPosts(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	number := pagination.ParsePage(r.URL.Query().Get("page"))

	group, pp, err := h.postService.GroupPage(slug, number)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(h.renderer, w, r)
			return
		}
		renderServerError(h.renderer, h.logger, w, err)
		return
	}

	data := groupPage{Viewer: viewerOf(r), Group: group, Posts: pp.Posts, Page: pp.Page}
	if err := h.renderer.Render(w, http.StatusOK, "group.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Profile renders one author's posts, with the follow state when the viewer
// is authenticated.
func (h *PostHandler) Profile(w http.ResponseWriter, r *http.Request) {
	author, err := h.userService.GetByUsername(mux.Vars(r)["username"])
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(h.renderer, w, r)
			return
		}
		renderServerError(h.renderer, h.logger, w, err)
		return
	}

	number := pagination.ParsePage(r.URL.Query().Get("page"))
	pp, err := h.postService.AuthorPage(author, number)
	if err != nil {
		renderServerError(h.renderer, h.logger, w, err)
		return
	}

	data := profilePage{Viewer: viewerOf(r), Author: author, Posts: pp.Posts, Page: pp.Page}
	if data.Viewer != nil {
		following, err := h.followService.IsFollowing(data.Viewer.ID, author.ID)
		if err != nil {
			renderServerError(h.renderer, h.logger, w, err)
			return
		}
		data.Following = following
	}

	if err := h.renderer.Render(w, http.StatusOK, "profile.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// PostView renders a single post with its comments and the comment form.
func (h *PostHandler) PostView(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	author, err := h.userService.GetByUsername(vars["username"])
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(h.renderer, w, r)
			return
		}
		renderServerError(h.renderer, h.logger, w, err)
		return
	}

	postID, err := parseID(vars["postID"])
	if err != nil {
		renderNotFound(h.renderer, w, r)
		return
	}

	post, err := h.postService.GetPost(postID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(h.renderer, w, r)
			return
		}
		renderServerError(h.renderer, h.logger, w, err)
		return
	}

	comments, err := h.commentService.CommentsFor(post.ID)
	if err != nil {
		renderServerError(h.renderer, h.logger, w, err)
		return
	}

	data := postDetailPage{Viewer: viewerOf(r), Author: author, Post: post, Comments: comments}
	if err := h.renderer.Render(w, http.StatusOK, "post.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// NewPost shows the creation form on GET and creates the post on POST,
// redirecting to the timeline on success. Validation failures re-render the
// form with a message instead of redirecting.
func (h *PostHandler) NewPost(w http.ResponseWriter, r *http.Request) {
	viewer := viewerOf(r)

	if r.Method == http.MethodGet {
		h.renderPostForm(w, postFormPage{Viewer: viewer, Heading: "New post"})
		return
	}

	text := r.FormValue("text")
	groupRaw := r.FormValue("group")

	image, err := h.saveUploadedImage(r)
	if err != nil {
		if errors.Is(err, media.ErrNotImage) {
			h.renderPostForm(w, postFormPage{
				Viewer:       viewer,
				Heading:      "New post",
				Text:         text,
				GroupID:      groupRaw,
				ErrorMessage: "The uploaded file is not an image",
			})
			return
		}
		renderServerError(h.renderer, h.logger, w, err)
		return
	}

	if _, err := h.postService.CreatePost(viewer, text, parseGroupID(groupRaw), image); err != nil {
		if errors.Is(err, service.ErrEmptyText) {
			h.renderPostForm(w, postFormPage{
				Viewer:       viewer,
				Heading:      "New post",
				GroupID:      groupRaw,
				ErrorMessage: "The post text must not be empty",
			})
			return
		}
		renderServerError(h.renderer, h.logger, w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// PostEdit lets the author change their post. Anyone else lands back on the
// read view, not on an error page.
func (h *PostHandler) PostEdit(w http.ResponseWriter, r *http.Request) {
	viewer := viewerOf(r)
	vars := mux.Vars(r)

	postID, err := parseID(vars["postID"])
	if err != nil {
		renderNotFound(h.renderer, w, r)
		return
	}

	post, err := h.postService.GetPost(postID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(h.renderer, w, r)
			return
		}
		renderServerError(h.renderer, h.logger, w, err)
		return
	}

	postURL := fmt.Sprintf("/%s/%d/", post.Author.Username, post.ID)
	if post.AuthorID != viewer.ID {
		http.Redirect(w, r, postURL, http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		groupRaw := ""
		if post.GroupID != nil {
			groupRaw = fmt.Sprint(*post.GroupID)
		}
		h.renderPostForm(w, postFormPage{
			Viewer:  viewer,
			Heading: "Edit post",
			Post:    post,
			Text:    post.Text,
			GroupID: groupRaw,
		})
		return
	}

	text := r.FormValue("text")
	groupRaw := r.FormValue("group")

	image, err := h.saveUploadedImage(r)
	if err != nil {
		if errors.Is(err, media.ErrNotImage) {
			h.renderPostForm(w, postFormPage{
				Viewer:       viewer,
				Heading:      "Edit post",
				Post:         post,
				Text:         text,
				GroupID:      groupRaw,
				ErrorMessage: "The uploaded file is not an image",
			})
			return
		}
		renderServerError(h.renderer, h.logger, w, err)
		return
	}

	if _, err := h.postService.EditPost(viewer, post.ID, text, parseGroupID(groupRaw), image); err != nil {
		switch {
		case errors.Is(err, service.ErrNotOwner):
			http.Redirect(w, r, postURL, http.StatusFound)
		case errors.Is(err, service.ErrEmptyText):
			h.renderPostForm(w, postFormPage{
				Viewer:       viewer,
				Heading:      "Edit post",
				Post:         post,
				GroupID:      groupRaw,
				ErrorMessage: "The post text must not be empty",
			})
		default:
			renderServerError(h.renderer, h.logger, w, err)
		}
		return
	}

	http.Redirect(w, r, postURL, http.StatusFound)
}

func (h *PostHandler) renderPostForm(w http.ResponseWriter, data postFormPage) {
	groups, err := h.postService.Groups()
	if err != nil {
		renderServerError(h.renderer, h.logger, w, err)
		return
	}
	data.Groups = groups

	if err := h.renderer.Render(w, http.StatusOK, "new_post.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// saveUploadedImage stores the optional "image" upload and returns its
// stored filename. A request without an upload returns "".
func (h *PostHandler) saveUploadedImage(r *http.Request) (string, error) {
	file, _, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	return h.mediaStore.Save(file)
}
