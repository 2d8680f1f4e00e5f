package handler

import (
	"net/http"
	"strconv"

	"yatube/internal/entity"
	"yatube/internal/middleware"
	"yatube/internal/view"
	"yatube/internal/wlog"
)

// viewerOf returns the authenticated user, or nil on anonymous requests.
func viewerOf(r *http.Request) *entity.User {
	user, _ := middleware.CurrentUser(r)
	return user
}

// parseID turns a {postID} path segment into a record id.
func parseID(raw string) (uint, error) {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}

// parseGroupID reads the optional group selector of the post form. An empty
// or unparsable value means "no group".
func parseGroupID(raw string) *uint {
	if raw == "" {
		return nil
	}
	id, err := parseID(raw)
	if err != nil {
		return nil
	}
	return &id
}

func renderServerError(renderer *view.PageRenderer, logger wlog.Logger, w http.ResponseWriter, err error) {
	logger.Logf("Request failed{%v}", err)
	if rerr := renderer.Render(w, http.StatusInternalServerError, "server_error.html", nil); rerr != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

type notFoundPage struct {
	Viewer *entity.User
	Path   string
}

func renderNotFound(renderer *view.PageRenderer, w http.ResponseWriter, r *http.Request) {
	data := notFoundPage{Viewer: viewerOf(r), Path: r.URL.Path}
	if err := renderer.Render(w, http.StatusNotFound, "not_found.html", data); err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
	}
}
