package handler

import (
	"net/http"

	"yatube/internal/entity"
	"yatube/internal/view"
)

type staticPage struct {
	Viewer *entity.User
}

// SiteHandler serves the pages that carry no data of their own: the flat
// about pages and the not-found fallback.
type SiteHandler struct {
	renderer *view.PageRenderer
}

func NewSiteHandler(renderer *view.PageRenderer) *SiteHandler {
	return &SiteHandler{renderer: renderer}
}

func (h *SiteHandler) AboutAuthor(w http.ResponseWriter, r *http.Request) {
	h.static(w, r, "about_author.html")
}

func (h *SiteHandler) AboutTech(w http.ResponseWriter, r *http.Request) {
	h.static(w, r, "about_tech.html")
}

// NotFound renders the 404 page. It doubles as the router's fallback for
// unmatched paths and as the explicit /404/ route.
func (h *SiteHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	renderNotFound(h.renderer, w, r)
}

func (h *SiteHandler) static(w http.ResponseWriter, r *http.Request, name string) {
	if err := h.renderer.Render(w, http.StatusOK, name, staticPage{Viewer: viewerOf(r)}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
