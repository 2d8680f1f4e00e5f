package handler

import (
	"errors"
	"net/http"
	"strings"

	"yatube/internal/entity"
	"yatube/internal/middleware"
	"yatube/internal/service"
	"yatube/internal/view"
	"yatube/internal/wlog"

	"github.com/gorilla/sessions"
)

type authPage struct {
	Viewer       *entity.User // always nil, auth pages are for anonymous visitors
	Username     string
	Email        string
	DisplayName  string
	Next         string
	ErrorMessage string
}

// AuthHandler manages user registration and authentication
type AuthHandler struct {
	authService service.AuthService
	cookieStore *sessions.CookieStore
	renderer    *view.PageRenderer
	logger      wlog.Logger
}

func NewAuthHandler(authService service.AuthService, cookieStore *sessions.CookieStore, renderer *view.PageRenderer, logger wlog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieStore: cookieStore,
		renderer:    renderer,
		logger:      logger,
	}
}

// Signup registers a user.
// If the method is GET, a registration form is shown.
// If it's POST, it retrieves the input fields and uses the auth service to register the user.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if err := h.renderer.Render(w, http.StatusOK, "signup.html", authPage{}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error occurred while parsing the form", http.StatusBadRequest)
		return
	}

	data := authPage{
		Username:    r.FormValue("username"),
		Email:       r.FormValue("email"),
		DisplayName: r.FormValue("display_name"),
	}

	user, err := h.authService.Register(data.Username, data.Email, data.DisplayName, r.FormValue("password"))
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) || errors.Is(err, service.ErrBadCredentials) {
			data.ErrorMessage = err.Error()
			if rerr := h.renderer.Render(w, http.StatusOK, "signup.html", data); rerr != nil {
				http.Error(w, rerr.Error(), http.StatusInternalServerError)
			}
			return
		}
		renderServerError(h.renderer, h.logger, w, err)
		return
	}

	if err := h.openSession(w, r, user.ID, user.Username); err != nil {
		http.Error(w, "Saving cookie", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// Login handles the authentication phase.
// GET shows the login form, POST verifies the credentials and, when a safe
// ?next= path was carried along, resumes the request that hit the login wall.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		data := authPage{Next: r.URL.Query().Get("next")}
		if err := h.renderer.Render(w, http.StatusOK, "login.html", data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	data := authPage{
		Username: r.FormValue("username"),
		Next:     r.FormValue("next"),
	}

	user, err := h.authService.Login(data.Username, r.FormValue("password"))
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			data.ErrorMessage = err.Error()
			if rerr := h.renderer.Render(w, http.StatusOK, "login.html", data); rerr != nil {
				http.Error(w, rerr.Error(), http.StatusInternalServerError)
			}
			return
		}
		renderServerError(h.renderer, h.logger, w, err)
		return
	}

	if err := h.openSession(w, r, user.ID, user.Username); err != nil {
		http.Error(w, "Saving cookie", http.StatusInternalServerError)
		return
	}

	target := "/"
	// Only same-site paths may be resumed, anything absolute is discarded.
	if strings.HasPrefix(data.Next, "/") && !strings.HasPrefix(data.Next, "//") {
		target = data.Next
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// Logout deletes the current user's session, effectively logging them out
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.cookieStore.Get(r, middleware.SessionName)
	session.Options.MaxAge = -1
	if err := sessions.Save(r, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *AuthHandler) openSession(w http.ResponseWriter, r *http.Request, userID uint, username string) error {
	session, _ := h.cookieStore.Get(r, middleware.SessionName)
	session.Values["user_id"] = userID
	session.Values["username"] = username
	return sessions.Save(r, w)
}
