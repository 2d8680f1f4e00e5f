package middleware

import (
	"context"
	"net/http"

	"yatube/internal/entity"
	"yatube/internal/repository"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie holding the authenticated user's identity.
const SessionName = "auth-session"

type contextKey int

const userKey contextKey = 0

// CurrentUser pulls the authenticated user out of the request context.
// The second return is false on anonymous requests.
func CurrentUser(r *http.Request) (*entity.User, bool) {
	user, ok := r.Context().Value(userKey).(*entity.User)
	return user, ok
}

func resolveUser(store *sessions.CookieStore, users repository.UserRepository, r *http.Request) (*entity.User, bool) {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return nil, false
	}

	id, ok := session.Values["user_id"].(uint)
	if !ok {
		// gob may round-trip the id as a plain int depending on how it was stored.
		if v, okInt := session.Values["user_id"].(int); okInt && v > 0 {
			id, ok = uint(v), true
		}
	}
	if !ok {
		return nil, false
	}

	user, err := users.GetByID(id)
	if err != nil || !user.Active {
		return nil, false
	}
	return user, true
}

// WithUser attaches the authenticated user to the request context when a
// valid session is present, and lets anonymous requests straight through.
// Public pages that vary on authentication (the profile's follow button) use
// this one.
func WithUser(store *sessions.CookieStore, users repository.UserRepository, next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if user, ok := resolveUser(store, users, r); ok {
			r = r.WithContext(context.WithValue(r.Context(), userKey, user))
		}
		next(w, r)
	}
}

// LoginRequired guards a handler behind authentication. Anonymous requests
// are redirected to the login page with the original path in ?next= so the
// flow can resume after a successful login.
func LoginRequired(store *sessions.CookieStore, users repository.UserRepository, next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := resolveUser(store, users, r)
		if !ok {
			// Route paths only ever hold slug/username/id segments, so the
			// path goes into ?next= verbatim and comes back readable.
			http.Redirect(w, r, "/auth/login/?next="+r.URL.Path, http.StatusFound)
			return
		}

		r = r.WithContext(context.WithValue(r.Context(), userKey, user))
		next(w, r)
	}
}
