package service

import "errors"

// Sentinel errors the handlers translate into the page-level outcomes:
// validation errors re-render the form, ErrNotFound becomes a 404 page,
// ErrNotOwner becomes a soft redirect to the read view.
var (
	ErrEmptyText      = errors.New("text must not be empty")
	ErrSelfFollow     = errors.New("a user cannot follow themselves")
	ErrNotOwner       = errors.New("only the author may edit this post")
	ErrNotFound       = errors.New("record not found")
	ErrBadCredentials = errors.New("wrong username or password")
	ErrUsernameTaken  = errors.New("username is already taken")
)
