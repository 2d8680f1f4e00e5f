package service

import (
	"errors"
	"testing"

	"yatube/internal/entity"
)

func TestCreatePostRejectsEmptyText(t *testing.T) {
	env := newTestEnv(t)
	author := env.mustRegister(t, "author")

	if _, err := env.posts.CreatePost(author, "   ", nil, ""); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("Expected ErrEmptyText, got: %v", err)
	}

	var count int64
	env.db.Model(&entity.Post{}).Count(&count)
	if count != 0 {
		t.Errorf("A rejected post must not be persisted, found %d", count)
	}
}

func TestEditPostByNonAuthorLeavesTextUnchanged(t *testing.T) {
	env := newTestEnv(t)
	author := env.mustRegister(t, "author")
	intruder := env.mustRegister(t, "intruder")
	post := env.mustPost(t, author, "original text")

	_, err := env.posts.EditPost(intruder, post.ID, "defaced", nil, "")
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("Expected ErrNotOwner, got: %v", err)
	}

	reloaded, err := env.posts.GetPost(post.ID)
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if reloaded.Text != "original text" {
		t.Errorf("Text must be unchanged, got %q", reloaded.Text)
	}
}

func TestEditPostKeepsAuthorAndTimestamp(t *testing.T) {
	env := newTestEnv(t)
	author := env.mustRegister(t, "author")
	post := env.mustPost(t, author, "before")

	edited, err := env.posts.EditPost(author, post.ID, "after", nil, "")
	if err != nil {
		t.Fatalf("EditPost failed: %v", err)
	}
	if edited.Text != "after" {
		t.Errorf("Expected the new text, got %q", edited.Text)
	}
	if edited.AuthorID != author.ID {
		t.Errorf("The author must never change, got %d", edited.AuthorID)
	}
	if !edited.CreatedAt.Equal(post.CreatedAt) {
		t.Errorf("The creation timestamp must never change")
	}
}

func TestEditMissingPost(t *testing.T) {
	env := newTestEnv(t)
	author := env.mustRegister(t, "author")

	if _, err := env.posts.EditPost(author, 999, "text", nil, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got: %v", err)
	}
}

func TestIndexPageUsesTenPerPage(t *testing.T) {
	env := newTestEnv(t)
	author := env.mustRegister(t, "author")
	for i := 0; i < IndexPageSize+3; i++ {
		env.mustPost(t, author, "entry")
	}

	pp, err := env.posts.IndexPage(1)
	if err != nil {
		t.Fatalf("IndexPage failed: %v", err)
	}
	if len(pp.Posts) != IndexPageSize {
		t.Errorf("Expected %d posts on the first page, got %d", IndexPageSize, len(pp.Posts))
	}
	if pp.Page.NumPages != 2 {
		t.Errorf("Expected 2 pages, got %d", pp.Page.NumPages)
	}
}

func TestGroupPageWindowIsCapped(t *testing.T) {
	env := newTestEnv(t)
	author := env.mustRegister(t, "author")

	group := &entity.Group{Title: "Cooking", Slug: "cooking"}
	if err := env.db.Create(group).Error; err != nil {
		t.Fatalf("Could not create group: %v", err)
	}

	for i := 0; i < GroupWindow+5; i++ {
		if _, err := env.posts.CreatePost(author, "in group", &group.ID, ""); err != nil {
			t.Fatalf("CreatePost failed: %v", err)
		}
	}

	_, pp, err := env.posts.GroupPage("cooking", 1)
	if err != nil {
		t.Fatalf("GroupPage failed: %v", err)
	}
	if pp.Page.Count != GroupWindow {
		t.Errorf("The group view paginates at most %d posts, got count %d", GroupWindow, pp.Page.Count)
	}
	if pp.Page.NumPages != 3 {
		t.Errorf("Expected 12 posts across 3 pages of 5, got %d pages", pp.Page.NumPages)
	}

	// The last page holds the remaining 2 of the 12-post window.
	_, pp, err = env.posts.GroupPage("cooking", 9)
	if err != nil {
		t.Fatalf("GroupPage failed: %v", err)
	}
	if pp.Page.Number != 3 || len(pp.Posts) != 2 {
		t.Errorf("Expected page 3 with 2 posts, got page %d with %d", pp.Page.Number, len(pp.Posts))
	}
}

func TestGroupPageUnknownSlug(t *testing.T) {
	env := newTestEnv(t)

	if _, _, err := env.posts.GroupPage("missing", 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got: %v", err)
	}
}
