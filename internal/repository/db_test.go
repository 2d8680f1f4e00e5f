package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"yatube/internal/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives every test its own named in-memory database, shared
// across the pool's connections.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("Could not open the test database: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{}, &entity.UserSecret{}, &entity.Group{},
		&entity.Post{}, &entity.Comment{}, &entity.Follow{},
	)
	if err != nil {
		t.Fatalf("Could not migrate the test database: %v", err)
	}
	return db
}

func mustCreateUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{Username: username, Active: true, CreatedAt: time.Now()}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Could not create user %q: %v", username, err)
	}
	return user
}

func mustCreatePost(t *testing.T, db *gorm.DB, author *entity.User, text string, createdAt time.Time) *entity.Post {
	t.Helper()

	post := &entity.Post{Text: text, CreatedAt: createdAt, AuthorID: author.ID}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("Could not create post %q: %v", text, err)
	}
	return post
}

func mustCreateGroup(t *testing.T, db *gorm.DB, title, slug string) *entity.Group {
	t.Helper()

	group := &entity.Group{Title: title, Slug: slug}
	if err := db.Create(group).Error; err != nil {
		t.Fatalf("Could not create group %q: %v", slug, err)
	}
	return group
}
