package service

import (
	"fmt"
	"strings"
	"testing"

	"yatube/internal/entity"
	"yatube/internal/repository"
	"yatube/internal/wlog"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the services under test over a throwaway in-memory database.
type testEnv struct {
	db *gorm.DB

	auth     AuthService
	users    UserService
	posts    PostService
	comments CommentService
	follows  FollowService
	feed     FeedService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
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

	userRepo := repository.NewSQLiteUserRepository(db)
	groupRepo := repository.NewSQLiteGroupRepository(db)
	postRepo := repository.NewSQLitePostRepository(db)
	commentRepo := repository.NewSQLiteCommentRepository(db)
	followRepo := repository.NewSQLiteFollowRepository(db)

	return &testEnv{
		db:       db,
		auth:     NewAuthService(userRepo, wlog.Discard()),
		users:    NewUserService(userRepo),
		posts:    NewPostService(postRepo, groupRepo, wlog.Discard()),
		comments: NewCommentService(commentRepo, postRepo, wlog.Discard()),
		follows:  NewFollowService(followRepo, wlog.Discard()),
		feed:     NewFeedService(followRepo, postRepo, wlog.Discard()),
	}
}

func (env *testEnv) mustRegister(t *testing.T, username string) *entity.User {
	t.Helper()

	user, err := env.auth.Register(username, username+"@test.test", "", "12345")
	if err != nil {
		t.Fatalf("Could not register %q: %v", username, err)
	}
	return user
}

func (env *testEnv) mustPost(t *testing.T, author *entity.User, text string) *entity.Post {
	t.Helper()

	post, err := env.posts.CreatePost(author, text, nil, "")
	if err != nil {
		t.Fatalf("Could not create post for %q: %v", author.Username, err)
	}
	return post
}

func (env *testEnv) followCount(t *testing.T) int64 {
	t.Helper()

	var count int64
	if err := env.db.Model(&entity.Follow{}).Count(&count).Error; err != nil {
		t.Fatalf("Could not count follow edges: %v", err)
	}
	return count
}
