// Command seed fills a fresh database with demo users, groups, posts,
// comments and follow edges. Groups have no public creation route (they are
// an operator concern), so the seeder stands in for the admin and writes
// through the same services the application uses.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"yatube/internal"
	"yatube/internal/entity"
	"yatube/internal/repository"
	"yatube/internal/service"
	"yatube/internal/wlog"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	userCount    = 12
	groupCount   = 4
	postsPerUser = 6
	seedPassword = "123456" // default password for every demo account
)

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	configDir := "."
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	cfg, err := internal.LoadConfig(configDir)
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBName), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not open the database: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{}, &entity.UserSecret{}, &entity.Group{},
		&entity.Post{}, &entity.Comment{}, &entity.Follow{},
	); err != nil {
		log.Fatalf("Could not migrate the schema: %v", err)
	}

	users := repository.NewSQLiteUserRepository(db)
	groups := repository.NewSQLiteGroupRepository(db)
	posts := repository.NewSQLitePostRepository(db)
	comments := repository.NewSQLiteCommentRepository(db)
	follows := repository.NewSQLiteFollowRepository(db)

	authService := service.NewAuthService(users, wlog.Discard())
	postService := service.NewPostService(posts, groups, wlog.Discard())
	commentService := service.NewCommentService(comments, posts, wlog.Discard())
	followService := service.NewFollowService(follows, wlog.Discard())

	// Groups
	seededGroups := make([]*entity.Group, 0, groupCount)
	for i := 0; i < groupCount; i++ {
		title := gofakeit.BookTitle()
		group := &entity.Group{
			Title:       title,
			Slug:        slugify(title, i),
			Description: gofakeit.Sentence(10),
		}
		if err := groups.Create(group); err != nil {
			log.Fatalf("Could not create group %q: %v", title, err)
		}
		seededGroups = append(seededGroups, group)
	}

	// Users
	seededUsers := make([]*entity.User, 0, userCount)
	for i := 0; i < userCount; i++ {
		username := fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i)
		user, err := authService.Register(username, gofakeit.Email(), gofakeit.Name(), seedPassword)
		if err != nil {
			log.Fatalf("Could not register %q: %v", username, err)
		}
		seededUsers = append(seededUsers, user)
	}

	// Posts and comments
	postTotal, commentTotal := 0, 0
	for _, author := range seededUsers {
		for i := 0; i < postsPerUser; i++ {
			var groupID *uint
			if rand.Intn(2) == 0 {
				groupID = &seededGroups[rand.Intn(len(seededGroups))].ID
			}
			post, err := postService.CreatePost(author, gofakeit.Paragraph(1, 3, 12, " "), groupID, "")
			if err != nil {
				log.Fatalf("Could not create post for %q: %v", author.Username, err)
			}
			postTotal++

			for c := 0; c < rand.Intn(3); c++ {
				commenter := seededUsers[rand.Intn(len(seededUsers))]
				if _, err := commentService.AddComment(commenter, post.ID, gofakeit.Sentence(8)); err != nil {
					log.Fatalf("Could not comment on post %d: %v", post.ID, err)
				}
				commentTotal++
			}
		}
	}

	// Follow edges; self-follows are refused by the service, just skip them.
	followTotal := 0
	for _, follower := range seededUsers {
		for i := 0; i < 3; i++ {
			followed := seededUsers[rand.Intn(len(seededUsers))]
			if err := followService.Follow(follower, followed); err == nil {
				followTotal++
			}
		}
	}

	fmt.Printf("Seeded %d users, %d groups, %d posts, %d comments, %d follows\n",
		len(seededUsers), len(seededGroups), postTotal, commentTotal, followTotal)
	fmt.Printf("Every account logs in with password %q\n", seedPassword)
}

func slugify(title string, n int) string {
	slug := strings.ToLower(strings.Join(strings.Fields(title), "-"))
	return fmt.Sprintf("%s-%d", slug, n)
}
