package app

import (
	"net/http"
	"time"

	"yatube/internal"
	"yatube/internal/cache"
	"yatube/internal/entity"
	"yatube/internal/handler"
	"yatube/internal/media"
	"yatube/internal/middleware"
	"yatube/internal/repository"
	"yatube/internal/service"
	"yatube/internal/view"
	"yatube/internal/wlog"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"gorm.io/gorm"
)

// Options carries everything the application needs wired together.
type Options struct {
	DB          *gorm.DB
	TemplateDir string
	MediaDir    string
	SecretKey   string

	PageCache cache.Store
	CacheTTL  time.Duration

	Metrics *middleware.Metrics // optional; nil disables the scrape endpoint
	Logs    *wlog.AppLogger     // optional; nil discards all logging
}

// App is the assembled web application.
type App struct {
	Handler http.Handler
}

// New migrates the schema and assembles repositories, services, handlers and
// the route table into one http.Handler.
func New(opts Options) (*App, error) {
	if err := opts.DB.AutoMigrate(
		&entity.User{},
		&entity.UserSecret{},
		&entity.Group{},
		&entity.Post{},
		&entity.Comment{},
		&entity.Follow{},
	); err != nil {
		return nil, err
	}

	sub := func(name string) wlog.Logger {
		if opts.Logs == nil {
			return wlog.Discard()
		}
		logger, err := opts.Logs.RegisterSubsystem(name)
		if err != nil {
			return wlog.Discard()
		}
		return logger
	}

	cookieStore := sessions.NewCookieStore([]byte(opts.SecretKey))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(7 * 24 * time.Hour.Seconds()),
	}

	templates, err := internal.RetrieveWebTemplates(opts.TemplateDir)
	if err != nil {
		return nil, err
	}
	renderer := view.NewPageRenderer(templates)

	mediaStore, err := media.NewStore(opts.MediaDir)
	if err != nil {
		return nil, err
	}

	// Repositories
	users := repository.NewSQLiteUserRepository(opts.DB)
	groups := repository.NewSQLiteGroupRepository(opts.DB)
	posts := repository.NewSQLitePostRepository(opts.DB)
	comments := repository.NewSQLiteCommentRepository(opts.DB)
	follows := repository.NewSQLiteFollowRepository(opts.DB)

	// Services
	authService := service.NewAuthService(users, sub("auth"))
	userService := service.NewUserService(users)
	postService := service.NewPostService(posts, groups, sub("posts"))
	commentService := service.NewCommentService(comments, posts, sub("comments"))
	followService := service.NewFollowService(follows, sub("follows"))
	feedService := service.NewFeedService(follows, posts, sub("feed"))

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cookieStore, renderer, sub("auth-http"))
	postHandler := handler.NewPostHandler(postService, userService, commentService, followService, mediaStore, renderer, sub("posts-http"))
	commentHandler := handler.NewCommentHandler(commentService, renderer, sub("comments-http"))
	followHandler := handler.NewFollowHandler(followService, feedService, userService, renderer, sub("follows-http"))
	siteHandler := handler.NewSiteHandler(renderer)

	withUser := func(next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
		return middleware.WithUser(cookieStore, users, next)
	}
	loginRequired := func(next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
		return middleware.LoginRequired(cookieStore, users, next)
	}

	// Router
	r := mux.NewRouter()
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Wrap)
		r.Handle("/metrics", opts.Metrics.Handler()).Methods("GET")
	}

	// Authentication routes
	r.HandleFunc("/auth/signup/", authHandler.Signup).Methods("POST", "GET")
	r.HandleFunc("/auth/login/", authHandler.Login).Methods("POST", "GET")
	r.HandleFunc("/auth/logout/", loginRequired(authHandler.Logout)).Methods("GET")

	// Flat pages and the explicit not-found route
	r.HandleFunc("/about-author/", withUser(siteHandler.AboutAuthor)).Methods("GET")
	r.HandleFunc("/about-tech/", withUser(siteHandler.AboutTech)).Methods("GET")
	r.HandleFunc("/404/", withUser(siteHandler.NotFound)).Methods("GET")

	// Uploaded images
	r.PathPrefix("/media/").Handler(
		http.StripPrefix("/media/", http.FileServer(http.Dir(mediaStore.Dir()))))

	// The global timeline is the only cached route; profile and post views
	// stay live so a write is visible there immediately.
	r.HandleFunc("/",
		middleware.PageCache(opts.PageCache, opts.CacheTTL, sub("cache"),
			withUser(postHandler.Index))).Methods("GET")

	r.HandleFunc("/new/", loginRequired(postHandler.NewPost)).Methods("POST", "GET")
	r.HandleFunc("/follow/", loginRequired(followHandler.FeedIndex)).Methods("GET")
	r.HandleFunc("/group/{slug}/", withUser(postHandler.GroupPosts)).Methods("GET")

	r.HandleFunc("/{username}/follow/", loginRequired(followHandler.ProfileFollow)).Methods("GET")
	r.HandleFunc("/{username}/unfollow/", loginRequired(followHandler.ProfileUnfollow)).Methods("GET")
	r.HandleFunc("/{username}/{postID:[0-9]+}/edit/", loginRequired(postHandler.PostEdit)).Methods("POST", "GET")
	r.HandleFunc("/{username}/{postID:[0-9]+}/comment/", loginRequired(commentHandler.AddComment)).Methods("POST")
	r.HandleFunc("/{username}/{postID:[0-9]+}/", withUser(postHandler.PostView)).Methods("GET")
	r.HandleFunc("/{username}/", withUser(postHandler.Profile)).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(withUser(siteHandler.NotFound))

	return &App{
		Handler: middleware.WithRecover(renderer, sub("http"), r),
	}, nil
}
