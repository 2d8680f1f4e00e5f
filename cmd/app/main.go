package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yatube/internal"
	"yatube/internal/app"
	"yatube/internal/cache"
	"yatube/internal/middleware"
	"yatube/internal/wlog"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	configDir := "."
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	cfg, err := internal.LoadConfig(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load configuration: %v\n", err)
		os.Exit(1)
	}

	logs, err := wlog.NewAppLogger(cfg.LogDirectory, cfg.EnableLogging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open the log directory: %v\n", err)
		os.Exit(1)
	}
	defer logs.CloseAll()

	db, err := gorm.Open(sqlite.Open(cfg.DBName), &gorm.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open the database: %v\n", err)
		os.Exit(1)
	}

	var pageCache cache.Store = cache.NewMemory()
	if cfg.RedisAddr != "" {
		pageCache = cache.NewRedis(cache.OpenRedis(cfg.RedisAddr))
	}

	application, err := app.New(app.Options{
		DB:          db,
		TemplateDir: cfg.TemplateDirectory,
		MediaDir:    cfg.MediaDirectory,
		SecretKey:   cfg.SecretKey,
		PageCache:   pageCache,
		CacheTTL:    time.Duration(cfg.CacheTTLSeconds) * time.Second,
		Metrics:     middleware.NewMetrics(),
		Logs:        logs,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not assemble the application: %v\n", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.HTTPServerPort),
		Handler:        application.Handler,
		ReadTimeout:    time.Duration(cfg.ReadTimeout * int64(time.Second)),
		WriteTimeout:   time.Duration(cfg.WriteTimeout * int64(time.Second)),
		MaxHeaderBytes: 1 << 20,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	fmt.Printf("Listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintf(os.Stderr, "Server stopped: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Shutting off...\n")
}
