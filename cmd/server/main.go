package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/graphql-go/handler"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/19900531-kt/blog/graph"
	"github.com/19900531-kt/blog/graph/model"
	"github.com/19900531-kt/blog/internal/config"
	"github.com/19900531-kt/blog/internal/observability"
	"github.com/19900531-kt/blog/internal/storage/memory"
)

// seedUsers is the fixed author catalog. Users are created only here; the
// API exposes no way to add or change them.
func seedUsers() []*model.User {
	avatar := "https://example.com/avatar.png"
	return []*model.User{
		{ID: "1", Name: "Keisuke Takahashi", AvatarURL: &avatar},
		{ID: "2", Name: "Taro Sato"},
		{ID: "3", Name: "Hanako Suzuki"},
		{ID: "4", Name: "Jiro Ito"},
		{ID: "5", Name: "Saburo Kato"},
	}
}

// seedPosts builds the initial post set. The author field is a snapshot of
// the catalog entry, copied by value.
func seedPosts(users []*model.User) []*model.Post {
	first := users[0]
	return []*model.Post{
		{
			ID:          "1",
			Title:       "Hello, world",
			Author:      *first.Clone(),
			Body:        "This is the first post.",
			Tags:        []string{"intro", "blog"},
			PublishedAt: model.NewDateTime(time.Now()),
		},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	users := seedUsers()
	userStore := memory.NewUserMemoryStorage(users)
	postStore := memory.NewPostMemoryStorage()
	for _, p := range seedPosts(users) {
		postStore.InsertPost(p)
	}

	resolver := graph.NewResolver(userStore, postStore)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		logger.Fatal("failed to build schema", zap.Error(err))
	}

	gqlHandler := handler.New(&handler.Config{
		Schema:     &schema,
		Pretty:     true,
		Playground: true,
	})

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         3600,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/graphql", gqlHandler)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: corsMiddleware.Handler(mux),
	}

	go func() {
		logger.Info("GraphQL server running", zap.String("addr", cfg.Addr), zap.String("path", "/api/graphql"))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	if err := server.Shutdown(context.Background()); err != nil {
		logger.Fatal("shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
