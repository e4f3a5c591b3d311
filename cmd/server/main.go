package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Dealio/internal/api/routes"
	"Dealio/internal/blobstore"
	"Dealio/internal/config"
	"Dealio/internal/core/categories"
	"Dealio/internal/core/comments"
	"Dealio/internal/core/images"
	"Dealio/internal/core/posts"
	"Dealio/internal/core/reports"
	"Dealio/internal/core/users"
	"Dealio/internal/core/votes"
	"Dealio/internal/db/migrations"
	postgresRepo "Dealio/internal/db/postgres"
	"Dealio/internal/identity"
	"Dealio/internal/notify"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close database", "error", closeErr)
		}
	}()

	if err := db.PingContext(ctx); err != nil {
		return err
	}
	logger.Info("connected to database")

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(db, "."); err != nil {
		return err
	}
	logger.Info("migrations completed successfully")

	svc, err := buildServices(ctx, cfg, db, logger)
	if err != nil {
		return err
	}

	handler := routes.NewRouter(svc, routes.RouterOptions{
		Logger:               logger,
		DB:                   db,
		CORSAllowedOrigins:   cfg.CORSAllowedOrigins,
		SlowRequestThreshold: cfg.SlowRequestThreshold,
		RateLimitRPS:         cfg.RateLimitRPS,
		RateLimitBurst:       cfg.RateLimitBurst,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("dealio server starting", "port", cfg.Port, "env", cfg.Env)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func buildServices(ctx context.Context, cfg *config.Config, db *sql.DB, logger *slog.Logger) (routes.Services, error) {
	postStore, profileStore := blobstore.Store(blobstore.Disabled{}), blobstore.Store(blobstore.Disabled{})
	var publisher notify.Publisher = notify.Noop{}

	if cfg.PostImageBucket != "" || cfg.ProfileImageBucket != "" || cfg.ReportTopicARN != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return routes.Services{}, err
		}
		if cfg.PostImageBucket != "" || cfg.ProfileImageBucket != "" {
			client := s3.NewFromConfig(awsCfg)
			if cfg.PostImageBucket != "" {
				postStore = blobstore.NewS3Store(client, cfg.PostImageBucket, cfg.AWSRegion, logger)
			}
			if cfg.ProfileImageBucket != "" {
				profileStore = blobstore.NewS3Store(client, cfg.ProfileImageBucket, cfg.AWSRegion, logger)
			}
		}
		if cfg.ReportTopicARN != "" {
			publisher = notify.NewSNSPublisher(sns.NewFromConfig(awsCfg), cfg.ReportTopicARN, logger)
		}
	}

	var provider identity.Provider = identity.Disabled{}
	if cfg.Auth0.Enabled() {
		tokens := identity.NewTokenCache(identity.ClientCredentials{
			Domain:       cfg.Auth0.Domain,
			ClientID:     cfg.Auth0.ClientID,
			ClientSecret: cfg.Auth0.ClientSecret,
			Audience:     cfg.Auth0.Audience,
		}, logger)
		provider = identity.NewAuth0Client(cfg.Auth0.Domain, tokens, logger)
	}

	categoryService, err := categories.NewService(postgresRepo.NewCategoryRepository(db), logger)
	if err != nil {
		return routes.Services{}, err
	}

	targets := postgresRepo.NewTargetValidator(db)
	postService := posts.NewPostService(postgresRepo.NewPostRepository(db), categoryService, cfg.PostsPerPage, logger)
	imageService := images.NewService(postgresRepo.NewImageRepository(db), postStore, profileStore, images.Options{
		Extensions: cfg.UploadExtensions,
		MaxBytes:   cfg.MaxUploadBytes,
	}, logger)

	return routes.Services{
		Posts: postService,
		Votes: votes.NewService(postgresRepo.NewVoteRepository(db), logger),
		Comments: comments.NewCommentService(postgresRepo.NewCommentRepository(db), targets, comments.Options{
			PerPage:   cfg.CommentsPerPage,
			MaxRecent: cfg.MaxRecentComments,
		}, logger),
		Categories: categoryService,
		Reports:    reports.NewService(postgresRepo.NewReportRepository(db), targets, publisher, logger),
		Images:     imageService,
		Users:      users.NewUserService(provider, imageService, logger),
	}, nil
}
