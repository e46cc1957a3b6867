package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/gradevo/gradevo-api/docs"
	"github.com/gradevo/gradevo-api/internal/config"
	"github.com/gradevo/gradevo-api/internal/jwt"
	"github.com/gradevo/gradevo-api/internal/logger"
	"github.com/gradevo/gradevo-api/internal/mailer"
	"github.com/gradevo/gradevo-api/internal/middlewares"
	"github.com/gradevo/gradevo-api/internal/repositories"
	"github.com/gradevo/gradevo-api/internal/router"
	"github.com/gradevo/gradevo-api/internal/services"
	"github.com/gradevo/gradevo-api/internal/storage"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const shutdownTimeout = 10 * time.Second

// @title Gradevo API
// @version 1.0.0
// @description Content and contact API behind the Gradevo marketing site and admin console
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run wires the database, Redis, Kafka, mailer and HTTP server, then serves until
// ctx is cancelled and drains in-flight requests.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, "server"); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	logger.Log.Infow("connected to postgres", "host", cfg.Postgres.Host, "db", cfg.Postgres.DB)

	var limiter middlewares.HitCounter
	if cfg.RateLimit.Enabled {
		rdb := newRedisClient(cfg.Redis)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("redis unavailable, requests are not rate limited until it recovers", "addr", cfg.Redis.Addr(), "error", err)
		}
		limiter = repositories.NewRateLimitCacheRepository(rdb)
	}

	var events services.KafkaWriter
	if w := newKafkaWriter(cfg.Kafka); w != nil {
		defer w.Close()
		events = w
	}

	files, err := storage.NewLocalFileStore(cfg.UploadDir)
	if err != nil {
		return fmt.Errorf("prepare upload dir: %w", err)
	}

	tokens := jwt.New(jwt.WithSecretKey(cfg.JWT.SecretKey))
	txRunner := repositories.NewTxRunner(db)

	authService := services.NewAuthService(repositories.NewUserReadRepository(db), tokens)
	contactService := services.NewContactService(
		repositories.NewContactRepository(db, repositories.GetTxFromContext),
		txRunner,
		mailer.NewSMTPMailer(cfg.SMTP),
		events,
	)

	handler := router.New(router.Deps{
		Auth:            authService,
		Services:        services.NewServiceCatalogService(repositories.NewServiceRepository(db)),
		Portfolio:       services.NewPortfolioService(repositories.NewPortfolioRepository(db), files),
		Testimonials:    services.NewTestimonialService(repositories.NewTestimonialRepository(db), files),
		Dna:             services.NewDnaService(repositories.NewDnaRepository(db), files),
		SiteContent:     services.NewSiteContentService(repositories.NewSiteContentRepository(db), files),
		Contact:         contactService,
		DB:              db,
		Tokener:         tokens,
		RateLimiter:     limiter,
		RateLimitMax:    cfg.RateLimit.Max,
		RateLimitWindow: cfg.RateLimit.Window,
		TrustProxy:      cfg.App.TrustProxy,
		MaxBodyBytes:    cfg.MaxBodyBytes,
		UploadDir:       files.Dir(),
		AllowedOrigin:   cfg.CORS.AllowedOrigin,
		SwaggerURL:      fmt.Sprintf("http://%s/swagger/doc.json", cfg.App.Addr()),
	})

	srv := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

func newRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})
}

// newKafkaWriter returns nil when no brokers are configured.
func newKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	if len(cfg.Brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		Async:                  true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("failed to deliver contact events", "count", len(messages), "error", err)
			}
		},
	}
}
