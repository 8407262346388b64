package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	goredis "github.com/redis/go-redis/v9"

	"github.com/shenikar/systemfailed/internal/config"
	"github.com/shenikar/systemfailed/internal/engagement"
	"github.com/shenikar/systemfailed/internal/geocode"
	v1 "github.com/shenikar/systemfailed/internal/handler/http/v1"
	"github.com/shenikar/systemfailed/internal/repository"
	"github.com/shenikar/systemfailed/internal/seed"
	"github.com/shenikar/systemfailed/internal/service"
	"github.com/shenikar/systemfailed/internal/storage"
	"github.com/shenikar/systemfailed/internal/webhook"
	"github.com/shenikar/systemfailed/pkg/logger"
	"github.com/shenikar/systemfailed/pkg/postgres"
	redisclient "github.com/shenikar/systemfailed/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/systemfailed/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title SystemFailed API
// @version 1.0
// @description Community registry of deaths and injuries caused by civic negligence, and of hazards that have not yet claimed a victim.
// @host localhost:8080
// @BasePath /api/v1
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newBackend выбирает стратегию хранения один раз при старте.
// Возвращаемая функция закрывает ресурсы стратегии.
func newBackend(ctx context.Context, cfg *config.Config, log *logrus.Logger, redisClient *goredis.Client, store *engagement.Store) (service.Backend, func(), error) {
	if cfg.SeedMode() {
		log.Warn("DATABASE_URL is not set, serving built-in seed data")
		return seed.NewBackend(store), func() {}, nil
	}

	if err := runMigrations(cfg, log); err != nil {
		return nil, nil, err
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Successfully connected to PostgreSQL")

	return repository.NewBackend(dbpool, redisClient, log), dbpool.Close, nil
}

// newPhotoStore подключает объектное хранилище, если оно настроено
func newPhotoStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.PhotoStore, error) {
	if !cfg.StorageEnabled() {
		log.Warn("STORAGE_ENDPOINT is not set, evidence photos will be ignored")
		return nil, nil
	}

	store, err := storage.NewMinioPhotoStore(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageRegion,
		cfg.StorageBucket,
		cfg.StoragePublicURL,
		cfg.StorageUseSSL,
	)
	if err != nil {
		return nil, err
	}

	if err := store.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	log.WithField("bucket", cfg.StorageBucket).Info("Evidence photo storage is ready")
	return store, nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	engagementStore := engagement.NewStore(redisClient)

	backend, closeBackend, err := newBackend(ctx, cfg, log, redisClient, engagementStore)
	if err != nil {
		log.Fatalf("Failed to initialize backend: %v", err)
	}
	defer closeBackend()

	photoStore, err := newPhotoStore(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize photo storage: %v", err)
	}

	geocoder := geocode.NewNominatim(cfg.GeocoderURL, cfg.GeocoderUserAgent, cfg.GeocoderCountries, log)

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация сервисов
	reportService := service.NewReportService(backend, engagementStore, geocoder, photoStore, webhookPublisher, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(reportService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер вебхуков
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
