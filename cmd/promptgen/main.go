package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rabbitmq/amqp091-go"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"promptgen-server/internal/bookctx"
	"promptgen-server/internal/cache"
	"promptgen-server/internal/config"
	"promptgen-server/internal/consistency"
	"promptgen-server/internal/generator"
	"promptgen-server/internal/llm"
	"promptgen-server/internal/logger"
	"promptgen-server/internal/pipeline"
	"promptgen-server/internal/server"
	"promptgen-server/internal/style"
	"promptgen-server/internal/templates"
	"promptgen-server/internal/vectorstore"
	"promptgen-server/internal/worker"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Setup ---
	log, err := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		OutputPath: cfg.Logger.OutputPath,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.ReplaceGlobals(log)
	zap.L().Info("Logger initialized", zap.String("logLevel", cfg.Logger.Level))
	zap.L().Info("Configuration loaded")

	// --- External Connections ---
	pgPool, err := setupPostgres(cfg.Postgres)
	if err != nil {
		zap.L().Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer pgPool.Close()
	zap.L().Info("Connected to PostgreSQL")

	redisClient, err := setupRedis(cfg.Redis)
	if err != nil {
		zap.L().Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	zap.L().Info("Connected to Redis")

	llmClient, err := llm.NewOpenAIClient(cfg.OpenAI, log)
	if err != nil {
		zap.L().Fatal("Failed to initialize LLM client", zap.Error(err))
	}

	// --- Dependency Injection ---
	redisCache := cache.NewRedisCache(redisClient, log)
	vectors := vectorstore.NewMemoryStore()

	styles := style.NewEngine(log)
	tpls := templates.NewEngine()
	registry := generator.NewRegistry()
	consistencyEngine := consistency.NewEngine(llmClient, redisCache, vectors, log)

	bookRepo := bookctx.NewPostgresRepository(pgPool, log)
	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := bookRepo.EnsureSchema(schemaCtx); err != nil {
		schemaCancel()
		zap.L().Fatal("Failed to ensure book context schema", zap.Error(err))
	}
	schemaCancel()
	store := bookctx.NewStore(bookRepo, redisCache, log)

	analyzer := pipeline.NewAnalyzer(llmClient, log)
	enhancer := pipeline.NewEnhancer(llmClient, redisCache, registry,
		time.Duration(cfg.Pipeline.EnhanceTTL)*time.Second, log)
	manager := pipeline.NewManager(registry, styles, tpls, consistencyEngine,
		store, analyzer, enhancer, cfg.Pipeline, log)

	handler := server.NewHandler(manager, styles, registry, log)
	router := server.NewRouter(cfg.HTTP, handler, log)
	srv := server.NewHTTPServer(cfg.HTTP, router)

	// --- Background Worker (optional) ---
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var mqConn *amqp091.Connection
	var consumer *worker.Consumer
	if cfg.RabbitMQ.Enabled {
		mqConn, err = connectRabbitMQ(cfg.RabbitMQ.URL, log)
		if err != nil {
			zap.L().Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		defer mqConn.Close()
		zap.L().Info("Connected to RabbitMQ")

		pubChannel, err := mqConn.Channel()
		if err != nil {
			zap.L().Fatal("Failed to open RabbitMQ channel", zap.Error(err))
		}
		defer pubChannel.Close()

		publisher, err := worker.NewRabbitMQPublisher(pubChannel, cfg.RabbitMQ.ResultQueue, log)
		if err != nil {
			zap.L().Fatal("Failed to create result publisher", zap.Error(err))
		}

		taskHandler := worker.NewTaskHandler(manager, publisher, log)
		consumer = worker.NewConsumer(mqConn, taskHandler, cfg.RabbitMQ, log)
		if err := consumer.Start(workerCtx); err != nil {
			zap.L().Fatal("Failed to start task consumer", zap.Error(err))
		}
	} else {
		zap.L().Info("RabbitMQ worker disabled")
	}

	// --- Start HTTP Server ---
	zap.L().Info("Starting HTTP server", zap.String("port", cfg.HTTP.Port))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("HTTP Server listen error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	if consumer != nil {
		workerCancel()
		if err := consumer.Stop(); err != nil {
			zap.L().Error("Error stopping task consumer", zap.Error(err))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exiting")
}

// setupPostgres initializes the PostgreSQL connection pool with retry logic.
func setupPostgres(cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("unable to parse postgres config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.MaxConns)

	var pool *pgxpool.Pool
	var lastErr error
	maxRetries := 50
	retryDelay := 3 * time.Second

	zap.L().Info("Attempting to connect to PostgreSQL",
		zap.Int("max_retries", maxRetries), zap.Duration("retry_delay", retryDelay))

	for i := 0; i < maxRetries; i++ {
		attempt := i + 1
		connectCtx, connectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		pool, err = pgxpool.NewWithConfig(connectCtx, poolConfig)
		connectCancel()

		if err != nil {
			lastErr = fmt.Errorf("unable to create postgres connection pool (attempt %d/%d): %w", attempt, maxRetries, err)
			zap.L().Warn("Postgres connection pool creation failed, retrying...",
				zap.Int("attempt", attempt), zap.Error(err))
			if i < maxRetries-1 {
				time.Sleep(retryDelay)
			}
			continue
		}

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
		err = pool.Ping(pingCtx)
		pingCancel()

		if err == nil {
			zap.L().Info("Successfully connected to PostgreSQL", zap.Int("attempt", attempt))
			return pool, nil
		}

		pool.Close()
		lastErr = fmt.Errorf("unable to ping postgres (attempt %d/%d): %w", attempt, maxRetries, err)
		zap.L().Warn("Postgres ping failed, retrying...",
			zap.Int("attempt", attempt), zap.Error(err))
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	return nil, lastErr
}

// setupRedis initializes the Redis client with retry logic.
func setupRedis(cfg config.RedisConfig) (*redis.Client, error) {
	redisOpts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	var client *redis.Client
	var lastErr error
	maxRetries := 50
	retryDelay := 3 * time.Second

	zap.L().Info("Attempting to connect and ping Redis",
		zap.String("address", cfg.Addr),
		zap.Int("max_retries", maxRetries), zap.Duration("retry_delay", retryDelay))

	for i := 0; i < maxRetries; i++ {
		attempt := i + 1
		client = redis.NewClient(redisOpts)

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, err := client.Ping(pingCtx).Result()
		pingCancel()

		if err == nil {
			zap.L().Info("Successfully connected and pinged Redis", zap.Int("attempt", attempt))
			return client, nil
		}

		client.Close()
		lastErr = fmt.Errorf("unable to ping redis (attempt %d/%d): %w", attempt, maxRetries, err)
		zap.L().Warn("Redis ping failed, retrying...",
			zap.Int("attempt", attempt), zap.Error(err))
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	return nil, lastErr
}

// connectRabbitMQ dials RabbitMQ with retry logic and logs unexpected
// connection closures.
func connectRabbitMQ(url string, log *zap.Logger) (*amqp091.Connection, error) {
	var conn *amqp091.Connection
	var err error
	maxRetries := 50
	retryDelay := 5 * time.Second

	log.Info("Attempting to connect to RabbitMQ",
		zap.Int("max_retries", maxRetries), zap.Duration("retry_delay", retryDelay))

	for i := 0; i < maxRetries; i++ {
		attempt := i + 1
		conn, err = amqp091.Dial(url)
		if err == nil {
			log.Info("Successfully connected to RabbitMQ", zap.Int("attempt", attempt))
			go func() {
				notifyClose := make(chan *amqp091.Error)
				conn.NotifyClose(notifyClose)
				if closeErr := <-notifyClose; closeErr != nil {
					log.Error("RabbitMQ connection closed unexpectedly", zap.Error(closeErr))
				}
			}()
			return conn, nil
		}

		log.Warn("RabbitMQ connection failed, retrying...",
			zap.Int("attempt", attempt), zap.Error(err))
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	return nil, fmt.Errorf("unable to connect to RabbitMQ after %d attempts: %w", maxRetries, err)
}
