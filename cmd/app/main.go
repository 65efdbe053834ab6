package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fulfillment/api/docs"
	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/redis"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/logging"
	"fulfillment/internal/metrics"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "optional YAML configuration file")
	flag.Parse()

	configs, err := cmd.Load(*configPath)
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	logger, closer := logging.New(logging.Options{
		Component: "fulfillment",
		Level:     configs.Log.Level,
		File:      configs.Log.File,
	})
	slog.SetDefault(logger)

	err = run(configs, logger)
	if err != nil {
		logger.Error("Service stopped with error", "error", err)
	}
	_ = closer.Close()
	if err != nil {
		os.Exit(1)
	}
}

func run(configs cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(postgres.ConnectionConfig{
		Host:            configs.DB.Host,
		Port:            configs.DB.Port,
		User:            configs.DB.User,
		Password:        configs.DB.Password,
		Name:            configs.DB.Name,
		SSLMode:         configs.DB.SSLMode,
		Driver:          configs.DB.Driver,
		MaxOpenConns:    configs.DB.MaxOpenConns,
		MaxIdleConns:    configs.DB.MaxIdleConns,
		ConnMaxLifetime: configs.DB.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err = postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	m := metrics.New()

	var publisher ports.NotificationPublisher
	if configs.Kafka.Brokers != "" {
		kp := kafka.NewNotificationPublisher(kafka.ParseBrokers(configs.Kafka.Brokers), configs.Kafka.NotificationTopic)
		defer kp.Close()
		publisher = kp
		logger.Info("Publishing notification events", "topic", configs.Kafka.NotificationTopic)
	}

	var idempotency httpin.IdempotencyStore
	if configs.Redis.Addr != "" {
		rdb, err := redis.NewClient(ctx, configs.Redis.Addr, configs.Redis.Password)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rdb.Close()
		idempotency = redis.NewIdempotencyStore(rdb, configs.Redis.IdempotencyTTL)
	}

	app := cmd.NewCompositionRoot(configs, db, logger, m, publisher)

	jobManager := app.JobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	level := log.INFO
	if !configs.IsProduction() {
		level = log.DEBUG
	}
	e := httpin.NewRouter(app.HTTPServer(), httpin.RouterConfig{
		Auth:        httpin.NewAuthenticator(configs.JWT.Secret, configs.JWT.Issuer),
		Logger:      logger,
		Metrics:     m,
		Idempotency: idempotency,
		OpenAPI:     docs.OpenAPI3JSON,
		LogLevel:    level,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", configs.HTTPPort)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
