package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Nafiz37/Event-Ekhanei-sub000/clients"
	"github.com/Nafiz37/Event-Ekhanei-sub000/config"
	"github.com/Nafiz37/Event-Ekhanei-sub000/db"
	"github.com/Nafiz37/Event-Ekhanei-sub000/observability"
	"github.com/Nafiz37/Event-Ekhanei-sub000/service"
)

func main() {
	log.Init(logrus.InfoLevel)

	if err := run(); err != nil {
		logrus.WithError(err).Error("failed to run")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logrus.SetLevel(cfg.LogLevel)
	logger := log.NewWatermill(logrus.NewEntry(logrus.StandardLogger()))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.TracingEnabled {
		shutdownTracing, err := observability.ConfigureTraceProvider(cfg.JaegerEndpoint)
		if err != nil {
			return fmt.Errorf("configuring tracing: %w", err)
		}
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				logrus.WithError(err).Error("failed to shut down tracing")
			}
		}()
	}

	c, err := clients.New(cfg.GatewayAddr)
	if err != nil {
		return fmt.Errorf("creating gateway client: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			logrus.WithError(err).Error("failed to close redis connection")
		}
	}()

	dbConn, err := db.Connect(cfg.PostgresURL)
	if err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logrus.WithError(err).Error("failed to close db connection")
		}
	}()

	svc, err := service.New(service.Deps{
		Logger:              logger,
		DB:                  dbConn,
		RedisClient:         rdb,
		PaymentRefunder:     clients.NewPaymentsClient(c),
		ReceiptsClient:      clients.NewReceiptsClient(c),
		SpreadsheetAppender: clients.NewSpreadsheetsClient(c),
		TicketGenerator:     clients.NewFilesClient(c),
		HTTPAddr:            cfg.HTTPAddr,
		ShutdownTimeout:     cfg.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("creating service: %w", err)
	}

	return svc.Run(ctx)
}
