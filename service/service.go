package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Nafiz37/Event-Ekhanei-sub000/db"
	"github.com/Nafiz37/Event-Ekhanei-sub000/http"
	"github.com/Nafiz37/Event-Ekhanei-sub000/message"
)

type Deps struct {
	Logger      watermill.LoggerAdapter
	DB          *db.DB
	RedisClient *redis.Client

	PaymentRefunder     message.PaymentRefunder
	ReceiptsClient      message.ReceiptsClient
	SpreadsheetAppender message.SpreadsheetAppender
	TicketGenerator     message.TicketGenerator

	HTTPAddr        string
	ShutdownTimeout time.Duration
}

type Service struct {
	db         *db.DB
	forwarder  *message.Forwarder
	msgRouter  *message.Router
	httpRouter *echo.Echo

	httpAddr        string
	shutdownTimeout time.Duration
}

func New(deps Deps) (*Service, error) {
	publisher, err := message.NewRedisPublisher(deps.RedisClient, deps.Logger)
	if err != nil {
		return nil, err
	}

	commandBus, err := message.NewCommandBus(publisher, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("creating command bus: %w", err)
	}

	msgRouter, err := message.NewRouter(message.RouterDeps{
		CommandSender:       commandBus,
		Logger:              deps.Logger,
		PaymentRefunder:     deps.PaymentRefunder,
		ReceiptsClient:      deps.ReceiptsClient,
		RedisClient:         deps.RedisClient,
		SpreadsheetAppender: deps.SpreadsheetAppender,
		TicketGenerator:     deps.TicketGenerator,
	})
	if err != nil {
		return nil, fmt.Errorf("creating message router: %w", err)
	}

	forwarder, err := message.NewForwarder(deps.DB.Conn, deps.RedisClient, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("creating outbox forwarder: %w", err)
	}

	httpRouter := http.NewRouter(
		db.NewBookingRepo(deps.DB, message.NewOutbox()),
		db.NewEventRepo(deps.DB),
		db.NewTicketTypeRepo(deps.DB),
	)

	return &Service{
		db:              deps.DB,
		forwarder:       forwarder,
		msgRouter:       msgRouter,
		httpRouter:      httpRouter,
		httpAddr:        deps.HTTPAddr,
		shutdownTimeout: deps.ShutdownTimeout,
	}, nil
}

func (s Service) Run(ctx context.Context) error {
	if err := db.InitialiseDB(ctx, s.db); err != nil {
		return fmt.Errorf("initialising db: %w", err)
	}

	g, runCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.msgRouter.Run(runCtx); err != nil {
			return fmt.Errorf("running messaging router: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		if err := s.forwarder.Run(runCtx); err != nil {
			return fmt.Errorf("running outbox forwarder: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		// Wait for message router
		select {
		case <-s.msgRouter.Running():
		case <-runCtx.Done():
			return nil
		}

		logrus.WithField("addr", s.httpAddr).Info("Starting HTTP server...")
		err := s.httpRouter.Start(s.httpAddr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("starting http server: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-runCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		logrus.Info("Shutting down HTTP server...")
		if err := s.httpRouter.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}

		if err := s.forwarder.Close(); err != nil {
			return fmt.Errorf("closing outbox forwarder: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("waiting for shutdown: %w", err)
	}
	logrus.Info("Shutdown complete.")

	return nil
}
