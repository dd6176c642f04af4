package main

import (
	"context"
	"errors"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	devicetokenapi "github.com/alzcare/notifier/internal/api/handlers/devicetoken"
	reminderapi "github.com/alzcare/notifier/internal/api/handlers/reminder"
	"github.com/alzcare/notifier/internal/api/router"
	"github.com/alzcare/notifier/internal/api/server"
	"github.com/alzcare/notifier/internal/config"
	"github.com/alzcare/notifier/internal/jobqueue"
	"github.com/alzcare/notifier/internal/rabbitmq/handlers/delivery"
	"github.com/alzcare/notifier/internal/rabbitmq/queue"
	devicetokenrepo "github.com/alzcare/notifier/internal/repository/devicetoken"
	reminderrepo "github.com/alzcare/notifier/internal/repository/reminder"
	remindersvc "github.com/alzcare/notifier/internal/service/reminder"
	"github.com/alzcare/notifier/internal/worker"
	"github.com/alzcare/notifier/pkg/authclient"
	"github.com/alzcare/notifier/pkg/email"
	"github.com/alzcare/notifier/pkg/fcm"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	dq, err := queue.NewDeliveryQueue(ch, cfg)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create delivery queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	reminders := reminderrepo.NewRepository(db)
	tokens := devicetokenrepo.NewRepository(db)

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	jobs := jobqueue.New(rdb.Client, cfg.Retry, cfg.Queue.BackoffBase)

	push, err := fcm.NewClient(ctx, cfg.FCM.CredentialsFile)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create fcm client")
	}

	smtpPort, err := strconv.Atoi(cfg.Alert.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse alert smtp port")
	}

	alert := email.NewClient(
		cfg.Alert.SMTPHost,
		smtpPort,
		cfg.Alert.Username,
		cfg.Alert.Password,
		cfg.Alert.From,
	)

	auth := authclient.NewClient(cfg.Auth.BaseURL)

	service := remindersvc.NewService(reminders, jobs, cfg.Queue.MaxAttempts)

	reminderHandler := reminderapi.NewHandler(service, val)
	tokenHandler := devicetokenapi.NewHandler(tokens, val)
	messageHandler := delivery.NewHandler(jobs, reminders, tokens, push, alert, cfg.Alert.To, cfg.Retry)

	dispatcher := worker.NewDispatcher(jobs, dq, cfg.Dispatcher.PollInterval)
	pool := worker.NewPool(dq, messageHandler)

	go dispatcher.Run(ctx, cfg.Retry)
	go pool.Run(ctx, cfg.Retry, cfg.Workers.Count)

	r := router.New(reminderHandler, tokenHandler, auth)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
