package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/lawfirm-api/internal/config"
	dbpkg "github.com/BruksfildServices01/lawfirm-api/internal/db"
	"github.com/BruksfildServices01/lawfirm-api/internal/domain/booking"
	"github.com/BruksfildServices01/lawfirm-api/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/lawfirm-api/internal/infra/repository"
	"github.com/BruksfildServices01/lawfirm-api/internal/logging"
	"github.com/BruksfildServices01/lawfirm-api/internal/notify"
	"github.com/BruksfildServices01/lawfirm-api/internal/routes"
	"github.com/BruksfildServices01/lawfirm-api/internal/seed"
)

const shutdownTimeout = 10 * time.Second

func main() {

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open log file")
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to database")
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if cfg.SeedOnStart {
		seeder := seed.NewSeeder(
			infraRepo.NewTestimonialGormRepository(db),
			infraRepo.NewPracticeAreaGormRepository(db),
			logger,
		)
		if _, err := seeder.Run(ctx); err != nil {
			logger.WithError(err).Fatal("failed to seed database")
		}
	}

	// ======================================================
	// SLOT LOCK
	// ======================================================
	var locker booking.SlotLocker = cache.NoopSlotLocker{}
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.WithError(err).Fatal("failed to connect to redis")
		}
		defer client.Close()
		locker = cache.NewRedisSlotLocker(client)
	}

	// ======================================================
	// NOTIFICATIONS
	// ======================================================
	sinks := []notify.Sink{notify.NewSMTPNotifier(cfg.SMTP, logger)}
	if cfg.SecretKey == "" {
		logger.Warn("SECRET_KEY not set, admin endpoints are disabled")
	}
	if !cfg.SMTP.Complete() {
		logger.Warn("SMTP not configured, email notifications are disabled")
	}

	var kafkaSink *notify.KafkaSink
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink = notify.NewKafkaSink(cfg.Kafka.Brokers, map[notify.Kind]string{
			notify.KindBookingCreated: cfg.Kafka.BookingsTopic,
			notify.KindContactCreated: cfg.Kafka.ContactsTopic,
		}, logger)
		sinks = append(sinks, kafkaSink)
	}

	dispatcher := notify.NewDispatcher(logger, sinks...)

	router := routes.NewRouter(routes.Deps{
		DB:       db,
		Config:   cfg,
		Logger:   logger,
		Locker:   locker,
		Notifier: dispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithField("addr", cfg.Addr()).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("failed to start server")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("server shutdown failed")
	}

	dispatcher.Close()
	if kafkaSink != nil {
		if err := kafkaSink.Close(); err != nil {
			logger.WithError(err).Warn("failed to close kafka writer")
		}
	}
}
