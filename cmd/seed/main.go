package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/lawfirm-api/internal/config"
	dbpkg "github.com/BruksfildServices01/lawfirm-api/internal/db"
	infraRepo "github.com/BruksfildServices01/lawfirm-api/internal/infra/repository"
	"github.com/BruksfildServices01/lawfirm-api/internal/logging"
	"github.com/BruksfildServices01/lawfirm-api/internal/middleware"
	"github.com/BruksfildServices01/lawfirm-api/internal/seed"
)

func main() {
	token := flag.Bool("token", false, "print an admin token for POST /api/admin/seed instead of seeding")
	subject := flag.String("subject", "admin", "subject claim of the admin token")
	ttl := flag.Duration("ttl", time.Hour, "lifetime of the admin token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	if *token {
		if cfg.SecretKey == "" {
			logrus.Fatal("SECRET_KEY is not set, admin tokens are disabled")
		}
		signed, err := middleware.SignAdminToken(cfg.SecretKey, *subject, *ttl)
		if err != nil {
			logrus.WithError(err).Fatal("failed to sign token")
		}
		fmt.Println(signed)
		return
	}

	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open log file")
	}
	defer closeLog()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to database")
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	seeder := seed.NewSeeder(
		infraRepo.NewTestimonialGormRepository(db),
		infraRepo.NewPracticeAreaGormRepository(db),
		logger,
	)

	res, err := seeder.Run(context.Background())
	if err != nil {
		logger.WithError(err).Fatal("failed to seed database")
	}

	logger.WithFields(logrus.Fields{
		"testimonials":   res.TestimonialsSeeded,
		"practice_areas": res.PracticeAreasSeeded,
	}).Info("Seed complete")
}
