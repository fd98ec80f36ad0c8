// Command seed loads the default catalog and, when SEED_ADMIN_USERNAME is
// set, a bootstrap administrator. Running it again changes nothing.
package main

import (
	"context"

	"github.com/georgemunganga/inventory-backend/internal/config"
	"github.com/georgemunganga/inventory-backend/internal/modules/catalog"
	"github.com/georgemunganga/inventory-backend/internal/modules/user"
	"github.com/georgemunganga/inventory-backend/internal/platform/database"
	"github.com/georgemunganga/inventory-backend/internal/platform/logging"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logrus.WithError(err).Fatal("configure logging")
	}
	ctx := context.Background()

	db, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("connect database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.WithError(err).Fatal("migrate database")
	}

	res, err := catalog.Seed(ctx, catalog.NewPostgresRepository(db), logger)
	if err != nil {
		logger.WithError(err).Fatal("seed catalog")
	}
	logger.WithFields(logrus.Fields{
		"categories": res.Categories,
		"brands":     res.Brands,
	}).Info("catalog seeded")

	admin := cfg.SeedAdmin
	if admin.Username == "" {
		return
	}
	if admin.Password == "" {
		logger.Fatal("SEED_ADMIN_PASSWORD is required when SEED_ADMIN_USERNAME is set")
	}
	u, created, err := user.NewService(user.NewPostgresRepository(db)).
		EnsureAdmin(ctx, admin.Username, admin.Email, admin.Password)
	if err != nil {
		logger.WithError(err).Fatal("seed admin user")
	}
	logger.WithFields(logrus.Fields{"username": u.Username, "created": created}).Info("admin user ready")
}
