package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/georgemunganga/inventory-backend/internal/config"
	"github.com/georgemunganga/inventory-backend/internal/modules/auth"
	"github.com/georgemunganga/inventory-backend/internal/modules/catalog"
	"github.com/georgemunganga/inventory-backend/internal/modules/inventory"
	"github.com/georgemunganga/inventory-backend/internal/modules/sales"
	"github.com/georgemunganga/inventory-backend/internal/modules/user"
	"github.com/georgemunganga/inventory-backend/internal/platform/httpx"
	"github.com/georgemunganga/inventory-backend/internal/platform/logging"
	"github.com/georgemunganga/inventory-backend/internal/platform/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

func newRouter(db *sql.DB, cfg config.Config, logger logrus.FieldLogger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logging.Middleware(logger))
	router.Use(metrics.Instrument)
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)

	// ── Public ───────────────────────────────────────────────
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			logging.FromContext(r.Context()).WithError(err).Warn("health check failed")
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	router.Handle("/metrics", metrics.Handler())

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	userRepo := user.NewPostgresRepository(db)
	authService := auth.NewService(userRepo, tokens)
	auth.NewHandler(authService, auth.NewRateLimiter(cfg.LoginRate, cfg.LoginBurst)).RegisterRoutes(router)

	// ── Authenticated ────────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	productRepo := inventory.NewPostgresRepository(db)

	router.Group(func(r chi.Router) {
		r.Use(auth.Middleware(tokens))
		r.Use(auth.Require(auth.Authenticated))

		user.NewHandler(user.NewService(userRepo)).RegisterRoutes(r)
		catalog.NewHandler(catalog.NewService(catalogRepo)).RegisterRoutes(r)
		inventory.NewHandler(inventory.NewService(productRepo, catalogRepo, logger)).RegisterRoutes(r)
		sales.NewHandler(sales.NewService(sales.NewPostgresRepository(db), productRepo, logger)).RegisterRoutes(r)
	})

	return router
}
