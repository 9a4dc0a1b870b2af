package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RaikyD/storefront-checkout/internal/ads"
	"github.com/RaikyD/storefront-checkout/internal/cartstore"
	"github.com/RaikyD/storefront-checkout/internal/catalog"
	"github.com/RaikyD/storefront-checkout/internal/checkout"
	"github.com/RaikyD/storefront-checkout/internal/config"
	"github.com/RaikyD/storefront-checkout/internal/currency"
	"github.com/RaikyD/storefront-checkout/internal/email"
	"github.com/RaikyD/storefront-checkout/internal/logger"
	"github.com/RaikyD/storefront-checkout/internal/migrate"
	"github.com/RaikyD/storefront-checkout/internal/payment"
	"github.com/RaikyD/storefront-checkout/internal/presentation"
	"github.com/RaikyD/storefront-checkout/internal/recommendation"
	"github.com/RaikyD/storefront-checkout/internal/shipping"
)

func main() {
	logger.Init()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("config load failed", "err", err)
		os.Exit(1)
	}

	// Cart store: postgres when a DSN is configured, otherwise in-memory.
	var cart presentation.CartStore
	if cfg.DB_STRING != "" {
		if err := migrate.Up(cfg.DB_STRING); err != nil {
			logger.Error("migrations failed", "err", err)
			os.Exit(1)
		}

		pool, err := pgxpool.New(context.Background(), cfg.DB_STRING)
		if err != nil {
			logger.Error("pgxpool new failed", "err", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := pool.Ping(context.Background()); err != nil {
			logger.Error("db ping failed", "err", err)
			os.Exit(1)
		}
		logger.Info("db connected")
		cart = cartstore.NewPostgresStore(pool)
	} else {
		logger.Info("no DB_STRING set, using in-memory cart store")
		cart = cartstore.NewMemoryStore()
	}

	// Static data
	cat, err := catalog.Load()
	if err != nil {
		logger.Error("catalog load failed", "err", err)
		os.Exit(1)
	}
	conv, err := currency.Load()
	if err != nil {
		logger.Error("currency table load failed", "err", err)
		os.Exit(1)
	}

	// Notifier: kafka when brokers are configured, otherwise log only.
	var notifier checkout.Notifier
	if cfg.KAFKA_BROKERS != "" {
		kn := email.NewKafkaNotifier(cfg.KAFKA_BROKERS, cfg.KAFKA_TOPIC)
		defer kn.Close()
		notifier = kn
		logger.Info("kafka notifier enabled", "brokers", cfg.KAFKA_BROKERS, "topic", cfg.KAFKA_TOPIC)
	} else {
		notifier = email.NewLogNotifier()
	}

	// Wiring
	co := checkout.NewService(cart, cat, conv, shipping.NewQuoter(), payment.NewProcessor(), notifier)
	recs := recommendation.NewService(cat)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	h := presentation.NewStoreHandler(co, cart, cat, conv, recs, ads.NewService())
	r.Route("/api", h.Register)

	addr := ":" + cfg.HTTP_PORT
	logger.Info("starting http", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Error("http server crashed", "err", err)
		os.Exit(1)
	}
}
