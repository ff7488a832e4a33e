package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/config"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/events"
	httpserver "github.com/andreasstove999/ecommerce-system/storefront-go/internal/http"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/logger"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/notify"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
)

const recentNotifications = 100

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("storefront stopped", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	products := catalog.NewService(log.Named("catalog"))
	if cfg.SeedCatalog != "" {
		if err := seedCatalog(products, cfg.SeedCatalog, log); err != nil {
			return err
		}
	}

	notifier, closeNotifier, err := buildNotifier(cfg, log)
	if err != nil {
		return err
	}
	defer closeNotifier()

	orders := order.NewService(products, notifier, order.WithLogger(log.Named("order")))

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: httpserver.NewRouter(httpserver.Deps{
			Logger:  log.Named("http"),
			Catalog: products,
			Carts:   cart.NewStore(),
			Orders:  orders,
			History: order.NewMemoryRepository(),
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("storefront listening", zap.String("addr", cfg.HTTPAddr), zap.String("notifier", cfg.Notifier))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func seedCatalog(products *catalog.Service, path string, log *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed catalog: %w", err)
	}
	defer f.Close()

	n, err := products.LoadSeed(f)
	if err != nil {
		return fmt.Errorf("seed catalog from %s: %w", path, err)
	}
	log.Info("catalog seeded", zap.String("file", path), zap.Int("products", n))
	return nil
}

// buildNotifier returns the configured notifier and a func releasing
// whatever it holds open.
func buildNotifier(cfg config.Config, log *zap.Logger) (order.Notifier, func(), error) {
	if cfg.Notifier != config.NotifierAMQP {
		return notify.NewLogNotifier(log.Named("notify"), recentNotifications), func() {}, nil
	}

	conn, err := events.Dial(cfg.RabbitMQURL)
	if err != nil {
		return nil, nil, err
	}
	publisher, err := events.OpenNotificationPublisher(conn, events.PublisherOptions{
		Logger: log.Named("events"),
	})
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("create notification publisher: %w", err)
	}

	return publisher, func() {
		if err := publisher.Close(); err != nil {
			log.Warn("publisher close", zap.Error(err))
		}
		if err := conn.Close(); err != nil {
			log.Warn("rabbitmq close", zap.Error(err))
		}
	}, nil
}
