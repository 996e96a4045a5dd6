package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	cartapp "github.com/luxestone/storefront/internal/cart/app"
	cartmysql "github.com/luxestone/storefront/internal/cart/infra/mysql"
	catalogapp "github.com/luxestone/storefront/internal/catalog/app"
	catalogmysql "github.com/luxestone/storefront/internal/catalog/infra/mysql"
	checkoutapp "github.com/luxestone/storefront/internal/checkout/app"
	"github.com/luxestone/storefront/internal/checkout/infra/adapter"
	couponapp "github.com/luxestone/storefront/internal/coupon/app"
	couponmysql "github.com/luxestone/storefront/internal/coupon/infra/mysql"
	"github.com/luxestone/storefront/internal/httpapi"
	notifapp "github.com/luxestone/storefront/internal/notification/app"
	notifamqp "github.com/luxestone/storefront/internal/notification/infra/amqp"
	notifmysql "github.com/luxestone/storefront/internal/notification/infra/mysql"
	orderapp "github.com/luxestone/storefront/internal/order/app"
	ordermysql "github.com/luxestone/storefront/internal/order/infra/mysql"
	"github.com/luxestone/storefront/migrations"
	"github.com/luxestone/storefront/pkg/config"
	"github.com/luxestone/storefront/pkg/logger"
	"github.com/luxestone/storefront/pkg/mysql"
	"github.com/luxestone/storefront/pkg/shutdown"
)

func main() {
	app := &cli.App{
		Name:  "storefront",
		Usage: "cart, checkout and order service",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API and the notification relay",
				Action: runServe,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations",
				Action: runMigrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("storefront exited")
	}
}

func loadConfig() (config.Config, *logrus.Entry, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})
	return cfg, log, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	return mysql.Open(mysql.Config{
		Host: cfg.MySQLHost,
		Port: cfg.MySQLPort,
		User: cfg.MySQLUser,
		Pass: cfg.MySQLPass,
		Name: cfg.MySQLName,
	})
}

func runMigrate(c *cli.Context) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	driver, err := migratemysql.WithInstance(db.DB, &migratemysql.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", source, "mysql", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	log.Info("migrations applied")
	return nil
}

func runServe(c *cli.Context) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	// Catalog
	catalogSvc := catalogapp.NewService(catalogmysql.NewProductRepo(db))

	// Cart
	cartSvc := cartapp.NewService(cartmysql.NewCartRepo(db))

	// Coupons
	couponSvc := couponapp.NewService(couponmysql.NewCouponRepo(db))

	// Orders
	orderSvc := orderapp.NewService(ordermysql.NewOrderRepo(db))

	// Checkout (adapters over the sibling services)
	checkoutSvc := checkoutapp.NewService(
		adapter.NewCartServiceReader(cartSvc),
		adapter.NewCatalogServiceReader(catalogSvc),
		adapter.NewCouponServiceResolver(couponSvc),
		adapter.NewOrderServiceWriter(orderSvc),
		cfg.ShippingFee,
	)

	// Notification relay
	publisher, err := notifamqp.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return err
	}
	defer publisher.Close()
	relay := notifapp.NewRelay(notifmysql.NewOutboxRepo(db), publisher, log, cfg.OutboxInterval)

	api := httpapi.NewServer(cartSvc, catalogSvc, couponSvc, checkoutSvc, orderSvc, log)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("addr", addr).Info("http server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		log.WithField("interval", cfg.OutboxInterval.String()).Info("outbox relay starting")
		if err := relay.Run(ctx); err != nil && err != context.Canceled {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutdown requested")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("bye")
	return nil
}
