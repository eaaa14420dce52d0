package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"produceMarketplace/internal/clock"
	"produceMarketplace/internal/config"
	"produceMarketplace/internal/db"
	"produceMarketplace/internal/httpapi"
	"produceMarketplace/internal/i18n"
	"produceMarketplace/internal/logger"
	"produceMarketplace/internal/market"
	"produceMarketplace/internal/metrics"
	"produceMarketplace/repository"
)

func main() {
	cfg, err := config.LoadWithDefaults()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()
	lg.Info("configuration loaded", logger.String("config", cfg.String()))

	d, err := db.Open(cfg.Database.Path)
	if err != nil {
		lg.Fatal("open db", logger.Error(err))
	}
	defer func() {
		if err := d.Close(); err != nil {
			lg.Error("close db", logger.Error(err))
		}
	}()

	bundle, err := i18n.Load()
	if err != nil {
		lg.Fatal("load locales", logger.Error(err))
	}

	users := repository.NewUserRepository(d)
	products := repository.NewProductRepository(d)
	orders := repository.NewOrderRepository(d)
	cart := repository.NewCartRepository(d)
	engine := market.NewEngine(d, orders)
	clk := clock.New()
	m := metrics.NewServerMetrics("api")

	srv := httpapi.NewServer(cfg, lg, users, products, orders, cart, engine, clk, bundle, m)
	shutdown, err := srv.Run()
	if err != nil {
		lg.Fatal("start http", logger.Error(err))
	}
	lg.Info("http server listening", logger.String("address", cfg.HTTP.Address))

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		lg.Error("shutdown", logger.Error(err))
	}
}
