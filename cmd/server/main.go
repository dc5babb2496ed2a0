package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"event-checkout-api/internal/config"
	"event-checkout-api/internal/database"
	"event-checkout-api/internal/handlers"
	"event-checkout-api/internal/repositories"
	"event-checkout-api/internal/server"

	_ "event-checkout-api/docs"
)

// @title Event Checkout API
// @version 1.0
// @description Checkout backend for ticketed events: event catalog, session-scoped shopping carts and ticket sales.
// @BasePath /api
func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	if cfg.Server.Env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()
	log.Info("database connection established")

	if err := db.RunMigrations(); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	eventRepo := repositories.NewEventRepository(db.DB)
	sessionRepo := repositories.NewSessionRepository(db.DB)
	cartRepo := repositories.NewCartRepository(db.DB)
	saleRepo := repositories.NewSaleRepository(db.DB)

	router := server.NewRouter(cfg, log, server.Handlers{
		Events:   handlers.NewEventHandler(eventRepo),
		Sessions: handlers.NewSessionHandler(sessionRepo),
		Cart:     handlers.NewCartHandler(cartRepo),
		Sales:    handlers.NewSaleHandler(saleRepo),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("port", cfg.Server.Port).Info("listening for requests")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
}
