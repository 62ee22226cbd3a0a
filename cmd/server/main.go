package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/fleetdesk/fleetdesk/config"
	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/handlers"
	"github.com/fleetdesk/fleetdesk/internal/middleware"
	"github.com/fleetdesk/fleetdesk/internal/sim"
	"github.com/fleetdesk/fleetdesk/internal/store"
	"github.com/fleetdesk/fleetdesk/internal/telemetry"
)

func main() {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	st := store.New()
	st.Seed(rng)

	authSvc, err := auth.NewService(cfg.Auth.Username, cfg.Auth.Password, cfg.Auth.JWTSecret)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize auth service")
	}

	simOpts := []sim.Option{sim.WithInterval(cfg.Simulator.TickInterval)}
	if cfg.MQTT.BrokerURL != "" {
		pub, err := telemetry.NewMQTTPublisher(cfg.MQTT.BrokerURL, cfg.MQTT.ClientID, cfg.MQTT.Topic)
		if err != nil {
			log.WithError(err).Warn("telemetry publisher unavailable, continuing without it")
		} else {
			defer pub.Close()
			simOpts = append(simOpts, sim.WithPublisher(pub))
		}
	}
	simulator := sim.New(st, simOpts...)
	if cfg.Simulator.Enabled {
		simulator.Start()
		defer simulator.Stop()
	}

	api := handlers.New(st, authSvc, log.StandardLogger(), handlers.Config{
		LatencyMin: cfg.API.LatencyMin,
		LatencyMax: cfg.API.LatencyMax,
		SimStatus:  simulator.Running,
	})

	router := api.Router(cfg.API.BasePath)
	handler := middleware.CORS(middleware.RequestLogger(middleware.Recoverer(router)))

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.WithFields(log.Fields{
			"addr":      cfg.Server.Addr(),
			"base_path": cfg.API.BasePath,
		}).Info("demo API listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("forced shutdown")
	}
	log.Info("server stopped")
}
