package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"boomgates/internal/config"
	"boomgates/internal/game"
	"boomgates/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	metrics, err := server.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("Failed to initialise metrics: %v", err)
	}

	world := server.NewWorld(game.NewGame(game.WithSeed(cfg.Seed)),
		server.WithMetrics(metrics),
		server.WithIntervals(cfg.TickInterval, cfg.EnemySpawnInterval, cfg.GateSpawnInterval),
	)
	srv := server.NewServer(world, cfg.StaticDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	metricsSrv := serveMetrics(cfg.MetricsAddr, metrics)

	log.Println("Starting Boomgates server...")
	if err := srv.Start(ctx, cfg.Addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
}

func serveMetrics(addr string, metrics *server.Metrics) *http.Server {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Metrics server exited: %v", err)
		}
	}()

	log.Printf("Serving Prometheus metrics on %s", addr)
	return srv
}
