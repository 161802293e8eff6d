// cmd/payabled/main.go
//
// Payable service – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (jail-wide file → .env fallback).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Load and validate configuration.
//
//  4. Pick the submission gateway: MySQL store when a DSN is configured,
//     otherwise the latency/failure stub for development.
//
//  5. Optionally connect NATS for accepted-payable events.
//
//  6. Mount the API router plus the Prometheus /metrics endpoint and run
//     the hardened HTTP server until SIGINT/SIGTERM, then drain.
//
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/yanizio/payable/internal/config"
	"github.com/yanizio/payable/internal/database"
	"github.com/yanizio/payable/internal/gateway"
	"github.com/yanizio/payable/internal/logger"
	"github.com/yanizio/payable/internal/notify"
	"github.com/yanizio/payable/internal/server"
	"github.com/yanizio/payable/internal/web"
)

const serverEnvPath = "/usr/local/etc/payable/global.env"

// loadEnv prefers the jail-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	rootDir, _ := os.Getwd()
	logOut, err := logger.New(rootDir, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer logOut.Sync()

	cfg, err := config.Load()
	if err != nil {
		logOut.Fatalw("load config", "err", err)
	}

	//
	// ── 1.  Submission gateway ──────────────────────────────────────────
	//
	var gw gateway.Gateway
	if cfg.Database.DSN != "" {
		db, err := database.Open(cfg.Database.DSN)
		if err != nil {
			logOut.Fatalw("connect database", "err", err)
		}
		defer db.Close()
		gw = gateway.NewStore(db)
		logOut.Infow("store gateway online")
	} else {
		gw = gateway.NewStub(
			time.Duration(cfg.Gateway.LatencyMS)*time.Millisecond,
			cfg.Gateway.FailureRate,
		)
		logOut.Infow("stub gateway online",
			"latency_ms", cfg.Gateway.LatencyMS,
			"failure_rate", cfg.Gateway.FailureRate,
		)
	}

	//
	// ── 2.  Accepted-payable events (optional) ──────────────────────────
	//
	var pub *notify.Publisher
	if cfg.NATS.URL != "" {
		nc, err := nats.Connect(cfg.NATS.URL, nats.Name("payabled"))
		if err != nil {
			logOut.Fatalw("connect nats", "url", cfg.NATS.URL, "err", err)
		}
		defer nc.Drain()
		pub = notify.New(nc, logOut)
		logOut.Infow("nats publisher online", "url", cfg.NATS.URL)
	}

	//
	// ── 3.  Router and server ───────────────────────────────────────────
	//
	router := web.New(gw, pub, logOut).Routes()
	router.Handle("/metrics", promhttp.Handler())

	srv := server.New(cfg.HTTP.ListenAddr, router)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logOut.Infow("shutting down")
		return server.Shutdown(srv, 10*time.Second)
	})

	if err := g.Wait(); err != nil {
		logOut.Fatalw("server exit", "err", err)
	}
	logOut.Infow("bye")
}
