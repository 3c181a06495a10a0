package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mgdov/eco-place/internal/config"
	"github.com/mgdov/eco-place/internal/server"
	"github.com/mgdov/eco-place/internal/snapshot"
	"github.com/mgdov/eco-place/internal/upstream"
	"github.com/mgdov/eco-place/pkg/redis"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx := context.Background()

	// Without Redis the snapshot lives in process memory only; a restart
	// loses the stale-view fallback but nothing else.
	var snaps snapshot.Store = snapshot.NewMemory()
	if cfg.RedisURL != "" {
		rdbClient, err := redis.New(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal("redis connect", zap.Error(err))
		}
		defer rdbClient.Close()
		snaps = snapshot.NewRedis(rdbClient.Redis(), cfg.SnapshotTTL)
	}

	gw := upstream.New(cfg.UpstreamURL, cfg.UpstreamTimeout, log.Named("upstream"))
	deps := server.NewDeps(cfg, gw, snaps, log)
	srv := server.New(cfg, log, deps)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
