package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"jessster/cmd/api/router"
	"jessster/config"
	"jessster/gateway"
	"jessster/logger"
	"jessster/tokenstore"
)

// @title           Jessster Gateway API
// @version         1.0
// @description     Local HTTP facade over the Jessster content backend
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := tokenstore.Open(ctx, cfg.TokenStore)
	if err != nil {
		logger.ErrorWithFields("token store unavailable", logger.Fields{
			"backend": cfg.TokenStore.Backend,
			"error":   err.Error(),
		})
		os.Exit(1)
	}
	defer closeStore()

	gw := gateway.New(gateway.ConfigFrom(cfg.Gateway), gateway.WithTokenStore(store))

	srv := &http.Server{
		Addr:              cfg.API.Addr,
		Handler:           router.WithCORS(router.New(gw), cfg.API.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoWithFields("api listening", logger.Fields{
			"addr":        cfg.API.Addr,
			"backend":     cfg.Gateway.BaseURL,
			"token_store": cfg.TokenStore.Backend,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorWithFields("api server failed", logger.Fields{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithFields("api forced to shutdown", logger.Fields{"error": err.Error()})
	}
}
