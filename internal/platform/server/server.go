package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"faster-web/internal/constants"
	"faster-web/internal/platform/config"
	"faster-web/internal/platform/logger"

	"github.com/gin-gonic/gin"
)

// Start 啟動伺服器，直到收到關閉信號.
func Start(cfg *config.Config) error {
	ctx := context.Background()

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := Router(cfg)
	if err != nil {
		logger.Errorf(ctx, "路由初始化失敗: %v", err)
		return err
	}

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.Timeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.Timeout) * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "伺服器正在監聽", logger.WithDetails(map[string]interface{}{
			"addr":           server.Addr,
			"secret_enabled": cfg.Secret.Enabled,
			"scan_marker":    cfg.Secret.ScanAnnotation,
		}))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Errorf(ctx, "伺服器啟動失敗: %v", err)
		return err
	case <-quit:
	}

	logger.Info(ctx, "收到關閉信號，正在優雅關閉伺服器...", logger.WithAction("shutdown"))

	shutdownCtx, cancel := context.WithTimeout(ctx, constants.DefaultShutdownTimeout*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "伺服器關閉失敗: %v", err)
		return err
	}

	logger.Info(ctx, "伺服器已優雅關閉")
	return nil
}
