package main

import (
	"context"
	"fmt"
	"os"

	"faster-web/internal/platform/config"
	"faster-web/internal/platform/logger"
	"faster-web/internal/platform/server"
)

func main() {
	if err := mainNoExit(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// mainNoExit 分離主要邏輯以避免 exitAfterDefer 問題，確保 defer 函數正常執行.
func mainNoExit() error {
	// 先載入配置，日誌輪轉設定來自配置.
	if err := config.Load(); err != nil {
		return err
	}

	if err := logger.InitLogger(); err != nil {
		return err
	}
	defer logger.CloseLogger()

	cfg := config.Get()
	logger.Info(context.Background(), "設定載入成功", logger.WithDetails(map[string]interface{}{
		"env":     config.GetEnv(),
		"app":     cfg.App.Name,
		"version": cfg.App.Version,
	}))

	return server.Start(cfg)
}
