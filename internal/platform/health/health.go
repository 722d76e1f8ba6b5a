package health

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"faster-web/internal/platform/config"

	"github.com/gin-gonic/gin"
)

const (
	statusHealthy = "healthy"
	statusWarning = "warning"

	memoryMB        = 1024 * 1024
	memoryThreshold = 1024 // 1GB
)

// 記錄服務啟動時間.
var startTime = time.Now()

// Handler 健康檢查處理器.
type Handler struct {
	cfg     *config.Config
	advices int
}

// NewHealthHandler 創建新的健康檢查處理器.
func NewHealthHandler(cfg *config.Config, advices int) *Handler {
	return &Handler{cfg: cfg, advices: advices}
}

// HealthCheck 健康檢查端點.
// 不回傳任何金鑰資訊.
func (h *Handler) HealthCheck(c *gin.Context) {
	appVersion := os.Getenv("APP_VERSION")
	if appVersion == "" {
		appVersion = h.cfg.App.Version
	}

	system := h.checkSystemResources()

	c.JSON(http.StatusOK, gin.H{
		"status":    statusHealthy,
		"timestamp": time.Now().Unix(),
		"app": gin.H{
			"name":    h.cfg.App.Name,
			"version": appVersion,
			"debug":   h.cfg.App.Debug,
			"env":     config.GetEnv(),
		},
		"secret": gin.H{
			"enabled":        h.cfg.Secret.Enabled,
			"scanAnnotation": h.cfg.Secret.ScanAnnotation,
			"advices":        h.advices,
		},
		"system": gin.H{
			"status":  system.Status,
			"details": system.Details,
			"uptime":  time.Since(startTime).String(),
		},
	})
}

// SystemStatus 系統狀態.
type SystemStatus struct {
	Status  string                 `json:"status"`
	Details map[string]interface{} `json:"details"`
}

func (h *Handler) checkSystemResources() SystemStatus {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	details := map[string]interface{}{
		"goroutines": runtime.NumGoroutine(),
		"memory": gin.H{
			"alloc":  fmt.Sprintf("%.2f MB", float64(m.Alloc)/memoryMB),
			"sys":    fmt.Sprintf("%.2f MB", float64(m.Sys)/memoryMB),
			"num_gc": m.NumGC,
		},
	}

	status := statusHealthy
	if m.Sys/memoryMB > memoryThreshold {
		status = statusWarning
		details["memory_warning"] = "Memory usage is high"
	}

	return SystemStatus{Status: status, Details: details}
}
