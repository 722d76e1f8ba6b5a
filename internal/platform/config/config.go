package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// 3DES 參數長度.
const (
	DesKeyLength = 24
	DesIVLength  = 8
)

// Config 應用程式配置結構.
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Secret SecretConfig `mapstructure:"secret"`
	Limits LimitsConfig `mapstructure:"limits"`
}

// AppConfig 應用程式基本配置.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Debug   bool   `mapstructure:"debug"`
}

// ServerConfig 伺服器配置.
type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	Timeout int    `mapstructure:"timeout"`
}

// LogConfig 日誌配置.
type LogConfig struct {
	RotationTimeHours int `mapstructure:"rotation_time_hours"` // 日誌輪轉時間 (小時).
	MaxAgeDays        int `mapstructure:"max_age_days"`        // 日誌保留天數.
	MaxSizeMB         int `mapstructure:"max_size_mb"`         // 單個日誌檔案最大大小 (MB).
}

// SecretConfig 請求體加密配置.
// 啟動時載入一次，之後唯讀.
type SecretConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	ScanAnnotation  bool   `mapstructure:"scanAnnotation"`
	AnnotationClass string `mapstructure:"annotationClass"`
	DesSecretKey    string `mapstructure:"desSecretKey"`
	DesIv           string `mapstructure:"desIv"`
}

// LimitsConfig 限制配置.
type LimitsConfig struct {
	Request RequestLimitsConfig `mapstructure:"request"`
}

// RequestLimitsConfig 請求限制配置.
type RequestLimitsConfig struct {
	MaxBodySize int64 `mapstructure:"max_body_size"`
}

var (
	config *Config
	// ENV 當前環境變數.
	ENV string = "local"
)

// Load 載入設定檔.
func Load(testCfg ...*Config) error {
	// 直接傳入配置（主要用於測試）
	if len(testCfg) > 0 && testCfg[0] != nil {
		applyDefaults(testCfg[0])
		if err := validateConfig(testCfg[0]); err != nil {
			return fmt.Errorf("配置驗證失敗: %w", err)
		}
		config = testCfg[0]
		return nil
	}

	cfg, err := Read(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return err
	}
	config = cfg
	return nil
}

// Read 讀取並驗證設定檔，不修改 Get 回傳的全域配置.
// path 為空時使用 ./configs/<ENV>.yaml.
func Read(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("secret.enabled", false)
	v.SetDefault("secret.scanAnnotation", false)
	v.SetDefault("secret.annotationClass", DefaultAnnotationClass)

	if path != "" {
		v.SetConfigFile(path)
		// 從檔案名稱推斷環境
		baseName := filepath.Base(path)
		ENV = strings.TrimSuffix(baseName, filepath.Ext(baseName))
	} else {
		v.SetConfigName(ENV)
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("讀取配置檔案失敗: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("解析配置失敗: %w", err)
	}

	applyDefaults(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("配置驗證失敗: %w", err)
	}

	return cfg, nil
}

// DefaultAnnotationClass 預設的解密標記名稱.
const DefaultAnnotationClass = "Secret"

func applyDefaults(cfg *Config) {
	if cfg.Secret.AnnotationClass == "" {
		cfg.Secret.AnnotationClass = DefaultAnnotationClass
	}
}

// Get 取得設定.
func Get() *Config {
	return config
}

// GetEnv 取得當前環境.
func GetEnv() string {
	return ENV
}

// validateConfig 驗證配置的有效性
func validateConfig(cfg *Config) error {
	if cfg.App.Name == "" {
		return fmt.Errorf("應用程式名稱不能為空")
	}
	if cfg.App.Version == "" {
		return fmt.Errorf("應用程式版本不能為空")
	}

	if cfg.Server.Port == "" {
		return fmt.Errorf("伺服器端口不能為空")
	}
	if cfg.Server.Timeout <= 0 {
		return fmt.Errorf("伺服器超時時間必須大於 0")
	}

	if cfg.Log.RotationTimeHours < 0 || cfg.Log.MaxAgeDays < 0 || cfg.Log.MaxSizeMB < 0 {
		return fmt.Errorf("日誌設定不能為負數")
	}

	if cfg.Limits.Request.MaxBodySize < 0 {
		return fmt.Errorf("請求體大小限制不能為負數")
	}

	return ValidateSecret(cfg.Secret)
}

// ValidateSecret 驗證加密配置，啟用時金鑰與 IV 必須完整.
func ValidateSecret(s SecretConfig) error {
	if !s.Enabled {
		return nil
	}
	if len(s.DesSecretKey) < DesKeyLength {
		return fmt.Errorf("secret.desSecretKey 至少需要 %d 字節，實際為 %d", DesKeyLength, len(s.DesSecretKey))
	}
	if len(s.DesIv) != DesIVLength {
		return fmt.Errorf("secret.desIv 必須為 %d 字節，實際為 %d", DesIVLength, len(s.DesIv))
	}
	if s.ScanAnnotation && s.AnnotationClass == "" {
		return fmt.Errorf("secret.annotationClass 不能為空")
	}
	return nil
}
