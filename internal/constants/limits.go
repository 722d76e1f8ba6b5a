package constants

// HTTP 請求相關常數
const (
	// 默認值（可被配置覆蓋）
	DefaultMaxRequestBodySize = 10 << 20 // 10MB
	DefaultRequestTimeout     = 30       // 秒
	DefaultShutdownTimeout    = 30       // 秒
)

// 請求體加密相關
const (
	// SecretMarker 路由需要解密請求體時使用的預設標記
	SecretMarker = "Secret"
)
