package server

import (
	"fmt"
	"reflect"

	"faster-web/internal/constants"
	"faster-web/internal/httputil"
	"faster-web/internal/platform/config"
	"faster-web/internal/platform/health"
	"faster-web/internal/platform/middleware"
	"faster-web/internal/security/secret"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// route 路由表項目，標記在建立路由時解析.
type route struct {
	method  string
	path    string
	name    string
	markers []string
	target  reflect.Type
	binding binding.Binding
	handler gin.HandlerFunc
}

// EchoRequest 回聲端點的請求體.
type EchoRequest map[string]interface{}

var echoType = reflect.TypeOf(EchoRequest{})

// securityHeadersMiddleware 添加安全標頭
func securityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// NewBodyAdviceChain 依配置建立請求體 advice 鏈，secret.enabled 為 false 時為空.
func NewBodyAdviceChain(cfg *config.Config) (*secret.Chain, error) {
	maxBody := int64(constants.DefaultMaxRequestBodySize)
	if cfg.Limits.Request.MaxBodySize > 0 {
		maxBody = cfg.Limits.Request.MaxBodySize
	}

	if !cfg.Secret.Enabled {
		return secret.NewChain(maxBody), nil
	}

	advice, err := secret.NewRequestAdvice(cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("建立請求體解密失敗: %w", err)
	}
	return secret.NewChain(maxBody, advice), nil
}

// Router 設定路由
func Router(cfg *config.Config) (*gin.Engine, error) {
	chain, err := NewBodyAdviceChain(cfg)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// 請求 ID 最優先
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.AccessLogMiddleware())
	r.Use(securityHeadersMiddleware())

	r.NoRoute(func(c *gin.Context) {
		httputil.WriteErrorWithStatus(c, 404, httputil.ValidationFailed)
	})

	healthHandler := health.NewHealthHandler(cfg, chain.Len())
	r.GET("/health", healthHandler.HealthCheck)

	for _, rt := range routes() {
		method := secret.NewHandlerMethod(rt.name, rt.markers...)
		r.Handle(rt.method, rt.path, chain.Handler(method, rt.target, rt.binding), rt.handler)
	}

	return r, nil
}

func routes() []route {
	return []route{
		{
			method:  "POST",
			path:    "/api/v1/echo",
			name:    "echo",
			markers: []string{constants.SecretMarker},
			target:  echoType,
			binding: binding.JSON,
			handler: echo(binding.JSON),
		},
		{
			method:  "POST",
			path:    "/api/v1/plain",
			name:    "plain",
			target:  echoType,
			binding: binding.JSON,
			handler: echo(binding.JSON),
		},
	}
}

// echo 綁定 JSON 請求體後原樣回傳
func echo(b binding.Binding) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EchoRequest
		if err := c.ShouldBindWith(&req, b); err != nil {
			httputil.BadRequest(c, err)
			return
		}
		httputil.OK(c, req)
	}
}
