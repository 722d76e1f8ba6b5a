package secret

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"faster-web/internal/platform/config"

	"github.com/gin-gonic/gin/binding"
)

// ErrBodyNotReadable 需要解密但解密失敗，對應客戶端錯誤.
var ErrBodyNotReadable = errors.New("request body decrypt error")

// HandlerMethod 路由註冊時解析的處理器資訊，標記在建立路由表時確定.
type HandlerMethod struct {
	Name    string
	markers map[string]struct{}
}

// NewHandlerMethod 建立帶標記的處理器資訊.
func NewHandlerMethod(name string, markers ...string) HandlerMethod {
	m := HandlerMethod{Name: name}
	if len(markers) > 0 {
		m.markers = make(map[string]struct{}, len(markers))
		for _, mk := range markers {
			m.markers[mk] = struct{}{}
		}
	}
	return m
}

// HasMarker 檢查處理器是否帶有指定標記.
func (m HandlerMethod) HasMarker(name string) bool {
	_, ok := m.markers[name]
	return ok
}

// BodyAdvice 在請求體反序列化之前檢查或替換請求體.
type BodyAdvice interface {
	Supports(method HandlerMethod, targetType reflect.Type, converter binding.Binding) bool
	BeforeBodyRead(input HTTPInputMessage, method HandlerMethod, targetType reflect.Type, converter binding.Binding) (HTTPInputMessage, error)
}

// RequestAdvice 解密 3DES-CBC 加密的請求體.
type RequestAdvice struct {
	cfg   config.SecretConfig
	codec *TripleDES
}

var _ BodyAdvice = (*RequestAdvice)(nil)

// NewRequestAdvice 以唯讀配置建立，金鑰或 IV 不正確時直接失敗.
func NewRequestAdvice(cfg config.SecretConfig) (*RequestAdvice, error) {
	if cfg.ScanAnnotation && cfg.AnnotationClass == "" {
		cfg.AnnotationClass = config.DefaultAnnotationClass
	}
	codec, err := NewTripleDES(cfg.DesSecretKey, cfg.DesIv)
	if err != nil {
		return nil, err
	}
	return &RequestAdvice{cfg: cfg, codec: codec}, nil
}

// Supports 參與所有請求，是否解密在 BeforeBodyRead 決定.
func (a *RequestAdvice) Supports(HandlerMethod, reflect.Type, binding.Binding) bool {
	return true
}

// RequiresDecryption 未開啟標記掃描時全部解密，否則只解密帶標記的處理器.
func (a *RequestAdvice) RequiresDecryption(method HandlerMethod) bool {
	if !a.cfg.ScanAnnotation {
		return true
	}
	return method.HasMarker(a.cfg.AnnotationClass)
}

// BeforeBodyRead 讀取完整請求體，需要時解密，回傳給綁定階段使用的新請求體.
// 讀取錯誤原樣回傳.
func (a *RequestAdvice) BeforeBodyRead(input HTTPInputMessage, method HandlerMethod, _ reflect.Type, _ binding.Binding) (HTTPInputMessage, error) {
	raw, err := io.ReadAll(input.Body())
	if err != nil {
		return nil, err
	}

	if !a.RequiresDecryption(method) {
		return NewHTTPMessage(raw, input.Headers()), nil
	}

	plain, err := a.codec.Decrypt(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBodyNotReadable, err)
	}
	return NewHTTPMessage([]byte(plain), input.Headers()), nil
}
