package secret

import (
	"errors"
	"io"
	"net/http"
	"reflect"

	"faster-web/internal/httputil"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Chain 依序執行的 BodyAdvice 集合，在處理器綁定請求體之前執行.
type Chain struct {
	advices     []BodyAdvice
	maxBodySize int64
}

// NewChain 建立 advice 鏈，maxBodySize <= 0 表示不限制.
func NewChain(maxBodySize int64, advices ...BodyAdvice) *Chain {
	return &Chain{advices: advices, maxBodySize: maxBodySize}
}

// Len advice 數量.
func (ch *Chain) Len() int { return len(ch.advices) }

// Handler 為單一路由建立中間件，Supports 在此時解析一次.
func (ch *Chain) Handler(method HandlerMethod, targetType reflect.Type, converter binding.Binding) gin.HandlerFunc {
	var active []BodyAdvice
	for _, a := range ch.advices {
		if a.Supports(method, targetType, converter) {
			active = append(active, a)
		}
	}

	if len(active) == 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		body := io.Reader(c.Request.Body)
		if ch.maxBodySize > 0 && c.Request.Body != nil {
			body = http.MaxBytesReader(c.Writer, c.Request.Body, ch.maxBodySize)
		}

		var msg HTTPInputMessage = NewRequestMessage(body, c.Request.Header)
		for _, a := range active {
			out, err := a.BeforeBodyRead(msg, method, targetType, converter)
			if err != nil {
				abortBodyRead(c, err)
				return
			}
			msg = out
		}

		c.Request.Body = io.NopCloser(msg.Body())
		if hm, ok := msg.(*HTTPMessage); ok {
			c.Request.ContentLength = int64(hm.Len())
		} else {
			c.Request.ContentLength = -1
		}

		c.Next()
	}
}

func abortBodyRead(c *gin.Context, err error) {
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, ErrBodyNotReadable):
		httputil.AbortWithError(c, http.StatusBadRequest, httputil.ValidationFailed, err)
	case errors.As(err, &maxErr):
		httputil.AbortWithError(c, http.StatusRequestEntityTooLarge, httputil.ValidationFailed, err)
	default:
		httputil.InternalServerError(c, err)
	}
}
