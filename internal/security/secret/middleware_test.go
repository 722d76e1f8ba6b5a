package secret

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strings"
	"testing"

	"faster-web/internal/httputil"
	"faster-web/internal/platform/logger"
	"faster-web/internal/platform/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type payload struct {
	A int `json:"a"`
}

var payloadType = reflect.TypeOf(payload{})

func newTestEngine(chain *Chain) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())

	handler := func(c *gin.Context) {
		var p payload
		if err := c.ShouldBindWith(&p, binding.JSON); err != nil {
			httputil.BadRequest(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}

	r.POST("/secret", chain.Handler(NewHandlerMethod("secret", "Secret"), payloadType, binding.JSON), handler)
	r.POST("/plain", chain.Handler(NewHandlerMethod("plain"), payloadType, binding.JSON), handler)
	return r
}

func doPost(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()
	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestChain_DecryptsMarkedRoute(t *testing.T) {
	advice, err := NewRequestAdvice(testSecretConfig(true))
	require.NoError(t, err)
	r := newTestEngine(NewChain(0, advice))

	w := doPost(r, "/secret", "WauSTYXc5Q8=")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"a":1}`, w.Body.String())

	w = doPost(r, "/plain", `{"a":2}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"a":2}`, w.Body.String())
}

func TestChain_DecryptFailureIsClientError(t *testing.T) {
	advice, err := NewRequestAdvice(testSecretConfig(false))
	require.NoError(t, err)
	r := newTestEngine(NewChain(0, advice))

	w := doPost(r, "/plain", "FH50+6m2+3w=")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, httputil.ValidationFailed.Value(), resp.Code)
	assert.Equal(t, httputil.ValidationFailed.Description(), resp.Message)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.RequestID)
	assert.NotContains(t, w.Body.String(), "padding")
}

func TestChain_BodyTooLarge(t *testing.T) {
	advice, err := NewRequestAdvice(testSecretConfig(false))
	require.NoError(t, err)
	r := newTestEngine(NewChain(4, advice))

	w := doPost(r, "/plain", "WauSTYXc5Q8=")
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, httputil.ValidationFailed.Value(), decodeError(t, w).Code)
}

func TestChain_EmptyChainIsPassThrough(t *testing.T) {
	r := newTestEngine(NewChain(0))

	w := doPost(r, "/secret", `{"a":3}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"a":3}`, w.Body.String())
}

type skipAdvice struct{ called bool }

func (s *skipAdvice) Supports(HandlerMethod, reflect.Type, binding.Binding) bool { return false }

func (s *skipAdvice) BeforeBodyRead(in HTTPInputMessage, _ HandlerMethod, _ reflect.Type, _ binding.Binding) (HTTPInputMessage, error) {
	s.called = true
	return in, nil
}

func TestChain_UnsupportedAdviceIsSkipped(t *testing.T) {
	skip := &skipAdvice{}
	r := newTestEngine(NewChain(0, skip))

	w := doPost(r, "/plain", `{"a":4}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, skip.called)
}
