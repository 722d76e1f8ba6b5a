package httputil

import (
	"net/http"

	"faster-web/internal/platform/logger"
	"faster-web/internal/platform/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 錯誤回應結構.
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Success   bool   `json:"success"`
	RequestID string `json:"request_id,omitempty"`
}

// SuccessResponse 成功回應結構.
type SuccessResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

type httpStatuser interface {
	HTTPStatus() int
}

// StatusOf 取得錯誤碼對應的 HTTP 狀態碼，未宣告時視為 400.
func StatusOf(code ErrorCode) int {
	if s, ok := code.(httpStatuser); ok {
		return s.HTTPStatus()
	}
	return http.StatusBadRequest
}

// NewErrorResponse 將錯誤碼轉換為回應結構.
func NewErrorResponse(code ErrorCode, requestID string) *ErrorResponse {
	return &ErrorResponse{
		Code:      code.Value(),
		Message:   code.Description(),
		Success:   false,
		RequestID: requestID,
	}
}

// WriteError 以錯誤碼回應.
func WriteError(c *gin.Context, code ErrorCode) {
	WriteErrorWithStatus(c, StatusOf(code), code)
}

// WriteErrorWithStatus 以指定 HTTP 狀態碼回應錯誤碼.
func WriteErrorWithStatus(c *gin.Context, status int, code ErrorCode) {
	c.JSON(status, NewErrorResponse(code, middleware.GetRequestID(c)))
}

// AbortWithError 記錄真實錯誤並中止請求，客戶端只會看到錯誤碼描述.
func AbortWithError(c *gin.Context, status int, code ErrorCode, err error) {
	requestID := middleware.GetRequestID(c)

	opts := []logger.LogOption{
		logger.WithRequestID(requestID),
		logger.WithRoute(c.FullPath()),
		logger.WithDetails(map[string]interface{}{
			"code":   code.Value(),
			"status": status,
			"method": c.Request.Method,
		}),
	}
	msg := "API Error"
	if err != nil {
		msg = "API Error: " + err.Error()
	}
	if status >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), msg, opts...)
	} else {
		logger.Warning(c.Request.Context(), msg, opts...)
	}

	c.AbortWithStatusJSON(status, NewErrorResponse(code, requestID))
}

// BadRequest 參數錯誤.
func BadRequest(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, ValidationFailed, err)
}

// InternalServerError 內部服務器錯誤.
func InternalServerError(c *gin.Context, err error) {
	AbortWithError(c, http.StatusInternalServerError, ServerError, err)
}

// OK 成功回應.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, &SuccessResponse{
		Success:   true,
		Data:      data,
		RequestID: middleware.GetRequestID(c),
	})
}
