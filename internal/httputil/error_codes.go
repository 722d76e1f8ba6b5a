package httputil

import "net/http"

// ErrorCode 錯誤碼能力：數值與描述.
type ErrorCode interface {
	Value() int
	Description() string
}

// BasisErrorCode 框架內建錯誤碼.
type BasisErrorCode int

// 內建錯誤碼，數值不可重複.
const (
	ServerError BasisErrorCode = iota
	ValidationFailed
	TokenInvalid
	SMSSendError
	ProcessError
	DiscardError
	PermissionError
)

type basisEntry struct {
	name        string
	value       int
	description string
	status      int
}

var basisErrorCodes = [...]basisEntry{
	ServerError:      {"SERVER_ERROR", 1000, "服务器正在维护", http.StatusInternalServerError},
	ValidationFailed: {"VALIDATION_FAILED", 1001, "参数异常", http.StatusBadRequest},
	TokenInvalid:     {"TOKEN_INVALID", 1002, "登录状态过期", http.StatusUnauthorized},
	SMSSendError:     {"SMS_SEND_ERROR", 1003, "短信发送失败", http.StatusInternalServerError},
	ProcessError:     {"PROCESS_ERROR", 1004, "处理失败", http.StatusInternalServerError},
	DiscardError:     {"DISCARD_ERROR", 1005, "版本过时", http.StatusUpgradeRequired},
	PermissionError:  {"PERMISSION_ERROR", 1006, "权限不足", http.StatusForbidden},
}

func (c BasisErrorCode) entry() basisEntry {
	if c < 0 || int(c) >= len(basisErrorCodes) {
		return basisErrorCodes[ServerError]
	}
	return basisErrorCodes[c]
}

// Value 錯誤碼數值.
func (c BasisErrorCode) Value() int { return c.entry().value }

// Description 錯誤碼描述.
func (c BasisErrorCode) Description() string { return c.entry().description }

// HTTPStatus 對應的 HTTP 狀態碼.
func (c BasisErrorCode) HTTPStatus() int { return c.entry().status }

func (c BasisErrorCode) String() string { return c.entry().name }

// BasisErrorCodes 回傳全部內建錯誤碼.
func BasisErrorCodes() []BasisErrorCode {
	codes := make([]BasisErrorCode, len(basisErrorCodes))
	for i := range basisErrorCodes {
		codes[i] = BasisErrorCode(i)
	}
	return codes
}

// LookupErrorCode 依數值查找內建錯誤碼.
func LookupErrorCode(value int) (BasisErrorCode, bool) {
	for i, e := range basisErrorCodes {
		if e.value == value {
			return BasisErrorCode(i), true
		}
	}
	return 0, false
}
