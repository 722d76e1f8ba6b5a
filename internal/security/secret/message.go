package secret

import (
	"bytes"
	"io"
	"net/http"
)

// HTTPInputMessage 請求體與標頭.
type HTTPInputMessage interface {
	Body() io.Reader
	Headers() http.Header
}

// RequestMessage 包裝原始請求，Body 只能讀取一次.
type RequestMessage struct {
	body    io.Reader
	headers http.Header
}

// NewRequestMessage 從原始請求建立輸入訊息.
func NewRequestMessage(body io.Reader, headers http.Header) *RequestMessage {
	if body == nil {
		body = http.NoBody
	}
	return &RequestMessage{body: body, headers: headers}
}

func (m *RequestMessage) Body() io.Reader      { return m.body }
func (m *RequestMessage) Headers() http.Header { return m.headers }

// HTTPMessage 處理後的請求體，解密或直通兩條路徑都回傳此類型.
type HTTPMessage struct {
	content []byte
	headers http.Header
}

// NewHTTPMessage 以處理後的內容與原始標頭建立.
func NewHTTPMessage(content []byte, headers http.Header) *HTTPMessage {
	return &HTTPMessage{content: content, headers: headers}
}

// Body 每次呼叫都回傳新的 reader.
func (m *HTTPMessage) Body() io.Reader      { return bytes.NewReader(m.content) }
func (m *HTTPMessage) Headers() http.Header { return m.headers }

// Len 內容長度.
func (m *HTTPMessage) Len() int { return len(m.content) }

// Bytes 內容.
func (m *HTTPMessage) Bytes() []byte { return m.content }
