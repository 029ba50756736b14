package restclient

import (
	"fmt"

	"github.com/pkg/errors"
)

// APIError 表示服务端以非 2xx 状态码拒绝了请求。Body 保留原始响应体便于排查，
// 是否重试（429/5xx 等）由调用方的策略决定，本层不做。
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d body=%s", e.StatusCode, truncated(e.Body))
}

// DecodeError 表示 2xx 响应体与目标结构不匹配，通常意味着 API 契约漂移或
// 生成器与线上 schema 不一致。Raw 保留原始响应体便于诊断。
type DecodeError struct {
	Raw []byte
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %v (raw=%s)", e.Err, truncated(e.Raw))
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TransportError 表示连接层失败（超时、DNS、TLS、ctx 取消等），此时尚未拿到
// HTTP 响应。错误链保留原因，errors.Is(err, context.Canceled) 依然成立。
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: url=%s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsStatus 判断 err 是否为指定状态码的 APIError。
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

func truncated(b []byte) string {
	const limit = 512
	if len(b) > limit {
		return string(b[:limit]) + "...(truncated)"
	}
	return string(b)
}
