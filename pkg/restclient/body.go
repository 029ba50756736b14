package restclient

import "github.com/go-resty/resty/v2"

// Body 表示请求体的三种形态：
//   - NoBody：完全不携带请求体；
//   - EmptyBody：显式零长度请求体，线路上会带 Content-Length: 0
//     （GitHub star/unstar 一类接口要求的写法）；
//   - JSONBody：JSON 负载。
//
// 用和类型区分"空体"与"无体"，避免 nil 歧义。
type Body struct {
	kind    bodyKind
	payload any
}

type bodyKind int

const (
	bodyNone bodyKind = iota
	bodyEmpty
	bodyJSON
)

func NoBody() Body { return Body{kind: bodyNone} }

func EmptyBody() Body { return Body{kind: bodyEmpty} }

func JSONBody(v any) Body { return Body{kind: bodyJSON, payload: v} }

func (b Body) apply(req *resty.Request) {
	switch b.kind {
	case bodyEmpty:
		// 零长度 bytes 会让 net/http 在 POST/PUT/PATCH 上发送 Content-Length: 0。
		req.SetBody([]byte{})
	case bodyJSON:
		req.SetHeader("Content-Type", "application/json").SetBody(b.payload)
	}
}
