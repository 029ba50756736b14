package restclient

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Page 表示列表接口的一页：条目 + 下一页地址。Next 为空串表示已是最后一页。
type Page[T any] struct {
	Items []T
	Next  string
}

// PageDecoder 把一次响应解码成一页。不同 API 的翻页机制（Link header、data
// 包裹里的游标等）通过注入不同的 decoder 实现，而不是写死一种算法。
type PageDecoder[T any] func(resp *resty.Response) (Page[T], error)

// GetAllPages 从 path 开始逐页 GET，把所有条目按服务端顺序串接返回。
// 翻页必然是串行的：下一页地址来自上一页的响应。任何一页失败都直接返回错误，
// 不返回半截结果；页数超过客户端上限（WithMaxPages，默认 DefaultMaxPages）
// 视为服务端翻页异常，同样报错。
func GetAllPages[T any](ctx context.Context, c *Client, path string, dec PageDecoder[T]) ([]T, error) {
	var all []T
	next := path
	for i := 0; i < c.maxPages; i++ {
		resp, err := c.do(ctx, http.MethodGet, next, NoBody())
		if err != nil {
			return nil, err
		}
		page, err := dec(resp)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Items...)
		if page.Next == "" {
			return all, nil
		}
		// 服务端给出的下一页地址通常是绝对 URL，resty 对绝对 URL 不再拼 baseURL。
		next = page.Next
	}
	return nil, errors.Errorf("pagination did not terminate within %d pages (last url: %s)", c.maxPages, next)
}

// ArrayPages 适配"响应体是裸 JSON 数组、下一页地址在 RFC 5988 Link header 的
// rel="next" 里"的 API（GitHub 风格）。
func ArrayPages[T any]() PageDecoder[T] {
	return func(resp *resty.Response) (Page[T], error) {
		var items []T
		if err := decodeInto(resp.Body(), &items); err != nil {
			return Page[T]{}, err
		}
		return Page[T]{Items: items, Next: nextFromLinkHeader(resp.Header().Get("Link"))}, nil
	}
}

// DataEnvelopePages 适配"{"data":[...],"page":{"next":...}} 包裹 + 游标"的 API
// （Ramp 风格）。next 为 null 或缺失表示最后一页。
func DataEnvelopePages[T any]() PageDecoder[T] {
	return func(resp *resty.Response) (Page[T], error) {
		var env struct {
			Data []T `json:"data"`
			Page struct {
				Next string `json:"next"`
			} `json:"page"`
		}
		if err := decodeInto(resp.Body(), &env); err != nil {
			return Page[T]{}, err
		}
		return Page[T]{Items: env.Data, Next: env.Page.Next}, nil
	}
}

// nextFromLinkHeader 从 Link header 里取出 rel="next" 的地址，不存在时返回空串。
// 只解析本客户端关心的子集，不追求完整的 RFC 5988 语法。
func nextFromLinkHeader(h string) string {
	for _, link := range strings.Split(h, ",") {
		segs := strings.Split(link, ";")
		if len(segs) < 2 {
			continue
		}
		target := strings.Trim(strings.TrimSpace(segs[0]), "<>")
		for _, param := range segs[1:] {
			switch strings.TrimSpace(param) {
			case `rel="next"`, "rel=next":
				return target
			}
		}
	}
	return ""
}
