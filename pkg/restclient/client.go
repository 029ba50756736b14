package restclient

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Client 是最原生的 HTTP 资源客户端：持有共享的 resty client（连接池内部已做并发
// 同步），负责通用请求、JSON 编解码与错误解析。各 SDK 在它之上按资源分组封装，
// 每个端点方法只需要拼好路径、带上可选请求体、给出目标结构。
type Client struct {
	http     *resty.Client
	log      *logrus.Entry
	maxPages int
}

// DefaultMaxPages 是 GetAllPages 默认的翻页上限，防止服务端"永远声称有下一页"时
// 无限循环。
const DefaultMaxPages = 100

type Option func(*Client)

// New 创建底层 HTTP 客户端。
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(baseURL, "/")

	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)

	c := &Client{
		http:     rc,
		log:      logrus.NewEntry(logrus.StandardLogger()),
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// WithRestyClient 替换底层 resty client（自定义代理、TLS、连接池等场景）。
func WithRestyClient(rc *resty.Client) Option {
	return func(c *Client) {
		if rc != nil {
			c.http = rc
		}
	}
}

// WithBearerToken 设置 Authorization: Bearer 头。token 本身如何获取不在本层职责内。
func WithBearerToken(token string) Option {
	return func(c *Client) {
		if token != "" {
			c.http.SetAuthToken(token)
		}
	}
}

func WithHeader(key, value string) Option {
	return func(c *Client) {
		if key != "" {
			c.http.SetHeader(key, value)
		}
	}
}

// WithTimeout 设置单次请求的超时。更细的 deadline 控制请通过 ctx 传入。
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// WithMaxPages 覆盖 GetAllPages 的翻页上限。
func WithMaxPages(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxPages = n
		}
	}
}

func WithLogger(l *logrus.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = logrus.NewEntry(l)
		}
	}
}

// Get 发起 GET 请求并把 2xx 响应体解码到 out；out 为 nil 时丢弃响应体。
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodGet, path, NoBody(), out)
}

func (c *Client) Post(ctx context.Context, path string, body Body, out any) error {
	return c.call(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body Body, out any) error {
	return c.call(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body Body, out any) error {
	return c.call(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, body Body, out any) error {
	return c.call(ctx, http.MethodDelete, path, body, out)
}

func (c *Client) call(ctx context.Context, method, path string, body Body, out any) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	return decodeInto(resp.Body(), out)
}

// do 执行一次 HTTP 交换：连接层失败返回 TransportError，非 2xx 返回 APIError，
// 其余情况把原始响应交给调用方。不做任何重试，失败一律上抛。
func (c *Client) do(ctx context.Context, method, path string, body Body) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)
	body.apply(req)

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, &TransportError{URL: req.URL, Err: err}
	}

	c.log.WithFields(logrus.Fields{
		"method":  method,
		"url":     resp.Request.URL,
		"status":  resp.StatusCode(),
		"elapsed": time.Since(start),
	}).Debug("http 请求完成")

	if resp.IsError() {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Body:       append([]byte(nil), resp.Body()...),
		}
	}
	return resp, nil
}

func decodeInto(raw []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Raw: append([]byte(nil), raw...), Err: err}
	}
	return nil
}
