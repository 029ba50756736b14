// Package githubgistssdk 是 GitHub Gists REST API 的类型化绑定。
// 每个方法只包装一个端点：拼路径（标识符段做百分号编码）、组查询串、可选地
// 序列化 JSON 请求体，通过共享的 restclient 发请求并解码成类型化结果。
package githubgistssdk

import (
	"github.com/wangdayong228/rest-sdk-client/pkg/restclient"
)

// DefaultBaseURL 是 GitHub REST API 的默认地址。
const DefaultBaseURL = "https://api.github.com"

// Client 是 SDK 对外入口，按资源分组（目前只有 Gists）。
type Client struct {
	Gists Gists
}

// New 创建 SDK 客户端。baseURL 为空时使用 DefaultBaseURL；opts 透传给底层
// restclient（常用：restclient.WithBearerToken）。
func New(baseURL string, opts ...restclient.Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	all := append([]restclient.Option{
		restclient.WithHeader("Accept", "application/vnd.github.v3+json"),
	}, opts...)
	hc := restclient.New(baseURL, all...)
	return &Client{
		Gists: Gists{http: hc},
	}
}
