// Package rampuserssdk 是 Ramp Users REST API 的类型化绑定。
// 列表接口的响应是 {"data":[...],"page":{"next":...}} 包裹结构，翻页走
// data 包裹里的游标，与 GitHub 的 Link header 机制不同；两者都由共享的
// restclient 翻页策略承载。
package rampuserssdk

import (
	"github.com/wangdayong228/rest-sdk-client/pkg/restclient"
)

// DefaultBaseURL 是 Ramp 开放 API 的默认地址。
const DefaultBaseURL = "https://api.ramp.com/developer/v1"

// Client 是 SDK 对外入口，按资源分组（目前只有 Users）。
type Client struct {
	Users Users
}

// New 创建 SDK 客户端。baseURL 为空时使用 DefaultBaseURL；opts 透传给底层
// restclient（常用：restclient.WithBearerToken）。
func New(baseURL string, opts ...restclient.Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	hc := restclient.New(baseURL, opts...)
	return &Client{
		Users: Users{http: hc},
	}
}
