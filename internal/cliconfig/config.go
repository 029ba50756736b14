package cliconfig

import (
	"os"
	"time"

	"github.com/nft-rainbow/rainbow-goutils/utils/configutils"
)

// APIConfig 是单个目标 API 的连接配置。
type APIConfig struct {
	BaseURL string `yaml:"baseUrl"`
	Token   string `yaml:"token"`
}

// Config 描述 CLI 所需的全部配置。
type Config struct {
	Github APIConfig `yaml:"github"`
	Ramp   APIConfig `yaml:"ramp"`

	// TimeoutSeconds 是单次 HTTP 请求的超时秒数，0 表示用客户端默认值。
	TimeoutSeconds int `yaml:"timeoutSeconds"`
	// MaxPages 是列表接口自动翻页的上限，0 表示用客户端默认值。
	MaxPages int `yaml:"maxPages"`
}

// LoadConfigFromFile 从 YAML 文件加载配置并补齐默认值。
func LoadConfigFromFile(path string) *Config {
	cfg := configutils.MustLoadByFile[Config](path)
	cfg.fillDefaults()
	return cfg
}

// Default 在不提供配置文件时给出可用的默认配置（token 从环境变量读取）。
func Default() *Config {
	cfg := &Config{}
	cfg.fillDefaults()
	return cfg
}

// fillDefaults 补齐缺省项：token 回落到 GITHUB_TOKEN / RAMP_TOKEN 环境变量，
// baseURL 留空时由各 SDK 的默认地址兜底。
func (c *Config) fillDefaults() {
	if c.Github.Token == "" {
		c.Github.Token = os.Getenv("GITHUB_TOKEN")
	}
	if c.Ramp.Token == "" {
		c.Ramp.Token = os.Getenv("RAMP_TOKEN")
	}
}

// Timeout 把 TimeoutSeconds 转成 time.Duration，未配置时返回 0（表示用默认值）。
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
