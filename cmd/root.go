package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wangdayong228/rest-sdk-client/internal/cliconfig"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "rest-sdk-client",
	Short: "GitHub Gists / Ramp Users API 的命令行客户端",
	Long:  "rest-sdk-client 是基于类型化 SDK 的命令行工具，封装 GitHub Gists 与 Ramp Users 两套 REST API 的常用操作：路径编码、查询串组装、JSON 编解码和自动翻页都由共享的 restclient 完成。",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "f", "", "配置文件路径（YAML，可选；不提供时 token 取自环境变量）")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出每次 HTTP 请求的调试日志")
}

// Execute 入口
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() *cliconfig.Config {
	if configPath == "" {
		return cliconfig.Default()
	}
	return cliconfig.LoadConfigFromFile(configPath)
}

// printJSON 把结果以缩进 JSON 打印到 stdout。
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
