package cmd

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	githubgistssdk "github.com/wangdayong228/rest-sdk-client/pkg/github-gists-sdk"
	"github.com/wangdayong228/rest-sdk-client/pkg/restclient"
)

var (
	gistsSince       string
	gistsPerPage     int
	gistsDescription string
	gistsPublic      bool
)

func init() {
	gistsCmd := &cobra.Command{
		Use:   "gists",
		Short: "GitHub Gists 相关操作",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "列出当前认证用户的 gists（自动翻完所有页）",
		RunE:  runGistsList,
	}
	listCmd.Flags().StringVar(&gistsSince, "since", "", "只列出该时间之后更新过的 gists（ISO-8601，如 2024-01-02T00:00:00Z）")
	listCmd.Flags().IntVar(&gistsPerPage, "per-page", 100, "每页条数（上限 100）")

	getCmd := &cobra.Command{
		Use:   "get <gist_id>",
		Short: "获取单个 gist",
		Args:  cobra.ExactArgs(1),
		RunE:  runGistsGet,
	}

	createCmd := &cobra.Command{
		Use:   "create <file>...",
		Short: "用本地文件创建 gist",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runGistsCreate,
	}
	createCmd.Flags().StringVar(&gistsDescription, "description", "", "gist 描述")
	createCmd.Flags().BoolVar(&gistsPublic, "public", false, "创建公开 gist（默认私有）")

	deleteCmd := &cobra.Command{
		Use:   "delete <gist_id>",
		Short: "删除 gist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gistsClient().Gists.Delete(context.Background(), args[0])
		},
	}

	starCmd := &cobra.Command{
		Use:   "star <gist_id>",
		Short: "给 gist 加星",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gistsClient().Gists.Star(context.Background(), args[0])
		},
	}

	unstarCmd := &cobra.Command{
		Use:   "unstar <gist_id>",
		Short: "取消加星",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gistsClient().Gists.Unstar(context.Background(), args[0])
		},
	}

	gistsCmd.AddCommand(listCmd, getCmd, createCmd, deleteCmd, starCmd, unstarCmd)
	rootCmd.AddCommand(gistsCmd)
}

func gistsClient() *githubgistssdk.Client {
	cfg := loadConfig()
	return githubgistssdk.New(cfg.Github.BaseURL,
		restclient.WithBearerToken(cfg.Github.Token),
		restclient.WithTimeout(cfg.Timeout()),
		restclient.WithMaxPages(cfg.MaxPages),
	)
}

func runGistsList(cmd *cobra.Command, args []string) error {
	var since time.Time
	if gistsSince != "" {
		t, err := time.Parse(time.RFC3339, gistsSince)
		if err != nil {
			return errors.Wrap(err, "解析 --since 失败")
		}
		since = t
	}

	gists, err := gistsClient().Gists.List(context.Background(), since, gistsPerPage, 1)
	if err != nil {
		return err
	}
	return printJSON(gists)
}

func runGistsGet(cmd *cobra.Command, args []string) error {
	gist, err := gistsClient().Gists.Get(context.Background(), args[0])
	if err != nil {
		return err
	}
	return printJSON(gist)
}

func runGistsCreate(cmd *cobra.Command, args []string) error {
	files := make(map[string]githubgistssdk.CreateGistFile, len(args))
	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "读取文件 %s 失败", path)
		}
		files[filepath.Base(path)] = githubgistssdk.CreateGistFile{Content: string(content)}
	}

	gist, err := gistsClient().Gists.Create(context.Background(), &githubgistssdk.CreateGistRequest{
		Description: gistsDescription,
		Public:      gistsPublic,
		Files:       files,
	})
	if err != nil {
		return err
	}
	return printJSON(gist)
}
