package githubgistssdk

import (
	"context"
	"net/http"
	"time"

	"github.com/wangdayong228/rest-sdk-client/pkg/restclient"
)

// Gists 聚合 `/gists` 下的所有接口。
type Gists struct {
	http *restclient.Client
}

// listQuery 按 GitHub 文档约定的顺序组装列表参数：page、per_page、since。
// 零值参数一律省略。
func listQuery(since time.Time, perPage, page int) *restclient.Query {
	return restclient.NewQuery().
		AddInt("page", int64(page)).
		AddInt("per_page", int64(perPage)).
		AddTime("since", since)
}

// List 列出当前认证用户的 gists（匿名调用时为全部公开 gists），自动翻完所有页。
// since 为零值时不携带该参数；perPage 上限 100（服务端约束）。
func (g Gists) List(ctx context.Context, since time.Time, perPage, page int) ([]BaseGist, error) {
	path := listQuery(since, perPage, page).Appended("/gists")
	return restclient.GetAllPages(ctx, g.http, path, restclient.ArrayPages[BaseGist]())
}

// ListPublic 列出全部公开 gists（按更新时间从新到旧），自动翻完所有页。
func (g Gists) ListPublic(ctx context.Context, since time.Time, perPage, page int) ([]BaseGist, error) {
	path := listQuery(since, perPage, page).Appended("/gists/public")
	return restclient.GetAllPages(ctx, g.http, path, restclient.ArrayPages[BaseGist]())
}

// ListStarred 列出当前认证用户加星的 gists，自动翻完所有页。
func (g Gists) ListStarred(ctx context.Context, since time.Time, perPage, page int) ([]BaseGist, error) {
	path := listQuery(since, perPage, page).Appended("/gists/starred")
	return restclient.GetAllPages(ctx, g.http, path, restclient.ArrayPages[BaseGist]())
}

// ListForUser 列出指定用户的公开 gists，自动翻完所有页。
func (g Gists) ListForUser(ctx context.Context, username string, since time.Time, perPage, page int) ([]BaseGist, error) {
	path := listQuery(since, perPage, page).
		Appended(restclient.EscapePath("/users/%s/gists", username))
	return restclient.GetAllPages(ctx, g.http, path, restclient.ArrayPages[BaseGist]())
}

// Create 创建 gist（一个或多个文件）。
func (g Gists) Create(ctx context.Context, body *CreateGistRequest) (*GistSimple, error) {
	var out GistSimple
	if err := g.http.Post(ctx, "/gists", restclient.JSONBody(body), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get 获取单个 gist。
func (g Gists) Get(ctx context.Context, gistID string) (*GistSimple, error) {
	var out GistSimple
	if err := g.http.Get(ctx, restclient.EscapePath("/gists/%s", gistID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update 修改 gist 的描述或文件内容。Files 里值为 nil 的条目会序列化成 JSON
// null，含义是"删除该文件"（GitHub 文档语义），与省略该字段不同。
func (g Gists) Update(ctx context.Context, gistID string, body *UpdateGistRequest) (*GistSimple, error) {
	var out GistSimple
	path := restclient.EscapePath("/gists/%s", gistID)
	if err := g.http.Patch(ctx, path, restclient.JSONBody(body), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete 删除 gist。
func (g Gists) Delete(ctx context.Context, gistID string) error {
	return g.http.Delete(ctx, restclient.EscapePath("/gists/%s", gistID), restclient.NoBody(), nil)
}

// ListComments 列出 gist 的评论，自动翻完所有页。
func (g Gists) ListComments(ctx context.Context, gistID string, perPage, page int) ([]GistComment, error) {
	path := restclient.NewQuery().
		AddInt("page", int64(page)).
		AddInt("per_page", int64(perPage)).
		Appended(restclient.EscapePath("/gists/%s/comments", gistID))
	return restclient.GetAllPages(ctx, g.http, path, restclient.ArrayPages[GistComment]())
}

// CreateComment 给 gist 添加评论。
func (g Gists) CreateComment(ctx context.Context, gistID string, body *CreateCommentRequest) (*GistComment, error) {
	var out GistComment
	path := restclient.EscapePath("/gists/%s/comments", gistID)
	if err := g.http.Post(ctx, path, restclient.JSONBody(body), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetComment 获取单条评论。
func (g Gists) GetComment(ctx context.Context, gistID, commentID string) (*GistComment, error) {
	var out GistComment
	path := restclient.EscapePath("/gists/%s/comments/%s", gistID, commentID)
	if err := g.http.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateComment 修改评论内容。
func (g Gists) UpdateComment(ctx context.Context, gistID, commentID string, body *CreateCommentRequest) (*GistComment, error) {
	var out GistComment
	path := restclient.EscapePath("/gists/%s/comments/%s", gistID, commentID)
	if err := g.http.Patch(ctx, path, restclient.JSONBody(body), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment 删除评论。
func (g Gists) DeleteComment(ctx context.Context, gistID, commentID string) error {
	path := restclient.EscapePath("/gists/%s/comments/%s", gistID, commentID)
	return g.http.Delete(ctx, path, restclient.NoBody(), nil)
}

// ListCommits 列出 gist 的提交历史，自动翻完所有页。
func (g Gists) ListCommits(ctx context.Context, gistID string, perPage, page int) ([]GistCommit, error) {
	path := restclient.NewQuery().
		AddInt("page", int64(page)).
		AddInt("per_page", int64(perPage)).
		Appended(restclient.EscapePath("/gists/%s/commits", gistID))
	return restclient.GetAllPages(ctx, g.http, path, restclient.ArrayPages[GistCommit]())
}

// ListForks 列出 gist 的 fork，自动翻完所有页。
func (g Gists) ListForks(ctx context.Context, gistID string, perPage, page int) ([]GistSimple, error) {
	path := restclient.NewQuery().
		AddInt("page", int64(page)).
		AddInt("per_page", int64(perPage)).
		Appended(restclient.EscapePath("/gists/%s/forks", gistID))
	return restclient.GetAllPages(ctx, g.http, path, restclient.ArrayPages[GistSimple]())
}

// Fork fork 一个 gist。
func (g Gists) Fork(ctx context.Context, gistID string) (*BaseGist, error) {
	var out BaseGist
	path := restclient.EscapePath("/gists/%s/forks", gistID)
	if err := g.http.Post(ctx, path, restclient.NoBody(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IsStarred 检查 gist 是否已加星：服务端返回 204 表示已加星，404 表示未加星，
// 其余错误原样上抛。
func (g Gists) IsStarred(ctx context.Context, gistID string) (bool, error) {
	err := g.http.Get(ctx, restclient.EscapePath("/gists/%s/star", gistID), nil)
	if err == nil {
		return true, nil
	}
	if restclient.IsStatus(err, http.StatusNotFound) {
		return false, nil
	}
	return false, err
}

// Star 给 gist 加星。GitHub 要求该接口携带 Content-Length: 0，因此这里发送
// 显式空体而不是不带请求体。
func (g Gists) Star(ctx context.Context, gistID string) error {
	path := restclient.EscapePath("/gists/%s/star", gistID)
	return g.http.Put(ctx, path, restclient.EmptyBody(), nil)
}

// Unstar 取消加星。
func (g Gists) Unstar(ctx context.Context, gistID string) error {
	path := restclient.EscapePath("/gists/%s/star", gistID)
	return g.http.Delete(ctx, path, restclient.NoBody(), nil)
}

// GetRevision 获取 gist 的指定历史版本。
func (g Gists) GetRevision(ctx context.Context, gistID, sha string) (*GistSimple, error) {
	var out GistSimple
	path := restclient.EscapePath("/gists/%s/%s", gistID, sha)
	if err := g.http.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
