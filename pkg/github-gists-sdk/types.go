package githubgistssdk

import "time"

// 说明：
// - 响应结构只保留本 SDK 用到的字段子集，未知字段在解码时直接忽略；
// - 请求结构的可选字段统一 omitempty，"字段缺失"与"字段为 null"在 GitHub 的
//   gist 更新接口上语义不同（null 表示清除/删除），因此 UpdateGistRequest 用
//   指针/可空 map 条目显式表达 null，详见 UpdateGistRequest 注释。

// SimpleUser 是 GitHub 用户的精简形态（gist owner、评论作者等处出现）。
type SimpleUser struct {
	Login     string `json:"login"`
	ID        int64  `json:"id"`
	NodeID    string `json:"node_id"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
	Type      string `json:"type"`
	SiteAdmin bool   `json:"site_admin"`
}

// GistFile 描述 gist 里的单个文件。
type GistFile struct {
	Filename  string `json:"filename"`
	Type      string `json:"type"`
	Language  string `json:"language"`
	RawURL    string `json:"raw_url"`
	Size      int64  `json:"size"`
	Truncated bool   `json:"truncated"`
	Content   string `json:"content"`
}

// BaseGist 是列表接口返回的 gist 形态。
type BaseGist struct {
	ID          string              `json:"id"`
	NodeID      string              `json:"node_id"`
	URL         string              `json:"url"`
	HTMLURL     string              `json:"html_url"`
	CommitsURL  string              `json:"commits_url"`
	ForksURL    string              `json:"forks_url"`
	GitPullURL  string              `json:"git_pull_url"`
	GitPushURL  string              `json:"git_push_url"`
	Description string              `json:"description"`
	Public      bool                `json:"public"`
	Comments    int                 `json:"comments"`
	CommentsURL string              `json:"comments_url"`
	Files       map[string]GistFile `json:"files"`
	Owner       *SimpleUser         `json:"owner"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// GistSimple 是单个 gist 详情接口返回的形态，在 BaseGist 之上多出 fork 来源等信息。
type GistSimple struct {
	BaseGist

	ForkOf *BaseGist `json:"fork_of"`
	// History 在 revision 接口里给出，列表接口不含。
	History []GistCommit `json:"history"`
}

// GistComment 是 gist 评论。
type GistComment struct {
	ID                int64       `json:"id"`
	NodeID            string      `json:"node_id"`
	URL               string      `json:"url"`
	Body              string      `json:"body"`
	User              *SimpleUser `json:"user"`
	AuthorAssociation string      `json:"author_association"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// ChangeStatus 统计一次 gist 提交的行级变更。
type ChangeStatus struct {
	Total     int `json:"total"`
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
}

// GistCommit 是 gist 提交历史里的一条记录。
type GistCommit struct {
	URL          string       `json:"url"`
	Version      string       `json:"version"`
	User         *SimpleUser  `json:"user"`
	ChangeStatus ChangeStatus `json:"change_status"`
	CommittedAt  time.Time    `json:"committed_at"`
}

// CreateGistFile 是创建 gist 时单个文件的内容。
type CreateGistFile struct {
	Content string `json:"content"`
}

// CreateGistRequest 是 POST /gists 的请求体。
type CreateGistRequest struct {
	Description string                    `json:"description,omitempty"`
	Public      bool                      `json:"public"`
	Files       map[string]CreateGistFile `json:"files"`
}

// UpdateGistFile 是更新 gist 时单个文件的新内容/新文件名。
type UpdateGistFile struct {
	Content  string `json:"content,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// UpdateGistRequest 是 PATCH /gists/{gist_id} 的请求体。
// Files 的某个条目取 nil 时会序列化成 JSON null，GitHub 将其理解为"删除该文件"；
// 不想动的文件直接不放进 map。Description 用指针区分"不修改"（nil）与
// "清空描述"（指向空串）。
type UpdateGistRequest struct {
	Description *string                    `json:"description,omitempty"`
	Files       map[string]*UpdateGistFile `json:"files,omitempty"`
}

// CreateCommentRequest 是创建/更新 gist 评论的请求体。
type CreateCommentRequest struct {
	Body string `json:"body"`
}
