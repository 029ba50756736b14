package restclient

import (
	"fmt"
	"net/url"
)

// EscapePath 按模板拼接路径：模板本身原样保留，每个占位 segment 独立做百分号
// 编码。标识符一律按不透明字符串处理，出现 '/'、'?'、'#'、空格等保留字符时
// 不会串进路由或查询串。
//
//	EscapePath("/gists/%s/comments/%s", gistID, commentID)
func EscapePath(format string, segs ...string) string {
	args := make([]any, len(segs))
	for i, s := range segs {
		args[i] = url.PathEscape(s)
	}
	return fmt.Sprintf(format, args...)
}
