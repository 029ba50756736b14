package restclient

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Query 按固定顺序组装查询串：Add 的调用顺序即输出顺序（与目标 API 文档的参数
// 顺序对齐，跨调用稳定），空值直接跳过而不是序列化成 `key=`。
type Query struct {
	pairs []queryPair
}

type queryPair struct {
	key   string
	value string
}

func NewQuery() *Query { return &Query{} }

// Add 追加一个参数；value 为空串时整个跳过。
func (q *Query) Add(key, value string) *Query {
	if value != "" {
		q.pairs = append(q.pairs, queryPair{key, value})
	}
	return q
}

// AddInt 以十进制渲染整数；零值视同"未指定"跳过。
func (q *Query) AddInt(key string, v int64) *Query {
	if v == 0 {
		return q
	}
	return q.Add(key, strconv.FormatInt(v, 10))
}

// AddTime 以 ISO-8601 UTC（Z 后缀）渲染时间戳；零值跳过。
func (q *Query) AddTime(key string, t time.Time) *Query {
	if t.IsZero() {
		return q
	}
	return q.Add(key, t.UTC().Format(time.RFC3339))
}

func (q *Query) Encode() string {
	var sb strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}

// Appended 把查询串接到路径后面；没有任何参数时原样返回路径。
func (q *Query) Appended(path string) string {
	enc := q.Encode()
	if enc == "" {
		return path
	}
	return path + "?" + enc
}
