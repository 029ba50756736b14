package restclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestGetAllPages_LinkHeader(t *testing.T) {
	t.Parallel()

	pages := []string{
		`[{"name":"a","count":1},{"name":"b","count":2}]`,
		`[{"name":"c","count":3}]`,
		`[{"name":"d","count":4}]`,
	}

	var requests int32
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)

		page := 1
		fmt.Sscanf(r.URL.Query().Get("page"), "%d", &page)
		if page < len(pages) {
			w.Header().Set("Link", fmt.Sprintf(`<%s/widgets?page=%d>; rel="next", <%s/widgets?page=%d>; rel="last"`,
				srv.URL, page+1, srv.URL, len(pages)))
		}
		w.Write([]byte(pages[page-1]))
	}))
	defer srv.Close()

	got, err := GetAllPages(context.Background(), New(srv.URL), "/widgets", ArrayPages[widget]())
	if err != nil {
		t.Fatalf("GetAllPages returned error: %v", err)
	}

	// 条目按服务端顺序串接，页数等于请求数（最后一页不会被重复请求）。
	want := []string{"a", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Name != w {
			t.Fatalf("item %d = %q, want %q", i, got[i].Name, w)
		}
	}
	if n := atomic.LoadInt32(&requests); n != 3 {
		t.Fatalf("server saw %d requests, want 3", n)
	}
}

func TestGetAllPages_DataEnvelopeCursor(t *testing.T) {
	t.Parallel()

	var requests int32
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		if r.URL.Query().Get("start") == "" {
			fmt.Fprintf(w, `{"data":[1,2],"page":{"next":"%s/items?start=page2"}}`, srv.URL)
			return
		}
		fmt.Fprint(w, `{"data":[3],"page":{"next":null}}`)
	}))
	defer srv.Close()

	got, err := GetAllPages(context.Background(), New(srv.URL), "/items", DataEnvelopePages[int]())
	if err != nil {
		t.Fatalf("GetAllPages returned error: %v", err)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
	if n := atomic.LoadInt32(&requests); n != 2 {
		t.Fatalf("server saw %d requests, want 2", n)
	}
}

func TestGetAllPages_TerminatesOnEndlessNext(t *testing.T) {
	t.Parallel()

	var requests int32
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		// 行为异常的服务端：永远声称还有下一页。
		w.Header().Set("Link", fmt.Sprintf(`<%s/widgets?page=2>; rel="next"`, srv.URL))
		w.Write([]byte(`[{"name":"x","count":1}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithMaxPages(5))
	got, err := GetAllPages(context.Background(), c, "/widgets", ArrayPages[widget]())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got != nil {
		t.Fatalf("expected nil result on failure, got %d items", len(got))
	}
	if !strings.Contains(err.Error(), "did not terminate") {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := atomic.LoadInt32(&requests); n != 5 {
		t.Fatalf("server saw %d requests, want 5", n)
	}
}

func TestGetAllPages_FailureAbortsWithoutPartialResult(t *testing.T) {
	t.Parallel()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "" {
			w.Header().Set("Link", fmt.Sprintf(`<%s/widgets?page=2>; rel="next"`, srv.URL))
			w.Write([]byte(`[{"name":"a","count":1}]`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	}))
	defer srv.Close()

	got, err := GetAllPages(context.Background(), New(srv.URL), "/widgets", ArrayPages[widget]())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	// 翻页中途失败必须整体失败，不返回已取到的半截结果。
	if got != nil {
		t.Fatalf("expected nil result, got %v", got)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 APIError, got %v", err)
	}
}

func TestNextFromLinkHeader(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"empty", "", ""},
		{"next present", `<https://api.github.com/gists?page=2>; rel="next", <https://api.github.com/gists?page=9>; rel="last"`, "https://api.github.com/gists?page=2"},
		{"only last", `<https://api.github.com/gists?page=9>; rel="last"`, ""},
		{"unquoted rel", `<https://example.com/p2>; rel=next`, "https://example.com/p2"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := nextFromLinkHeader(c.header); got != c.want {
				t.Fatalf("nextFromLinkHeader(%q) = %q, want %q", c.header, got, c.want)
			}
		})
	}
}
