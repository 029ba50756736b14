package restclient

import "testing"

func TestEscapePath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		format string
		segs   []string
		want   string
	}{
		{"plain", "/gists/%s", []string{"abc123"}, "/gists/abc123"},
		{"space", "/resource/%s", []string{"abc def"}, "/resource/abc%20def"},
		{"slash", "/gists/%s", []string{"a/b"}, "/gists/a%2Fb"},
		{"question mark", "/gists/%s", []string{"a?b"}, "/gists/a%3Fb"},
		{"hash", "/gists/%s", []string{"a#b"}, "/gists/a%23b"},
		{"multiple segments", "/gists/%s/comments/%s", []string{"g 1", "c/2"}, "/gists/g%201/comments/c%2F2"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := EscapePath(c.format, c.segs...)
			if got != c.want {
				t.Fatalf("EscapePath(%q, %v) = %q, want %q", c.format, c.segs, got, c.want)
			}
		})
	}
}
