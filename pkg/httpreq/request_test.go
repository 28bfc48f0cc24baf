package httpreq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r, err := New("GET", "http://moth/")
	require.NoError(t, err)
	assert.Equal(t, "http://moth/", r.TargetURI())
	assert.Equal(t, DefaultVersion, r.Version())
	assert.True(t, r.HasQueryString())

	_, err = New("GET", "/relative")
	assert.ErrorIs(t, err, ErrInvalidURI)

	assert.Panics(t, func() { MustNew("GET", "ftp://x/") })
}

func TestRequestCopyIsDeep(t *testing.T) {
	r := MustNew("GET", "http://moth/a/b.php?x=1")
	r.Header().Add("Accept", "*/*")
	r.SetCookie(ParseCookie("foo=bar"))

	c := r.Copy()
	c.Header().Set("Accept", "changed")
	c.Cookie().SetValue(0, "changed")
	require.NoError(t, c.SetURI(c.WithFileName("c.php")))

	assert.Equal(t, "*/*", r.Header().Get("Accept"))
	assert.Equal(t, "foo=bar;", r.Cookie().String())
	assert.Equal(t, "http://moth/a/b.php?x=1", r.TargetURI())
	assert.Equal(t, "http://moth/a/c.php?x=1", c.TargetURI())
}

func TestRequestFileName(t *testing.T) {
	tests := []struct{ target, want string }{
		{"http://moth/foo/bar.htm", "bar.htm"},
		{"http://moth/foo/", ""},
		{"http://moth/", ""},
		{"http://moth/a%20b.txt", "a%20b.txt"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MustNew("GET", tt.target).FileName(), tt.target)
	}
}

func TestRequestWithFileNameKeepsEscapes(t *testing.T) {
	r := MustNew("GET", "http://moth/dir/file.html?q=1#top")

	u := r.WithFileName("a%2Fb.html")
	assert.Equal(t, "http://moth/dir/a%2Fb.html?q=1#top", u.String())

	u = r.WithFileName("a/b.html")
	assert.Equal(t, "http://moth/dir/a/b.html?q=1#top", u.String())

	u = r.WithFileName("%253Cx%253E.html")
	assert.Equal(t, "http://moth/dir/%253Cx%253E.html?q=1#top", u.String())
}

func TestSetURIRejectsRelative(t *testing.T) {
	r := MustNew("GET", "http://moth/")
	other := MustNew("GET", "http://moth/")
	u := other.URI()
	u.Host = ""
	assert.ErrorIs(t, r.SetURI(u), ErrInvalidURI)
	assert.ErrorIs(t, r.SetURI(nil), ErrInvalidURI)
}

func TestRequestDump(t *testing.T) {
	req, err := Parse("POST /p?a=1 HTTP/1.1\nHost: moth\nCookie: s=1\nX-Test: y", "k=v")
	require.NoError(t, err)

	want := strings.Join([]string{
		"POST /p?a=1 HTTP/1.1",
		"Host: moth",
		"X-Test: y",
		"Cookie: s=1;",
		"",
		"k=v",
	}, "\r\n")
	assert.Equal(t, want, req.Dump())
}

func TestRequestDumpAddsHost(t *testing.T) {
	r := MustNew("GET", "http://moth:8080/")
	assert.Equal(t, "GET / HTTP/1.1\r\nHost: moth:8080\r\n\r\n", r.Dump())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "query-string", KindQueryString.String())
	assert.Equal(t, "post-data", KindPostData.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
