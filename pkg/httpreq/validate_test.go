package httpreq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckVersionSyntax(t *testing.T) {
	tests := []struct {
		version string
		wantErr error
	}{
		{"HTTP/1.0", nil},
		{"HTTP/1.1", nil},
		{"http/1.1", nil},
		{"HTTPS/1.0", ErrInvalidHTTPToken},
		{"HTTP/9.9", ErrUnsupportedVersion},
		{"HTTP/1.00000000000000", ErrUnsupportedVersion},
		{"ABCDEF", ErrInvalidVersionToken},
		{"HTTP/1.1/x", ErrInvalidVersionToken},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := CheckVersionSyntax(tt.version)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidVersion)
			assert.Contains(t, err.Error(), tt.version)
		})
	}
}

func TestVersionErrorsAreDistinct(t *testing.T) {
	assert.NotErrorIs(t, CheckVersionSyntax("HTTPS/1.0"), ErrUnsupportedVersion)
	assert.NotErrorIs(t, CheckVersionSyntax("HTTP/9.9"), ErrInvalidHTTPToken)
	assert.NotErrorIs(t, CheckVersionSyntax("ABCDEF"), ErrInvalidHTTPToken)
}

func TestCheckURISyntax(t *testing.T) {
	tests := []struct {
		uri, host, want string
	}{
		{"http://abc/def.html", "", "http://abc/def.html"},
		{"/foo", "test.com", "http://test.com/foo"},
		{"foo", "test.com", "http://test.com/foo"},
		{"", "test.com", "http://test.com/"},
		{"/a;p=1?q=2#frag", "h", "http://h/a;p=1?q=2#frag"},
		{"HTTPS://Abc/x", "", "https://Abc/x"},
		{"//other.host/path", "test.com", "http://other.host/path"},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			u, err := CheckURISyntax(tt.uri, tt.host)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
			assert.True(t, u.IsAbs())
		})
	}
}

func TestCheckURISyntaxInvalid(t *testing.T) {
	for _, uri := range []string{"ABCDEF", "/foo", "ftp://abc/", "mailto:a@b"} {
		t.Run(uri, func(t *testing.T) {
			_, err := CheckURISyntax(uri, "")
			assert.ErrorIs(t, err, ErrInvalidURI)
			assert.Contains(t, err.Error(), uri)
		})
	}
}

func TestCheckURISyntaxRejectsBadHost(t *testing.T) {
	_, err := CheckURISyntax("/foo", "bad host")
	assert.ErrorIs(t, err, ErrInvalidURI)
}
