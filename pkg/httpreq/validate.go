package httpreq

import (
	"net/url"
	"strings"
)

// SupportedVersions lists the version numbers accepted after "HTTP/".
var SupportedVersions = []string{"1.0", "1.1"}

// SupportedSchemes lists the URI schemes a request target may use.
var SupportedSchemes = []string{"http", "https"}

// CheckVersionSyntax validates an HTTP version token such as "HTTP/1.1".
//
// The token must split on '/' into exactly two parts, the first equal to
// "HTTP" ignoring case and the second one of SupportedVersions.
func CheckVersionSyntax(version string) error {
	parts := strings.Split(version, "/")
	if len(parts) != 2 {
		return newParseError(ErrInvalidVersionToken, version)
	}
	if !strings.EqualFold(parts[0], "http") {
		return newParseError(ErrInvalidHTTPToken, version)
	}
	if !contains(SupportedVersions, parts[1]) {
		return newParseError(ErrUnsupportedVersion, version)
	}
	return nil
}

// CheckURISyntax resolves uri against an optional host and returns the
// canonical absolute URI.
//
// A missing scheme defaults to http, a missing authority to host and an
// empty path to "/". The result must use a supported scheme and carry an
// authority; anything else fails with ErrInvalidURI.
func CheckURISyntax(uri, host string) (*url.URL, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, newParseError(ErrInvalidURI, uri)
	}
	if u.Opaque != "" {
		return nil, newParseError(ErrInvalidURI, uri)
	}
	if u.Scheme == "" {
		u.Scheme = "http"
	}
	if u.Host == "" {
		u.Host = host
	}
	switch {
	case u.Path == "":
		u.Path = "/"
		u.RawPath = ""
	case !strings.HasPrefix(u.Path, "/"):
		u.Path = "/" + u.Path
		if u.RawPath != "" {
			u.RawPath = "/" + u.RawPath
		}
	}

	if !contains(SupportedSchemes, strings.ToLower(u.Scheme)) || u.Host == "" {
		return nil, newParseError(ErrInvalidURI, uri)
	}

	// Round-trip through the parser so an invalid Host header value is
	// rejected the same way an invalid authority in the target would be.
	canonical, err := url.Parse(u.String())
	if err != nil || canonical.Host == "" {
		return nil, newParseError(ErrInvalidURI, uri)
	}
	return canonical, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
