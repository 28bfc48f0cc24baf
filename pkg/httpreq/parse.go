package httpreq

import "strings"

// Parse converts a raw request head and body into a Request.
//
// The head is split on newlines; lines are trimmed and blank lines dropped.
// The first line is the request line, the rest are "Name: Value" headers.
// Parsing stops at the first violation and returns a *ParseError wrapping
// one of the package sentinels.
func Parse(head, body string) (*Request, error) {
	var lines []string
	for _, line := range strings.Split(head, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, newParseError(ErrMalformedRequestLine, strings.TrimSpace(head))
	}

	method, uri, version, err := splitRequestLine(lines[0])
	if err != nil {
		return nil, err
	}
	if err := CheckVersionSyntax(version); err != nil {
		return nil, err
	}

	header := NewHeader()
	for _, line := range lines[1:] {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, newParseError(ErrInvalidHeaderLine, line)
		}
		header.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	u, err := CheckURISyntax(uri, header.Get("Host"))
	if err != nil {
		return nil, err
	}

	req := &Request{
		method:  method,
		uri:     u,
		version: version,
		header:  header,
		body:    body,
	}
	if header.Has("Cookie") {
		req.cookie = ParseCookie(strings.Join(header.Values("Cookie"), "; "))
		header.Del("Cookie")
	}
	return req, nil
}

// splitRequestLine splits "METHOD SP TARGET SP VERSION" on single spaces.
//
// Lines with more than three tokens are accepted on purpose: the first
// token is the method, the last the version, and everything in between is
// rejoined with single spaces as the target. This keeps requests such as
// "GET /hello world.html HTTP/1.0" usable.
func splitRequestLine(line string) (method, uri, version string, err error) {
	tokens := strings.Split(line, " ")
	switch {
	case len(tokens) == 3:
		return tokens[0], tokens[1], tokens[2], nil
	case len(tokens) < 3:
		return "", "", "", newParseError(ErrMalformedRequestLine, line)
	default:
		last := len(tokens) - 1
		return tokens[0], strings.Join(tokens[1:last], " "), tokens[last], nil
	}
}

// SplitRaw separates a full raw request into head and body at the first
// empty line. Both LF and CRLF line endings are accepted; the body is
// returned verbatim.
func SplitRaw(raw string) (head, body string) {
	crlf := strings.Index(raw, "\r\n\r\n")
	lf := strings.Index(raw, "\n\n")
	switch {
	case crlf >= 0 && (lf < 0 || crlf < lf):
		return raw[:crlf], raw[crlf+4:]
	case lf >= 0:
		return raw[:lf], raw[lf+2:]
	default:
		return raw, ""
	}
}
