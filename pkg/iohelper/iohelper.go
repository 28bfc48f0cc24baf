// Package iohelper reads CLI inputs (raw requests, payload lists) with a
// size limit.
package iohelper

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Input size limits
const (
	// MaxRequestSize bounds a raw request file (1MB)
	MaxRequestSize int64 = 1024 * 1024

	// MaxPayloadFileSize bounds a payload list (10MB)
	MaxPayloadFileSize int64 = 10 * 1024 * 1024
)

// ErrTooLarge is returned when an input exceeds its limit.
var ErrTooLarge = errors.New("iohelper: input exceeds size limit")

// ReadLimited reads all of r, failing with ErrTooLarge when r holds more
// than maxSize bytes. A nil reader yields an empty slice.
func ReadLimited(r io.Reader, maxSize int64) ([]byte, error) {
	if r == nil {
		return []byte{}, nil
	}
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, maxSize)
	}
	return data, nil
}

// ReadFile reads path with ReadLimited. "-" reads stdin.
func ReadFile(path string, stdin io.Reader, maxSize int64) ([]byte, error) {
	if path == "-" {
		return ReadLimited(stdin, maxSize)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLimited(f, maxSize)
}

// Lines splits data into non-empty lines, dropping LF and CRLF
// terminators but keeping all other whitespace.
func Lines(data []byte) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), int(MaxPayloadFileSize))
	for sc.Scan() {
		if line := strings.TrimSuffix(sc.Text(), "\r"); line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}
