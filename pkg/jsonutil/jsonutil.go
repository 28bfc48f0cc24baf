// Package jsonutil wraps github.com/go-json-experiment/json for the CLI's
// JSON and JSON Lines output.
package jsonutil

import (
	"bufio"
	"io"
	"sync"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Marshal returns the JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalIndent returns the JSON encoding of v indented by indent.
func MarshalIndent(v any, indent string) ([]byte, error) {
	return json.Marshal(v, jsontext.WithIndent(indent))
}

// Unmarshal parses data into v.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// WriteIndent writes v to w as indented JSON followed by a newline.
func WriteIndent(w io.Writer, v any) error {
	if err := json.MarshalWrite(w, v, jsontext.WithIndent("  ")); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// LineWriter emits one compact JSON document per line. It is safe for
// concurrent use.
type LineWriter struct {
	mu  sync.Mutex
	w   *bufio.Writer
	n   int
	err error
}

// NewLineWriter returns a JSON Lines writer on w. Call Flush when done.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: bufio.NewWriter(w)}
}

// Write encodes v on its own line. After the first error every call
// returns that error.
func (lw *LineWriter) Write(v any) error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if lw.err != nil {
		return lw.err
	}
	if err := json.MarshalWrite(lw.w, v); err != nil {
		lw.err = err
		return err
	}
	if err := lw.w.WriteByte('\n'); err != nil {
		lw.err = err
		return err
	}
	lw.n++
	return nil
}

// Count returns the number of lines written.
func (lw *LineWriter) Count() int {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.n
}

// Flush writes any buffered data to the underlying writer.
func (lw *LineWriter) Flush() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if lw.err != nil {
		return lw.err
	}
	return lw.w.Flush()
}
