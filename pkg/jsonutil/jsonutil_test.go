package jsonutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
	Name  string `json:"name,omitempty"`
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(sample{Kind: "cookie", Index: 1})
	require.NoError(t, err)
	assert.Equal(t, `{"kind":"cookie","index":1}`, string(data))
}

func TestMarshalIndentAndUnmarshal(t *testing.T) {
	in := sample{Kind: "query", Index: 2, Name: "id"}
	data, err := MarshalIndent(in, "  ")
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"kind\":")

	var out sample
	require.NoError(t, Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestWriteIndent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIndent(&buf, []sample{{Kind: "header"}}))
	assert.True(t, strings.HasSuffix(buf.String(), "]\n"))
}

func TestLineWriter(t *testing.T) {
	var buf bytes.Buffer
	lw := NewLineWriter(&buf)
	require.NoError(t, lw.Write(sample{Kind: "a"}))
	require.NoError(t, lw.Write(sample{Kind: "b", Index: 1}))
	require.NoError(t, lw.Flush())

	assert.Equal(t, 2, lw.Count())
	assert.Equal(t, "{\"kind\":\"a\",\"index\":0}\n{\"kind\":\"b\",\"index\":1}\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestLineWriterStickyError(t *testing.T) {
	lw := NewLineWriter(failWriter{})
	require.NoError(t, lw.Write(sample{Kind: "a"}), "buffered until flush")

	err := lw.Flush()
	require.Error(t, err)
	assert.Equal(t, 1, lw.Count())
}
