package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"double-url", "plain", "url", "url-path"}, Names())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name, safe, in, want string
	}{
		{"plain", "/", "<a b>", "<a b>"},
		{"url", "", "a/b c", "a%2Fb+c"},
		{"URL-PATH", "", "a/b c", "a/b+c"},
		{"url", "/", "a/b c", "a/b+c"},
		{"double-url", "", "<script>", "%253Cscript%253E"},
		{"double-url", "/", "../<x>", "../%253Cx%253E"},
	}
	for _, tt := range tests {
		t.Run(tt.name+"|"+tt.safe, func(t *testing.T) {
			enc, err := Resolve(tt.name, tt.safe)
			require.NoError(t, err)
			assert.Equal(t, tt.want, enc.Encode(tt.in))

			decoded, err := enc.Decode(enc.Encode(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.in, decoded)
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve("rot13", "")
	require.ErrorIs(t, err, ErrUnknownEncoder)
	assert.Contains(t, err.Error(), `"rot13"`)

	assert.Panics(t, func() { MustResolve("rot13", "") })
	assert.NotPanics(t, func() { MustResolve(DoubleURL, "/") })
}

func TestResolveDoesNotAlterPresets(t *testing.T) {
	_, err := Resolve(URL, "/<>")
	require.NoError(t, err)

	enc := MustResolve(URL, "")
	assert.Equal(t, "%2F%3C", enc.Encode("/<"))
}

func TestCompose(t *testing.T) {
	seq, err := Compose("url", "URL")
	require.NoError(t, err)
	require.Len(t, seq, 2)
	assert.Equal(t, "%252F", seq.Encode("/"))
	assert.Equal(t, MustResolve(DoubleURL, "").Encode("/"), seq.Encode("/"))

	decoded, err := seq.Decode("%252F")
	require.NoError(t, err)
	assert.Equal(t, "/", decoded)

	_, err = Compose("url", "missing")
	assert.ErrorIs(t, err, ErrUnknownEncoder)

	empty, err := Compose()
	require.NoError(t, err)
	assert.Equal(t, "x y", empty.Encode("x y"))
}

func TestSequenceDecodeError(t *testing.T) {
	seq, err := Compose("plain", "url")
	require.NoError(t, err)

	_, err = seq.Decode("%zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 2")
}
