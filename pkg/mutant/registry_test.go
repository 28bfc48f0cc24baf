package mutant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryOrder(t *testing.T) {
	assert.Equal(t, []Kind{KindFileName, KindCookie, KindQueryString, KindHeader}, DefaultRegistry.Kinds())

	f, ok := DefaultRegistry.Get(KindCookie)
	require.True(t, ok)
	assert.Equal(t, KindCookie, f.Kind())
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(CookieFactory{}))

	err := r.Register(CookieFactory{})
	assert.ErrorIs(t, err, ErrDuplicateFactory)
	assert.Len(t, r.All(), 1)

	_, ok := r.Get(KindHeader)
	assert.False(t, ok)
}

func TestKindNames(t *testing.T) {
	tests := []struct {
		kind Kind
		str  string
		slug string
	}{
		{KindFileName, "url filename", "filename"},
		{KindCookie, "cookie", "cookie"},
		{KindQueryString, "query string", "query"},
		{KindHeader, "header", "header"},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.kind.String())
			assert.Equal(t, tt.slug, tt.kind.Slug())
		})
	}
}
