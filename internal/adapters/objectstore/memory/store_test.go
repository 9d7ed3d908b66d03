package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGet(t *testing.T) {
	s := New("")
	require.NoError(t, s.Put(context.Background(), "public/a.png", strings.NewReader("png"), 3, "image/png"))

	o, ok := s.Get("public/a.png")
	require.True(t, ok)
	assert.Equal(t, "png", string(o.Body))
	assert.Equal(t, "image/png", o.ContentType)
	assert.Equal(t, DefaultBaseURL+"/public/a.png", s.PublicURL("public/a.png"))

	_, ok = s.Get("public/b.png")
	assert.False(t, ok)
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New("https://cdn.example/")
	assert.Error(t, s.Put(ctx, "k", strings.NewReader("x"), 1, ""))
	assert.Equal(t, "https://cdn.example/k", s.PublicURL("k"))
}
