package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T, baseURL string) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: baseURL})
	require.NoError(t, err)
	return s
}

func TestLocalStorage_SaveAndGet(t *testing.T) {
	t.Parallel()

	s := newLocal(t, "")
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "portal/a.png", strings.NewReader("payload"), "image/png"))

	rc, err := s.Get(ctx, "portal/a.png")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestLocalStorage_Exists(t *testing.T) {
	t.Parallel()

	s := newLocal(t, "")
	ctx := context.Background()

	ok, err := s.Exists(ctx, "missing.png")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(ctx, "a.png", strings.NewReader("x"), "image/png"))

	ok, err = s.Exists(ctx, "a.png")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalStorage_Delete(t *testing.T) {
	t.Parallel()

	s := newLocal(t, "")
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "a.png", strings.NewReader("x"), "image/png"))
	require.NoError(t, s.Delete(ctx, "a.png"))

	ok, err := s.Exists(ctx, "a.png")
	require.NoError(t, err)
	assert.False(t, ok)

	// Повторное удаление не считается ошибкой
	assert.NoError(t, s.Delete(ctx, "a.png"))
}

func TestLocalStorage_GetURL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	s := newLocal(t, "")
	url, err := s.GetURL(ctx, "portal/a.png")
	require.NoError(t, err)
	assert.Equal(t, "/files/portal/a.png", url)

	s = newLocal(t, "https://cdn.example.com")
	url, err = s.GetURL(ctx, "portal/a.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/portal/a.png", url)
}
