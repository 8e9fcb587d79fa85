package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "http://localhost:4000/api/v1/files"})
	require.NoError(t, err)
	return s
}

func TestLocalStorage_SaveGetDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestLocalStorage(t)

	key := "portfolio/owner@example.com_shot.png"
	require.NoError(t, s.Save(ctx, key, strings.NewReader("png-bytes"), "image/png"))

	exists, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := s.Get(ctx, key)
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, reader.Close())
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, s.Delete(ctx, key))
	exists, err = s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_DeleteMissingIsNotAnError(t *testing.T) {
	t.Parallel()
	s := newTestLocalStorage(t)

	assert.NoError(t, s.Delete(context.Background(), "avatars/never-saved.png"))
}

func TestLocalStorage_GetURL(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestLocalStorage(t)

	url, err := s.GetURL(ctx, "avatars/owner@example.com_face.png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000/api/v1/files/avatars/owner@example.com_face.png", url)
}
