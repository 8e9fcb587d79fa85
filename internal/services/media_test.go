package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"folio_backend/internal/storage"
	"folio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Shot 01.PNG":     "shot-01.png",
		"  spaced  name ": "spaced-name",
		"über-design.jpg": "ber-design.jpg",
		"///":             "file",
		"":                "file",
		"...":             "file",
		"ok_name.webp":    "ok_name.webp",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFilename(in), "input %q", in)
	}
}

// fileHeader builds a real multipart.FileHeader the way gin would hand it to
// a handler.
func fileHeader(t *testing.T, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["image"][0]
}

func newTestMediaStore(t *testing.T) (*MediaStore, storage.Storage) {
	t.Helper()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir(), BaseURL: "http://localhost:4000/api/v1/files"})
	require.NoError(t, err)
	media := NewMediaStore(store, MediaConfig{
		MaxSize:      1 << 20,
		AllowedTypes: []string{"image/png", "image/jpeg"},
	})
	return media, store
}

func TestMediaStore_PutBuildsKeyAndURL(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	media, store := newTestMediaStore(t)

	key, url, err := media.Put(ctx, "portfolio", "owner@example.com", fileHeader(t, "My Shot.PNG", "image/png", "png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "portfolio/owner@example.com_my-shot.png", key)
	assert.Equal(t, "http://localhost:4000/api/v1/files/"+key, url)

	exists, err := store.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMediaStore_PutRejectsMissingFile(t *testing.T) {
	t.Parallel()
	media, _ := newTestMediaStore(t)

	_, _, err := media.Put(context.Background(), "portfolio", "owner@example.com", nil)
	assert.ErrorIs(t, err, apperrors.ErrMissingFile)
}

func TestMediaStore_PutRejectsOversizedFile(t *testing.T) {
	t.Parallel()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	media := NewMediaStore(store, MediaConfig{MaxSize: 4, AllowedTypes: []string{"image/png"}})

	_, _, err = media.Put(context.Background(), "portfolio", "o@e.com", fileHeader(t, "big.png", "image/png", "way-too-big"))
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestMediaStore_PutRejectsDisallowedType(t *testing.T) {
	t.Parallel()
	media, _ := newTestMediaStore(t)

	_, _, err := media.Put(context.Background(), "portfolio", "o@e.com", fileHeader(t, "doc.pdf", "application/pdf", "%PDF"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
}

func TestMediaStore_RemoveFallsBackToURL(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	media, store := newTestMediaStore(t)

	key, url, err := media.Put(ctx, "avatars", "owner@example.com", fileHeader(t, "face.png", "image/png", "png"))
	require.NoError(t, err)

	// Rows written before keys were persisted only carry the URL.
	media.Remove(ctx, "", url)

	exists, err := store.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMediaStore_DiscardRemovesFreshObject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	media, store := newTestMediaStore(t)

	key, _, err := media.Put(ctx, "portfolio", "owner@example.com", fileHeader(t, "shot.png", "image/png", "png"))
	require.NoError(t, err)

	media.Discard(ctx, key)

	exists, err := store.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}
