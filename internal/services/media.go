package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"regexp"
	"strings"

	"folio_backend/internal/logger"
	"folio_backend/internal/storage"
	"folio_backend/pkg/apperrors"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9._-]`)

// SanitizeFilename lowercases the name, turns whitespace into dashes and
// strips everything outside [a-z0-9._-] so the result is a safe object-key
// segment.
func SanitizeFilename(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.Join(strings.Fields(name), "-")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	if name == "" || strings.Trim(name, ".") == "" {
		name = "file"
	}
	return name
}

// MediaConfig bounds what the media adapter accepts.
type MediaConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

// MediaStore is the media upload adapter: it pushes multipart files into
// object storage under `<category>/<ownerEmail>_<sanitizedName>` and hands
// back the key plus public URL. Database writes stay with the calling
// service; MediaStore only offers Discard as the compensating action when
// that write fails after a successful upload.
type MediaStore struct {
	store  storage.Storage
	config MediaConfig
}

func NewMediaStore(store storage.Storage, config MediaConfig) *MediaStore {
	return &MediaStore{store: store, config: config}
}

// Put validates and uploads one file. The returned key is what Discard and
// item deletion operate on.
func (m *MediaStore) Put(ctx context.Context, category, ownerEmail string, file *multipart.FileHeader) (key string, url string, err error) {
	if file == nil {
		return "", "", apperrors.ErrMissingFile
	}
	if m.config.MaxSize > 0 && file.Size > m.config.MaxSize {
		return "", "", apperrors.ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if !m.typeAllowed(contentType) {
		return "", "", apperrors.ErrInvalidFileType
	}

	key = fmt.Sprintf("%s/%s_%s", category, ownerEmail, SanitizeFilename(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", "", apperrors.ErrStorage(err)
	}
	defer src.Close()

	if err := m.store.Save(ctx, key, src, contentType); err != nil {
		return "", "", apperrors.ErrStorage(err)
	}

	url, err = m.store.GetURL(ctx, key)
	if err != nil {
		return "", "", apperrors.ErrStorage(err)
	}
	return key, url, nil
}

// Discard removes an object uploaded earlier in the same request whose
// database write failed. Best effort: a failure is logged, never returned.
func (m *MediaStore) Discard(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := m.store.Delete(ctx, key); err != nil {
		logger.CtxWithError(ctx, "failed to discard orphaned object", err, "key", key)
	}
}

// Remove deletes the object backing a deleted row. Best effort: the row is
// already gone, so a storage failure is logged as an inconsistency and the
// caller proceeds.
func (m *MediaStore) Remove(ctx context.Context, key, url string) {
	if key == "" {
		key = m.keyFromURL(url)
	}
	if key == "" {
		return
	}
	if err := m.store.Delete(ctx, key); err != nil {
		logger.CtxWithError(ctx, "object left behind after row deletion", err, "key", key)
	}
}

// keyFromURL reconstructs the object key from a stored public URL for rows
// written before keys were persisted: the last two path segments are
// `<category>/<file>`.
func (m *MediaStore) keyFromURL(url string) string {
	parts := strings.Split(strings.TrimSuffix(url, "/"), "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}

func (m *MediaStore) typeAllowed(contentType string) bool {
	if len(m.config.AllowedTypes) == 0 {
		return true
	}
	for _, t := range m.config.AllowedTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}
