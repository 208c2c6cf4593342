package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fractalyx/internal/shared/errors"
)

func multipartFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["image"][0]
}

func TestStorage_SaveImage(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewStorage(dir, 1)
	require.NoError(t, err)

	t.Run("saves image under uuid-prefixed name", func(t *testing.T) {
		file := multipartFile(t, "mockup.png", []byte("png-bytes"))

		path, err := storage.SaveImage(file)
		require.NoError(t, err)
		assert.Equal(t, dir, filepath.Dir(path))
		assert.True(t, strings.HasSuffix(path, "_mockup.png"))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), content)
	})

	t.Run("same filename twice produces distinct paths", func(t *testing.T) {
		first, err := storage.SaveImage(multipartFile(t, "shot.png", []byte("a")))
		require.NoError(t, err)
		second, err := storage.SaveImage(multipartFile(t, "shot.png", []byte("b")))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("path components stripped from filename", func(t *testing.T) {
		file := multipartFile(t, "../../etc/passwd.png", []byte("x"))

		path, err := storage.SaveImage(file)
		require.NoError(t, err)
		assert.Equal(t, dir, filepath.Dir(path))
		assert.NotContains(t, filepath.Base(path), "/")
	})

	t.Run("unsupported extension rejected", func(t *testing.T) {
		file := multipartFile(t, "payload.exe", []byte("x"))

		_, err := storage.SaveImage(file)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("oversized file rejected", func(t *testing.T) {
		file := multipartFile(t, "huge.png", bytes.Repeat([]byte("x"), 1<<20+1))

		_, err := storage.SaveImage(file)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "photo.png", "photo.png"},
		{"spaces replaced", "my photo.png", "my_photo.png"},
		{"path stripped", "/tmp/evil/photo.png", "photo.png"},
		{"unicode replaced", "фото.png", "____.png"},
		{"empty becomes upload", "", "upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFilename(tt.input))
		})
	}
}
