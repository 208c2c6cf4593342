package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"fractalyx/internal/shared/errors"
)

var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Storage writes uploaded chat images to local disk. Stored names are
// UUID-prefixed so concurrent uploads of the same filename never collide.
type Storage struct {
	dir       string
	maxSizeMB int
}

func NewStorage(dir string, maxSizeMB int) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Storage{
		dir:       dir,
		maxSizeMB: maxSizeMB,
	}, nil
}

// SaveImage persists an uploaded image and returns its path on disk.
func (s *Storage) SaveImage(file *multipart.FileHeader) (string, error) {
	if s.maxSizeMB > 0 && file.Size > int64(s.maxSizeMB)<<20 {
		return "", errors.NewValidationError(fmt.Sprintf("image exceeds %dMB limit", s.maxSizeMB))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return "", errors.NewValidationError("unsupported image type")
	}

	name := sanitizeFilename(file.Filename)
	target := filepath.Join(s.dir, uuid.NewString()+"_"+name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return target, nil
}

// sanitizeFilename strips path components and unsafe characters.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	if name == "" || name == "." {
		name = "upload"
	}
	return name
}
