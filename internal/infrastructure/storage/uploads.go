package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"helioscale/internal/shared/config"
	apperrors "helioscale/internal/shared/errors"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var allowedImageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadStore writes uploaded images to the local uploads directory
// and hands back the public path they are served from.
type UploadStore struct {
	dir        string
	publicPath string
	maxSize    int64
}

func NewUploadStore(cfg *config.UploadConfig) (*UploadStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	return &UploadStore{
		dir:        cfg.Dir,
		publicPath: strings.TrimSuffix(cfg.PublicPath, "/"),
		maxSize:    cfg.MaxSizeBytes,
	}, nil
}

// Dir returns the filesystem directory backing the store.
func (s *UploadStore) Dir() string {
	return s.dir
}

// SaveImage validates and persists a multipart image upload. The file
// is renamed to a uuid so user-supplied names never touch the
// filesystem. Returns the public path for the stored file.
func (s *UploadStore) SaveImage(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > s.maxSize {
		return "", apperrors.NewValidationError(
			fmt.Sprintf("file exceeds maximum size of %d bytes", s.maxSize))
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return "", apperrors.NewValidationError("unsupported file extension, allowed: jpg, jpeg, png, webp")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Sniff the actual content type rather than trusting the header.
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	contentType := http.DetectContentType(head[:n])
	if !allowedImageContentTypes[contentType] {
		return "", apperrors.NewValidationError(
			fmt.Sprintf("unsupported content type: %s", contentType))
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind uploaded file: %w", err)
	}

	name := uuid.NewString() + ext
	dstPath := filepath.Join(s.dir, name)

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}

	return s.publicPath + "/" + name, nil
}
