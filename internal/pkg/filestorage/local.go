package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/edunotes/edunotes/internal/pkg/logger"
)

// allowedExtensions is the document allow-list for uploads. Matching is
// case-insensitive on the extension.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// IsAllowedDocument reports whether the user-supplied filename carries an
// accepted document extension.
func IsAllowedDocument(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedExtensions[ext]
}

// LocalStorage stores blobs in a directory on the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// SaveFile writes the uploaded file under a uuid-based name. The returned
// size is measured from the stored blob, not taken from the upload headers.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, int64, error) {
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", 0, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	storedName := uuid.New().String() + ext
	dstPath := filepath.Join(ls.basePath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", 0, fmt.Errorf("failed to save file content: %w", err)
	}

	info, err := os.Stat(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to stat stored file")
		_ = os.Remove(dstPath)
		return "", 0, fmt.Errorf("failed to stat stored file: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", storedName).Int64("size", info.Size()).Msg("File saved")
	return storedName, info.Size(), nil
}

// DeleteFile removes a stored blob. Returns nil if the blob does not exist.
func (ls *LocalStorage) DeleteFile(storedName string) error {
	if storedName == "" {
		return nil
	}

	// Guard against path traversal in stored names coming from the database.
	name := filepath.Base(storedName)
	if name == "" || name == "." || name == "/" {
		return fmt.Errorf("invalid stored name: %s", storedName)
	}

	physicalPath := filepath.Join(ls.basePath, name)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}

// FullPath returns the filesystem path for a stored name.
func (ls *LocalStorage) FullPath(storedName string) string {
	name := filepath.Base(storedName)
	if name == "" || name == "." || name == "/" {
		return ""
	}
	return filepath.Join(ls.basePath, name)
}

// Exists reports whether the blob is present on disk.
func (ls *LocalStorage) Exists(storedName string) bool {
	path := ls.FullPath(storedName)
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
