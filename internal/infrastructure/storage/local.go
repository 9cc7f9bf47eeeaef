package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// LocalStorage writes attachments to the local filesystem and serves them
// under /uploads/.
type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if basePath == "" {
		basePath = filepath.Join(".", "uploads")
	}
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

func (s *LocalStorage) UploadFile(data []byte, filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename is empty")
	}

	fullPath := filepath.Join(s.basePath, filename)
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return fmt.Sprintf("/uploads/%s", filename), nil
}
