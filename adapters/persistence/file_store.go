package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

// FileStore keeps the document in one pretty-printed JSON file.
type FileStore struct {
	path   string
	logger logger.Logger
}

func NewFileStore(path string, log logger.Logger) *FileStore {
	return &FileStore{path: path, logger: log}
}

func (s *FileStore) Path() string {
	return s.path
}

// Init writes an empty document when the file does not exist yet.
func (s *FileStore) Init(ctx context.Context) error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat content file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create content directory: %w", err)
	}
	s.logger.Info("Content file not found, writing empty document", zap.String("path", s.path))
	return s.Save(ctx, content.NewDocument())
}

func (s *FileStore) Load(ctx context.Context) (*content.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	return content.Decode(data)
}

// Save replaces the file through a temp file and rename, so readers never see a partial write.
func (s *FileStore) Save(ctx context.Context, doc *content.Document) error {
	data, err := content.Encode(doc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".content-*.json")
	if err != nil {
		return fmt.Errorf("create temp content file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp content file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp content file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp content file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace content file: %w", err)
	}
	return nil
}
