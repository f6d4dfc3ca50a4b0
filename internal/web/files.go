package web

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// FileStore holds generated report workbooks on disk until they are
// downloaded or aged out by the cleanup pass. Filenames carry a UUID so they
// cannot collide or be guessed.
type FileStore struct {
	dir string
}

// NewFileStore creates the storage directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create file store dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the workbook under a generated name and returns that name.
func (fs *FileStore) Save(f *excelize.File, prefix string) (string, error) {
	name := fmt.Sprintf("%s_%s.xlsx", prefix, uuid.New().String())
	if err := f.SaveAs(filepath.Join(fs.dir, name)); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return name, nil
}

// Path resolves a stored filename, rejecting anything that escapes the
// storage directory or was not produced by Save.
func (fs *FileStore) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || !strings.HasSuffix(name, ".xlsx") {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	p := filepath.Join(fs.dir, name)
	if _, err := os.Stat(p); err != nil {
		return "", fmt.Errorf("file %q: %w", name, err)
	}
	return p, nil
}

// RemoveOlderThan deletes stored reports whose modification time is older
// than maxAge and reports how many were removed.
func (fs *FileStore) RemoveOlderThan(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return 0, fmt.Errorf("read file store dir: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".xlsx") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(fs.dir, e.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
