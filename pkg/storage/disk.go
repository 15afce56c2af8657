package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// DiskStorage writes files into a local directory that the server exposes
// at /uploads. Registration of an upload (e.g. as a hero image) is a
// separate call; files whose registration never arrives are not cleaned up.
type DiskStorage struct {
	dir string
}

func NewDiskStorage(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStorage{dir: dir}, nil
}

func (s *DiskStorage) Dir() string { return s.dir }

func (s *DiskStorage) Save(_ context.Context, filename string, src io.Reader) (string, error) {
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	if err := dst.Sync(); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}
