package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Store writes uploaded files into a single directory with generated,
// collision-resistant names and serves their public paths back.
type Store struct {
	dir          string
	publicPrefix string
}

type StoredFile struct {
	Name       string
	PublicPath string
}

func New(dir string, publicPrefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error while creating upload directory `%s`: %w", dir, err)
	}

	return &Store{dir: dir, publicPrefix: publicPrefix}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save streams the reader into a new file. A partially written file is
// removed on any failure, so callers never observe half an upload.
func (s *Store) Save(originalName string, src io.Reader) (*StoredFile, error) {
	name := fmt.Sprintf("deliverable-%d%s", time.Now().UnixNano(), filepath.Ext(originalName))
	fullPath := filepath.Join(s.dir, name)

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(fullPath)

		return nil, err
	}

	if err := dst.Close(); err != nil {
		os.Remove(fullPath)

		return nil, err
	}

	return &StoredFile{
		Name:       name,
		PublicPath: s.publicPrefix + "/" + name,
	}, nil
}

// Remove deletes a previously stored file. Used to compensate when the
// metadata write fails after the file already landed on disk.
func (s *Store) Remove(name string) error {
	return os.Remove(filepath.Join(s.dir, name))
}
