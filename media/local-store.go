package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// LocalStore writes pictures under <Root>/profile_pics, served at /media.
type LocalStore struct {
	Root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Join(root, PictureDir), 0o755); err != nil {
		return nil, fmt.Errorf("creating media dir: %w", err)
	}
	return &LocalStore{Root: root}, nil
}

func (s *LocalStore) path(name string) string {
	return filepath.Join(s.Root, PictureDir, filepath.Base(name))
}

func (s *LocalStore) Save(_ context.Context, name string, r io.Reader) error {
	dst, err := os.Create(s.path(name))
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return fmt.Errorf("io.Copy: %w", err)
	}
	return dst.Close()
}

func (s *LocalStore) Delete(_ context.Context, name string) error {
	err := os.Remove(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *LocalStore) URL(name string) string {
	return "/" + path.Join("media", PictureDir, name)
}
