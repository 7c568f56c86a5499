package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/voxlate/voxlate/internal/common"
)

// FSStore keeps artifacts as files in a single directory. Writes go through
// a temp file and a rename so a reader never observes a partial artifact.
type FSStore struct {
	dir string
}

func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("audio dir: %w", err)
	}
	return &FSStore{dir: dir}, nil
}

// checkFilename rejects names that would escape the store directory.
func checkFilename(filename string) error {
	if filename == "" || filename != filepath.Base(filename) {
		return common.ErrorValidation
	}
	return nil
}

func (s *FSStore) Put(ctx context.Context, filename string, data []byte) error {
	if err := checkFilename(filename); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, filename)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename: %w", err)
	}

	return nil
}

func (s *FSStore) Get(ctx context.Context, filename string) ([]byte, error) {
	if err := checkFilename(filename); err != nil {
		return nil, common.ErrorNotFound
	}

	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	return data, nil
}
