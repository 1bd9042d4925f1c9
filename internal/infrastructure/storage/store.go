package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const runsDir = "runs"

var (
	ErrNotFound   = errors.New("file not found")
	ErrUnwritable = errors.New("storage unwritable")
)

// Store is a directory holding published files. Work in progress lives in
// per-run subdirectories and only reaches the root through Publish.
type Store struct {
	root string
}

func New(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("empty storage dir")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Join(abs, runsDir), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnwritable, err)
	}
	return &Store{root: abs}, nil
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) Path(name string) string {
	return filepath.Join(s.root, filepath.Base(name))
}

type Run struct {
	ID  string
	Dir string
}

// NewRun creates an isolated working directory.
func (s *Store) NewRun() (*Run, error) {
	id := uuid.NewString()
	dir := filepath.Join(s.root, runsDir, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnwritable, err)
	}
	return &Run{ID: id, Dir: dir}, nil
}

func (r *Run) Path(name string) string {
	return filepath.Join(r.Dir, filepath.Base(name))
}

func (r *Run) Close() error {
	if r == nil || r.Dir == "" {
		return nil
	}
	return os.RemoveAll(r.Dir)
}

// Publish moves src into the store root under name, replacing any previous
// file atomically. src must live on the same filesystem as the root.
func (s *Store) Publish(src, name string) error {
	if err := os.Rename(src, s.Path(name)); err != nil {
		return fmt.Errorf("%w: publish %s: %v", ErrUnwritable, name, err)
	}
	return nil
}

func (s *Store) Stat(name string) (fs.FileInfo, error) {
	info, err := os.Stat(s.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, name)
	}
	return info, nil
}

func (s *Store) Open(name string) (*os.File, error) {
	if _, err := s.Stat(name); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	return f, nil
}
