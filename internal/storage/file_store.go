package storage

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"monet/internal/codec"
	"monet/internal/domain"
	"monet/internal/errors"
	"monet/internal/logging"
)

const (
	DefaultDirPermissions  os.FileMode = 0o755
	DefaultFilePermissions os.FileMode = 0o644
)

// FileOptions controls how a FileStore creates its directory and file.
type FileOptions struct {
	DirPermissions  os.FileMode
	FilePermissions os.FileMode
	// Warn receives each corrupted line skipped by Load. Nil logs a warning.
	Warn func(line string)
}

// FileStore keeps one record per line in a text file.
type FileStore struct {
	path    string
	options FileOptions
}

// NewFileStore creates a store for the file at path with default options.
func NewFileStore(path string) *FileStore {
	return NewFileStoreWithOptions(path, FileOptions{})
}

// NewFileStoreWithOptions creates a store for the file at path. Zero
// permissions fall back to the defaults.
func NewFileStoreWithOptions(path string, options FileOptions) *FileStore {
	if options.DirPermissions == 0 {
		options.DirPermissions = DefaultDirPermissions
	}
	if options.FilePermissions == 0 {
		options.FilePermissions = DefaultFilePermissions
	}
	return &FileStore{path: path, options: options}
}

// Path returns the data file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads every task from the file. A missing file is an empty list.
func (s *FileStore) Load(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debugf("data file %s does not exist, starting empty\n", s.path)
			return []domain.Task{}, nil
		}
		return nil, errors.NewIOError("open "+s.path, err)
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, errors.NewIOError("read "+s.path, err)
	}

	tasks, err := codec.DecodeLines(lines, s.options.Warn)
	if err != nil {
		return nil, err
	}
	logging.Debugf("loaded %d tasks from %s\n", len(tasks), s.path)
	return tasks, nil
}

// Save replaces the file with tasks, creating missing parent directories. The
// new content is written to a temporary file in the same directory and
// renamed over the old one, so a failed save leaves the previous file intact.
func (s *FileStore) Save(ctx context.Context, tasks []domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, line := range codec.EncodeAll(tasks) {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if err := s.writeAtomic(buf.Bytes()); err != nil {
		return errors.NewIOError("save "+s.path, err)
	}
	logging.Debugf("saved %d tasks to %s\n", len(tasks), s.path)
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, s.options.DirPermissions); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := tmp.Chmod(s.options.FilePermissions); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return err
	}
	committed = true
	return syncDir(dir)
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	// Not every platform supports fsync on a directory.
	if err := d.Sync(); err != nil {
		logging.Debugf("fsync %s: %v\n", dir, err)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}
