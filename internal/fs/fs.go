package fs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// ErrBufferTooSmall is returned by ReadFull when the destination cannot hold the file.
var ErrBufferTooSmall = errors.New("fs: buffer smaller than file")

// File represents an open, readable file.
type File interface {
	io.ReadCloser
	Stat() (os.FileInfo, error)
}

// FileSystem abstracts read-only file system operations for testability.
type FileSystem interface {
	Open(name string) (File, error)
	Stat(name string) (os.FileInfo, error)
}

// LocalFS implements FileSystem using the local os package.
type LocalFS struct{}

func (LocalFS) Open(name string) (File, error)        { return os.Open(name) }
func (LocalFS) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

// AferoFS adapts an afero.Fs to FileSystem.
type AferoFS struct {
	Fs afero.Fs
}

// NewAferoFS wraps fsys. A nil fsys selects afero's OS filesystem.
func NewAferoFS(fsys afero.Fs) AferoFS {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return AferoFS{Fs: fsys}
}

func (a AferoFS) Open(name string) (File, error) {
	f, err := a.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (a AferoFS) Stat(name string) (os.FileInfo, error) { return a.Fs.Stat(name) }

// Default is the default local file system.
var Default FileSystem = LocalFS{}

// Size returns the size of the file at path in bytes.
func Size(fsys FileSystem, path string) (int64, error) {
	if fsys == nil {
		fsys = Default
	}
	fi, err := fsys.Stat(path)
	if err != nil {
		return 0, err
	}
	if fi.IsDir() {
		return 0, fmt.Errorf("fs: %s is a directory", path)
	}
	return fi.Size(), nil
}

// ReadFull reads the entire file at path into buf and returns the number of
// bytes read. buf must be at least as large as the file; otherwise nothing is
// read and ErrBufferTooSmall is returned. A file that shrinks between the size
// query and the read yields the shorter count without error.
func ReadFull(fsys FileSystem, path string, buf []byte) (int, error) {
	if fsys == nil {
		fsys = Default
	}

	size, err := Size(fsys, path)
	if err != nil {
		return 0, err
	}
	if size > int64(len(buf)) {
		return 0, fmt.Errorf("%w: %s is %d bytes, buffer holds %d", ErrBufferTooSmall, path, size, len(buf))
	}

	f, err := fsys.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := io.ReadFull(f, buf[:size])
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return n, nil
	}
	return n, err
}
