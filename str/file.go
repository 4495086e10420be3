package str

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/spf13/afero"

	"github.com/hupe1980/membase/arena"
	"github.com/hupe1980/membase/internal/fs"
	"github.com/hupe1980/membase/internal/logging"
	"github.com/hupe1980/membase/resource"
)

// Decoder wraps a compressed stream in a reader of its decompressed bytes.
type Decoder func(r io.Reader) (io.ReadCloser, error)

func zstdDecoder(r io.Reader) (io.ReadCloser, error) {
	d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return d.IOReadCloser(), nil
}

func gzipDecoder(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func lz4Decoder(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

func snappyDecoder(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(snappy.NewReader(r)), nil
}

// Loader reads files into arena memory.
type Loader struct {
	fs       fs.FileSystem
	rc       *resource.Controller
	decoders map[string]Decoder
	logger   *logging.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFS loads from fsys instead of the local filesystem.
func WithFS(fsys afero.Fs) LoaderOption {
	return func(l *Loader) {
		l.fs = fs.NewAferoFS(fsys)
	}
}

// withFileSystem is used by tests to inject faults.
func withFileSystem(fsys fs.FileSystem) LoaderOption {
	return func(l *Loader) {
		l.fs = fsys
	}
}

// WithController paces reads through rc's IO limit.
func WithController(rc *resource.Controller) LoaderOption {
	return func(l *Loader) {
		l.rc = rc
	}
}

// WithDecompression decompresses files by extension while loading:
// ".zst" (zstd), ".gz" (gzip), ".lz4" (lz4 frames) and ".sz" (snappy framing
// format).
func WithDecompression() LoaderOption {
	return func(l *Loader) {
		l.decoders[".zst"] = zstdDecoder
		l.decoders[".gz"] = gzipDecoder
		l.decoders[".lz4"] = lz4Decoder
		l.decoders[".sz"] = snappyDecoder
	}
}

// WithDecoder registers dec for files ending in ext (for example ".br").
func WithDecoder(ext string, dec Decoder) LoaderOption {
	return func(l *Loader) {
		l.decoders[strings.ToLower(ext)] = dec
	}
}

// WithLoaderLogger logs every load at debug level and failures at error level.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = &logging.Logger{Logger: logger}
		}
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		fs:       fs.Default,
		decoders: make(map[string]Decoder),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = logging.OrNoop(l.logger)
	return l
}

var defaultLoader = NewLoader()

// FromFile reads the whole file at path into a's free region and returns a
// String viewing exactly the bytes read. a's cursor advances by that many bytes.
//
// A file larger than a.Available() is not loaded; the returned error wraps
// both ErrTooLarge and arena.ErrOutOfMemory and the arena is unchanged.
func FromFile(a *arena.Arena, path string) (String, error) {
	return defaultLoader.Load(context.Background(), a, path)
}

// Load reads path into a. See FromFile.
func (l *Loader) Load(ctx context.Context, a *arena.Arena, path string) (String, error) {
	n, err := l.load(ctx, a.Remaining(), path)
	l.logger.LogLoad(ctx, path, n, err)
	if err != nil {
		return nil, err
	}
	return String(a.Commit(n)), nil
}

func (l *Loader) load(ctx context.Context, dst []byte, path string) (int, error) {
	dec := l.decoders[strings.ToLower(filepath.Ext(path))]

	if dec == nil && l.rc == nil {
		n, err := fs.ReadFull(l.fs, path, dst)
		if errors.Is(err, fs.ErrBufferTooSmall) {
			return 0, fmt.Errorf("%w: %w: %w", ErrTooLarge, arena.ErrOutOfMemory, err)
		}
		if err != nil {
			return 0, fmt.Errorf("str: load %s: %w", path, err)
		}
		return n, nil
	}

	f, err := l.fs.Open(path)
	if err != nil {
		return 0, fmt.Errorf("str: load %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if l.rc != nil {
		r = resource.NewRateLimitedReader(ctx, r, l.rc)
	}
	if dec != nil {
		rc, err := dec(r)
		if err != nil {
			return 0, fmt.Errorf("str: decode %s: %w", path, err)
		}
		defer rc.Close()
		r = rc
	}

	n, err := fill(r, dst)
	if errors.Is(err, ErrTooLarge) {
		return 0, fmt.Errorf("%w: %w: %s holds more than %d bytes", ErrTooLarge, arena.ErrOutOfMemory, path, len(dst))
	}
	if err != nil {
		return 0, fmt.Errorf("str: load %s: %w", path, err)
	}
	return n, nil
}

// fill reads r to EOF into dst and returns the byte count. It returns
// ErrTooLarge if r has more data than dst holds.
func fill(r io.Reader, dst []byte) (int, error) {
	n, err := io.ReadFull(r, dst)
	switch {
	case err == nil:
		var probe [1]byte
		m, perr := io.ReadFull(r, probe[:])
		if m > 0 {
			return n, ErrTooLarge
		}
		if perr != nil && !errors.Is(perr, io.EOF) {
			return n, perr
		}
		return n, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return n, nil
	default:
		return n, err
	}
}
