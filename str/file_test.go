package str

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/membase/arena"
	"github.com/hupe1980/membase/internal/fs"
	"github.com/hupe1980/membase/resource"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestFromFile(t *testing.T) {
	path := writeTemp(t, "greeting.txt", []byte("hello\nworld\n"))
	a := arena.Init(make([]byte, 64))

	s, err := FromFile(a, path)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", s.String())
	assert.Equal(t, 12, a.Len(), "exactly the bytes read are committed")

	next := a.Alloc(1, 1, 4)
	assert.Len(t, next, 4)
	assert.Equal(t, "hello\nworld\n", s.String(), "later allocations do not overlap the file")
}

func TestFromFile_ExactFit(t *testing.T) {
	path := writeTemp(t, "fit.txt", []byte("12345678"))
	a := arena.Init(make([]byte, 8))

	s, err := FromFile(a, path)
	require.NoError(t, err)
	assert.Equal(t, "12345678", s.String())
	assert.Equal(t, 0, a.Available())
}

func TestFromFile_Empty(t *testing.T) {
	path := writeTemp(t, "empty.txt", nil)
	a := arena.Init(make([]byte, 8))

	s, err := FromFile(a, path)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, a.Len())
}

func TestFromFile_TooLarge(t *testing.T) {
	path := writeTemp(t, "big.txt", []byte("0123456789"))
	a := arena.Init(make([]byte, 4))

	_, err := FromFile(a, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.ErrorIs(t, err, arena.ErrOutOfMemory)
	assert.Equal(t, 0, a.Len(), "nothing is committed")
}

func TestFromFile_Missing(t *testing.T) {
	a := arena.Init(make([]byte, 16))

	_, err := FromFile(a, filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, ErrTooLarge)
	assert.Equal(t, 0, a.Len())
}

func TestFromFile_LongPath(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 4; i++ {
		dir = filepath.Join(dir, strings.Repeat("d", 80))
	}
	require.NoError(t, os.MkdirAll(dir, 0o700))
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("deep"), 0o600))
	require.Greater(t, len(path), 256)

	s, err := FromFile(arena.Init(make([]byte, 16)), path)
	require.NoError(t, err)
	assert.Equal(t, "deep", s.String())
}

func TestLoader_Afero(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/etc/app.conf", []byte("key=value"), 0o644))

	l := NewLoader(WithFS(mem))
	a := arena.Init(make([]byte, 32))

	s, err := l.Load(t.Context(), a, "/etc/app.conf")
	require.NoError(t, err)

	sp := s.SplitOnce('=')
	assert.Equal(t, "key", sp.Head.String())
	assert.Equal(t, "value", sp.Tail.String())

	_, err = l.Load(t.Context(), a, "/etc")
	assert.Error(t, err, "directories are not files")
}

func compressZstd(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func compressGzip(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func compressLZ4(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func compressSnappy(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := snappy.NewBufferedWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestLoader_Decompression(t *testing.T) {
	plain := []byte(strings.Repeat("the quick brown fox\n", 50))

	tests := []struct {
		name     string
		compress func(*testing.T, []byte) []byte
	}{
		{"words.zst", compressZstd},
		{"words.gz", compressGzip},
		{"words.lz4", compressLZ4},
		{"words.sz", compressSnappy},
		{"WORDS.GZ", compressGzip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(mem, tt.name, tt.compress(t, plain), 0o644))

			l := NewLoader(WithFS(mem), WithDecompression())
			a := arena.Init(make([]byte, 2*len(plain)))

			s, err := l.Load(t.Context(), a, tt.name)
			require.NoError(t, err)
			assert.Equal(t, string(plain), s.String())
			assert.Equal(t, len(plain), a.Len())
		})
	}
}

func TestLoader_DecompressedTooLarge(t *testing.T) {
	plain := bytes.Repeat([]byte{'z'}, 4096)
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "z.zst", compressZstd(t, plain), 0o644))

	l := NewLoader(WithFS(mem), WithDecompression())
	a := arena.Init(make([]byte, 1024))

	_, err := l.Load(t.Context(), a, "z.zst")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.ErrorIs(t, err, arena.ErrOutOfMemory)
	assert.Equal(t, 0, a.Len())
}

func TestLoader_DecompressedExactFit(t *testing.T) {
	plain := bytes.Repeat([]byte{'z'}, 1024)
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "z.gz", compressGzip(t, plain), 0o644))

	l := NewLoader(WithFS(mem), WithDecompression())
	a := arena.Init(make([]byte, 1024))

	s, err := l.Load(t.Context(), a, "z.gz")
	require.NoError(t, err)
	assert.Equal(t, 1024, s.Len())
}

func TestLoader_CorruptInput(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "bad.gz", []byte("not gzip at all"), 0o644))

	l := NewLoader(WithFS(mem), WithDecompression())
	a := arena.Init(make([]byte, 64))

	_, err := l.Load(t.Context(), a, "bad.gz")
	assert.Error(t, err)
	assert.Equal(t, 0, a.Len())
}

func TestLoader_WithoutDecompressionLoadsRaw(t *testing.T) {
	compressed := compressGzip(t, []byte("payload"))
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "p.gz", compressed, 0o644))

	s, err := NewLoader(WithFS(mem)).Load(t.Context(), arena.Init(make([]byte, 256)), "p.gz")
	require.NoError(t, err)
	assert.Equal(t, compressed, []byte(s))
}

func TestLoader_CustomDecoder(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "log.head", []byte("first line\nrest"), 0o644))

	head := func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(io.LimitReader(r, 5)), nil
	}
	l := NewLoader(WithFS(mem), WithDecoder(".HEAD", head))

	s, err := l.Load(t.Context(), arena.Init(make([]byte, 64)), "log.head")
	require.NoError(t, err)
	assert.Equal(t, "first", s.String())
}

func TestLoader_RateLimited(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh"), 256)
	path := writeTemp(t, "paced.txt", data)

	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})
	l := NewLoader(WithController(rc))

	s, err := l.Load(t.Context(), arena.Init(make([]byte, 4096)), path)
	require.NoError(t, err)
	assert.Equal(t, data, []byte(s))
}

func TestLoader_RateLimitedCanceled(t *testing.T) {
	path := writeTemp(t, "paced.txt", bytes.Repeat([]byte{'x'}, 100))

	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1024})
	l := NewLoader(WithController(rc))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	a := arena.Init(make([]byte, 4096))
	_, err := l.Load(ctx, a, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, a.Len())
}

func TestLoader_Faults(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "data.txt", []byte("0123456789"), 0o644))
	injected := errors.New("disk on fire")

	t.Run("open", func(t *testing.T) {
		ffs := fs.NewFaultyFS(fs.NewAferoFS(mem))
		ffs.AddRule("data", fs.Fault{FailOnOpen: true, FailAfterBytes: -1, Err: injected})

		_, err := NewLoader(withFileSystem(ffs)).Load(t.Context(), arena.Init(make([]byte, 64)), "data.txt")
		assert.ErrorIs(t, err, injected)
	})

	t.Run("stat", func(t *testing.T) {
		ffs := fs.NewFaultyFS(fs.NewAferoFS(mem))
		ffs.AddRule("data", fs.Fault{FailOnStat: true, FailAfterBytes: -1, Err: injected})

		_, err := NewLoader(withFileSystem(ffs)).Load(t.Context(), arena.Init(make([]byte, 64)), "data.txt")
		assert.ErrorIs(t, err, injected)
	})

	t.Run("mid read", func(t *testing.T) {
		ffs := fs.NewFaultyFS(fs.NewAferoFS(mem))
		ffs.AddRule("data", fs.Fault{FailAfterBytes: 4, Err: injected})

		a := arena.Init(make([]byte, 64))
		_, err := NewLoader(withFileSystem(ffs)).Load(t.Context(), a, "data.txt")
		assert.ErrorIs(t, err, injected)
		assert.Equal(t, 0, a.Len(), "a failed read commits nothing")
		assert.Equal(t, int64(4), ffs.BytesRead())
	})

	t.Run("file grew past the arena", func(t *testing.T) {
		ffs := fs.NewFaultyFS(fs.NewAferoFS(mem))
		ffs.AddRule("data", fs.Fault{FailAfterBytes: -1, SizeAdjustment: 100})

		a := arena.Init(make([]byte, 64))
		_, err := NewLoader(withFileSystem(ffs)).Load(t.Context(), a, "data.txt")
		assert.ErrorIs(t, err, ErrTooLarge)
		assert.Equal(t, int64(0), ffs.BytesRead(), "oversized files are not read")
	})
}

func TestLoader_Logging(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "a.txt", []byte("abc"), 0o644))

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := NewLoader(WithFS(mem), WithLoaderLogger(logger))

	_, err := l.Load(t.Context(), arena.Init(make([]byte, 8)), "a.txt")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"file loaded"`)
	assert.Contains(t, buf.String(), `"bytes_read":3`)

	buf.Reset()
	_, err = l.Load(t.Context(), arena.Init(make([]byte, 8)), "missing.txt")
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"msg":"file load failed"`)
}
