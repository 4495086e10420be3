// Package fs provides the read-only filesystem abstraction the string layer
// loads files through.
//
// The package defines two key interfaces:
//
//   - [File]: an open file that can be read, closed and stat'ed
//   - [FileSystem]: opens and stats files by path
//
// # Implementations
//
//   - [LocalFS]: Production implementation using standard os package
//   - [AferoFS]: Adapter for any afero.Fs (in-memory filesystems in tests, overlays)
//   - [FaultyFS]: Test utility for fault injection (simulate I/O errors)
//
// # Reading Into Caller Memory
//
// [ReadFull] is the OS-read contract the arena layer consumes: it fills a
// caller-supplied buffer with a file's entire content and returns the number
// of bytes read. The caller sizes the buffer beforehand (see [Size]).
//
// # Design Notes
//
// This package intentionally does NOT include context.Context parameters.
// Local reads are short and non-interruptible at the syscall level; callers
// that need pacing wrap reads themselves.
package fs
