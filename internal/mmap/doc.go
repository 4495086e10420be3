// Package mmap provides memory mappings used as arena backing memory and as
// borrowed storage for file contents.
//
// # Anonymous Mappings
//
// MapAnon creates a read-write anonymous mapping. Arenas created with the
// mmap backing take their fixed-capacity region from here, which keeps large
// arenas outside the Go heap and lets Release hand the pages straight back to
// the OS.
//
// Anonymous mappings are not scanned by the garbage collector. Storing Go
// pointers inside them is never valid.
//
// # File Mappings
//
// Open maps a file read-only. The string layer uses it to borrow a file's bytes
// without copying them into an arena:
//
//	m, err := mmap.Open("input.txt")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile and VirtualAlloc (advice is a no-op)
package mmap
