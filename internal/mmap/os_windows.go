//go:build windows

package mmap

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

func osMap(f *os.File, size int) ([]byte, func([]byte) error, error) {
	h, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, windows.PAGE_READONLY, 0, 0, nil)
	if err != nil {
		return nil, nil, err
	}
	// The view keeps the section alive after the handle is closed.
	defer windows.CloseHandle(h)

	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		return nil, nil, err
	}

	unmap := func([]byte) error { return windows.UnmapViewOfFile(addr) }
	return toSlice(addr, size), unmap, nil
}

// osMapAnon commits size bytes of demand-zero memory. VirtualAlloc avoids the
// up-front page file charge a pagefile-backed section would incur.
func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, nil, err
	}

	release := func([]byte) error { return windows.VirtualFree(addr, 0, windows.MEM_RELEASE) }
	return toSlice(addr, size), release, nil
}

func toSlice(addr uintptr, size int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
}

// osAdvise is a no-op: Windows has no madvise equivalent for these hints.
func osAdvise([]byte, AccessPattern) error { return nil }
