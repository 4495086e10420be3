package fs

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Fault defines specific failure behavior.
type Fault struct {
	FailOnOpen     bool
	FailOnStat     bool
	FailAfterBytes int64 // Fail reads after this many bytes read FROM THIS FILE. -1 to disable.
	SizeAdjustment int64 // Added to the reported file size (simulates files growing after stat).
	Err            error
}

// FaultyFS is a FileSystem wrapper that can inject errors.
type FaultyFS struct {
	FS      FileSystem
	mu      sync.Mutex
	rules   map[string]Fault // Filename pattern -> Fault
	Default Fault            // Fallback
	read    int64
}

// NewFaultyFS creates a new FaultyFS wrapping the provided FS (or Default if nil).
func NewFaultyFS(fs FileSystem) *FaultyFS {
	if fs == nil {
		fs = Default
	}
	return &FaultyFS{
		FS:    fs,
		rules: make(map[string]Fault),
		Default: Fault{
			FailAfterBytes: -1, // No limit
		},
	}
}

// AddRule adds a fault injection rule for a specific file pattern.
func (f *FaultyFS) AddRule(pattern string, fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules[pattern] = fault
}

// BytesRead returns the total bytes read through this filesystem.
func (f *FaultyFS) BytesRead() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read
}

func (f *FaultyFS) faultFor(name string) Fault {
	f.mu.Lock()
	defer f.mu.Unlock()
	fault := f.Default
	for pattern, rule := range f.rules {
		if strings.Contains(name, pattern) {
			fault = rule
		}
	}
	if fault.Err == nil {
		fault.Err = fmt.Errorf("injected fault error")
	}
	return fault
}

func (f *FaultyFS) Open(name string) (File, error) {
	fault := f.faultFor(name)
	if fault.FailOnOpen {
		return nil, fault.Err
	}
	file, err := f.FS.Open(name)
	if err != nil {
		return nil, err
	}
	return &faultyFile{File: file, fs: f, fault: fault}, nil
}

func (f *FaultyFS) Stat(name string) (os.FileInfo, error) {
	fault := f.faultFor(name)
	if fault.FailOnStat {
		return nil, fault.Err
	}
	fi, err := f.FS.Stat(name)
	if err != nil {
		return nil, err
	}
	if fault.SizeAdjustment != 0 {
		return sizedInfo{FileInfo: fi, size: fi.Size() + fault.SizeAdjustment}, nil
	}
	return fi, nil
}

type sizedInfo struct {
	os.FileInfo
	size int64
}

func (s sizedInfo) Size() int64 { return s.size }

type faultyFile struct {
	File
	fs    *FaultyFS
	fault Fault
	read  int64
}

func (ff *faultyFile) Read(p []byte) (n int, err error) {
	if ff.fault.FailAfterBytes >= 0 {
		remaining := ff.fault.FailAfterBytes - ff.read
		if remaining <= 0 {
			return 0, ff.fault.Err
		}
		if int64(len(p)) > remaining {
			p = p[:remaining]
		}
	}

	n, err = ff.File.Read(p)
	ff.read += int64(n)

	ff.fs.mu.Lock()
	ff.fs.read += int64(n)
	ff.fs.mu.Unlock()

	return n, err
}
