package arena

import (
	"log/slog"

	"github.com/hupe1980/membase/internal/logging"
)

// Backing selects where New obtains an arena's memory.
type Backing int

const (
	// BackingHeap allocates the region as a single Go byte slice.
	BackingHeap Backing = iota
	// BackingMmap maps anonymous memory outside the Go heap.
	// Release returns the pages to the OS immediately.
	BackingMmap
)

func (b Backing) String() string {
	switch b {
	case BackingHeap:
		return "heap"
	case BackingMmap:
		return "mmap"
	default:
		return "unknown"
	}
}

// MemoryAcquirer is a budget that arena capacity is reserved from.
// *resource.Controller implements it.
type MemoryAcquirer interface {
	AcquireMemory(amount int64) error
	ReleaseMemory(amount int64)
}

type options struct {
	backing  Backing
	acquirer MemoryAcquirer
	logger   *logging.Logger
	name     string
}

// Option configures New.
type Option func(*options)

// WithBacking selects the backing memory. Default is BackingHeap.
func WithBacking(b Backing) Option {
	return func(o *options) {
		o.backing = b
	}
}

// WithMemoryAcquirer reserves the arena's capacity from acquirer before the
// backing memory is obtained and returns it on Release.
func WithMemoryAcquirer(acquirer MemoryAcquirer) Option {
	return func(o *options) {
		o.acquirer = acquirer
	}
}

// WithLogger logs arena lifecycle events (create, reset, release) at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = &logging.Logger{Logger: l}
		}
	}
}

// WithName tags log records with name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
