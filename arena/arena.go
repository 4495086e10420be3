package arena

import (
	"context"
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/hupe1980/membase/internal/logging"
	"github.com/hupe1980/membase/internal/mmap"
)

// Arena is a fixed-capacity bump allocator over one contiguous byte region.
//
// The zero value is a valid arena with no capacity.
type Arena struct {
	buf []byte // owned region; base is &buf[0], capacity is len(buf)
	off int    // cursor: offset of the first free byte

	mapping  *mmap.Mapping // non-nil for BackingMmap
	acquirer MemoryAcquirer
	reserved int64
	logger   *logging.Logger
}

// Mark is a cursor position returned by Mark and accepted by Rewind.
type Mark int

// Init binds an arena to mem. It performs no allocation; the arena exclusively
// owns mem from now on. A nil or empty mem yields a zero-capacity arena.
func Init(mem []byte) *Arena {
	return &Arena{buf: mem[:len(mem):len(mem)]}
}

// New creates an arena of the given capacity, obtaining the backing memory
// according to opts.
func New(capacity int, opts ...Option) (*Arena, error) {
	o := options{backing: BackingHeap}
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.OrNoop(o.logger)
	if o.name != "" {
		logger = logger.WithArena(o.name)
	}
	ctx := context.Background()

	if capacity <= 0 {
		err := fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
		logger.LogArenaCreated(ctx, capacity, o.backing.String(), err)
		return nil, err
	}

	reserved := int64(capacity)
	if o.acquirer != nil {
		if err := o.acquirer.AcquireMemory(reserved); err != nil {
			err = fmt.Errorf("arena: reserve %d bytes: %w", capacity, err)
			logger.LogArenaCreated(ctx, capacity, o.backing.String(), err)
			return nil, err
		}
	}

	a := &Arena{acquirer: o.acquirer, reserved: reserved, logger: logger}

	switch o.backing {
	case BackingMmap:
		m, err := mmap.MapAnon(capacity)
		if err != nil {
			if o.acquirer != nil {
				o.acquirer.ReleaseMemory(reserved)
			}
			logger.LogArenaCreated(ctx, capacity, o.backing.String(), err)
			return nil, err
		}
		a.mapping = m
		a.buf = m.Bytes()
	default:
		a.buf = make([]byte, capacity)
	}

	logger.LogArenaCreated(ctx, capacity, o.backing.String(), nil)
	return a, nil
}

// padding returns the bytes needed so that the next issued address is a
// multiple of align. align must be a power of two.
func (a *Arena) padding(align int) int {
	if len(a.buf) == 0 || align <= 1 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf))) + uintptr(a.off) //nolint:gosec // alignment needs the raw address
	return int(-addr & uintptr(align-1))
}

func (a *Arena) alloc(size, align, count int) ([]byte, error) {
	assertAlign(align)

	hi, total := bits.Mul64(uint64(size), uint64(count))
	avail := uint64(len(a.buf) - a.off)
	pad := uint64(a.padding(align))
	if hi != 0 || pad > avail || total > avail-pad {
		return nil, fmt.Errorf("%w: requested %d x %d bytes (align %d), %d of %d available",
			ErrOutOfMemory, count, size, align, avail, len(a.buf))
	}

	start := a.off + int(pad)
	end := start + int(total)
	p := a.buf[start:end:end]
	clear(p)
	a.off = end
	return p, nil
}

// Alloc returns count*size zero-filled bytes whose first byte is aligned to
// align, which must be a power of two (values <= 1 mean unaligned).
// It panics with an error wrapping ErrOutOfMemory if the request (including
// alignment padding) does not fit the remaining capacity.
func (a *Arena) Alloc(size, align, count int) []byte {
	p, err := a.alloc(size, align, count)
	if err != nil {
		panic(err)
	}
	return p
}

// TryAlloc is Alloc returning the failure instead of panicking. A failed
// request leaves the arena unchanged.
func (a *Arena) TryAlloc(size, align, count int) ([]byte, error) {
	return a.alloc(size, align, count)
}

// Len returns the number of bytes used, including alignment padding.
func (a *Arena) Len() int { return a.off }

// Cap returns the total capacity.
func (a *Arena) Cap() int { return len(a.buf) }

// Available returns the number of bytes left before the arena is exhausted.
func (a *Arena) Available() int { return len(a.buf) - a.off }

// Remaining returns the free region starting at the cursor, without zeroing it
// and without advancing the cursor. Writers fill a prefix of it and then
// Commit the number of bytes they produced.
func (a *Arena) Remaining() []byte {
	return a.buf[a.off:len(a.buf):len(a.buf)]
}

// Commit advances the cursor by n bytes of the free region. It panics with an
// error wrapping ErrOutOfMemory if n is negative or exceeds Available.
func (a *Arena) Commit(n int) []byte {
	if n < 0 || n > a.Available() {
		panic(fmt.Errorf("%w: commit %d bytes, %d available", ErrOutOfMemory, n, a.Available()))
	}
	p := a.buf[a.off : a.off+n : a.off+n]
	a.off += n
	return p
}

// Mark returns the current cursor position.
func (a *Arena) Mark() Mark { return Mark(a.off) }

// Rewind moves the cursor back to m. Every slice issued after m was taken
// becomes invalid. It panics if m is ahead of the cursor.
func (a *Arena) Rewind(m Mark) {
	if int(m) < 0 || int(m) > a.off {
		panic(fmt.Errorf("%w: %d (cursor at %d)", ErrInvalidMark, m, a.off))
	}
	a.off = int(m)
}

// Reset rewinds the cursor to zero, invalidating every slice issued so far.
func (a *Arena) Reset() {
	if a.logger != nil {
		u := a.Usage()
		a.logger.LogUsage(context.Background(), "arena reset", u.Used, u.Capacity, u.Percent)
	}
	a.off = 0
}

// Release drops the backing memory and returns any reserved budget. The arena
// is left with zero capacity. Memory supplied to Init is simply forgotten.
func (a *Arena) Release() error {
	if a.logger != nil {
		u := a.Usage()
		a.logger.LogUsage(context.Background(), "arena released", u.Used, u.Capacity, u.Percent)
	}

	var err error
	if a.mapping != nil {
		err = a.mapping.Close()
		a.mapping = nil
	}
	if a.acquirer != nil && a.reserved > 0 {
		a.acquirer.ReleaseMemory(a.reserved)
		a.reserved = 0
	}
	a.buf = nil
	a.off = 0
	if err != nil {
		return fmt.Errorf("arena: release: %w", err)
	}
	return nil
}

func (a *Arena) String() string {
	return fmt.Sprintf("Arena{%s}", a.Usage())
}
