// Package arena provides a fixed-capacity linear (bump) allocator.
//
// An Arena owns one contiguous byte region and hands out aligned, zero-filled
// sub-slices of it by advancing a cursor. Individual allocations are never
// freed or resized; memory comes back in bulk, either by rewinding the cursor
// (Reset, Rewind) or by discarding the whole region.
//
// # Phases
//
// Arenas suit work whose lifetime is bounded by a clear phase: one request, one
// frame, one parse pass. Allocate freely during the phase, then Reset at the
// boundary:
//
//	a := arena.Init(make([]byte, 1<<20))
//	for _, req := range requests {
//	    handle(a, req)
//	    a.Reset() // every slice issued during handle is now invalid
//	}
//
// Reset and Rewind do not track outstanding slices. Using a slice issued before
// the rewind point afterwards reads or corrupts memory that has been handed out
// again; respecting phase boundaries is the caller's job.
//
// # Capacity
//
// Capacity is fixed at creation. A request that does not fit is a programming
// error: Alloc (and Push, PushOne) panic with an error wrapping ErrOutOfMemory.
// Size the arena ahead of time, or use TryAlloc where exhaustion is expected.
//
// # Backing Memory
//
// Init binds an arena to memory the caller already owns and never allocates.
// New obtains the region itself, either from the Go heap or from an anonymous
// off-heap mapping (WithBacking(BackingMmap)), and can reserve the capacity
// from a shared memory budget first (WithMemoryAcquirer).
//
// Arena memory is plain bytes. Push and PushOne are only valid for types that
// contain no Go pointers (no pointers, slices, strings, maps, interfaces,
// channels or funcs); builds with the "debug" tag check this.
//
// # Concurrency Model
//
// An Arena is NOT safe for concurrent use. Give each goroutine its own arena,
// or serialize all allocation externally.
package arena
