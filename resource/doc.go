// Package resource implements the Controller for process-wide limits shared by
// many arenas.
//
// A single arena is never shared between goroutines; instead each worker or
// phase owns a private arena. The Controller is the one piece those arenas
// share, and it governs two resource types:
//
//   - Memory: Budget for arena backing memory (non-blocking, fail-fast)
//   - IO: Rate-limit file loads into arenas (token bucket)
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and atomic counters
// for usage tracking. AcquireMemory is non-blocking and returns immediately
// with ErrMemoryLimitExceeded if the limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	a, err := arena.New(64<<20, arena.WithMemoryAcquirer(rc))
//
// # IO Rate Limiting
//
//	rc := resource.NewController(resource.Config{
//	    IOLimitBytesPerSec: 100 * 1024 * 1024, // 100MB/s
//	})
//
//	reader := resource.NewRateLimitedReader(ctx, file, rc)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
package resource
