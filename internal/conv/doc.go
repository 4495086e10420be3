// Package conv provides checked integer conversions.
//
// The arena and string layers work in Go's platform int, while file sizes
// arrive as int64 and parsed numbers as uint64. Conversions that can lose
// information go through this package so the caller decides whether an
// out-of-range value is fatal (str.SafeCastU32) or an ordinary error.
//
// For conversions that are provably safe by construction (loop indices,
// values already clamped to a slice length), use direct casts instead.
package conv
