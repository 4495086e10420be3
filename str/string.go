package str

import (
	"bytes"

	"github.com/hupe1980/membase/arena"
)

// String is a non-owning view over bytes.
type String []byte

// Lit returns a String holding the bytes of s.
func Lit(s string) String {
	return String(s)
}

// FromRange wraps mem[first:onePastLast] without copying.
// The caller keeps mem alive and unchanged for as long as the String is used.
func FromRange(mem []byte, first, onePastLast int) String {
	return String(mem[first:onePastLast:onePastLast])
}

// PushCopy copies s into a fresh allocation from a and returns the copy.
// The result no longer depends on the memory s views.
func PushCopy(a *arena.Arena, s String) String {
	p := a.Alloc(1, 1, len(s))
	copy(p, s)
	return String(p)
}

// Len returns the length in bytes.
func (s String) Len() int { return len(s) }

// String returns a Go string copy of the bytes.
func (s String) String() string { return string(s) }

// Match reports whether s and other hold exactly the same bytes.
// Empty strings match only empty strings.
func (s String) Match(other String) bool {
	return bytes.Equal(s, other)
}

// StartsWith reports whether the first len(prefix) bytes of s equal prefix.
func (s String) StartsWith(prefix String) bool {
	return len(s) >= len(prefix) && bytes.Equal(s[:len(prefix)], prefix)
}

// InBounds reports whether at indexes a byte of s.
func (s String) InBounds(at int) bool {
	return at >= 0 && at < len(s)
}
