package str

import (
	"bytes"
	"fmt"

	"github.com/hupe1980/membase/ascii"
)

// view returns s[i:j] with capacity clamped to its length.
func (s String) view(i, j int) String {
	return s[i:j:j]
}

// clamp limits n to [0, len(s)].
func (s String) clamp(n int) int {
	if n < 0 {
		return 0
	}
	return min(n, len(s))
}

// Skip returns s without its first n bytes. n is clamped to len(s).
func (s String) Skip(n int) String {
	return s.view(s.clamp(n), len(s))
}

// SkipSpace returns s without leading whitespace.
func (s String) SkipSpace() String {
	return s.TrimLeft()
}

// SkipLine returns what follows the first newline, or an empty view at the end
// of s when there is none.
func (s String) SkipLine() String {
	i := bytes.IndexByte(s, '\n')
	if i < 0 {
		return s.view(len(s), len(s))
	}
	return s.view(i+1, len(s))
}

// TrimLeft removes leading whitespace.
func (s String) TrimLeft() String {
	i := 0
	for i < len(s) && ascii.IsSpace(s[i]) {
		i++
	}
	return s.view(i, len(s))
}

// TrimRight removes trailing whitespace.
func (s String) TrimRight() String {
	j := len(s)
	for j > 0 && ascii.IsSpace(s[j-1]) {
		j--
	}
	return s.view(0, j)
}

// Trim removes leading and trailing whitespace.
func (s String) Trim() String {
	return s.TrimLeft().TrimRight()
}

// FindChar returns the index of the first c at or after offset, or len(s).
func (s String) FindChar(c byte, offset int) int {
	offset = s.clamp(offset)
	if i := bytes.IndexByte(s[offset:], c); i >= 0 {
		return offset + i
	}
	return len(s)
}

// FindFirstNonSpace returns the index of the first non-whitespace byte at or
// after offset, or len(s).
func (s String) FindFirstNonSpace(offset int) int {
	at := s.clamp(offset)
	for at < len(s) && ascii.IsSpace(s[at]) {
		at++
	}
	return at
}

// FindNewline returns the index of the first '\n' at or after offset, or len(s).
func (s String) FindNewline(offset int) int {
	return s.FindChar('\n', offset)
}

// ToUpper upper-cases ASCII letters in place.
func (s String) ToUpper() {
	for i, c := range s {
		if ascii.IsLower(c) {
			s[i] = c &^ 0x20
		}
	}
}

// ToLower lower-cases ASCII letters in place.
func (s String) ToLower() {
	for i, c := range s {
		if ascii.IsUpper(c) {
			s[i] = c | 0x20
		}
	}
}

// Prefix returns the first n bytes of s. n is clamped to len(s).
func (s String) Prefix(n int) String {
	return s.view(0, s.clamp(n))
}

// Postfix returns what is left of s after its first n bytes.
// It panics with an error wrapping ErrPostfixOutOfRange if n > len(s).
func (s String) Postfix(n int) String {
	if n < 0 || n > len(s) {
		panic(fmt.Errorf("%w: %d of %d bytes", ErrPostfixOutOfRange, n, len(s)))
	}
	return s.view(n, len(s))
}
