package str

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/membase/internal/conv"
)

// LineIndex gives random access to the lines of a String. Line i runs from
// its start offset up to, not including, the next '\n'. A final newline does
// not open an empty last line.
type LineIndex struct {
	src    String
	starts *roaring.Bitmap
}

// NewLineIndex scans s once and records where each line starts.
// Strings of 4 GiB or more cannot be indexed.
func NewLineIndex(s String) (*LineIndex, error) {
	if _, err := conv.Uint64ToUint32(uint64(len(s))); err != nil {
		return nil, fmt.Errorf("str: line index: %w", err)
	}

	starts := roaring.New()
	for at := 0; at < len(s); at = s.FindNewline(at) + 1 {
		starts.Add(uint32(at))
	}
	starts.RunOptimize()

	return &LineIndex{src: s, starts: starts}, nil
}

// Count returns the number of lines.
func (li *LineIndex) Count() int {
	return int(li.starts.GetCardinality())
}

// Line returns line i (zero-based) without its terminating newline, and false
// if i is out of range.
func (li *LineIndex) Line(i int) (String, bool) {
	if i < 0 || i >= li.Count() {
		return nil, false
	}
	start, err := li.starts.Select(uint32(i))
	if err != nil {
		return nil, false
	}
	end := li.src.FindNewline(int(start))
	return li.src.view(int(start), end), true
}

// LineOf returns the zero-based line containing byte offset, or -1 if offset
// is outside the String.
func (li *LineIndex) LineOf(offset int) int {
	if !li.src.InBounds(offset) {
		return -1
	}
	return int(li.starts.Rank(uint32(offset))) - 1
}
