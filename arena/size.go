package arena

import (
	"fmt"

	"github.com/alecthomas/units"

	"github.com/hupe1980/membase/internal/conv"
)

// ParseSize parses a capacity such as "64MiB", "512KiB" or "4096B" into bytes.
func ParseSize(s string) (int, error) {
	b, err := units.ParseBase2Bytes(s)
	if err != nil {
		return 0, fmt.Errorf("arena: parse size %q: %w", s, err)
	}
	if b <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCapacity, s)
	}
	n, err := conv.Int64ToInt(int64(b))
	if err != nil {
		return 0, fmt.Errorf("arena: parse size %q: %w", s, err)
	}
	return n, nil
}
