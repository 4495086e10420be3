package arena

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Usage is a snapshot of how much of an arena is in use.
//
// MiB, KiB and Bytes decompose Used into its 10-bit groups, so that
// Used == MiB<<20 | KiB<<10 | Bytes for arenas below 1 GiB.
type Usage struct {
	Used     int
	Capacity int
	Percent  float32
	MiB      uint16
	KiB      uint16
	Bytes    uint16
}

// Usage reports the bytes in use. It has no side effects.
func (a *Arena) Usage() Usage {
	used := a.off
	u := Usage{
		Used:     used,
		Capacity: len(a.buf),
		Bytes:    uint16(used & (1<<10 - 1)),
		KiB:      uint16((used >> 10) & (1<<10 - 1)),
		MiB:      uint16((used >> 20) & (1<<10 - 1)),
	}
	if u.Capacity > 0 {
		u.Percent = float32(used) / float32(u.Capacity) * 100
	}
	return u
}

func (u Usage) String() string {
	return fmt.Sprintf("used: %s, capacity: %s, usage: %.1f%%",
		humanize.IBytes(uint64(u.Used)), humanize.IBytes(uint64(u.Capacity)), u.Percent)
}
