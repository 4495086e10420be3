//go:build unix

package mmap

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// madvice maps each AccessPattern to its madvise(2) constant.
var madvice = [...]int{
	AccessDefault:    unix.MADV_NORMAL,
	AccessSequential: unix.MADV_SEQUENTIAL,
	AccessRandom:     unix.MADV_RANDOM,
	AccessWillNeed:   unix.MADV_WILLNEED,
}

func osMap(f *os.File, size int) ([]byte, func([]byte) error, error) {
	return mapRegion(int(f.Fd()), size, unix.PROT_READ, unix.MAP_SHARED)
}

func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	return mapRegion(-1, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func mapRegion(fd, size, prot, flags int) ([]byte, func([]byte) error, error) {
	data, err := unix.Mmap(fd, 0, size, prot, flags)
	if err != nil {
		return nil, nil, err
	}
	return data, unix.Munmap, nil
}

func osAdvise(data []byte, pattern AccessPattern) error {
	if len(data) == 0 || pattern < 0 || int(pattern) >= len(madvice) {
		return nil
	}

	// EINVAL means the platform rejected the hint or the range; advice is optional.
	if err := unix.Madvise(data, madvice[pattern]); err != nil && !errors.Is(err, unix.EINVAL) {
		return err
	}
	return nil
}
