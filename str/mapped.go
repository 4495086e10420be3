package str

import (
	"fmt"
	"io"

	"github.com/hupe1980/membase/internal/mmap"
)

// MapFile borrows the bytes of the file at path through a read-only memory
// mapping. The String is valid until the returned Closer is closed. The bytes
// are read-only: ToUpper or ToLower on the result crashes the process.
func MapFile(path string) (String, io.Closer, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("str: map %s: %w", path, err)
	}
	_ = m.Advise(mmap.AccessSequential)

	data := m.Bytes()
	return String(data[:len(data):len(data)]), m, nil
}
