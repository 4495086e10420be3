package arena

import "errors"

var (
	// ErrOutOfMemory is wrapped by every failed allocation or commit.
	ErrOutOfMemory = errors.New("arena: out of memory")
	// ErrInvalidCapacity is returned by New and ParseSize for non-positive sizes.
	ErrInvalidCapacity = errors.New("arena: invalid capacity")
	// ErrInvalidMark is the panic cause when Rewind is given a mark the arena never issued.
	ErrInvalidMark = errors.New("arena: invalid mark")
)
