package str

const (
	hashSeed       = 0x100
	hashMultiplier = 1111111111111111111
)

// Hash returns a 64-bit multiply/XOR hash of s, for keying hash tables.
// It is deterministic across processes and platforms and NOT cryptographic.
// The empty String hashes to the seed, 0x100.
func (s String) Hash() uint64 {
	h := uint64(hashSeed)
	for _, c := range s {
		h ^= uint64(c)
		h *= hashMultiplier
	}
	return h
}
