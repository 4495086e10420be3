package str

import "github.com/hupe1980/membase/arena"

// Interner deduplicates Strings by content. The first Intern of a given
// content copies it into the arena; later calls return that same view.
//
// An Interner must not outlive a Reset of its arena.
type Interner struct {
	a       *arena.Arena
	buckets map[uint64][]String
	n       int
}

// NewInterner returns an Interner that stores copies in a.
func NewInterner(a *arena.Arena) *Interner {
	return &Interner{a: a, buckets: make(map[uint64][]String)}
}

// Intern returns the canonical arena-owned String equal to s.
func (in *Interner) Intern(s String) String {
	h := s.Hash()
	for _, c := range in.buckets[h] {
		if c.Match(s) {
			return c
		}
	}
	c := PushCopy(in.a, s)
	in.buckets[h] = append(in.buckets[h], c)
	in.n++
	return c
}

// Lookup returns the canonical String equal to s, if interned.
func (in *Interner) Lookup(s String) (String, bool) {
	for _, c := range in.buckets[s.Hash()] {
		if c.Match(s) {
			return c, true
		}
	}
	return nil, false
}

// Len returns the number of distinct Strings interned.
func (in *Interner) Len() int { return in.n }
