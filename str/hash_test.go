package str

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_Hash(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"", 0x100},
		{"a", 0x432d410759e0e367},
		{"abc", 0xef7a7d908ccb5e80},
		{"hello", 0x7dae78682a5779bc},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Lit(tt.in).Hash(), "Hash(%q)", tt.in)
	}
}

func TestString_HashDeterministic(t *testing.T) {
	assert.Equal(t, Lit("abc").Hash(), Lit("abc").Hash())
	assert.Equal(t, Lit("abc").Hash(), FromRange([]byte("xabcx"), 1, 4).Hash())
	assert.NotEqual(t, Lit("abc").Hash(), Lit("acb").Hash())
}

func BenchmarkString_Hash(b *testing.B) {
	s := Lit("the quick brown fox jumps over the lazy dog")
	for b.Loop() {
		_ = s.Hash()
	}
}
