package str

import (
	"fmt"

	"github.com/hupe1980/membase/ascii"
	"github.com/hupe1980/membase/internal/conv"
)

var (
	hexPrefix    = Lit("0x")
	binaryPrefix = Lit("0b")
	trueLiteral  = Lit("true")
)

// U64FromStr accumulates the digits of s in radix, which must be in (1, 16];
// other radixes yield 0. Digits are not validated: a byte that is not a digit
// contributes 0xFF, and the accumulator wraps on overflow.
func U64FromStr(s String, radix uint32) uint64 {
	var result uint64
	if radix <= 1 || radix > 16 {
		return 0
	}
	r := uint64(radix)
	for _, c := range s {
		result = result*r + uint64(ascii.DigitValue(c))
	}
	return result
}

// SafeCastU32 narrows x to 32 bits. It panics with an error wrapping ErrOverflow
// if x does not fit.
func SafeCastU32(x uint64) uint32 {
	v, err := conv.Uint64ToUint32(x)
	if err != nil {
		panic(fmt.Errorf("str: %w", err))
	}
	return v
}

// radixOf selects the radix from a "0x" or "0b" prefix and returns the digits.
func radixOf(s String) (String, uint32) {
	switch {
	case s.Prefix(2).Match(hexPrefix):
		return s.Postfix(2), 16
	case s.Prefix(2).Match(binaryPrefix):
		return s.Postfix(2), 2
	default:
		return s, 10
	}
}

// ToU32 parses s as hexadecimal ("0x" prefix), binary ("0b") or decimal.
// Invalid digits are folded silently as in U64FromStr. It panics with an error
// wrapping ErrOverflow when the value exceeds 32 bits.
func ToU32(s String) uint32 {
	digits, radix := radixOf(s)
	return SafeCastU32(U64FromStr(digits, radix))
}

// ParseU32 is the checked counterpart of ToU32: it rejects empty input and
// invalid digits with ErrSyntax and out-of-range values with ErrOverflow.
func ParseU32(s String) (uint32, error) {
	digits, radix := radixOf(s)
	if len(digits) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	var result uint64
	for _, c := range digits {
		if !ascii.IsDigit(c, radix) {
			return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		result = result*uint64(radix) + uint64(ascii.DigitValue(c))
		if result > 1<<32-1 {
			return 0, fmt.Errorf("%w: %q does not fit in 32 bits", ErrOverflow, s)
		}
	}
	return uint32(result), nil
}

// ToBool reports whether s is exactly "true". Anything else, including "TRUE"
// and "1", is false.
func ToBool(s String) bool {
	return s.Match(trueLiteral)
}
