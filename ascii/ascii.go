// Package ascii classifies single bytes. Every function is a pure range check
// over the 7-bit ASCII set; bytes >= 0x80 are never letters, digits or space.
package ascii

// NoDigit is the DigitValue of a byte that is not a digit in any radix up to 16.
const NoDigit = 0xFF

// digitValues maps an ASCII byte to its digit value ('0'-'9', 'a'-'f', 'A'-'F').
var digitValues = [128]uint8{
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

// DigitValue returns the value of c as a hexadecimal digit, or NoDigit.
// Only the low 7 bits of c are consulted.
func DigitValue(c byte) uint8 {
	return digitValues[c&0x7f]
}

// IsSpace reports whether c is space, tab, CR, LF, form feed or vertical tab.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == '\v'
}

func IsUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

func IsLower(c byte) bool { return 'a' <= c && c <= 'z' }

func IsAlpha(c byte) bool { return IsLower(c) || IsUpper(c) }

// IsDigit reports whether c is a valid digit in radix. Radix must be in [1, 16];
// any other radix reports false.
func IsDigit(c byte, radix uint32) bool {
	if radix < 1 || radix > 16 || c >= 0x80 {
		return false
	}
	return uint32(digitValues[c]) < radix
}

func IsAlnum(c byte) bool { return IsAlpha(c) || IsDigit(c, 10) }
