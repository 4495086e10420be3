package str

import (
	"errors"

	"github.com/hupe1980/membase/internal/conv"
)

var (
	// ErrPostfixOutOfRange is the panic cause of Postfix past the end of a String.
	ErrPostfixOutOfRange = errors.New("str: postfix length exceeds string")
	// ErrOverflow is wrapped when a parsed number does not fit its target type.
	ErrOverflow = conv.ErrOverflow
	// ErrSyntax is returned by ParseU32 for empty input or invalid digits.
	ErrSyntax = errors.New("str: invalid number syntax")
	// ErrTooLarge is wrapped when a file does not fit the arena's free region.
	ErrTooLarge = errors.New("str: file exceeds arena capacity")
)
