package str

import "bytes"

// Split is the result of dividing a String at its first delimiter.
//
// Check OK rather than the emptiness of Tail: "abc" and "abc," both yield an
// empty Tail, but only the second found the delimiter.
type Split struct {
	Head String
	Tail String
	OK   bool
}

// SplitOnce divides s at the first delim. The delimiter belongs to neither
// half. When delim is absent, Head is all of s, Tail is empty and OK is false.
func (s String) SplitOnce(delim byte) Split {
	i := bytes.IndexByte(s, delim)
	if i < 0 {
		return Split{Head: s.view(0, len(s)), Tail: s.view(len(s), len(s))}
	}
	return Split{Head: s.view(0, i), Tail: s.view(i+1, len(s)), OK: true}
}

// Tokenize splits s at every delim and returns the pieces as borrowed views.
// A trailing delimiter yields a trailing empty piece.
func Tokenize(s String, delim byte) List {
	var l List
	for {
		sp := s.SplitOnce(delim)
		l.Push(sp.Head)
		if !sp.OK {
			return l
		}
		s = sp.Tail
	}
}
