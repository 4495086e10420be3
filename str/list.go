package str

import (
	"iter"

	"github.com/hupe1980/membase/arena"
)

// Node is one element of a List.
type Node struct {
	String String
	Next   *Node
}

// List is a singly linked list of Strings that grows without copying the
// pieces already stored. Count is the number of nodes and Size the total
// length of their Strings.
//
// The zero value is an empty list.
type List struct {
	First *Node
	Last  *Node
	Count int
	Size  int
}

// Push appends s as a borrowed view.
func (l *List) Push(s String) {
	n := &Node{String: s}
	if l.Last == nil {
		l.First = n
	} else {
		l.Last.Next = n
	}
	l.Last = n
	l.Count++
	l.Size += len(s)
}

// PushCopy copies s into a and appends the copy.
func (l *List) PushCopy(a *arena.Arena, s String) {
	l.Push(PushCopy(a, s))
}

// All iterates the stored Strings in insertion order.
func (l List) All() iter.Seq[String] {
	return func(yield func(String) bool) {
		for n := l.First; n != nil; n = n.Next {
			if !yield(n.String) {
				return
			}
		}
	}
}

// Join concatenates the list, separated by sep, into one allocation from a.
func (l *List) Join(a *arena.Arena, sep String) String {
	total := l.Size
	if l.Count > 1 {
		total += len(sep) * (l.Count - 1)
	}

	out := a.Alloc(1, 1, total)
	at := 0
	for n := l.First; n != nil; n = n.Next {
		if n != l.First {
			at += copy(out[at:], sep)
		}
		at += copy(out[at:], n.String)
	}
	return String(out)
}
