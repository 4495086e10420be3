// Package str implements non-owning string slices over arena or borrowed memory.
//
// A String is a view: a pointer and a length, spelled as a byte slice. Copying
// a String copies the view, never the bytes. Whether the bytes belong to an
// arena or to something else (a mapped file, a literal, a network buffer) is a
// convention of the caller; the type does not record it.
//
// # Views
//
// Almost every operation derives a new view of existing memory and allocates
// nothing: Skip, Prefix, Postfix, Trim, SplitOnce. Derived views have their
// capacity clamped to their length, so appending to one can never write into
// the bytes that follow it in the arena.
//
// Searches report "not found" with the length of the searched String rather
// than a separate flag:
//
//	if i := s.FindChar('=', 0); i < len(s) {
//	    key, value := s.Prefix(i).Trim(), s.Postfix(i+1).Trim()
//	}
//
// # Allocation
//
// Only PushCopy, FromFile, the Loader, List.PushCopy, List.Join and the
// Interner write new bytes, and they do so exclusively through the arena they
// are given. ToUpper and ToLower are the only operations that write through an
// existing view; never call them on read-only memory such as a MapFile result.
//
// # Failures
//
// Postfix past the end and ToU32 on a value above 32 bits are programming
// errors and panic. Everything else fails softly: a sentinel index, a false
// Split.OK, a silently folded digit, or false from ToBool.
package str
