package optic

import "strings"

// TextKind tags how a Text cell holds its content.
type TextKind uint8

const (
	// TextBorrowed means the cell is a non-owning view of text whose
	// lifetime is the caller's responsibility (argument memory, literals).
	TextBorrowed TextKind = iota
	// TextOwned means the cell made its own copy at construction.
	TextOwned
)

// String returns the kind name.
func (k TextKind) String() string {
	switch k {
	case TextBorrowed:
		return "borrowed"
	case TextOwned:
		return "owned"
	default:
		return "unknown"
	}
}

// Text is a copy-on-write string cell. It is either a borrowed view of
// externally-owned text or an exclusively-owned copy, never both. Content
// is immutable once constructed; reassignment replaces the whole cell.
// The zero value is a borrowed empty cell.
//
// Every duplication chooses Borrow or Copy explicitly, so lifetime and
// allocation cost are never ambiguous at the call site. Viewing never
// allocates.
type Text struct {
	s    string
	kind TextKind
}

// Borrow views s without copying. The caller keeps the text alive for as
// long as the cell is in use; string literals and process-argument strings
// satisfy this for the lifetime of a parse run.
func Borrow(s string) Text {
	return Text{s: s}
}

// Copy makes the cell its own copy of s. Always safe; allocates iff s is
// non-empty. An empty copy collapses to the borrowed empty cell.
func Copy(s string) Text {
	if s == "" {
		return Text{}
	}
	return Text{s: strings.Clone(s), kind: TextOwned}
}

// CopyBytes copies b into an owned cell, severing any aliasing with the
// caller's buffer.
func CopyBytes(b []byte) Text {
	if len(b) == 0 {
		return Text{}
	}
	return Text{s: string(b), kind: TextOwned}
}

// String returns the content.
func (t Text) String() string { return t.s }

// Len returns the content length in bytes.
func (t Text) Len() int { return len(t.s) }

// IsEmpty reports whether the cell holds no text.
func (t Text) IsEmpty() bool { return len(t.s) == 0 }

// Kind reports whether the cell borrows its content or owns a copy.
func (t Text) Kind() TextKind { return t.kind }
