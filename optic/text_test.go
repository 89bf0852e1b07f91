package optic

import (
	"strings"
	"testing"
)

func TestText_ZeroValue(t *testing.T) {
	var cell Text
	if cell.String() != "" {
		t.Errorf("zero value content = %q, want empty", cell.String())
	}
	if cell.Kind() != TextBorrowed {
		t.Errorf("zero value kind = %s, want borrowed", cell.Kind())
	}
	if !cell.IsEmpty() {
		t.Error("zero value should be empty")
	}
}

func TestText_Copy(t *testing.T) {
	tests := []string{"x", "factor", "a somewhat longer help text"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			cell := Copy(input)
			if cell.String() != input {
				t.Errorf("content = %q, want %q", cell.String(), input)
			}
			if cell.Kind() != TextOwned {
				t.Errorf("kind = %s, want owned", cell.Kind())
			}
			if cell.Len() != len(input) {
				t.Errorf("Len = %d, want %d", cell.Len(), len(input))
			}
		})
	}
}

func TestText_CopyEmpty(t *testing.T) {
	// An empty copy collapses to the borrowed empty cell and allocates
	// nothing.
	cell := Copy("")
	if cell.Kind() != TextBorrowed {
		t.Errorf("kind = %s, want borrowed", cell.Kind())
	}
	if !cell.IsEmpty() {
		t.Error("should be empty")
	}
}

func TestText_Borrow(t *testing.T) {
	s := "lvalue string"
	cell := Borrow(s)
	if cell.String() != s {
		t.Errorf("content = %q, want %q", cell.String(), s)
	}
	if cell.Kind() != TextBorrowed {
		t.Errorf("kind = %s, want borrowed", cell.Kind())
	}
}

func TestText_BorrowDoesNotAllocate(t *testing.T) {
	s := strings.Repeat("a", 64)
	allocs := testing.AllocsPerRun(100, func() {
		cell := Borrow(s)
		if cell.Len() != 64 {
			t.Fatal("wrong length")
		}
	})
	if allocs != 0 {
		t.Errorf("Borrow allocated %v times per run, want 0", allocs)
	}
}

func TestText_CopyBytesSeversAliasing(t *testing.T) {
	buf := []byte("mutable")
	cell := CopyBytes(buf)
	buf[0] = 'M'
	if cell.String() != "mutable" {
		t.Errorf("content changed with source buffer: %q", cell.String())
	}
	if cell.Kind() != TextOwned {
		t.Errorf("kind = %s, want owned", cell.Kind())
	}
}

func TestText_Reassignment(t *testing.T) {
	cell := Copy("first")
	cell = Borrow("second")
	if cell.String() != "second" || cell.Kind() != TextBorrowed {
		t.Errorf("after reassignment: %q (%s)", cell.String(), cell.Kind())
	}
}

func TestTextKind_String(t *testing.T) {
	if TextBorrowed.String() != "borrowed" || TextOwned.String() != "owned" {
		t.Errorf("kind names: %s, %s", TextBorrowed, TextOwned)
	}
}
