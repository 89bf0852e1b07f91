package optic

import (
	"io"
	"strings"
)

const (
	optionLeftIndent   = 2
	helpTextLeftIndent = 3
)

// Usage renders the aligned option listing as a string. Ungrouped options
// appear first under "Options:"; each group follows as its own section.
// All sections share one alignment column, computed over every registered
// option.
func (a *App) Usage() string {
	var b strings.Builder

	b.WriteString(a.name.String())
	b.WriteString(" [options]\n\n")

	// Pass 1: the help column is the widest pattern plus a fixed gutter.
	column := 0
	for _, o := range a.options {
		if w := patternWidth(o) + helpTextLeftIndent; w > column {
			column = w
		}
	}

	// Pass 2: re-emit each pattern padded up to the column.
	b.WriteString("Options:\n")
	for _, o := range a.options {
		if !a.grouped(o) {
			writeOptionLine(&b, o, column)
		}
	}
	for _, g := range a.groups {
		b.WriteByte('\n')
		b.WriteString(g.name.String())
		b.WriteString(":\n")
		for _, o := range g.options {
			writeOptionLine(&b, o, column)
		}
	}

	return b.String()
}

// WriteUsage writes the usage listing to w.
func (a *App) WriteUsage(w io.Writer) error {
	_, err := io.WriteString(w, a.Usage())
	return err
}

func writeOptionLine(b *strings.Builder, o Option, column int) {
	size := writePattern(b, o)
	for size < column {
		b.WriteByte(' ')
		size++
	}
	b.WriteString(o.base().Help.String())
	b.WriteByte('\n')
}

// writePattern emits the option pattern and returns its printed width:
// two-space indent, -s, a comma when both names exist, --long, then a
// space and name for every value token.
func writePattern(b *strings.Builder, o Option) int {
	bs := o.base()
	size := 0

	for size < optionLeftIndent {
		b.WriteByte(' ')
		size++
	}
	short, hasShort := bs.Short()
	if hasShort {
		b.WriteByte('-')
		b.WriteByte(short)
		size += 2
	}
	if long, ok := bs.Long(); ok {
		if hasShort {
			b.WriteByte(',')
			size++
		}
		b.WriteString("--")
		b.WriteString(long)
		size += 2 + len(long)
	}
	for _, name := range o.ValueNames() {
		b.WriteByte(' ')
		b.WriteString(name.String())
		size += 1 + name.Len()
	}
	return size
}

// patternWidth measures writePattern without emitting.
func patternWidth(o Option) int {
	bs := o.base()
	size := optionLeftIndent

	hasShort := bs.short != 0
	if hasShort {
		size += 2
	}
	if long, ok := bs.Long(); ok {
		if hasShort {
			size++
		}
		size += 2 + len(long)
	}
	for _, name := range o.ValueNames() {
		size += 1 + name.Len()
	}
	return size
}
