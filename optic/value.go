package optic

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
)

// Codec converts option values between command-line text and typed form.
// The parse and format sides are symmetric: for every canonically-formatted
// text, Append(Parse(text)) reproduces the text.
type Codec[T any] interface {
	// Parse consumes the tokens forming one value of type T from args.
	// names holds one value name per consumed token, positionally, and is
	// used only in error messages.
	Parse(args *Args, names []Text) (T, error)

	// Append writes the canonical text form of v to b and returns the
	// number of bytes written. Used for defaults and for composing error
	// and usage text.
	Append(b *strings.Builder, v T) int

	// Arity is the number of tokens (and value names) one value consumes.
	Arity() int
}

// Scalar codecs. Parsing is strict: the whole token must convert, and for
// bounded integer types the magnitude must fit the target width.
var (
	// String accepts any single token verbatim.
	String Codec[string] = stringCodec{}

	// Int and Int64 accept the Go integer grammar, including leading
	// zeros (octal) and radix prefixes (0x, 0o, 0b).
	Int   Codec[int]   = intCodec[int]{desc: "integer (int)", bits: strconv.IntSize}
	Int64 Codec[int64] = intCodec[int64]{desc: "integer (int64)", bits: 64}

	// Uint and Uint64 reject signs entirely.
	Uint   Codec[uint]   = uintCodec[uint]{desc: "unsigned integer (uint)", bits: strconv.IntSize}
	Uint64 Codec[uint64] = uintCodec[uint64]{desc: "unsigned integer (uint64)", bits: 64}

	// Float64 accepts the Go floating-point grammar.
	Float64 Codec[float64] = floatCodec{desc: "float (float64)"}

	// Bool accepts 1, t, true, 0, f, false (any case).
	Bool Codec[bool] = boolCodec{desc: "boolean (bool)"}

	// Duration accepts the Go duration grammar, e.g. 1h30m.
	Duration Codec[time.Duration] = durationCodec{desc: "duration"}
)

// invalidValue builds the uniform strict-conversion failure message.
func invalidValue(name Text, desc, text string) *Error {
	return newError(KindInvalidValue, "value '%s' is not a valid %s: '%s'", name, desc, text)
}

// nameAt returns the i-th value name, or an empty cell when the caller
// declared fewer names than the codec's arity.
func nameAt(names []Text, i int) Text {
	if i < len(names) {
		return names[i]
	}
	return Text{}
}

// sliceNames returns the n positional name slots starting at off,
// tolerating short name lists.
func sliceNames(names []Text, off, n int) []Text {
	if off >= len(names) {
		return nil
	}
	if off+n > len(names) {
		return names[off:]
	}
	return names[off : off+n]
}

type stringCodec struct{}

func (stringCodec) Parse(args *Args, names []Text) (string, error) {
	return args.NextOrFail(nameAt(names, 0))
}

func (stringCodec) Append(b *strings.Builder, v string) int {
	b.WriteString(v)
	return len(v)
}

func (stringCodec) Arity() int { return 1 }

type intCodec[T constraints.Signed] struct {
	desc string
	bits int
}

func (c intCodec[T]) Parse(args *Args, names []Text) (T, error) {
	text, err := args.NextOrFail(nameAt(names, 0))
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(text, 0, c.bits)
	if err != nil {
		return 0, invalidValue(nameAt(names, 0), c.desc, text)
	}
	return T(n), nil
}

func (c intCodec[T]) Append(b *strings.Builder, v T) int {
	s := strconv.FormatInt(int64(v), 10)
	b.WriteString(s)
	return len(s)
}

func (c intCodec[T]) Arity() int { return 1 }

type uintCodec[T constraints.Unsigned] struct {
	desc string
	bits int
}

func (c uintCodec[T]) Parse(args *Args, names []Text) (T, error) {
	text, err := args.NextOrFail(nameAt(names, 0))
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(text, 0, c.bits)
	if err != nil {
		return 0, invalidValue(nameAt(names, 0), c.desc, text)
	}
	return T(n), nil
}

func (c uintCodec[T]) Append(b *strings.Builder, v T) int {
	s := strconv.FormatUint(uint64(v), 10)
	b.WriteString(s)
	return len(s)
}

func (c uintCodec[T]) Arity() int { return 1 }

type floatCodec struct {
	desc string
}

func (c floatCodec) Parse(args *Args, names []Text) (float64, error) {
	text, err := args.NextOrFail(nameAt(names, 0))
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, invalidValue(nameAt(names, 0), c.desc, text)
	}
	return f, nil
}

func (c floatCodec) Append(b *strings.Builder, v float64) int {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	b.WriteString(s)
	return len(s)
}

func (c floatCodec) Arity() int { return 1 }

type boolCodec struct {
	desc string
}

func (c boolCodec) Parse(args *Args, names []Text) (bool, error) {
	text, err := args.NextOrFail(nameAt(names, 0))
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(text)
	if err != nil {
		return false, invalidValue(nameAt(names, 0), c.desc, text)
	}
	return v, nil
}

func (c boolCodec) Append(b *strings.Builder, v bool) int {
	s := strconv.FormatBool(v)
	b.WriteString(s)
	return len(s)
}

func (c boolCodec) Arity() int { return 1 }

type durationCodec struct {
	desc string
}

func (c durationCodec) Parse(args *Args, names []Text) (time.Duration, error) {
	text, err := args.NextOrFail(nameAt(names, 0))
	if err != nil {
		return 0, err
	}
	d, err := time.ParseDuration(text)
	if err != nil {
		return 0, invalidValue(nameAt(names, 0), c.desc, text)
	}
	return d, nil
}

func (c durationCodec) Append(b *strings.Builder, v time.Duration) int {
	s := v.String()
	b.WriteString(s)
	return len(s)
}

func (c durationCodec) Arity() int { return 1 }

// Pair is an ordered pair of option values, filled positionally.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is an ordered triple of option values, filled positionally.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// PairOf builds a composite codec from two element codecs. The composite
// consumes the elements' tokens in positional order; the first failing
// element aborts the whole parse and no partial value is retained.
func PairOf[A, B any](a Codec[A], b Codec[B]) Codec[Pair[A, B]] {
	return pairCodec[A, B]{a: a, b: b}
}

// TripleOf builds a composite codec from three element codecs, with the
// same ordering and abort semantics as PairOf.
func TripleOf[A, B, C any](a Codec[A], b Codec[B], c Codec[C]) Codec[Triple[A, B, C]] {
	return tripleCodec[A, B, C]{a: a, b: b, c: c}
}

type pairCodec[A, B any] struct {
	a Codec[A]
	b Codec[B]
}

func (c pairCodec[A, B]) Parse(args *Args, names []Text) (Pair[A, B], error) {
	av, err := c.a.Parse(args, sliceNames(names, 0, c.a.Arity()))
	if err != nil {
		return Pair[A, B]{}, err
	}
	bv, err := c.b.Parse(args, sliceNames(names, c.a.Arity(), c.b.Arity()))
	if err != nil {
		return Pair[A, B]{}, err
	}
	return Pair[A, B]{First: av, Second: bv}, nil
}

func (c pairCodec[A, B]) Append(b *strings.Builder, v Pair[A, B]) int {
	n := c.a.Append(b, v.First)
	b.WriteByte(' ')
	n++
	n += c.b.Append(b, v.Second)
	return n
}

func (c pairCodec[A, B]) Arity() int { return c.a.Arity() + c.b.Arity() }

type tripleCodec[A, B, C any] struct {
	a Codec[A]
	b Codec[B]
	c Codec[C]
}

func (t tripleCodec[A, B, C]) Parse(args *Args, names []Text) (Triple[A, B, C], error) {
	av, err := t.a.Parse(args, sliceNames(names, 0, t.a.Arity()))
	if err != nil {
		return Triple[A, B, C]{}, err
	}
	off := t.a.Arity()
	bv, err := t.b.Parse(args, sliceNames(names, off, t.b.Arity()))
	if err != nil {
		return Triple[A, B, C]{}, err
	}
	off += t.b.Arity()
	cv, err := t.c.Parse(args, sliceNames(names, off, t.c.Arity()))
	if err != nil {
		return Triple[A, B, C]{}, err
	}
	return Triple[A, B, C]{First: av, Second: bv, Third: cv}, nil
}

func (t tripleCodec[A, B, C]) Append(b *strings.Builder, v Triple[A, B, C]) int {
	n := t.a.Append(b, v.First)
	b.WriteByte(' ')
	n++
	n += t.b.Append(b, v.Second)
	b.WriteByte(' ')
	n++
	n += t.c.Append(b, v.Third)
	return n
}

func (t tripleCodec[A, B, C]) Arity() int {
	return t.a.Arity() + t.b.Arity() + t.c.Arity()
}
