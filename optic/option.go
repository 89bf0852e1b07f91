package optic

// Option is the contract shared by every option kind. It is implemented by
// Flag, Single and Multi; the set is closed.
type Option interface {
	// Name returns the long name when present, else the one-character
	// short form. Used uniformly in messages.
	Name() string

	// Seen reports how many times the option successfully matched during
	// the current parse run.
	Seen() int

	// ValueNames lists the usage names of the value tokens the option
	// consumes, one per token. Empty for flags.
	ValueNames() []Text

	base() *optionBase
	parseValue(args *Args) error
}

// optionBase carries the identity and documentation shared by all kinds.
// At least one of the short and long names must be usable.
type optionBase struct {
	short byte
	long  Text

	// Help is the one-line description shown in usage listings.
	Help Text
	// Doc is long-form documentation text, not rendered by WriteUsage.
	Doc Text

	seen int
}

func newOptionBase(short byte, long string) optionBase {
	if short == 0 && long == "" {
		panic("optic: option needs a short or a long name")
	}
	return optionBase{short: short, long: Borrow(long)}
}

func (b *optionBase) base() *optionBase { return b }

// Name returns the long name when present, else the short name.
func (b *optionBase) Name() string {
	if !b.long.IsEmpty() {
		return b.long.String()
	}
	return string(b.short)
}

// Seen reports the occurrence count of the current parse run.
func (b *optionBase) Seen() int { return b.seen }

// Short returns the single-character short name, ok false if absent.
func (b *optionBase) Short() (byte, bool) { return b.short, b.short != 0 }

// Long returns the long name, ok false if absent.
func (b *optionBase) Long() (string, bool) { return b.long.String(), !b.long.IsEmpty() }

// parseOption runs the kind-specific conversion, then counts the
// occurrence. The increment is unconditional after success, so a kind
// that rejects repetition checks before converting.
func parseOption(o Option, args *Args) error {
	if err := o.parseValue(args); err != nil {
		return err
	}
	o.base().seen++
	return nil
}

// optionNames builds the arity-sized value-name list for an option. Fewer
// declared names than arity leaves the tail slots empty; more is a
// declaration error.
func optionNames(arity int, declared []string) []Text {
	if len(declared) > arity {
		panic("optic: more value names than the codec consumes tokens")
	}
	names := make([]Text, arity)
	for i, s := range declared {
		names[i] = Borrow(s)
	}
	return names
}

// Flag is an option without value tokens. It is present iff it matched at
// least once; matching it repeatedly is allowed and counted.
type Flag struct {
	optionBase
}

// NewFlag declares a flag. Either name may be absent (0 or ""), not both.
func NewFlag(short byte, long string) *Flag {
	return &Flag{optionBase: newOptionBase(short, long)}
}

// Present reports whether the flag appeared on the command line.
func (f *Flag) Present() bool { return f.seen > 0 }

func (f *Flag) ValueNames() []Text { return nil }

func (f *Flag) parseValue(args *Args) error { return nil }

// Single is an option holding at most one value of type T. A pre-set
// default survives until the first match overwrites it; a second match is
// an error.
type Single[T any] struct {
	optionBase
	codec Codec[T]

	names []Text
	value T
	has   bool
}

// NewSingle declares a single-value option using codec. valueNames are the
// usage names of the consumed tokens, at most codec.Arity() of them.
func NewSingle[T any](codec Codec[T], short byte, long string, valueNames ...string) *Single[T] {
	return &Single[T]{
		optionBase: newOptionBase(short, long),
		codec:      codec,
		names:      optionNames(codec.Arity(), valueNames),
	}
}

// Default pre-sets the value reported before any match. Returns s for
// declaration chaining.
func (s *Single[T]) Default(v T) *Single[T] {
	s.value = v
	s.has = true
	return s
}

// Value returns the stored value; ok is false when neither a default was
// set nor a match occurred.
func (s *Single[T]) Value() (v T, ok bool) { return s.value, s.has }

// Get returns the stored value, or the zero value when unset.
func (s *Single[T]) Get() T { return s.value }

func (s *Single[T]) ValueNames() []Text { return s.names }

func (s *Single[T]) parseValue(args *Args) error {
	if s.seen >= 1 {
		return newError(KindOptionRepeated,
			"option '%s' cannot be used more than once", s.Name())
	}
	v, err := s.codec.Parse(args, s.names)
	if err != nil {
		return wrapOption(s.Name(), err)
	}
	s.value = v
	s.has = true
	return nil
}

// Multi is a repeatable option collecting values of type T in match order.
type Multi[T any] struct {
	optionBase
	codec Codec[T]

	names  []Text
	values []T
}

// NewMulti declares a repeatable option using codec.
func NewMulti[T any](codec Codec[T], short byte, long string, valueNames ...string) *Multi[T] {
	return &Multi[T]{
		optionBase: newOptionBase(short, long),
		codec:      codec,
		names:      optionNames(codec.Arity(), valueNames),
	}
}

// Values returns the collected values in match order.
func (m *Multi[T]) Values() []T { return m.values }

func (m *Multi[T]) ValueNames() []Text { return m.names }

func (m *Multi[T]) parseValue(args *Args) error {
	v, err := m.codec.Parse(args, m.names)
	if err != nil {
		return wrapOption(m.Name(), err)
	}
	m.values = append(m.values, v)
	return nil
}
