package optic

// Args is a single-lookahead cursor over the process argument vector.
// Tokens are consumed left to right; at most one token can be pushed back
// for re-delivery by the next Next call. No token is ever consumed twice.
type Args struct {
	program string
	argv    []string // without the program-name slot
	next    int

	pushed    string
	hasPushed bool
}

// NewArgs wraps argv, whose first element is the program name, as
// delivered by the operating system. An empty argv is a programming error.
func NewArgs(argv []string) *Args {
	if len(argv) == 0 {
		panic("optic: argv must contain the program name")
	}
	return &Args{program: argv[0], argv: argv[1:]}
}

// ProgramName returns the argv[0] slot.
func (a *Args) ProgramName() string { return a.program }

// Next returns the pushed-back token if one is stashed, else the next
// unconsumed argument. ok is false when the list is exhausted.
func (a *Args) Next() (tok string, ok bool) {
	if a.hasPushed {
		tok = a.pushed
		a.pushed = ""
		a.hasPushed = false
		return tok, true
	}
	if a.next < len(a.argv) {
		tok = a.argv[a.next]
		a.next++
		return tok, true
	}
	return "", false
}

// PushFront stashes tok for re-delivery by the next Next call. Pushing
// while a token is already stashed is a programming error.
func (a *Args) PushFront(tok string) {
	if a.hasPushed {
		panic("optic: a token is already pushed back")
	}
	a.pushed = tok
	a.hasPushed = true
}

// NextOrFail returns the next token, or a KindMissingValue error naming
// the value the caller expected.
func (a *Args) NextOrFail(name Text) (string, error) {
	tok, ok := a.Next()
	if !ok {
		return "", newError(KindMissingValue, "missing value '%s'", name)
	}
	return tok, nil
}
