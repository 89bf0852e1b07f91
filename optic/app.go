package optic

// Constraint declares how the options of a group may combine. Constraints
// are declarative: the matching loop records them but does not enforce
// them.
type Constraint uint8

const (
	ConstraintNone Constraint = iota
	ConstraintMutuallyExclusive
	ConstraintRequiredAndMutuallyExclusive
)

// String returns the constraint name.
func (c Constraint) String() string {
	switch c {
	case ConstraintNone:
		return "none"
	case ConstraintMutuallyExclusive:
		return "mutually exclusive"
	case ConstraintRequiredAndMutuallyExclusive:
		return "required, mutually exclusive"
	default:
		return "unknown"
	}
}

// Group is a named set of options rendered as its own usage section.
type Group struct {
	name       Text
	constraint Constraint
	options    []Option
}

// Name returns the group name.
func (g *Group) Name() string { return g.name.String() }

// Constraint returns the declared combination rule.
func (g *Group) Constraint() Constraint { return g.constraint }

// Options returns the group members in declaration order.
func (g *Group) Options() []Option { return g.options }

// App owns the set of registered option descriptors and runs the matching
// loop over the argument vector. Descriptors are registered by pointer;
// the caller keeps them alive for the duration of the parse call and reads
// parsed values back out of them afterwards.
type App struct {
	name    Text
	options []Option // insertion order = usage-display order
	groups  []*Group
}

// New creates an application registry. name heads the usage banner.
func New(name string) *App {
	return &App{name: Copy(name)}
}

// Name returns the application name.
func (a *App) Name() string { return a.name.String() }

// Add registers options in display order.
func (a *App) Add(opts ...Option) {
	a.options = append(a.options, opts...)
}

// AddGroup registers opts under a named usage section. Matching treats
// grouped options exactly like ungrouped ones.
func (a *App) AddGroup(name string, constraint Constraint, opts ...Option) *Group {
	g := &Group{name: Copy(name), constraint: constraint, options: opts}
	a.options = append(a.options, opts...)
	a.groups = append(a.groups, g)
	return g
}

// Parse matches argv, whose first element is the program name, against the
// registered options. Tokens that are neither a recognized long nor short
// option are handed back in order, untouched; after a bare "--" every
// remaining token is handed back regardless of shape. The first error
// aborts the run.
func (a *App) Parse(argv []string) (rest []string, err error) {
	return a.ParseArgs(NewArgs(argv))
}

// ParseArgs runs the matching loop over an existing cursor.
func (a *App) ParseArgs(args *Args) (rest []string, err error) {
	optionParsing := true

	for {
		tok, ok := args.Next()
		if !ok {
			return rest, nil
		}

		switch {
		case optionParsing && len(tok) >= 2 && tok[0] == '-' && tok[1] == '-':
			name := tok[2:]
			if name == "" {
				// Bare "--": stop recognizing options.
				optionParsing = false
				continue
			}
			opt := a.findLong(name)
			if opt == nil {
				return rest, newError(KindUnknownOption, "unknown option name: '%s'", tok)
			}
			if err := parseOption(opt, args); err != nil {
				return rest, err
			}

		case optionParsing && len(tok) >= 2 && tok[0] == '-':
			if len(tok) > 2 {
				return rest, newError(KindUnsupportedSyntax,
					"packed short options are not supported: '%s'", tok)
			}
			opt := a.findShort(tok[1])
			if opt == nil {
				return rest, newError(KindUnknownOption, "unknown option name: '%s'", tok)
			}
			if err := parseOption(opt, args); err != nil {
				return rest, err
			}

		default:
			rest = append(rest, tok)
		}
	}
}

// findLong looks up an option by exact long-name match.
func (a *App) findLong(name string) Option {
	for _, o := range a.options {
		if long, ok := o.base().Long(); ok && long == name {
			return o
		}
	}
	return nil
}

// findShort looks up an option by exact short-name match.
func (a *App) findShort(c byte) Option {
	for _, o := range a.options {
		if short, ok := o.base().Short(); ok && short == c {
			return o
		}
	}
	return nil
}

// grouped reports whether o belongs to some group.
func (a *App) grouped(o Option) bool {
	for _, g := range a.groups {
		for _, member := range g.options {
			if member == o {
				return true
			}
		}
	}
	return false
}
