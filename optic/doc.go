// Package optic implements declaration and parsing of command-line options.
//
// Applications declare typed option descriptors, register them with an App,
// and hand the App the raw process argument vector. The App walks the
// arguments, matches them to the declared options, converts value tokens to
// typed values, counts occurrences, and reports the first error it meets.
//
// optic is designed to be:
//   - Allocation-shy: names, help text and values are held in Text cells
//     that borrow from argument or literal memory whenever possible
//   - Strict: a value token must convert in full; trailing characters and
//     out-of-range magnitudes are rejected
//   - Symmetric: every value type has a parse/format codec pair, used
//     identically for parsing and for error and usage text
//   - Predictable: exact case-sensitive name matching, no abbreviation,
//     no packed short options, first error aborts the run
//
// # Option Kinds
//
// Flag:      present or absent, no value tokens
// Single:    at most one value, optional default, repetition is an error
// Multi:     any number of values, collected in order
//
// # Syntax
//
// Long:       --name VALUE...
// Short:      -c VALUE...
// Terminator: -- (every later token is handed back to the caller verbatim)
//
// Packed short options (-abc) and --name=value are rejected, not misparsed.
//
// # Example
//
//	app := optic.New("frobnicate")
//	verbose := optic.NewFlag('v', "verbose")
//	factor := optic.NewSingle(optic.Int, 'f', "factor", "N").Default(42)
//	app.Add(verbose, factor)
//
//	rest, err := app.Parse(os.Args)
//
// Descriptors are registered by pointer and must outlive the parse call.
package optic
