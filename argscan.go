package argscan

import (
	"log/slog"
	"strings"
)

// Terminator is the literal token that ends the flag-parseable region of an
// argument vector. Tokens after it are never inspected for flag matching.
const Terminator = "--"

// Args wraps a process argument vector together with the diagnostic
// configuration used to report invalid input.
//
// The vector is never mutated: every lookup is an independent scan over the
// same tokens, so a single Args value can be shared freely. Index 0 is
// conventionally the program name and is skipped by all lookups.
type Args struct {
	argv []string
	rep  reporter
}

// Make creates a new [Args] over the given argument vector.
//
// The default configuration writes diagnostics to [os.Stderr], terminates
// the process with [os.Exit], colors output only when the writer is a
// terminal, and discards log records.
//
// Optional configuration can be applied using functional options like
// [WithOutput], [WithExit], [WithColor], and [WithLogger].
func Make(argv []string, opts ...Option) Args {
	cfg := makeConfig(opts...)

	return Args{
		argv: argv,
		rep:  makeReporter(cfg),
	}
}

// flagCount returns the index of the first [Terminator] token, or the vector
// length if none is present. Tokens at indices 1..flagCount-1 are subject to
// flag matching.
func (a Args) flagCount() int {
	for i := 1; i < len(a.argv); i++ {
		if a.argv[i] == Terminator {
			return i
		}
	}

	return len(a.argv)
}

// Find scans the argument vector for the named flag and returns its raw
// value. The second return value reports whether the flag is present,
// distinguishing an absent flag from one present with an empty value.
//
// A token matches when it begins with exactly name and the next character is
// either the end of the token or '='. The earliest match wins. The value is
// resolved as follows:
//
//   - The matched token is the last one, or the next token begins with '-':
//     the flag carries no value, and Find returns ("", true).
//   - The matched token continues with '=': the remainder of the token.
//   - Otherwise: the next token, verbatim.
//
// Find is a pure scan with no side effects and never fails.
func (a Args) Find(name string) (string, bool) {
	count := a.flagCount()

	for i := 1; i < count; i++ {
		tok := a.argv[i]
		if !strings.HasPrefix(tok, name) {
			continue
		}

		rest := tok[len(name):]
		if rest != "" && rest[0] != '=' {
			continue
		}

		switch {
		case rest == "" && (i == len(a.argv)-1 || strings.HasPrefix(a.argv[i+1], "-")):
			// Flag present without a value.
			return "", true

		case rest != "":
			// Value provided inline after '='.
			return rest[1:], true

		default:
			// Value provided by the next token.
			return a.argv[i+1], true
		}
	}

	return "", false
}

// Require returns the raw value of the named flag, which may be empty when
// the flag is present without a value.
//
// If the flag is absent, Require reports a fatal diagnostic naming the flag
// and terminates the process.
func (a Args) Require(name string) string {
	value, ok := a.Find(name)
	if !ok {
		a.rep.errorf("Missing command line argument: '%s'", name)
		a.rep.abort(MakeError(ErrMissingArgument).Wrapf("flag %q", name))
	}

	a.rep.logger.Debug("found required flag",
		slog.String("name", name),
		slog.String("value", value),
	)

	return value
}
