package argscan

import (
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"
)

// CheckUnknown verifies that every flag-matched token in the argument vector
// is listed in known, terminating the process with a diagnostic on the first
// token that is not.
//
// Matching uses the same prefix-and-boundary rule as [Args.Find]. When a
// known flag matches an entire token and the following token does not begin
// with '-', the following token is treated as that flag's value and skipped.
// Scanning stops at the [Terminator] token.
//
// The diagnostic names the offending token, the mode label when non-empty,
// the closest known flag when one resembles the token, and the full list of
// known flags. CheckUnknown is advisory only: it never inspects value types,
// and the hosting application should call it once per invocation mode before
// extracting individual flags.
func (a Args) CheckUnknown(mode string, known ...string) {
	for i := 1; i < len(a.argv); i++ {
		tok := a.argv[i]
		if tok == Terminator {
			break
		}

		matched := false

		for _, name := range known {
			if !strings.HasPrefix(tok, name) {
				continue
			}

			rest := tok[len(name):]
			if rest != "" && rest[0] != '=' {
				continue
			}

			if rest == "" && i < len(a.argv)-1 && !strings.HasPrefix(a.argv[i+1], "-") {
				// The next token is this flag's value, not a flag.
				i++
			}

			matched = true

			break
		}

		if !matched {
			a.unknownArgument(tok, mode, known)
		}
	}

	a.rep.logger.Debug("validated command line",
		slog.String("mode", mode),
		slog.Int("known", len(known)),
	)
}

// unknownArgument reports the fatal diagnostic for an unmatched token.
func (a Args) unknownArgument(tok, mode string, known []string) {
	r := a.rep

	if mode == "" {
		r.errorf("Unrecognized command line argument %s.", tok)
	} else {
		r.errorf("Unrecognized command line argument %s for mode %s.", tok, mode)
	}

	if hint, ok := closest(tok, known); ok {
		r.hintf("Did you mean '%s'?", hint)
	}

	if mode == "" {
		r.errorf("Recognized command line arguments:")
	} else {
		r.errorf("Recognized command line arguments for mode %s:", mode)
	}

	for _, name := range known {
		r.errorf("    %s", name)
	}

	err := MakeError(ErrUnknownArgument).Wrapf("token %q", tok)
	if mode != "" {
		err = err.Wrapf("mode %q", mode)
	}

	r.abort(err)
}

// closest returns the known flag most similar to the offending token, if any
// resembles it. The token's flag markers and any inline value are stripped
// before matching.
func closest(tok string, known []string) (string, bool) {
	name, _, _ := strings.Cut(tok, "=")
	name = strings.TrimLeft(name, "-")

	matches := fuzzy.Find(name, known)
	if len(matches) == 0 {
		return "", false
	}

	return matches[0].Str, true
}
