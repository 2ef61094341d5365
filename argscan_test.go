package argscan

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// trapFatal runs fn against an Args built over argv with a recording exit
// function and colorless output. It returns the diagnostic text, the
// recorded exit status, and the classified error recovered from the
// reporter. The test fails if fn completes without a fatal diagnostic.
func trapFatal(t *testing.T, argv []string, fn func(Args)) (string, int, error) {
	t.Helper()

	var buf bytes.Buffer

	code := -1

	a := Make(argv,
		WithOutput(&buf),
		WithColor(ColorNever),
		WithExit(func(c int) { code = c }),
	)

	err := func() (err error) {
		defer func() {
			switch r := recover().(type) {
			case nil:
			case error:
				err = r
			default:
				panic(r)
			}
		}()

		fn(a)

		return nil
	}()

	if err == nil {
		t.Fatalf("expected fatal diagnostic, got none")
	}

	return buf.String(), code, err
}

// makeQuiet builds an Args whose fatal path panics instead of exiting, so a
// test expecting success fails loudly if a diagnostic triggers.
func makeQuiet(argv []string) Args {
	return Make(argv,
		WithOutput(io.Discard),
		WithColor(ColorNever),
		WithExit(func(int) {}),
	)
}

func TestFind(t *testing.T) {
	argv := []string{"skipped", "--mode", "2", "--test", "aba", "--a", "-b"}
	a := makeQuiet(argv)

	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{name: "--mode", value: "2", ok: true},
		{name: "-mode", ok: false},
		{name: "mode", ok: false},
		{name: "--test", value: "aba", ok: true},
		{name: "--a", value: "", ok: true},
		{name: "-a", ok: false},
		{name: "-b", value: "", ok: true},
		{name: "--b", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := a.Find(tt.name)
			if ok != tt.ok || value != tt.value {
				t.Errorf("Find(%q) = (%q, %v), want (%q, %v)",
					tt.name, value, ok, tt.value, tt.ok)
			}
		})
	}
}

func TestFind_Terminator(t *testing.T) {
	tests := []struct {
		name  string
		argv  []string
		flag  string
		value string
		ok    bool
	}{
		{
			name: "flag after terminator never matches",
			argv: []string{"prog", "--", "--flag", "x"},
			flag: "--flag",
			ok:   false,
		},
		{
			name: "flag just before terminator has empty value",
			argv: []string{"prog", "--a", "--", "value"},
			flag: "--a",
			ok:   true,
		},
		{
			name:  "terminator does not hide earlier flags",
			argv:  []string{"prog", "--n=1", "--", "--n=2"},
			flag:  "--n",
			value: "1",
			ok:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := makeQuiet(tt.argv).Find(tt.flag)
			if ok != tt.ok || value != tt.value {
				t.Errorf("Find(%q) = (%q, %v), want (%q, %v)",
					tt.flag, value, ok, tt.value, tt.ok)
			}
		})
	}
}

func TestFind_ValueForms(t *testing.T) {
	tests := []struct {
		name  string
		argv  []string
		flag  string
		value string
		ok    bool
	}{
		{
			name:  "inline value",
			argv:  []string{"prog", "--x=value"},
			flag:  "--x",
			value: "value",
			ok:    true,
		},
		{
			name:  "separate value",
			argv:  []string{"prog", "--x", "value"},
			flag:  "--x",
			value: "value",
			ok:    true,
		},
		{
			name:  "inline value may begin with a dash",
			argv:  []string{"prog", "--n=-5"},
			flag:  "--n",
			value: "-5",
			ok:    true,
		},
		{
			name: "separate dash token is not a value",
			argv: []string{"prog", "--n", "-5"},
			flag: "--n",
			ok:   true, // present, but with empty value
		},
		{
			name:  "empty separate token is a value",
			argv:  []string{"prog", "--x", ""},
			flag:  "--x",
			value: "",
			ok:    true,
		},
		{
			name:  "first match wins",
			argv:  []string{"prog", "--n=1", "--n", "2"},
			flag:  "--n",
			value: "1",
			ok:    true,
		},
		{
			name:  "inline empty value",
			argv:  []string{"prog", "--x=", "next"},
			flag:  "--x",
			value: "",
			ok:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := makeQuiet(tt.argv).Find(tt.flag)
			if ok != tt.ok || value != tt.value {
				t.Errorf("Find(%q) = (%q, %v), want (%q, %v)",
					tt.flag, value, ok, tt.value, tt.ok)
			}
		})
	}
}

func TestRequire(t *testing.T) {
	argv := []string{"skipped", "--mode", "2", "--test", "aba", "--a", "-b"}
	a := makeQuiet(argv)

	if got := a.Require("--mode"); got != "2" {
		t.Errorf("Require(--mode) = %q, want %q", got, "2")
	}

	if got := a.Require("--a"); got != "" {
		t.Errorf("Require(--a) = %q, want empty", got)
	}
}

func TestRequire_Missing(t *testing.T) {
	argv := []string{"skipped", "--mode", "2"}

	out, code, err := trapFatal(t, argv, func(a Args) {
		a.Require("--absent")
	})

	if code != 1 {
		t.Errorf("exit status = %d, want 1", code)
	}

	if !errors.Is(err, ErrMissingArgument) {
		t.Errorf("error = %v, want ErrMissingArgument", err)
	}

	if !strings.Contains(out, "Missing command line argument: '--absent'") {
		t.Errorf("diagnostic %q does not name the missing flag", out)
	}
}
