package argscan

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode controls whether fatal diagnostics include ANSI color escapes.
type ColorMode int

const (
	// ColorAuto enables color only when the diagnostic writer is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways enables color unconditionally.
	ColorAlways
	// ColorNever disables color unconditionally.
	ColorNever
)

// profile maps the color mode to a termenv profile for the given writer.
func (m ColorMode) profile(w io.Writer) termenv.Profile {
	switch m {
	case ColorAlways:
		return termenv.ANSI

	case ColorNever:
		return termenv.Ascii
	}

	if f, ok := w.(*os.File); ok &&
		(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return termenv.ANSI
	}

	return termenv.Ascii
}

// reporter renders fatal diagnostics and terminates the process.
//
// Every invalid-input condition in this package funnels through a single
// [reporter.abort] call, keeping the scanning and parsing logic free of
// process-exit side effects so tests can substitute a recording exit
// function.
type reporter struct {
	out    io.Writer
	exit   func(int)
	logger *slog.Logger
	text   lipgloss.Style
	hint   lipgloss.Style
}

func makeReporter(cfg config) reporter {
	// A renderer bound to the diagnostic writer with an explicit profile
	// keeps output independent of the process's stdout.
	ren := lipgloss.NewRenderer(cfg.output)
	ren.SetColorProfile(cfg.color.profile(cfg.output))

	return reporter{
		out:    cfg.output,
		exit:   cfg.exit,
		logger: cfg.logger,
		text:   ren.NewStyle().Foreground(lipgloss.Color("1")),
		hint:   ren.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

// errorf writes one line of the diagnostic in the error style.
func (r reporter) errorf(format string, args ...any) {
	fmt.Fprintln(r.out, r.text.Render(fmt.Sprintf(format, args...)))
}

// hintf writes one line of the diagnostic in the hint style.
func (r reporter) hintf(format string, args ...any) {
	fmt.Fprintln(r.out, r.hint.Render(fmt.Sprintf(format, args...)))
}

// abort records the classified error and terminates the process with a
// failure status. It never returns.
func (r reporter) abort(err error) {
	r.logger.Error("invalid command line",
		slog.Any("error", err),
	)

	r.exit(1)

	// The exit function must not return. If a substituted one does, surface
	// the classified error to the caller instead of continuing.
	panic(err)
}
