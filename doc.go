// Package argscan locates named flags within a process argument vector and
// extracts their values with type checking, terminating the process with a
// colored diagnostic on any invalid input.
//
// The package performs no registration and keeps no state between calls:
// every lookup is an independent linear scan over the same immutable tokens.
// The hosting application defines which flags are valid for each invocation
// mode and asks for each flag's value by name and expected type.
//
// # Flag syntax
//
// Three token forms are accepted:
//
//	--flag          boolean / presence-only
//	--flag=value    inline value
//	--flag value    value as the following token
//
// The leading marker is part of the name supplied by the caller, so "-v" and
// "--verbose" are simply different names. A bare "--" token terminates flag
// scanning; tokens after it are never flag-matched.
//
// # Usage
//
//	args := argscan.Make(os.Args)
//	args.CheckUnknown("", "--shots", "--seed", "--fast", "--format")
//
//	shots := args.Int("--shots", 1, 1, 1<<30)
//	fast := args.Bool("--fast")
//	format := args.Enum("--format", 0, "text", "json")
//
// # Fatal diagnostics
//
// Malformed input stops the program before any real work begins: every
// invalid-input condition writes a human-readable diagnostic to the error
// stream and terminates the process with a failure status. There is no
// recoverable-error path. Diagnostics are colored when the error stream is a
// terminal (see [ColorMode]), and an unrecognized flag that resembles a
// known one earns a "Did you mean" hint.
//
// # Testing
//
// Process termination is isolated behind the exit function injected with
// [WithExit]. A substituted function that records the status leaves the
// classified error ([ErrUnknownArgument], [ErrOutOfRange], and friends) to
// surface as a panic that tests can recover and inspect with [errors.Is].
package argscan
