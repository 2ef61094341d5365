package argscan

import (
	"math"
	"strconv"
)

// Bool reports whether the named boolean flag is set.
//
// An absent flag is false, and a flag present without a value is true.
// Boolean flags accept no value: any non-empty value is a fatal diagnostic.
func (a Args) Bool(name string) bool {
	value, ok := a.Find(name)

	switch {
	case !ok:
		return false

	case value == "":
		return true
	}

	a.rep.errorf("Got non-empty value '%s' for boolean flag '%s'.", value, name)
	a.rep.abort(MakeError(ErrBooleanValue).
		Wrapf("flag %q", name).
		Wrapf("value %q", value))

	return false // not reached
}

// Int returns the value of the named integer flag, parsed in base 10 and
// bounds-checked against [minValue, maxValue] inclusive.
//
// When the flag is absent or present without a value, def is returned if it
// lies within bounds; otherwise the missing value is a fatal diagnostic.
// Partial parses are rejected: trailing non-numeric content is fatal, never
// silently truncated.
func (a Args) Int(name string, def, minValue, maxValue int) int {
	text, ok := a.Find(name)
	if !ok || text == "" {
		if def < minValue || def > maxValue {
			a.rep.errorf("Must specify a value for int flag '%s'.", name)
			a.rep.abort(MakeError(ErrMissingValue).Wrapf("int flag %q", name))
		}

		return def
	}

	parsed, err := strconv.ParseInt(text, 10, strconv.IntSize)
	if err != nil {
		a.rep.errorf("Got non-integer value '%s' for integer flag '%s'.", text, name)
		a.rep.abort(MakeError(ErrInvalidInteger).
			Wrapf("int flag %q", name).
			Wrapf("value %q", text))
	}

	value := int(parsed)
	if value < minValue || value > maxValue {
		a.rep.errorf("Integer value '%s' for flag '%s' doesn't satisfy %d <= %d <= %d.",
			text, name, minValue, value, maxValue)
		a.rep.abort(MakeError(ErrOutOfRange).
			Wrapf("int flag %q", name).
			Wrapf("%d <= %d <= %d", minValue, value, maxValue))
	}

	return value
}

// Float returns the value of the named floating-point flag, parsed with the
// locale-independent [strconv.ParseFloat] and bounds-checked against
// [minValue, maxValue] inclusive. A NaN value is always out of range,
// whatever the bounds.
//
// Only an absent flag yields def (after the same bounds check). A flag
// present without a value hands the empty string to the parser, which
// rejects it: the asymmetry with [Args.Int] is deliberate and long-standing.
func (a Args) Float(name string, def, minValue, maxValue float64) float64 {
	text, ok := a.Find(name)
	if !ok {
		if def < minValue || def > maxValue {
			a.rep.errorf("Must specify a value for float flag '%s'.", name)
			a.rep.abort(MakeError(ErrMissingValue).Wrapf("float flag %q", name))
		}

		return def
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		a.rep.errorf("Got non-float value '%s' for float flag '%s'.", text, name)
		a.rep.abort(MakeError(ErrInvalidFloat).
			Wrapf("float flag %q", name).
			Wrapf("value %q", text))
	}

	if value < minValue || value > maxValue || math.IsNaN(value) {
		a.rep.errorf("Float value '%s' for flag '%s' doesn't satisfy %v <= %v <= %v.",
			text, name, minValue, value, maxValue)
		a.rep.abort(MakeError(ErrOutOfRange).
			Wrapf("float flag %q", name).
			Wrapf("%v <= %v <= %v", minValue, value, maxValue))
	}

	return value
}

// Enum returns the index of the named flag's value within values, matched
// exactly (never by prefix) in order.
//
// When the flag is absent, defIndex is returned if it is non-negative;
// otherwise the missing value is fatal. An unmatched value is fatal. Both
// fatal diagnostics list every allowed value, marking the entry at defIndex
// as the default.
func (a Args) Enum(name string, defIndex int, values ...string) int {
	text, ok := a.Find(name)

	var err Error

	switch {
	case !ok && defIndex >= 0:
		return defIndex

	case !ok:
		a.rep.errorf("Must specify a value for enum flag '%s'.", name)
		err = MakeError(ErrMissingValue).Wrapf("enum flag %q", name)

	default:
		for i, value := range values {
			if value == text {
				return i
			}
		}

		a.rep.errorf("Unrecognized value '%s' for enum flag '%s'.", text, name)
		err = MakeError(ErrUnknownValue).
			Wrapf("enum flag %q", name).
			Wrapf("value %q", text)
	}

	a.rep.errorf("Recognized values are:")

	for i, value := range values {
		if i == defIndex {
			a.rep.errorf("    '%s' (default)", value)
		} else {
			a.rep.errorf("    '%s'", value)
		}
	}

	a.rep.abort(err)

	return -1 // not reached
}
