package core

import "errors"

// Sentinel errors shared by all engine packages. Failures wrap one of these
// so callers can classify them with errors.Is regardless of which package
// reported the violation.
var (
	// ErrInvalidArgument reports a precondition violation on a scalar
	// argument: non-positive durations or rates, duty cycles outside [0,1],
	// non-binary gate values, and similar.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDegenerate reports an arithmetically degenerate input, such as
	// normalizing an identically zero signal.
	ErrDegenerate = errors.New("degenerate input")

	// ErrLengthMismatch reports a per-sample parameter or companion signal
	// whose length does not satisfy the requirement of the operation it
	// modulates.
	ErrLengthMismatch = errors.New("length mismatch")
)
