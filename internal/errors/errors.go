// Package errors is the single import for error handling in this module: matching
// comes from the standard library, construction and wrapping from pkg/errors so
// every error created here records where it came from.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Matching helpers, straight from the standard library.
var (
	Is     = stderrors.Is
	As     = stderrors.As
	Join   = stderrors.Join
	Unwrap = stderrors.Unwrap
)

// Constructors and annotators that capture a stack trace.
var (
	New       = pkgerrors.New
	Errorf    = pkgerrors.Errorf
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
)

// IsAny reports whether err matches at least one of targets.
func IsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if stderrors.Is(err, target) {
			return true
		}
	}

	return false
}
