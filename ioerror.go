// SPDX-License-Identifier: MIT
// Source: github.com/toxicfrazzles/tamp

package tamp

import (
	"fmt"

	"github.com/pkg/errors"
)

// wrapIOError annotates an underlying source/sink failure with context (via
// github.com/pkg/errors, for a stack trace on %+v) while keeping
// errors.Is(err, ErrIO) true for callers that only care about the kind.
func wrapIOError(cause error, context string) error {
	if cause == nil {
		return nil
	}
	return &ioError{cause: errors.Wrap(cause, context)}
}

type ioError struct {
	cause error
}

func (e *ioError) Error() string {
	return fmt.Sprintf("%s: %v", ErrIO, e.cause)
}

func (e *ioError) Unwrap() error {
	return e.cause
}

func (e *ioError) Is(target error) bool {
	return target == ErrIO
}
