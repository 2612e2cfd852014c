// Copyright 2026 The Kryoptic Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"errors"
	"fmt"
)

// Kind categorizes operation errors so callers can distinguish misuse of
// the API (retryable after a Reset) from failures of the digest engine
// itself (abort the operation).
type Kind int

const (
	// KindUnknown indicates an unclassified error.
	KindUnknown Kind = iota

	// KindUnsupportedMechanism indicates the mechanism identifier has no
	// corresponding digest algorithm. Raised only at construction.
	KindUnsupportedMechanism

	// KindNotInitialized indicates a call was made in a state that forbids
	// it: one-shot digest after streaming started or after finalization,
	// update/finalize after finalization, or finalize before any update.
	KindNotInitialized

	// KindLengthMismatch indicates a supplied output buffer's length does
	// not equal the algorithm's fixed digest length, or the engine reported
	// success with an unexpected output length.
	KindLengthMismatch

	// KindEngineFailure indicates the underlying digest engine reported
	// failure. Fatal for the current operation but not for the process.
	KindEngineFailure
)

// String returns a human-readable name for the error kind.
func (k Kind) String() string {
	switch k {
	case KindUnsupportedMechanism:
		return "UnsupportedMechanism"
	case KindNotInitialized:
		return "OperationNotInitialized"
	case KindLengthMismatch:
		return "LengthMismatch"
	case KindEngineFailure:
		return "EngineFailure"
	default:
		return "UnknownError"
	}
}

// Error is the structured error type returned by hash operations.
//
// Callers can branch on the kind without parsing messages:
//
//	var opErr *operation.Error
//	if errors.As(err, &opErr) && opErr.Kind == operation.KindEngineFailure {
//	    // abort rather than reset-and-retry
//	}
type Error struct {
	// Kind categorizes the error for programmatic handling.
	Kind Kind

	// Message is a human-readable description of what went wrong.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for error chain unwrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// newError creates an Error with no underlying cause.
func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// wrapError creates an Error wrapping an underlying cause.
func wrapError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// IsKind reports whether err is (or wraps) an operation Error of the given
// kind.
func IsKind(err error, kind Kind) bool {
	var opErr *Error
	if errors.As(err, &opErr) {
		return opErr.Kind == kind
	}
	return false
}
