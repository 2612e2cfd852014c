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

// Package operation implements the stateful digest operation exposed to the
// token's session layer.
//
// An Operation runs exactly one digest computation per lifecycle: either a
// single one-shot Digest call, or one or more DigestUpdate calls followed by
// one DigestFinal. The two modes are mutually exclusive; once either
// completes (or the engine fails mid-stream) the operation is finalized and
// rejects further input until Reset.
//
// Operations are not internally synchronized. An Operation may be moved
// between goroutines, but concurrent calls into the same instance require
// external mutual exclusion, typically the session lock one layer up.
package operation

import (
	"errors"
	"fmt"

	"github.com/fitzsim/kryoptic/pkg/engine"
	"github.com/fitzsim/kryoptic/pkg/mechanism"
)

// Digester is the digest surface consumed by the session layer.
type Digester interface {
	// Digest computes the digest of input into output in one shot.
	// input and output may alias the same memory.
	Digest(input, output []byte) error
	// DigestUpdate appends input to the streaming computation.
	DigestUpdate(input []byte) error
	// DigestFinal completes the streaming computation into output.
	DigestFinal(output []byte) error
	// DigestLen returns the algorithm's fixed output size in bytes.
	DigestLen() (int, error)
}

// Lifecycle is the mechanism/lifecycle introspection surface shared by all
// token operations.
type Lifecycle interface {
	// Mechanism returns the mechanism the operation was constructed with.
	Mechanism() (mechanism.ID, error)
	// Finalized reports whether the operation has reached its terminal state.
	Finalized() bool
	// Reset returns the operation to its initial, reusable state.
	Reset() error
}

// state is the operation lifecycle state. Exactly one of the three values
// holds at any time; the "finalized and mid-stream" combination expressible
// with a pair of flags does not exist here.
type state int

const (
	// stateIdle: no digesting has happened since construction or Reset.
	stateIdle state = iota
	// stateStreaming: at least one update has been accepted and the running
	// context is initialized.
	stateStreaming
	// stateFinalized: terminal until Reset. Entered on successful completion
	// of either mode, and forced on engine failure so a consumed or
	// corrupted context can never be reused.
	stateFinalized
)

// Operation is a single-algorithm digest session.
type Operation struct {
	mech    mechanism.ID
	binding *engine.Binding
	st      state
}

var (
	_ Digester  = (*Operation)(nil)
	_ Lifecycle = (*Operation)(nil)
)

// New constructs a digest operation for the given mechanism.
//
// The mechanism is resolved to an engine algorithm exactly once, here; an
// identifier with no corresponding algorithm fails with
// KindUnsupportedMechanism. Engine resources are allocated once and reused
// for the operation's lifetime, including across Resets.
func New(mech mechanism.ID) (*Operation, error) {
	name, err := mechanism.Resolve(mech)
	if err != nil {
		return nil, wrapError(KindUnsupportedMechanism, "resolving digest mechanism", err)
	}
	binding, err := engine.NewBinding(name)
	if err != nil {
		return nil, wrapError(KindEngineFailure, "binding digest engine", err)
	}
	return &Operation{
		mech:    mech,
		binding: binding,
		st:      stateIdle,
	}, nil
}

// Digest computes the digest of input into output in a single call.
//
// Valid only in the idle state: once streaming has started, or the
// operation is finalized, it fails with KindNotInitialized. output must be
// exactly DigestLen bytes (KindLengthMismatch otherwise, with no state
// change). input and output may overlap.
//
// The operation is marked finalized before the engine runs, so an engine
// failure leaves it terminal rather than retryable with a half-consumed
// buffer.
func (op *Operation) Digest(input, output []byte) error {
	if op.st != stateIdle {
		return newError(KindNotInitialized, "digest operation already in use")
	}
	if len(output) != op.binding.OutputLength() {
		return lengthError(len(output), op.binding.OutputLength())
	}
	op.st = stateFinalized
	if err := op.binding.OneShot(input, output); err != nil {
		return wrapEngineError("one-shot digest", err)
	}
	return nil
}

// DigestUpdate appends input to the streaming digest computation.
//
// The first call initializes the running context lazily, so one-shot-only
// callers never pay for it. Fails with KindNotInitialized once the
// operation is finalized. An engine failure on init or update forces the
// finalized state: the context's contents are unknown and must not be
// reused.
func (op *Operation) DigestUpdate(input []byte) error {
	switch op.st {
	case stateFinalized:
		return newError(KindNotInitialized, "digest operation already finalized")
	case stateIdle:
		if err := op.binding.Init(); err != nil {
			op.st = stateFinalized
			return wrapError(KindEngineFailure, "initializing digest context", err)
		}
		op.st = stateStreaming
	}
	if err := op.binding.Update(input); err != nil {
		op.st = stateFinalized
		return wrapError(KindEngineFailure, "digest update", err)
	}
	return nil
}

// DigestFinal completes the streaming computation into output.
//
// Valid only while streaming: before any update, or after finalization, it
// fails with KindNotInitialized. output must be exactly DigestLen bytes;
// a length mismatch is rejected before the operation is finalized, so the
// caller may retry with a correct buffer. As with Digest, the finalized
// flag is set before the engine call.
func (op *Operation) DigestFinal(output []byte) error {
	if op.st != stateStreaming {
		return newError(KindNotInitialized, "no streaming digest in progress")
	}
	if len(output) != op.binding.OutputLength() {
		return lengthError(len(output), op.binding.OutputLength())
	}
	op.st = stateFinalized
	if err := op.binding.Finalize(output); err != nil {
		return wrapEngineError("finalizing digest", err)
	}
	return nil
}

// DigestLen returns the algorithm's fixed digest length in bytes. It
// succeeds in every state.
func (op *Operation) DigestLen() (int, error) {
	return op.binding.OutputLength(), nil
}

// Mechanism returns the mechanism the operation was constructed with.
func (op *Operation) Mechanism() (mechanism.ID, error) {
	return op.mech, nil
}

// Finalized reports whether the operation is in its terminal state.
func (op *Operation) Finalized() bool {
	return op.st == stateFinalized
}

// Reset returns the operation to the idle state so the same allocated
// resources can run another, independent digest. The mechanism is not
// re-resolved. Reset is idempotent and never fails.
func (op *Operation) Reset() error {
	op.st = stateIdle
	return nil
}

// wrapEngineError classifies a failure reported by the engine binding. A
// completed digest of the wrong length is a length mismatch; everything
// else is an engine failure.
func wrapEngineError(msg string, err error) *Error {
	if errors.Is(err, engine.ErrUnexpectedLength) {
		return wrapError(KindLengthMismatch, msg, err)
	}
	return wrapError(KindEngineFailure, msg, err)
}

func lengthError(got, want int) *Error {
	return &Error{
		Kind:    KindLengthMismatch,
		Message: fmt.Sprintf("output buffer is %d bytes, want %d", got, want),
	}
}
