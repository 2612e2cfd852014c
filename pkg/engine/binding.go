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

package engine

import (
	"errors"
	"fmt"
	"hash"
)

// ErrUnexpectedLength reports that the engine completed a digest but
// produced a sum whose length disagrees with the algorithm's declared
// output size.
var ErrUnexpectedLength = errors.New("unexpected digest output length")

// Binding couples an algorithm handle with a running context for one hash
// operation. The binding exclusively owns both; it must not be shared
// between concurrent users. It may be moved between goroutines as long as
// calls into it are externally serialized.
type Binding struct {
	alg *Algorithm
	ctx hash.Hash
}

// NewBinding resolves the named algorithm and allocates a fresh, independent
// running context for it. The context starts in its initial (empty) state;
// Init must still be called before the first Update of each streaming
// sequence.
func NewBinding(name string) (*Binding, error) {
	alg, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	ctx, err := alg.factory()
	if err != nil {
		return nil, fmt.Errorf("allocating %s context: %w", name, err)
	}
	return &Binding{alg: alg, ctx: ctx}, nil
}

// Algorithm returns the bound algorithm handle.
func (b *Binding) Algorithm() *Algorithm {
	return b.alg
}

// OutputLength returns the algorithm's fixed digest length in bytes.
func (b *Binding) OutputLength() int {
	return b.alg.size
}

// OneShot computes the digest of input directly into output in a single
// call, leaving the running context untouched. The input and output slices
// may alias the same memory: the digest is accumulated in a transient
// context and only written to output once input has been fully consumed.
//
// output must be at least OutputLength bytes; exactly OutputLength bytes
// are written.
func (b *Binding) OneShot(input, output []byte) error {
	ctx, err := b.alg.factory()
	if err != nil {
		return fmt.Errorf("allocating %s context: %w", b.alg.name, err)
	}
	if _, err := ctx.Write(input); err != nil {
		return fmt.Errorf("%s digest failed: %w", b.alg.name, err)
	}
	sum := ctx.Sum(nil)
	if len(sum) != b.alg.size {
		return fmt.Errorf("%s produced %d bytes, want %d: %w", b.alg.name, len(sum), b.alg.size, ErrUnexpectedLength)
	}
	copy(output, sum)
	return nil
}

// Init prepares the running context for a fresh streaming sequence. It must
// be called before the first Update, and again before reusing the context
// after Finalize.
func (b *Binding) Init() error {
	ctx, err := b.alg.factory()
	if err != nil {
		return fmt.Errorf("initializing %s context: %w", b.alg.name, err)
	}
	b.ctx = ctx
	return nil
}

// Update appends chunk to the running context's accumulated state. If
// Update fails, the context is no longer usable for further updates until
// re-initialized.
func (b *Binding) Update(chunk []byte) error {
	if _, err := b.ctx.Write(chunk); err != nil {
		return fmt.Errorf("%s update failed: %w", b.alg.name, err)
	}
	return nil
}

// Finalize completes the streaming computation into output, which must be
// exactly OutputLength bytes. The running context is not valid for further
// updates afterward unless re-initialized.
func (b *Binding) Finalize(output []byte) error {
	if len(output) != b.alg.size {
		return fmt.Errorf("%s output buffer is %d bytes, want %d", b.alg.name, len(output), b.alg.size)
	}
	sum := b.ctx.Sum(nil)
	if len(sum) != b.alg.size {
		return fmt.Errorf("%s produced %d bytes, want %d: %w", b.alg.name, len(sum), b.alg.size, ErrUnexpectedLength)
	}
	copy(output, sum)
	return nil
}
