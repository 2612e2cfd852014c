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

// Package engine provides the low-level digest engine the hash operation
// runs on: a registry of digest algorithms and a Binding type that owns an
// algorithm handle together with a running context for streaming use.
//
// Algorithms are registered by name. An Algorithm value is an immutable
// handle exposing the fixed digest size; the mutable accumulator state lives
// in the Binding that wraps it.
package engine

import (
	"fmt"
	"hash"
	"sort"
	"sync"
)

// FactoryFunc creates a fresh hash context for an algorithm.
type FactoryFunc func() (hash.Hash, error)

// Algorithm is an immutable handle for a registered digest algorithm.
// It is shared read-only between all bindings for that algorithm.
type Algorithm struct {
	name    string
	size    int
	factory FactoryFunc
}

// Name returns the canonical algorithm name (e.g. "sha256").
func (a *Algorithm) Name() string {
	return a.name
}

// Size returns the fixed digest output length in bytes.
func (a *Algorithm) Size() int {
	return a.size
}

var (
	mu       sync.RWMutex
	registry = make(map[string]*Algorithm)
)

// Register registers a digest algorithm under the given name.
//
// The name must be non-empty and unused, size must be positive, and factory
// must be non-nil. Names are case-sensitive.
func Register(name string, size int, factory FactoryFunc) error {
	mu.Lock()
	defer mu.Unlock()

	if name == "" {
		return fmt.Errorf("algorithm name cannot be empty")
	}
	if size <= 0 {
		return fmt.Errorf("algorithm %q: digest size must be positive, got %d", name, size)
	}
	if factory == nil {
		return fmt.Errorf("algorithm %q: factory cannot be nil", name)
	}
	if _, exists := registry[name]; exists {
		return fmt.Errorf("digest algorithm %q already registered", name)
	}

	registry[name] = &Algorithm{name: name, size: size, factory: factory}
	return nil
}

// MustRegister registers a digest algorithm or panics on error.
//
// Intended for package initialization, where a registration failure is a
// programming error that should be caught immediately.
func MustRegister(name string, size int, factory FactoryFunc) {
	if err := Register(name, size, factory); err != nil {
		panic(fmt.Sprintf("failed to register digest algorithm %q: %v", name, err))
	}
}

// Lookup returns the handle for a registered algorithm.
func Lookup(name string) (*Algorithm, error) {
	mu.RLock()
	alg, exists := registry[name]
	mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("unsupported digest algorithm: %s (supported: %v)",
			name, Supported())
	}
	return alg, nil
}

// Supported returns a sorted list of registered algorithm names.
func Supported() []string {
	mu.RLock()
	defer mu.RUnlock()

	algorithms := make([]string, 0, len(registry))
	for name := range registry {
		algorithms = append(algorithms, name)
	}
	sort.Strings(algorithms)
	return algorithms
}

// IsSupported reports whether an algorithm is registered.
func IsSupported(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, exists := registry[name]
	return exists
}

// Unregister removes an algorithm from the registry.
//
// This is primarily useful for testing. Returns an error if the algorithm
// is not registered.
func Unregister(name string) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[name]; !exists {
		return fmt.Errorf("digest algorithm %q not registered", name)
	}
	delete(registry, name)
	return nil
}
