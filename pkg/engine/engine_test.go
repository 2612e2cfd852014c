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
	"crypto/sha256"
	"hash"
	"sort"
	"testing"
)

// The full built-in algorithm set, registered by the package init funcs.
var builtins = []struct {
	name string
	size int
}{
	{"sha1", 20},
	{"sha224", 28},
	{"sha256", 32},
	{"sha384", 48},
	{"sha512", 64},
	{"sha512/224", 28},
	{"sha512/256", 32},
	{"sha3-224", 28},
	{"sha3-256", 32},
	{"sha3-384", 48},
	{"sha3-512", 64},
	{"blake2b-256", 32},
	{"blake2b-512", 64},
}

func TestLookup_Builtins(t *testing.T) {
	for _, tt := range builtins {
		alg, err := Lookup(tt.name)
		if err != nil {
			t.Errorf("Lookup(%q) error = %v", tt.name, err)
			continue
		}
		if alg.Name() != tt.name {
			t.Errorf("Lookup(%q).Name() = %q", tt.name, alg.Name())
		}
		if alg.Size() != tt.size {
			t.Errorf("Lookup(%q).Size() = %d, want %d", tt.name, alg.Size(), tt.size)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, err := Lookup("md5"); err == nil {
		t.Error("Lookup(\"md5\") succeeded, want error")
	}
}

func TestRegister_Validation(t *testing.T) {
	factory := func() (hash.Hash, error) { return sha256.New(), nil }

	if err := Register("", 32, factory); err == nil {
		t.Error("Register with empty name succeeded, want error")
	}
	if err := Register("test-alg", 0, factory); err == nil {
		t.Error("Register with zero size succeeded, want error")
	}
	if err := Register("test-alg", 32, nil); err == nil {
		t.Error("Register with nil factory succeeded, want error")
	}
	if err := Register("sha256", 32, factory); err == nil {
		t.Error("Register of duplicate name succeeded, want error")
	}
}

func TestRegisterUnregister(t *testing.T) {
	const name = "test-register"
	if err := Register(name, sha256.Size, func() (hash.Hash, error) {
		return sha256.New(), nil
	}); err != nil {
		t.Fatalf("Register(%q) error = %v", name, err)
	}
	if !IsSupported(name) {
		t.Errorf("IsSupported(%q) = false after Register", name)
	}
	if err := Unregister(name); err != nil {
		t.Errorf("Unregister(%q) error = %v", name, err)
	}
	if IsSupported(name) {
		t.Errorf("IsSupported(%q) = true after Unregister", name)
	}
	if err := Unregister(name); err == nil {
		t.Error("second Unregister succeeded, want error")
	}
}

func TestSupported_Sorted(t *testing.T) {
	names := Supported()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Supported() not sorted: %v", names)
	}
	for _, tt := range builtins {
		found := false
		for _, name := range names {
			if name == tt.name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Supported() missing %q", tt.name)
		}
	}
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustRegister of duplicate did not panic")
		}
	}()
	MustRegister("sha256", 32, func() (hash.Hash, error) { return sha256.New(), nil })
}
