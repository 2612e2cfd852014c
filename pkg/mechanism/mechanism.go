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

// Package mechanism defines the enumerated digest mechanism identifiers
// accepted by hash operations and resolves them to engine algorithm names.
//
// A mechanism identifier is an opaque tag naming a digest algorithm as seen
// by callers of the token API. Resolution to the engine's algorithm
// vocabulary happens exactly once, when an operation is constructed.
package mechanism

import (
	"fmt"
	"strings"
)

// ID identifies a digest mechanism. The zero value is not a valid mechanism.
type ID int

const (
	// Unknown is the invalid zero mechanism.
	Unknown ID = iota

	// SHA1 is the SHA-1 digest mechanism (20-byte output).
	SHA1
	// SHA224 is the SHA-224 digest mechanism.
	SHA224
	// SHA256 is the SHA-256 digest mechanism.
	SHA256
	// SHA384 is the SHA-384 digest mechanism.
	SHA384
	// SHA512 is the SHA-512 digest mechanism.
	SHA512
	// SHA512T224 is the SHA-512/224 truncated digest mechanism.
	SHA512T224
	// SHA512T256 is the SHA-512/256 truncated digest mechanism.
	SHA512T256
	// SHA3_224 is the SHA3-224 digest mechanism.
	SHA3_224
	// SHA3_256 is the SHA3-256 digest mechanism.
	SHA3_256
	// SHA3_384 is the SHA3-384 digest mechanism.
	SHA3_384
	// SHA3_512 is the SHA3-512 digest mechanism.
	SHA3_512
	// BLAKE2B_256 is the BLAKE2b digest mechanism with 32-byte output.
	BLAKE2B_256
	// BLAKE2B_512 is the BLAKE2b digest mechanism with 64-byte output.
	BLAKE2B_512
)

// names maps each mechanism to its canonical name, which doubles as the
// engine algorithm name. Every supported mechanism has an entry; Resolve is
// total over the ID space because absence means "unsupported".
var names = map[ID]string{
	SHA1:        "sha1",
	SHA224:      "sha224",
	SHA256:      "sha256",
	SHA384:      "sha384",
	SHA512:      "sha512",
	SHA512T224:  "sha512/224",
	SHA512T256:  "sha512/256",
	SHA3_224:    "sha3-224",
	SHA3_256:    "sha3-256",
	SHA3_384:    "sha3-384",
	SHA3_512:    "sha3-512",
	BLAKE2B_256: "blake2b-256",
	BLAKE2B_512: "blake2b-512",
}

// ordered lists the supported mechanisms in a stable, documented order.
var ordered = []ID{
	SHA1,
	SHA224,
	SHA256,
	SHA384,
	SHA512,
	SHA512T224,
	SHA512T256,
	SHA3_224,
	SHA3_256,
	SHA3_384,
	SHA3_512,
	BLAKE2B_256,
	BLAKE2B_512,
}

// String returns the canonical lowercase name of the mechanism, or a
// formatted placeholder for unknown values.
func (id ID) String() string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("mechanism(%d)", int(id))
}

// Resolve maps a mechanism identifier to the digest engine's algorithm name.
//
// It is pure and total: every identifier either resolves or is rejected with
// an error. No state is retained between calls.
func Resolve(id ID) (string, error) {
	name, ok := names[id]
	if !ok {
		return "", fmt.Errorf("unsupported digest mechanism %v", id)
	}
	return name, nil
}

// Parse converts a mechanism name into its ID. Matching is case-insensitive
// and ignores surrounding whitespace. This is the inverse of String for all
// supported mechanisms.
func Parse(s string) (ID, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for id, name := range names {
		if name == want {
			return id, nil
		}
	}
	return Unknown, fmt.Errorf("unknown digest mechanism %q", s)
}

// Supported returns the supported mechanisms in a stable order.
func Supported() []ID {
	out := make([]ID, len(ordered))
	copy(out, ordered)
	return out
}
