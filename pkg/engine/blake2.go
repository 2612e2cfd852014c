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
	"hash"

	"golang.org/x/crypto/blake2b"
)

func init() {
	// Unkeyed BLAKE2b at the two common output sizes.
	MustRegister("blake2b-256", blake2b.Size256, func() (hash.Hash, error) {
		return blake2b.New256(nil)
	})
	MustRegister("blake2b-512", blake2b.Size, func() (hash.Hash, error) {
		return blake2b.New512(nil)
	})
}
