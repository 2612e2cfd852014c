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

	"golang.org/x/crypto/sha3"
)

func init() {
	MustRegister("sha3-224", 28, func() (hash.Hash, error) {
		return sha3.New224(), nil
	})
	MustRegister("sha3-256", 32, func() (hash.Hash, error) {
		return sha3.New256(), nil
	})
	MustRegister("sha3-384", 48, func() (hash.Hash, error) {
		return sha3.New384(), nil
	})
	MustRegister("sha3-512", 64, func() (hash.Hash, error) {
		return sha3.New512(), nil
	})
}
