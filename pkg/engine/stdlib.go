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
	"crypto/sha1" //nolint:gosec // SHA-1 is a supported legacy mechanism
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

func init() {
	MustRegister("sha1", sha1.Size, func() (hash.Hash, error) {
		return sha1.New(), nil //nolint:gosec
	})
	MustRegister("sha224", sha256.Size224, func() (hash.Hash, error) {
		return sha256.New224(), nil
	})
	MustRegister("sha256", sha256.Size, func() (hash.Hash, error) {
		return sha256.New(), nil
	})
	MustRegister("sha384", sha512.Size384, func() (hash.Hash, error) {
		return sha512.New384(), nil
	})
	MustRegister("sha512", sha512.Size, func() (hash.Hash, error) {
		return sha512.New(), nil
	})
	MustRegister("sha512/224", sha512.Size224, func() (hash.Hash, error) {
		return sha512.New512_224(), nil
	})
	MustRegister("sha512/256", sha512.Size256, func() (hash.Hash, error) {
		return sha512.New512_256(), nil
	})
}
