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

// Package p11 translates between the module's mechanism identifiers and
// error kinds and the PKCS#11 vocabulary (CKM_* mechanism types, CKR_*
// return values) spoken at the token boundary.
//
// The core packages are free of PKCS#11 codes; only this boundary knows
// them. A session layer marshaling C_Digest* requests converts mechanism
// types on the way in with MechanismFromCode and folds errors to return
// values on the way out with ReturnCode.
package p11

import (
	"fmt"

	"github.com/miekg/pkcs11"

	"github.com/fitzsim/kryoptic/pkg/mechanism"
	"github.com/fitzsim/kryoptic/pkg/operation"
)

// Mechanism values past the range covered by the pkcs11 package's constant
// table. The SHA-3 and SHA-512/t values are the PKCS#11 v2.40-current
// assignments; BLAKE2b has no standard assignment and lives in the
// vendor-defined range.
const (
	ckmSHA3_224 = 0x000002B5
	ckmSHA3_256 = 0x000002B0
	ckmSHA3_384 = 0x000002C0
	ckmSHA3_512 = 0x000002D0

	ckmSHA512T224 = 0x00000048
	ckmSHA512T256 = 0x0000004C

	ckmBLAKE2B256 = pkcs11.CKM_VENDOR_DEFINED | 0x00000B21
	ckmBLAKE2B512 = pkcs11.CKM_VENDOR_DEFINED | 0x00000B22
)

// codes maps each supported mechanism to its CKM_* value. The two tables
// below are kept derived from this one so they cannot drift.
var codes = map[mechanism.ID]uint{
	mechanism.SHA1:        pkcs11.CKM_SHA_1,
	mechanism.SHA224:      pkcs11.CKM_SHA224,
	mechanism.SHA256:      pkcs11.CKM_SHA256,
	mechanism.SHA384:      pkcs11.CKM_SHA384,
	mechanism.SHA512:      pkcs11.CKM_SHA512,
	mechanism.SHA512T224:  ckmSHA512T224,
	mechanism.SHA512T256:  ckmSHA512T256,
	mechanism.SHA3_224:    ckmSHA3_224,
	mechanism.SHA3_256:    ckmSHA3_256,
	mechanism.SHA3_384:    ckmSHA3_384,
	mechanism.SHA3_512:    ckmSHA3_512,
	mechanism.BLAKE2B_256: ckmBLAKE2B256,
	mechanism.BLAKE2B_512: ckmBLAKE2B512,
}

var ids = func() map[uint]mechanism.ID {
	m := make(map[uint]mechanism.ID, len(codes))
	for id, code := range codes {
		m[code] = id
	}
	return m
}()

// MechanismCode returns the CKM_* mechanism type for a mechanism identifier.
func MechanismCode(id mechanism.ID) (uint, error) {
	code, ok := codes[id]
	if !ok {
		return 0, fmt.Errorf("no PKCS#11 mechanism type for %v", id)
	}
	return code, nil
}

// MechanismFromCode returns the mechanism identifier for a CKM_* mechanism
// type, or an error if the type names no supported digest mechanism.
func MechanismFromCode(code uint) (mechanism.ID, error) {
	id, ok := ids[code]
	if !ok {
		return mechanism.Unknown, fmt.Errorf("unsupported PKCS#11 digest mechanism 0x%08X", code)
	}
	return id, nil
}

// ReturnCode folds an operation error into a CKR_* return value. A nil
// error is CKR_OK. Errors that are not operation errors fold to
// CKR_FUNCTION_FAILED.
func ReturnCode(err error) uint {
	if err == nil {
		return pkcs11.CKR_OK
	}
	switch {
	case operation.IsKind(err, operation.KindUnsupportedMechanism):
		return pkcs11.CKR_MECHANISM_INVALID
	case operation.IsKind(err, operation.KindNotInitialized):
		return pkcs11.CKR_OPERATION_NOT_INITIALIZED
	case operation.IsKind(err, operation.KindLengthMismatch):
		return pkcs11.CKR_GENERAL_ERROR
	case operation.IsKind(err, operation.KindEngineFailure):
		return pkcs11.CKR_DEVICE_ERROR
	default:
		return pkcs11.CKR_FUNCTION_FAILED
	}
}
