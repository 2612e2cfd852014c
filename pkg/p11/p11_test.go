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

package p11

import (
	"errors"
	"fmt"
	"testing"

	"github.com/miekg/pkcs11"

	"github.com/fitzsim/kryoptic/pkg/mechanism"
	"github.com/fitzsim/kryoptic/pkg/operation"
)

func TestMechanismCode_RoundTrip(t *testing.T) {
	for _, mech := range mechanism.Supported() {
		code, err := MechanismCode(mech)
		if err != nil {
			t.Errorf("MechanismCode(%v) error = %v", mech, err)
			continue
		}
		back, err := MechanismFromCode(code)
		if err != nil {
			t.Errorf("MechanismFromCode(0x%08X) error = %v", code, err)
			continue
		}
		if back != mech {
			t.Errorf("round trip %v -> 0x%08X -> %v", mech, code, back)
		}
	}
}

func TestMechanismCode_WellKnown(t *testing.T) {
	tests := []struct {
		mech mechanism.ID
		want uint
	}{
		{mechanism.SHA1, pkcs11.CKM_SHA_1},
		{mechanism.SHA256, pkcs11.CKM_SHA256},
		{mechanism.SHA512, pkcs11.CKM_SHA512},
	}
	for _, tt := range tests {
		got, err := MechanismCode(tt.mech)
		if err != nil {
			t.Errorf("MechanismCode(%v) error = %v", tt.mech, err)
			continue
		}
		if got != tt.want {
			t.Errorf("MechanismCode(%v) = 0x%08X, want 0x%08X", tt.mech, got, tt.want)
		}
	}
}

func TestMechanismCode_Unknown(t *testing.T) {
	if _, err := MechanismCode(mechanism.Unknown); err == nil {
		t.Error("MechanismCode(Unknown) succeeded, want error")
	}
}

func TestMechanismFromCode_Unknown(t *testing.T) {
	if _, err := MechanismFromCode(pkcs11.CKM_AES_CBC); err == nil {
		t.Error("MechanismFromCode(CKM_AES_CBC) succeeded, want error")
	}
}

func TestReturnCode(t *testing.T) {
	notInit := &operation.Error{Kind: operation.KindNotInitialized, Message: "x"}
	tests := []struct {
		name string
		err  error
		want uint
	}{
		{"nil", nil, pkcs11.CKR_OK},
		{"unsupported mechanism",
			&operation.Error{Kind: operation.KindUnsupportedMechanism, Message: "x"},
			pkcs11.CKR_MECHANISM_INVALID},
		{"not initialized", notInit, pkcs11.CKR_OPERATION_NOT_INITIALIZED},
		{"length mismatch",
			&operation.Error{Kind: operation.KindLengthMismatch, Message: "x"},
			pkcs11.CKR_GENERAL_ERROR},
		{"engine failure",
			&operation.Error{Kind: operation.KindEngineFailure, Message: "x"},
			pkcs11.CKR_DEVICE_ERROR},
		{"wrapped operation error",
			fmt.Errorf("session 3: %w", notInit),
			pkcs11.CKR_OPERATION_NOT_INITIALIZED},
		{"plain error", errors.New("boom"), pkcs11.CKR_FUNCTION_FAILED},
	}
	for _, tt := range tests {
		if got := ReturnCode(tt.err); got != tt.want {
			t.Errorf("%s: ReturnCode = 0x%08X, want 0x%08X", tt.name, got, tt.want)
		}
	}
}
