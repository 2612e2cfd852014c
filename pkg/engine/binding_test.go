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
	"bytes"
	"encoding/hex"
	"errors"
	"hash"
	"testing"
)

// Known-answer digests of "abc" for every built-in algorithm.
var abcVectors = map[string]string{
	"sha1":        "a9993e364706816aba3e25717850c26c9cd0d89d",
	"sha224":      "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7",
	"sha256":      "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	"sha384":      "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7",
	"sha512":      "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
	"sha512/224":  "4634270f707b6a54daae7530460842e20e37ed265ceee9a43e8924aa",
	"sha512/256":  "53048e2681941ef99b2e29b76b4c7dabe4c2d0c634fc6d46e0e2f13107e7af23",
	"sha3-224":    "e642824c3f8cf24ad09234ee7d3c766fc9a3a5168d0c94ad73b46fdf",
	"sha3-256":    "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
	"sha3-384":    "ec01498288516fc926459f58e2c6ad8df9b473cb0fc08c2596da7cf0e49be4b298d88cea927ac7f539f1edf228376d25",
	"sha3-512":    "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0",
	"blake2b-256": "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319",
	"blake2b-512": "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923",
}

func TestNewBinding_Unknown(t *testing.T) {
	if _, err := NewBinding("md5"); err == nil {
		t.Error("NewBinding(\"md5\") succeeded, want error")
	}
}

func TestOneShot_KnownAnswers(t *testing.T) {
	for name, want := range abcVectors {
		b, err := NewBinding(name)
		if err != nil {
			t.Errorf("NewBinding(%q) error = %v", name, err)
			continue
		}
		out := make([]byte, b.OutputLength())
		if err := b.OneShot([]byte("abc"), out); err != nil {
			t.Errorf("OneShot(%q) error = %v", name, err)
			continue
		}
		if got := hex.EncodeToString(out); got != want {
			t.Errorf("%s(abc) = %s, want %s", name, got, want)
		}
	}
}

func TestOneShot_Aliasing(t *testing.T) {
	b, err := NewBinding("sha256")
	if err != nil {
		t.Fatalf("NewBinding error = %v", err)
	}

	// Digest a buffer into itself: the input occupies the first 3 bytes
	// of the same backing array the output is written to.
	buf := make([]byte, b.OutputLength())
	copy(buf, "abc")
	if err := b.OneShot(buf[:3], buf); err != nil {
		t.Fatalf("OneShot error = %v", err)
	}

	want, _ := hex.DecodeString(abcVectors["sha256"])
	if !bytes.Equal(buf, want) {
		t.Errorf("aliased OneShot = %x, want %x", buf, want)
	}
}

func TestStreaming_MatchesOneShot(t *testing.T) {
	b, err := NewBinding("sha256")
	if err != nil {
		t.Fatalf("NewBinding error = %v", err)
	}
	if err := b.Init(); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	if err := b.Update([]byte("a")); err != nil {
		t.Fatalf("Update error = %v", err)
	}
	if err := b.Update([]byte("bc")); err != nil {
		t.Fatalf("Update error = %v", err)
	}
	out := make([]byte, b.OutputLength())
	if err := b.Finalize(out); err != nil {
		t.Fatalf("Finalize error = %v", err)
	}
	if got := hex.EncodeToString(out); got != abcVectors["sha256"] {
		t.Errorf("streamed sha256(abc) = %s, want %s", got, abcVectors["sha256"])
	}
}

func TestInit_ResetsContext(t *testing.T) {
	b, err := NewBinding("sha256")
	if err != nil {
		t.Fatalf("NewBinding error = %v", err)
	}
	if err := b.Init(); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	if err := b.Update([]byte("junk")); err != nil {
		t.Fatalf("Update error = %v", err)
	}

	// Re-init discards the accumulated state.
	if err := b.Init(); err != nil {
		t.Fatalf("second Init error = %v", err)
	}
	if err := b.Update([]byte("abc")); err != nil {
		t.Fatalf("Update error = %v", err)
	}
	out := make([]byte, b.OutputLength())
	if err := b.Finalize(out); err != nil {
		t.Fatalf("Finalize error = %v", err)
	}
	if got := hex.EncodeToString(out); got != abcVectors["sha256"] {
		t.Errorf("sha256 after re-Init = %s, want %s", got, abcVectors["sha256"])
	}
}

func TestFinalize_LengthCheck(t *testing.T) {
	b, err := NewBinding("sha256")
	if err != nil {
		t.Fatalf("NewBinding error = %v", err)
	}
	if err := b.Init(); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	if err := b.Update([]byte("abc")); err != nil {
		t.Fatalf("Update error = %v", err)
	}
	if err := b.Finalize(make([]byte, 16)); err == nil {
		t.Error("Finalize with short buffer succeeded, want error")
	}
}

// faultyHash fails Write after a configurable number of calls, to exercise
// the engine failure paths.
type faultyHash struct {
	hash.Hash
	failAfter int
	calls     int
}

var errFaulty = errors.New("simulated engine failure")

func (f *faultyHash) Write(p []byte) (int, error) {
	f.calls++
	if f.calls > f.failAfter {
		return 0, errFaulty
	}
	return f.Hash.Write(p)
}

func TestUpdate_PropagatesEngineFailure(t *testing.T) {
	const name = "test-faulty-binding"
	MustRegister(name, 32, func() (hash.Hash, error) {
		inner, _ := Lookup("sha256")
		h, err := inner.factory()
		if err != nil {
			return nil, err
		}
		return &faultyHash{Hash: h, failAfter: 1}, nil
	})
	defer func() {
		_ = Unregister(name)
	}()

	b, err := NewBinding(name)
	if err != nil {
		t.Fatalf("NewBinding error = %v", err)
	}
	if err := b.Init(); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	if err := b.Update([]byte("ok")); err != nil {
		t.Fatalf("first Update error = %v", err)
	}
	err = b.Update([]byte("boom"))
	if err == nil {
		t.Fatal("second Update succeeded, want error")
	}
	if !errors.Is(err, errFaulty) {
		t.Errorf("Update error = %v, want wrapped %v", err, errFaulty)
	}
}
