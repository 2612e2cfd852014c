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

package cli

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fitzsim/kryoptic/cmd/kryoptic-digest/cli/options"
	"github.com/fitzsim/kryoptic/pkg/logging"
	"github.com/fitzsim/kryoptic/pkg/mechanism"
	"github.com/fitzsim/kryoptic/pkg/operation"
	"github.com/fitzsim/kryoptic/pkg/tracing"
)

// Digest creates the digest subcommand.
func Digest() *cobra.Command {
	o := &options.DigestOptions{}

	long := `Compute the digest of files or standard input.

Each FILE is hashed independently with the selected mechanism and the
digest is printed in hex, one line per input. With no FILE, or when FILE
is -, standard input is read.

By default input is streamed through the digest operation in chunks;
--one-shot loads each input fully and digests it in a single call.`

	cmd := &cobra.Command{
		Use:   "digest [OPTIONS] [FILE...]",
		Short: "Compute the digest of files or standard input.",
		Long:  long,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigest(cmd.Context(), o, args)
		},
	}

	o.AddFlags(cmd)
	return cmd
}

func runDigest(ctx context.Context, o *options.DigestOptions, files []string) error {
	logger := ro.NewLogger()

	mech, err := mechanism.Parse(o.Mechanism)
	if err != nil {
		return err
	}
	if o.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", o.ChunkSize)
	}

	op, err := operation.New(mech)
	if err != nil {
		return err
	}
	size, err := op.DigestLen()
	if err != nil {
		return err
	}
	logger.Debugf("digest mechanism %v, output size %d bytes", mech, size)

	if len(files) == 0 {
		files = []string{"-"}
	}

	attrs := map[string]interface{}{
		"kryoptic.mechanism": mech.String(),
		"kryoptic.one_shot":  o.OneShot,
		"kryoptic.inputs":    len(files),
	}
	return tracing.Run(ctx, "Digest", attrs, func(_ context.Context) error {
		out := make([]byte, size)
		for _, name := range files {
			if err := digestOne(op, o, name, out, logger); err != nil {
				return err
			}
			// The operation is finalized after every input; reuse it for
			// the next one instead of constructing a fresh operation.
			if err := op.Reset(); err != nil {
				return err
			}
		}
		return nil
	})
}

// digestOne hashes a single named input (or stdin for "-") into out and
// prints the result.
func digestOne(op *operation.Operation, o *options.DigestOptions, name string, out []byte, logger logging.Logger) error {
	in := os.Stdin
	display := "-"
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
		display = name
	}

	if o.OneShot {
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("reading %s: %w", display, err)
		}
		if err := op.Digest(data, out); err != nil {
			return fmt.Errorf("digesting %s: %w", display, err)
		}
	} else {
		buf := make([]byte, o.ChunkSize)
		updated := false
		for {
			n, err := in.Read(buf)
			if n > 0 {
				if uerr := op.DigestUpdate(buf[:n]); uerr != nil {
					return fmt.Errorf("digesting %s: %w", display, uerr)
				}
				updated = true
			}
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return fmt.Errorf("reading %s: %w", display, err)
			}
		}
		// An empty input never saw an update; the streaming path requires
		// at least one, so feed it an empty chunk.
		if !updated {
			if err := op.DigestUpdate(nil); err != nil {
				return fmt.Errorf("digesting %s: %w", display, err)
			}
		}
		if err := op.DigestFinal(out); err != nil {
			return fmt.Errorf("digesting %s: %w", display, err)
		}
	}

	logger.Debugf("digested %s", display)
	fmt.Printf("%s  %s\n", hex.EncodeToString(out), display)
	return nil
}
