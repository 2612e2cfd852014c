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

package options

import (
	"github.com/spf13/cobra"
)

// DefaultChunkSize is the read size used when streaming input into the
// digest operation.
const DefaultChunkSize = 64 * 1024

// DigestOptions holds flags for the digest subcommand.
type DigestOptions struct {
	// Mechanism names the digest mechanism to run (e.g. "sha256").
	Mechanism string
	// OneShot reads each input fully into memory and uses the one-shot
	// digest path instead of streaming updates.
	OneShot bool
	// ChunkSize is the read size for the streaming path.
	ChunkSize int
}

var _ Interface = (*DigestOptions)(nil)

// AddFlags registers the digest subcommand flags.
func (o *DigestOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Mechanism, "mechanism", "m", "sha256",
		"digest mechanism to use (see the mechanisms subcommand)")

	cmd.Flags().BoolVar(&o.OneShot, "one-shot", false,
		"read each input fully and digest it in a single call")

	cmd.Flags().IntVar(&o.ChunkSize, "chunk-size", DefaultChunkSize,
		"read size in bytes for streaming digests")
}
