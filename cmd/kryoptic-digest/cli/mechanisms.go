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
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fitzsim/kryoptic/pkg/mechanism"
	"github.com/fitzsim/kryoptic/pkg/operation"
	"github.com/fitzsim/kryoptic/pkg/p11"
)

// Mechanisms creates the mechanisms subcommand, listing every supported
// digest mechanism with its output size and PKCS#11 mechanism type.
func Mechanisms() *cobra.Command {
	return &cobra.Command{
		Use:   "mechanisms",
		Short: "List supported digest mechanisms.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MECHANISM\tSIZE\tPKCS#11 TYPE")
			for _, mech := range mechanism.Supported() {
				op, err := operation.New(mech)
				if err != nil {
					return err
				}
				size, err := op.DigestLen()
				if err != nil {
					return err
				}
				code, err := p11.MechanismCode(mech)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%v\t%d\t0x%08X\n", mech, size, code)
			}
			return w.Flush()
		},
	}
}
