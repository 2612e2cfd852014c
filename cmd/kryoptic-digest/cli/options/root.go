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

// Package options defines the command-line options and flags for the
// kryoptic-digest CLI.
package options

import (
	"github.com/spf13/cobra"

	"github.com/fitzsim/kryoptic/pkg/logging"
)

// Interface is implemented by every option group that registers flags.
type Interface interface {
	AddFlags(cmd *cobra.Command)
}

// ValidLogLevels lists the accepted --log-level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "silent"}

// ValidLogFormats lists the accepted --log-format values.
var ValidLogFormats = []string{"text", "json"}

// RootOptions holds flags available on every subcommand.
type RootOptions struct {
	// OutputFile redirects command output to a file instead of stdout.
	OutputFile string
	// LogLevel is the minimum log level (debug, info, warn, error, silent).
	LogLevel string
	// LogFormat is the log output format (text, json).
	LogFormat string
}

var _ Interface = (*RootOptions)(nil)

// AddFlags registers the root-level persistent flags.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.OutputFile, "output-file", "",
		"write command output to a file")

	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "info",
		"set the minimum log level (debug, info, warn, error, silent)")

	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", "text",
		"set the log output format (text, json)")
}

// GetLogLevel returns the parsed log level.
func (o *RootOptions) GetLogLevel() logging.Level {
	return logging.ParseLevel(o.LogLevel)
}

// NewLogger builds a logger from the root options.
func (o *RootOptions) NewLogger() logging.Logger {
	return logging.New(logging.Options{
		Level:     o.GetLogLevel(),
		Format:    logging.ParseFormat(o.LogFormat),
		ShowLevel: true,
	})
}
