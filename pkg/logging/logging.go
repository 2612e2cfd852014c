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

// Package logging provides the structured, leveled logging used by the
// digest CLI and any embedding session layer. It defines a small Logger
// interface with a built-in implementation supporting text and JSON output;
// the core digest packages do not log.
package logging

import "strings"

// Level is the severity of a log message.
type Level int

const (
	// LevelDebug is the most verbose level.
	LevelDebug Level = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for potential problems.
	LevelWarn
	// LevelError is for failures.
	LevelError
	// LevelSilent disables all output.
	LevelSilent
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelSilent:
		return "silent"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name. Unrecognized names parse as LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "silent", "none", "off":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// Format selects the output rendering for log messages.
type Format int

const (
	// FormatText renders human-readable text.
	FormatText Format = iota
	// FormatJSON renders one JSON object per entry.
	FormatJSON
)

// ParseFormat parses a format name. Unrecognized names parse as FormatText.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Logger is the leveled logging interface. Implementations must be safe for
// concurrent use.
type Logger interface {
	// Debugf logs at debug level with printf-style formatting.
	Debugf(format string, args ...interface{})
	// Infof logs at info level.
	Infof(format string, args ...interface{})
	// Warnf logs at warn level.
	Warnf(format string, args ...interface{})
	// Errorf logs at error level.
	Errorf(format string, args ...interface{})

	// WithField returns a Logger attaching the key-value pair to every entry.
	WithField(key string, value interface{}) Logger
}

// Ensure returns l if non-nil, otherwise a default info-level logger.
func Ensure(l Logger) Logger {
	if l == nil {
		return New(Options{Level: LevelInfo})
	}
	return l
}
