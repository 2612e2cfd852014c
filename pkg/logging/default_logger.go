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

package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var _ Logger = (*DefaultLogger)(nil)

// Options configures a DefaultLogger.
type Options struct {
	// Level is the minimum level to emit. The zero value is LevelDebug;
	// set it explicitly.
	Level Level
	// Format selects text or JSON output. Ignored when Formatter is set.
	Format Format
	// Formatter overrides the formatter derived from Format.
	Formatter Formatter
	// Output is the destination writer. Defaults to os.Stderr.
	Output io.Writer
	// TimeFormat is the timestamp layout for text output; empty disables
	// timestamps there. JSON output always carries a timestamp.
	TimeFormat string
	// ShowLevel prefixes text output with the level name.
	ShowLevel bool
}

// DefaultLogger is the built-in Logger implementation.
type DefaultLogger struct {
	mu        sync.Mutex
	level     Level
	formatter Formatter
	out       io.Writer
	fields    map[string]interface{}
}

// New creates a DefaultLogger from opts.
func New(opts Options) *DefaultLogger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	formatter := opts.Formatter
	if formatter == nil {
		switch opts.Format {
		case FormatJSON:
			formatter = &JSONFormatter{TimeFormat: opts.TimeFormat}
		default:
			formatter = &TextFormatter{TimeFormat: opts.TimeFormat, ShowLevel: opts.ShowLevel}
		}
	}
	return &DefaultLogger{
		level:     opts.Level,
		formatter: formatter,
		out:       out,
	}
}

// Nop returns a logger that discards everything.
func Nop() *DefaultLogger {
	return New(Options{Level: LevelSilent, Output: io.Discard})
}

// SetLevel changes the minimum level to emit.
func (l *DefaultLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// WithField returns a Logger attaching the key-value pair to every entry.
// The receiver is not modified.
func (l *DefaultLogger) WithField(key string, value interface{}) Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	fields := make(map[string]interface{}, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value
	return &DefaultLogger{
		level:     l.level,
		formatter: l.formatter,
		out:       l.out,
		fields:    fields,
	}
}

// Debugf implements Logger.
func (l *DefaultLogger) Debugf(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Infof implements Logger.
func (l *DefaultLogger) Infof(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Warnf implements Logger.
func (l *DefaultLogger) Warnf(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Errorf implements Logger.
func (l *DefaultLogger) Errorf(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

func (l *DefaultLogger) log(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}
	entry := Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   fmt.Sprintf(format, args...),
		Fields:    l.fields,
	}
	data, err := l.formatter.Format(entry)
	if err != nil {
		fmt.Fprintf(l.out, "logging error: %v\n", err)
		return
	}
	_, _ = l.out.Write(data)
}
