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
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Entry is a structured log entry handed to a Formatter.
type Entry struct {
	// Timestamp is when the entry was created.
	Timestamp time.Time
	// Level is the entry's severity.
	Level Level
	// Message is the rendered log message.
	Message string
	// Fields holds structured key-value pairs attached to the entry.
	Fields map[string]interface{}
}

// Formatter renders an Entry into output bytes.
type Formatter interface {
	Format(entry Entry) ([]byte, error)
}

// TextFormatter renders human-readable text.
type TextFormatter struct {
	// TimeFormat is the timestamp layout; empty disables timestamps.
	TimeFormat string
	// ShowLevel prefixes the message with the upper-cased level.
	ShowLevel bool
}

// Format implements Formatter.
func (f *TextFormatter) Format(entry Entry) ([]byte, error) {
	var b strings.Builder
	if f.TimeFormat != "" {
		b.WriteString(entry.Timestamp.Format(f.TimeFormat))
		b.WriteByte(' ')
	}
	if f.ShowLevel {
		fmt.Fprintf(&b, "[%s] ", strings.ToUpper(entry.Level.String()))
	}
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" {")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, entry.Fields[k])
		}
		b.WriteByte('}')
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

type jsonEntry struct {
	Timestamp string                 `json:"timestamp,omitempty"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// JSONFormatter renders one JSON object per entry.
type JSONFormatter struct {
	// TimeFormat is the timestamp layout; defaults to time.RFC3339.
	TimeFormat string
}

// Format implements Formatter.
func (f *JSONFormatter) Format(entry Entry) ([]byte, error) {
	layout := f.TimeFormat
	if layout == "" {
		layout = time.RFC3339
	}
	je := jsonEntry{
		Timestamp: entry.Timestamp.Format(layout),
		Level:     entry.Level.String(),
		Message:   entry.Message,
	}
	if len(entry.Fields) > 0 {
		je.Fields = entry.Fields
	}
	data, err := json.Marshal(je)
	if err != nil {
		return nil, fmt.Errorf("marshaling log entry: %w", err)
	}
	return append(data, '\n'), nil
}
