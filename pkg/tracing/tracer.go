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

// Package tracing provides span-based tracing for digest runs. The default
// build uses a no-op tracer with zero overhead; building with -tags=otel
// enables OTLP export configured from the standard OTEL_* environment
// variables.
package tracing

import "context"

// Span is a named, timed operation within a trace. End must be called when
// the operation completes.
type Span interface {
	// SetAttribute attaches a key-value attribute to the span.
	SetAttribute(key string, value interface{})
	// End marks the span as finished.
	End()
}

// Tracer creates spans. A no-op implementation is used when OpenTelemetry
// is not built in or not configured, so callers never branch.
type Tracer interface {
	// Start begins a span; the returned context carries it to child calls.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// NoopSpan is a Span that does nothing.
type NoopSpan struct{}

// SetAttribute is a no-op.
func (NoopSpan) SetAttribute(string, interface{}) {}

// End is a no-op.
func (NoopSpan) End() {}

// NoopTracer is a Tracer producing no-op spans.
type NoopTracer struct{}

// Start returns the context unchanged and a no-op span.
func (NoopTracer) Start(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, NoopSpan{}
}

var globalTracer Tracer = NoopTracer{}

// SetTracer installs the global tracer. Passing nil restores the no-op
// tracer. Typically called once at startup after InitFromEnv.
func SetTracer(t Tracer) {
	if t == nil {
		globalTracer = NoopTracer{}
		return
	}
	globalTracer = t
}

// Enabled reports whether a real (non-noop) tracer is installed. In the
// default build this is always false.
func Enabled() bool {
	_, noop := globalTracer.(NoopTracer)
	return !noop
}

// Start begins a span on the global tracer.
func Start(ctx context.Context, name string) (context.Context, Span) {
	return globalTracer.Start(ctx, name)
}

// Run wraps fn in a span with the given name and attributes, ending the
// span when fn returns. With no real tracer installed, fn runs directly.
func Run(ctx context.Context, name string, attrs map[string]interface{}, fn func(context.Context) error) error {
	if !Enabled() {
		return fn(ctx)
	}
	ctx, span := globalTracer.Start(ctx, name)
	defer span.End()
	for k, v := range attrs {
		span.SetAttribute(k, v)
	}
	return fn(ctx)
}
