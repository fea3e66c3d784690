/*
   Copyright The mellow Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package wrap produces assertion values bound to a failure sink, memoizing the per-type synthesis
// step so that it runs at most once per (capability, subject) pair for the lifetime of a factory.
// Synthesis failures are setup defects: they are returned to the caller immediately and are never
// collected.
package wrap

import (
	"errors"
	"fmt"

	"github.com/mellowtest/mellow/engine"
	"github.com/mellowtest/mellow/tt"
)

// ErrWrongCapability is returned by the typed Instance when the builder cached for a
// (capability, subject) pair produces a different type than requested - two descriptors are
// sharing tags they should not share.
var ErrWrongCapability = errors.New("cached builder does not produce the requested capability")

// Builder produces an assertion value for a subject. The sink binding happened at synthesis time.
type Builder func(subject any) (any, error)

// Descriptor tells a factory how to synthesize a capability for a subject type.
// Capability and Subject are stable tags chosen by the descriptor author; together they key the
// factory cache.
type Descriptor struct {
	Capability string
	Subject    string
	Synthesize func(sink engine.Sink) (Builder, error)
}

type key struct {
	capability string
	subject    string
}

// Factory builds assertion values bound to its sink, reusing synthesized builders: at most one
// synthesis per distinct (capability, subject) pair.
// A factory belongs to one session and is not meant for concurrent use.
type Factory struct {
	sink    engine.Sink
	entries map[key]Builder
}

// New creates a factory binding every assertion value it builds to sink.
func New(sink engine.Sink) *Factory {
	return &Factory{
		sink:    sink,
		entries: map[key]Builder{},
	}
}

// Hard returns a factory whose assertion values fail the test immediately, so the same assertion
// types serve both deferred and immediate use.
func Hard(testing tt.T) *Factory {
	return New(engine.FailNow(testing))
}

// Instance returns an assertion value exposing the descriptor's capability for subject.
// A builder cached for the pair is reused; otherwise the descriptor synthesizes one first.
func (f *Factory) Instance(descriptor Descriptor, subject any) (any, error) {
	entry := key{capability: descriptor.Capability, subject: descriptor.Subject}

	builder, ok := f.entries[entry]
	if !ok {
		var err error

		builder, err = descriptor.Synthesize(f.sink)
		if err != nil {
			return nil, fmt.Errorf("synthesizing %s for subject %s: %w",
				descriptor.Capability, descriptor.Subject, err)
		}

		f.entries[entry] = builder
	}

	return builder(subject)
}

// Typed is a typed view over a Descriptor, for use with the package-level Instance.
type Typed[A any] struct {
	Capability string
	Subject    string
	Synthesize func(sink engine.Sink) (func(subject any) (A, error), error)
}

// Instance is the typed front-end to Factory.Instance.
func Instance[A any](f *Factory, descriptor Typed[A], subject any) (A, error) {
	var zero A

	value, err := f.Instance(Descriptor{
		Capability: descriptor.Capability,
		Subject:    descriptor.Subject,
		Synthesize: func(sink engine.Sink) (Builder, error) {
			builder, err := descriptor.Synthesize(sink)
			if err != nil {
				return nil, err
			}

			return func(subject any) (any, error) {
				return builder(subject)
			}, nil
		},
	}, subject)
	if err != nil {
		return zero, err
	}

	typed, ok := value.(A)
	if !ok {
		return zero, fmt.Errorf("%w: %s/%s built %T",
			ErrWrongCapability, descriptor.Capability, descriptor.Subject, value)
	}

	return typed, nil
}
