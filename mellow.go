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

// Package mellow implements soft assertions: assertion failures are collected instead of stopping
// the test, and a single checkpoint reports everything that failed as one aggregate error, each
// entry rewritten to point at the test line that produced it.
//
// Typical use:
//
//	session := mellow.New()
//	expect.String(session.Factory(), out).Contains("ok")
//	expect.Number(session.Factory(), code).IsEqualTo(0)
//	session.Verify(t)
package mellow

import (
	"fmt"

	"github.com/mellowtest/mellow/collect"
	"github.com/mellowtest/mellow/engine"
	"github.com/mellowtest/mellow/internal/callsite"
	"github.com/mellowtest/mellow/internal/logger"
	"github.com/mellowtest/mellow/report"
	"github.com/mellowtest/mellow/tt"
	"github.com/mellowtest/mellow/wrap"
)

// Session owns one run of soft assertions: a collector accumulating failures, and a wrapper
// factory building assertion values bound to it.
// Create one per test, assert through it, then checkpoint with AssertAll or Verify. Checkpoints
// never clear state, so a session checkpointed twice re-reports everything accumulated so far.
type Session struct {
	collector *collect.Collector
	factory   *wrap.Factory
	log       *logger.ConcreteLogger
}

// Logger describes a passed logger, useful only for debugging. A *testing.T satisfies it.
type Logger interface {
	Log(args ...any)
	Helper()
}

type config struct {
	skipPrefixes []string
	log          Logger
}

// Option configures a Session at creation.
type Option func(*config)

// WithSkipPrefixes extends the list of qualified-name prefixes treated as internal during
// call-site attribution - useful when assertion helpers live in their own package and failures
// should point past them.
func WithSkipPrefixes(prefixes ...string) Option {
	return func(conf *config) {
		conf.skipPrefixes = append(conf.skipPrefixes, prefixes...)
	}
}

// WithLogger attaches a logger tracing every collected failure. Useful only for debugging.
func WithLogger(log Logger) Option {
	return func(conf *config) {
		conf.log = log
	}
}

// New creates an empty session.
func New(options ...Option) *Session {
	conf := &config{}
	for _, option := range options {
		option(conf)
	}

	collector := collect.New(callsite.New(conf.skipPrefixes...))

	return &Session{
		collector: collector,
		factory:   wrap.New(collector),
		log:       logger.NewLogger(conf.log).Set("library", "mellow"),
	}
}

// CollectFailure records an already-formed failure into the session. It never raises anything.
func (s *Session) CollectFailure(failure engine.Failure) {
	s.collector.Collect(failure)
	s.log.Log("collected:", failure.Message())
}

// CollectedFailures returns a read-only snapshot of everything collected so far, in collection
// order, each failure decorated with its call-site.
func (s *Session) CollectedFailures() []engine.Failure {
	return s.collector.Snapshot()
}

// Fail records a failure with the given message.
func (s *Session) Fail(message string) {
	s.CollectFailure(engine.New(message))
}

// FailBecause records a failure with the given message and cause.
func (s *Session) FailBecause(message string, cause error) {
	s.CollectFailure(engine.Because(message, cause))
}

// FailBecauseNoFailureOccurred records that a failure of the given kind was expected but never
// happened.
func (s *Session) FailBecauseNoFailureOccurred(kind string) {
	s.CollectFailure(engine.New(fmt.Sprintf("expected a failure of kind %q - none occurred", kind)))
}

// AssertAll returns nil when nothing was collected, and otherwise a *report.AggregateError
// referencing every collected failure.
func (s *Session) AssertAll() error {
	return report.Checkpoint(s.collector)
}

// Verify fails the test with the aggregate when the session collected anything, and is a no-op
// otherwise.
func (s *Session) Verify(testing tt.T) {
	testing.Helper()

	if err := s.AssertAll(); err != nil {
		testing.Log(err.Error())
		testing.FailNow()
	}
}

// Factory exposes the session's wrapper factory, for constructing assertion values whose failures
// land in this session.
func (s *Session) Factory() *wrap.Factory {
	return s.factory
}
