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

// Package callsite rewrites a failure message to point at the line in the user's test that
// produced it, skipping frames that belong to mellow itself, to the runtime, or to the test
// runner.
package callsite

import (
	"fmt"
	"strings"

	"github.com/mellowtest/mellow/engine"
)

const modulePrefix = "github.com/mellowtest/mellow/"

// DefaultSkipPrefixes lists the qualified-name prefixes that never belong to user test code.
// The trailing dot on package entries keeps the matching from swallowing the corresponding
// external test packages (`collect_test` is user code, `collect` is not).
// This is data on purpose: extending the policy must never require touching the walk below.
//
//nolint:gochecknoglobals // policy data, read-only
var DefaultSkipPrefixes = []string{
	"github.com/mellowtest/mellow.",
	modulePrefix + "engine.",
	modulePrefix + "collect.",
	modulePrefix + "wrap.",
	modulePrefix + "report.",
	modulePrefix + "expect.",
	modulePrefix + "internal/",
	"runtime.",
	"reflect.",
	"testing.",
}

// Attributor decorates failures with their call-site, walking each stack top-down and keeping the
// first frame that does not match its skip list.
type Attributor struct {
	skipPrefixes []string
}

// New returns an Attributor skipping the default internal prefixes plus any extra ones.
func New(extra ...string) *Attributor {
	prefixes := make([]string, 0, len(DefaultSkipPrefixes)+len(extra))
	prefixes = append(prefixes, DefaultSkipPrefixes...)
	prefixes = append(prefixes, extra...)

	return &Attributor{skipPrefixes: prefixes}
}

// Decorate returns a failure of the same concrete kind as the input, with an
// `at location.member(location:line)` suffix appended to the message, pointing at the attribution
// frame. Cause, stack and suppressed failures carry over unchanged.
// Decoration is best-effort: when every frame is internal, or the kind does not support rebuilding,
// the original failure is returned untouched.
func (a *Attributor) Decorate(failure engine.Failure) engine.Failure {
	frame, found := a.attribution(failure.Stack())
	if !found {
		return failure
	}

	rebuilder, ok := failure.(engine.Rebuilder)
	if !ok {
		return failure
	}

	location, member := frame.Split()

	return rebuilder.RebuildWithMessage(fmt.Sprintf("%s\nat %s.%s(%s:%d)",
		failure.Message(), location, member, location, frame.Line))
}

func (a *Attributor) attribution(stack []engine.Frame) (engine.Frame, bool) {
	for _, frame := range stack {
		if !a.isInternal(frame) {
			return frame, true
		}
	}

	return engine.Frame{}, false
}

func (a *Attributor) isInternal(frame engine.Frame) bool {
	for _, prefix := range a.skipPrefixes {
		if strings.HasPrefix(frame.Function, prefix) {
			return true
		}
	}

	return false
}
