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

// Package report turns the failures accumulated by a collector into one aggregate error at
// checkpoint time.
package report

import (
	"fmt"
	"strings"

	"github.com/mellowtest/mellow/collect"
	"github.com/mellowtest/mellow/engine"
)

// AggregateError reports every failure collected in one session as a single error, one numbered
// entry per failure.
type AggregateError struct {
	failures []engine.Failure
}

// Failures returns the decorated failures embedded in the aggregate, in collection order.
func (a *AggregateError) Failures() []engine.Failure {
	return a.failures
}

func (a *AggregateError) Error() string {
	plural := ""
	if len(a.failures) > 1 {
		plural = "s"
	}

	lines := make([]string, 0, len(a.failures)+1)
	lines = append(lines, fmt.Sprintf("%d assertion failure%s:", len(a.failures), plural))

	for index, failure := range a.failures {
		// Continuation lines of a multi-line message are indented under their number.
		message := strings.ReplaceAll(failure.Message(), "\n", "\n   ")
		lines = append(lines, fmt.Sprintf("%d) %s", index+1, message))
	}

	return strings.Join(lines, "\n")
}

// Checkpoint inspects the collector: nil when nothing was collected, otherwise one AggregateError
// embedding every decorated failure.
// It never clears the collector - a later Checkpoint re-reports everything accumulated so far.
func Checkpoint(collector *collect.Collector) error {
	if collector.Empty() {
		return nil
	}

	return &AggregateError{failures: collector.Snapshot()}
}
