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

// Package collect stores assertion failures in arrival order instead of raising them, and hands
// them back decorated with their call-site when a checkpoint asks.
package collect

import (
	"sync"

	"github.com/mellowtest/mellow/engine"
	"github.com/mellowtest/mellow/internal/callsite"
)

var _ engine.Sink = &Collector{}

// Collector owns the failures of one assertion session.
// Appends are serialized behind a lock: two goroutines racing to Collect must not lose an entry,
// and a Snapshot observes a consistent, fully-appended sequence.
type Collector struct {
	mutex      sync.Mutex
	failures   []engine.Failure
	attributor *callsite.Attributor
}

// New creates an empty collector whose snapshots decorate through the given attributor.
func New(attributor *callsite.Attributor) *Collector {
	return &Collector{attributor: attributor}
}

// Collect appends a failure. It never fails, and never raises anything to the caller.
func (c *Collector) Collect(failure engine.Failure) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.failures = append(c.failures, failure)
}

// Snapshot returns an independent copy of the collected failures, in collection order, each
// decorated with its call-site. Mutating the returned slice cannot touch collector state.
func (c *Collector) Snapshot() []engine.Failure {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	decorated := make([]engine.Failure, len(c.failures))
	for index, failure := range c.failures {
		decorated[index] = c.attributor.Decorate(failure)
	}

	return decorated
}

// Empty reports whether nothing has been collected since creation.
func (c *Collector) Empty() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return len(c.failures) == 0
}
