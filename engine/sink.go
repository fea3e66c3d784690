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

package engine

import "github.com/mellowtest/mellow/tt"

// Sink receives the failures produced by checked operations.
// The soft implementation (a collector) stores them for a later checkpoint; FailNow stops the test
// on the spot. Assertion code is identical under both - only the sink differs.
type Sink interface {
	Collect(failure Failure)
}

var _ Sink = &hardSink{}

// FailNow returns a Sink that fails the test immediately: the failure message (and cause, if any)
// is logged and FailNow is called.
func FailNow(testing tt.T) Sink {
	return &hardSink{testing: testing}
}

type hardSink struct {
	testing tt.T
}

func (h *hardSink) Collect(failure Failure) {
	h.testing.Helper()
	h.testing.Log(failure.Message())

	if cause := failure.Cause(); cause != nil {
		h.testing.Log("caused by:", cause)
	}

	h.testing.FailNow()
}
