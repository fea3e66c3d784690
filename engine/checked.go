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

// Checked is the run-core every assertion type embeds: it binds the type to a Sink and funnels
// every operation through Run, so that a failing check is routed instead of raised and the
// operation can return control for further chaining.
type Checked struct {
	sink Sink
}

// NewChecked binds a run-core to a sink.
func NewChecked(sink Sink) Checked {
	return Checked{sink: sink}
}

// Run executes a single check. A nil return from check means it held and Run returns true.
// A non-nil Failure is handed to the bound sink and Run returns false - it never panics, so the
// calling operation can still return an assertable value.
func (c *Checked) Run(check func() Failure) bool {
	if failure := check(); failure != nil {
		c.sink.Collect(failure)

		return false
	}

	return true
}

// Sink returns the bound sink, so operations producing a different assertable type can construct
// the follow-up assertion against the same destination.
func (c *Checked) Sink() Sink {
	return c.sink
}
