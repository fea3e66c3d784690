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

// Package engine defines the contract between assertion implementations and the collection core:
// what a failure carries (message, cause, suppressed failures, call stack), how its stack is
// captured, and where a checked operation routes it (a Sink).
// Assertion packages embed Checked and express every operation as a check function returning a
// Failure (or nil); whether a failing check stops the test immediately or is collected for a later
// checkpoint is decided entirely by the Sink the assertion was built against.
package engine
