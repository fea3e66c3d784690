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

package tt

// T is what mellow needs from a testing implementation (*testing.T obviously satisfies it).
//
// Expert note: using the testing.TB interface instead is tempting, but not possible, as the go authors made it
// impossible to implement (by declaring a private method on it).
// Generally speaking, interfaces in go should be defined by the consumer, not the producer: depending on producers'
// interfaces makes them much harder to change for the producer, and harder (or impossible) to mock.
// Keeping this interface down to what mellow actually calls also keeps the mock surface small.
type T interface {
	Helper()
	FailNow()
	Fail()
	Log(args ...any)
	Name() string
}
