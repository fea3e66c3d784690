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

// Package expect provides assertion types for common subjects (strings, numbers, errors, plain
// values), built on the engine run-core so every operation chains whether or not its check held.
// Where failures go depends on the factory an assertion was constructed through: a session factory
// collects them for the checkpoint, wrap.Hard fails the test on the spot.
package expect

import "errors"

// ErrWrongSubject is returned from capability synthesis when a subject value does not have the
// type the capability asserts on. Hitting it means a descriptor was fed through the wrong
// constructor - a setup defect, reported immediately rather than collected.
var ErrWrongSubject = errors.New("subject has the wrong type for this capability")
