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

package expect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mellowtest/mellow/engine"
	"github.com/mellowtest/mellow/wrap"
)

//nolint:gochecknoglobals // descriptor, immutable
var errorDescriptor = wrap.Typed[*ErrorAssert]{
	Capability: "ErrorAssert",
	Subject:    "error",
	Synthesize: func(sink engine.Sink) (func(subject any) (*ErrorAssert, error), error) {
		return func(subject any) (*ErrorAssert, error) {
			if subject == nil {
				return &ErrorAssert{Checked: engine.NewChecked(sink)}, nil
			}

			actual, ok := subject.(error)
			if !ok {
				return nil, fmt.Errorf("%w: %T is not an error", ErrWrongSubject, subject)
			}

			return &ErrorAssert{Checked: engine.NewChecked(sink), actual: actual}, nil
		}, nil
	},
}

// Err returns an error assertion for actual, built through the factory.
func Err(factory *wrap.Factory, actual error) *ErrorAssert {
	var subject any
	if actual != nil {
		subject = actual
	}

	assert, err := wrap.Instance(factory, errorDescriptor, subject)
	if err != nil {
		panic(err)
	}

	return assert
}

// ErrorAssert implements assertions on an error subject.
type ErrorAssert struct {
	engine.Checked

	actual error
}

// IsNil checks that the subject error is nil.
func (e *ErrorAssert) IsNil() *ErrorAssert {
	e.Run(func() engine.Failure {
		if e.actual != nil {
			return engine.Because("expected nil error", e.actual)
		}

		return nil
	})

	return e
}

// Is checks that the subject matches the comparison error per errors.Is.
func (e *ErrorAssert) Is(compare error) *ErrorAssert {
	e.Run(func() engine.Failure {
		if !errors.Is(e.actual, compare) {
			return engine.Because(fmt.Sprintf("expected error to be: %v - instead it is: %v", compare, e.actual),
				e.actual)
		}

		return nil
	})

	return e
}

// ContainsMessage checks that the subject's message contains the comparison string.
func (e *ErrorAssert) ContainsMessage(compare string) *ErrorAssert {
	e.Run(func() engine.Failure {
		message := "<nil>"
		if e.actual != nil {
			message = e.actual.Error()
		}

		if !strings.Contains(message, compare) {
			return engine.New(fmt.Sprintf("expected error message: %q - to contain: %q", message, compare))
		}

		return nil
	})

	return e
}
