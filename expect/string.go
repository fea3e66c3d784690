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
	"fmt"
	"regexp"
	"strings"

	"github.com/mellowtest/mellow/engine"
	"github.com/mellowtest/mellow/wrap"
)

//nolint:gochecknoglobals // descriptor, immutable
var stringDescriptor = wrap.Typed[*StringAssert]{
	Capability: "StringAssert",
	Subject:    "string",
	Synthesize: func(sink engine.Sink) (func(subject any) (*StringAssert, error), error) {
		return func(subject any) (*StringAssert, error) {
			actual, ok := subject.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %T is not a string", ErrWrongSubject, subject)
			}

			return &StringAssert{Checked: engine.NewChecked(sink), actual: actual}, nil
		}, nil
	},
}

// String returns a string assertion for actual, built through the factory.
// It panics on construction errors, as those are setup defects, not test outcomes.
func String(factory *wrap.Factory, actual string) *StringAssert {
	assert, err := wrap.Instance(factory, stringDescriptor, actual)
	if err != nil {
		panic(err)
	}

	return assert
}

// StringAssert implements assertions on a string subject. Every operation returns an assertable
// value so calls chain regardless of the outcome of the check.
type StringAssert struct {
	engine.Checked

	actual string
}

// IsEqualTo checks that the subject is exactly expected.
func (s *StringAssert) IsEqualTo(expected string) *StringAssert {
	s.Run(func() engine.Failure {
		if s.actual != expected {
			return engine.New(fmt.Sprintf("expected: %q - to be equal to: %q", s.actual, expected))
		}

		return nil
	})

	return s
}

// IsNotEqualTo checks that the subject differs from expected.
func (s *StringAssert) IsNotEqualTo(expected string) *StringAssert {
	s.Run(func() engine.Failure {
		if s.actual == expected {
			return engine.New(fmt.Sprintf("expected: %q - to NOT be equal to: %q", s.actual, expected))
		}

		return nil
	})

	return s
}

// Contains checks that the comparison string is found contained in the subject.
func (s *StringAssert) Contains(compare string) *StringAssert {
	s.Run(func() engine.Failure {
		if !strings.Contains(s.actual, compare) {
			return engine.New(fmt.Sprintf("expected: %q - to contain: %q", s.actual, compare))
		}

		return nil
	})

	return s
}

// DoesNotContain checks that the comparison string is NOT found in the subject.
func (s *StringAssert) DoesNotContain(compare string) *StringAssert {
	s.Run(func() engine.Failure {
		if strings.Contains(s.actual, compare) {
			return engine.New(fmt.Sprintf("expected: %q - to NOT contain: %q", s.actual, compare))
		}

		return nil
	})

	return s
}

// HasPrefix checks that the subject starts with prefix.
func (s *StringAssert) HasPrefix(prefix string) *StringAssert {
	s.Run(func() engine.Failure {
		if !strings.HasPrefix(s.actual, prefix) {
			return engine.New(fmt.Sprintf("expected: %q - to start with: %q", s.actual, prefix))
		}

		return nil
	})

	return s
}

// HasSuffix checks that the subject ends with suffix.
func (s *StringAssert) HasSuffix(suffix string) *StringAssert {
	s.Run(func() engine.Failure {
		if !strings.HasSuffix(s.actual, suffix) {
			return engine.New(fmt.Sprintf("expected: %q - to end with: %q", s.actual, suffix))
		}

		return nil
	})

	return s
}

// Matches checks that the subject matches the regexp.
func (s *StringAssert) Matches(reg *regexp.Regexp) *StringAssert {
	s.Run(func() engine.Failure {
		if !reg.MatchString(s.actual) {
			return engine.New(fmt.Sprintf("expected: %q - to match: %q", s.actual, reg.String()))
		}

		return nil
	})

	return s
}

// DoesNotMatch checks that the subject does NOT match the regexp.
func (s *StringAssert) DoesNotMatch(reg *regexp.Regexp) *StringAssert {
	s.Run(func() engine.Failure {
		if reg.MatchString(s.actual) {
			return engine.New(fmt.Sprintf("expected: %q - to NOT match: %q", s.actual, reg.String()))
		}

		return nil
	})

	return s
}

// IsEmpty checks that the subject is the empty string.
func (s *StringAssert) IsEmpty() *StringAssert {
	s.Run(func() engine.Failure {
		if s.actual != "" {
			return engine.New(fmt.Sprintf("expected: %q - to be empty", s.actual))
		}

		return nil
	})

	return s
}

// Length moves the chain to the subject's length, as a number assertion bound to the same sink.
func (s *StringAssert) Length() *NumberAssert {
	return &NumberAssert{Checked: engine.NewChecked(s.Sink()), actual: len(s.actual)}
}
