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

	"github.com/mellowtest/mellow/engine"
	"github.com/mellowtest/mellow/wrap"
)

//nolint:gochecknoglobals // descriptor, immutable
var numberDescriptor = wrap.Typed[*NumberAssert]{
	Capability: "NumberAssert",
	Subject:    "int",
	Synthesize: func(sink engine.Sink) (func(subject any) (*NumberAssert, error), error) {
		return func(subject any) (*NumberAssert, error) {
			actual, ok := subject.(int)
			if !ok {
				return nil, fmt.Errorf("%w: %T is not an int", ErrWrongSubject, subject)
			}

			return &NumberAssert{Checked: engine.NewChecked(sink), actual: actual}, nil
		}, nil
	},
}

// Number returns an int assertion for actual, built through the factory.
// It panics on construction errors, as those are setup defects, not test outcomes.
func Number(factory *wrap.Factory, actual int) *NumberAssert {
	assert, err := wrap.Instance(factory, numberDescriptor, actual)
	if err != nil {
		panic(err)
	}

	return assert
}

// NumberAssert implements assertions on an int subject.
type NumberAssert struct {
	engine.Checked

	actual int
}

// IsEqualTo checks that the subject equals expected.
func (n *NumberAssert) IsEqualTo(expected int) *NumberAssert {
	n.Run(func() engine.Failure {
		if n.actual != expected {
			return engine.New(fmt.Sprintf("expected: %d - to be equal to: %d", n.actual, expected))
		}

		return nil
	})

	return n
}

// IsNotEqualTo checks that the subject differs from expected.
func (n *NumberAssert) IsNotEqualTo(expected int) *NumberAssert {
	n.Run(func() engine.Failure {
		if n.actual == expected {
			return engine.New(fmt.Sprintf("expected: %d - to NOT be equal to: %d", n.actual, expected))
		}

		return nil
	})

	return n
}

// IsLessThan checks that the subject is strictly less than the reference.
func (n *NumberAssert) IsLessThan(reference int) *NumberAssert {
	n.Run(func() engine.Failure {
		if n.actual >= reference {
			return engine.New(fmt.Sprintf("expected: %d - to be less than: %d", n.actual, reference))
		}

		return nil
	})

	return n
}

// IsMoreThan checks that the subject is strictly more than the reference.
func (n *NumberAssert) IsMoreThan(reference int) *NumberAssert {
	n.Run(func() engine.Failure {
		if n.actual <= reference {
			return engine.New(fmt.Sprintf("expected: %d - to be more than: %d", n.actual, reference))
		}

		return nil
	})

	return n
}
