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
	"reflect"

	"github.com/mellowtest/mellow/engine"
	"github.com/mellowtest/mellow/wrap"
)

//nolint:gochecknoglobals // descriptor, immutable
var valueDescriptor = wrap.Typed[*ValueAssert]{
	Capability: "ValueAssert",
	Subject:    "any",
	Synthesize: func(sink engine.Sink) (func(subject any) (*ValueAssert, error), error) {
		return func(subject any) (*ValueAssert, error) {
			return &ValueAssert{Checked: engine.NewChecked(sink), actual: subject}, nil
		}, nil
	},
}

// Value returns an assertion over an arbitrary value, built through the factory.
func Value(factory *wrap.Factory, actual any) *ValueAssert {
	assert, err := wrap.Instance(factory, valueDescriptor, actual)
	if err != nil {
		panic(err)
	}

	return assert
}

// ValueAssert implements assertions on an arbitrary subject, compared with reflect.DeepEqual
// (plain `==` is too limited for an open subject type).
type ValueAssert struct {
	engine.Checked

	actual any
}

// IsEqualTo checks that the subject is deep-equal to expected.
func (v *ValueAssert) IsEqualTo(expected any) *ValueAssert {
	v.Run(func() engine.Failure {
		if !reflect.DeepEqual(v.actual, expected) {
			return engine.New(fmt.Sprintf("expected: %v - to be equal to: %v", v.actual, expected))
		}

		return nil
	})

	return v
}

// IsNotEqualTo checks that the subject is NOT deep-equal to expected.
func (v *ValueAssert) IsNotEqualTo(expected any) *ValueAssert {
	v.Run(func() engine.Failure {
		if reflect.DeepEqual(v.actual, expected) {
			return engine.New(fmt.Sprintf("expected: %v - to NOT be equal to: %v", v.actual, expected))
		}

		return nil
	})

	return v
}

// IsNil checks that the subject is nil, including typed nil pointers, maps, slices and channels.
func (v *ValueAssert) IsNil() *ValueAssert {
	v.Run(func() engine.Failure {
		if !isNil(v.actual) {
			return engine.New(fmt.Sprintf("expected: %v - to be nil", v.actual))
		}

		return nil
	})

	return v
}

// IsNotNil checks that the subject is not nil.
func (v *ValueAssert) IsNotNil() *ValueAssert {
	v.Run(func() engine.Failure {
		if isNil(v.actual) {
			return engine.New("expected: <nil> - to NOT be nil")
		}

		return nil
	})

	return v
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return reflected.IsNil()
	default:
		return false
	}
}
