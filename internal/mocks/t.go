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

//nolint:forcetypeassert
//revive:disable:exported,max-public-structs,package-comments
package mocks

// FIXME: type asserts...

import (
	"github.com/mellowtest/mellow/internal/mimicry"
	"github.com/mellowtest/mellow/tt"
)

type T interface {
	tt.T
	mimicry.Consumer
}

type (
	THelperIn  struct{}
	THelperOut struct{}

	TFailIn  struct{}
	TFailOut struct{}

	TFailNowIn  struct{}
	TFailNowOut struct{}

	TLogIn  []any
	TLogOut struct{}

	TNameIn  struct{}
	TNameOut = string
)

type MockT struct {
	mimicry.Core
}

func (m *MockT) Helper() {
	if handler := m.Retrieve(); handler != nil {
		handler.(func(THelperIn) THelperOut)(THelperIn{})
	}
}

func (m *MockT) FailNow() {
	if handler := m.Retrieve(); handler != nil {
		handler.(func(TFailNowIn) TFailNowOut)(TFailNowIn{})
	}
}

func (m *MockT) Fail() {
	if handler := m.Retrieve(); handler != nil {
		handler.(func(TFailIn) TFailOut)(TFailIn{})
	}
}

func (m *MockT) Log(args ...any) {
	if handler := m.Retrieve(args...); handler != nil {
		handler.(func(TLogIn) TLogOut)(args)
	}
}

func (m *MockT) Name() string {
	if handler := m.Retrieve(); handler != nil {
		return handler.(func(TNameIn) TNameOut)(TNameIn{})
	}

	return ""
}
