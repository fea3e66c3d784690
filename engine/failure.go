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

// Failure is what an assertion operation produces when its check does not hold.
// Kinds are open-ended: assertion packages outside mellow may define their own, and the collection
// core preserves the concrete kind of whatever it is handed.
type Failure interface {
	error
	// Message is the human-readable failure description.
	Message() string
	// Cause returns the underlying error that provoked the failure, or nil.
	Cause() error
	// Suppressed returns secondary failures attached to this one, in attachment order.
	Suppressed() []Failure
	// Stack returns the call stack captured when the failure was created, most recent call first.
	Stack() []Frame
}

// Rebuilder is the reconstruction capability a failure kind may support: build a failure of the
// same concrete kind with a different message, carrying over the cause, stack and suppressed
// failures unchanged.
// Kinds that do not implement it are simply never rewritten - a failure is never dropped over it.
type Rebuilder interface {
	RebuildWithMessage(message string) Failure
}

var (
	_ Failure   = &Err{}
	_ Rebuilder = &Err{}
)

// Err is the standard failure kind, capturing its call stack at construction.
type Err struct {
	message    string
	cause      error
	suppressed []Failure
	stack      []Frame
}

// New creates a standard failure with the given message.
func New(message string) *Err {
	return &Err{
		message: message,
		stack:   CaptureStack(1),
	}
}

// Because creates a standard failure with the given message and cause.
func Because(message string, cause error) *Err {
	return &Err{
		message: message,
		cause:   cause,
		stack:   CaptureStack(1),
	}
}

func (e *Err) Error() string {
	return e.message
}

// Message returns the failure description.
func (e *Err) Message() string {
	return e.message
}

// Cause returns the error that provoked the failure, or nil.
func (e *Err) Cause() error {
	return e.cause
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Err) Unwrap() error {
	return e.cause
}

// Suppressed returns attached secondary failures, in attachment order.
func (e *Err) Suppressed() []Failure {
	return e.suppressed
}

// Stack returns the stack captured when the failure was constructed.
func (e *Err) Stack() []Frame {
	return e.stack
}

// Suppress attaches a secondary failure.
func (e *Err) Suppress(failure Failure) {
	e.suppressed = append(e.suppressed, failure)
}

// RebuildWithMessage returns a new standard failure carrying the new message and this failure's
// cause, stack and suppressed failures.
func (e *Err) RebuildWithMessage(message string) Failure {
	return &Err{
		message:    message,
		cause:      e.cause,
		suppressed: append([]Failure(nil), e.suppressed...),
		stack:      append([]Frame(nil), e.stack...),
	}
}
