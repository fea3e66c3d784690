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

//revive:disable:add-constant
package mellow_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/mellowtest/mellow"
	"github.com/mellowtest/mellow/engine"
	"github.com/mellowtest/mellow/expect"
	"github.com/mellowtest/mellow/internal/mocks"
	"github.com/mellowtest/mellow/tt"
)

func TestEmptySession(t *testing.T) {
	t.Parallel()

	session := mellow.New()

	if err := session.AssertAll(); err != nil {
		t.Error("an empty session should checkpoint clean, got:", err)
	}

	if len(session.CollectedFailures()) != 0 {
		t.Error("an empty session should have no failures")
	}

	// Verify on an empty session must be a no-op - this test would die otherwise.
	session.Verify(t)
}

func TestScenario(t *testing.T) {
	t.Parallel()

	session := mellow.New()

	session.CollectFailure(engine.New("expected true but was false"))
	session.CollectFailure(engine.New("expected <1> but was <2>"))

	failures := session.CollectedFailures()
	if len(failures) != 2 {
		t.Fatal("expected both failures collected, got:", len(failures))
	}

	if !strings.HasPrefix(failures[0].Message(), "expected true but was false") ||
		!strings.HasPrefix(failures[1].Message(), "expected <1> but was <2>") {
		t.Error("failures should come back in collection order, decorated")
	}

	for _, failure := range failures {
		if !strings.Contains(failure.Message(), "\nat mellow_test.TestScenario(mellow_test:") {
			t.Error("each failure should point at this test, got:", failure.Message())
		}
	}

	err := session.AssertAll()
	if err == nil {
		t.Fatal("a dirty session should checkpoint with an aggregate")
	}

	for _, expected := range []string{
		`(?m)^1\) expected true but was false$`,
		`(?m)^2\) expected <1> but was <2>$`,
	} {
		if !regexp.MustCompile(expected).MatchString(err.Error()) {
			t.Errorf("aggregate should match %q:\n%s", expected, err.Error())
		}
	}
}

func TestAttribution(t *testing.T) {
	t.Parallel()

	session := mellow.New()
	session.Fail("boom")

	message := session.CollectedFailures()[0].Message()
	if !regexp.MustCompile(`^boom\nat mellow_test\.TestAttribution\(mellow_test:\d+\)$`).MatchString(message) {
		t.Error("attribution should skip mellow frames and land here, got:", message)
	}
}

func TestFailConveniences(t *testing.T) {
	t.Parallel()

	session := mellow.New()

	//nolint:err113 // Fine, this is a test
	cause := errors.New("root cause")

	session.Fail("plain failure")
	session.FailBecause("caused failure", cause)
	session.FailBecauseNoFailureOccurred("TimeoutError")

	failures := session.CollectedFailures()
	if len(failures) != 3 {
		t.Fatal("expected 3 failures, got:", len(failures))
	}

	if failures[1].Cause() != cause {
		t.Error("FailBecause should carry the cause")
	}

	if !errors.Is(failures[1], cause) {
		t.Error("the cause should stay visible to errors.Is after decoration")
	}

	if !strings.HasPrefix(failures[2].Message(), `expected a failure of kind "TimeoutError" - none occurred`) {
		t.Error("unexpected message:", failures[2].Message())
	}
}

func TestRepeatedCheckpoints(t *testing.T) {
	t.Parallel()

	session := mellow.New()
	session.Fail("first failure")

	if session.AssertAll() == nil {
		t.Fatal("first checkpoint should report")
	}

	// Checkpoints never clear: the same failure reports again, plus anything new.
	session.Fail("second failure")

	err := session.AssertAll()
	if err == nil {
		t.Fatal("second checkpoint should report")
	}

	if !strings.Contains(err.Error(), "first failure") || !strings.Contains(err.Error(), "second failure") {
		t.Error("a later checkpoint should re-report everything accumulated:\n", err.Error())
	}
}

func TestVerifyFailsTheTest(t *testing.T) {
	t.Parallel()

	mockT := &mocks.MockT{}

	session := mellow.New()
	session.Fail("doomed")
	session.Verify(mockT)

	if len(mockT.Report(tt.T.FailNow)) != 1 {
		t.Error("Verify on a dirty session should FailNow exactly once")
	}

	if len(mockT.Report(tt.T.Log)) != 1 {
		t.Error("Verify should log the aggregate before failing")
	}
}

func TestAssertionsRaiseNothing(t *testing.T) {
	t.Parallel()

	session := mellow.New()

	// A long mixed run: no operation may stop the flow, only the checkpoint reports.
	value := expect.String(session.Factory(), "mellow").
		Contains("mel").
		Contains("harsh").
		HasSuffix("low").
		Length()
	value.IsEqualTo(5).IsEqualTo(6)

	failures := session.CollectedFailures()
	if len(failures) != 2 {
		t.Fatal("3 passes and 2 failures expected, collected:", len(failures))
	}

	if session.AssertAll() == nil {
		t.Error("the checkpoint should report the 2 failures")
	}
}

func TestWithSkipPrefixes(t *testing.T) {
	t.Parallel()

	session := mellow.New(mellow.WithSkipPrefixes("github.com/mellowtest/mellow_test.failSomewhere"))
	failSomewhere(session)

	message := session.CollectedFailures()[0].Message()
	if !strings.Contains(message, "\nat mellow_test.TestWithSkipPrefixes(mellow_test:") {
		t.Error("attribution should skip the denylisted helper, got:", message)
	}
}

func failSomewhere(session *mellow.Session) {
	session.Fail("failed in a helper")
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	mockT := &mocks.MockT{}

	session := mellow.New(mellow.WithLogger(mockT))
	session.Fail("traced failure")

	if len(mockT.Report(tt.T.Log)) != 1 {
		t.Error("collected failures should be traced through the logger")
	}
}

func TestCustomKindsSurviveUntouched(t *testing.T) {
	t.Parallel()

	session := mellow.New()
	session.CollectFailure(&opaqueFailure{message: "opaque kind"})

	failures := session.CollectedFailures()
	if failures[0].Message() != "opaque kind" {
		t.Error("a kind without rebuild support must pass through byte-for-byte")
	}

	if _, ok := failures[0].(*opaqueFailure); !ok {
		t.Errorf("the concrete kind should be preserved, got %T", failures[0])
	}
}

// opaqueFailure is a failure kind from outside mellow, with no rebuild support.
type opaqueFailure struct {
	message string
}

func (o *opaqueFailure) Error() string                { return o.message }
func (o *opaqueFailure) Message() string              { return o.message }
func (o *opaqueFailure) Cause() error                 { return nil }
func (o *opaqueFailure) Suppressed() []engine.Failure { return nil }
func (o *opaqueFailure) Stack() []engine.Frame        { return engine.CaptureStack(0) }
