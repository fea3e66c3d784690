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
package collect_test

import (
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/mellowtest/mellow/collect"
	"github.com/mellowtest/mellow/engine"
	"github.com/mellowtest/mellow/internal/callsite"
)

func TestCollectorOrder(t *testing.T) {
	t.Parallel()

	collector := collect.New(callsite.New())

	if !collector.Empty() {
		t.Error("a fresh collector should be empty")
	}

	collector.Collect(engine.New("first failure"))
	collector.Collect(engine.New("second failure"))
	collector.Collect(engine.New("third failure"))

	if collector.Empty() {
		t.Error("the collector should not be empty anymore")
	}

	snapshot := collector.Snapshot()
	if len(snapshot) != 3 {
		t.Fatal("expected 3 failures, got:", len(snapshot))
	}

	for index, expected := range []string{"first failure", "second failure", "third failure"} {
		if !strings.HasPrefix(snapshot[index].Message(), expected) {
			t.Errorf("failure %d out of order: %q", index, snapshot[index].Message())
		}
	}
}

func TestSnapshotDecorates(t *testing.T) {
	t.Parallel()

	collector := collect.New(callsite.New())
	collector.Collect(engine.New("something did not hold"))

	snapshot := collector.Snapshot()
	if !strings.Contains(snapshot[0].Message(), "\nat collect_test.TestSnapshotDecorates(collect_test:") {
		t.Error("snapshot should decorate with the collecting test's call site, got:", snapshot[0].Message())
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	t.Parallel()

	collector := collect.New(callsite.New())
	collector.Collect(engine.New("the only failure"))

	snapshot := collector.Snapshot()
	snapshot[0] = nil
	_ = append(snapshot, engine.New("smuggled in"))

	fresh := collector.Snapshot()
	if len(fresh) != 1 || fresh[0] == nil {
		t.Error("mutating a snapshot should not reach collector state")
	}
}

func TestCollectorConcurrent(t *testing.T) {
	t.Parallel()

	const (
		writers           = 8
		failuresPerWriter = 50
	)

	collector := collect.New(callsite.New())
	group := &errgroup.Group{}

	for writer := 0; writer < writers; writer++ {
		group.Go(func() error {
			for failure := 0; failure < failuresPerWriter; failure++ {
				collector.Collect(engine.New("concurrent failure"))
			}

			return nil
		})
	}

	_ = group.Wait()

	if got := len(collector.Snapshot()); got != writers*failuresPerWriter {
		t.Error("racing appends lost entries:", got)
	}
}
