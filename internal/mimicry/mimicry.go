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

package mimicry

import (
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/mellowtest/mellow/engine"
)

const callStackMaxDepth = 5

var _ Mocked = &Core{}

// Mocked is the interface representing a fully-mocking struct (both for Designer and Consumer).
type Mocked interface {
	Consumer
	Designer
}

// Consumer is the mock interface exposed to mock users.
// It defines a handful of methods to register a custom handler, get and reset calls reports.
type Consumer interface {
	Register(fun, handler any)
	Report(fun any) []*Call
	Reset()
}

// Designer is the mock interface that mock creators can use to write function boilerplate.
type Designer interface {
	Retrieve(args ...any) any
}

// Call stores information about one call to a function of the mocked struct: arguments, time, and
// the captured caller frames.
type Call struct {
	Time   time.Time
	Args   []any
	Frames []engine.Frame
}

// Core is a concrete implementation that any mock struct can embed to satisfy Mocked.
// FIXME: this is not safe to use concurrently.
type Core struct {
	mockedFunctions map[string]any
	callsList       map[string][]*Call
}

// Reset does reset the callStack records for all functions.
func (mi *Core) Reset() {
	mi.callsList = make(map[string][]*Call)
}

// Report returns all Calls made to the referenced function.
func (mi *Core) Report(fun any) []*Call {
	fid := getFunID(fun)

	if mi.callsList == nil {
		mi.callsList = make(map[string][]*Call)
	}

	ret, ok := mi.callsList[fid]
	if !ok {
		ret = []*Call{}
	}

	return ret
}

// Retrieve returns a registered custom handler for that function if there is one.
func (mi *Core) Retrieve(args ...any) any {
	// Frame zero is the mock method currently calling Retrieve; its short name keys the call.
	stack := engine.CaptureStack(1)

	var fid string

	if len(stack) > 0 {
		nm := strings.Split(stack[0].Function, ".")
		fid = nm[len(nm)-1]
	}

	// Initialize callsList if need be
	if mi.callsList == nil {
		mi.callsList = make(map[string][]*Call)
	}

	// Keep the remaining frames until we hit the go library or the depth limit.
	frames := []engine.Frame{}

	for _, frame := range stack[min(1, len(stack)):] {
		if isStd(frame.Function) || len(frames) == callStackMaxDepth {
			break
		}

		frames = append(frames, frame)
	}

	// Stuff into the call list.
	mi.callsList[fid] = append(mi.callsList[fid], &Call{
		Time:   time.Now(),
		Args:   args,
		Frames: frames,
	})

	// See if we have a registered handler and return it if so.
	if ret, ok := mi.mockedFunctions[fid]; ok {
		return ret
	}

	return nil
}

// Register does declare an explicit handler for that function.
func (mi *Core) Register(fun, handler any) {
	if mi.mockedFunctions == nil {
		mi.mockedFunctions = make(map[string]any)
	}

	mi.mockedFunctions[getFunID(fun)] = handler
}

func getFunID(fun any) string {
	// The point of keeping only the func name is to avoid type mismatch dependent on what interface
	// is used by the consumer.
	origin := runtime.FuncForPC(reflect.ValueOf(fun).Pointer()).Name()
	seg := strings.Split(origin, ".")
	origin = seg[len(seg)-1]

	return origin
}

func isStd(in string) bool {
	return !strings.Contains(in, "/")
}
