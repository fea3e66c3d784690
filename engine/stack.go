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

import (
	"runtime"
	"strings"
)

const stackMaxDepth = 64

// A Frame stores information about one point of a failure code-path: file, line number and
// qualified function name.
type Frame struct {
	Function string
	File     string
	Line     int
}

// Split breaks the qualified function name into a location (the short package name) and a member
// (the function or method, including any receiver).
func (f Frame) Split() (location, member string) {
	function := f.Function
	if idx := strings.LastIndex(function, "/"); idx != -1 {
		function = function[idx+1:]
	}

	location, member, found := strings.Cut(function, ".")
	if !found {
		return "", function
	}

	return location, member
}

// CaptureStack records the current call stack, most recent call first.
// skip behaves like the runtime.Callers skip: 0 identifies the caller of CaptureStack.
func CaptureStack(skip int) []Frame {
	pc := make([]uintptr, stackMaxDepth)
	depth := runtime.Callers(skip+2, pc)
	if depth == 0 {
		return nil
	}

	callersFrames := runtime.CallersFrames(pc[:depth])

	frames := make([]Frame, 0, depth)

	for {
		frame, more := callersFrames.Next()
		frames = append(frames, Frame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})

		if !more {
			break
		}
	}

	return frames
}
