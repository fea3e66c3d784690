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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mellowtest/mellow/engine"
	"github.com/mellowtest/mellow/internal/formatter"
)

const (
	maxLineLength       = 110
	sourceLineAround    = 2
	hyperlinkDecorator  = "🔗"
	intoDecorator       = "↪"
	breakpointDecorator = "🔴"
	frameDecorator      = "⬆️"
)

// PrintCall does fancy format a Call.
func PrintCall(call *Call) string {
	sectionSeparator := strings.Repeat("_", maxLineLength)

	debug := [][]any{
		{"Arguments", call.Args},
		{"Time", call.Time.Format(time.RFC3339)},
	}

	output := []string{
		formatter.Table(debug, "-"),
		sectionSeparator,
	}

	marker := breakpointDecorator
	for _, frame := range call.Frames {
		output = append(output,
			frameString(frame),
			sectionSeparator,
			excerpt(frame, sourceLineAround, marker),
			sectionSeparator,
		)
		marker = frameDecorator
	}

	return "\n" + strings.Join(output, "\n")
}

// frameString returns an OSC8 hyperlink pointing to the frame source along with package and
// function information.
func frameString(frame engine.Frame) string {
	cwd, _ := os.Getwd()

	rel, err := filepath.Rel(cwd, frame.File)
	if err != nil {
		rel = frame.File
	}

	spl := strings.Split(frame.Function, ".")
	fun := spl[len(spl)-1]
	mod := strings.Join(spl[:len(spl)-1], ".")

	return hyperlinkDecorator + " " + (&formatter.OSC8{
		Location: "file://" + frame.File,
		Line:     frame.Line,
		Text:     fmt.Sprintf("%s:%d", rel, frame.Line),
	}).String() +
		fmt.Sprintf(
			"\n%6s package %q\n",
			intoDecorator,
			mod,
		) +
		fmt.Sprintf(
			"%8s func %s",
			" "+intoDecorator,
			fun,
		)
}

// excerpt returns the source code content associated with the frame + a few lines around.
func excerpt(frame engine.Frame, add int, marker string) string {
	source, err := os.Open(frame.File)
	if err != nil {
		return ""
	}

	defer func() {
		_ = source.Close()
	}()

	index := 1
	scanner := bufio.NewScanner(source)

	for ; scanner.Err() == nil && index < frame.Line-add; index++ {
		if !scanner.Scan() {
			break
		}

		_ = scanner.Text()
	}

	capt := []string{}

	for ; scanner.Err() == nil && index <= frame.Line+add; index++ {
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		if index == frame.Line {
			line = fmt.Sprintf("%6d %s %s", index, marker, line)
		} else {
			// FIXME: see other similar note. Rune counting is not display-width, so...
			line = fmt.Sprintf("%6d %*s %s", index, utf8.RuneCountInString(marker), "", line)
		}

		capt = append(capt, line)
	}

	return strings.Join(capt, "\n")
}
