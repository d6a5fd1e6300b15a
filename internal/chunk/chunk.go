// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package chunk partitions two texts into line bounded windows that can be compared
// independently.
package chunk

import "strings"

// Window is a pair of line ranges, one from each side, at the same line offsets.
type Window struct {
	Index, Total int    // Position of this window in the whole partition.
	Left, Right  string // Lines of the window joined with '\n'.
}

// Plan describes the partition of two texts into windows of a fixed number of lines.
type Plan struct {
	left, right []string
	size        int
	lines       int
	total       int
}

// NewPlan splits left and right into lines and partitions them into windows of size lines. Sizes
// below 1 are treated as 1.
func NewPlan(left, right string, size int) *Plan {
	p := &Plan{
		left:  Lines(left),
		right: Lines(right),
		size:  max(1, size),
	}
	p.lines = max(len(p.left), len(p.right))
	p.total = (p.lines + p.size - 1) / p.size
	return p
}

// Total returns the number of windows.
func (p *Plan) Total() int { return p.total }

// Window returns the i-th window. A side that has fewer lines than the window covers contributes
// only the lines it has, possibly none.
func (p *Plan) Window(i int) Window {
	if i < 0 || i >= p.total {
		panic("window index out of range")
	}
	lo, hi := i*p.size, min((i+1)*p.size, p.lines)
	return Window{
		Index: i,
		Total: p.total,
		Left:  join(p.left, lo, hi),
		Right: join(p.right, lo, hi),
	}
}

func join(lines []string, lo, hi int) string {
	lo, hi = min(lo, len(lines)), min(hi, len(lines))
	return strings.Join(lines[lo:hi], "\n")
}

// Lines splits s on '\n'. A '\r' directly before a '\n' is dropped. A trailing newline doesn't
// start another line and an empty input has no lines.
func Lines(s string) []string {
	n := strings.Count(s, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	lines := make([]string, 0, n)
	for len(s) > 0 {
		m := strings.IndexByte(s, '\n')
		if m < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, strings.TrimSuffix(s[:m], "\r"))
		s = s[m+1:]
	}
	return lines
}
