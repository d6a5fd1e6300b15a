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

// Package spans computes the character level changes within a pair of modified segments.
package spans

import "github.com/sergi/go-diff/diffmatchpatch"

// Op describes a span operation.
type Op int

const (
	Equal  Op = iota // Text is in both segments
	Remove           // Text is only in the original segment
	Add              // Text is only in the new segment
)

// Span is a contiguous piece of text with a single operation.
type Span struct {
	Op   Op
	Text string
}

// Compute returns the spans that transform x into y. Concatenating all Equal and Remove spans
// yields x, concatenating all Equal and Add spans yields y. Adjacent spans never share an
// operation.
func Compute(x, y string) []Span {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(x, y, false))

	var spans []Span
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			op = Equal
		case diffmatchpatch.DiffDelete:
			op = Remove
		case diffmatchpatch.DiffInsert:
			op = Add
		default:
			panic("never reached")
		}
		if n := len(spans); n > 0 && spans[n-1].Op == op {
			spans[n-1].Text += d.Text
			continue
		}
		spans = append(spans, Span{op, d.Text})
	}
	return spans
}
