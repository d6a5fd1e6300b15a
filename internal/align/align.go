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

// Package align aligns two sequences of segments.
package align

import "znkr.io/diff"

// Op describes how a pair of segments relates.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Equal  Op = iota // X and Y are identical
	Remove           // X only
	Add              // Y only
	Modify           // Y replaces X
)

// Pair is a single alignment step. X and Y are indices into the two inputs, -1 if the pair doesn't
// refer to that side.
type Pair struct {
	Op   Op
	X, Y int
}

// Walk aligns x and y by walking both in lockstep.
//
// Walk doesn't search for an alignment: as soon as the sequences diverge, every following pair of
// segments is reported as a modification, even if one side merely inserted a segment. Leftover
// segments on the longer side are reported as removals or additions.
func Walk(x, y []string) []Pair {
	pairs := make([]Pair, 0, max(len(x), len(y)))
	s, t := 0, 0
	for s < len(x) || t < len(y) {
		switch {
		case s >= len(x):
			pairs = append(pairs, Pair{Add, -1, t})
			t++
		case t >= len(y):
			pairs = append(pairs, Pair{Remove, s, -1})
			s++
		case x[s] == y[t]:
			pairs = append(pairs, Pair{Equal, s, t})
			s++
			t++
		default:
			pairs = append(pairs, Pair{Modify, s, t})
			s++
			t++
		}
	}
	return pairs
}

// Anchored aligns x and y based on an edit script that anchors on segments occurring exactly once
// in both inputs. Within each run of consecutive changes, removals and additions are paired up in
// order as modifications. Unpaired leftovers stay removals or additions.
func Anchored(x, y []string) []Pair {
	edits := diff.Edits(x, y)
	pairs := make([]Pair, 0, len(edits))
	s, t := 0, 0
	for i := 0; i < len(edits); {
		if edits[i].Op == diff.Match {
			pairs = append(pairs, Pair{Equal, s, t})
			s++
			t++
			i++
			continue
		}

		// Collect a run of changes.
		var dels, ins []int
		for ; i < len(edits) && edits[i].Op != diff.Match; i++ {
			switch edits[i].Op {
			case diff.Delete:
				dels = append(dels, s)
				s++
			case diff.Insert:
				ins = append(ins, t)
				t++
			}
		}

		n := min(len(dels), len(ins))
		for k := range n {
			pairs = append(pairs, Pair{Modify, dels[k], ins[k]})
		}
		for _, d := range dels[n:] {
			pairs = append(pairs, Pair{Remove, d, -1})
		}
		for _, a := range ins[n:] {
			pairs = append(pairs, Pair{Add, -1, a})
		}
	}
	return pairs
}
