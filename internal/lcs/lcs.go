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

// Package lcs computes element wise edit scripts based on the longest common subsequence of two
// inputs.
//
// The primary algorithm fills the classic (m+1)×(n+1) dynamic programming table and walks it back
// from the bottom right corner. Time and space are O(m·n). Because that's prohibitive for large
// inputs, [Diff] accepts a limit on the table size and switches to the linear space Myers algorithm
// from [znkr.io/diff] when the limit is exceeded.
package lcs

import (
	"slices"

	"znkr.io/diff"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Equal  Op = iota // Elements match
	Remove           // Element only in x
	Add              // Element only in y
)

// Edit describes a single edit of an edit script. X and Y are indices into the two inputs, -1 if
// the edit doesn't refer to that side.
type Edit struct {
	Op   Op
	X, Y int
}

// Diff returns an edit script that transforms x into y.
//
// If the LCS table for x and y would have more than maxCells cells, the edit script is computed
// in linear space instead and linear is true. The result is still a valid edit script, but edit
// placement may differ from the table backtrace. A maxCells <= 0 disables the limit.
func Diff[T comparable](x, y []T, maxCells int) (edits []Edit, linear bool) {
	// The backtrace always takes a trailing match first, so stripping the common suffix doesn't
	// change the result but reduces the table size.
	m, n := len(x), len(y)
	for m > 0 && n > 0 && x[m-1] == y[n-1] {
		m--
		n--
	}
	suffix := len(x) - m

	edits = make([]Edit, 0, m+n+suffix)
	if maxCells > 0 && exceeds(m, n, maxCells) {
		edits = appendLinear(edits, x[:m], y[:n])
		linear = true
	} else {
		edits = appendTable(edits, x[:m], y[:n])
	}
	for k := range suffix {
		edits = append(edits, Edit{Equal, m + k, n + k})
	}
	return edits, linear
}

// exceeds reports if (m+1)·(n+1) > limit without overflowing.
func exceeds(m, n, limit int) bool {
	return m+1 > limit/(n+1)
}

func appendTable[T comparable](edits []Edit, x, y []T) []Edit {
	m, n := len(x), len(y)
	w := n + 1

	// table[i*w+j] is the length of the LCS of x[:i] and y[:j].
	table := make([]int32, (m+1)*w)
	for i := 1; i <= m; i++ {
		prev, row := table[(i-1)*w:i*w], table[i*w:(i+1)*w]
		for j := 1; j <= n; j++ {
			if x[i-1] == y[j-1] {
				row[j] = prev[j-1] + 1
			} else {
				row[j] = max(prev[j], row[j-1])
			}
		}
	}

	start := len(edits)
	for i, j := m, n; i > 0 || j > 0; {
		switch {
		case i == 0:
			edits = append(edits, Edit{Add, -1, j - 1})
			j--
		case j == 0:
			edits = append(edits, Edit{Remove, i - 1, -1})
			i--
		case x[i-1] == y[j-1]:
			edits = append(edits, Edit{Equal, i - 1, j - 1})
			i--
			j--
		case table[(i-1)*w+j] > table[i*w+j-1]: // ties favor Add
			edits = append(edits, Edit{Remove, i - 1, -1})
			i--
		default:
			edits = append(edits, Edit{Add, -1, j - 1})
			j--
		}
	}
	slices.Reverse(edits[start:])
	return edits
}

func appendLinear[T comparable](edits []Edit, x, y []T) []Edit {
	s, t := 0, 0
	for _, e := range diff.Edits(x, y) {
		switch e.Op {
		case diff.Match:
			edits = append(edits, Edit{Equal, s, t})
			s++
			t++
		case diff.Delete:
			edits = append(edits, Edit{Remove, s, -1})
			s++
		case diff.Insert:
			edits = append(edits, Edit{Add, -1, t})
			t++
		default:
			panic("never reached")
		}
	}
	return edits
}
