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

package lcs

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want []Edit
	}{
		{
			name: "empty",
			x:    "",
			y:    "",
			want: nil,
		},
		{
			name: "x-empty",
			x:    "",
			y:    "ab",
			want: []Edit{{Add, -1, 0}, {Add, -1, 1}},
		},
		{
			name: "y-empty",
			x:    "ab",
			y:    "",
			want: []Edit{{Remove, 0, -1}, {Remove, 1, -1}},
		},
		{
			name: "identical",
			x:    "abc",
			y:    "abc",
			want: []Edit{{Equal, 0, 0}, {Equal, 1, 1}, {Equal, 2, 2}},
		},
		{
			name: "removed-suffix",
			x:    "ab",
			y:    "a",
			want: []Edit{{Equal, 0, 0}, {Remove, 1, -1}},
		},
		{
			// The backtrace matches the last 'a' of y, the first one becomes an insertion.
			name: "duplicate-insert",
			x:    "a",
			y:    "aa",
			want: []Edit{{Add, -1, 0}, {Equal, 0, 1}},
		},
		{
			// Ties in the table favor insertions during the backtrace.
			name: "swap",
			x:    "ab",
			y:    "ba",
			want: []Edit{{Remove, 0, -1}, {Equal, 1, 0}, {Add, -1, 1}},
		},
		{
			name: "replace",
			x:    "abc",
			y:    "axc",
			want: []Edit{{Equal, 0, 0}, {Remove, 1, -1}, {Add, -1, 1}, {Equal, 2, 2}},
		},
		{
			name: "cjk",
			x:    "你好世界",
			y:    "你们好",
			want: []Edit{{Equal, 0, 0}, {Add, -1, 1}, {Equal, 1, 2}, {Remove, 2, -1}, {Remove, 3, -1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, linear := Diff([]rune(tt.x), []rune(tt.y), 0)
			if linear {
				t.Errorf("Diff(...) used linear space without a limit")
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Diff(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

// fullTable is the table backtrace without stripping the common suffix.
func fullTable(x, y []rune) []Edit {
	return appendTable(nil, x, y)
}

func TestDiffSuffixStripping(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range 200 {
		x := randomRunes(rng, rng.IntN(30), "abc")
		y := randomRunes(rng, rng.IntN(30), "abc")
		got, _ := Diff(x, y, 0)
		want := fullTable(x, y)
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("case %d: Diff(%q, %q) differs from full table [-want,+got]:\n%s", i, string(x), string(y), diff)
		}
	}
}

func TestDiffLinearFallback(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := range 100 {
		x := randomRunes(rng, 10+rng.IntN(50), "abcd")
		y := randomRunes(rng, 10+rng.IntN(50), "abcd")
		got, linear := Diff(x, y, 16)
		// A common suffix can shrink the problem enough to fit the table.
		if !linear && exceeds(len(x), len(y), 16) && x[len(x)-1] != y[len(y)-1] {
			t.Fatalf("case %d: Diff(...) didn't use linear space for %d×%d", i, len(x), len(y))
		}
		checkScript(t, x, y, got)
	}
}

func TestDiffTableIsValid(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 100 {
		x := randomRunes(rng, rng.IntN(40), "ab ")
		y := randomRunes(rng, rng.IntN(40), "ab ")
		got, _ := Diff(x, y, 0)
		checkScript(t, x, y, got)

		var matches int
		for _, e := range got {
			if e.Op == Equal {
				matches++
			}
		}
		if want := lcsLen(x, y); matches != want {
			t.Fatalf("Diff(%q, %q) has %d matches, want %d", string(x), string(y), matches, want)
		}
	}
}

func TestExceeds(t *testing.T) {
	tests := []struct {
		m, n, limit int
		want        bool
	}{
		{0, 0, 1, false},
		{1, 1, 4, false},
		{1, 1, 3, true},
		{3, 4, 20, false},
		{3, 4, 19, true},
		{1 << 40, 1 << 40, 1 << 24, true},
	}
	for _, tt := range tests {
		if got := exceeds(tt.m, tt.n, tt.limit); got != tt.want {
			t.Errorf("exceeds(%d, %d, %d) = %v, want %v", tt.m, tt.n, tt.limit, got, tt.want)
		}
	}
}

func BenchmarkDiff(b *testing.B) {
	rng := rand.New(rand.NewPCG(7, 8))
	for _, n := range []int{100, 1000} {
		x := randomRunes(rng, n, "abcdefgh")
		y := slices.Clone(x)
		for range n / 10 {
			y[rng.IntN(n)] = 'z'
		}
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				Diff(x, y, 0)
			}
		})
	}
}

// checkScript verifies that edits reconstruct x and y in order.
func checkScript(t *testing.T, x, y []rune, edits []Edit) {
	t.Helper()
	var gotX, gotY []rune
	for _, e := range edits {
		switch e.Op {
		case Equal:
			if x[e.X] != y[e.Y] {
				t.Fatalf("Equal edit %v matches %q and %q", e, x[e.X], y[e.Y])
			}
			gotX = append(gotX, x[e.X])
			gotY = append(gotY, y[e.Y])
		case Remove:
			gotX = append(gotX, x[e.X])
		case Add:
			gotY = append(gotY, y[e.Y])
		}
	}
	if string(gotX) != string(x) || string(gotY) != string(y) {
		t.Fatalf("edit script doesn't reconstruct inputs:\nx:   %q\ngot: %q\ny:   %q\ngot: %q", string(x), string(gotX), string(y), string(gotY))
	}
}

func lcsLen(x, y []rune) int {
	prev := make([]int, len(y)+1)
	for i := range x {
		cur := make([]int, len(y)+1)
		for j := range y {
			if x[i] == y[j] {
				cur[j+1] = prev[j] + 1
			} else {
				cur[j+1] = max(prev[j+1], cur[j])
			}
		}
		prev = cur
	}
	return prev[len(y)]
}

func randomRunes(rng *rand.Rand, n int, alphabet string) []rune {
	a := []rune(alphabet)
	out := make([]rune, n)
	for i := range out {
		out[i] = a[rng.IntN(len(a))]
	}
	return out
}
