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

package spans

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want []Span
	}{
		{"empty", "", "", nil},
		{"identical", "same", "same", []Span{{Equal, "same"}}},
		{"removed", "abc", "", []Span{{Remove, "abc"}}},
		{"added", "", "abc", []Span{{Add, "abc"}}},
		{"appended", "hello", "hello world", []Span{{Equal, "hello"}, {Add, " world"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compute(%q, %q) result is different [-want,+got]:\n%s", tt.x, tt.y, diff)
			}
		})
	}
}

func TestComputeReconstructs(t *testing.T) {
	tests := []struct{ x, y string }{
		{"hello world", "hello rust"},
		{"这是第二段。", "这是修改后的第二段。"},
		{"The quick brown fox", "A quick red fox jumps"},
		{"abc", "xyz"},
	}
	for _, tt := range tests {
		got := Compute(tt.x, tt.y)
		var x, y strings.Builder
		for i, s := range got {
			if i > 0 && got[i-1].Op == s.Op {
				t.Errorf("Compute(%q, %q): adjacent spans %d and %d share op %v", tt.x, tt.y, i-1, i, s.Op)
			}
			if s.Op != Add {
				x.WriteString(s.Text)
			}
			if s.Op != Remove {
				y.WriteString(s.Text)
			}
		}
		if x.String() != tt.x || y.String() != tt.y {
			t.Errorf("Compute(%q, %q) reconstructs %q and %q", tt.x, tt.y, x.String(), y.String())
		}
	}
}
