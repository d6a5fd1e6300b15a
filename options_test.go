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

package textcompare

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    DiffOptions
		wantErr string
	}{
		{
			name: "all-false",
			in:   `{"ignore_case":false,"ignore_whitespace":false,"ignore_punctuation":false,"split_by_paragraph":false,"split_by_sentence":false,"use_web_worker":false}`,
			want: DiffOptions{},
		},
		{
			name: "mixed",
			in:   `{"ignore_case":true,"ignore_whitespace":true,"ignore_punctuation":false,"split_by_paragraph":true,"split_by_sentence":false,"use_web_worker":true}`,
			want: DiffOptions{IgnoreCase: true, IgnoreWhitespace: true, SplitByParagraph: true, UseWebWorker: true},
		},
		{
			name: "unknown-fields",
			in:   `{"ignore_case":true,"ignore_whitespace":false,"ignore_punctuation":false,"split_by_paragraph":false,"split_by_sentence":false,"use_web_worker":false,"theme":"dark"}`,
			want: DiffOptions{IgnoreCase: true},
		},
		{
			name: "surrounding-whitespace",
			in:   " \n{\"ignore_case\":false,\"ignore_whitespace\":false,\"ignore_punctuation\":false,\"split_by_paragraph\":false,\"split_by_sentence\":true,\"use_web_worker\":false}\n",
			want: DiffOptions{SplitBySentence: true},
		},
		{
			name:    "missing-field",
			in:      `{"ignore_case":true,"ignore_whitespace":false,"ignore_punctuation":false,"split_by_paragraph":false,"split_by_sentence":false}`,
			wantErr: `missing field "use_web_worker"`,
		},
		{
			name:    "empty-object",
			in:      `{}`,
			wantErr: `missing field "ignore_case"`,
		},
		{
			name:    "wrong-type",
			in:      `{"ignore_case":"yes","ignore_whitespace":false,"ignore_punctuation":false,"split_by_paragraph":false,"split_by_sentence":false,"use_web_worker":false}`,
			wantErr: "decoding",
		},
		{
			name:    "malformed",
			in:      `{"ignore_case":`,
			wantErr: "decoding",
		},
		{
			name:    "empty",
			in:      "",
			wantErr: "decoding",
		},
		{
			name:    "trailing-data",
			in:      `{"ignore_case":false,"ignore_whitespace":false,"ignore_punctuation":false,"split_by_paragraph":false,"split_by_sentence":false,"use_web_worker":false} {}`,
			wantErr: "trailing data",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptions([]byte(tt.in))
			if tt.wantErr != "" {
				var cerr *ConfigurationError
				if !errors.As(err, &cerr) {
					t.Fatalf("ParseOptions(%q) error = %v, want a *ConfigurationError", tt.in, err)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("ParseOptions(%q) error = %q, want it to contain %q", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOptions(%q) failed: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseOptions(%q) result is different [-want,+got]:\n%s", tt.in, diff)
			}
		})
	}
}

func TestConfigurationErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := error(&ConfigurationError{inner})
	if !errors.Is(err, inner) {
		t.Errorf("errors.Is(%v, %v) = false, want true", err, inner)
	}
	if got, want := err.Error(), "textcompare: invalid options: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUseWebWorkerIsIgnored(t *testing.T) {
	left, right := "Hello. World.", "Hello. Welt."
	for _, opts := range optionGrid() {
		hinted := opts
		hinted.UseWebWorker = true
		want := New(opts).ComputeDiff(left, right)
		got := New(hinted).ComputeDiff(left, right)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%+v: use_web_worker changed the result [-without,+with]:\n%s", opts, diff)
		}
	}
}
