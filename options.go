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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"znkr.io/textcompare/internal/config"
)

// DiffOptions controls normalization and segmentation.
type DiffOptions struct {
	IgnoreCase        bool `json:"ignore_case"`        // Compare case insensitively
	IgnoreWhitespace  bool `json:"ignore_whitespace"`  // Collapse whitespace runs and trim
	IgnorePunctuation bool `json:"ignore_punctuation"` // Drop everything but letters, numbers, whitespace, and CJK
	SplitByParagraph  bool `json:"split_by_paragraph"` // Compare segments instead of characters
	SplitBySentence   bool `json:"split_by_sentence"`  // Compare segments instead of characters

	// UseWebWorker is a hint for user interfaces hosting the engine. The engine ignores it.
	UseWebWorker bool `json:"use_web_worker"`
}

// ConfigurationError reports malformed options.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return "textcompare: invalid options: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ParseOptions decodes JSON encoded options. All fields must be present, unknown fields are
// ignored. Any failure is reported as a [*ConfigurationError].
func ParseOptions(data []byte) (DiffOptions, error) {
	var raw struct {
		IgnoreCase        *bool `json:"ignore_case"`
		IgnoreWhitespace  *bool `json:"ignore_whitespace"`
		IgnorePunctuation *bool `json:"ignore_punctuation"`
		SplitByParagraph  *bool `json:"split_by_paragraph"`
		SplitBySentence   *bool `json:"split_by_sentence"`
		UseWebWorker      *bool `json:"use_web_worker"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return DiffOptions{}, &ConfigurationError{fmt.Errorf("decoding: %w", err)}
	}
	if _, err := dec.Token(); err != io.EOF {
		return DiffOptions{}, &ConfigurationError{errors.New("trailing data after options")}
	}

	fields := []struct {
		name string
		v    *bool
	}{
		{"ignore_case", raw.IgnoreCase},
		{"ignore_whitespace", raw.IgnoreWhitespace},
		{"ignore_punctuation", raw.IgnorePunctuation},
		{"split_by_paragraph", raw.SplitByParagraph},
		{"split_by_sentence", raw.SplitBySentence},
		{"use_web_worker", raw.UseWebWorker},
	}
	for _, f := range fields {
		if f.v == nil {
			return DiffOptions{}, &ConfigurationError{fmt.Errorf("missing field %q", f.name)}
		}
	}
	return DiffOptions{
		IgnoreCase:        *raw.IgnoreCase,
		IgnoreWhitespace:  *raw.IgnoreWhitespace,
		IgnorePunctuation: *raw.IgnorePunctuation,
		SplitByParagraph:  *raw.SplitByParagraph,
		SplitBySentence:   *raw.SplitBySentence,
		UseWebWorker:      *raw.UseWebWorker,
	}, nil
}

// Option configures the engine beyond [DiffOptions].
type Option = config.Option

// MaxCells limits the size of the table used for character comparisons. Inputs of m and n
// characters need (m+1)·(n+1) cells. Above the limit, a linear space algorithm is used that
// produces a valid, but possibly different, edit script. The default is 1<<24 cells, n <= 0 removes
// the limit.
func MaxCells(n int) Option {
	return func(cfg *config.Config) {
		cfg.MaxCells = n
	}
}

// Anchored aligns segments on an edit script instead of walking both segment sequences in lockstep.
//
// By default, once two segment sequences diverge, every following pair of segments is reported as
// a modification, even when one side merely inserted a segment. With this option, insertions and
// removals are detected and only the remaining mismatches are paired up as modifications.
func Anchored() Option {
	return func(cfg *config.Config) {
		cfg.Alignment = config.AlignAnchored
	}
}

// InlineSpans adds intra-segment spans to modifications.
func InlineSpans() Option {
	return func(cfg *config.Config) {
		cfg.InlineSpans = true
	}
}

// Logger sets a logger for debug records. By default, nothing is logged.
func Logger(l *slog.Logger) Option {
	return func(cfg *config.Config) {
		cfg.Logger = l
	}
}
