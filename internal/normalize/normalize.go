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

// Package normalize applies the normalization options to text before it's compared.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"znkr.io/textcompare/internal/config"
	"znkr.io/textcompare/internal/script"
)

// Text returns s normalized according to cfg.
//
// The steps are applied in a fixed order, each observing the output of the previous one: case
// folding, whitespace collapsing, and finally punctuation removal.
func Text(s string, cfg config.Config) string {
	if cfg.IgnoreCase {
		// Casers are stateful and can't be shared between goroutines.
		s = cases.Lower(language.Und).String(s)
	}
	if cfg.IgnoreWhitespace {
		s = strings.Join(strings.Fields(s), " ")
	}
	if cfg.IgnorePunctuation {
		s = strings.Map(func(r rune) rune {
			if keep(r) {
				return r
			}
			return -1
		}, s)
	}
	return s
}

// keep reports if r survives punctuation removal: alphabetic (letters and Other_Alphabetic marks
// like Indic vowel signs), numeric, whitespace, or CJK.
func keep(r rune) bool {
	return unicode.IsLetter(r) || unicode.In(r, unicode.Other_Alphabetic) || unicode.IsNumber(r) ||
		unicode.IsSpace(r) || script.IsCJK(r)
}
