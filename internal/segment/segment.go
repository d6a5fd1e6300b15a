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

// Package segment splits text into sentence like segments.
//
// There are two variants: [CJK] keeps the terminal punctuation attached to the segment it closes,
// [Latin] treats the terminal punctuation as a delimiter and drops it.
package segment

import (
	"strings"
	"unicode/utf8"
)

const (
	cjkTerminals   = "。！？；"
	latinTerminals = ".!?;"
)

// Split splits s using [CJK] if cjk is set and [Latin] otherwise.
func Split(s string, cjk bool) []string {
	if cjk {
		return CJK(s)
	}
	return Latin(s)
}

// CJK splits s after every CJK sentence terminal. A trailing segment without terminal punctuation
// is kept.
func CJK(s string) []string {
	var segs []string
	start := 0
	for i, r := range s {
		if strings.ContainsRune(cjkTerminals, r) {
			end := i + utf8.RuneLen(r)
			segs = append(segs, s[start:end])
			start = end
		}
	}
	if start < len(s) {
		segs = append(segs, s[start:])
	}
	return segs
}

// Latin splits s on '.', '!', '?', and ';'. The delimiters are dropped. Empty segments between
// consecutive delimiters are kept, but an empty segment after the last delimiter is not.
func Latin(s string) []string {
	var segs []string
	start := 0
	for i := range len(s) {
		// The delimiters are ASCII and never part of a multi-byte sequence.
		if strings.IndexByte(latinTerminals, s[i]) >= 0 {
			segs = append(segs, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		segs = append(segs, s[start:])
	}
	return segs
}
