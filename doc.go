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

// Package textcompare compares two texts and reports their differences as an ordered sequence of
// typed items plus aggregate statistics.
//
// An [Engine] is configured once with [DiffOptions] and can then be used to compare any number of
// texts, also concurrently. [Engine.ComputeDiff] compares two texts at once,
// [Engine.ComputeDiffStream] partitions large inputs into line bounded chunks and compares them
// one chunk at a time as the caller pulls them.
//
// There are two comparison paths:
//
//   - By default, the normalized texts are compared character by character using the longest
//     common subsequence. Time and space complexity is O(m·n) for inputs of m and n characters.
//     Inputs whose table would exceed the limit set by [MaxCells] are compared with a linear
//     space algorithm instead.
//   - If [DiffOptions.SplitBySentence] or [DiffOptions.SplitByParagraph] is set, both texts are
//     split into sentence like segments first and the segments are aligned. Texts containing CJK
//     ideographs are split after the CJK terminals 。！？； (which stay attached to their
//     segment), other texts are split on . ! ? ; (which are dropped).
//
// All result types round-trip through JSON with snake_case field names. Item kinds are encoded as
// "Add", "Remove", "Modify", and "Equal".
package textcompare
