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

import "strings"

// ComputeStats aggregates items that resulted from comparing left and right.
//
// Similarity approximates the unchanged share of the longer input: the byte length of the content
// of all items that aren't Equal is subtracted from the byte length of the longer input. For
// modifications only the new text is counted, so the value isn't symmetric in left and right. It's
// clamped to [0, 100] and 100 if both inputs are empty.
func ComputeStats(items []DiffItem, left, right string) DiffStats {
	var s DiffStats
	changed := 0
	for _, it := range items {
		switch it.Kind {
		case Add:
			s.Additions++
			s.AddedWords += countWords(it.Content)
		case Remove:
			s.Deletions++
			s.DeletedWords += countWords(it.Content)
		case Modify:
			s.Modifications++
			s.AddedWords += countWords(it.Content)
			s.DeletedWords += countWords(it.OriginalContent)
		}
		if it.Kind != Equal {
			changed += len(it.Content)
		}
	}
	s.TotalChanges = s.Additions + s.Deletions + s.Modifications

	total := max(len(left), len(right))
	if total == 0 {
		s.Similarity = 100
	} else {
		s.Similarity = min(100, max(0, float64(total-changed)/float64(total)*100))
	}
	return s
}

// countWords returns the number of whitespace delimited words in s.
func countWords(s string) int {
	return len(strings.Fields(s))
}
