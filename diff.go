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

// Kind describes the kind of a difference.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Add    Kind = iota // Content only exists in the right text
	Remove             // Content only exists in the left text
	Modify             // Content in the right text replaces OriginalContent in the left text
	Equal              // Content exists in both texts
)

// Position is a half-open index range [Start, End) into the sequence of characters or segments
// that produced an item.
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// DiffItem is a single difference.
//
//   - For Add, Content is the added text.
//   - For Remove, Content and OriginalContent are both the removed text.
//   - For Modify, Content is the new text and OriginalContent the text it replaces.
//   - For Equal, Content is the unchanged text.
//
// IDs are numbered in item order, starting at "diff-0" for the leftmost item. This also holds for
// character comparisons, whose items are found back to front.
type DiffItem struct {
	ID              string   // Unique within a result, "diff-0", "diff-1", ... increasing left to right.
	Kind            Kind     // Kind of difference.
	Content         string   // Text on the right side, or the removed text for Remove.
	OriginalContent string   // Replaced text for Modify, removed text for Remove, empty otherwise.
	LineNumber      int      // 1-based index into the side the item refers to, 0 if unknown.
	Position        Position // Index range into the character or segment sequence.
	Spans           []Span   // Intra-segment changes of a Modify item, only with InlineSpans.
}

// Span is a part of a modified segment. Kind is one of Equal, Remove, or Add.
type Span struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// DiffStats aggregates the items of a comparison.
type DiffStats struct {
	TotalChanges  int     `json:"total_changes"` // Additions + Deletions + Modifications
	Additions     int     `json:"additions"`
	Deletions     int     `json:"deletions"`
	Modifications int     `json:"modifications"`
	AddedWords    int     `json:"added_words"`   // Words in added and new modified text
	DeletedWords  int     `json:"deleted_words"` // Words in removed and replaced modified text
	Similarity    float64 `json:"similarity"`    // Percentage between 0 and 100
}

// DiffResult is the result of comparing two texts.
type DiffResult struct {
	Items []DiffItem `json:"items"`
	Stats DiffStats  `json:"stats"`
}

// DiffChunk is the result of comparing a single chunk of a stream. Items and PartialStats only
// describe this chunk.
type DiffChunk struct {
	Index        int        `json:"index"`
	Total        int        `json:"total"`
	Items        []DiffItem `json:"items"`
	PartialStats DiffStats  `json:"partial_stats"`
}
