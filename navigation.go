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
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// previewWidth is the maximum width of a navigation preview in terminal columns.
const previewWidth = 50

// NavigationItem points to a change in a result.
type NavigationItem struct {
	ID         string `json:"id"`
	Kind       Kind   `json:"kind"`
	LineNumber int    `json:"line_number"`
	Preview    string `json:"preview"`
}

// Navigation returns one entry for every item that isn't Equal, in order.
//
// Previews are cut at grapheme cluster boundaries to fit into 50 terminal columns, with East Asian
// characters counting as two columns. Cut previews end in "...".
func Navigation(items []DiffItem) []NavigationItem {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = true
	cond.StrictEmojiNeutral = true

	var nav []NavigationItem
	for _, it := range items {
		if it.Kind == Equal {
			continue
		}
		nav = append(nav, NavigationItem{
			ID:         it.ID,
			Kind:       it.Kind,
			LineNumber: it.LineNumber,
			Preview:    preview(it.Content, cond),
		})
	}
	return nav
}

func preview(s string, cond *runewidth.Condition) string {
	if cond.StringWidth(s) <= previewWidth {
		return s
	}
	w := 0
	iter := graphemes.FromString(s)
	for iter.Next() {
		gw := cond.StringWidth(iter.Value())
		if w+gw > previewWidth {
			return s[:iter.Start()] + "..."
		}
		w += gw
	}
	return s
}
