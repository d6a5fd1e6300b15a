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
	"encoding/json"
	"fmt"
)

// MarshalText encodes k as its name.
func (k Kind) MarshalText() ([]byte, error) {
	if k < Add || k > Equal {
		return nil, fmt.Errorf("unknown kind: %v", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind from its name.
func (k *Kind) UnmarshalText(text []byte) error {
	for c := Add; c <= Equal; c++ {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown kind: %q", text)
}

// jsonItem is the interchange form of a DiffItem. Absent optional values are encoded as null.
type jsonItem struct {
	ID              string   `json:"id"`
	Kind            Kind     `json:"kind"`
	Content         string   `json:"content"`
	OriginalContent *string  `json:"original_content"`
	LineNumber      *int     `json:"line_number"`
	Position        Position `json:"position"`
	Spans           []Span   `json:"spans,omitempty"`
}

// MarshalJSON encodes the item. original_content is only present for Remove and Modify items.
func (it DiffItem) MarshalJSON() ([]byte, error) {
	j := jsonItem{
		ID:       it.ID,
		Kind:     it.Kind,
		Content:  it.Content,
		Position: it.Position,
		Spans:    it.Spans,
	}
	if it.Kind == Remove || it.Kind == Modify {
		j.OriginalContent = &it.OriginalContent
	}
	if it.LineNumber > 0 {
		j.LineNumber = &it.LineNumber
	}
	return json.Marshal(j)
}

// UnmarshalJSON decodes the item.
func (it *DiffItem) UnmarshalJSON(data []byte) error {
	var j jsonItem
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*it = DiffItem{
		ID:       j.ID,
		Kind:     j.Kind,
		Content:  j.Content,
		Position: j.Position,
		Spans:    j.Spans,
	}
	if j.OriginalContent != nil {
		it.OriginalContent = *j.OriginalContent
	}
	if j.LineNumber != nil {
		it.LineNumber = *j.LineNumber
	}
	return nil
}
