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
	"iter"
	"strconv"

	"znkr.io/textcompare/internal/align"
	"znkr.io/textcompare/internal/chunk"
	"znkr.io/textcompare/internal/config"
	"znkr.io/textcompare/internal/lcs"
	"znkr.io/textcompare/internal/normalize"
	"znkr.io/textcompare/internal/script"
	"znkr.io/textcompare/internal/segment"
	"znkr.io/textcompare/internal/spans"
)

// Engine compares texts. An Engine is immutable and safe for concurrent use.
type Engine struct {
	opts DiffOptions
	cfg  config.Config
}

// New creates an engine for the given options.
func New(opts DiffOptions, extra ...Option) *Engine {
	base := config.Default
	base.IgnoreCase = opts.IgnoreCase
	base.IgnoreWhitespace = opts.IgnoreWhitespace
	base.IgnorePunctuation = opts.IgnorePunctuation
	base.SplitByParagraph = opts.SplitByParagraph
	base.SplitBySentence = opts.SplitBySentence
	return &Engine{
		opts: opts,
		cfg:  config.FromOptions(base, extra),
	}
}

// NewFromJSON creates an engine from JSON encoded options, see [ParseOptions].
func NewFromJSON(data []byte, extra ...Option) (*Engine, error) {
	opts, err := ParseOptions(data)
	if err != nil {
		return nil, err
	}
	return New(opts, extra...), nil
}

// Options returns the options the engine was created with.
func (e *Engine) Options() DiffOptions { return e.opts }

// ComputeDiff compares left and right.
//
// Both texts are normalized according to the options first. Without segmentation, the normalized
// texts are compared character by character, otherwise segment by segment. The statistics are
// computed against the texts as passed in.
func (e *Engine) ComputeDiff(left, right string) DiffResult {
	x := normalize.Text(left, e.cfg)
	y := normalize.Text(right, e.cfg)

	var items []DiffItem
	if e.cfg.Segmented() {
		// Segmentation rules depend on the input as written, not on the normalized text.
		cjk := script.ContainsCJK(left) || script.ContainsCJK(right)
		items = e.segmentDiff(x, y, cjk)
	} else {
		items = e.charDiff(x, y)
	}

	return DiffResult{
		Items: items,
		Stats: ComputeStats(items, left, right),
	}
}

// ComputeDiffStream compares left and right in chunks of chunkSize lines. Chunk i compares lines
// [i·chunkSize, (i+1)·chunkSize) of both texts using [Engine.ComputeDiff]. Chunk sizes below 1 are
// treated as 1.
//
// Chunks are computed one at a time as the sequence is iterated, there's no work done ahead of the
// consumer. The sequence is forward only: iterating it again continues after the last chunk that
// was delivered, so an exhausted sequence yields nothing. A sequence must not be iterated
// concurrently.
func (e *Engine) ComputeDiffStream(left, right string, chunkSize int) iter.Seq[DiffChunk] {
	plan := chunk.NewPlan(left, right, chunkSize)
	next := 0
	return func(yield func(DiffChunk) bool) {
		for next < plan.Total() {
			w := plan.Window(next)
			next++
			r := e.ComputeDiff(w.Left, w.Right)
			e.cfg.Logger.Debug("computed chunk", "index", w.Index, "total", w.Total, "items", len(r.Items))
			if !yield(DiffChunk{
				Index:        w.Index,
				Total:        w.Total,
				Items:        r.Items,
				PartialStats: r.Stats,
			}) {
				return
			}
		}
	}
}

func (e *Engine) charDiff(left, right string) []DiffItem {
	x, y := []rune(left), []rune(right)
	edits, linear := lcs.Diff(x, y, e.cfg.MaxCells)
	e.cfg.Logger.Debug("character diff", "left", len(x), "right", len(y), "edits", len(edits), "linear", linear)

	items := make([]DiffItem, 0, len(edits))
	for _, ed := range edits {
		var it DiffItem
		switch ed.Op {
		case lcs.Equal:
			it = DiffItem{
				Kind:       Equal,
				Content:    string(x[ed.X]),
				LineNumber: ed.X + 1,
				Position:   Position{ed.X, ed.X + 1},
			}
		case lcs.Remove:
			c := string(x[ed.X])
			it = DiffItem{
				Kind:            Remove,
				Content:         c,
				OriginalContent: c,
				LineNumber:      ed.X + 1,
				Position:        Position{ed.X, ed.X + 1},
			}
		case lcs.Add:
			it = DiffItem{
				Kind:       Add,
				Content:    string(y[ed.Y]),
				LineNumber: ed.Y + 1,
				Position:   Position{ed.Y, ed.Y + 1},
			}
		default:
			panic("never reached")
		}
		it.ID = itemID(len(items))
		items = append(items, it)
	}
	return items
}

func (e *Engine) segmentDiff(left, right string, cjk bool) []DiffItem {
	x, y := segment.Split(left, cjk), segment.Split(right, cjk)

	var pairs []align.Pair
	switch e.cfg.Alignment {
	case config.AlignAnchored:
		pairs = align.Anchored(x, y)
	default:
		pairs = align.Walk(x, y)
	}
	e.cfg.Logger.Debug("segment diff", "cjk", cjk, "left", len(x), "right", len(y), "alignment", e.cfg.Alignment)

	items := make([]DiffItem, 0, len(pairs))
	for _, p := range pairs {
		var it DiffItem
		switch p.Op {
		case align.Equal:
			it = DiffItem{
				Kind:       Equal,
				Content:    x[p.X],
				LineNumber: p.X + 1,
				Position:   Position{p.X, p.X + 1},
			}
		case align.Remove:
			it = DiffItem{
				Kind:            Remove,
				Content:         x[p.X],
				OriginalContent: x[p.X],
				LineNumber:      p.X + 1,
				Position:        Position{p.X, p.X + 1},
			}
		case align.Add:
			it = DiffItem{
				Kind:       Add,
				Content:    y[p.Y],
				LineNumber: p.Y + 1,
				Position:   Position{p.Y, p.Y + 1},
			}
		case align.Modify:
			it = DiffItem{
				Kind:            Modify,
				Content:         y[p.Y],
				OriginalContent: x[p.X],
				LineNumber:      p.X + 1,
				Position:        Position{p.X, p.X + 1},
			}
			if e.cfg.InlineSpans {
				it.Spans = inlineSpans(x[p.X], y[p.Y])
			}
		default:
			panic("never reached")
		}
		it.ID = itemID(len(items))
		items = append(items, it)
	}
	return items
}

func inlineSpans(original, content string) []Span {
	ss := spans.Compute(original, content)
	out := make([]Span, len(ss))
	for i, s := range ss {
		var k Kind
		switch s.Op {
		case spans.Equal:
			k = Equal
		case spans.Remove:
			k = Remove
		case spans.Add:
			k = Add
		default:
			panic("never reached")
		}
		out[i] = Span{Kind: k, Text: s.Text}
	}
	return out
}

func itemID(n int) string {
	return "diff-" + strconv.Itoa(n)
}
