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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// textcompare.DiffOptions and textcompare.Option.
package config

import (
	"fmt"
	"log/slog"
)

// Alignment selects how segment sequences are aligned.
type Alignment int

const (
	// Walk both segment sequences in lockstep. Every mismatching pair becomes a modification.
	AlignWalk Alignment = iota

	// Anchor the alignment on a minimal edit script and pair up remaining deletions and
	// insertions as modifications.
	AlignAnchored
)

func (a Alignment) String() string {
	switch a {
	case AlignWalk:
		return "walk"
	case AlignAnchored:
		return "anchored"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// Config collects all configurable parameters for the comparison engine.
type Config struct {
	// Normalization applied before comparing.
	IgnoreCase        bool
	IgnoreWhitespace  bool
	IgnorePunctuation bool

	// If either is set, the input is segmented and segments are compared instead of characters.
	SplitByParagraph bool
	SplitBySentence  bool

	// MaxCells is the largest LCS table the character diff is allowed to allocate. Larger inputs
	// use a linear space algorithm instead. A value <= 0 means no limit.
	MaxCells int

	// Segment alignment strategy.
	Alignment Alignment

	// If set, modifications carry intra-segment spans.
	InlineSpans bool

	// Logger receives debug records, it's never nil after FromOptions.
	Logger *slog.Logger
}

// Default is the default configuration.
var Default = Config{
	MaxCells:  1 << 24,
	Alignment: AlignWalk,
}

// Segmented reports if the comparison works on segments instead of characters.
func (c Config) Segmented() bool {
	return c.SplitByParagraph || c.SplitBySentence
}

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config)

// FromOptions applies opts to base and returns the resulting configuration.
func FromOptions(base Config, opts []Option) Config {
	cfg := base
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Alignment {
	case AlignWalk, AlignAnchored:
	default:
		panic("unknown alignment: " + cfg.Alignment.String())
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
