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

// textcompare compares two text files and prints the differences.
//
// Usage:
//
//	textcompare [flags] <left> <right>
//
// By default, the result is printed in its JSON interchange form. With -format=text a short
// listing of all changes is printed instead, and -format=nav prints the navigation entries as
// JSON. With -chunk=n the files are compared n lines at a time and every chunk is printed as soon
// as it's computed, one JSON object per line in JSON mode.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"znkr.io/textcompare"
)

type config struct {
	opts     textcompare.DiffOptions
	optsFile string
	format   string
	chunk    int
	maxCells int
	align    string
	spans    bool
	color    bool
	width    int
	verbose  bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var cfg config
	fs := flag.NewFlagSet("textcompare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.opts.IgnoreCase, "ignore-case", false, "compare case insensitively")
	fs.BoolVar(&cfg.opts.IgnoreWhitespace, "ignore-whitespace", false, "collapse runs of whitespace")
	fs.BoolVar(&cfg.opts.IgnorePunctuation, "ignore-punctuation", false, "ignore punctuation")
	fs.BoolVar(&cfg.opts.SplitByParagraph, "split-by-paragraph", false, "compare paragraphs instead of characters")
	fs.BoolVar(&cfg.opts.SplitBySentence, "split-by-sentence", false, "compare sentences instead of characters")
	fs.StringVar(&cfg.optsFile, "options", "", "JSON file with diff options, flags set explicitly take precedence")
	fs.StringVar(&cfg.format, "format", "json", "output format: json, text, or nav")
	fs.IntVar(&cfg.chunk, "chunk", 0, "if >0, compare in chunks of this many lines")
	fs.IntVar(&cfg.maxCells, "max-cells", 1<<24, "table size limit for character comparisons, <=0 for no limit")
	fs.StringVar(&cfg.align, "align", "walk", "segment alignment: walk or anchored")
	fs.BoolVar(&cfg.spans, "spans", false, "add inline spans to modified segments")
	fs.BoolVar(&cfg.color, "color", false, "color text output")
	fs.IntVar(&cfg.width, "width", 80, "if >0, truncate text output to this many columns")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug information to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("expected 2 files, got %d: %v", fs.NArg(), fs.Args())
	}

	if cfg.optsFile != "" {
		if err := loadOptions(fs, &cfg); err != nil {
			return err
		}
	}

	switch cfg.format {
	case "json", "text", "nav":
	default:
		return fmt.Errorf("unknown format %q", cfg.format)
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	extra := []textcompare.Option{textcompare.MaxCells(cfg.maxCells), textcompare.Logger(logger)}
	switch cfg.align {
	case "walk":
	case "anchored":
		extra = append(extra, textcompare.Anchored())
	default:
		return fmt.Errorf("unknown alignment %q", cfg.align)
	}
	if cfg.spans {
		extra = append(extra, textcompare.InlineSpans())
	}

	left, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading left file: %w", err)
	}
	right, err := os.ReadFile(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("reading right file: %w", err)
	}

	e := textcompare.New(cfg.opts, extra...)
	logger.Debug("comparing", "left", fs.Arg(0), "right", fs.Arg(1), "options", cfg.opts)

	p := &printer{w: stdout, cfg: &cfg}
	if cfg.chunk > 0 {
		for c := range e.ComputeDiffStream(string(left), string(right), cfg.chunk) {
			if err := p.chunk(c); err != nil {
				return err
			}
		}
		return nil
	}
	return p.result(e.ComputeDiff(string(left), string(right)))
}

// loadOptions reads the options file. Option flags that were set explicitly override the file.
func loadOptions(fs *flag.FlagSet, cfg *config) error {
	data, err := os.ReadFile(cfg.optsFile)
	if err != nil {
		return fmt.Errorf("reading options: %w", err)
	}
	opts, err := textcompare.ParseOptions(data)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.String() == "true"
		switch f.Name {
		case "ignore-case":
			opts.IgnoreCase = v
		case "ignore-whitespace":
			opts.IgnoreWhitespace = v
		case "ignore-punctuation":
			opts.IgnorePunctuation = v
		case "split-by-paragraph":
			opts.SplitByParagraph = v
		case "split-by-sentence":
			opts.SplitBySentence = v
		}
	})
	cfg.opts = opts
	return nil
}

var symbols = [...]string{
	textcompare.Add:    "+",
	textcompare.Remove: "-",
	textcompare.Modify: "~",
	textcompare.Equal:  " ",
}

var colors = [...]string{
	textcompare.Add:    format(32),
	textcompare.Remove: format(31),
	textcompare.Modify: format(33),
	textcompare.Equal:  "",
}

var reset = format(0)

func format(params ...int) string {
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}

type printer struct {
	w   io.Writer
	cfg *config
}

func (p *printer) result(r textcompare.DiffResult) error {
	switch p.cfg.format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "nav":
		return p.navigation(r.Items)
	default:
		if err := p.items(r.Items); err != nil {
			return err
		}
		return p.stats(r.Stats)
	}
}

func (p *printer) chunk(c textcompare.DiffChunk) error {
	switch p.cfg.format {
	case "json":
		return json.NewEncoder(p.w).Encode(c)
	case "nav":
		return p.navigation(c.Items)
	default:
		if _, err := fmt.Fprintf(p.w, "chunk %d/%d\n", c.Index+1, c.Total); err != nil {
			return err
		}
		if err := p.items(c.Items); err != nil {
			return err
		}
		return p.stats(c.PartialStats)
	}
}

func (p *printer) navigation(items []textcompare.DiffItem) error {
	nav := textcompare.Navigation(items)
	if nav == nil {
		nav = []textcompare.NavigationItem{}
	}
	return json.NewEncoder(p.w).Encode(nav)
}

func (p *printer) items(items []textcompare.DiffItem) error {
	for _, it := range items {
		if it.Kind == textcompare.Equal {
			continue
		}
		body := strconv.Quote(it.Content)
		if it.Kind == textcompare.Modify {
			body = strconv.Quote(it.OriginalContent) + " -> " + body
		}
		line := fmt.Sprintf("%s %4d %s", symbols[it.Kind], it.LineNumber, body)
		if p.cfg.width > 0 {
			line = runewidth.Truncate(line, p.cfg.width, "...")
		}
		if p.cfg.color {
			line = colors[it.Kind] + line + reset
		}
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) stats(s textcompare.DiffStats) error {
	_, err := fmt.Fprintf(p.w, "%d changes (%d added, %d removed, %d modified), similarity %.1f%%\n",
		s.TotalChanges, s.Additions, s.Deletions, s.Modifications, s.Similarity)
	return err
}
