package book

import (
	"fmt"
	"io"
	"slices"

	json "github.com/goccy/go-json"
)

// TOCEntry is one recorded heading, in insertion order.
type TOCEntry struct {
	Title string `json:"title"`
	Level int    `json:"level"`
	Label string `json:"label"`
}

// TOC renders the table of contents from everything recorded so far: a
// wrapping div, optionally the table's own numbered heading, then one link
// line per entry. Entries deeper than the configured depth are skipped
// (depth 0 lists every level), and the table's own heading is listed only
// when include_self asks for it.
func (b *Book) TOC() error {
	if b.err != nil {
		return b.err
	}
	cfg := b.cfg.TOC

	if err := b.w.Open("div", `class="toc"`); err != nil {
		return b.fail(err)
	}

	self := -1
	if cfg.SelfHeading {
		if _, err := b.H(1, cfg.Title); err != nil {
			return err
		}
		self = len(b.toc) - 1
	}

	if err := b.w.Open("ul"); err != nil {
		return b.fail(err)
	}
	for i, e := range b.toc {
		if i == self && !cfg.IncludeSelf {
			continue
		}
		if cfg.Depth > 0 && e.Level > cfg.Depth {
			continue
		}
		if err := b.w.Line(`<li class="toc-L%d"><a href="#%s">%s %s</a></li>`, e.Level, e.Label, e.Label, e.Title); err != nil {
			return b.fail(err)
		}
	}
	if err := b.w.End("ul"); err != nil {
		return b.fail(err)
	}
	if err := b.w.End("div"); err != nil {
		return b.fail(err)
	}
	return nil
}

// Entries returns a snapshot of the table of contents store.
func (b *Book) Entries() []TOCEntry {
	return slices.Clone(b.toc)
}

// ExportTOC writes the store as JSON. It works on a poisoned session too, the
// store holds whatever was recorded before the failure.
func (b *Book) ExportTOC(out io.Writer) error {
	entries := b.toc
	if entries == nil {
		entries = []TOCEntry{}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	err := enc.Encode(struct {
		Identifier string     `json:"identifier"`
		Entries    []TOCEntry `json:"entries"`
	}{
		Identifier: b.id.String(),
		Entries:    entries,
	})
	if err != nil {
		return fmt.Errorf("unable to export table of contents: %w", err)
	}
	return nil
}
